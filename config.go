package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// config collects command settings; a YAML file provides defaults, and
// flags given on the command line take precedence.
type config struct {
	Timeout   time.Duration `yaml:"timeout"`
	Trace     bool          `yaml:"trace"`
	CallLimit int           `yaml:"call_limit"`
	Dump      bool          `yaml:"dump"`
	History   string        `yaml:"history"`
}

func (cfg *config) bind(fs *flag.FlagSet) {
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "specify a time limit")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "enable trace logging")
	fs.IntVar(&cfg.CallLimit, "call-limit", cfg.CallLimit, "limit GOSUB nesting depth")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump VM state after a run time error")
	fs.StringVar(&cfg.History, "history", cfg.History, "interactive history file")
}

// override copies any flags explicitly set in fs from their bound values in
// flags.
func (cfg *config) override(fs *flag.FlagSet, flags config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.Timeout = flags.Timeout
		case "trace":
			cfg.Trace = flags.Trace
		case "call-limit":
			cfg.CallLimit = flags.CallLimit
		case "dump":
			cfg.Dump = flags.Dump
		case "history":
			cfg.History = flags.History
		}
	})
}

func loadConfig(path string) (cfg config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f, path)
}

func decodeConfig(r io.Reader, name string) (cfg config, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("config: %s: negative timeout %v", name, cfg.Timeout)
	}
	if cfg.CallLimit < 0 {
		return cfg, fmt.Errorf("config: %s: negative call_limit %v", name, cfg.CallLimit)
	}
	return cfg, nil
}
