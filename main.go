package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/jcorbin/gogrin/internal/logio"
)

func main() {
	ctx := context.Background()

	var log logio.Logger
	log.SetOutput(logio.NopCloser(os.Stderr))

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %v [flags] [program.grin]\n", fs.Name())
		fs.PrintDefaults()
	}
	var flags config
	flags.bind(fs)
	configPath := fs.String("config", "", "read settings from a YAML file; flags take precedence")
	fs.Parse(os.Args[1:])

	var cfg config
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			log.Errorf("%v", err)
			os.Exit(log.ExitCode())
		}
	}
	cfg.override(fs, flags)

	runMain(ctx, &log, cfg, fs.Args())
	os.Exit(log.ExitCode())
}

// runMain loads and runs a program, reporting every problem through log.
func runMain(ctx context.Context, log *logio.Logger, cfg config, args []string) {
	var opts []VMOption

	if len(args) > 1 {
		log.Errorf("too many arguments: %q", args)
		return
	}
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithSource(f))
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, WithLineInput(newTerminalInput(cfg.History, len(args) == 1)))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}
	opts = append(opts, WithOutput(os.Stdout))

	if cfg.Trace {
		opts = append(opts, WithLogf(traceLogf(os.Stderr)))
	}
	if cfg.CallLimit != 0 {
		opts = append(opts, WithCallLimit(cfg.CallLimit))
	}
	vm := New(opts...)
	defer func() { log.ErrorIf(vm.Close()) }()

	if err := vm.Load(); err != nil {
		log.Errors(err)
		return
	}

	if cfg.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if err := vm.Run(ctx); err != nil {
		log.Errorf("%+v", err)
		var runErr RunError
		if cfg.Dump && errors.As(err, &runErr) {
			dumpTo := &logio.Writer{Logf: log.Leveledf("DUMP")}
			vm.Dump(dumpTo)
			dumpTo.Close()
		}
	}
}

// traceLogf returns a VM log function that emits trace events through a
// zerolog console logger, tagged with a fresh run id.
func traceLogf(w io.Writer) func(mess string, args ...interface{}) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
	return func(mess string, args ...interface{}) {
		logger.Trace().Msgf(mess, args...)
	}
}
