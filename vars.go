package main

import "sort"

// Variables is the flat namespace of one program run. Names come into being
// on first assignment; reading any other name is an error.
//
// Each name is interned to an index into parallel name and value slices, so
// that a name once seen keeps its slot across Reset.
type Variables struct {
	index  map[string]int
	names  []string
	values []Value
}

// Lookup returns the value assigned to name, if any.
func (vars *Variables) Lookup(name string) (Value, bool) {
	if i, ok := vars.index[name]; ok {
		if val := vars.values[i]; val.kind != NoValue {
			return val, true
		}
	}
	return Value{}, false
}

// Get returns the value assigned to name, or an ErrUndefinedVariable error.
func (vars *Variables) Get(name string) (Value, error) {
	if val, ok := vars.Lookup(name); ok {
		return val, nil
	}
	return Value{}, nameError{ErrUndefinedVariable, name}
}

// Set assigns val to name; assigning the zero Value is a no-op.
func (vars *Variables) Set(name string, val Value) {
	if val.kind == NoValue {
		return
	}
	i, ok := vars.index[name]
	if !ok {
		if vars.index == nil {
			vars.index = make(map[string]int)
		}
		i = len(vars.names)
		vars.index[name] = i
		vars.names = append(vars.names, name)
		vars.values = append(vars.values, Value{})
	}
	vars.values[i] = val
}

// Len returns the number of assigned variables.
func (vars *Variables) Len() (n int) {
	for _, val := range vars.values {
		if val.kind != NoValue {
			n++
		}
	}
	return n
}

// Names returns the assigned variable names in sorted order.
func (vars *Variables) Names() []string {
	names := make([]string, 0, len(vars.values))
	for i, val := range vars.values {
		if val.kind != NoValue {
			names = append(names, vars.names[i])
		}
	}
	sort.Strings(names)
	return names
}

// Reset forgets every assignment.
func (vars *Variables) Reset() {
	for i := range vars.values {
		vars.values[i] = Value{}
	}
}

// resolve evaluates an operand token: literals stand for their value, and
// identifiers are looked up.
func (vars *Variables) resolve(tok Token) (Value, error) {
	if tok.IsLiteral() {
		return tok.Value, nil
	}
	return vars.Get(tok.Text)
}
