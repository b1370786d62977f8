package execx

import (
	"context"
	"fmt"
	"strings"
)

// Call records one invocation made through a Fake.
type Call struct {
	Name string
	Args []string
}

// String renders the call as the command line it would have executed.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Fake is an in-memory Runner for tests. It records every invocation and
// returns scripted results; unscripted commands succeed with empty output.
type Fake struct {
	Calls []Call

	// Results maps a full command line (see Call.String) or a bare
	// executable name to the Result it should return. The full form wins.
	Results map[string]Result

	// Outputs maps the same keys to Capture stdout.
	Outputs map[string]string

	// Missing lists executable names LookPath should fail to resolve.
	Missing map[string]bool
}

func NewFake() *Fake {
	return &Fake{
		Results: make(map[string]Result),
		Outputs: make(map[string]string),
		Missing: make(map[string]bool),
	}
}

func (f *Fake) Run(ctx context.Context, name string, args ...string) Result {
	c := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, c)
	return f.result(c)
}

func (f *Fake) Capture(ctx context.Context, name string, args ...string) (string, Result) {
	c := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, c)
	return f.output(c), f.result(c)
}

func (f *Fake) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return name, nil
}

// CommandLines returns every recorded invocation as a command-line string.
func (f *Fake) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

func (f *Fake) result(c Call) Result {
	if r, ok := f.Results[c.String()]; ok {
		return r
	}
	if r, ok := f.Results[c.Name]; ok {
		return r
	}
	return Result{}
}

func (f *Fake) output(c Call) string {
	if out, ok := f.Outputs[c.String()]; ok {
		return out
	}
	return f.Outputs[c.Name]
}
