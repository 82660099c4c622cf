package runner

import (
	"context"
	"strings"
)

// Fake is a scripted Runner keyed by the joined argv
type Fake struct {
	Results map[string]Result
	Errors  map[string]error
	Calls   [][]string
}

// NewFake returns an empty Fake
func NewFake() *Fake {
	return &Fake{
		Results: make(map[string]Result),
		Errors:  make(map[string]error),
	}
}

// On registers the result for an argv
func (f *Fake) On(argv string, res Result, err error) *Fake {
	res.Argv = strings.Fields(argv)
	f.Results[argv] = res
	if err != nil {
		f.Errors[argv] = err
	}
	return f
}

func (f *Fake) Run(ctx context.Context, name string, args ...string) (Result, error) {
	argv := append([]string{name}, args...)
	f.Calls = append(f.Calls, argv)

	key := strings.Join(argv, " ")
	if err, ok := f.Errors[key]; ok {
		return f.Results[key], err
	}
	if res, ok := f.Results[key]; ok {
		return res, nil
	}
	return Result{Argv: argv, ExitCode: -1}, ErrNotFound
}
