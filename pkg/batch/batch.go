// Package batch loads and runs YAML suites of expressions.
package batch

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lemonberrylabs/rpncalc/pkg/expr"
)

// tolerance for comparing a computed result against an expected value.
const tolerance = 1e-9

// Suite is a named list of expressions to evaluate.
type Suite struct {
	Name        string  `yaml:"name"`
	Expressions []Entry `yaml:"expressions"`
}

// Entry is a single expression in a suite, optionally with an expected value
// to check the result against.
type Entry struct {
	Name string   `yaml:"name"`
	Expr string   `yaml:"expr"`
	Want *float64 `yaml:"want"`
}

// Load parses a YAML suite document.
func Load(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}

	if len(s.Expressions) == 0 {
		return nil, fmt.Errorf("suite has no expressions")
	}
	for i, e := range s.Expressions {
		if e.Expr == "" {
			return nil, fmt.Errorf("expression %d has no expr", i+1)
		}
	}
	return &s, nil
}

// LoadFile reads and parses a suite file.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}
	return Load(data)
}

// Outcome is the result of running one suite entry.
type Outcome struct {
	Entry  Entry
	Result float64
	Err    error
}

// Passed reports whether the entry evaluated cleanly and, if it declares an
// expected value, matched it.
func (o Outcome) Passed() bool {
	if o.Err != nil {
		return false
	}
	if o.Entry.Want == nil {
		return true
	}
	return math.Abs(o.Result-*o.Entry.Want) <= tolerance
}

// Run evaluates every entry in the suite, in order.
func Run(s *Suite) []Outcome {
	outcomes := make([]Outcome, len(s.Expressions))
	for i, e := range s.Expressions {
		v, err := expr.Evaluate(e.Expr)
		outcomes[i] = Outcome{Entry: e, Result: v, Err: err}
	}
	return outcomes
}
