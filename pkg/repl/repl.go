// Package repl implements the interactive calculator loop: it reads one line
// at a time, treats 'exit', 'help', and 'trace' as commands, and evaluates
// everything else as an expression.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lemonberrylabs/rpncalc/pkg/expr"
)

const greeting = `
------ Welcome to Calculator 2.0 ------
Available operations (PEMDAS): (), %, ^, *, /, +, -. Negative numbers supported!
Type 'exit' to close program. Type 'help' for hints.
`

const helpText = `
Enter any mathematical expression using numbers and any of the following operations: (), %, ^, *, /, +, -.
Type 'trace on' or 'trace off' to toggle pipeline tracing.
Type 'exit' to close program.
`

// REPL reads expressions line by line and prints results. It performs no
// terminal handling of its own, so any reader/writer pair works.
type REPL struct {
	in    io.Reader
	out   io.Writer
	errw  io.Writer
	trace bool
}

// New creates a REPL reading from in, writing results to out and error
// messages to errw.
func New(in io.Reader, out, errw io.Writer) *REPL {
	return &REPL{in: in, out: out, errw: errw}
}

// SetTrace toggles pipeline tracing for subsequent expressions.
func (r *REPL) SetTrace(on bool) {
	r.trace = on
}

// Run processes input until 'exit' or EOF. Expression errors are reported
// and the loop continues; only a read failure is returned.
func (r *REPL) Run() error {
	fmt.Fprint(r.out, greeting)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\nEnter your expression: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "exit":
			fmt.Fprintln(r.out, "Program finished with exit code 0.")
			return nil
		case "help":
			fmt.Fprint(r.out, helpText)
			continue
		case "trace on":
			r.trace = true
			fmt.Fprintln(r.out, "Tracing enabled.")
			continue
		case "trace off":
			r.trace = false
			fmt.Fprintln(r.out, "Tracing disabled.")
			continue
		}

		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	var tr expr.Tracer
	if r.trace {
		tr = expr.NewWriterTracer(r.out)
	}

	result, err := expr.EvaluateTraced(line, tr)
	if err != nil {
		fmt.Fprintf(r.errw, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Answer: %s\n", expr.FormatResult(result))
}
