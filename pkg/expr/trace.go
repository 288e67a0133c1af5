package expr

import (
	"fmt"
	"io"
)

// Tracer observes the pipeline's intermediate state. Implementations must
// not influence evaluation; tracing is a pure side-channel.
type Tracer interface {
	// Stage receives the full token sequence produced by a pipeline stage.
	Stage(name string, tokens []Token)
	// Pushed is called when a literal value lands on the evaluation stack.
	Pushed(v float64)
	// Applied is called after an operator is applied to its operands.
	Applied(op Op, operands []float64, result float64)
}

// WriterTracer writes a human-readable trace of pipeline stages and stack
// operations to an io.Writer.
type WriterTracer struct {
	w io.Writer
}

// NewWriterTracer creates a tracer writing to w.
func NewWriterTracer(w io.Writer) *WriterTracer {
	return &WriterTracer{w: w}
}

// Stage dumps the token sequence produced by a stage.
func (t *WriterTracer) Stage(name string, tokens []Token) {
	fmt.Fprintf(t.w, "--- %s ---\n", name)
	for _, tok := range tokens {
		fmt.Fprintln(t.w, tok)
	}
	fmt.Fprintln(t.w, "---")
}

// Pushed logs a value pushed onto the evaluation stack.
func (t *WriterTracer) Pushed(v float64) {
	fmt.Fprintf(t.w, "push %s\n", FormatResult(v))
}

// Applied logs an operator application.
func (t *WriterTracer) Applied(op Op, operands []float64, result float64) {
	switch op {
	case OpNeg:
		fmt.Fprintf(t.w, "negate %s -> %s\n", FormatResult(operands[0]), FormatResult(result))
	case OpPercent:
		fmt.Fprintf(t.w, "percent %s -> %s\n", FormatResult(operands[0]), FormatResult(result))
	default:
		fmt.Fprintf(t.w, "apply %s to %s and %s -> %s\n",
			op, FormatResult(operands[0]), FormatResult(operands[1]), FormatResult(result))
	}
}
