package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runREPL feeds input lines to a fresh REPL and returns stdout and stderr.
func runREPL(t *testing.T, input string) (string, string) {
	t.Helper()
	var out, errw strings.Builder
	r := New(strings.NewReader(input), &out, &errw)
	require.NoError(t, r.Run())
	return out.String(), errw.String()
}

func TestGreetingAndExit(t *testing.T) {
	out, errw := runREPL(t, "exit\n")
	require.Contains(t, out, "Welcome to Calculator 2.0")
	require.Contains(t, out, "Program finished with exit code 0.")
	require.Empty(t, errw)
}

func TestEvaluatesExpressions(t *testing.T) {
	out, errw := runREPL(t, "1 + 2\n2^3^2\n50%\nexit\n")
	require.Contains(t, out, "Answer: 3")
	require.Contains(t, out, "Answer: 512")
	require.Contains(t, out, "Answer: 0.5")
	require.Empty(t, errw)
}

func TestHelpSkipsEvaluation(t *testing.T) {
	out, errw := runREPL(t, "help\nexit\n")
	require.Contains(t, out, "Enter any mathematical expression")
	require.NotContains(t, out, "Answer:")
	require.Empty(t, errw)
}

func TestErrorsReportedAndLoopContinues(t *testing.T) {
	out, errw := runREPL(t, "5 / 0\n(1 + 2\n1 + 1\nexit\n")
	require.Contains(t, errw, "Error: division by zero")
	require.Contains(t, errw, "unclosed '('")
	require.Contains(t, out, "Answer: 2")
}

func TestTraceToggle(t *testing.T) {
	out, _ := runREPL(t, "trace on\n1 + 2\ntrace off\n3 + 4\nexit\n")
	require.Contains(t, out, "Tracing enabled.")
	require.Contains(t, out, "After Tokenization")
	require.Contains(t, out, "Answer: 3")

	// After trace off, no further stage dumps.
	afterOff := out[strings.Index(out, "Tracing disabled."):]
	require.NotContains(t, afterOff, "After Tokenization")
	require.Contains(t, afterOff, "Answer: 7")
}

func TestBlankLinesIgnored(t *testing.T) {
	out, errw := runREPL(t, "\n\n1+1\nexit\n")
	require.Contains(t, out, "Answer: 2")
	require.Empty(t, errw)
}

func TestEOFEndsLoop(t *testing.T) {
	var out, errw strings.Builder
	r := New(strings.NewReader("1+1\n"), &out, &errw)
	require.NoError(t, r.Run())
	require.Contains(t, out.String(), "Answer: 2")
}
