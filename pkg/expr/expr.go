package expr

// Evaluate runs the full pipeline on source: tokenize, reorder to postfix,
// evaluate. It is a pure function of its input; evaluating the same string
// twice yields the same result and the same error classification.
func Evaluate(source string) (float64, error) {
	return EvaluateTraced(source, nil)
}

// EvaluateTraced is Evaluate with an optional tracer observing intermediate
// token sequences and stack operations. A nil tracer is valid and disables
// tracing entirely.
func EvaluateTraced(source string, tr Tracer) (float64, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return 0, err
	}
	if tr != nil {
		tr.Stage("After Tokenization", tokens)
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	if tr != nil {
		tr.Stage("Postfix Conversion", postfix)
	}

	return EvaluatePostfixTraced(postfix, tr)
}
