package search

import "github.com/nova-launcher/nova/pkg/calculator"

// calculatorProvider triggers when the query itself parses as a
// finite arithmetic expression.
type calculatorProvider struct{}

func (calculatorProvider) ShouldTrigger(query string) bool {
	_, ok := calculator.Evaluate(query)
	return ok
}

func (calculatorProvider) Produce(query string, ctx *Context) []Result {
	value, ok := calculator.Evaluate(query)
	if !ok {
		return nil
	}
	return []Result{Calculation{Expression: query, Formatted: calculator.FormatResult(value)}}
}
