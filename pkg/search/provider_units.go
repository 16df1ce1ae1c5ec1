package search

import (
	"strings"

	"github.com/nova-launcher/nova/pkg/units"
)

// unitProvider triggers only when the query contains the literal
// " to " separator the unit-converter grammar requires.
type unitProvider struct{}

func (unitProvider) ShouldTrigger(query string) bool {
	return strings.Contains(query, " to ")
}

func (unitProvider) Produce(query string, ctx *Context) []Result {
	conv, ok := units.Convert(query)
	if !ok {
		return nil
	}
	return []Result{UnitConversion{Display: conv.Display(), Result: conv.Result()}}
}
