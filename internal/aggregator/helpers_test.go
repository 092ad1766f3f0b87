package aggregator

import (
	"ig-advisor-go/internal/types"
)

func num(v float64) types.Num { return types.NumOf(v) }

func strPtr(s string) *string { return &s }

func floatEq(got *float64, want float64) bool {
	if got == nil {
		return false
	}
	d := *got - want
	return d < 1e-9 && d > -1e-9
}

func ids(items []*VideoAggregate) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Video.ID)
	}
	return out
}
