package aggregator

import (
	"math"
	"sort"
	"time"

	"ig-advisor-go/internal/types"
)

// Cohorts are the benchmark subsets of one run.
type Cohorts struct {
	// Scored holds aggregates with a score, best first.
	Scored []*VideoAggregate
	Top    []*VideoAggregate
	Bottom []*VideoAggregate
	// ByRecency holds every aggregate, newest first. Recent is its head.
	ByRecency []*VideoAggregate
	Recent    []*VideoAggregate
}

// QuartileSize is max(1, round(fraction*n)) for n > 0, else 0.
func QuartileSize(n int, fraction float64) int {
	if n <= 0 {
		return 0
	}
	k := int(math.Round(float64(n) * fraction))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	return k
}

// SelectCohorts ranks the aggregates and cuts the benchmark cohorts.
// The bottom cohort is taken from an ascending re-sort rather than the
// tail of Scored, so tied scores resolve in the same order as the top.
func SelectCohorts(aggs []*VideoAggregate, opts Options) Cohorts {
	opts = opts.withDefaults()

	scored := make([]*VideoAggregate, 0, len(aggs))
	for _, a := range aggs {
		if _, ok := a.Score.Float(); ok {
			scored = append(scored, a)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Value > scored[j].Score.Value
	})

	k := QuartileSize(len(scored), opts.QuartileFraction)
	ascending := append([]*VideoAggregate(nil), scored...)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].Score.Value < ascending[j].Score.Value
	})

	byRecency := append([]*VideoAggregate(nil), aggs...)
	sort.SliceStable(byRecency, func(i, j int) bool {
		return postedAt(byRecency[i]).After(postedAt(byRecency[j]))
	})

	return Cohorts{
		Scored:    scored,
		Top:       head(scored, k),
		Bottom:    head(ascending, k),
		ByRecency: byRecency,
		Recent:    head(byRecency, opts.RecentCount),
	}
}

var epoch = time.Unix(0, 0).UTC()

func postedAt(a *VideoAggregate) time.Time {
	if t, ok := types.ParseTimestamp(a.Video.PostedAt); ok {
		return t
	}
	return epoch
}

func head(items []*VideoAggregate, n int) []*VideoAggregate {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
