package aggregator

import "ig-advisor-go/internal/types"

// scoreStep is one link of a goal's fallback chain.
type scoreStep struct {
	metric string
	value  func(a *VideoAggregate) types.Num
}

func latestField(pick func(LatestMetrics) types.Num) func(*VideoAggregate) types.Num {
	return func(a *VideoAggregate) types.Num {
		if a.Latest == nil {
			return types.Num{}
		}
		return pick(*a.Latest)
	}
}

// scoreChains lists, per goal, the metrics that may represent it in order
// of preference. A rate always comes before the raw count it is built from.
var scoreChains = map[types.Goal][]scoreStep{
	types.GoalFollowers: {
		{"follow_rate", func(a *VideoAggregate) types.Num { return a.Rates.FollowRate }},
		{"follows", func(a *VideoAggregate) types.Num { return a.Video.Follows }},
		{"profile_visits", func(a *VideoAggregate) types.Num { return a.Video.ProfileVisits }},
	},
	types.GoalSaves: {
		{"save_rate", func(a *VideoAggregate) types.Num { return a.Rates.SaveRate }},
		{"saves", latestField(func(m LatestMetrics) types.Num { return m.Saves })},
	},
	types.GoalReach: {
		{"reach", func(a *VideoAggregate) types.Num { return a.Video.Reach }},
		{"views", latestField(func(m LatestMetrics) types.Num { return m.Views })},
	},
	types.GoalProfileVisits: {
		{"profile_visits", func(a *VideoAggregate) types.Num { return a.Video.ProfileVisits }},
	},
}

// ChainMetrics returns the metric names a goal may be scored by, in order.
func ChainMetrics(goal types.Goal) []string {
	steps := scoreChains[goal]
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.metric)
	}
	return out
}

// PickScore walks the goal's chain and returns the first usable value and
// the metric it came from. Metric is empty when nothing was usable.
func PickScore(a *VideoAggregate, goal types.Goal) (types.Num, string) {
	for _, step := range scoreChains[goal] {
		if v := step.value(a); v.Valid {
			if _, ok := v.Float(); ok {
				return v, step.metric
			}
		}
	}
	return types.Num{}, ""
}

// ChooseBenchmarkMetric returns the first metric of the goal's chain that
// scored at least one aggregate, or "" when none did.
func ChooseBenchmarkMetric(aggs []*VideoAggregate, goal types.Goal) string {
	present := make(map[string]bool, len(aggs))
	for _, a := range aggs {
		if a.ScoreMetric != "" {
			present[a.ScoreMetric] = true
		}
	}
	for _, metric := range ChainMetrics(goal) {
		if present[metric] {
			return metric
		}
	}
	return ""
}
