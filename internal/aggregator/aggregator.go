package aggregator

import (
	"ig-advisor-go/internal/types"
)

// VideoAggregate pairs a video with everything derived from it in one run.
type VideoAggregate struct {
	Video       *types.Video
	Latest      *LatestMetrics
	Rates       Rates
	Score       types.Num
	ScoreMetric string
}

// BuildAggregates resolves latest metrics, rates and the goal score for
// every video. Input slices are not modified.
func BuildAggregates(videos []types.Video, latest map[string]LatestMetrics, goal types.Goal) []*VideoAggregate {
	out := make([]*VideoAggregate, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		a := &VideoAggregate{Video: v}
		if m, ok := latest[v.ID]; ok {
			a.Latest = &m
		}
		a.Rates = computeRates(v, a.Latest)
		a.Score, a.ScoreMetric = PickScore(a, goal)
		out = append(out, a)
	}
	return out
}

// BuildAggregateStats averages raw metrics and rates over any subset.
// Fields with no usable values are null.
func BuildAggregateStats(items []*VideoAggregate) types.AggregateStats {
	latest := func(pick func(LatestMetrics) types.Num) *float64 {
		vals := make([]types.Num, 0, len(items))
		for _, it := range items {
			if it.Latest != nil {
				vals = append(vals, pick(*it.Latest))
			}
		}
		return avgOrNull(vals)
	}
	video := func(pick func(*types.Video) types.Num) *float64 {
		vals := make([]types.Num, 0, len(items))
		for _, it := range items {
			vals = append(vals, pick(it.Video))
		}
		return avgOrNull(vals)
	}
	rate := func(pick func(Rates) types.Num) *float64 {
		vals := make([]types.Num, 0, len(items))
		for _, it := range items {
			vals = append(vals, pick(it.Rates))
		}
		return avgOrNull(vals)
	}

	return types.AggregateStats{
		PerVideoLatestAvg: types.MetricAverages{
			Views:         latest(func(m LatestMetrics) types.Num { return m.Views }),
			Likes:         latest(func(m LatestMetrics) types.Num { return m.Likes }),
			Saves:         latest(func(m LatestMetrics) types.Num { return m.Saves }),
			Comments:      latest(func(m LatestMetrics) types.Num { return m.Comments }),
			Reach:         video(func(v *types.Video) types.Num { return v.Reach }),
			Shares:        video(func(v *types.Video) types.Num { return v.Shares }),
			ProfileVisits: video(func(v *types.Video) types.Num { return v.ProfileVisits }),
			Follows:       video(func(v *types.Video) types.Num { return v.Follows }),
		},
		RatesAvg: types.RateAverages{
			LikeRate:    rate(func(r Rates) types.Num { return r.LikeRate }),
			SaveRate:    rate(func(r Rates) types.Num { return r.SaveRate }),
			CommentRate: rate(func(r Rates) types.Num { return r.CommentRate }),
			ShareRate:   rate(func(r Rates) types.Num { return r.ShareRate }),
			FollowRate:  rate(func(r Rates) types.Num { return r.FollowRate }),
		},
	}
}

func cohortStats(items []*VideoAggregate) types.CohortStats {
	s := BuildAggregateStats(items)
	return types.CohortStats{
		Count:             len(items),
		PerVideoLatestAvg: s.PerVideoLatestAvg,
		RatesAvg:          s.RatesAvg,
	}
}

func avgOrNull(vals []types.Num) *float64 {
	sum, n := 0.0, 0
	for _, v := range vals {
		if f, ok := v.Float(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return types.NumOf(sum / float64(n)).Ptr()
}
