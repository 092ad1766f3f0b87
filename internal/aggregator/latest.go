package aggregator

import (
	"ig-advisor-go/internal/types"
)

// LatestMetrics is the newest snapshot of one video.
type LatestMetrics struct {
	Views     types.Num
	Likes     types.Num
	Saves     types.Num
	Comments  types.Num
	FetchedAt string
}

// BuildLatestMetrics keeps the snapshot with the latest fetched_at per video.
// A snapshot whose timestamp cannot be parsed never replaces an existing
// entry, and the first snapshot seen at the winning instant is kept.
func BuildLatestMetrics(logs []types.MetricSnapshot) map[string]LatestMetrics {
	out := make(map[string]LatestMetrics, len(logs))
	for _, l := range logs {
		if l.VideoID == "" {
			continue
		}
		fetched, ok := types.ParseTimestamp(l.FetchedAt)
		if existing, found := out[l.VideoID]; found {
			if !ok {
				continue
			}
			if prev, prevOK := types.ParseTimestamp(existing.FetchedAt); prevOK && !prev.Before(fetched) {
				continue
			}
		}
		out[l.VideoID] = LatestMetrics{
			Views:     l.Views,
			Likes:     l.Likes,
			Saves:     l.Saves,
			Comments:  l.Comments,
			FetchedAt: l.FetchedAt,
		}
	}
	return out
}
