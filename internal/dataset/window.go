package dataset

import (
	"time"

	"ig-advisor-go/internal/types"
)

// FilterWindow keeps the rows of userID that fall within the last
// windowDays before now. An empty userID keeps every user, for single
// account exports. Snapshots must also belong to a kept video. Insight
// rows are compared by calendar date.
func FilterWindow(data types.AccountData, userID string, windowDays int, now time.Time) types.AccountData {
	start := now.UTC().AddDate(0, 0, -windowDays)
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	owned := func(id string) bool { return userID == "" || id == userID }
	within := func(raw string, from time.Time) bool {
		t, ok := types.ParseTimestamp(raw)
		return ok && !t.Before(from)
	}

	out := types.AccountData{
		Videos:          []types.Video{},
		MetricsLogs:     []types.MetricSnapshot{},
		AccountInsights: []types.AccountInsightRow{},
	}

	ids := make(map[string]struct{})
	for _, v := range data.Videos {
		if owned(v.UserID) && within(v.PostedAt, start) {
			out.Videos = append(out.Videos, v)
			ids[v.ID] = struct{}{}
		}
	}
	for _, m := range data.MetricsLogs {
		if _, ok := ids[m.VideoID]; ok && owned(m.UserID) && within(m.FetchedAt, start) {
			out.MetricsLogs = append(out.MetricsLogs, m)
		}
	}
	for _, r := range data.AccountInsights {
		if owned(r.UserID) && within(r.Date, startDate) {
			out.AccountInsights = append(out.AccountInsights, r)
		}
	}
	return out
}
