package dataset

import (
	"testing"
	"time"

	"ig-advisor-go/internal/types"
)

func TestFilterWindow(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	data := types.AccountData{
		Videos: []types.Video{
			{ID: "in", UserID: "u1", PostedAt: "2026-03-20T00:00:00Z"},
			{ID: "edge", UserID: "u1", PostedAt: "2026-03-02T12:00:00Z"},
			{ID: "old", UserID: "u1", PostedAt: "2026-02-01T00:00:00Z"},
			{ID: "bad-date", UserID: "u1", PostedAt: "yesterday"},
			{ID: "other", UserID: "u2", PostedAt: "2026-03-20T00:00:00Z"},
		},
		MetricsLogs: []types.MetricSnapshot{
			{VideoID: "in", UserID: "u1", FetchedAt: "2026-03-21T00:00:00Z"},
			{VideoID: "in", UserID: "u1", FetchedAt: "2026-02-21T00:00:00Z"},
			{VideoID: "old", UserID: "u1", FetchedAt: "2026-03-21T00:00:00Z"},
			{VideoID: "in", UserID: "u2", FetchedAt: "2026-03-21T00:00:00Z"},
		},
		AccountInsights: []types.AccountInsightRow{
			{UserID: "u1", Date: "2026-03-02"},
			{UserID: "u1", Date: "2026-03-01"},
			{UserID: "u2", Date: "2026-03-20"},
		},
	}

	got := FilterWindow(data, "u1", 30, now)

	var videoIDs []string
	for _, v := range got.Videos {
		videoIDs = append(videoIDs, v.ID)
	}
	if len(videoIDs) != 2 || videoIDs[0] != "in" || videoIDs[1] != "edge" {
		t.Errorf("videos = %v, want [in edge]", videoIDs)
	}
	if len(got.MetricsLogs) != 1 || got.MetricsLogs[0].FetchedAt != "2026-03-21T00:00:00Z" {
		t.Errorf("metrics_logs = %+v", got.MetricsLogs)
	}
	if len(got.AccountInsights) != 1 || got.AccountInsights[0].Date != "2026-03-02" {
		t.Errorf("account_insights = %+v", got.AccountInsights)
	}
}

func TestFilterWindowAllUsers(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	data := types.AccountData{
		Videos: []types.Video{
			{ID: "a", UserID: "u1", PostedAt: "2026-03-20T00:00:00Z"},
			{ID: "b", UserID: "u2", PostedAt: "2026-03-20T00:00:00Z"},
		},
	}
	got := FilterWindow(data, "", 30, now)
	if len(got.Videos) != 2 {
		t.Errorf("videos = %d, want 2", len(got.Videos))
	}
	if got.MetricsLogs == nil || got.AccountInsights == nil {
		t.Errorf("empty slices should be non-nil")
	}
}
