package dataset

import (
	"fmt"
	"sort"
	"time"

	"ig-advisor-go/internal/logger"
	"ig-advisor-go/internal/types"
)

type DatasetSummary struct {
	TotalVideos      int            `json:"total_videos"`
	TotalSnapshots   int            `json:"total_snapshots"`
	TotalInsightRows int            `json:"total_insight_rows"`
	Users            []string       `json:"users"`
	VideosByUser     map[string]int `json:"videos_by_user"`
	TaggedVideos     int            `json:"tagged_videos"`
	FirstPostedAt    string         `json:"first_posted_at,omitempty"`
	LastPostedAt     string         `json:"last_posted_at,omitempty"`
	ManualColumns    bool           `json:"manual_columns"`
}

// LoadAndSummarize reads the workbook once and describes it for the
// startup log.
func LoadAndSummarize(path string) (DatasetSummary, error) {
	log := logger.New().Component("dataset.summary").WithField("path", path)
	log.Info("opening dataset for summarization")

	ds, err := Load(path)
	if err != nil {
		log.WithError(err).Error("load failed")
		return DatasetSummary{}, fmt.Errorf("load: %w", err)
	}
	s := Summarize(ds)

	log.WithFields(map[string]interface{}{
		"total_videos":       s.TotalVideos,
		"total_snapshots":    s.TotalSnapshots,
		"total_insight_rows": s.TotalInsightRows,
		"users":              len(s.Users),
		"tagged_videos":      s.TaggedVideos,
	}).Info("dataset summarization complete")
	if !s.ManualColumns {
		log.Warn("videos sheet has no manual metric columns")
	}
	return s, nil
}

func Summarize(ds *Dataset) DatasetSummary {
	s := DatasetSummary{
		TotalVideos:      len(ds.Data.Videos),
		TotalSnapshots:   len(ds.Data.MetricsLogs),
		TotalInsightRows: len(ds.Data.AccountInsights),
		Users:            []string{},
		VideosByUser:     map[string]int{},
		ManualColumns:    ds.ManualColumns,
	}

	users := map[string]struct{}{}
	addUser := func(id string) {
		if id != "" {
			users[id] = struct{}{}
		}
	}

	var first, last time.Time
	for _, v := range ds.Data.Videos {
		addUser(v.UserID)
		s.VideosByUser[v.UserID]++
		if v.AnalysisTags != nil {
			s.TaggedVideos++
		}
		t, ok := types.ParseTimestamp(v.PostedAt)
		if !ok {
			continue
		}
		if first.IsZero() || t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	for _, m := range ds.Data.MetricsLogs {
		addUser(m.UserID)
	}
	for _, r := range ds.Data.AccountInsights {
		addUser(r.UserID)
	}

	for u := range users {
		s.Users = append(s.Users, u)
	}
	sort.Strings(s.Users)
	if !first.IsZero() {
		s.FirstPostedAt = first.UTC().Format(time.RFC3339)
		s.LastPostedAt = last.UTC().Format(time.RFC3339)
	}
	return s
}
