package dataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"ig-advisor-go/internal/logger"
	"ig-advisor-go/internal/types"
)

// Sheet names of an export workbook. Lookup is case-insensitive.
const (
	SheetVideos          = "videos"
	SheetMetricsLogs     = "metrics_logs"
	SheetAccountInsights = "account_insights"
)

// manualColumns are the hand-entered video metrics. Older exports lack them.
var manualColumns = []string{"reach", "shares", "profile_visits", "follows", "manual_input_done"}

// Dataset is one parsed export workbook.
type Dataset struct {
	Data types.AccountData
	// ManualColumns is false when the videos sheet has none of the manual
	// metric columns.
	ManualColumns bool
}

// LoadContext reads the workbook, giving up when ctx is done.
func LoadContext(ctx context.Context, path string) (*Dataset, error) {
	type result struct {
		ds  *Dataset
		err error
	}
	done := make(chan result, 1)
	go func() {
		ds, err := Load(path)
		done <- result{ds, err}
	}()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load %s: %w", path, ctx.Err())
	case r := <-done:
		return r.ds, r.err
	}
}

// Load reads the videos, metrics_logs and account_insights sheets. Missing
// sheets yield no rows; columns are found by header name.
func Load(path string) (*Dataset, error) {
	log := logger.New().Component("dataset").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}

	ds := &Dataset{}
	for _, want := range []string{SheetVideos, SheetMetricsLogs, SheetAccountInsights} {
		name := findSheet(sheets, want)
		if name == "" {
			log.WithField("sheet", want).Warn("sheet missing, treating as empty")
			continue
		}
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read %s rows: %w", name, err)
		}
		if len(rows) == 0 {
			continue
		}
		t := newTable(rows[0])
		body := rows[1:]

		switch want {
		case SheetVideos:
			ds.ManualColumns = t.hasAny(manualColumns...)
			ds.Data.Videos = parseVideos(t, body)
		case SheetMetricsLogs:
			ds.Data.MetricsLogs = parseSnapshots(t, body)
		case SheetAccountInsights:
			ds.Data.AccountInsights = parseInsights(t, body)
		}
	}

	log.WithFields(map[string]interface{}{
		"videos":           len(ds.Data.Videos),
		"metrics_logs":     len(ds.Data.MetricsLogs),
		"account_insights": len(ds.Data.AccountInsights),
		"manual_columns":   ds.ManualColumns,
	}).Debug("workbook parsed")
	return ds, nil
}

func findSheet(sheets []string, want string) string {
	for _, s := range sheets {
		if normalizeHeader(s) == want {
			return s
		}
	}
	return ""
}

// table maps normalised header names to column indexes.
type table struct {
	index map[string]int
}

func newTable(header []string) table {
	t := table{index: make(map[string]int, len(header))}
	for i, h := range header {
		n := normalizeHeader(h)
		if n == "" {
			continue
		}
		if _, dup := t.index[n]; !dup {
			t.index[n] = i
		}
	}
	return t
}

// normalizeHeader lowercases and turns spaces and dashes into underscores,
// so "Posted At" and "posted-at" both match posted_at.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

func (t table) hasAny(names ...string) bool {
	for _, n := range names {
		if _, ok := t.index[n]; ok {
			return true
		}
	}
	return false
}

// cell returns the trimmed value of the first matching column, or "".
func (t table) cell(row []string, names ...string) string {
	for _, n := range names {
		if i, ok := t.index[n]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

// timestamp returns the cell as text. Native date cells arrive as serial
// numbers and are rendered as RFC 3339 UTC.
func (t table) timestamp(row []string, names ...string) string {
	raw := t.cell(row, names...)
	if serial, ok := excelSerial(raw); ok {
		return serial.Format(time.RFC3339Nano)
	}
	return raw
}

// date is timestamp for calendar-date columns.
func (t table) date(row []string, names ...string) string {
	raw := t.cell(row, names...)
	if serial, ok := excelSerial(raw); ok {
		return serial.Format("2006-01-02")
	}
	return raw
}

// excelSerial converts an Excel date serial such as "46082.3333". Text
// that already parses as a timestamp is left alone.
func excelSerial(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if _, ok := types.ParseTimestamp(raw); ok {
		return time.Time{}, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(v, false)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC().Round(time.Millisecond), true
}

func (t table) num(row []string, names ...string) types.Num {
	return types.ParseNum(t.cell(row, names...))
}

func parseVideos(t table, rows [][]string) []types.Video {
	out := make([]types.Video, 0, len(rows))
	for _, r := range rows {
		id := t.cell(r, "id", "video_id")
		if id == "" {
			continue
		}
		v := types.Video{
			ID:              id,
			UserID:          t.cell(r, "user_id"),
			IGMediaID:       t.cell(r, "ig_media_id", "media_id"),
			PostedAt:        t.timestamp(r, "posted_at", "timestamp"),
			AnalysisTags:    parseTags(t.cell(r, "analysis_tags")),
			SelfScore:       t.num(r, "self_score"),
			Reach:           t.num(r, "reach"),
			Shares:          t.num(r, "shares"),
			ProfileVisits:   t.num(r, "profile_visits"),
			Follows:         t.num(r, "follows"),
			ManualInputDone: parseBool(t.cell(r, "manual_input_done")),
		}
		if c := t.cell(r, "caption"); c != "" {
			v.Caption = &c
		}
		out = append(out, v)
	}
	return out
}

func parseSnapshots(t table, rows [][]string) []types.MetricSnapshot {
	out := make([]types.MetricSnapshot, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.MetricSnapshot{
			VideoID:   t.cell(r, "video_id"),
			UserID:    t.cell(r, "user_id"),
			FetchedAt: t.timestamp(r, "fetched_at"),
			Views:     t.num(r, "views", "plays"),
			Likes:     t.num(r, "likes", "like_count"),
			Saves:     t.num(r, "saves", "saved"),
			Comments:  t.num(r, "comments", "comments_count"),
		})
	}
	return out
}

func parseInsights(t table, rows [][]string) []types.AccountInsightRow {
	out := make([]types.AccountInsightRow, 0, len(rows))
	for _, r := range rows {
		row := types.AccountInsightRow{
			UserID:           t.cell(r, "user_id"),
			Date:             t.date(r, "date"),
			FollowersCount:   t.num(r, "followers_count", "followers"),
			ProfileViews:     t.num(r, "profile_views"),
			WebsiteClicks:    t.num(r, "website_clicks"),
			ReachDaily:       t.num(r, "reach_daily", "reach"),
			ImpressionsDaily: t.num(r, "impressions_daily", "impressions"),
			OnlinePeakHour:   t.num(r, "online_peak_hour"),
		}
		if raw := t.cell(r, "audience_data"); raw != "" && json.Valid([]byte(raw)) {
			row.AudienceData = json.RawMessage(raw)
		}
		out = append(out, row)
	}
	return out
}

// parseTags decodes the analysis_tags JSON cell one section at a time, so
// an off-type value only drops its own section. A cell that is not a JSON
// object is treated as untagged.
func parseTags(raw string) *types.AnalysisTags {
	if raw == "" || raw == "null" {
		return nil
	}
	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &sections); err != nil || sections == nil {
		return nil
	}

	tags := &types.AnalysisTags{}
	decode := func(key string, dst any) bool {
		body, ok := sections[key]
		if !ok || string(body) == "null" {
			return false
		}
		return json.Unmarshal(body, dst) == nil
	}
	if b := new(types.BasicTags); decode(string(types.TagBasic), b) {
		tags.Basic = b
	}
	if c := new(types.ContentTags); decode(string(types.TagContent), c) {
		tags.Content = c
	}
	if e := new(types.EditingTags); decode(string(types.TagEditing), e) {
		tags.Editing = e
	}
	if st := new(types.StrategyTags); decode(string(types.TagStrategy), st) {
		tags.Strategy = st
	}
	return tags
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
