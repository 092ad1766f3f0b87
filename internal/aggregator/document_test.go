package aggregator

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"ig-advisor-go/internal/types"
)

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2026, 4, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*3600)) }
	return opts
}

func savesParams() types.PromptParams {
	return types.PromptParams{
		WindowDays: 30,
		Primary:    types.GoalSaves,
		Secondary:  []types.Goal{types.GoalReach},
		Mode:       types.ModeStableGrowth,
	}
}

// tenVideos has 8 videos with a numeric saves snapshot and 2 without.
func tenVideos(manualFalse int) types.AccountData {
	var data types.AccountData
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("v%d", i)
		caption := fmt.Sprintf("caption %d", i)
		data.Videos = append(data.Videos, types.Video{
			ID:              id,
			Caption:         &caption,
			PostedAt:        fmt.Sprintf("2026-03-%02dT%02d:00:00Z", i+1, i),
			ManualInputDone: i >= manualFalse,
			AnalysisTags:    &types.AnalysisTags{Basic: &types.BasicTags{Length: types.LengthShort}},
		})
		if i < 8 {
			data.MetricsLogs = append(data.MetricsLogs, types.MetricSnapshot{
				VideoID: id, FetchedAt: "2026-03-20T00:00:00Z", Saves: num(float64(10 * (i + 1))),
			})
		}
	}
	data.AccountInsights = []types.AccountInsightRow{{Date: "2026-03-20", FollowersCount: num(1000)}}
	return data
}

func TestBuildAccountInputEmpty(t *testing.T) {
	doc := BuildAccountInput(types.PromptParams{WindowDays: 30, Primary: types.GoalFollowers, Mode: types.ModeBuzz}, types.AccountData{}, fixedOptions())

	if doc.ContentOverview.VideoCount != 0 {
		t.Errorf("video_count = %d, want 0", doc.ContentOverview.VideoCount)
	}
	if !hasWarning(doc.DataWarnings, "no account_insights") || !hasWarning(doc.DataWarnings, "no videos") {
		t.Errorf("data_warnings = %v", doc.DataWarnings)
	}
	if doc.Benchmarks.BenchmarkMetric != nil {
		t.Errorf("benchmark_metric = %q, want null", *doc.Benchmarks.BenchmarkMetric)
	}
	if doc.Benchmarks.Top25Avg.Count != 0 || doc.Benchmarks.Bottom25Avg.Count != 0 || doc.Benchmarks.Recent10Avg.Count != 0 {
		t.Errorf("cohort counts must be zero")
	}
	if doc.Goal.Secondary == nil {
		t.Errorf("secondary must encode as [] not null")
	}
	if doc.GeneratedAt != "2026-04-01T00:30:00.000Z" {
		t.Errorf("generated_at = %s", doc.GeneratedAt)
	}
	if doc.SchemaVersion != types.SchemaVersion {
		t.Errorf("schema_version = %s", doc.SchemaVersion)
	}
	if len(doc.ContentOverview.PostingHourBucket) != 24 {
		t.Errorf("posting_hour_bucket has %d keys, want 24", len(doc.ContentOverview.PostingHourBucket))
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"top_videos":[]`, `"basic":[]`, `"data_warnings":[`, `"audience_data":{}`, `"benchmark_metric":null`} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("document JSON missing %s", want)
		}
	}
}

func TestBuildAccountInputSavesScenario(t *testing.T) {
	t.Run("two of ten missing metrics stays quiet", func(t *testing.T) {
		doc := BuildAccountInput(savesParams(), tenVideos(2), fixedOptions())
		if len(doc.DataWarnings) != 0 {
			t.Errorf("data_warnings = %v, want none", doc.DataWarnings)
		}
		if doc.Benchmarks.BenchmarkMetric == nil || *doc.Benchmarks.BenchmarkMetric != "saves" {
			t.Errorf("benchmark_metric = %v, want saves", doc.Benchmarks.BenchmarkMetric)
		}
		if doc.Benchmarks.Top25Avg.Count != 2 || doc.Benchmarks.Bottom25Avg.Count != 2 {
			t.Errorf("quartile counts = %d/%d, want 2/2", doc.Benchmarks.Top25Avg.Count, doc.Benchmarks.Bottom25Avg.Count)
		}
		if !floatEq(doc.Benchmarks.Top25Avg.PerVideoLatestAvg.Saves, 75) {
			t.Errorf("top25 saves avg = %v, want 75", doc.Benchmarks.Top25Avg.PerVideoLatestAvg.Saves)
		}
		if !floatEq(doc.Benchmarks.Bottom25Avg.PerVideoLatestAvg.Saves, 15) {
			t.Errorf("bottom25 saves avg = %v, want 15", doc.Benchmarks.Bottom25Avg.PerVideoLatestAvg.Saves)
		}
		if doc.Benchmarks.Recent10Avg.Count != 10 {
			t.Errorf("recent10 count = %d", doc.Benchmarks.Recent10Avg.Count)
		}
		if got := doc.ContentOverview.LengthBucket["<10"]; got != 10 {
			t.Errorf("length_bucket[<10] = %d, want 10", got)
		}
		if got := doc.ContentOverview.PostingHourBucket["3"]; got != 1 {
			t.Errorf("posting_hour_bucket[3] = %d, want 1", got)
		}
		if doc.ContentOverview.ManualInputCoverage != (types.ManualInputCoverage{DoneTrue: 8, DoneFalse: 2}) {
			t.Errorf("manual coverage = %+v", doc.ContentOverview.ManualInputCoverage)
		}
		top := doc.AnalysisTagsInsights.TopTagsByPerformance.Basic
		if len(top) != 1 || top[0].Count != 2 {
			t.Errorf("top basic tags = %+v", top)
		}
		if len(doc.Samples.TopVideos) != 3 || doc.Samples.TopVideos[0].VideoID != "v7" {
			t.Errorf("top samples = %+v", doc.Samples.TopVideos)
		}
		if len(doc.Samples.RecentVideos) != 3 || doc.Samples.RecentVideos[0].VideoID != "v9" {
			t.Errorf("recent samples = %+v", doc.Samples.RecentVideos)
		}
	})

	t.Run("three unfinished manual inputs warn", func(t *testing.T) {
		doc := BuildAccountInput(savesParams(), tenVideos(3), fixedOptions())
		if len(doc.DataWarnings) != 1 || !hasWarning(doc.DataWarnings, "manual_input_done=false: 3/10") {
			t.Errorf("data_warnings = %v", doc.DataWarnings)
		}
	})
}

func TestBuildAccountInputPostingHourLocation(t *testing.T) {
	opts := fixedOptions()
	opts.Location = time.FixedZone("JST", 9*3600)
	data := types.AccountData{Videos: []types.Video{{ID: "a", PostedAt: "2026-03-01T22:00:00Z"}}}

	doc := BuildAccountInput(savesParams(), data, opts)
	if doc.ContentOverview.PostingHourBucket["7"] != 1 {
		t.Errorf("posting_hour_bucket = %v, want hour 7", doc.ContentOverview.PostingHourBucket)
	}
}

func TestBuildAccountInputRoundTrip(t *testing.T) {
	data := tenVideos(4)
	data.AccountInsights[0].AudienceData = json.RawMessage(`{"gender_age":{"F.18-24":120},"online_hours":{"21":40}}`)
	doc := BuildAccountInput(savesParams(), data, fixedOptions())

	first, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, bad := range []string{"NaN", "Inf"} {
		if bytes.Contains(first, []byte(bad)) {
			t.Errorf("document contains %s", bad)
		}
	}

	var decoded types.AccountInputDocument
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	second, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("round trip changed the document\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestBuildAccountInputDoesNotMutateInput(t *testing.T) {
	data := tenVideos(1)
	before := types.AccountData{
		Videos:          append([]types.Video(nil), data.Videos...),
		MetricsLogs:     append([]types.MetricSnapshot(nil), data.MetricsLogs...),
		AccountInsights: append([]types.AccountInsightRow(nil), data.AccountInsights...),
	}
	BuildAccountInput(savesParams(), data, fixedOptions())
	if !reflect.DeepEqual(before, data) {
		t.Errorf("input data was modified")
	}
}

func TestTruncateCaption(t *testing.T) {
	long := strings.Repeat("あ", 81)
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil", nil, nil},
		{"blank", strPtr("   "), nil},
		{"trimmed", strPtr("  hello  "), strPtr("hello")},
		{"exactly max", strPtr(strings.Repeat("a", 80)), strPtr(strings.Repeat("a", 80))},
		{"multibyte over max", &long, strPtr(strings.Repeat("あ", 80) + "...")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateCaption(tt.in, 80)
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("TruncateCaption() = %v, want %v", got, tt.want)
			}
		})
	}
}
