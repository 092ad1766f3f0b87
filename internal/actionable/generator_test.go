package actionable

import (
	"strings"
	"testing"

	"ig-advisor-go/internal/types"
)

func f(v float64) *float64 { return &v }

func TestGenerateNoVideos(t *testing.T) {
	cards := Generate(types.AccountInputDocument{AnalysisWindowDays: 60})
	if len(cards) != 1 || !strings.Contains(cards[0].Insight, "60 days") {
		t.Errorf("Generate() = %+v", cards)
	}
}

func TestGenerate(t *testing.T) {
	metric := "saves"
	doc := types.AccountInputDocument{
		Goal: types.GoalEcho{Primary: types.GoalSaves},
		ContentOverview: types.ContentOverview{
			VideoCount:          10,
			ManualInputCoverage: types.ManualInputCoverage{DoneTrue: 6, DoneFalse: 4},
		},
		Benchmarks: types.Benchmarks{
			BenchmarkMetric: &metric,
			Top25Avg:        types.CohortStats{Count: 2, PerVideoLatestAvg: types.MetricAverages{Saves: f(75)}},
			Bottom25Avg:     types.CohortStats{Count: 2, PerVideoLatestAvg: types.MetricAverages{Saves: f(15)}},
		},
		AnalysisTagsInsights: types.AnalysisTagsInsights{
			TopTagsByPerformance: types.TagInsights{
				Basic:   []types.TagCount{{Field: "length", Value: "short", Count: 2}},
				Editing: []types.TagCount{{Field: "hook_text", Value: "question", Count: 1}},
			},
			WeakTagsByPerformance: types.TagInsights{
				Basic: []types.TagCount{{Field: "length", Value: "short", Count: 2}},
			},
		},
	}

	cards := Generate(doc)
	if len(cards) != 3 {
		t.Fatalf("Generate() returned %d cards: %+v", len(cards), cards)
	}
	if !strings.Contains(cards[0].Insight, "4 of 10") {
		t.Errorf("manual card = %+v", cards[0])
	}
	if !strings.Contains(cards[1].Insight, "5.0x") || !strings.Contains(cards[1].Insight, "saves") {
		t.Errorf("benchmark card = %+v", cards[1])
	}
	if !strings.Contains(cards[2].Action, "hook_text=question") {
		t.Errorf("tag card = %+v", cards[2])
	}
}

func TestGenerateFallback(t *testing.T) {
	doc := types.AccountInputDocument{
		ContentOverview: types.ContentOverview{
			VideoCount:          4,
			ManualInputCoverage: types.ManualInputCoverage{DoneTrue: 4},
		},
	}
	cards := Generate(doc)
	if len(cards) != 1 || cards[0].Insight != "No strong performance pattern detected" {
		t.Errorf("Generate() = %+v", cards)
	}
}

func TestMetricValue(t *testing.T) {
	c := types.CohortStats{
		PerVideoLatestAvg: types.MetricAverages{Views: f(1), Follows: f(2)},
		RatesAvg:          types.RateAverages{FollowRate: f(0.1)},
	}
	tests := []struct {
		metric string
		want   *float64
	}{
		{"views", f(1)},
		{"follows", f(2)},
		{"follow_rate", f(0.1)},
		{"save_rate", nil},
		{"unknown", nil},
	}
	for _, tt := range tests {
		got := metricValue(c, tt.metric)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("metricValue(%s) = %v, want %v", tt.metric, got, tt.want)
		}
	}
}
