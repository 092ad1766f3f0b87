package aggregator

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"ig-advisor-go/internal/types"
)

const generatedAtLayout = "2006-01-02T15:04:05.000Z"

var lengthBuckets = map[types.VideoLength]string{
	types.LengthShort:     "<10",
	types.LengthMedium:    "10-20",
	types.LengthLong:      "20+",
	types.LengthExtraLong: "20+",
}

// BuildAccountInput runs the whole engine over already filtered rows and
// returns the document for the advice prompt. It never fails: sparse or
// malformed rows degrade to nulls, empty lists and data warnings.
func BuildAccountInput(params types.PromptParams, data types.AccountData, opts Options) types.AccountInputDocument {
	opts = opts.withDefaults()

	latest := BuildLatestMetrics(data.MetricsLogs)
	aggs := BuildAggregates(data.Videos, latest, params.Primary)
	cohorts := SelectCohorts(aggs, opts)
	quality := Audit(aggs, len(data.AccountInsights), opts)

	var benchmark *string
	if m := ChooseBenchmarkMetric(aggs, params.Primary); m != "" {
		benchmark = &m
	}

	secondary := append([]types.Goal{}, params.Secondary...)

	return types.AccountInputDocument{
		SchemaVersion:      types.SchemaVersion,
		GeneratedAt:        opts.Now().UTC().Format(generatedAtLayout),
		AnalysisWindowDays: params.WindowDays,
		Goal: types.GoalEcho{
			Primary:   params.Primary,
			Secondary: secondary,
		},
		Mode:                 params.Mode,
		AccountSummary:       BuildAccountSummary(data.AccountInsights, params.WindowDays),
		ContentOverview:      buildContentOverview(data.Videos, opts),
		PerformanceAggregate: BuildAggregateStats(aggs),
		Benchmarks: types.Benchmarks{
			BenchmarkMetric: benchmark,
			Recent10Avg:     cohortStats(cohorts.Recent),
			Top25Avg:        cohortStats(cohorts.Top),
			Bottom25Avg:     cohortStats(cohorts.Bottom),
		},
		AnalysisTagsInsights: types.AnalysisTagsInsights{
			TopTagsByPerformance:  BuildTagInsights(cohorts.Top, opts.TopTagCount),
			WeakTagsByPerformance: BuildTagInsights(cohorts.Bottom, opts.TopTagCount),
		},
		Samples: types.Samples{
			TopVideos:    buildSamples(head(cohorts.Scored, opts.SampleSize), opts),
			RecentVideos: buildSamples(head(cohorts.ByRecency, opts.SampleSize), opts),
		},
		DataWarnings: quality.Warnings,
	}
}

func buildContentOverview(videos []types.Video, opts Options) types.ContentOverview {
	lengths := map[string]int{"<10": 0, "10-20": 0, "20+": 0}
	hours := make(map[string]int, 24)
	for h := 0; h < 24; h++ {
		hours[strconv.Itoa(h)] = 0
	}

	var coverage types.ManualInputCoverage
	for i := range videos {
		v := &videos[i]
		if v.AnalysisTags != nil && v.AnalysisTags.Basic != nil {
			if bucket, ok := lengthBuckets[v.AnalysisTags.Basic.Length]; ok {
				lengths[bucket]++
			}
		}
		if t, ok := types.ParseTimestamp(v.PostedAt); ok {
			hours[strconv.Itoa(t.In(opts.Location).Hour())]++
		}
		if v.ManualInputDone {
			coverage.DoneTrue++
		} else {
			coverage.DoneFalse++
		}
	}

	return types.ContentOverview{
		VideoCount:          len(videos),
		LengthBucket:        lengths,
		PostingHourBucket:   hours,
		ManualInputCoverage: coverage,
	}
}

func buildSamples(items []*VideoAggregate, opts Options) []types.VideoSample {
	out := make([]types.VideoSample, 0, len(items))
	for _, it := range items {
		out = append(out, buildSample(it, opts.CaptionMaxLength))
	}
	return out
}

func buildSample(a *VideoAggregate, captionMax int) types.VideoSample {
	v := a.Video
	var m LatestMetrics
	if a.Latest != nil {
		m = *a.Latest
	}
	var posted *string
	if v.PostedAt != "" {
		p := v.PostedAt
		posted = &p
	}
	return types.VideoSample{
		VideoID:  v.ID,
		PostedAt: posted,
		Caption:  TruncateCaption(v.Caption, captionMax),
		ManualMetrics: types.ManualMetrics{
			Reach:         v.Reach.Ptr(),
			Shares:        v.Shares.Ptr(),
			ProfileVisits: v.ProfileVisits.Ptr(),
			Follows:       v.Follows.Ptr(),
		},
		LatestMetrics: types.SampleMetrics{
			Views:    m.Views.Ptr(),
			Likes:    m.Likes.Ptr(),
			Saves:    m.Saves.Ptr(),
			Comments: m.Comments.Ptr(),
		},
		Rates: types.SampleRates{
			SaveRate:   a.Rates.SaveRate.Ptr(),
			FollowRate: a.Rates.FollowRate.Ptr(),
		},
		AnalysisTags: v.AnalysisTags,
		SelfScore:    v.SelfScore.Ptr(),
	}
}

// TruncateCaption trims the caption and cuts it to maxRunes runes, appending
// "..." when it was cut. Empty captions become nil.
func TruncateCaption(caption *string, maxRunes int) *string {
	if caption == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*caption)
	if trimmed == "" {
		return nil
	}
	if utf8.RuneCountInString(trimmed) > maxRunes {
		trimmed = string([]rune(trimmed)[:maxRunes]) + "..."
	}
	return &trimmed
}
