package types

import "github.com/goccy/go-json"

// SchemaVersion identifies the layout of AccountInputDocument.
const SchemaVersion = "account_prompt_v1"

// --------------------------------------------
// Document handed to the advice generator
// --------------------------------------------
type AccountInputDocument struct {
	SchemaVersion        string               `json:"schema_version"`
	GeneratedAt          string               `json:"generated_at"`
	AnalysisWindowDays   int                  `json:"analysis_window_days"`
	Goal                 GoalEcho             `json:"goal"`
	Mode                 Mode                 `json:"mode"`
	AccountSummary       AccountSummary       `json:"account_summary"`
	ContentOverview      ContentOverview      `json:"content_overview"`
	PerformanceAggregate AggregateStats       `json:"performance_aggregate"`
	Benchmarks           Benchmarks           `json:"benchmarks"`
	AnalysisTagsInsights AnalysisTagsInsights `json:"analysis_tags_insights"`
	Samples              Samples              `json:"samples"`
	DataWarnings         []string             `json:"data_warnings"`
}

type GoalEcho struct {
	Primary   Goal   `json:"primary"`
	Secondary []Goal `json:"secondary"`
}

// --------------------------------------------
// Account level summary
// --------------------------------------------
type AccountSummary struct {
	WindowDays   int             `json:"window_days"`
	Latest       AccountLatest   `json:"latest"`
	Avg          AccountAvg      `json:"avg"`
	AudienceData json.RawMessage `json:"audience_data"`
}

type AccountLatest struct {
	FollowersCount   *float64 `json:"followers_count"`
	ProfileViews     *float64 `json:"profile_views"`
	WebsiteClicks    *float64 `json:"website_clicks"`
	ReachDaily       *float64 `json:"reach_daily"`
	ImpressionsDaily *float64 `json:"impressions_daily"`
	OnlinePeakHour   *float64 `json:"online_peak_hour"`
}

type AccountAvg struct {
	ProfileViews     *float64 `json:"profile_views"`
	WebsiteClicks    *float64 `json:"website_clicks"`
	ReachDaily       *float64 `json:"reach_daily"`
	ImpressionsDaily *float64 `json:"impressions_daily"`
}

// --------------------------------------------
// Content overview
// --------------------------------------------
type ContentOverview struct {
	VideoCount          int                 `json:"video_count"`
	LengthBucket        map[string]int      `json:"length_bucket"`
	PostingHourBucket   map[string]int      `json:"posting_hour_bucket"`
	ManualInputCoverage ManualInputCoverage `json:"manual_input_coverage"`
}

type ManualInputCoverage struct {
	DoneTrue  int `json:"manual_input_done_true"`
	DoneFalse int `json:"manual_input_done_false"`
}

// --------------------------------------------
// Statistical aggregates
// --------------------------------------------
type AggregateStats struct {
	PerVideoLatestAvg MetricAverages `json:"per_video_latest_avg"`
	RatesAvg          RateAverages   `json:"rates_avg"`
}

type MetricAverages struct {
	Views         *float64 `json:"views"`
	Likes         *float64 `json:"likes"`
	Saves         *float64 `json:"saves"`
	Comments      *float64 `json:"comments"`
	Reach         *float64 `json:"reach"`
	Shares        *float64 `json:"shares"`
	ProfileVisits *float64 `json:"profile_visits"`
	Follows       *float64 `json:"follows"`
}

type RateAverages struct {
	LikeRate    *float64 `json:"like_rate"`
	SaveRate    *float64 `json:"save_rate"`
	CommentRate *float64 `json:"comment_rate"`
	ShareRate   *float64 `json:"share_rate"`
	FollowRate  *float64 `json:"follow_rate"`
}

// CohortStats is AggregateStats plus the cohort size, flattened in JSON.
type CohortStats struct {
	Count             int            `json:"count"`
	PerVideoLatestAvg MetricAverages `json:"per_video_latest_avg"`
	RatesAvg          RateAverages   `json:"rates_avg"`
}

type Benchmarks struct {
	BenchmarkMetric *string     `json:"benchmark_metric"`
	Recent10Avg     CohortStats `json:"recent10_avg"`
	Top25Avg        CohortStats `json:"top25_avg"`
	Bottom25Avg     CohortStats `json:"bottom25_avg"`
}

// --------------------------------------------
// Tag insights
// --------------------------------------------
type TagCount struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

type TagInsights struct {
	Basic    []TagCount `json:"basic"`
	Content  []TagCount `json:"content"`
	Editing  []TagCount `json:"editing"`
	Strategy []TagCount `json:"strategy"`
}

type AnalysisTagsInsights struct {
	TopTagsByPerformance  TagInsights `json:"top_tags_by_performance"`
	WeakTagsByPerformance TagInsights `json:"weak_tags_by_performance"`
}

// --------------------------------------------
// Sample excerpts
// --------------------------------------------
type Samples struct {
	TopVideos    []VideoSample `json:"top_videos"`
	RecentVideos []VideoSample `json:"recent_videos"`
}

type VideoSample struct {
	VideoID       string        `json:"video_id"`
	PostedAt      *string       `json:"posted_at"`
	Caption       *string       `json:"caption"`
	ManualMetrics ManualMetrics `json:"manual_metrics"`
	LatestMetrics SampleMetrics `json:"latest_metrics"`
	Rates         SampleRates   `json:"rates"`
	AnalysisTags  *AnalysisTags `json:"analysis_tags"`
	SelfScore     *float64      `json:"self_score"`
}

type ManualMetrics struct {
	Reach         *float64 `json:"reach"`
	Shares        *float64 `json:"shares"`
	ProfileVisits *float64 `json:"profile_visits"`
	Follows       *float64 `json:"follows"`
}

type SampleMetrics struct {
	Views    *float64 `json:"views"`
	Likes    *float64 `json:"likes"`
	Saves    *float64 `json:"saves"`
	Comments *float64 `json:"comments"`
}

type SampleRates struct {
	SaveRate   *float64 `json:"save_rate"`
	FollowRate *float64 `json:"follow_rate"`
}
