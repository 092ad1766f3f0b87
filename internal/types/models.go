package types

import "github.com/goccy/go-json"

// Goal is the objective a user optimises the account for.
type Goal string

const (
	GoalFollowers     Goal = "followers"
	GoalReach         Goal = "reach"
	GoalSaves         Goal = "saves"
	GoalProfileVisits Goal = "profile_visits"
)

// Goals lists every goal in display order.
var Goals = []Goal{GoalFollowers, GoalReach, GoalSaves, GoalProfileVisits}

// Mode is the growth strategy the advice should follow.
type Mode string

const (
	ModeStableGrowth Mode = "stable_growth"
	ModeBuzz         Mode = "buzz"
	ModeFollowFocus  Mode = "follow_focus"
)

// Modes lists every strategy mode.
var Modes = []Mode{ModeStableGrowth, ModeBuzz, ModeFollowFocus}

// WindowDayOptions are the analysis windows a caller may request.
var WindowDayOptions = []int{30, 60, 90}

// PromptParams is the already validated request shape for one engine run.
type PromptParams struct {
	WindowDays int    `json:"window_days"`
	Primary    Goal   `json:"primary"`
	Secondary  []Goal `json:"secondary"`
	Mode       Mode   `json:"mode"`
}

// Video is one Instagram post owned by a user. Manual metrics are keyed in
// by hand because the platform API does not expose them.
type Video struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	IGMediaID       string        `json:"ig_media_id"`
	Caption         *string       `json:"caption"`
	PostedAt        string        `json:"posted_at"`
	AnalysisTags    *AnalysisTags `json:"analysis_tags"`
	SelfScore       Num           `json:"self_score"`
	Reach           Num           `json:"reach"`
	Shares          Num           `json:"shares"`
	ProfileVisits   Num           `json:"profile_visits"`
	Follows         Num           `json:"follows"`
	ManualInputDone bool          `json:"manual_input_done"`
}

// MetricSnapshot is one fetch of a video's public counters.
type MetricSnapshot struct {
	VideoID   string `json:"video_id"`
	UserID    string `json:"user_id"`
	FetchedAt string `json:"fetched_at"`
	Views     Num    `json:"views"`
	Likes     Num    `json:"likes"`
	Saves     Num    `json:"saves"`
	Comments  Num    `json:"comments"`
}

// AccountInsightRow is the account level daily total for one calendar date.
type AccountInsightRow struct {
	UserID           string          `json:"user_id"`
	Date             string          `json:"date"`
	FollowersCount   Num             `json:"followers_count"`
	ProfileViews     Num             `json:"profile_views"`
	WebsiteClicks    Num             `json:"website_clicks"`
	ReachDaily       Num             `json:"reach_daily"`
	ImpressionsDaily Num             `json:"impressions_daily"`
	OnlinePeakHour   Num             `json:"online_peak_hour"`
	AudienceData     json.RawMessage `json:"audience_data"`
}

// AccountData is everything the engine consumes for one run. The caller
// filters it by user and window beforehand.
type AccountData struct {
	Videos          []Video             `json:"videos"`
	MetricsLogs     []MetricSnapshot    `json:"metrics_logs"`
	AccountInsights []AccountInsightRow `json:"account_insights"`
}
