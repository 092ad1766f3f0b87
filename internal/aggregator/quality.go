package aggregator

import "fmt"

const (
	WarnNoAccountInsights = "no account_insights rows exist in the analysis window."
	WarnNoVideos          = "no videos exist in the analysis window."
)

// QualityReport summarises data coverage for one run.
type QualityReport struct {
	TotalVideos           int
	MissingLatest         int
	ManualIncomplete      int
	MissingLatestRatio    float64
	ManualIncompleteRatio float64
	Warnings              []string
}

// Audit inspects coverage and returns advisory warnings. It never fails.
func Audit(aggs []*VideoAggregate, accountRows int, opts Options) QualityReport {
	opts = opts.withDefaults()
	r := QualityReport{TotalVideos: len(aggs), Warnings: []string{}}
	for _, a := range aggs {
		if a.Latest == nil {
			r.MissingLatest++
		}
		if !a.Video.ManualInputDone {
			r.ManualIncomplete++
		}
	}
	if r.TotalVideos > 0 {
		r.MissingLatestRatio = float64(r.MissingLatest) / float64(r.TotalVideos)
		r.ManualIncompleteRatio = float64(r.ManualIncomplete) / float64(r.TotalVideos)
	}

	if accountRows == 0 {
		r.Warnings = append(r.Warnings, WarnNoAccountInsights)
	}
	if r.TotalVideos == 0 {
		r.Warnings = append(r.Warnings, WarnNoVideos)
		return r
	}
	if r.MissingLatestRatio >= opts.MissingMetricsWarnRatio {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"metrics_logs coverage is low (no latest snapshot: %d/%d).", r.MissingLatest, r.TotalVideos))
	}
	if r.ManualIncompleteRatio >= opts.ManualIncompleteWarnRatio {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"many videos have unfinished manual input (manual_input_done=false: %d/%d).", r.ManualIncomplete, r.TotalVideos))
	}
	return r
}
