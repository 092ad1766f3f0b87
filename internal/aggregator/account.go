package aggregator

import (
	"sort"
	"time"

	"github.com/goccy/go-json"

	"ig-advisor-go/internal/types"
)

var emptyObject = json.RawMessage(`{}`)

// BuildAccountSummary reports the newest insight row and the window means.
func BuildAccountSummary(rows []types.AccountInsightRow, windowDays int) types.AccountSummary {
	sorted := make([]*types.AccountInsightRow, 0, len(rows))
	for i := range rows {
		sorted = append(sorted, &rows[i])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return rowDate(sorted[i]).After(rowDate(sorted[j]))
	})

	summary := types.AccountSummary{
		WindowDays:   windowDays,
		AudienceData: emptyObject,
	}
	if len(sorted) > 0 {
		latest := sorted[0]
		summary.Latest = types.AccountLatest{
			FollowersCount:   latest.FollowersCount.Ptr(),
			ProfileViews:     latest.ProfileViews.Ptr(),
			WebsiteClicks:    latest.WebsiteClicks.Ptr(),
			ReachDaily:       latest.ReachDaily.Ptr(),
			ImpressionsDaily: latest.ImpressionsDaily.Ptr(),
			OnlinePeakHour:   latest.OnlinePeakHour.Ptr(),
		}
		if audience := latest.AudienceData; len(audience) > 0 && string(audience) != "null" && json.Valid(audience) {
			summary.AudienceData = audience
		}
	}

	column := func(pick func(*types.AccountInsightRow) types.Num) *float64 {
		vals := make([]types.Num, 0, len(sorted))
		for _, r := range sorted {
			vals = append(vals, pick(r))
		}
		return avgOrNull(vals)
	}
	summary.Avg = types.AccountAvg{
		ProfileViews:     column(func(r *types.AccountInsightRow) types.Num { return r.ProfileViews }),
		WebsiteClicks:    column(func(r *types.AccountInsightRow) types.Num { return r.WebsiteClicks }),
		ReachDaily:       column(func(r *types.AccountInsightRow) types.Num { return r.ReachDaily }),
		ImpressionsDaily: column(func(r *types.AccountInsightRow) types.Num { return r.ImpressionsDaily }),
	}
	return summary
}

func rowDate(r *types.AccountInsightRow) time.Time {
	if parsed, ok := types.ParseTimestamp(r.Date); ok {
		return parsed
	}
	return epoch
}
