package actionable

import (
	"fmt"

	"ig-advisor-go/internal/types"
)

// ManualGapThreshold is the share of videos without manual input above
// which filling it in becomes the first action.
const ManualGapThreshold = 0.35

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate derives deterministic action cards from an account input
// document. They accompany the LLM advice and stand in for it when the
// gateway is down.
func Generate(doc types.AccountInputDocument) []ActionCard {
	overview := doc.ContentOverview
	if overview.VideoCount == 0 {
		return []ActionCard{{
			Insight: fmt.Sprintf("No videos posted in the last %d days", doc.AnalysisWindowDays),
			Action:  "Publish and tag a few videos before asking for advice",
			Impact:  "Gives the benchmarks something to compare",
		}}
	}

	var cards []ActionCard
	missing := overview.ManualInputCoverage.DoneFalse
	if share := float64(missing) / float64(overview.VideoCount); share >= ManualGapThreshold {
		cards = append(cards, ActionCard{
			Insight: fmt.Sprintf("Manual metrics missing on %d of %d videos (%.0f%%)", missing, overview.VideoCount, share*100),
			Action:  "Fill in reach, shares, profile visits and follows for recent videos",
			Impact:  "Enables follow rate and share rate benchmarks",
		})
	}

	if card, ok := benchmarkCard(doc); ok {
		cards = append(cards, card)
	}
	if card, ok := tagCard(doc.AnalysisTagsInsights); ok {
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		cards = append(cards, ActionCard{
			Insight: "No strong performance pattern detected",
			Action:  "Keep tagging videos and collect more data",
			Impact:  "Low immediate intervention",
		})
	}
	return cards
}

func benchmarkCard(doc types.AccountInputDocument) (ActionCard, bool) {
	b := doc.Benchmarks
	if b.BenchmarkMetric == nil {
		return ActionCard{}, false
	}
	metric := *b.BenchmarkMetric
	top := metricValue(b.Top25Avg, metric)
	bottom := metricValue(b.Bottom25Avg, metric)
	if top == nil || bottom == nil || *bottom <= 0 || *top <= *bottom {
		return ActionCard{}, false
	}
	return ActionCard{
		Insight: fmt.Sprintf("Top quartile averages %.1fx the bottom quartile on %s", *top / *bottom, metric),
		Action:  "Rework the bottom quartile formats toward what the top quartile shares",
		Impact:  fmt.Sprintf("Lifts %s toward the top quartile average", doc.Goal.Primary),
	}, true
}

// tagCard names the most frequent top-quartile tag that never shows up in
// the bottom quartile.
func tagCard(ins types.AnalysisTagsInsights) (ActionCard, bool) {
	sections := []struct {
		top, weak []types.TagCount
	}{
		{ins.TopTagsByPerformance.Basic, ins.WeakTagsByPerformance.Basic},
		{ins.TopTagsByPerformance.Content, ins.WeakTagsByPerformance.Content},
		{ins.TopTagsByPerformance.Editing, ins.WeakTagsByPerformance.Editing},
		{ins.TopTagsByPerformance.Strategy, ins.WeakTagsByPerformance.Strategy},
	}

	var best *types.TagCount
	for _, s := range sections {
		weak := make(map[string]bool, len(s.weak))
		for _, w := range s.weak {
			weak[w.Field+"::"+w.Value] = true
		}
		for i := range s.top {
			t := &s.top[i]
			if weak[t.Field+"::"+t.Value] {
				continue
			}
			if best == nil || t.Count > best.Count {
				best = t
			}
		}
	}
	if best == nil {
		return ActionCard{}, false
	}
	return ActionCard{
		Insight: fmt.Sprintf("%s=%s appears in %d top videos and no weak ones", best.Field, best.Value, best.Count),
		Action:  fmt.Sprintf("Use %s=%s in the next videos", best.Field, best.Value),
		Impact:  "Repeats a trait of the best performing videos",
	}, true
}

func metricValue(c types.CohortStats, metric string) *float64 {
	m, r := c.PerVideoLatestAvg, c.RatesAvg
	switch metric {
	case "views":
		return m.Views
	case "saves":
		return m.Saves
	case "reach":
		return m.Reach
	case "profile_visits":
		return m.ProfileVisits
	case "follows":
		return m.Follows
	case "save_rate":
		return r.SaveRate
	case "follow_rate":
		return r.FollowRate
	}
	return nil
}
