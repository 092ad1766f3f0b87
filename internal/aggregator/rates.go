package aggregator

import (
	"math"

	"ig-advisor-go/internal/types"
)

const ratePrecision = 4

// Rates are the engagement ratios of one video.
type Rates struct {
	LikeRate    types.Num
	SaveRate    types.Num
	CommentRate types.Num
	ShareRate   types.Num
	FollowRate  types.Num
}

// SafeRate divides numerator by denominator and rounds to four decimals.
// It is null when either side is missing or non-finite, when the
// denominator is zero, or when the result would be negative.
func SafeRate(numerator, denominator types.Num) types.Num {
	n, ok := numerator.Float()
	if !ok {
		return types.Num{}
	}
	d, ok := denominator.Float()
	if !ok || d == 0 {
		return types.Num{}
	}
	r := n / d
	if r < 0 {
		return types.Num{}
	}
	return types.NumOf(roundTo(r, ratePrecision))
}

func roundTo(v float64, decimals int) float64 {
	f := math.Pow(10, float64(decimals))
	return math.Round(v*f) / f
}

func computeRates(v *types.Video, latest *LatestMetrics) Rates {
	var m LatestMetrics
	if latest != nil {
		m = *latest
	}
	return Rates{
		LikeRate:    SafeRate(m.Likes, m.Views),
		SaveRate:    SafeRate(m.Saves, m.Views),
		CommentRate: SafeRate(m.Comments, m.Views),
		ShareRate:   SafeRate(v.Shares, v.Reach),
		FollowRate:  SafeRate(v.Follows, v.ProfileVisits),
	}
}
