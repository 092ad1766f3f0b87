package validation

import "ig-advisor-go/internal/types"

// PromptRequest is the body of the advisor endpoints. Omitted fields take
// their defaults; present fields must be valid.
type PromptRequest struct {
	UserID     string   `json:"user_id" validate:"omitempty,max=128"`
	WindowDays *int     `json:"window_days" validate:"omitempty,oneof=30 60 90"`
	Primary    *string  `json:"primary" validate:"omitempty,oneof=followers reach saves profile_visits"`
	Secondary  []string `json:"secondary" validate:"omitempty,dive,oneof=followers reach saves profile_visits"`
	Mode       *string  `json:"mode" validate:"omitempty,oneof=stable_growth buzz follow_focus"`
}

const (
	DefaultWindowDays = 30
	DefaultPrimary    = types.GoalFollowers
	DefaultMode       = types.ModeStableGrowth
)

// Params validates the request and returns engine parameters with
// defaults applied. Secondary goals drop the primary goal and duplicates,
// keeping first-seen order.
func (r PromptRequest) Params() (types.PromptParams, error) {
	if err := ValidateStruct(r); err != nil {
		return types.PromptParams{}, err
	}

	p := types.PromptParams{
		WindowDays: DefaultWindowDays,
		Primary:    DefaultPrimary,
		Secondary:  []types.Goal{},
		Mode:       DefaultMode,
	}
	if r.WindowDays != nil {
		p.WindowDays = *r.WindowDays
	}
	if r.Primary != nil {
		p.Primary = types.Goal(*r.Primary)
	}
	if r.Mode != nil {
		p.Mode = types.Mode(*r.Mode)
	}
	p.Secondary = NormalizeSecondary(p.Primary, r.Secondary)
	return p, nil
}

// NormalizeSecondary removes primary and repeated goals.
func NormalizeSecondary(primary types.Goal, secondary []string) []types.Goal {
	out := make([]types.Goal, 0, len(secondary))
	seen := map[types.Goal]bool{primary: true}
	for _, s := range secondary {
		g := types.Goal(s)
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
