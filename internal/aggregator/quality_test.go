package aggregator

import (
	"strings"
	"testing"

	"ig-advisor-go/internal/types"
)

// auditVideos builds n aggregates; the first missing lack a snapshot and the
// first manualFalse have unfinished manual input.
func auditVideos(n, missing, manualFalse int) []*VideoAggregate {
	out := make([]*VideoAggregate, 0, n)
	for i := 0; i < n; i++ {
		a := &VideoAggregate{Video: &types.Video{ManualInputDone: i >= manualFalse}}
		if i >= missing {
			a.Latest = &LatestMetrics{Saves: num(float64(i))}
		}
		out = append(out, a)
	}
	return out
}

func hasWarning(warnings []string, fragment string) bool {
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}

func TestAudit(t *testing.T) {
	tests := []struct {
		name        string
		aggs        []*VideoAggregate
		accountRows int
		wantCount   int
		wantMetrics bool
		wantManual  bool
	}{
		{"healthy coverage", auditVideos(10, 2, 2), 5, 0, false, false},
		{"manual threshold reached", auditVideos(10, 2, 3), 5, 1, false, true},
		{"metrics threshold reached", auditVideos(10, 5, 0), 5, 1, true, false},
		{"both thresholds and no account rows", auditVideos(4, 4, 4), 0, 3, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Audit(tt.aggs, tt.accountRows, DefaultOptions())
			if len(r.Warnings) != tt.wantCount {
				t.Errorf("warnings = %v, want %d", r.Warnings, tt.wantCount)
			}
			if got := hasWarning(r.Warnings, "metrics_logs"); got != tt.wantMetrics {
				t.Errorf("metrics warning = %v, want %v", got, tt.wantMetrics)
			}
			if got := hasWarning(r.Warnings, "manual_input_done=false"); got != tt.wantManual {
				t.Errorf("manual warning = %v, want %v", got, tt.wantManual)
			}
		})
	}
}

func TestAuditEmpty(t *testing.T) {
	r := Audit(nil, 0, DefaultOptions())
	if len(r.Warnings) != 2 || r.Warnings[0] != WarnNoAccountInsights || r.Warnings[1] != WarnNoVideos {
		t.Errorf("warnings = %v", r.Warnings)
	}
	if r.MissingLatestRatio != 0 || r.ManualIncompleteRatio != 0 {
		t.Errorf("ratios must be zero without videos")
	}
}

func TestAuditCustomThresholds(t *testing.T) {
	opts := DefaultOptions()
	opts.ManualIncompleteWarnRatio = 0.1
	r := Audit(auditVideos(10, 0, 1), 1, opts)
	if !hasWarning(r.Warnings, "manual_input_done=false: 1/10") {
		t.Errorf("warnings = %v, want manual warning", r.Warnings)
	}
}
