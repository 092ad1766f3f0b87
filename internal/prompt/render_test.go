package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"ig-advisor-go/internal/aggregator"
	"ig-advisor-go/internal/types"
)

func TestAccountTemplateHasSinglePlaceholder(t *testing.T) {
	if got := strings.Count(AccountTemplate, Placeholder); got != 1 {
		t.Fatalf("placeholder count = %d, want 1", got)
	}
}

func TestRenderEmbedsIndentedDocument(t *testing.T) {
	opts := aggregator.DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	doc := aggregator.BuildAccountInput(types.PromptParams{
		WindowDays: 60,
		Primary:    types.GoalReach,
		Mode:       types.ModeBuzz,
	}, types.AccountData{}, opts)

	text, err := Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(text, string(want)) {
		t.Errorf("rendered prompt does not contain the indented document")
	}
	if strings.Contains(text, Placeholder) {
		t.Errorf("placeholder left in rendered prompt")
	}
	if !strings.HasPrefix(text, "You are a growth strategy consultant") {
		t.Errorf("template preamble missing")
	}
	if !strings.Contains(text, `"generated_at": "2026-01-02T03:04:05.000Z"`) {
		t.Errorf("generated_at not rendered")
	}
}

func TestRenderWith(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		doc     any
		want    string
		wantErr bool
	}{
		{"object", "in: {{ACCOUNT_INPUT_JSON}} :out", map[string]int{"a": 1}, "in: {\n  \"a\": 1\n} :out", false},
		{"only first placeholder", "{{ACCOUNT_INPUT_JSON}}|{{ACCOUNT_INPUT_JSON}}", []int{}, "[]|{{ACCOUNT_INPUT_JSON}}", false},
		{"missing placeholder", "no token here", 1, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderWith(tt.tmpl, tt.doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RenderWith() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("RenderWith() = %q, want %q", got, tt.want)
			}
		})
	}
}
