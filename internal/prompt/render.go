package prompt

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Render substitutes doc, indented with two spaces, into AccountTemplate.
func Render(doc any) (string, error) {
	return RenderWith(AccountTemplate, doc)
}

// RenderWith substitutes doc into the first Placeholder of tmpl.
func RenderWith(tmpl string, doc any) (string, error) {
	if !strings.Contains(tmpl, Placeholder) {
		return "", fmt.Errorf("template has no %s placeholder", Placeholder)
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal account input: %w", err)
	}
	return strings.Replace(tmpl, Placeholder, string(body), 1), nil
}
