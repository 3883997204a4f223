// Package renderer turns ledger views into markdown reports. The
// report layout lives in embedded templates so the wording can be
// tweaked without touching Go code.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// SummaryRenderOptions holds configuration for rendering a summary
// report.
type SummaryRenderOptions struct {
	SkipDetails bool // Render category totals only, no per-line tables.
}

// RenderSummary renders the Summary view to a markdown string.
func RenderSummary(s *Summary, opts SummaryRenderOptions) string {
	partials := map[string]string{
		"summary_title":  "summary_title.md",
		"summary_cash":   "summary_cash.md",
		"summary_stocks": "summary_stocks.md",
		"summary_crypto": "summary_crypto.md",
	}
	if opts.SkipDetails {
		partials["summary_cash"] = "summary_cash_totals.md"
		partials["summary_stocks"] = "summary_stocks_totals.md"
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
