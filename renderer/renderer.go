// Package renderer renders holdings comparisons as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/holdings"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates = must(fs.Sub(templateFS, "templates"))

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// barWidth is the number of blocks of a 100% weight bar.
const barWidth = 40

var funcs = template.FuncMap{
	// cell escapes text for a markdown table cell.
	"cell": func(s string) string {
		return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
	},
	// bar draws a weight as a horizontal bar.
	"bar": func(p holdings.Percent) string {
		n := int(float64(p)*barWidth/100 + 0.5)
		return strings.Repeat("█", max(0, min(n, barWidth)))
	},
	// shorthand is the signed compact form of an amount.
	"shorthand": func(m holdings.Money) string {
		if m.IsPositive() {
			return "+" + m.Shorthand()
		}
		return m.Shorthand()
	},
	// count formats a number of shares with thousands separators.
	"count": func(q holdings.Quantity) string {
		d := q.Decimal()
		if !d.IsInteger() {
			return d.String()
		}
		return money.NewFormatter(0, ".", ",", "", "1").Format(d.IntPart())
	},
	"order": func(descending bool) string {
		if descending {
			return "descending"
		}
		return "ascending"
	},
}

// RenderComparison renders the Comparison struct to a markdown string.
func RenderComparison(c *Comparison) string {
	partials := map[string]string{
		"comparison_title":       "comparison_title.md",
		"comparison_summary":     "comparison_summary.md",
		"comparison_movers":      "comparison_movers.md",
		"comparison_weights":     "comparison_weights.md",
		"comparison_composition": "comparison_composition.md",
		"comparison_holdings":    "comparison_holdings.md",
		"comparison_sources":     "comparison_sources.md",
	}
	return renderTemplate("comparison", "comparison.md", partials, c)
}

// Markdown renders 'r', the reconciled comparison of 'b'.
func Markdown(b *holdings.Bundle, r *holdings.Result, opts Options) string {
	return RenderComparison(NewComparison(b, r, opts))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
