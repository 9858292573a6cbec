package renderer

import (
	"github.com/etnz/taxonomy"
)

// CalculationRenderOptions holds configuration for rendering a calculation report.
type CalculationRenderOptions struct {
	SkipWarnings bool // Do not render the warnings section.
}

// RenderCalculation renders the CalculationReport struct to a markdown string.
func RenderCalculation(r *taxonomy.CalculationReport, opts CalculationRenderOptions) string {
	partials := map[string]string{
		"calculation_title":      "calculation_title.md",
		"calculation_categories": "calculation_categories.md",
		"calculation_totals":     "calculation_totals.md",
	}

	// Skip warnings if requested. An empty file name results in an empty template.
	if opts.SkipWarnings {
		partials["calculation_warnings"] = ""
	} else {
		partials["calculation_warnings"] = "calculation_warnings.md"
	}

	return renderTemplate("calculation", "calculation.md", partials, r)
}
