package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/etnz/taxonomy"
	"github.com/etnz/taxonomy/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user manages a real estate fund and is here to understand or draft the sustainability
			part of its disclosures: the sustainable investment ratio, how each ownership class
			contributed to it, and how to phrase the result.

			Devise a plan of questions to ask to each experts and come up with the best response to
			the user's request. Ask the Analyst for the fund's computed figures before making any
			claim about them, and never invent a figure.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewRegulator returns an expert on the regulatory texts themselves.
func NewRegulator() *Expert {
	return &Expert{
		Name: "Regulator",
		Description: `This is an expert on EU sustainable finance regulation:
		the EU Taxonomy, SFDR, and the related industry guidance.
		Ask the Regulator whenever you need the regulatory context or the
		current interpretation of a criterion.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in EU sustainable finance regulation: the EU Taxonomy regulation,
			SFDR, and the technical screening criteria for buildings. You leverage Google Search
			to ground your assertions in the actual texts and current supervisory guidance.
			You always distinguish what the regulation mandates from what is market practice.
				`}}},
		},
	}
}

// NewAnalyst returns the expert holding the fund's computed figures. It
// reads the fund description from fundFile on demand, so the chat always
// reflects the file's current content.
func NewAnalyst(fundFile string) *Expert {

	lib := []Function{newCalculationFunc(fundFile)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He runs the sustainable investment calculation on the
		user's fund and knows every computed figure: per ownership class totals, sustainable
		values, ratios, and the classification flags.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst of the user's real estate fund. Use the Calculation tool to
				obtain the fund's computed sustainable investment figures, and answer strictly
				from them. Quote values and ratios exactly as computed, mention when a figure is
				a low-confidence estimate, and relay the calculation warnings when they matter
				to the question.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// newCalculationFunc returns the function the Analyst calls to compute
// the fund's figures.
func newCalculationFunc(fundFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Calculation",
			Description: `Calculation runs the sustainable investment calculation on the user's fund
			and returns the full report: per ownership class rows, fund totals, the sustainable
			ratio and the classification flags.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted calculation report for the fund.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			report, err := calculation(fundFile)
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "Calculation",
					Response: map[string]any{
						"error": err.Error(),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Calculation",
				Response: map[string]any{
					"output": report,
				},
			}
		},
	}
}

// private implementation rendering the calculation report.
func calculation(fundFile string) (string, error) {
	f, err := os.Open(fundFile)
	if err != nil {
		return "", fmt.Errorf("could not open fund file %q: %w", fundFile, err)
	}
	defer f.Close()

	fund, err := taxonomy.DecodeFund(f)
	if err != nil {
		return "", fmt.Errorf("could not decode fund file %q: %w", fundFile, err)
	}
	report, err := taxonomy.NewCalculationReport(fund, taxonomy.DefaultCriteria())
	if err != nil {
		return "", fmt.Errorf("calculation failed: %w", err)
	}
	return renderer.RenderCalculation(report, renderer.CalculationRenderOptions{}), nil
}
