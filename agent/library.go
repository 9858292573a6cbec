package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library resolves a function call coming back from the model into its
// response. Experts without tools have a nil Library.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is anything an expert can expose as a tool: another expert, or
// a plain Go function like the calculation.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary builds the dispatcher over a set of functions. An unknown
// function name is answered with an error response rather than dropped,
// the model recovers better from an explicit error.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Sprintf("unknown function %s", call.Name),
			},
		}
	}
}

// NewDeclaration collects the function declarations to advertise to the
// model.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		decls = append(decls, f.Declaration())
	}
	return decls
}
