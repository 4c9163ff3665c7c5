// Package assistant wraps the Gemini API behind the narrow calls the
// application needs: parsing cashier commands into ledger actions,
// business analysis over the recorded history, and speech synthesis.
//
// Everything coming back from the API is treated as untrusted input; the
// parsing and normalization live in the kassa package, never here.
package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// flashModel handles both command parsing and analysis.
	flashModel = "gemini-2.5-flash"
	// ttsModel synthesizes speech from confirmation texts.
	ttsModel = "gemini-2.5-flash-preview-tts"
)

// Assistant holds the Gemini client shared by all calls.
type Assistant struct {
	client *genai.Client
}

// New creates an Assistant. The client picks its API key up from the
// environment (GEMINI_API_KEY).
func New(ctx context.Context) (*Assistant, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return &Assistant{client: client}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *genai.Client) *Assistant {
	return &Assistant{client: client}
}
