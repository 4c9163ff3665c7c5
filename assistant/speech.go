package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Speak synthesizes the given text and returns the raw audio bytes.
func (a *Assistant) Speak(ctx context.Context, text string) ([]byte, error) {
	resp, err := a.client.Models.GenerateContent(ctx, ttsModel, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: "Kore"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("speech synthesis returned no audio")
}
