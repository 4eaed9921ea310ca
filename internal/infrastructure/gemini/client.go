package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// SuggestListingDescriptions drafts three listing description candidates from
// the profile's public fields.
func (c *GeminiClient) SuggestListingDescriptions(ctx context.Context, name, profileType, location string, languages []string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Write 3 distinct, tasteful listing descriptions for a companion
		advertisement on a marketplace.
		Name: %s
		Profile type: %s
		Location: %s
		Languages: %v

		Task: each description is 2-3 sentences, warm and professional,
		without explicit content. Do not invent facts beyond the fields above.
		Output: JSON array of strings. Example: ["...", "...", "..."]
	`, name, profileType, location, languages)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var suggestions []string
	if err := json.Unmarshal([]byte(responseText), &suggestions); err != nil {
		// Fallback: treat each non-empty line as one suggestion
		for _, line := range strings.Split(responseText, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				suggestions = append(suggestions, line)
			}
		}
		if len(suggestions) == 0 {
			return nil, fmt.Errorf("failed to parse suggestions: %w", err)
		}
	}

	return suggestions, nil
}
