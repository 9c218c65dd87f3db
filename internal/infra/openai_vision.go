package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabo-gil-playground/multi-content-recognition/internal/ports"
)

// OpenAIVisionClient talks to any OpenAI-compatible chat completions
// endpoint. The image travels inline as a data URI with detail "low"
// to bias the provider toward the cheap fast pass.
type OpenAIVisionClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIVisionClient(apiKey, baseURL, model string) ports.VisionDescriber {
	return &OpenAIVisionClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

type oaImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type oaContentPart struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *oaImageURL `json:"image_url,omitempty"`
}

type oaMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type oaRequest struct {
	Model    string      `json:"model"`
	Messages []oaMessage `json:"messages"`
}

type oaResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIVisionClient) Describe(ctx context.Context, imageDataURI, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no vision API key configured")
	}

	body := oaRequest{
		Model: c.model,
		Messages: []oaMessage{
			{Role: "system", Content: systemPrompt},
			{
				Role: "user",
				Content: []oaContentPart{
					{Type: "text", Text: userPrompt},
					{Type: "image_url", ImageURL: &oaImageURL{URL: imageDataURI, Detail: "low"}},
				},
			},
		},
	}

	j, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		c.baseURL+"/chat/completions",
		bytes.NewReader(j),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision request: %w", err)
	}
	defer resp.Body.Close()

	rawResp, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vision provider http %d: %s", resp.StatusCode, truncate(rawResp, 512))
	}

	var out oaResponse
	if err := json.Unmarshal(rawResp, &out); err != nil {
		return "", fmt.Errorf("vision response decode: %w", err)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("vision response has no choices")
	}

	return out.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
