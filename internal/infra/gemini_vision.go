package infra

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gabo-gil-playground/multi-content-recognition/internal/ports"
)

// GeminiVisionClient implements the same describe capability on
// Google Gemini. The pipeline hands every provider a data URI, so this
// client decodes it back to raw bytes for genai.Blob.
type GeminiVisionClient struct {
	apiKey string
	model  string
}

func NewGeminiVisionClient(apiKey, model string) ports.VisionDescriber {
	return &GeminiVisionClient{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

func (c *GeminiVisionClient) Describe(ctx context.Context, imageDataURI, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no vision API key configured")
	}

	mime, data, err := decodeDataURI(imageDataURI)
	if err != nil {
		return "", fmt.Errorf("gemini: bad image data URI: %w", err)
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(userPrompt),
		&genai.Blob{MIMEType: mime, Data: data},
	)
	if err != nil {
		return "", err
	}

	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

// decodeDataURI splits "data:<mime>;base64,<data>" back into its parts.
func decodeDataURI(uri string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI has no payload")
	}
	mime = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mime, data, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
