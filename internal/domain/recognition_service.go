package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/models"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/ports"
)

// systemPrompt constrains the vision model to a privacy-preserving,
// plain-English object list. Anything identity-revealing is excluded.
const systemPrompt = "You are an expert in image recognition. " +
	"Describe ONLY the non-sensitive physical objects detected in the image, " +
	"excluding people, faces, animals, license plates, texts that reveal identities, or any private information. " +
	"Return a concise plain English list of objects without any additional commentary, suggestions, guesses, or formatting."

const userPrompt = "Analyze this image and describe only the non-sensitive physical objects."

type recognitionService struct {
	vision ports.VisionDescriber
	log    *logger.ZapLogger
}

func NewRecognitionService(vision ports.VisionDescriber, log *logger.ZapLogger) ports.RecognitionService {
	return &recognitionService{
		vision: vision,
		log:    log,
	}
}

// Recognize turns one uploaded image into a trimmed text description.
// Exactly one provider call per invocation; no retries.
func (s *recognitionService) Recognize(ctx context.Context, in models.ImageSubmission) (models.RecognitionResult, error) {
	if len(in.Buffer) == 0 {
		return models.RecognitionResult{}, ErrEmptyBuffer
	}

	dataURI := fmt.Sprintf(
		"data:%s;base64,%s",
		in.MimeType,
		base64.StdEncoding.EncodeToString(in.Buffer),
	)

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "sending image to vision provider",
		Fields: map[string]any{
			"mimeType":   in.MimeType,
			"bufferSize": len(in.Buffer),
		},
	})

	text, err := s.vision.Describe(ctx, dataURI, systemPrompt, userPrompt)
	if err != nil {
		return models.RecognitionResult{}, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.RecognitionResult{}, ErrEmptyDescription
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "image recognized",
		Fields:  map[string]any{"textLength": len(text)},
	})

	return models.RecognitionResult{Text: text}, nil
}
