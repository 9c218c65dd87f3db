package ports

import (
	"context"

	"github.com/gabo-gil-playground/multi-content-recognition/internal/models"
)

type RecognitionService interface {
	Recognize(ctx context.Context, in models.ImageSubmission) (models.RecognitionResult, error)
}
