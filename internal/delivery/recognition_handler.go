package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/models"
	"github.com/gabo-gil-playground/multi-content-recognition/internal/ports"
)

const (
	// UploadFieldName is the multipart field the image must arrive under.
	UploadFieldName = "image"

	// MaxUploadBytes caps the whole request body before the handler
	// does any work.
	MaxUploadBytes = 10 << 20 // 10 MiB

	// MissingUploadMessage is the one failure callers can tell apart.
	MissingUploadMessage = `Image file is required under field "image".`

	// GenericErrorMessage covers every other failure. Provider outages,
	// empty buffers and empty descriptions all collapse into it; the
	// detail stays in the logs.
	GenericErrorMessage = "Unable to process the provided image. Please verify the file and try again."
)

type RecognitionHandler struct {
	recognition ports.RecognitionService
	log         *logger.ZapLogger
}

func NewRecognitionHandler(recognition ports.RecognitionService, log *logger.ZapLogger) *RecognitionHandler {
	return &RecognitionHandler{
		recognition: recognition,
		log:         log,
	}
}

// POST /api/v1/vision/recognize
func (h *RecognitionHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile(UploadFieldName)
	if err != nil {
		// An oversize body is not a missing file; it still gets the
		// generic answer.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "recognition request over the upload size limit",
				Error:   err,
			})
			writeError(w, GenericErrorMessage)
			return
		}
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "recognition request without image file",
			Error:   err,
		})
		writeError(w, MissingUploadMessage)
		return
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "failed to read uploaded image",
			Error:   err,
		})
		writeError(w, GenericErrorMessage)
		return
	}

	// Parts without a Content-Type still get a mime type so the data
	// URI downstream is never degenerate.
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	result, err := h.recognition.Recognize(r.Context(), models.ImageSubmission{
		Buffer:   buf,
		MimeType: mimeType,
	})
	if err != nil {
		// Every pipeline failure maps to the same generic 400; only
		// operators see the cause.
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "image recognition failed",
			Error:   err,
			Fields: map[string]any{
				"fileName": header.Filename,
				"size":     len(buf),
			},
		})
		writeError(w, GenericErrorMessage)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
