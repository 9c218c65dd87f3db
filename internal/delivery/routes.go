package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hRecognition *RecognitionHandler) {

	// image recognition
	r.Post("/api/v1/vision/recognize", hRecognition.Recognize)

	// health probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
}
