package models

// ImageSubmission is one uploaded image as it arrives at the server
// boundary. Built fresh per request, consumed once, never stored.
type ImageSubmission struct {
	Buffer   []byte
	MimeType string // declared by the upload, e.g. "image/jpeg"
}

// RecognitionResult is the trimmed, non-empty description returned to
// the caller. An empty string is a failure, not a result.
type RecognitionResult struct {
	Text string `json:"text"`
}
