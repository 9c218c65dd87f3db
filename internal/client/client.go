// Package client is the submission side of the recognition exchange:
// it turns a picked photo into a bounded-size upload and a typed
// outcome the presentation layer renders. It never shows anything to
// the user itself.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

const (
	uploadFieldName = "image"
	uploadFileName  = "photo.jpg"
	recognizePath   = "/api/v1/vision/recognize"

	// genericFailure stands in when the server gave no usable error
	// body.
	genericFailure = "Could not process the image. Please try again."
)

// ErrEmptyResponse: the server answered 200 but the description was
// empty.
var ErrEmptyResponse = errors.New("server returned an empty description")

// ServerError carries the message a non-2xx response asked us to show.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// TransportError: no usable response at all. The underlying cause is
// kept for diagnostics.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error while uploading image: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// Submit uploads a compressed JPEG and returns the recognized text.
// Failures come back as *ServerError, *TransportError or
// ErrEmptyResponse; classification is the caller's job to render, not
// ours to display.
func (c *Client) Submit(ctx context.Context, jpegData []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadFieldName, uploadFileName))
	header.Set("Content-Type", "image/jpeg")

	part, err := mw.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(jpegData); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+recognizePath, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	// Content-Type comes from the multipart writer so the boundary
	// always matches the body.
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := genericFailure
		var payload struct {
			Error string `json:"error"`
		}
		// A malformed error body falls back to the generic message.
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
			msg = payload.Error
		}
		return "", &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	var payload struct {
		Text string `json:"text"`
	}
	// A success status with an unreadable body means the exchange
	// broke in transit, same as no response at all.
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", &TransportError{Err: fmt.Errorf("decode recognition response: %w", err)}
	}
	if payload.Text == "" {
		return "", ErrEmptyResponse
	}
	return payload.Text, nil
}
