package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSubmitSuccess(t *testing.T) {
	var gotPath, gotAccept, gotField, gotFileName, gotPartType string
	var gotPayload []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		gotField = "image"
		gotFileName = header.Filename
		gotPartType = header.Header.Get("Content-Type")
		gotPayload, _ = io.ReadAll(file)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "table, chair, lamp"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	text, err := c.Submit(context.Background(), []byte{0xFF, 0xD8, 0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "table, chair, lamp" {
		t.Fatalf("got text %q", text)
	}

	if gotPath != "/api/v1/vision/recognize" {
		t.Fatalf("got path %q", gotPath)
	}
	if gotAccept != "application/json" {
		t.Fatalf("got Accept %q", gotAccept)
	}
	if gotField != "image" || gotFileName != "photo.jpg" {
		t.Fatalf("got field %q filename %q", gotField, gotFileName)
	}
	if gotPartType != "image/jpeg" {
		t.Fatalf("got part content type %q", gotPartType)
	}
	if len(gotPayload) != 3 {
		t.Fatalf("server received %d bytes, want 3", len(gotPayload))
	}
}

func TestSubmitServerErrorVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Unable to process the provided image. Please verify the file and try again.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), []byte{0x01})

	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if srvErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d", srvErr.StatusCode)
	}
	if srvErr.Message != "Unable to process the provided image. Please verify the file and try again." {
		t.Fatalf("server error message must pass through verbatim, got %q", srvErr.Message)
	}
}

func TestSubmitServerErrorFallsBackToGeneric(t *testing.T) {
	for name, body := range map[string]string{
		"html body":    "<html>502 Bad Gateway</html>",
		"empty body":   "",
		"empty error":  `{"error":""}`,
		"wrong shape":  `{"message":"nope"}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(body))
		}))

		c := New(srv.URL)
		_, err := c.Submit(context.Background(), []byte{0x01})
		srv.Close()

		var srvErr *ServerError
		if !errors.As(err, &srvErr) {
			t.Fatalf("%s: expected *ServerError, got %v", name, err)
		}
		if srvErr.Message != genericFailure {
			t.Fatalf("%s: got message %q, want generic fallback", name, srvErr.Message)
		}
	}
}

func TestSubmitEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": ""})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), []byte{0x01})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestSubmitMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), []byte{0x01})

	var netErr *TransportError
	if !errors.As(err, &netErr) {
		t.Fatalf("a broken 200 body must classify as *TransportError, got %v", err)
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody listening anymore

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), []byte{0x01})

	var netErr *TransportError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if netErr.Err == nil || !strings.Contains(netErr.Error(), "network error") {
		t.Fatalf("transport error must keep the underlying cause, got %v", netErr)
	}
}
