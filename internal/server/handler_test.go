package server

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := errors.NewLogger(slog.LevelError)
	cfg := &config.Config{}
	return NewServer(cfg, ServerConfig{
		Host:           "localhost",
		Port:           "8080",
		Version:        "test",
		MaxRequestSize: 1 << 20,
	}, logger)
}

func TestResolveResumeText(t *testing.T) {
	structured := &types.Resume{
		Name:   "Jordan Blake",
		Email:  "jordan@example.com",
		Skills: []string{"Go", "Kubernetes"},
	}

	tests := []struct {
		name    string
		req     *AnalyzeRequest
		want    string
		wantErr bool
	}{
		{
			name: "raw text",
			req:  &AnalyzeRequest{ResumeText: "Jordan Blake\njordan@example.com"},
			want: "Jordan Blake\njordan@example.com",
		},
		{
			name: "structured resume flattened",
			req:  &AnalyzeRequest{Resume: structured},
		},
		{
			name:    "both sources rejected",
			req:     &AnalyzeRequest{ResumeText: "text", Resume: structured},
			wantErr: true,
		},
		{
			name:    "neither source",
			req:     &AnalyzeRequest{},
			wantErr: true,
		},
		{
			name:    "whitespace only text is missing",
			req:     &AnalyzeRequest{ResumeText: "   \n  "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveResumeText(tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("resolveResumeText() = %q, want %q", got, tt.want)
			}
			if tt.req.Resume != nil && !strings.Contains(got, "Jordan Blake") {
				t.Errorf("flattened resume missing name: %q", got)
			}
		})
	}
}

func TestParseAnalyzeRequestJSON(t *testing.T) {
	s := newTestServer(t)

	body := `{"resumeText":"some resume","category":"engineering","role":"backend","ai":true}`
	r := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		t.Fatalf("parseAnalyzeRequest failed: %v", err)
	}

	if req.ResumeText != "some resume" {
		t.Errorf("ResumeText = %q", req.ResumeText)
	}
	if req.Category != "engineering" || req.Role != "backend" {
		t.Errorf("category/role = %q/%q", req.Category, req.Role)
	}
	if !req.AI {
		t.Error("AI flag should be true")
	}
}

func TestParseAnalyzeRequestRejectsWrongContentType(t *testing.T) {
	s := newTestServer(t)

	r := httptest.NewRequest("POST", "/analyze", strings.NewReader("resume text"))
	r.Header.Set("Content-Type", "text/plain")

	if _, err := s.parseAnalyzeRequest(r); err == nil {
		t.Error("expected error for non-JSON content type")
	}
}

func TestParseMultipartRequest(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("Jordan Blake\njordan@example.com\nSkills: Go")); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("category", "engineering"); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("role", "backend"); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("ai", "false"); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("POST", "/analyze", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		t.Fatalf("parseAnalyzeRequest failed: %v", err)
	}

	if !strings.Contains(req.ResumeText, "Jordan Blake") {
		t.Errorf("resume text not extracted from upload: %q", req.ResumeText)
	}
	if req.Category != "engineering" || req.Role != "backend" {
		t.Errorf("category/role = %q/%q", req.Category, req.Role)
	}
	if req.AI {
		t.Error("AI flag should be false")
	}
}

func TestParseMultipartRequestMissingFile(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("category", "engineering"); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("POST", "/analyze", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	if _, err := s.parseAnalyzeRequest(r); err == nil {
		t.Error("expected error when resume file is missing")
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)
	s.APIKeys = map[string]bool{"valid-key-12345": true}

	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     map[string]string
		wantStatus int
	}{
		{
			name:       "valid x-api-key",
			header:     map[string]string{"X-API-Key": "valid-key-12345"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer token",
			header:     map[string]string{"Authorization": "Bearer valid-key-12345"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid key",
			header:     map[string]string{"X-API-Key": "wrong-key"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing key",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/analyze", nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			handler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareSkippedWithoutKeys(t *testing.T) {
	s := newTestServer(t)

	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest("POST", "/analyze", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("generates id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/roles", nil)
		w := httptest.NewRecorder()
		handler(w, r)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("response missing X-Request-ID header")
		}
	})

	t.Run("preserves client id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/roles", nil)
		r.Header.Set("X-Request-ID", "client-supplied-id")
		w := httptest.NewRecorder()
		handler(w, r)

		if got := w.Header().Get("X-Request-ID"); got != "client-supplied-id" {
			t.Errorf("X-Request-ID = %q, want client-supplied-id", got)
		}
	})
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey(long) = %q", got)
	}
}
