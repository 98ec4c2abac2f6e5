package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"resumelens/internal/ai"
	"resumelens/internal/analyzer"
	"resumelens/internal/catalog"
	"resumelens/internal/extract"
	"resumelens/internal/observability"
	"resumelens/internal/resume"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// createAnalyzeHandler wraps the analyze handler with observability.
// The endpoint accepts either a JSON body (raw text or a structured
// resume) or a multipart form with an uploaded PDF, DOCX, or text file.
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		req, err := s.parseAnalyzeRequest(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		resumeText, err := resolveResumeText(req)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid resume input", err.Error(), http.StatusBadRequest)
			return
		}

		role, err := catalog.Lookup(req.Category, req.Role)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Unknown role", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(resumeText)),
			attribute.String("request.category", role.Category),
			attribute.String("request.role", role.Role),
			attribute.Bool("request.ai", req.AI),
			attribute.String("operation", "analyze"),
		)

		if !req.AI {
			s.writeStandardAnalysis(ctx, w, span, om, resumeText, role)
			return
		}

		s.writeAIAnalysis(ctx, w, span, om, resumeText, role, req.JobDescription)
	}
}

// parseAnalyzeRequest decodes the request body. Multipart bodies carry
// the resume as an uploaded document plus form fields; everything else
// must be JSON.
func (s *Server) parseAnalyzeRequest(r *http.Request) (*AnalyzeRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.parseMultipartRequest(r)
	}

	var req AnalyzeRequest
	if err := parseJSONRequest(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// parseMultipartRequest extracts text from an uploaded resume document
// and reads the remaining analyze parameters from form fields.
func (s *Server) parseMultipartRequest(r *http.Request) (*AnalyzeRequest, error) {
	maxMemory := s.MaxRequestSize
	if maxMemory <= 0 {
		maxMemory = extract.MaxDocumentSize
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, fmt.Errorf("missing resume file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.Logger.Warn("Failed to close uploaded file", "error", closeErr)
		}
	}()

	if header.Size > extract.MaxDocumentSize {
		return nil, fmt.Errorf("uploaded file too large: %d bytes (limit is %d bytes)", header.Size, extract.MaxDocumentSize)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	var text string
	if extract.Supported(header.Filename) {
		text, err = extract.Text(header.Filename, data)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", header.Filename, err)
		}
	} else {
		text = string(data)
	}

	useAI := false
	if v := r.FormValue("ai"); v != "" {
		useAI, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ai flag %q: %w", v, err)
		}
	}

	return &AnalyzeRequest{
		ResumeText:     text,
		Category:       r.FormValue("category"),
		Role:           r.FormValue("role"),
		JobDescription: r.FormValue("jobDescription"),
		AI:             useAI,
	}, nil
}

// resolveResumeText picks the resume source from the request. Exactly
// one of resumeText and resume must be provided.
func resolveResumeText(req *AnalyzeRequest) (string, error) {
	hasText := strings.TrimSpace(req.ResumeText) != ""
	hasStructured := req.Resume != nil

	switch {
	case hasText && hasStructured:
		return "", fmt.Errorf("provide either resumeText or resume, not both")
	case hasText:
		return req.ResumeText, nil
	case hasStructured:
		return resume.Flatten(*req.Resume), nil
	default:
		return "", fmt.Errorf("resumeText or resume field is required")
	}
}

// writeStandardAnalysis runs the deterministic scoring pipeline
func (s *Server) writeStandardAnalysis(ctx context.Context, w http.ResponseWriter, span trace.Span, om *observability.ObservabilityManager, resumeText string, role types.RoleDefinition) {
	result := analyzer.Analyze(resumeText, role)

	metrics := om.GetMetrics()
	metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
		attribute.String("role", role.Role),
		attribute.Int("ats.score", result.ATSScore),
		attribute.Int("overall.score", result.OverallScore))

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("ats.score", result.ATSScore),
		attribute.Int("overall.score", result.OverallScore),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeAIAnalysis runs the AI critique pipeline. Model failures fall
// back to the standard result with aiEnabled false rather than erroring.
func (s *Server) writeAIAnalysis(ctx context.Context, w http.ResponseWriter, span trace.Span, om *observability.ObservabilityManager, resumeText string, role types.RoleDefinition, jobDescription string) {
	critiqueConfig := s.AppConfig.GetCritiqueConfig()
	aiService, err := ai.NewService(critiqueConfig, s.Logger)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "service_creation"))
		writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() {
		if closeErr := aiService.Close(); closeErr != nil {
			s.Logger.Warn("Failed to close AI service", "error", closeErr)
		}
	}()

	metrics := om.GetMetrics()
	var result types.AIAnalysisResult
	trackErr := metrics.TrackAIOperationWithTokens(ctx, "critique", func(ctx context.Context) *observability.AIOperationResult {
		output, tokenUsage := aiService.AnalyzeResume(ctx, resumeText, role, jobDescription)
		result = output
		return &observability.AIOperationResult{
			TokenUsage: (*observability.TokenUsage)(tokenUsage),
		}
	}, om)
	if trackErr != nil {
		span.RecordError(trackErr)
	}

	if !result.AIEnabled {
		metrics.RecordBusinessMetric(ctx, "ai_fallback", true, om,
			attribute.String("role", role.Role))
	}

	metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
		attribute.String("role", role.Role),
		attribute.Bool("ai_enabled", result.AIEnabled),
		attribute.Int("resume.score", result.ResumeScore),
		attribute.Int("overall.score", result.OverallScore))

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Bool("ai_enabled", result.AIEnabled),
		attribute.Int("resume.score", result.ResumeScore),
		attribute.Int("overall.score", result.OverallScore),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
