package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseRequest represents the request body for /api/parse
type ParseRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ParseResponse wraps a parse result with a generated result ID so callers
// can correlate uploads with stored results.
type ParseResponse struct {
	ResultID string             `json:"result_id"`
	Result   *types.ParseResult `json:"result"`
}

// EnhanceRequest represents the request body for /api/enhance
type EnhanceRequest struct {
	Text            string `json:"text" validate:"required,min=1"`
	Industry        string `json:"industry" validate:"required"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,oneof=entry mid senior executive"`
}

// EnhanceResponse wraps an enhancement result with a generated result ID.
type EnhanceResponse struct {
	ResultID string                   `json:"result_id"`
	Result   *types.EnhancementResult `json:"result"`
}

// errorResponse writes a JSON error body with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// jsonResponse writes a JSON body with status 200.
func (s *Server) jsonResponse(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// decodeAndValidate decodes a JSON request body and runs struct validation.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return s.validate.Struct(dst)
}

// validationMessage converts a validator error to a client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return "invalid field " + first.Field() + ": failed " + first.Tag() + " check"
	}
	return err.Error()
}

// handleParse parses raw resume text into a structured result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := s.parser.ParseResumeText(req.Text)
	s.jsonResponse(w, ParseResponse{ResultID: uuid.NewString(), Result: result})
}

// handleParseFile accepts a multipart resume upload, extracts its text, and
// parses it. The file part must be named "resume".
func (s *Server) handleParseFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file part")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	text, err := extraction.ExtractFromFilename(header.Filename, data)
	if err != nil {
		var unsupported *extraction.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result := s.parser.ParseResumeText(text)
	s.jsonResponse(w, ParseResponse{ResultID: uuid.NewString(), Result: result})
}

// handleEnhance rewrites a text snippet for the requested industry and level.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := s.enhancer.Enhance(req.Text, req.Industry, req.ExperienceLevel)
	s.jsonResponse(w, EnhanceResponse{ResultID: uuid.NewString(), Result: result})
}

// handleListIndustries returns all known industry IDs.
func (s *Server) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, map[string][]string{"industries": s.bank.List()})
}

// handleGetIndustry returns the full keyword set for one industry.
func (s *Server) handleGetIndustry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	kw, ok := s.bank.Get(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "unknown industry: "+id)
		return
	}
	s.jsonResponse(w, kw)
}

// handleSearchKeywords searches verbs/skills/tools by substring, optionally
// scoped to one industry via ?industry=.
func (s *Server) handleSearchKeywords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}
	industry := r.URL.Query().Get("industry")
	s.jsonResponse(w, s.bank.Search(query, industry))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, map[string]string{"status": "ok"})
}
