package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com
555-123-4567

EXPERIENCE
Software Engineer at Acme Inc - 2019-2022
` + "•" + ` Built internal tools`

func newTestServer() *Server {
	return New(Config{Port: 0})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleParse(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/parse", ParseRequest{Text: sampleResume})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ResultID)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "Jane Doe", resp.Result.PersonalInfo.FullName)
	assert.Equal(t, "technology", resp.Result.DetectedIndustry)
}

func TestHandleParse_Validation(t *testing.T) {
	handler := newTestServer().Handler()

	tests := []struct {
		name string
		body string
	}{
		{"Empty text", `{"text": ""}`},
		{"Missing text", `{}`},
		{"Malformed JSON", `{"text": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleParseFile_Text(t *testing.T) {
	handler := newTestServer().Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleResume))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Result.PersonalInfo.FullName)
}

func TestHandleParseFile_UnsupportedFormat(t *testing.T) {
	handler := newTestServer().Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandleParseFile_MissingPart(t *testing.T) {
	handler := newTestServer().Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEnhance(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/enhance", EnhanceRequest{
		Text:            "I helped fix pipes for customers",
		Industry:        "plumbing",
		ExperienceLevel: "mid",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EnhanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.NotContains(t, strings.ToLower(resp.Result.EnhancedText), "helped")
	assert.NotEmpty(t, resp.Result.Improvements)
}

func TestHandleEnhance_Validation(t *testing.T) {
	handler := newTestServer().Handler()

	tests := []struct {
		name string
		req  EnhanceRequest
	}{
		{"Missing industry", EnhanceRequest{Text: "Fixed pipes"}},
		{"Bad level", EnhanceRequest{Text: "Fixed pipes", Industry: "plumbing", ExperienceLevel: "wizard"}},
		{"Missing text", EnhanceRequest{Industry: "plumbing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, handler, http.MethodPost, "/api/enhance", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleEnhance_UnknownIndustryDegrades(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/enhance", EnhanceRequest{
		Text:     "Fixed pipes",
		Industry: "astrology",
	})

	require.Equal(t, http.StatusOK, rec.Code, "unknown industry is not a request error")
	var resp EnhanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Fixed pipes", resp.Result.EnhancedText)
	assert.Empty(t, resp.Result.Improvements)
}

func TestHandleListIndustries(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/industries", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["industries"], "plumbing")
	assert.Contains(t, body["industries"], "technology")
}

func TestHandleGetIndustry(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/industries/plumbing", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var kw types.IndustryKeywords
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kw))
	assert.NotEmpty(t, kw.ActionVerbs)
	assert.NotEmpty(t, kw.Tools)
}

func TestHandleGetIndustry_Unknown(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/industries/astrology", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSearchKeywords(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/keywords/search?q=wire&industry=electrical", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.KeywordSearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Tools)
}

func TestHandleSearchKeywords_MissingQuery(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/keywords/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/parse", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestServer().Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/parse", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
