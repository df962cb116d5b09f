// Package server provides the thin HTTP JSON API around the parsing core.
// It owns no business logic: handlers decode a request, call the core, and
// serialize the result.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/enhance"
	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/keywords"
)

// maxUploadBytes bounds multipart resume uploads.
const maxUploadBytes = 10 << 20 // 10 MiB

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	parser     *extract.Parser
	enhancer   *enhance.Enhancer
	bank       *keywords.Bank
	validate   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port     int
	Bank     *keywords.Bank
	Enhancer *enhance.Enhancer
}

// New creates a new server instance
func New(cfg Config) *Server {
	bank := cfg.Bank
	if bank == nil {
		bank = keywords.Default()
	}
	enhancer := cfg.Enhancer
	if enhancer == nil {
		enhancer = enhance.NewEnhancer(bank, nil)
	}

	s := &Server{
		parser:   extract.NewParser(bank),
		enhancer: enhancer,
		bank:     bank,
		validate: validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("POST /api/parse/file", s.handleParseFile)
	mux.HandleFunc("POST /api/enhance", s.handleEnhance)
	mux.HandleFunc("GET /api/industries", s.handleListIndustries)
	mux.HandleFunc("GET /api/industries/{id}", s.handleGetIndustry)
	mux.HandleFunc("GET /api/keywords/search", s.handleSearchKeywords)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// withLogging logs each request with method, path, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// withCORS allows browser clients to call the API directly.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
