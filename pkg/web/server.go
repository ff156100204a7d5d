// Package web serves the generated compilation database over HTTP so
// editors and analysis tools on other machines can fetch it without file
// sharing. Combined with watch mode the served database tracks the log.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/compiledb"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/generator"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/logging"
)

// Summary describes the latest pipeline run.
type Summary struct {
	Log         string    `json:"log"`
	Output      string    `json:"output"`
	Lines       int       `json:"lines"`
	Records     int       `json:"records"`
	Skipped     int       `json:"skipped"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Server exposes the database and a run summary.
type Server struct {
	router *mux.Router

	mu          sync.RWMutex
	result      *generator.Result
	logPath     string
	outputPath  string
	generatedAt time.Time
}

// NewServer creates a web server for the given log/output pair.
func NewServer(logPath, outputPath string) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		logPath:    logPath,
		outputPath: outputPath,
	}
	s.setupRoutes()
	return s
}

// SetResult stores the latest pipeline result. Called by the initial run and
// by watch-mode regenerations.
func (s *Server) SetResult(res *generator.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = res
	s.generatedAt = time.Now()
}

// Start runs the HTTP server; it blocks until the listener fails.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logging.Info("web server listening", "addr", addr)
	return http.ListenAndServe(addr, logging.RequestIDMiddleware(s.router))
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/compile_commands.json", s.handleDatabase).Methods("GET")
	s.router.HandleFunc("/api/summary", s.handleSummary).Methods("GET")
}

func (s *Server) handleDatabase(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	var records []compiledb.Record
	if s.result != nil {
		records = s.result.Records
	}
	s.mu.RUnlock()

	data, err := compiledb.Marshal(records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	summary := Summary{
		Log:         s.logPath,
		Output:      s.outputPath,
		GeneratedAt: s.generatedAt,
	}
	if s.result != nil {
		summary.Lines = s.result.Stats.Lines
		summary.Records = s.result.Stats.Records
		summary.Skipped = s.result.Stats.Skipped
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logging.ErrorContext(r.Context(), "encoding summary", "error", err)
	}
}
