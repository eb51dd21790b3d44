// Package web is the HTTP shell around the protocol dispatcher: a REST
// facade over problem lookups, a small browser frontend, and the /mcp
// endpoint, all behind request-id and logging middleware.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/yuin/goldmark"

	"github.com/a48zhang/luogu-mcp/luogu"
)

// fetchURLPattern is the only upstream URL shape /api/fetch will follow.
// Anything else is rejected before a single byte leaves the process.
var fetchURLPattern = regexp.MustCompile(`^https://www\.luogu\.com\.cn/problem/([A-Za-z][A-Za-z0-9_]*)$`)

// Server routes REST, frontend and MCP traffic. It holds no request state;
// all state lives in the injected collaborators.
type Server struct {
	client *luogu.Client
	mcp    http.Handler
	logger *slog.Logger
	md     goldmark.Markdown
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger used by handlers and middleware
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates the HTTP shell. The mcp handler serves POST /mcp; the
// client backs the REST and frontend routes.
func NewServer(client *luogu.Client, mcp http.Handler, opts ...Option) *Server {
	s := &Server{
		client: client,
		mcp:    mcp,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		md:     goldmark.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes assembles the route table behind the shared middleware chain
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/mcp", s.mcp)
	mux.HandleFunc("GET /api/problem/{id}", s.handleAPIProblem)
	mux.HandleFunc("GET /api/fetch", s.handleAPIFetch)
	mux.HandleFunc("GET /problem/{id}", s.handleProblemPage)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return requestID(logRequests(s.logger, mux))
}

// problemResponse is the REST shape: the extracted record plus the id it was
// requested under and the page URL it came from.
type problemResponse struct {
	luogu.Problem
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (s *Server) handleAPIProblem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !luogu.ValidProblemID(id) {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid problem id %q", id))
		return
	}
	s.serveProblem(w, r, id)
}

func (s *Server) handleAPIFetch(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		s.writeError(w, http.StatusBadRequest, "missing required query parameter url")
		return
	}

	m := fetchURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		s.writeError(w, http.StatusBadRequest,
			"url must be a Luogu problem page, e.g. https://www.luogu.com.cn/problem/P1001")
		return
	}
	s.serveProblem(w, r, m[1])
}

func (s *Server) serveProblem(w http.ResponseWriter, r *http.Request, id string) {
	problem, url, err := s.client.FetchProblem(r.Context(), id)
	if err != nil {
		s.logger.Error("problem fetch failed", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to fetch problem %s", id))
		return
	}

	s.writeJSON(w, http.StatusOK, problemResponse{Problem: problem, ID: id, URL: url})
}

var pageTemplate = template.Must(template.New("problem").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; }
pre { background: #f6f8fa; padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Title string
	Body  template.HTML
}

func (s *Server) handleProblemPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !luogu.ValidProblemID(id) {
		http.Error(w, fmt.Sprintf("invalid problem id %q", id), http.StatusBadRequest)
		return
	}

	problem, url, err := s.client.FetchProblem(r.Context(), id)
	if err != nil {
		s.logger.Error("problem fetch failed", "id", id, "error", err)
		http.Error(w, fmt.Sprintf("failed to fetch problem %s", id), http.StatusInternalServerError)
		return
	}

	var body bytes.Buffer
	if err := s.md.Convert([]byte(luogu.Format(problem, id, url)), &body); err != nil {
		s.logger.Error("markdown rendering failed", "id", id, "error", err)
		http.Error(w, "failed to render problem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		Title: fmt.Sprintf("%s. %s", id, problem.Title),
		Body:  template.HTML(body.String()),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("page template failed", "id", id, "error", err)
	}
}

const usage = `luogu-mcp

GET  /api/problem/{id}   problem record as JSON
GET  /api/fetch?url=     problem record for a Luogu problem page URL
GET  /problem/{id}       problem statement as HTML
POST /mcp                JSON-RPC 2.0 (MCP) endpoint
GET  /healthz            liveness probe
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, usage)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
