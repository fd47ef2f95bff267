package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/statement-viewer/backend/internal/engine"
	"github.com/statement-viewer/backend/internal/extract"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/documents", s.handleLoadDocument)
	s.Router.HandleFunc("/api/v1/documents/reopen", s.handleReopenDocument)
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/listing", s.handleListing)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type LoadResponse struct {
	Status   string `json:"status"`
	Document string `json:"document"`
	Entries  int    `json:"entries"`
}

type SearchResponse struct {
	Status     string `json:"status"`
	Page       int    `json:"page,omitempty"`
	Name       string `json:"name,omitempty"`
	MatchIndex int    `json:"match_index"`
	MatchCount int    `json:"match_count"`
}

type ListingItemView struct {
	Page  int    `json:"page"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ListingResponse struct {
	Document string            `json:"document"`
	Items    []ListingItemView `json:"items"`
}

type StatusResponse struct {
	Document        string `json:"document"`
	DocumentsLoaded int64  `json:"documents_loaded"`
	PagesScanned    int64  `json:"pages_scanned"`
	EntriesIndexed  int64  `json:"entries_indexed"`
	LastLoaded      string `json:"last_loaded,omitempty"`
}

// Handlers

func (s *Server) handleLoadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID     string   `json:"id"`
		Format string   `json:"format"`
		Pages  []string `json:"pages"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	if req.ID == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Document id is required"})
		return
	}
	if len(req.Pages) == 0 {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Pages are required"})
		return
	}

	var src extract.PageSource
	switch req.Format {
	case "", "text":
		src = extract.TextPages(req.Pages)
	case "html":
		src = extract.HTMLPages(req.Pages)
	default:
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Unknown format: " + req.Format})
		return
	}

	if err := s.Engine.LoadDocument(r.Context(), req.ID, src); err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, LoadResponse{
		Status:   "indexed",
		Document: req.ID,
		Entries:  len(s.Engine.Listing()),
	})
}

func (s *Server) handleReopenDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	if req.ID == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Document id is required"})
		return
	}

	if err := s.Engine.ReopenDocument(r.Context(), req.ID); err != nil {
		jsonResponse(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, LoadResponse{
		Status:   "indexed",
		Document: req.ID,
		Entries:  len(s.Engine.Listing()),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	match, ok := s.Engine.Search(query)
	if !ok {
		jsonResponse(w, http.StatusOK, SearchResponse{Status: "no_match"})
		return
	}

	jsonResponse(w, http.StatusOK, SearchResponse{
		Status:     "ok",
		Page:       match.PageNumber,
		Name:       match.Entry.NameRaw,
		MatchIndex: match.MatchIndex,
		MatchCount: match.MatchCount,
	})
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	listing := s.Engine.Listing()
	response := ListingResponse{
		Document: s.Engine.DocumentID(),
		Items:    make([]ListingItemView, len(listing)),
	}
	for i, item := range listing {
		response.Items[i] = ListingItemView{
			Page:  item.PageNumber,
			Label: item.Label,
			Value: item.Value,
		}
	}

	jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.Stats()

	resp := StatusResponse{
		Document:        s.Engine.DocumentID(),
		DocumentsLoaded: stats.DocumentsLoaded,
		PagesScanned:    stats.PagesScanned,
		EntriesIndexed:  stats.EntriesIndexed,
	}
	if !stats.LastLoadTime.IsZero() {
		resp.LastLoaded = stats.LastLoadTime.Format(time.RFC3339)
	}

	jsonResponse(w, http.StatusOK, resp)
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
