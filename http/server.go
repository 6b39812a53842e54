package http

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/index"
)

// wordsPerPage is the default page size for word listings.
const wordsPerPage = 50

// studyCookie names the cookie carrying the study session ID.
const studyCookie = "wordbook_study"

// Server exposes the browse/study API over the word index.
type Server struct {
	router   *chi.Mux
	index    *index.Index
	sessions *sessionStore
	server   *http.Server
}

// NewServer creates a Server over the given index.
func NewServer(ix *index.Index) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		index:    ix,
		sessions: newSessionStore(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/words", s.handleListWords)
	s.router.Get("/api/words/{word}", s.handleWordDetail)
	s.router.Get("/api/search", s.handleSearch)
	s.router.Get("/api/random-word", s.handleRandomWord)
	s.router.Get("/api/study", s.handleStudy)
	s.router.Get("/api/status", s.handleStatus)
	s.router.Post("/api/reload", s.handleReload)
}

// Router returns the underlying handler, used directly in tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe starts the server on addr and blocks until it stops.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"words":  s.index.Len(),
	})
}

// wordSummary is the list-view shape of an entry.
type wordSummary struct {
	Word         string `json:"word"`
	BriefMeaning string `json:"briefMeaning"`
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	search := r.URL.Query().Get("search")
	order := index.SortOrder(r.URL.Query().Get("sort"))

	result := s.index.Page(page, wordsPerPage, search, order)

	summaries := make([]wordSummary, 0, len(result.Entries))
	for _, e := range result.Entries {
		summaries = append(summaries, wordSummary{
			Word:         e.Word,
			BriefMeaning: index.Brief(e.Meaning, 100),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"words":        summaries,
		"page":         result.Page,
		"totalPages":   result.TotalPages,
		"totalResults": result.TotalResults,
	})
}

func (s *Server) handleWordDetail(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	e, err := s.index.Get(word)
	if err != nil {
		respondError(w, err)
		return
	}
	prev, next := s.index.Neighbors(e.Word)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"word":       e.Word,
		"meanings":   index.ParseMeaning(e.Meaning),
		"examples":   index.ParseUsage(e.Usage),
		"rawMeaning": e.Meaning,
		"rawUsage":   e.Usage,
		"prevWord":   prev,
		"nextWord":   next,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	results := s.index.Search(query, limit)

	summaries := make([]wordSummary, 0, len(results))
	for _, e := range results {
		summaries = append(summaries, wordSummary{
			Word:         e.Word,
			BriefMeaning: index.Brief(e.Meaning, 100),
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"results": summaries})
}

func (s *Server) handleRandomWord(w http.ResponseWriter, r *http.Request) {
	e := s.index.Random()
	if e == nil {
		respondError(w, wordbook.Errorf(wordbook.ENOTFOUND, "no words available"))
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (s *Server) handleStudy(w http.ResponseWriter, r *http.Request) {
	total := s.index.Len()
	if total == 0 {
		respondError(w, wordbook.Errorf(wordbook.ENOTFOUND, "no words available"))
		return
	}

	sessionID := s.sessionID(w, r)
	position := s.sessions.get(sessionID)

	switch r.URL.Query().Get("action") {
	case "next":
		position++
	case "prev":
		position--
	case "random":
		position = rand.Intn(total)
	}
	position = ((position % total) + total) % total
	s.sessions.set(sessionID, position)

	e := s.index.At(position)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"word":     e.Word,
		"meanings": index.ParseMeaning(e.Meaning),
		"examples": index.ParseUsage(e.Usage),
		"index":    position + 1,
		"total":    total,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"words": s.index.Len(),
		"file":  s.index.Path(),
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	changed, err := s.index.Reload()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": changed,
		"words":    s.index.Len(),
	})
}

// sessionID returns the study session from the request cookie, minting a
// new one when absent.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(studyCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     studyCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

// sessionStore keeps per-session study positions.
type sessionStore struct {
	mu        sync.Mutex
	positions map[string]int
}

func newSessionStore() *sessionStore {
	return &sessionStore{positions: make(map[string]int)}
}

func (s *sessionStore) get(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positions[id]
}

func (s *sessionStore) set(id string, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[id] = pos
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch wordbook.ErrorCode(err) {
	case wordbook.ENOTFOUND:
		status = http.StatusNotFound
	case wordbook.EINVALID:
		status = http.StatusBadRequest
	case wordbook.ECONFLICT:
		status = http.StatusConflict
	case wordbook.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]string{"error": wordbook.ErrorMessage(err)})
}
