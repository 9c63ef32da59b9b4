// Package http exposes the search surface over a standard ServeMux.
package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-cheatsheet/catalog"
	"github.com/goliatone/go-cheatsheet/internal/logging"
	"github.com/goliatone/go-cheatsheet/pkg/interfaces"
	"github.com/goliatone/go-cheatsheet/search"
)

// SearchAPI serves the search endpoints over a catalog service. The
// index is built lazily from the catalog projection and kept until
// Refresh; guide entries posted at runtime survive refreshes.
type SearchAPI struct {
	service *catalog.Service
	routes  *catalog.Routes
	logger  interfaces.Logger

	mu     sync.Mutex
	index  *search.Index
	guides []catalog.SearchEntry
}

// SearchAPIOption configures a SearchAPI.
type SearchAPIOption func(*SearchAPI)

// WithLogger injects the HTTP logger.
func WithLogger(logger interfaces.Logger) SearchAPIOption {
	return func(api *SearchAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// NewSearchAPI constructs the API over the content service.
func NewSearchAPI(service *catalog.Service, opts ...SearchAPIOption) *SearchAPI {
	api := &SearchAPI{
		service: service,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(api)
	}
	api.routes = service.Routes()
	return api
}

// Register mounts the search endpoints under base (typically "/api").
func (api *SearchAPI) Register(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "search")
	mux.HandleFunc("GET "+root, api.handleSearch)
	mux.HandleFunc("POST "+root+"/entries", api.handleAddEntry)
}

// Refresh drops the cached index so the next request rebuilds it from
// the catalog. Posted guide entries are retained.
func (api *SearchAPI) Refresh() {
	api.mu.Lock()
	api.index = nil
	api.mu.Unlock()
}

// handleSearch returns the full entry list, or the ranked matches when
// a q parameter is present.
func (api *SearchAPI) handleSearch(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.service == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	idx, err := api.currentIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusOK, searchResponse{Entries: idx.Entries(), Total: idx.Len()})
		return
	}

	results := idx.Search(query)
	if results == nil {
		results = []catalog.SearchEntry{}
	}
	api.logger.Debug("http.search", "query", query, "results", len(results))
	writeJSON(w, http.StatusOK, searchResponse{Entries: results, Total: len(results), Query: query})
}

// handleAddEntry registers a guide entry in the live index. Guides are
// editorial pages that have no extractor, so they enter search here.
func (api *SearchAPI) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.service == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var payload guideEntryPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	title := strings.TrimSpace(payload.Title)
	content := strings.TrimSpace(payload.Content)
	if title == "" || content == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "title and content required"})
		return
	}

	entry := catalog.SearchEntry{
		ID:         strings.TrimSpace(payload.ID),
		Title:      title,
		Type:       catalog.EntryTypeGuide,
		Content:    content,
		URL:        strings.TrimSpace(payload.URL),
		Category:   strings.TrimSpace(payload.Category),
		Difficulty: catalog.Difficulty(strings.TrimSpace(payload.Difficulty)),
	}
	if entry.ID == "" {
		entry.ID = "guide-" + uuid.NewString()
	}
	if entry.URL == "" {
		entry.URL = api.routes.GuideURL(catalog.Slugify(title))
	}

	idx, err := api.currentIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}

	api.mu.Lock()
	api.guides = append(api.guides, entry)
	idx.Add(entry)
	api.mu.Unlock()

	api.logger.Info("http.search.entry_added", "id", entry.ID)
	writeJSON(w, http.StatusCreated, entry)
}

func (api *SearchAPI) currentIndex(r *http.Request) (*search.Index, error) {
	api.mu.Lock()
	if api.index != nil {
		idx := api.index
		api.mu.Unlock()
		return idx, nil
	}
	api.mu.Unlock()

	entries, err := api.service.SearchEntries(r.Context())
	if err != nil {
		return nil, err
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	if api.index == nil {
		idx := search.New(entries)
		for _, guide := range api.guides {
			idx.Add(guide)
		}
		api.index = idx
	}
	return api.index, nil
}

type searchResponse struct {
	Entries []catalog.SearchEntry `json:"entries"`
	Total   int                   `json:"total"`
	Query   string                `json:"query,omitempty"`
}

type guideEntryPayload struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	URL        string `json:"url,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}
