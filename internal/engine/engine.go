package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/statement-viewer/backend/internal/config"
	"github.com/statement-viewer/backend/internal/extract"
	"github.com/statement-viewer/backend/internal/index"
	"github.com/statement-viewer/backend/internal/search"
	"github.com/statement-viewer/backend/internal/storage"
)

// Engine owns the state of the currently loaded document: its entry
// index, its listing events and one search session. Only one document
// is live at a time; loading a new one replaces everything atomically.
type Engine struct {
	Config  *config.Config
	Logger  *logrus.Entry
	Storage storage.DocumentStorage

	mu         sync.Mutex
	generation uint64
	docID      string
	entries    []index.Entry
	listing    []index.ListingEvent
	session    *search.Session
	builder    *index.Builder

	stats EngineStats
}

// EngineStats holds counters for the status endpoint
type EngineStats struct {
	DocumentsLoaded int64
	PagesScanned    int64
	EntriesIndexed  int64
	LastDocumentID  string
	LastLoadTime    time.Time
}

// NewEngine wires the index builder and search session from config
func NewEngine(cfg *config.Config, logger *logrus.Entry, store storage.DocumentStorage) *Engine {
	builder := index.NewBuilder()
	if cfg.Index.Marker != "" {
		builder.Marker = cfg.Index.Marker
	}

	return &Engine{
		Config:  cfg,
		Logger:  logger.WithField("component", "engine"),
		Storage: store,
		session: search.NewSession(cfg.Index.MaxMatches),
		builder: builder,
	}
}

// LoadDocument replaces the live document. The session resets and the
// old index is dropped before any page text is read; a load that
// finishes after a newer load has started commits nothing.
func (e *Engine) LoadDocument(ctx context.Context, id string, src extract.PageSource) error {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.docID = id
	e.entries = nil
	e.listing = nil
	e.session.Reset()
	e.mu.Unlock()

	// Pages are read in increasing page order so insertion order
	// stays deterministic.
	pages := make([]string, 0, src.PageCount())
	for page := 1; page <= src.PageCount(); page++ {
		text, err := src.PageText(ctx, page)
		if err != nil {
			return fmt.Errorf("failed to extract page %d of %s: %w", page, id, err)
		}
		pages = append(pages, text)
	}

	entries, events := e.builder.Build(pages)

	e.mu.Lock()
	if gen != e.generation {
		// A newer load started while this one was reading pages.
		e.mu.Unlock()
		e.Logger.WithField("document", id).Debug("Discarding stale index build")
		return nil
	}
	e.entries = entries
	e.listing = events
	e.stats.DocumentsLoaded++
	e.stats.PagesScanned += int64(len(pages))
	e.stats.EntriesIndexed = int64(len(entries))
	e.stats.LastDocumentID = id
	e.stats.LastLoadTime = time.Now()
	e.mu.Unlock()

	if e.Storage != nil {
		doc := &storage.StoredDocument{ID: id, Pages: pages, SavedAt: time.Now()}
		if err := e.Storage.Save(doc); err != nil {
			e.Logger.WithError(err).Error("Failed to persist document text")
		}
	}

	e.Logger.WithFields(logrus.Fields{
		"document": id,
		"pages":    len(pages),
		"entries":  len(entries),
	}).Info("Document indexed")

	return nil
}

// ReopenDocument reloads a previously saved document from storage.
func (e *Engine) ReopenDocument(ctx context.Context, id string) error {
	doc, err := e.Storage.Get(id)
	if err != nil {
		return fmt.Errorf("failed to reopen %s: %w", id, err)
	}
	return e.LoadDocument(ctx, doc.ID, extract.TextPages(doc.Pages))
}

// Search resolves rawQuery to the best-matching page of the live
// document. Repeating the same normalized query cycles through the
// candidate list. The engine mutex serializes overlapping searches
// over the session's single cursor.
func (e *Engine) Search(rawQuery string) (search.Match, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.session.Search(rawQuery, e.entries)
	if ok {
		e.Logger.WithFields(logrus.Fields{
			"query": rawQuery,
			"page":  m.PageNumber,
			"match": fmt.Sprintf("%d/%d", m.MatchIndex+1, m.MatchCount),
		}).Debug("Search resolved")
	}
	return m, ok
}

// Listing returns the listing items of the live document, one per
// indexed entry, in insertion order.
func (e *Engine) Listing() []index.ListingEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]index.ListingEvent, len(e.listing))
	copy(out, e.listing)
	return out
}

// DocumentID returns the id of the live document, or "" when none is
// loaded.
func (e *Engine) DocumentID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.docID
}

// Stats returns a snapshot of the engine counters
func (e *Engine) Stats() EngineStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
