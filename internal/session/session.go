package session

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/keyfold/internal/doctree"
	"github.com/dgallion1/keyfold/internal/fold"
	"github.com/dgallion1/keyfold/internal/keyset"
)

// Status represents the load state of a document session.
type Status string

const (
	StatusQueued   Status = "queued"
	StatusParsing  Status = "parsing"
	StatusIndexing Status = "indexing"
	StatusReady    Status = "ready"
	StatusFailed   Status = "failed"
)

// Session is one open document: its parsed tree plus the visibility state
// that persists across refold passes until the session expires. All
// mutation happens under the session mutex; the fold core itself is
// synchronous and single-threaded per session.
type Session struct {
	mu sync.Mutex

	ID       string `json:"session_id"`
	DocID    string `json:"doc_id"`
	Filename string `json:"filename"`
	Title    string `json:"title"`

	Status Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	document *doctree.Document
	state    fold.VisibilityState
	fileData []byte
	errors   []string
	refolds  int
}

// New creates a queued session for an uploaded file.
func New(filename string, data []byte) *Session {
	now := time.Now()
	return &Session{
		ID:        NewID(),
		DocID:     ContentHashHex(data)[:16],
		Filename:  filename,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
		fileData:  data,
	}
}

// SetStatus updates the load state atomically.
func (s *Session) SetStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = status
	s.UpdatedAt = time.Now()
}

// AddError records a load error.
func (s *Session) AddError(err string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, err)
	s.UpdatedAt = time.Now()
}

// FileData returns the raw uploaded bytes.
func (s *Session) FileData() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileData
}

// SetDocument installs the parsed, laid-out document and drops the raw
// bytes; the tree is the document from here on.
func (s *Session) SetDocument(doc *doctree.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = doc
	s.Title = doc.Title
	s.fileData = nil
	s.UpdatedAt = time.Now()
}

// Keywords returns the current universe, visible subset, and complement.
// The universe is initialized lazily on first use.
func (s *Session) Keywords() (all, visible, invisible keyset.Set, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return nil, nil, nil, err
	}
	s.state.EnsureInitialized(s.document.Root)
	return s.state.All, s.state.Visible, keyset.Diff(s.state.All, s.state.Visible), nil
}

// Refold runs one full unfold-then-refold pass with the given picker and
// returns the recorded fold plan. The selection the picker produced is
// persisted as the session's visible set for the next pass.
func (s *Session) Refold(picker fold.Picker, log *slog.Logger) (*fold.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return nil, err
	}

	plan := &fold.Plan{}
	orch := fold.NewOrchestrator(s.document, plan, picker, &s.state, log)
	if err := orch.Refold(); err != nil {
		return nil, err
	}
	s.refolds++
	s.UpdatedAt = time.Now()
	return plan, nil
}

// RefreshKeywordUniverse recomputes the keyword universe unconditionally.
func (s *Session) RefreshKeywordUniverse() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readyLocked(); err != nil {
		return err
	}
	s.state.Refresh(s.document.Root)
	s.UpdatedAt = time.Now()
	return nil
}

// Document returns the parsed document, or nil while loading.
func (s *Session) Document() *doctree.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document
}

func (s *Session) readyLocked() error {
	if s.Status != StatusReady || s.document == nil {
		return fmt.Errorf("session %s not ready (status %s)", s.ID, s.Status)
	}
	return nil
}

// Snapshot is a read-only, JSON-safe copy of session state.
type Snapshot struct {
	ID       string   `json:"session_id"`
	DocID    string   `json:"doc_id"`
	Filename string   `json:"filename"`
	Title    string   `json:"title"`
	Status   Status   `json:"status"`
	Keywords int      `json:"keywords"`
	Refolds  int      `json:"refolds"`
	Errors   []string `json:"errors"`
}

// Snapshot returns a JSON-safe copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := s.errors
	if errs == nil {
		errs = []string{}
	}
	return Snapshot{
		ID:       s.ID,
		DocID:    s.DocID,
		Filename: s.Filename,
		Title:    s.Title,
		Status:   s.Status,
		Keywords: len(s.state.All),
		Refolds:  s.refolds,
		Errors:   errs,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
