package editor

import (
	"sync"
	"time"

	"cvlab/internal/resume"
)

// SaveState mirrors what the builder surfaces next to the save indicator.
type SaveState struct {
	IsDirty     bool
	IsSaving    bool
	LastSavedAt *time.Time
	LastError   string
}

// Snapshot is an immutable copy of the session at one point in time.
// Mutating a snapshot never touches the live session.
type Snapshot struct {
	ID         uint
	OwnerID    uint
	Title      string
	TemplateID string
	FontFamily string
	Content    resume.Content
	SaveState
}

// Session holds the editing state of one open resume. All methods are safe
// for concurrent use; the websocket read loop and the autosave timer both
// touch it.
type Session struct {
	mu sync.Mutex

	id         uint
	ownerID    uint
	title      string
	templateID string
	fontFamily string
	content    resume.Content

	loaded      bool
	isDirty     bool
	isSaving    bool
	lastSavedAt *time.Time
	lastError   string

	onDirty func()
}

func NewSession() *Session {
	return &Session{}
}

// OnDirty registers the callback invoked after every mutation that dirtied
// the session. The callback runs outside the session lock.
func (s *Session) OnDirty(fn func()) {
	s.mu.Lock()
	s.onDirty = fn
	s.mu.Unlock()
}

// Load seeds the session from a persisted document. Loading the already
// loaded ID is a no-op: it must not clobber unsaved edits with stale state.
func (s *Session) Load(id, ownerID uint, title, templateID, fontFamily string, content resume.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && s.id == id {
		return
	}
	s.id = id
	s.ownerID = ownerID
	s.title = title
	s.templateID = templateID
	s.fontFamily = fontFamily
	s.content = content.Clone()
	s.loaded = true
	s.isDirty = false
	s.isSaving = false
	s.lastError = ""
}

// SetContent replaces the document content. A payload deep-equal to the
// current content leaves the session clean.
func (s *Session) SetContent(c resume.Content) {
	s.mu.Lock()
	if c.Equal(s.content) {
		s.mu.Unlock()
		return
	}
	s.content = c.Clone()
	s.content.EnsureIDs()
	s.markDirtyLocked()
}

func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	if title == s.title {
		s.mu.Unlock()
		return
	}
	s.title = title
	s.markDirtyLocked()
}

func (s *Session) SetTemplateID(id string) {
	s.mu.Lock()
	if id == s.templateID {
		s.mu.Unlock()
		return
	}
	s.templateID = id
	s.markDirtyLocked()
}

func (s *Session) SetFontFamily(id string) {
	s.mu.Lock()
	if id == s.fontFamily {
		s.mu.Unlock()
		return
	}
	s.fontFamily = id
	s.markDirtyLocked()
}

// markDirtyLocked flips the dirty flag and fires the callback. Takes the
// lock held and releases it before the callback runs.
func (s *Session) markDirtyLocked() {
	s.isDirty = true
	fn := s.onDirty
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// BeginSave marks the save in flight and returns the snapshot to persist.
// Returns false when there is nothing dirty or a save is already running.
func (s *Session) BeginSave() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded || !s.isDirty || s.isSaving {
		return Snapshot{}, false
	}
	s.isSaving = true
	s.isDirty = false
	return s.snapshotLocked(), true
}

// EndSave records the outcome of an in-flight save. On failure the session
// stays dirty so the next cycle retries.
func (s *Session) EndSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSaving = false
	if err != nil {
		s.isDirty = true
		s.lastError = err.Error()
		return
	}
	now := time.Now()
	s.lastSavedAt = &now
	s.lastError = ""
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	var savedAt *time.Time
	if s.lastSavedAt != nil {
		t := *s.lastSavedAt
		savedAt = &t
	}
	return Snapshot{
		ID:         s.id,
		OwnerID:    s.ownerID,
		Title:      s.title,
		TemplateID: s.templateID,
		FontFamily: s.fontFamily,
		Content:    s.content.Clone(),
		SaveState: SaveState{
			IsDirty:     s.isDirty,
			IsSaving:    s.isSaving,
			LastSavedAt: savedAt,
			LastError:   s.lastError,
		},
	}
}
