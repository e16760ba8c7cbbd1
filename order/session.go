package order

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/cartelroasters/storefront/models"
)

var ErrNoSelection = errors.New("no customization in progress")

const welcomeMessage = "Welcome to CARTEL. I am your Head Barista. How can I assist you with our menu today?"

// Session is one client's view of the storefront: active branch, tray,
// in-progress customization, and chat transcript. All state changes go
// through intent-named methods so invariants like "tray cleared on
// branch switch" hold centrally instead of at each call site.
type Session struct {
	ID string

	mu          sync.Mutex
	branchID    string
	tray        Tray
	selection   *Selection
	transcript  []models.ChatMessage
	chatPending bool
}

func newSession(branchID string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		branchID: branchID,
		transcript: []models.ChatMessage{
			{Role: models.ChatRoleModel, Text: welcomeMessage},
		},
	}
}

func (s *Session) BranchID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.branchID
}

// SelectBranch switches the active branch. Tray contents are
// meaningless across branches, so they are discarded, and any
// customization in progress is abandoned with them.
func (s *Session) SelectBranch(branchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branchID = branchID
	s.tray.Clear()
	s.selection = nil
}

// OpenCustomization starts a fresh selection for an item, replacing any
// previous one wholesale.
func (s *Session) OpenCustomization(item models.MenuItem) *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = NewSelection(item)
	return s.selection
}

func (s *Session) CancelCustomization() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
}

// UpdateSelection runs fn against the in-progress selection.
func (s *Session) UpdateSelection(fn func(*Selection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return ErrNoSelection
	}
	return fn(s.selection)
}

// ConfirmSelection composes the current selection and appends the
// result to the tray. On a validation failure nothing changes and the
// selection stays open so the client can complete the missing step.
func (s *Session) ConfirmSelection() (models.OrderLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return models.OrderLine{}, ErrNoSelection
	}
	line, err := s.selection.Compose()
	if err != nil {
		return models.OrderLine{}, err
	}
	s.tray.Append(line)
	s.selection = nil
	return line, nil
}

// AddOrderLine appends an already-composed line (the no-customization
// path).
func (s *Session) AddOrderLine(line models.OrderLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tray.Append(line)
}

func (s *Session) RemoveLine(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tray.RemoveAt(index)
}

func (s *Session) CloseTray() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tray.Open = false
}

// TraySnapshot returns a copy of the tray plus its recomputed total.
func (s *Session) TraySnapshot() (Tray, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := Tray{
		Lines: append([]models.OrderLine(nil), s.tray.Lines...),
		Open:  s.tray.Open,
	}
	return snapshot, s.tray.Total()
}

// BeginChatTurn claims the single outstanding-request slot for this
// session. It reports false when a turn is already pending.
func (s *Session) BeginChatTurn(userText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chatPending {
		return false
	}
	s.chatPending = true
	s.transcript = append(s.transcript, models.ChatMessage{Role: models.ChatRoleUser, Text: userText})
	return true
}

// EndChatTurn appends the model's reply (or error placeholder) and
// releases the pending slot. The transcript is append-only either way.
func (s *Session) EndChatTurn(reply models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, reply)
	s.chatPending = false
}

func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.transcript...)
}

// Registry holds all live sessions, keyed by session ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create opens a session, optionally pre-selecting a branch (the
// ?location= entry point). An empty branchID starts unselected.
func (r *Registry) Create(branchID string) *Session {
	session := newSession(branchID)
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}
