package extension

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentline-backend/internal/domain"
)

// DialogState is the state of a conflict-resolution dialog.
type DialogState string

const (
	StateChecking         DialogState = "CHECKING"
	StateAvailable        DialogState = "AVAILABLE"
	StateConflicted       DialogState = "CONFLICTED"
	StateSolutionSelected DialogState = "SOLUTION_SELECTED"
	StateApplied          DialogState = "APPLIED"
	StateCancelled        DialogState = "CANCELLED"
)

// IsTerminal reports whether the dialog can make no further transitions.
func (s DialogState) IsTerminal() bool {
	return s == StateAvailable || s == StateApplied || s == StateCancelled
}

var dialogTransitions = map[DialogState][]DialogState{
	StateChecking:         {StateAvailable, StateConflicted, StateCancelled},
	StateConflicted:       {StateSolutionSelected, StateCancelled},
	StateSolutionSelected: {StateApplied, StateConflicted, StateCancelled},
}

// CanTransition checks whether a dialog transition is allowed.
func CanTransition(from, to DialogState) bool {
	for _, s := range dialogTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

var (
	ErrInvalidTransition = errors.New("invalid dialog transition")
	ErrNoSuchSolution    = errors.New("no such solution")
	ErrNoSelection       = errors.New("no solution selected")
)

// DialogSession is one in-flight conflict-resolution dialog. It holds the
// solutions computed for the current conflict set and the user's selection;
// nothing here is persisted, and dismissing the dialog discards it all.
type DialogSession struct {
	ID        string
	RentalID  int32
	State     DialogState
	Conflicts map[int32]domain.BookingConflict
	Solutions []domain.ResolutionSolution
	Selected  *domain.ResolutionSolution
	StartedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// NewDialogSession starts a dialog in CHECKING state for a rental.
func NewDialogSession(rentalID int32) *DialogSession {
	now := time.Now()
	return &DialogSession{
		ID:        uuid.NewString(),
		RentalID:  rentalID,
		State:     StateChecking,
		StartedAt: now,
		UpdatedAt: now,
	}
}

func (d *DialogSession) transition(to DialogState) error {
	if !CanTransition(d.State, to) {
		return ErrInvalidTransition
	}
	d.State = to
	d.UpdatedAt = time.Now()
	return nil
}

// MarkAvailable records a clean availability check. Terminal.
func (d *DialogSession) MarkAvailable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transition(StateAvailable)
}

// MarkConflicted records the conflict set and its proposed solutions.
func (d *DialogSession) MarkConflicted(conflicts map[int32]domain.BookingConflict, solutions []domain.ResolutionSolution) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.transition(StateConflicted); err != nil {
		return err
	}
	d.Conflicts = conflicts
	d.Solutions = solutions
	d.Selected = nil
	return nil
}

// SelectSolution picks one of the computed solutions by index.
func (d *DialogSession) SelectSolution(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.Solutions) {
		return ErrNoSuchSolution
	}
	if err := d.transition(StateSolutionSelected); err != nil {
		return err
	}
	sel := d.Solutions[index]
	d.Selected = &sel
	return nil
}

// Apply hands the selected solution to the enclosing submission. Terminal.
func (d *DialogSession) Apply() (*domain.ResolutionSolution, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Selected == nil {
		return nil, ErrNoSelection
	}
	if err := d.transition(StateApplied); err != nil {
		return nil, err
	}
	return d.Selected, nil
}

// Cancel dismisses the dialog from any non-terminal state, discarding the
// computed solutions with no side effect.
func (d *DialogSession) Cancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State.IsTerminal() {
		return ErrInvalidTransition
	}
	d.State = StateCancelled
	d.UpdatedAt = time.Now()
	d.Conflicts = nil
	d.Solutions = nil
	d.Selected = nil
	return nil
}

// CurrentState returns the dialog state.
func (d *DialogSession) CurrentState() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.State
}

// IsExpired checks whether the session has been idle past the timeout.
func (d *DialogSession) IsExpired(timeout time.Duration) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return time.Since(d.UpdatedAt) > timeout
}

// SessionStore keeps in-flight dialog sessions in memory, keyed by id.
type SessionStore struct {
	sessions map[string]*DialogSession
	timeout  time.Duration
	mu       sync.RWMutex
}

// NewSessionStore creates a session store with the given idle timeout.
func NewSessionStore(timeout time.Duration) *SessionStore {
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &SessionStore{
		sessions: make(map[string]*DialogSession),
		timeout:  timeout,
	}
}

// Create starts and registers a new dialog session for a rental.
func (s *SessionStore) Create(rentalID int32) *DialogSession {
	session := NewDialogSession(rentalID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

// Get returns a live session by id, or nil when unknown or expired.
func (s *SessionStore) Get(id string) *DialogSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session := s.sessions[id]
	if session == nil || session.IsExpired(s.timeout) {
		return nil
	}
	return session
}

// Delete removes a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Cleanup removes expired and terminal sessions, returning how many.
func (s *SessionStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired(s.timeout) || session.CurrentState().IsTerminal() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
