package extension

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentline-backend/internal/domain"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name        string
		from        DialogState
		to          DialogState
		shouldAllow bool
	}{
		{"checking to available", StateChecking, StateAvailable, true},
		{"checking to conflicted", StateChecking, StateConflicted, true},
		{"conflicted to selected", StateConflicted, StateSolutionSelected, true},
		{"selected to applied", StateSolutionSelected, StateApplied, true},
		{"selected back to conflicted", StateSolutionSelected, StateConflicted, true},
		{"checking to cancelled", StateChecking, StateCancelled, true},
		{"conflicted to cancelled", StateConflicted, StateCancelled, true},
		// invalid
		{"checking to applied", StateChecking, StateApplied, false},
		{"checking to selected", StateChecking, StateSolutionSelected, false},
		{"conflicted to applied", StateConflicted, StateApplied, false},
		{"available is terminal", StateAvailable, StateConflicted, false},
		{"applied is terminal", StateApplied, StateCancelled, false},
		{"cancelled is terminal", StateCancelled, StateChecking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shouldAllow, CanTransition(tt.from, tt.to))
		})
	}
}

func conflictFixture() (map[int32]domain.BookingConflict, []domain.ResolutionSolution) {
	conflicts := map[int32]domain.BookingConflict{
		100: {ItemID: 100, EarliestConflictDate: date(2024, 9, 1)},
	}
	end := date(2024, 8, 31)
	solutions := []domain.ResolutionSolution{
		{Type: domain.SolutionTypeAlternativeDate, EndDate: &end, AffectedLineIDs: []int32{1}},
		{Type: domain.SolutionTypeCustom},
	}
	return conflicts, solutions
}

func TestDialogSession_HappyPath(t *testing.T) {
	session := NewDialogSession(42)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, StateChecking, session.CurrentState())

	conflicts, solutions := conflictFixture()
	assert.NoError(t, session.MarkConflicted(conflicts, solutions))
	assert.Equal(t, StateConflicted, session.CurrentState())

	assert.NoError(t, session.SelectSolution(0))
	assert.Equal(t, StateSolutionSelected, session.CurrentState())

	applied, err := session.Apply()
	assert.NoError(t, err)
	assert.Equal(t, domain.SolutionTypeAlternativeDate, applied.Type)
	assert.Equal(t, StateApplied, session.CurrentState())
	assert.True(t, session.CurrentState().IsTerminal())
}

func TestDialogSession_AvailableIsTerminal(t *testing.T) {
	session := NewDialogSession(42)
	assert.NoError(t, session.MarkAvailable())
	assert.Equal(t, StateAvailable, session.CurrentState())

	conflicts, solutions := conflictFixture()
	assert.ErrorIs(t, session.MarkConflicted(conflicts, solutions), ErrInvalidTransition)
	assert.ErrorIs(t, session.Cancel(), ErrInvalidTransition)
}

func TestDialogSession_SelectionGuards(t *testing.T) {
	session := NewDialogSession(42)

	t.Run("Cannot select before conflicts computed", func(t *testing.T) {
		conflictsNotYet := session.SelectSolution(0)
		assert.Error(t, conflictsNotYet)
	})

	conflicts, solutions := conflictFixture()
	assert.NoError(t, session.MarkConflicted(conflicts, solutions))

	t.Run("Out of range index", func(t *testing.T) {
		assert.ErrorIs(t, session.SelectSolution(5), ErrNoSuchSolution)
		assert.ErrorIs(t, session.SelectSolution(-1), ErrNoSuchSolution)
	})

	t.Run("Apply without selection", func(t *testing.T) {
		_, err := session.Apply()
		assert.ErrorIs(t, err, ErrNoSelection)
	})
}

func TestDialogSession_CancelDiscardsEverything(t *testing.T) {
	session := NewDialogSession(42)
	conflicts, solutions := conflictFixture()
	assert.NoError(t, session.MarkConflicted(conflicts, solutions))
	assert.NoError(t, session.SelectSolution(0))

	assert.NoError(t, session.Cancel())
	assert.Equal(t, StateCancelled, session.CurrentState())
	assert.Nil(t, session.Conflicts)
	assert.Nil(t, session.Solutions)
	assert.Nil(t, session.Selected)

	_, err := session.Apply()
	assert.Error(t, err)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(30 * time.Minute)

	t.Run("Get unknown id", func(t *testing.T) {
		assert.Nil(t, store.Get("nope"))
	})

	t.Run("Create and retrieve", func(t *testing.T) {
		session := store.Create(42)
		assert.NotNil(t, session)
		assert.Equal(t, session, store.Get(session.ID))
	})

	t.Run("Delete", func(t *testing.T) {
		session := store.Create(43)
		store.Delete(session.ID)
		assert.Nil(t, store.Get(session.ID))
	})

	t.Run("Cleanup removes terminal sessions", func(t *testing.T) {
		fresh := NewSessionStore(30 * time.Minute)
		keep := fresh.Create(1)
		done := fresh.Create(2)
		assert.NoError(t, done.MarkAvailable())

		removed := fresh.Cleanup()
		assert.Equal(t, 1, removed)
		assert.NotNil(t, fresh.Get(keep.ID))
		assert.Nil(t, fresh.Get(done.ID))
	})

	t.Run("Expired sessions are not returned", func(t *testing.T) {
		fresh := NewSessionStore(time.Millisecond)
		session := fresh.Create(1)
		time.Sleep(5 * time.Millisecond)
		assert.Nil(t, fresh.Get(session.ID))
	})
}
