package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventWorkoutLogged, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	event := NewEvent(EventWorkoutLogged, 7, WorkoutLoggedPayload{WorkoutID: 1, DurationMinutes: 30})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, seen, 1)
	assert.Equal(t, event.ID, seen[0].ID)
	assert.Equal(t, int64(7), seen[0].UserID)
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventWorkoutDeleted, 1, nil)))
	assert.Zero(t, calls)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	second := false
	dispatcher.Subscribe(EventWorkoutLogged, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventWorkoutLogged, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventWorkoutLogged, 1, nil)))
	assert.True(t, second)
}

func TestNewEventStamps(t *testing.T) {
	event := NewEvent(EventUserRegistered, 3, UserRegisteredPayload{Username: "alice"})
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, EventUserRegistered, event.Type)
}
