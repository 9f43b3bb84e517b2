// Package store is a minimal unidirectional state container: a reducer
// computes every new state from the current one and an action, and
// subscribed listeners are told about each new state synchronously.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNilReducer is returned by New when no reducer is supplied.
	ErrNilReducer = errors.New("store: reducer must be a function")
	// ErrInvalidAction is returned by Dispatch for a nil or untyped action.
	ErrInvalidAction = errors.New("store: invalid action")
	// ErrNilListener is returned by Subscribe when no listener is supplied.
	ErrNilListener = errors.New("store: listener must be a function")
)

// Action describes an intended state transition. Type identifies the
// transition and must not be empty.
type Action interface {
	Type() string
}

// Reducer computes the next state. It must not mutate its input.
type Reducer[S any] func(state S, action Action) S

// Listener receives every state produced by Dispatch.
type Listener[S any] func(state S)

type subscription[S any] struct {
	id       uint64
	listener Listener[S]
}

// Store holds the current state of type S.
//
// A Store performs no locking. Dispatch from inside a listener is allowed
// and runs the reducer again before the outer dispatch returns.
type Store[S any] struct {
	reducer   Reducer[S]
	state     S
	listeners []subscription[S]
	nextID    uint64
}

// New returns a store seeded with initial.
func New[S any](reducer Reducer[S], initial S) (*Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}
	return &Store[S]{
		reducer: reducer,
		state:   initial,
	}, nil
}

// State returns the current state.
func (s *Store[S]) State() S {
	return s.state
}

// Dispatch applies action to the current state and then notifies every
// listener registered at the time of the call, in subscription order.
// Listeners run even when the reducer returned an identical state.
func (s *Store[S]) Dispatch(action Action) error {
	if action == nil {
		return fmt.Errorf("%w: nil action", ErrInvalidAction)
	}
	if action.Type() == "" {
		return fmt.Errorf("%w: action %T has no type", ErrInvalidAction, action)
	}

	s.state = s.reducer(s.state, action)
	state := s.state

	// Snapshot so that (un)subscribing inside a listener does not affect
	// the current round of notifications.
	listeners := make([]subscription[S], len(s.listeners))
	copy(listeners, s.listeners)

	for _, sub := range listeners {
		sub.listener(state)
	}

	return nil
}

// Subscribe registers listener and returns a function that removes this
// particular registration. Calling the returned function more than once
// is a no-op.
func (s *Store[S]) Subscribe(listener Listener[S]) (func(), error) {
	if listener == nil {
		return nil, ErrNilListener
	}

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription[S]{id: id, listener: listener})

	return func() {
		s.unsubscribe(id)
	}, nil
}

func (s *Store[S]) unsubscribe(id uint64) {
	for i, sub := range s.listeners {
		if sub.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}
