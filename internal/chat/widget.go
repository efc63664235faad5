// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package chat adapts the external hosted chat widget behind a small
// capability interface. The core never touches the widget's transport or
// namespace directly; it only opens/closes the widget, submits text and
// observes incoming messages for the unread badge.
//
// The adapter exposes an explicit lifecycle instead of readiness polling:
//
//	StateLoading -> StateReady   (connection established)
//	StateLoading -> StateFailed  (connection refused, breaker open)
//	StateReady   -> StateFailed  (connection lost)
//
// Messages submitted while loading are queued and flushed on the ready
// transition. Messages submitted after failure are dropped and reported;
// chat degrades to "unavailable", never fatal.
package chat

import "errors"

// State is the widget lifecycle state.
type State int

const (
	// StateLoading means the widget connection is being established.
	StateLoading State = iota
	// StateReady means the widget accepts messages.
	StateReady
	// StateFailed means the widget is unavailable.
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrUnavailable is returned when a message cannot be delivered because
// the widget has failed.
var ErrUnavailable = errors.New("chat widget unavailable")

// Message is an incoming chat message.
type Message struct {
	Text string `json:"text"`
}

// Widget is the capability interface the rest of the application uses.
type Widget interface {
	// Open makes the widget visible and clears the unread counter.
	Open()

	// Close hides the widget. Incoming messages accumulate as unread.
	Close()

	// Send submits a text message. Returns ErrUnavailable when the
	// widget has failed; messages sent while loading are queued.
	Send(text string) error

	// OnIncoming registers a handler invoked for every incoming message.
	OnIncoming(handler func(Message))
}
