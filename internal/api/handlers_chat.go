// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/reelpin/internal/catalog"
	"github.com/tomtom215/reelpin/internal/chat"
)

// requireChat writes a 503 and returns false when no chat widget is
// configured.
func (h *Handler) requireChat(w http.ResponseWriter) bool {
	if h.widget == nil {
		respondError(w, http.StatusServiceUnavailable, "CHAT_UNAVAILABLE",
			"Chat is not enabled on this server", nil)
		return false
	}
	return true
}

// ChatStatus returns the widget state and unread count.
// GET /api/v1/chat/status
func (h *Handler) ChatStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.widget == nil {
		respondData(w, map[string]interface{}{
			"enabled": false,
			"state":   chat.StateFailed.String(),
			"unread":  0,
		}, start)
		return
	}

	respondData(w, map[string]interface{}{
		"enabled": true,
		"state":   h.widget.State().String(),
		"unread":  h.widget.Unread(),
	}, start)
}

// ChatStarters returns the canned conversation starter prompts.
// GET /api/v1/chat/starters
func (h *Handler) ChatStarters(w http.ResponseWriter, r *http.Request) {
	respondData(w, chat.Starters(), time.Now())
}

// ChatOpen marks the chat panel as visible, clearing the unread count.
// POST /api/v1/chat/open
func (h *Handler) ChatOpen(w http.ResponseWriter, r *http.Request) {
	if !h.requireChat(w) {
		return
	}
	h.widget.Open()
	respondData(w, map[string]string{"state": h.widget.State().String()}, time.Now())
}

// ChatClose marks the chat panel as hidden.
// POST /api/v1/chat/close
func (h *Handler) ChatClose(w http.ResponseWriter, r *http.Request) {
	if !h.requireChat(w) {
		return
	}
	h.widget.Close()
	respondData(w, map[string]string{"state": h.widget.State().String()}, time.Now())
}

type chatMessageRequest struct {
	Text    string `json:"text" validate:"required_without=MovieID"`
	MovieID int    `json:"movie_id" validate:"omitempty,min=1"`
}

// ChatMessage sends a message through the widget. When movie_id is set
// the canned "tell me about" prompt for that movie is sent instead of
// the text field.
// POST /api/v1/chat/message
func (h *Handler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.requireChat(w) {
		return
	}

	var req chatMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var err error
	if req.MovieID > 0 {
		m, found := catalog.ByID(req.MovieID)
		if !found {
			respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND",
				"No movie with ID "+strconv.Itoa(req.MovieID), nil)
			return
		}
		err = h.widget.AskAboutMovie(m.Title)
	} else {
		err = h.widget.Send(req.Text)
	}

	if err != nil {
		if errors.Is(err, chat.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "CHAT_UNAVAILABLE",
				"The chat service is currently unavailable", nil)
			return
		}
		respondError(w, http.StatusBadGateway, "CHAT_SEND_FAILED",
			"Failed to deliver the message", err)
		return
	}

	respondData(w, map[string]string{"state": h.widget.State().String()}, start)
}
