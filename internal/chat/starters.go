// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package chat

// conversationStarters are the canned prompts offered as quick
// suggestions next to the chat button.
var conversationStarters = []string{
	"Recommend me a sci-fi movie",
	"What are the best comedies?",
	"Show me classic films",
	"What should I watch tonight?",
	"Movies similar to Inception",
}

// Starters returns a copy of the canned conversation starters.
func Starters() []string {
	out := make([]string, len(conversationStarters))
	copy(out, conversationStarters)
	return out
}
