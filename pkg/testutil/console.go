// Package testutil provides common test utilities for command and session tests.
package testutil

import (
	"io"
	"strings"
)

// Script joins console lines into session input, one command per line.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Replies splits session output into one entry per command, dropping the
// greeting and the prompts. Multi-line replies stay joined.
func Replies(out, greeting, prompt string) []string {
	out = strings.TrimPrefix(out, greeting+"\n")
	var replies []string
	for _, chunk := range strings.Split(out, prompt) {
		chunk = strings.TrimSuffix(chunk, "\n")
		if chunk != "" {
			replies = append(replies, chunk)
		}
	}
	return replies
}
