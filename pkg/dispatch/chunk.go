// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

// MaxChunkLength bounds a single chat message, in runes.
const MaxChunkLength = 3500

// chunk splits s into consecutive pieces of at most size runes. Joining the
// pieces gives back s.
func chunk(s string, size int) []string {
	if size <= 0 {
		size = MaxChunkLength
	}

	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+size-1)/size)

	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
