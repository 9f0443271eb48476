// Package assign holds the pure pairing logic: derangement generation and
// access code construction. It has no knowledge of storage or transport.
package assign

import (
	"errors"
	"math/rand"
	"strings"
)

// ErrInsufficientParticipants is returned when fewer than two unique names
// survive cleaning. This is an input validation failure, never retried.
var ErrInsufficientParticipants = errors.New("at least 2 unique participants are required")

// CleanNames trims whitespace, drops empty entries and removes duplicates
// while preserving first-seen order. Deduplication is case-sensitive, so
// "Sam" and "sam" count as two participants.
func CleanNames(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	cleaned := make([]string, 0, len(raw))

	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, name)
	}

	return cleaned
}

// Generate produces a derangement of names: a mapping from each participant
// to the participant they are gifting, with no one assigned to themselves
// and every name appearing as a target exactly once.
//
// The algorithm is repeated-shuffle rejection sampling: shuffle a copy,
// discard and retry whenever any position maps to itself. A uniform random
// permutation is fixed-point-free with probability approaching 1/e, so the
// expected number of attempts stays below 3 regardless of group size. This
// is a deliberate choice over a constructive derangement algorithm: it is
// trivially correct to reason about and preserves a uniform distribution
// over all derangements.
func Generate(names []string) (map[string]string, error) {
	if len(names) < 2 {
		return nil, ErrInsufficientParticipants
	}

	shuffled := make([]string, len(names))
	copy(shuffled, names)

	for {
		for i := len(shuffled) - 1; i > 0; i-- {
			j := rand.Intn(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}

		if isDerangement(names, shuffled) {
			break
		}
	}

	assignments := make(map[string]string, len(names))
	for i, name := range names {
		assignments[name] = shuffled[i]
	}

	return assignments, nil
}

func isDerangement(original, shuffled []string) bool {
	for i := range original {
		if original[i] == shuffled[i] {
			return false
		}
	}
	return true
}
