package urlpath

import (
	"errors"
	"net/url"
	"strings"
)

// MaxDecodeRounds bounds how many layers of percent-encoding are peeled off
// a request path before it is rejected.
const MaxDecodeRounds = 3

var (
	// ErrMalformed is returned when a decode round fails or the decoded
	// value can never name a file.
	ErrMalformed = errors.New("malformed percent-encoding in path")
	// ErrTooManyRounds is returned when the path is still changing after
	// MaxDecodeRounds rounds.
	ErrTooManyRounds = errors.New("path did not stabilize within decode bound")
)

// Decode percent-decodes raw until a round no longer changes it.
// Any failure is final, the caller must treat the path as unresolvable.
func Decode(raw string) (string, error) {
	current := raw

	for round := 0; round < MaxDecodeRounds; round++ {
		next, err := url.PathUnescape(current)
		if err != nil {
			return "", ErrMalformed
		}

		if next == current {
			if strings.ContainsRune(next, 0) {
				return "", ErrMalformed
			}

			return next, nil
		}

		current = next
	}

	return "", ErrTooManyRounds
}
