package domain

import "fmt"

// Mode selects the persistence backend the console works against.
type Mode string

const (
	ModeLocal   Mode = "local"
	ModeMockAPI Mode = "mock-api"
	ModeAPI     Mode = "api"
)

var Modes = []Mode{ModeLocal, ModeMockAPI, ModeAPI}

// ParseMode validates s against the known modes.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !OneOf(m, Modes) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Remote reports whether the mode targets the remote API rather than the
// local store.
func (m Mode) Remote() bool {
	return m == ModeMockAPI || m == ModeAPI
}
