package configs

import "fmt"

const (
	SchemeCounting  = "counting"
	SchemeTimestamp = "timestamp"
)

// IDs selects the identifier scheme for new records.
type IDs struct {
	Scheme string `env:"SCHEME" envDefault:"counting"`
}

func (c IDs) Validate() error {
	switch c.Scheme {
	case SchemeCounting, SchemeTimestamp:
		return nil
	default:
		return fmt.Errorf("unknown id scheme %q", c.Scheme)
	}
}
