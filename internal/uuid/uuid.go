// Package uuid wraps google/uuid so that IDs can be bound from URI
// parameters and query strings by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses s into a UUID.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}

// IsNil reports whether u is the Nil UUID.
func (u UUID) IsNil() bool {
	return u == Nil
}

// UnmarshalParam is called by gin when binding URI and form parameters.
// An empty parameter yields the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
