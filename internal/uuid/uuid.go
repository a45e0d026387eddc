// Package uuid binds UUIDs from path and query parameters.
package uuid

import (
	"strings"

	google_uuid "github.com/google/uuid"
)

// VirtualPrefix is prepended to the debt ID to form the ID of items
// derived from that debt.
const VirtualPrefix = "debt-"

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// DebtID is the ID of a debt.
//
// IDs of virtual items resolve to the ID of the debt they are derived from.
type DebtID struct {
	UUID
}

func (d *DebtID) UnmarshalParam(p string) error {
	return d.UUID.UnmarshalParam(strings.TrimPrefix(p, VirtualPrefix))
}
