// Package ident generates the opaque identifiers used for cards, assets and
// collections. The card-builder client produces 32-character hex ids for
// anything it creates offline; server-generated ids follow the same format.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
