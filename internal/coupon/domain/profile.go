package domain

import (
	"time"

	"github.com/google/uuid"
)

// FormatProfile is a named, persisted code format. Profiles let API and CLI
// callers reference a stored shape by name instead of repeating prefix,
// separator, parts and part length on every request.
type FormatProfile struct {
	ID         uuid.UUID
	Name       string
	Prefix     string
	Separator  string
	Parts      int
	PartLength int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CodeFormat converts the profile into a validated CodeFormat.
func (p *FormatProfile) CodeFormat() (CodeFormat, error) {
	return NewCodeFormat(p.Prefix, p.Separator, p.Parts, p.PartLength)
}
