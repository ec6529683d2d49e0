package domain

import "strings"

// Code format defaults.
const (
	DefaultSeparator  = "-"
	DefaultParts      = 2
	DefaultPartLength = 4
)

// CodeFormat describes the shape of a coupon code: an optional prefix, the
// separator between parts, the number of parts and the symbols per part
// (including the trailing checkdigit). Construct via NewCodeFormat and treat
// as read-only.
type CodeFormat struct {
	Prefix     string
	Separator  string
	Parts      int
	PartLength int
}

// DefaultCodeFormat returns the standard format: two parts of four symbols
// joined by a hyphen, no prefix.
func DefaultCodeFormat() CodeFormat {
	return CodeFormat{
		Separator:  DefaultSeparator,
		Parts:      DefaultParts,
		PartLength: DefaultPartLength,
	}
}

// NewCodeFormat builds a validated CodeFormat. The prefix is uppercased;
// empty means no prefix.
func NewCodeFormat(prefix, separator string, parts, partLength int) (CodeFormat, error) {
	format := CodeFormat{
		Prefix:     strings.ToUpper(prefix),
		Separator:  separator,
		Parts:      parts,
		PartLength: partLength,
	}
	if err := format.Validate(); err != nil {
		return CodeFormat{}, err
	}
	return format, nil
}

// Validate checks the format fields.
//
// Parts must be at least one and PartLength at least two, because one position
// per part is reserved for the checkdigit. The separator must be exactly one
// character and not alphanumeric: an alphanumeric separator would survive
// normalization and corrupt the validate/normalize round trip.
func (f CodeFormat) Validate() error {
	if f.Parts < 1 {
		return ErrInvalidConfiguration
	}
	if f.PartLength < 2 {
		return ErrInvalidConfiguration
	}
	if len(f.Separator) != 1 {
		return ErrInvalidConfiguration
	}
	if c := f.Separator[0]; isAlphanumericUpper(c) || (c >= 'a' && c <= 'z') {
		return ErrInvalidConfiguration
	}
	return nil
}

// CodeLength returns the symbol count of a normalized code in this format,
// separators and prefix excluded.
func (f CodeFormat) CodeLength() int {
	return f.Parts * f.PartLength
}
