package domain

// NormalizeOptions controls how raw user input is canonicalized.
type NormalizeOptions struct {
	// Uppercase converts ASCII lowercase letters before substitution.
	Uppercase bool
	// StripInvalid removes every byte outside [0-9A-Z] after substitution.
	StripInvalid bool
}

// DefaultNormalizeOptions returns the options used by validation and
// canonical formatting: uppercase and strip invalid bytes.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{Uppercase: true, StripInvalid: true}
}

// ambiguousSubstitutions maps characters that are easy to mistype for the
// alphabet symbol they are most often confused with. Applied after
// uppercasing, so lowercase variants are covered as well.
var ambiguousSubstitutions = map[byte]byte{
	'O': '0',
	'I': '1',
	'S': '5',
	'Z': '2',
}

// Normalize canonicalizes raw input: optional ASCII uppercasing, substitution
// of the ambiguous characters O, I, S and Z with their look-alike symbols, and
// optional removal of everything outside [0-9A-Z]. It never fails; empty input
// yields empty output.
//
// After normalization with default options every remaining byte is a member of
// Alphabet: the substitutions cover exactly the four uppercase letters the
// alphabet excludes.
func Normalize(s string, opts NormalizeOptions) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if opts.Uppercase && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if sub, ok := ambiguousSubstitutions[c]; ok {
			c = sub
		}
		if opts.StripInvalid && !isAlphanumericUpper(c) {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func isAlphanumericUpper(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}
