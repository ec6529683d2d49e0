package domain

import "strings"

// Blocklist entries are stored rotated thirteen places over A-Z so no
// offensive literal appears in source. Other bytes pass through unchanged.
const rotatedBadWords = "NFF PHZ SNT GVG NEFR OBBO OHGG PBPX PENC PHAG " +
	"QVPX SNEG SRPX SHPX URYY WVFZ WVMM XABO ZHSS CUNG " +
	"CVFF CBBC FUNT FUVG FYNT FYHG GVGF GBFF GHEQ GJNG " +
	"JNAT JNAX OVGPU CEVPX CHFFL JUBER"

// BadWordFilter rejects generated parts that spell an offensive word.
// The zero value matches nothing; use NewBadWordFilter or DefaultBadWordFilter.
type BadWordFilter struct {
	words map[string]struct{}
}

// NewBadWordFilter builds a filter from plaintext entries. Matching is exact
// membership on whole parts, never substrings, and happens in letter form:
// entries and candidates are uppercased and the digits 0, 1, 2 and 5 are read
// as the letters they stand in for. A generated part can only spell O, I, Z or
// S through those digits, so "5H1T" and "SHIT" name the same entry.
func NewBadWordFilter(words []string) *BadWordFilter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[letterForm(w)] = struct{}{}
	}
	return &BadWordFilter{words: set}
}

var defaultBadWordFilter = func() *BadWordFilter {
	rotated := strings.Fields(rotatedBadWords)
	words := make([]string, 0, len(rotated))
	for _, w := range rotated {
		words = append(words, rot13(w))
	}
	return NewBadWordFilter(words)
}()

// DefaultBadWordFilter returns the shared filter built from the embedded
// blocklist. The filter is immutable and safe for concurrent use.
func DefaultBadWordFilter() *BadWordFilter {
	return defaultBadWordFilter
}

// Forbidden reports whether part is a blocklist member.
func (f *BadWordFilter) Forbidden(part string) bool {
	if f == nil || f.words == nil {
		return false
	}
	_, ok := f.words[letterForm(part)]
	return ok
}

// letterSubstitutions undoes the look-alike digit substitutions for blocklist
// matching. It is the inverse of the normalizer's ambiguous-character mapping.
var letterSubstitutions = map[byte]byte{
	'0': 'O',
	'1': 'I',
	'2': 'Z',
	'5': 'S',
}

func letterForm(s string) string {
	out := []byte(strings.ToUpper(s))
	for i := 0; i < len(out); i++ {
		if sub, ok := letterSubstitutions[out[i]]; ok {
			out[i] = sub
		}
	}
	return string(out)
}

func rot13(s string) string {
	out := []byte(s)
	for i := 0; i < len(out); i++ {
		if out[i] >= 'A' && out[i] <= 'Z' {
			out[i] = 'A' + (out[i]-'A'+13)%26
		}
	}
	return string(out)
}
