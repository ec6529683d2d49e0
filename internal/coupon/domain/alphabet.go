// Package domain defines core coupon code domain models: the code alphabet,
// checkdigit computation, normalization rules, format configuration and the bad word filter.
package domain

// Alphabet is the ordered set of symbols coupon codes are built from.
// It contains the digits and uppercase letters except I, O, S and Z, which are
// visually ambiguous with 1, 0, 5 and 2. Symbol order is part of the code
// format: checkdigits are computed from symbol positions, so reordering the
// alphabet would invalidate every previously issued code.
const Alphabet = "0123456789ABCDEFGHJKLMNPQRTUVWXY"

// AlphabetSize is the number of symbols in Alphabet.
const AlphabetSize = len(Alphabet)

// symbolIndexes maps an ASCII byte to its position in Alphabet, or -1.
var symbolIndexes [128]int8

func init() {
	for i := range symbolIndexes {
		symbolIndexes[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		symbolIndexes[Alphabet[i]] = int8(i)
	}
}

// SymbolIndex returns the position of c in Alphabet.
// The second return value is false when c is not an alphabet symbol.
func SymbolIndex(c byte) (int, bool) {
	if c >= 128 {
		return 0, false
	}
	idx := symbolIndexes[c]
	if idx < 0 {
		return 0, false
	}
	return int(idx), true
}

// SymbolAt returns the alphabet symbol at position i.
// It panics if i is out of range; callers are expected to pass values
// already reduced modulo the alphabet size.
func SymbolAt(i int) byte {
	return Alphabet[i]
}

// IsSymbol reports whether c is a member of Alphabet.
func IsSymbol(c byte) bool {
	_, ok := SymbolIndex(c)
	return ok
}
