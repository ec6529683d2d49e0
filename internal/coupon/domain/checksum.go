package domain

// Checkdigit parameters. These are interoperability constants: codes checked
// by other implementations of the same scheme use the identical multiplier
// and modulus, so they must never change.
const (
	checksumMultiplier = 19
	checksumModulus    = 31
)

// CheckDigit computes the checkdigit symbol for one part of a code.
//
// partIndex is the one-based position of the part within the code and data is
// the part body without its checkdigit. Every byte of data must be an alphabet
// symbol. The accumulator is reduced modulo the checksum modulus at each step,
// which yields the same digit as reducing once at the end while keeping the
// intermediate values small.
func CheckDigit(partIndex int, data string) (byte, error) {
	if partIndex < 1 {
		return 0, ErrInvalidPartIndex
	}
	acc := partIndex
	for i := 0; i < len(data); i++ {
		idx, ok := SymbolIndex(data[i])
		if !ok {
			return 0, ErrInvalidSymbol
		}
		acc = (acc*checksumMultiplier + idx) % checksumModulus
	}
	return SymbolAt(acc % checksumModulus), nil
}
