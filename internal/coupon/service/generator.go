package service

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // spreads seed bytes across the symbol stream; not used for authenticity
	"encoding/hex"
	"strings"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/errors"
)

const (
	// defaultSeedBytes is the entropy drawn from the OS random source per
	// generated code.
	defaultSeedBytes = 8

	// streamIndexMask reduces a stream byte to an alphabet index
	// (alphabet size minus one, a power-of-two mask).
	streamIndexMask = couponDomain.AlphabetSize - 1
)

type codeService struct {
	filter *couponDomain.BadWordFilter
}

// NewCodeService creates a code service backed by the given bad word filter.
// A nil filter selects the default embedded blocklist.
func NewCodeService(filter *couponDomain.BadWordFilter) CodeService {
	if filter == nil {
		filter = couponDomain.DefaultBadWordFilter()
	}
	return &codeService{filter: filter}
}

// Generate produces a fresh code for the format. The seed comes from
// crypto/rand; if the OS source fails the error wraps the
// secure-random-unavailable sentinel and no code is produced.
func (s *codeService) Generate(format couponDomain.CodeFormat) (string, error) {
	seed := make([]byte, defaultSeedBytes)
	if _, err := rand.Read(seed); err != nil {
		return "", errors.Wrapf(couponDomain.ErrSecureRandomUnavailable, "read seed: %v", err)
	}
	return s.GenerateFromSeed(format, seed)
}

// GenerateFromSeed expands seed into a 40-symbol stream and assembles the code
// from consecutive non-overlapping windows of PartLength-1 data symbols, each
// completed with its checkdigit. Windows that assemble into a blocklisted part
// are discarded without advancing the part index. If the stream runs out
// before enough parts are accepted, the error wraps the out-of-entropy
// sentinel; the caller may retry Generate or relax the format.
func (s *codeService) GenerateFromSeed(format couponDomain.CodeFormat, seed []byte) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}

	stream := symbolStream(seed)
	dataLen := format.PartLength - 1

	parts := make([]string, 0, format.Parts)
	partIndex := 1
	for pos := 0; pos+dataLen <= len(stream) && len(parts) < format.Parts; pos += dataLen {
		data := stream[pos : pos+dataLen]
		digit, err := couponDomain.CheckDigit(partIndex, data)
		if err != nil {
			return "", err
		}
		part := data + string(digit)
		if s.filter.Forbidden(part) {
			continue
		}
		parts = append(parts, part)
		partIndex++
	}
	if len(parts) < format.Parts {
		return "", errors.Wrapf(couponDomain.ErrOutOfEntropy, "assembled %d of %d parts", len(parts), format.Parts)
	}

	code := strings.Join(parts, format.Separator)
	if format.Prefix != "" {
		code = strings.ToUpper(format.Prefix) + format.Separator + code
	}
	return code, nil
}

// symbolStream expands a seed into the symbol stream codes are assembled
// from: the hex encoding of the seed's SHA-1 digest, with each of the 40
// ASCII bytes masked down to an alphabet index.
func symbolStream(seed []byte) string {
	digest := sha1.Sum(seed) //nolint:gosec // entropy spreading only
	encoded := hex.EncodeToString(digest[:])
	stream := make([]byte, len(encoded))
	for i := 0; i < len(encoded); i++ {
		stream[i] = couponDomain.SymbolAt(int(encoded[i]) & streamIndexMask)
	}
	return string(stream)
}
