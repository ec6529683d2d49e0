package service

import (
	"strings"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// Validate normalizes code and checks its shape and every part's checkdigit
// against the format. Inputs with an extra leading segment (a campaign prefix)
// are accepted: when the separator appears more often than Parts-1 times, the
// first segment is dropped before normalization.
func (s *codeService) Validate(format couponDomain.CodeFormat, code string) bool {
	if err := format.Validate(); err != nil {
		return false
	}

	normalized := couponDomain.Normalize(stripPrefix(format, code), couponDomain.DefaultNormalizeOptions())
	if len(normalized) != format.CodeLength() {
		return false
	}

	for i := 0; i < format.Parts; i++ {
		part := normalized[i*format.PartLength : (i+1)*format.PartLength]
		data, digit := part[:len(part)-1], part[len(part)-1]
		expected, err := couponDomain.CheckDigit(i+1, data)
		if err != nil || expected != digit {
			return false
		}
	}
	return true
}

// ValidateAll reports whether every code validates. An empty collection is valid.
func (s *codeService) ValidateAll(format couponDomain.CodeFormat, codes []string) bool {
	for _, code := range codes {
		if !s.Validate(format, code) {
			return false
		}
	}
	return true
}

// Normalize renders the best-effort canonical form of code: prefix heuristic,
// normalization, re-chunking into PartLength groups (a shorter final group is
// kept) and joining with the separator. Checkdigits are not verified; feed the
// result to Validate for that.
func (s *codeService) Normalize(format couponDomain.CodeFormat, code string) string {
	normalized := couponDomain.Normalize(stripPrefix(format, code), couponDomain.DefaultNormalizeOptions())

	var chunks []string
	if format.PartLength > 0 {
		chunks = make([]string, 0, format.Parts)
		for pos := 0; pos < len(normalized); pos += format.PartLength {
			end := pos + format.PartLength
			if end > len(normalized) {
				end = len(normalized)
			}
			chunks = append(chunks, normalized[pos:end])
		}
	} else {
		chunks = []string{normalized}
	}

	out := strings.Join(chunks, format.Separator)
	if format.Prefix != "" {
		out = strings.ToUpper(format.Prefix) + format.Separator + out
	}
	return out
}

// NormalizeAll maps Normalize over codes, preserving order.
func (s *codeService) NormalizeAll(format couponDomain.CodeFormat, codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, s.Normalize(format, code))
	}
	return out
}

// stripPrefix drops a leading prefix segment when the input carries more
// separators than a bare code in this format would.
func stripPrefix(format couponDomain.CodeFormat, code string) string {
	if format.Separator == "" {
		return code
	}
	if strings.Count(code, format.Separator) > format.Parts-1 {
		_, rest, _ := strings.Cut(code, format.Separator)
		return rest
	}
	return code
}
