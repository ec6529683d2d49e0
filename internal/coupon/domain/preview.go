package domain

import "strings"

// PreviewPlaceholder is the symbol used for every code position in a preview.
const PreviewPlaceholder = "X"

// PreviewPattern renders a placeholder pattern for a code shape, for example
// "XXXXXX-XXXXXX" for two parts of six symbols. A non-empty prefix is
// uppercased and prepended with a separator.
//
// Unlike generation and validation, preview never falls back to defaults: the
// separator must be given and parts and partLength must be positive, otherwise
// an invalid-configuration error is returned.
func PreviewPattern(prefix, separator string, parts, partLength int) (string, error) {
	if separator == "" || parts <= 0 || partLength <= 0 {
		return "", ErrInvalidConfiguration
	}
	part := strings.Repeat(PreviewPlaceholder, partLength)
	groups := make([]string, 0, parts+1)
	if prefix != "" {
		groups = append(groups, strings.ToUpper(prefix))
	}
	for i := 0; i < parts; i++ {
		groups = append(groups, part)
	}
	return strings.Join(groups, separator), nil
}
