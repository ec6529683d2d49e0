// Package export renders generated coupon batches as tabular artifacts for
// spreadsheet tools and downstream redemption systems.
package export

import (
	"encoding/csv"
	"io"

	"github.com/allisson/coupons/internal/errors"
)

// Default column labels, used when the caller leaves a Header field empty.
const (
	DefaultCodeHeader = "code"
	DefaultUsedHeader = "used"
)

// UsedValue is written to the used column of every exported row. Codes are
// always unused at issue time; redemption tracking lives in downstream systems.
const UsedValue = "false"

// Header holds the column labels of an exported batch. Labels are
// caller-supplied so localization stays outside the core; empty fields fall
// back to the defaults.
type Header struct {
	Code string
	Used string
}

func (h Header) orDefaults() (string, string) {
	code, used := h.Code, h.Used
	if code == "" {
		code = DefaultCodeHeader
	}
	if used == "" {
		used = DefaultUsedHeader
	}
	return code, used
}

// WriteCSV writes one header row plus one row per code to w.
func WriteCSV(w io.Writer, header Header, codes []string) error {
	writer := csv.NewWriter(w)

	code, used := header.orDefaults()
	if err := writer.Write([]string{code, used}); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, c := range codes {
		if err := writer.Write([]string{c, UsedValue}); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	writer.Flush()
	return writer.Error()
}
