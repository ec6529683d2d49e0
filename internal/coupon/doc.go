/*
Package coupon provides typo-resistant coupon code generation, validation and
normalization.

Codes are built from a 32-symbol alphabet (digits and uppercase letters without
I, O, S, Z) and split into parts. The last symbol of every part is a checkdigit
computed from the part's data symbols and its position, so a single mistyped
symbol or a swapped pair of parts is detected without a database lookup.
Ambiguous characters in user input (O, I, S, Z and lowercase) are mapped to
their look-alike symbols before validation, so "smsg-r6ib" and "5M5G-R61B" are
the same code.

# Architecture

The module follows the layering used across this codebase:
  - domain: Alphabet, checkdigit, normalization, bad word filter, code format,
    format profile entity
  - service: Code generation from CSPRNG or caller seeds, validation,
    canonical formatting
  - usecase: Batch orchestration, format profile resolution and persistence
  - repository: Format profile storage (MySQL, PostgreSQL)
  - export: CSV export of generated batches
  - http: HTTP handlers and DTOs

# Generation

Generate draws an 8-byte seed from crypto/rand, expands it into a 40-symbol
stream and assembles parts from consecutive stream windows, appending a
checkdigit to each. Candidate parts that spell a blocklisted word are skipped.
There is no fallback to a weaker entropy source: if the OS random source fails,
generation fails.

	svc := service.NewCodeService(nil)
	code, err := svc.Generate(domain.DefaultCodeFormat())
	// code is like "NPL6-JK5W"

GenerateFromSeed produces deterministic output for a caller-supplied seed,
which is useful in tests and for reproducing reported codes.

# Validation

Validate is total: any input, including garbage, yields true or false and
never an error.

	svc.Validate(format, "npl6-jk5w") // true
	svc.Validate(format, "NPL7-JK5W") // false, checkdigit mismatch

# Format profiles

A FormatProfile is a named, persisted CodeFormat. API and CLI callers can
reference a profile by name instead of passing the full shape on each request.
*/
package coupon
