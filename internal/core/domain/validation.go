package domain

// ValidationResult is the outcome of validating a payload against a schema.
// OK is true exactly when Errors is empty.
type ValidationResult struct {
	// OK reports whether the payload satisfied the schema.
	OK bool `json:"ok"`

	// Errors lists every violation found, sorted by schema path.
	// Each entry is a human-readable description; branch failures of
	// composite keywords are indented beneath a Details heading.
	Errors []string `json:"errors"`
}

// ValidResult returns a passing result with no errors.
func ValidResult() ValidationResult {
	return ValidationResult{OK: true, Errors: []string{}}
}

// InvalidResult returns a failing result carrying the given errors.
func InvalidResult(errors []string) ValidationResult {
	return ValidationResult{OK: false, Errors: errors}
}
