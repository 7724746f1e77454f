package playerdomain

// ErrorCategory classifies a batch error entry.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryDuplicate  ErrorCategory = "duplicate"
	CategoryNotFound   ErrorCategory = "not_found"
	CategoryParse      ErrorCategory = "parse"
	CategoryEmpty      ErrorCategory = "empty"
	CategorySystem     ErrorCategory = "system"
)

// MissingNamePlaceholder stands in for a candidate whose name is blank.
const MissingNamePlaceholder = "Sin nombre"

// ValidationError describes why one candidate, or the whole file, was rejected.
type ValidationError struct {
	ID       *int          `json:"id"`
	Name     *string       `json:"nombre"`
	Message  string        `json:"error"`
	Category ErrorCategory `json:"-"`
}
