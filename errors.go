package contenttype

import "github.com/ghettovoice/contenttype/internal/errorutil"

// Error is the type of all error kinds returned by the package.
// Returned errors wrap one of the kinds below and carry details,
// test for a kind with [errors.Is].
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when the input is neither a string nor
	// a supported header source, or when a value can not be formatted.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrMissingHeader is returned when a header source has no Content-Type value.
	ErrMissingHeader = errorutil.ErrMissingHeader
	// ErrInvalidMediaType is returned when the type/subtype part is malformed.
	ErrInvalidMediaType = errorutil.ErrInvalidMediaType
	// ErrInvalidParameterFormat is returned when the type/subtype is valid
	// but a parameter clause is malformed.
	ErrInvalidParameterFormat = errorutil.ErrInvalidParameterFormat
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
