package registry

import "errors"

// Kind classifies a registry failure for display.
type Kind string

const (
	KindInvalid            Kind = "invalid"
	KindDuplicateKey       Kind = "duplicate_key"
	KindParseError         Kind = "parse_error"
	KindEmptyImport        Kind = "empty_import"
	KindStorageUnavailable Kind = "storage_unavailable"
)

// Sentinel errors for errors.Is matching.
var (
	ErrInvalid            = errors.New("site failed validation")
	ErrDuplicateKey       = errors.New("shortcut key already in use")
	ErrParseError         = errors.New("import is not valid JSON")
	ErrEmptyImport        = errors.New("import contained no usable sites")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNoKeyAvailable     = errors.New("no shortcut key available")
)

// Failure is a structured, displayable registry error.
// None of these are fatal; the registry stays usable after any of them.
type Failure struct {
	Kind    Kind
	Message string
	err     error
}

// NewFailure builds a Failure wrapping the matching sentinel.
func NewFailure(kind Kind, message string) *Failure {
	return &Failure{Kind: kind, Message: message, err: sentinelFor(kind)}
}

func (f *Failure) Error() string {
	return f.Message
}

// Unwrap lets errors.Is match the sentinel for this failure's kind.
func (f *Failure) Unwrap() error {
	return f.err
}

func sentinelFor(kind Kind) error {
	switch kind {
	case KindInvalid:
		return ErrInvalid
	case KindDuplicateKey:
		return ErrDuplicateKey
	case KindParseError:
		return ErrParseError
	case KindEmptyImport:
		return ErrEmptyImport
	case KindStorageUnavailable:
		return ErrStorageUnavailable
	default:
		return nil
	}
}
