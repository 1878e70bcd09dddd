package msgtree

import "errors"

var (
	// ErrNilValue is returned when a decoded document stores a null value.
	ErrNilValue = errors.New("message value is nil")
	// ErrUnsupportedValue is returned for values that are neither scalars nor mappings.
	ErrUnsupportedValue = errors.New("unsupported message value")
	// ErrUnsupportedFormat is returned by the loaders for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported message format")
	// ErrEmptyLocale is returned when a locale cannot be derived from a file name.
	ErrEmptyLocale = errors.New("locale is required")
)
