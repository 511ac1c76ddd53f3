// Package verror defines the failures raised while decoding or encoding VAB data.
//
// Every failure is raised where it is detected and never retried: malformed
// input is not transient.
package verror

import (
	"fmt"
)

type (
	Kind        string
	FormatError struct {
		Kind   Kind
		Detail string
	}
	UnsupportedVersionError struct {
		Version int32
	}
)

const (
	KindInvalidMagic       = Kind("invalid_magic")
	KindUnsupportedVersion = Kind("unsupported_version")
	KindCountMismatch      = Kind("count_mismatch")
	KindIndexOutOfRange    = Kind("index_out_of_range")
	KindSizeMismatch       = Kind("size_mismatch")
	KindTooManyWaveforms   = Kind("too_many_waveforms")
	KindTotalSizeExceeded  = Kind("total_size_exceeded")
	KindInvalidElement     = Kind("invalid_element")
	KindMissingHeader      = Kind("missing_header")
)

// Sentinels to compare against with errors.Is; the detail is ignored.
var (
	ErrInvalidMagic       = FormatError{Kind: KindInvalidMagic}
	ErrUnsupportedVersion = FormatError{Kind: KindUnsupportedVersion}
	ErrCountMismatch      = FormatError{Kind: KindCountMismatch}
	ErrIndexOutOfRange    = FormatError{Kind: KindIndexOutOfRange}
	ErrSizeMismatch       = FormatError{Kind: KindSizeMismatch}
	ErrTooManyWaveforms   = FormatError{Kind: KindTooManyWaveforms}
	ErrTotalSizeExceeded  = FormatError{Kind: KindTotalSizeExceeded}
	ErrInvalidElement     = FormatError{Kind: KindInvalidElement}
	ErrMissingHeader      = FormatError{Kind: KindMissingHeader}
)

func New(kind Kind, format string, args ...any) FormatError {
	return FormatError{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (r FormatError) Error() string {
	if r.Detail == "" {
		return string(r.Kind)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Detail)
}

func (r FormatError) Is(target error) bool {
	t, ok := target.(FormatError)
	return ok && t.Kind == r.Kind
}

func (r UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported format version 0x%X", r.Version)
}

func (r UnsupportedVersionError) Is(target error) bool {
	t, ok := target.(FormatError)
	return ok && t.Kind == KindUnsupportedVersion
}
