package fbx

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	ErrUnexpectedEOF ErrorKind = iota
	ErrMalformedProperty
	ErrInvalidEncoding
	ErrInvalidCompressionFormat
	ErrInvalidFCheck
	ErrDictionaryUnsupported
	ErrMalformedCompressedData
	ErrChecksumMismatch
	ErrMalformedNullNode
	ErrPropertyListLengthMismatch
	ErrNodeLengthMismatch
	ErrInvalidEndOffset
	ErrNestingTooDeep
	ErrInvalidHeader
	ErrInvalidFooterCode
	ErrInvalidFooterExtension
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "UnexpectedEOF"
	case ErrMalformedProperty:
		return "MalformedProperty"
	case ErrInvalidEncoding:
		return "InvalidEncoding"
	case ErrInvalidCompressionFormat:
		return "InvalidCompressionFormat"
	case ErrInvalidFCheck:
		return "InvalidFCheck"
	case ErrDictionaryUnsupported:
		return "DictionaryUnsupported"
	case ErrMalformedCompressedData:
		return "MalformedCompressedData"
	case ErrChecksumMismatch:
		return "ChecksumMismatch"
	case ErrMalformedNullNode:
		return "MalformedNullNode"
	case ErrPropertyListLengthMismatch:
		return "PropertyListLengthMismatch"
	case ErrNodeLengthMismatch:
		return "NodeLengthMismatch"
	case ErrInvalidEndOffset:
		return "InvalidEndOffset"
	case ErrNestingTooDeep:
		return "NestingTooDeep"
	case ErrInvalidHeader:
		return "InvalidHeader"
	case ErrInvalidFooterCode:
		return "InvalidFooterCode"
	case ErrInvalidFooterExtension:
		return "InvalidFooterExtension"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the failure type for every decode fault. Offset is the
// absolute byte position at which the fault was detected, which is
// not necessarily where the offending value was written.
type Error struct {
	Kind   ErrorKind
	Offset int64

	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[fbx] %v at 0x%x: %s: %v", e.Kind, e.Offset, e.msg, e.cause)
	}
	return fmt.Sprintf("[fbx] %v at 0x%x: %s", e.Kind, e.Offset, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Cause exists for github.com/pkg/errors chains.
func (e *Error) Cause() error { return e.cause }

func newError(kind ErrorKind, offset int64, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, offset int64, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the taxonomy kind from err. ok is false for errors
// that did not originate in this package.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
