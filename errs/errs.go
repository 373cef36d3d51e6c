// Package errs defines the sentinel errors returned by the gff codec.
//
// Every exported error wraps one of the sentinel values below so callers
// can use errors.Is to classify a failure without parsing message text.
// The constructor helpers attach the offset or index that triggered the
// failure, which the bare sentinels alone cannot carry.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader indicates a bad magic, wrong version, or an
	// offset/count pair that disagrees with the running block layout.
	ErrMalformedHeader = errors.New("gff: malformed header")

	// ErrIndexOutOfRange indicates a struct, field, or label index that
	// exceeds its block's element count.
	ErrIndexOutOfRange = errors.New("gff: index out of range")

	// ErrUnalignedOffset indicates a field_indices or list_indices byte
	// offset that is not a multiple of 4.
	ErrUnalignedOffset = errors.New("gff: unaligned offset")

	// ErrBadFieldType indicates a field type code outside 0-15.
	ErrBadFieldType = errors.New("gff: bad field type")

	// ErrUnknownLanguage indicates a language id outside the fixed enum.
	ErrUnknownLanguage = errors.New("gff: unknown language")

	// ErrStringLengthOverflow indicates a declared string or void length
	// that exceeds the remaining bytes in its block.
	ErrStringLengthOverflow = errors.New("gff: string length overflow")

	// ErrCycleDetected indicates a struct index was visited more than
	// once while walking the tree from the root.
	ErrCycleDetected = errors.New("gff: cycle detected")

	// ErrLabelTooLong indicates a label longer than 16 bytes.
	ErrLabelTooLong = errors.New("gff: label too long")

	// ErrResRefTooLong indicates a CResRef longer than 16 bytes.
	ErrResRefTooLong = errors.New("gff: resref too long")

	// ErrWriteFailed indicates a sink returned an I/O error while packed
	// output was written to it. gff.Pack returns the packed bytes rather
	// than writing to a sink, so it does not return this error itself.
	ErrWriteFailed = errors.New("gff: write failed")
)

// MalformedHeader wraps ErrMalformedHeader with the offending detail.
func MalformedHeader(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedHeader, reason)
}

// IndexOutOfRange wraps ErrIndexOutOfRange with the kind of index, the
// offending value, and the block's element count.
func IndexOutOfRange(kind string, idx, count uint32) error {
	return fmt.Errorf("%w: %s index %d >= count %d", ErrIndexOutOfRange, kind, idx, count)
}

// UnalignedOffset wraps ErrUnalignedOffset with the offending byte offset.
func UnalignedOffset(kind string, offset uint32) error {
	return fmt.Errorf("%w: %s offset %d is not a multiple of 4", ErrUnalignedOffset, kind, offset)
}

// BadFieldType wraps ErrBadFieldType with the offending type code.
func BadFieldType(code uint32) error {
	return fmt.Errorf("%w: code %d", ErrBadFieldType, code)
}

// UnknownLanguage wraps ErrUnknownLanguage with the offending language id.
func UnknownLanguage(lang uint32) error {
	return fmt.Errorf("%w: %d", ErrUnknownLanguage, lang)
}

// StringLengthOverflow wraps ErrStringLengthOverflow with the declared
// length and the bytes remaining in the block it was read from.
func StringLengthOverflow(declared, remaining int) error {
	return fmt.Errorf("%w: declared %d, remaining %d", ErrStringLengthOverflow, declared, remaining)
}

// CycleDetected wraps ErrCycleDetected with the struct index that was
// visited a second time.
func CycleDetected(structIdx uint32) error {
	return fmt.Errorf("%w: struct index %d", ErrCycleDetected, structIdx)
}

// LabelTooLong wraps ErrLabelTooLong with the offending label.
func LabelTooLong(label string) error {
	return fmt.Errorf("%w: %q", ErrLabelTooLong, label)
}

// ResRefTooLong wraps ErrResRefTooLong with the offending value.
func ResRefTooLong(value string) error {
	return fmt.Errorf("%w: %q", ErrResRefTooLong, value)
}

// WriteFailed wraps ErrWriteFailed with the underlying sink error.
func WriteFailed(cause error) error {
	return fmt.Errorf("%w: %v", ErrWriteFailed, cause)
}
