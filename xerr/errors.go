// Package xerr defines the sentinel error values shared by every go-xtce
// package. Every fallible function wraps one of these with fmt.Errorf's
// %w verb and caller-specific detail, so callers can classify a failure
// with errors.Is without parsing strings.
package xerr

import "errors"

var (
	// ErrUnknownReference is returned when a *Ref string (parameterRef,
	// argumentRef, containerRef, parameterTypeRef, arrayTypeRef, ...)
	// does not resolve within the dictionary.
	ErrUnknownReference = errors.New("xtce: unknown reference")

	// ErrUnsupportedFeature is returned for XTCE constructs the core
	// does not implement: comparison operators other than "==",
	// non-zero comparison instance, useCalibratedValue=false,
	// non-MSB bit/byte order, unsupported integer signedness, and the
	// other features spec.md lists as out of scope.
	ErrUnsupportedFeature = errors.New("xtce: unsupported feature")

	// ErrTypeMismatch is returned when a record value doesn't match
	// what its type's data encoding expects (e.g. encoding a float
	// through an integer encoding with no calibrator attached).
	ErrTypeMismatch = errors.New("xtce: type mismatch")

	// ErrSizeMismatch is returned on decode when a fixed-size field's
	// bit slice isn't the length its encoding expected.
	ErrSizeMismatch = errors.New("xtce: size mismatch")

	// ErrFixedValueMismatch is returned when a FixedValueEntry's
	// decoded bits don't equal its configured constant.
	ErrFixedValueMismatch = errors.New("xtce: fixed value mismatch")

	// ErrRestrictionViolation is returned when a decoded (or, for
	// duplicate restrictions within one chain, planned) parameter
	// value contradicts a base-container restriction criterion.
	ErrRestrictionViolation = errors.New("xtce: restriction violation")

	// ErrAbstractResolutionFailure is returned when no inheritor of an
	// abstract container or meta-command successfully decodes the
	// residual bits.
	ErrAbstractResolutionFailure = errors.New("xtce: abstract resolution failure")

	// ErrMissingField is returned on encode when a required entry is
	// absent from the caller-supplied record.
	ErrMissingField = errors.New("xtce: missing field")

	// ErrCyclicInheritance is returned when planning revisits a
	// container or meta-command name already on the current chain —
	// a malformed dictionary the source never guards against.
	ErrCyclicInheritance = errors.New("xtce: cyclic inheritance chain")
)
