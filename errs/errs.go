// Package errs defines the error taxonomy shared by every stealth-address
// component. It has no dependencies on the rest of the module so that leaf
// packages (keycodec, aptosaddr, ecies, metakeys) and the root stealth
// package can all return the same error shapes without an import cycle.
package errs

import "fmt"

// Kind identifies which of the library's error categories an Error belongs
// to. Callers should branch on Kind, not on message text.
type Kind int

const (
	// BadKeyFormat covers malformed hex/base58, wrong length, an invalid
	// curve point, a zero scalar, or a scalar >= the curve order.
	BadKeyFormat Kind = iota + 1
	// DerivationFailure covers a derived stealth scalar of 0 or a derived
	// point at infinity. Negligible probability; callers should retry with
	// a fresh ephemeral key.
	DerivationFailure
	// DecryptionFailure covers the ephemeral-blob integrity check: the
	// receiver recomputed the ephemeral public key and it did not match
	// the trailing bytes of the decrypted blob.
	DecryptionFailure
	// LengthExceeded is an advisory, non-fatal kind for payloads that
	// exceed an on-chain field's size cap.
	LengthExceeded
)

func (k Kind) String() string {
	switch k {
	case BadKeyFormat:
		return "BadKeyFormat"
	case DerivationFailure:
		return "DerivationFailure"
	case DecryptionFailure:
		return "DecryptionFailure"
	case LengthExceeded:
		return "LengthExceeded"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every exported function in
// this module. It carries a Kind for programmatic handling and an optional
// wrapped cause for diagnostics.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind. This lets
// callers write errors.Is(err, errs.ErrBadKeyFormat) without caring about
// the message or cause attached to a specific occurrence.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind that wraps an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), cause: cause}
}

// Sentinel values for errors.Is comparisons against a bare Kind, e.g.
// errors.Is(err, errs.ErrBadKeyFormat).
var (
	ErrBadKeyFormat      = &Error{Kind: BadKeyFormat, Msg: "bad key format"}
	ErrDerivationFailure = &Error{Kind: DerivationFailure, Msg: "derivation failure"}
	ErrDecryptionFailure = &Error{Kind: DecryptionFailure, Msg: "decryption failure"}
	ErrLengthExceeded    = &Error{Kind: LengthExceeded, Msg: "length exceeded"}
)
