package stealth

import "github.com/pivy-xyz/stealth/errs"

// Error is the error type every exported function in this module returns.
// See errs.Error for the Kind taxonomy.
type Error = errs.Error

// Kind identifies which error category an Error belongs to.
type Kind = errs.Kind

// Error kinds, mirrored from errs so callers never need to import the
// errs package directly.
const (
	BadKeyFormat      = errs.BadKeyFormat
	DerivationFailure = errs.DerivationFailure
	DecryptionFailure = errs.DecryptionFailure
	LengthExceeded    = errs.LengthExceeded
)

// Sentinel errors for errors.Is(err, stealth.ErrBadKeyFormat)-style checks.
var (
	ErrBadKeyFormat      = errs.ErrBadKeyFormat
	ErrDerivationFailure = errs.ErrDerivationFailure
	ErrDecryptionFailure = errs.ErrDecryptionFailure
	ErrLengthExceeded    = errs.ErrLengthExceeded
)
