package cwasset

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/CosmWasm/cwasset/types"
)

// Codespace is the ABCI codespace the errors of this package are registered in.
const Codespace = "cwasset"

// Registered error codes. Every error returned by this package wraps exactly
// one of them, so errors.Is and errorsmod.ABCIInfo work on the typed errors below.
var (
	ErrInvalidFormat       = errorsmod.Register(Codespace, 2, "invalid format")
	ErrUnknownKind         = errorsmod.Register(Codespace, 3, "unknown asset type")
	ErrInvalidAddress      = errorsmod.Register(Codespace, 4, "invalid address")
	ErrDenomNotWhitelisted = errorsmod.Register(Codespace, 5, "denom not whitelisted")
	ErrUnsupported         = errorsmod.Register(Codespace, 6, "unsupported operation")
	ErrQuery               = errorsmod.Register(Codespace, 7, "query failed")
)

var (
	_ error = FormatError{}
	_ error = UnknownKindError{}
	_ error = AddressError{}
	_ error = WhitelistError{}
	_ error = UnsupportedError{}
	_ error = QueryError{}
)

// FormatError is returned when a textual asset or asset info does not have
// the expected number of non-empty parts, or carries an invalid amount.
type FormatError struct {
	// What was being parsed, "asset info" or "asset"
	What     string
	Input    string
	Expected string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid %s format `%s`; must be in format %s", e.What, e.Input, e.Expected)
}

func (e FormatError) Unwrap() error { return ErrInvalidFormat }
func (e FormatError) Cause() error  { return ErrInvalidFormat }

// UnknownKindError is returned when the kind of a textual asset info is
// neither "native" nor "cw20".
type UnknownKindError struct {
	Kind string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("invalid asset type `%s`; must be `native` or `cw20`", e.Kind)
}

func (e UnknownKindError) Unwrap() error { return ErrUnknownKind }
func (e UnknownKindError) Cause() error  { return ErrUnknownKind }

// AddressError is returned when the host rejected a token contract address.
// Addr is the lowercased address that was submitted for validation.
type AddressError struct {
	Addr string
	Err  error
}

func (e AddressError) Error() string {
	return fmt.Sprintf("invalid address %s: %v", e.Addr, e.Err)
}

func (e AddressError) Unwrap() []error { return []error{ErrInvalidAddress, e.Err} }
func (e AddressError) Cause() error    { return ErrInvalidAddress }

// WhitelistError is returned when a native denom is not in the whitelist.
type WhitelistError struct {
	Denom     string
	Whitelist []string
}

func (e WhitelistError) Error() string {
	return fmt.Sprintf("invalid denom %s; must be %s", e.Denom, strings.Join(e.Whitelist, "|"))
}

func (e WhitelistError) Unwrap() error { return ErrDenomNotWhitelisted }
func (e WhitelistError) Cause() error  { return ErrDenomNotWhitelisted }

// UnsupportedError is returned when a message or query does not exist for
// the asset kind, e.g. transfer_from on native coins.
type UnsupportedError struct {
	Kind   AssetKind
	Method string
}

func (e UnsupportedError) Error() string {
	if e.Kind == KindNative {
		return fmt.Sprintf("native coins do not have %s method", e.Method)
	}
	return fmt.Sprintf("%s assets do not have %s method", e.Kind, e.Method)
}

func (e UnsupportedError) Unwrap() error { return ErrUnsupported }
func (e UnsupportedError) Cause() error  { return ErrUnsupported }

// QueryError carries a failure of the host querier, or of decoding its
// response. The message is the one of the underlying error.
type QueryError struct {
	Err error
}

func (e QueryError) Error() string {
	return e.Err.Error()
}

func (e QueryError) Unwrap() []error { return []error{ErrQuery, e.Err} }
func (e QueryError) Cause() error    { return ErrQuery }

// SystemError returns the host's system error behind this failure, or nil if
// the querier failed with something else.
func (e QueryError) SystemError() *types.SystemError {
	return types.ToSystemError(e.Err)
}
