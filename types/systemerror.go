package types

import (
	"errors"
	"fmt"
)

// SystemError captures the errors a host querier reports before the request
// reaches the queried module or contract.
// Exactly one of the fields should be set.
type SystemError struct {
	InvalidRequest     *InvalidRequest     `json:"invalid_request,omitempty"`
	InvalidResponse    *InvalidResponse    `json:"invalid_response,omitempty"`
	NoSuchContract     *NoSuchContract     `json:"no_such_contract,omitempty"`
	Unknown            *Unknown            `json:"unknown,omitempty"`
	UnsupportedRequest *UnsupportedRequest `json:"unsupported_request,omitempty"`
}

var (
	_ error = SystemError{}
	_ error = InvalidRequest{}
	_ error = InvalidResponse{}
	_ error = NoSuchContract{}
	_ error = Unknown{}
	_ error = UnsupportedRequest{}
)

func (a SystemError) Error() string {
	switch {
	case a.InvalidRequest != nil:
		return a.InvalidRequest.Error()
	case a.InvalidResponse != nil:
		return a.InvalidResponse.Error()
	case a.NoSuchContract != nil:
		return a.NoSuchContract.Error()
	case a.Unknown != nil:
		return a.Unknown.Error()
	case a.UnsupportedRequest != nil:
		return a.UnsupportedRequest.Error()
	default:
		panic("unknown error variant")
	}
}

// InvalidRequest represents an invalid request error
type InvalidRequest struct {
	Err     string `json:"error"`
	Request []byte `json:"request"`
}

func (e InvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %s - original request: %s", e.Err, string(e.Request))
}

// InvalidResponse represents an invalid response error
type InvalidResponse struct {
	Err      string `json:"error"`
	Response []byte `json:"response"`
}

func (e InvalidResponse) Error() string {
	return fmt.Sprintf("invalid response: %s - original response: %s", e.Err, string(e.Response))
}

// NoSuchContract represents a missing contract error
type NoSuchContract struct {
	Addr string `json:"addr,omitempty"`
}

func (e NoSuchContract) Error() string {
	return fmt.Sprintf("no such contract: %s", e.Addr)
}

// Unknown represents an unknown error
type Unknown struct{}

func (Unknown) Error() string {
	return "unknown system error"
}

// UnsupportedRequest represents an unsupported request error
type UnsupportedRequest struct {
	Kind string `json:"kind,omitempty"`
}

func (e UnsupportedRequest) Error() string {
	return fmt.Sprintf("unsupported request: %s", e.Kind)
}

// ToSystemError finds the system error in err's chain, embedding a bare
// variant in a SystemError. It returns nil if there is none.
func ToSystemError(err error) *SystemError {
	var sysErr SystemError
	if errors.As(err, &sysErr) {
		return &sysErr
	}
	if v, ok := asVariant[InvalidRequest](err); ok {
		return &SystemError{InvalidRequest: v}
	}
	if v, ok := asVariant[InvalidResponse](err); ok {
		return &SystemError{InvalidResponse: v}
	}
	if v, ok := asVariant[NoSuchContract](err); ok {
		return &SystemError{NoSuchContract: v}
	}
	if v, ok := asVariant[Unknown](err); ok {
		return &SystemError{Unknown: v}
	}
	if v, ok := asVariant[UnsupportedRequest](err); ok {
		return &SystemError{UnsupportedRequest: v}
	}
	return nil
}

func asVariant[T error](err error) (*T, bool) {
	var v T
	if !errors.As(err, &v) {
		return nil, false
	}
	return &v, true
}
