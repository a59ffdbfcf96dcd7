package types

import (
	"encoding/json"
	"fmt"
)

type (
	// HumanizeAddressFunc is a type for functions that convert a canonical address (bytes)
	// to a human readable address (typically bech32).
	HumanizeAddressFunc func([]byte) (string, uint64, error)
	// CanonicalizeAddressFunc is a type for functions that convert a human readable address (typically bech32)
	// to a canonical address (bytes).
	CanonicalizeAddressFunc func(string) ([]byte, uint64, error)
	// ValidateAddressFunc is a type for functions that validate a human readable address (typically bech32).
	// The returned uint64 is the gas cost reported by the host.
	ValidateAddressFunc func(string) (uint64, error)
)

// GoAPI is the set of address callbacks provided by the host chain.
type GoAPI struct {
	HumanizeAddress     HumanizeAddressFunc
	CanonicalizeAddress CanonicalizeAddressFunc
	ValidateAddress     ValidateAddressFunc
}

// AddrValidate runs the host's address validation on the input and returns it
// as an Addr if it was accepted. The input is not modified.
func (a GoAPI) AddrValidate(human string) (Addr, error) {
	if a.ValidateAddress == nil {
		return Addr{}, fmt.Errorf("no address validation callback set")
	}
	if _, err := a.ValidateAddress(human); err != nil {
		return Addr{}, err
	}
	return Addr{human: human}, nil
}

// Addr is a human readable address that passed the host's address validation.
//
// Outside of this package an Addr can only be obtained from GoAPI.AddrValidate
// or by decoding JSON. Decoding does not validate: it exists to load values a
// contract stored itself and must not be used on untrusted input.
type Addr struct {
	human string
}

func (a Addr) String() string {
	return a.human
}

func (a Addr) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.human)
}

func (a *Addr) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Addr, expected string", data)
	}
	a.human = s
	return nil
}
