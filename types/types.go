package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// uint128Bits is the width of a Uint128. Values are held in a 256 bit integer
// and every constructor rejects anything above this width.
const uint128Bits = 128

// Uint128 is an unsigned 128 bit integer, marshalled to and from JSON as a
// decimal string (like Uint128 in cosmwasm-std). The zero value is 0.
// Uint128 is comparable, so == is the equality on amounts.
type Uint128 struct {
	i uint256.Int
}

// NewUint128 creates a Uint128 from a uint64.
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.i.SetUint64(v)
	return u
}

// MaxUint128 returns 2^128 - 1.
func MaxUint128() Uint128 {
	var u Uint128
	u.i.Lsh(uint256.NewInt(1), uint128Bits)
	u.i.SubUint64(&u.i, 1)
	return u
}

// ParseUint128 parses a base 10 string without sign, spaces or separators.
// Leading zeros are accepted.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, fmt.Errorf("cannot parse empty string as Uint128")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Uint128{}, fmt.Errorf("cannot parse %q as Uint128: invalid digit", s)
		}
	}
	// uint256 refuses leading zeros on long inputs, strip them first.
	digits := s
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	// 2^128 has 39 decimal digits, anything longer cannot fit.
	if len(digits) > 39 {
		return Uint128{}, fmt.Errorf("cannot parse %q as Uint128: value out of range", s)
	}
	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return Uint128{}, fmt.Errorf("cannot parse %q as Uint128: %w", s, err)
	}
	if v.BitLen() > uint128Bits {
		return Uint128{}, fmt.Errorf("cannot parse %q as Uint128: value out of range", s)
	}
	return Uint128{i: *v}, nil
}

// Uint128FromBig converts a non-negative big.Int of at most 128 bits.
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b == nil || b.Sign() < 0 {
		return Uint128{}, fmt.Errorf("cannot convert negative or nil big.Int to Uint128")
	}
	if b.BitLen() > uint128Bits {
		return Uint128{}, fmt.Errorf("cannot convert %s to Uint128: value out of range", b)
	}
	v, _ := uint256.FromBig(b)
	return Uint128{i: *v}, nil
}

// String returns the decimal representation.
func (u Uint128) String() string {
	return u.i.Dec()
}

// BigInt returns the value as a new big.Int.
func (u Uint128) BigInt() *big.Int {
	return u.i.ToBig()
}

// Uint64 returns the value and whether it fits into a uint64.
func (u Uint128) Uint64() (uint64, bool) {
	return u.i.Uint64(), u.i.IsUint64()
}

func (u Uint128) IsZero() bool {
	return u.i.IsZero()
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than o.
func (u Uint128) Cmp(o Uint128) int {
	return u.i.Cmp(&o.i)
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Uint128, expected string-encoded integer", data)
	}
	v, err := ParseUint128(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Uint128, failed to parse integer", data)
	}
	*u = v
	return nil
}

// HumanAddress is a printable (typically bech32 encoded) address string. Just use it as a label for developers.
type HumanAddress = string

// CanonicalAddress uses standard base64 encoding, just use it as a label for developers
type CanonicalAddress = []byte

// Coin is the native coin record of the bank module. The amount is carried as
// a decimal string on the wire.
type Coin struct {
	Denom  string  `json:"denom"`  // type, eg. "uatom"
	Amount Uint128 `json:"amount"` // string encoding of the integer amount, eg. "12345"
}

func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: NewUint128(amount),
	}
}

// String formats the coin the way the Cosmos SDK does, e.g. "12345uatom".
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// Array is a wrapper around a slice that ensures that we get "[]" JSON for nil values.
// When unmarshalling, we get an empty slice for "[]" and "null".
//
// This is needed for list fields of chain messages because contracts and the
// host reject `null` there.
type Array[C any] []C

// MarshalJSON ensures that we get "[]" for nil arrays
func (a Array[C]) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	var raw []C = a
	return json.Marshal(raw)
}

// UnmarshalJSON ensures that we get an empty slice for "[]" and "null"
func (a *Array[C]) UnmarshalJSON(data []byte) error {
	var raw []C
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// make sure we deserialize [] back to empty slice
	if len(raw) == 0 {
		raw = []C{}
	}
	*a = raw
	return nil
}
