package cwasset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CosmWasm/cwasset/types"
)

const (
	kindTagNative = "native"
	kindTagCw20   = "cw20"

	assetInfoFormat = "`native:{denom}` or `cw20:{contract_addr}`"
)

// AssetKind tells the two asset families apart. The zero value is unset and
// never produced by the constructors or decoders of this package.
type AssetKind uint8

const (
	KindNative AssetKind = iota + 1
	KindCw20
)

func (k AssetKind) String() string {
	switch k {
	case KindNative:
		return kindTagNative
	case KindCw20:
		return kindTagCw20
	default:
		return "unset"
	}
}

// Address is the type of a CW20 contract address. string is used for data
// that was not validated yet, types.Addr for data that was.
type Address interface {
	string | types.Addr
}

// AssetInfoBase identifies an asset: either a native coin by its denom or a
// CW20 token by its contract address.
//
// Values are immutable and comparable with ==. Use Native or Cw20 to create
// them; the zero value is invalid.
type AssetInfoBase[T Address] struct {
	kind  AssetKind
	denom string
	addr  T
}

// AssetInfoUnchecked may contain unverified data; accept it in messages.
type AssetInfoUnchecked = AssetInfoBase[string]

// AssetInfo contains only verified data; safe to store and act on.
//
// Decoding JSON into an AssetInfo trusts the address as it is, which is meant
// for values the contract stored itself. Decode untrusted input into an
// AssetInfoUnchecked and call Check.
type AssetInfo = AssetInfoBase[types.Addr]

// Native creates the asset info of a native coin. The denom is kept byte for byte.
func Native[T Address](denom string) AssetInfoBase[T] {
	return AssetInfoBase[T]{kind: KindNative, denom: denom}
}

// Cw20 creates the asset info of a CW20 token.
func Cw20[T Address](contractAddr T) AssetInfoBase[T] {
	return AssetInfoBase[T]{kind: KindCw20, addr: contractAddr}
}

// Kind returns KindNative or KindCw20, or 0 for the zero value.
func (i AssetInfoBase[T]) Kind() AssetKind {
	return i.kind
}

// AsNative returns the denom if this is a native coin.
func (i AssetInfoBase[T]) AsNative() (string, bool) {
	if i.kind != KindNative {
		return "", false
	}
	return i.denom, true
}

// AsCw20 returns the contract address if this is a CW20 token.
func (i AssetInfoBase[T]) AsCw20() (T, bool) {
	if i.kind != KindCw20 {
		var zero T
		return zero, false
	}
	return i.addr, true
}

// Equal reports whether both are the same kind with the same denom or address.
func (i AssetInfoBase[T]) Equal(other AssetInfoBase[T]) bool {
	return i == other
}

// String returns the textual identity, `native:{denom}` or `cw20:{contract_addr}`.
// The denom or address is written verbatim, even if it contains ':'.
func (i AssetInfoBase[T]) String() string {
	switch i.kind {
	case KindNative:
		return kindTagNative + ":" + i.denom
	case KindCw20:
		return kindTagCw20 + ":" + addrString(i.addr)
	default:
		return i.kind.String()
	}
}

// Unchecked widens the address to its string form.
func (i AssetInfoBase[T]) Unchecked() AssetInfoUnchecked {
	return AssetInfoUnchecked{kind: i.kind, denom: i.denom, addr: addrString(i.addr)}
}

// ParseAssetInfo parses `native:{denom}` or `cw20:{contract_addr}`.
// The kind is matched case-sensitively and the body is taken verbatim.
func ParseAssetInfo(s string) (AssetInfoUnchecked, error) {
	words := strings.Split(s, ":")
	if len(words) != 2 || words[0] == "" || words[1] == "" {
		return AssetInfoUnchecked{}, FormatError{What: "asset info", Input: s, Expected: assetInfoFormat}
	}
	return newAssetInfoUnchecked(words[0], words[1])
}

func newAssetInfoUnchecked(kind, body string) (AssetInfoUnchecked, error) {
	switch kind {
	case kindTagNative:
		return Native[string](body), nil
	case kindTagCw20:
		return Cw20(body), nil
	default:
		return AssetInfoUnchecked{}, UnknownKindError{Kind: kind}
	}
}

// MarshalJSON encodes {"native":"<denom>"} or {"cw20":"<contract_addr>"}.
func (i AssetInfoBase[T]) MarshalJSON() ([]byte, error) {
	switch i.kind {
	case KindNative:
		return json.Marshal(map[string]string{kindTagNative: i.denom})
	case KindCw20:
		return json.Marshal(map[string]T{kindTagCw20: i.addr})
	default:
		return nil, fmt.Errorf("cannot marshal unset asset info")
	}
}

// UnmarshalJSON requires exactly one of the keys "native" or "cw20" with a
// string value. Key matching is case-sensitive.
func (i *AssetInfoBase[T]) UnmarshalJSON(data []byte) error {
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(data, &variants); err != nil {
		return fmt.Errorf("cannot unmarshal %s into asset info: %w", data, err)
	}
	if len(variants) != 1 {
		return fmt.Errorf("cannot unmarshal %s into asset info, expected exactly one of `native` or `cw20`", data)
	}
	for key, value := range variants {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return fmt.Errorf("cannot unmarshal %s into asset info, `%s` must not be null", data, key)
		}
		switch key {
		case kindTagNative:
			var denom string
			if err := json.Unmarshal(value, &denom); err != nil {
				return fmt.Errorf("cannot unmarshal %s into asset info: %w", data, err)
			}
			*i = Native[T](denom)
		case kindTagCw20:
			var addr T
			if err := json.Unmarshal(value, &addr); err != nil {
				return fmt.Errorf("cannot unmarshal %s into asset info: %w", data, err)
			}
			*i = Cw20(addr)
		default:
			return fmt.Errorf("cannot unmarshal %s into asset info, unknown variant `%s`", data, key)
		}
	}
	return nil
}

func addrString[T Address](addr T) string {
	switch a := any(addr).(type) {
	case types.Addr:
		return a.String()
	case string:
		return a
	}
	panic("unreachable")
}
