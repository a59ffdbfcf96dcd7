package cwasset

import (
	"slices"

	"github.com/CosmWasm/cwasset/types"
)

// AddrValidator validates a human readable address on the host chain.
// It is implemented by types.GoAPI.
type AddrValidator interface {
	AddrValidate(human string) (types.Addr, error)
}

var _ AddrValidator = types.GoAPI{}

// Check validates the asset info. CW20 addresses are lowercased (ASCII only)
// before validation; native denoms are accepted as they are.
func (i AssetInfoBase[T]) Check(api AddrValidator) (AssetInfo, error) {
	return i.check(api, nil, false)
}

// CheckWhitelist is like Check but also requires a native denom to be
// byte-equal to one of the whitelisted denoms. An empty whitelist rejects
// every native denom.
func (i AssetInfoBase[T]) CheckWhitelist(api AddrValidator, whitelist []string) (AssetInfo, error) {
	return i.check(api, whitelist, true)
}

func (i AssetInfoBase[T]) check(api AddrValidator, whitelist []string, useWhitelist bool) (AssetInfo, error) {
	switch i.kind {
	case KindCw20:
		// checked token addresses are always lowercase
		lower := lowerASCII(addrString(i.addr))
		addr, err := api.AddrValidate(lower)
		if err != nil {
			return AssetInfo{}, AddressError{Addr: lower, Err: err}
		}
		return Cw20(addr), nil
	case KindNative:
		if useWhitelist && !slices.Contains(whitelist, i.denom) {
			return AssetInfo{}, WhitelistError{Denom: i.denom, Whitelist: whitelist}
		}
		return Native[types.Addr](i.denom), nil
	default:
		return AssetInfo{}, UnsupportedError{Kind: i.kind, Method: "check"}
	}
}

// lowerASCII maps 'A'-'Z' to 'a'-'z' and leaves every other byte alone.
func lowerASCII(s string) string {
	upper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			upper = true
			break
		}
	}
	if !upper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
