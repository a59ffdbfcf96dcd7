// Package astroport converts between cwasset values and the asset types of
// the Astroport contracts, which encode a token as
// {"token":{"contract_addr":".."}} and a native coin as
// {"native_token":{"denom":".."}}.
package astroport

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/CosmWasm/cwasset"
	"github.com/CosmWasm/cwasset/types"
)

// AssetInfo is a tagged union, exactly one of the fields should be set.
type AssetInfo struct {
	Token       *TokenInfo       `json:"token,omitempty"`
	NativeToken *NativeTokenInfo `json:"native_token,omitempty"`
}

type TokenInfo struct {
	ContractAddr types.Addr `json:"contract_addr"`
}

type NativeTokenInfo struct {
	Denom string `json:"denom"`
}

type Asset struct {
	Info   AssetInfo     `json:"info"`
	Amount types.Uint128 `json:"amount"`
}

// FromAssetInfo converts a checked asset info. The zero value converts to an
// empty AssetInfo.
func FromAssetInfo(info cwasset.AssetInfo) AssetInfo {
	if denom, ok := info.AsNative(); ok {
		return AssetInfo{NativeToken: &NativeTokenInfo{Denom: denom}}
	}
	if addr, ok := info.AsCw20(); ok {
		return AssetInfo{Token: &TokenInfo{ContractAddr: addr}}
	}
	return AssetInfo{}
}

// AssetInfo converts back. It fails unless exactly one variant is set.
func (i AssetInfo) AssetInfo() (cwasset.AssetInfo, error) {
	switch {
	case i.Token != nil && i.NativeToken == nil:
		return cwasset.Cw20(i.Token.ContractAddr), nil
	case i.NativeToken != nil && i.Token == nil:
		return cwasset.Native[types.Addr](i.NativeToken.Denom), nil
	default:
		return cwasset.AssetInfo{}, errorsmod.Wrap(cwasset.ErrInvalidFormat, "astroport asset info must set exactly one of token or native_token")
	}
}

// Equal compares with a checked asset info. Malformed values equal nothing.
func (i AssetInfo) Equal(info cwasset.AssetInfo) bool {
	converted, err := i.AssetInfo()
	return err == nil && converted.Equal(info)
}

func FromAsset(asset cwasset.Asset) Asset {
	return Asset{Info: FromAssetInfo(asset.Info), Amount: asset.Amount}
}

func (a Asset) Asset() (cwasset.Asset, error) {
	info, err := a.Info.AssetInfo()
	if err != nil {
		return cwasset.Asset{}, err
	}
	return cwasset.NewAsset(info, a.Amount), nil
}

func (a Asset) Equal(asset cwasset.Asset) bool {
	return a.Amount == asset.Amount && a.Info.Equal(asset.Info)
}
