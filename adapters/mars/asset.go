// Package mars converts between cwasset asset infos and the asset type of the
// Mars protocol contracts: {"cw20":{"contract_addr":".."}} for tokens and
// {"native":{"denom":".."}} for native coins. Addresses are not validated.
package mars

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/CosmWasm/cwasset"
)

// Asset is a tagged union, exactly one of the fields should be set.
type Asset struct {
	Cw20   *Cw20Asset   `json:"cw20,omitempty"`
	Native *NativeAsset `json:"native,omitempty"`
}

type Cw20Asset struct {
	ContractAddr string `json:"contract_addr"`
}

type NativeAsset struct {
	Denom string `json:"denom"`
}

// FromAssetInfo converts a checked or unchecked asset info. The zero value
// converts to an empty Asset.
func FromAssetInfo[T cwasset.Address](info cwasset.AssetInfoBase[T]) Asset {
	unchecked := info.Unchecked()
	if denom, ok := unchecked.AsNative(); ok {
		return Asset{Native: &NativeAsset{Denom: denom}}
	}
	if addr, ok := unchecked.AsCw20(); ok {
		return Asset{Cw20: &Cw20Asset{ContractAddr: addr}}
	}
	return Asset{}
}

// AssetInfo converts back. Run Check on the result before using the address.
func (a Asset) AssetInfo() (cwasset.AssetInfoUnchecked, error) {
	switch {
	case a.Cw20 != nil && a.Native == nil:
		return cwasset.Cw20(a.Cw20.ContractAddr), nil
	case a.Native != nil && a.Cw20 == nil:
		return cwasset.Native[string](a.Native.Denom), nil
	default:
		return cwasset.AssetInfoUnchecked{}, errorsmod.Wrap(cwasset.ErrInvalidFormat, "mars asset must set exactly one of cw20 or native")
	}
}

// Equal compares with an unchecked asset info. Malformed values equal nothing.
func (a Asset) Equal(info cwasset.AssetInfoUnchecked) bool {
	converted, err := a.AssetInfo()
	return err == nil && converted.Equal(info)
}
