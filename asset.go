package cwasset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CosmWasm/cwasset/types"
)

const assetFormat = "`native:{denom}:{amount}` or `cw20:{contract_addr}:{amount}`"

// AssetBase is an amount of an asset.
type AssetBase[T Address] struct {
	// Info specifies the asset's type (CW20 or native)
	Info AssetInfoBase[T] `json:"info"`
	// Amount specifies the asset's amount
	Amount types.Uint128 `json:"amount"`
}

// AssetUnchecked may contain unverified data; accept it in messages.
type AssetUnchecked = AssetBase[string]

// Asset contains only verified data; safe to store and act on. Like
// AssetInfo, JSON decoding trusts the address as it is.
type Asset = AssetBase[types.Addr]

// NewAsset creates an amount of the given asset.
func NewAsset[T Address](info AssetInfoBase[T], amount types.Uint128) AssetBase[T] {
	return AssetBase[T]{Info: info, Amount: amount}
}

// NativeAsset creates an amount of a native coin.
func NativeAsset[T Address](denom string, amount types.Uint128) AssetBase[T] {
	return AssetBase[T]{Info: Native[T](denom), Amount: amount}
}

// Cw20Asset creates an amount of a CW20 token.
func Cw20Asset[T Address](contractAddr T, amount types.Uint128) AssetBase[T] {
	return AssetBase[T]{Info: Cw20(contractAddr), Amount: amount}
}

// Equal reports whether info and amount are both equal.
func (a AssetBase[T]) Equal(other AssetBase[T]) bool {
	return a == other
}

// String returns `{asset_info}:{amount}`, e.g. "native:uusd:12345".
func (a AssetBase[T]) String() string {
	return a.Info.String() + ":" + a.Amount.String()
}

// Unchecked widens the address to its string form.
func (a AssetBase[T]) Unchecked() AssetUnchecked {
	return AssetUnchecked{Info: a.Info.Unchecked(), Amount: a.Amount}
}

// Check validates the asset info, see AssetInfoBase.Check. The amount is kept.
func (a AssetBase[T]) Check(api AddrValidator) (Asset, error) {
	info, err := a.Info.Check(api)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Info: info, Amount: a.Amount}, nil
}

// CheckWhitelist validates the asset info against the whitelist, see
// AssetInfoBase.CheckWhitelist. The amount is kept.
func (a AssetBase[T]) CheckWhitelist(api AddrValidator, whitelist []string) (Asset, error) {
	info, err := a.Info.CheckWhitelist(api, whitelist)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Info: info, Amount: a.Amount}, nil
}

// ParseAsset parses `native:{denom}:{amount}` or `cw20:{contract_addr}:{amount}`.
func ParseAsset(s string) (AssetUnchecked, error) {
	formatErr := FormatError{What: "asset", Input: s, Expected: assetFormat}
	words := strings.Split(s, ":")
	if len(words) != 3 || words[0] == "" || words[1] == "" || words[2] == "" {
		return AssetUnchecked{}, formatErr
	}
	info, err := newAssetInfoUnchecked(words[0], words[1])
	if err != nil {
		return AssetUnchecked{}, err
	}
	amount, err := types.ParseUint128(words[2])
	if err != nil {
		return AssetUnchecked{}, formatErr
	}
	return AssetUnchecked{Info: info, Amount: amount}, nil
}

// UnmarshalJSON requires both "info" and "amount".
func (a *AssetBase[T]) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Info   *AssetInfoBase[T] `json:"info"`
		Amount *types.Uint128    `json:"amount"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.Info == nil || tmp.Amount == nil {
		return fmt.Errorf("cannot unmarshal %s into asset, `info` and `amount` are required", data)
	}
	*a = AssetBase[T]{Info: *tmp.Info, Amount: *tmp.Amount}
	return nil
}
