package cwasset

import (
	"github.com/CosmWasm/cwasset/types"
)

// FromCoin converts a native coin, e.g. funds attached to a message, into an Asset.
func FromCoin(coin types.Coin) Asset {
	return NativeAsset[types.Addr](coin.Denom, coin.Amount)
}

// FromCoins converts every coin, keeping the order.
func FromCoins(coins []types.Coin) []Asset {
	assets := make([]Asset, 0, len(coins))
	for _, coin := range coins {
		assets = append(assets, FromCoin(coin))
	}
	return assets
}

// EqualCoin reports whether the asset is a native coin with the same denom and
// amount. CW20 assets never equal a coin.
func (a AssetBase[T]) EqualCoin(coin types.Coin) bool {
	denom, ok := a.Info.AsNative()
	return ok && denom == coin.Denom && a.Amount == coin.Amount
}
