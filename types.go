package cwasset

import (
	"github.com/CosmWasm/cwasset/types"
)

// Addr is an address that passed the host's address validation
type Addr = types.Addr

// Coin is a native coin as used by the bank module
type Coin = types.Coin

// Uint128 is the amount type of every asset
type Uint128 = types.Uint128

// GoAPI is a reference to the host's address callbacks
type GoAPI = types.GoAPI

// Querier lets us make read-only queries on other modules
type Querier = types.Querier

// CosmosMsg is the outbound message produced by the message builders
type CosmosMsg = types.CosmosMsg
