// Package cw20 holds the subset of the CW20 token contract interface used to
// move and query fungible tokens: the transfer, transfer_from and send execute
// messages and the balance query.
package cw20

import (
	"github.com/CosmWasm/cwasset/types"
)

// ExecuteMsg is a tagged union, exactly one of the fields should be set.
type ExecuteMsg struct {
	Transfer     *TransferMsg     `json:"transfer,omitempty"`
	TransferFrom *TransferFromMsg `json:"transfer_from,omitempty"`
	Send         *SendMsg         `json:"send,omitempty"`
}

// TransferMsg moves tokens from the sender to the recipient.
type TransferMsg struct {
	Recipient string        `json:"recipient"`
	Amount    types.Uint128 `json:"amount"`
}

// TransferFromMsg moves tokens from owner to recipient using an allowance
// the owner granted to the sender.
type TransferFromMsg struct {
	Owner     string        `json:"owner"`
	Recipient string        `json:"recipient"`
	Amount    types.Uint128 `json:"amount"`
}

// SendMsg moves tokens to a contract and triggers its receive hook with Msg.
type SendMsg struct {
	Contract string        `json:"contract"`
	Amount   types.Uint128 `json:"amount"`
	// Msg is passed through to the receiving contract, base64 on the wire
	Msg []byte `json:"msg"`
}

// QueryMsg is a tagged union, exactly one of the fields should be set.
type QueryMsg struct {
	Balance *BalanceQuery `json:"balance,omitempty"`
}

type BalanceQuery struct {
	Address string `json:"address"`
}

// BalanceResponse is the expected response to BalanceQuery
type BalanceResponse struct {
	Balance types.Uint128 `json:"balance"`
}
