package cwasset

import (
	"encoding/json"

	"github.com/CosmWasm/cwasset/cw20"
	"github.com/CosmWasm/cwasset/types"
)

// TransferMsg moves the asset to the recipient: a bank send for native coins,
// a CW20 transfer otherwise.
//
// Neither the recipient nor the amount is checked, a zero amount produces a
// message as well.
func TransferMsg(asset Asset, to string) (types.CosmosMsg, error) {
	switch asset.Info.kind {
	case KindNative:
		return types.CosmosMsg{Bank: &types.BankMsg{Send: &types.SendMsg{
			ToAddress: to,
			Amount:    types.Array[types.Coin]{{Denom: asset.Info.denom, Amount: asset.Amount}},
		}}}, nil
	case KindCw20:
		return executeMsg(asset.Info.addr, cw20.ExecuteMsg{Transfer: &cw20.TransferMsg{
			Recipient: to,
			Amount:    asset.Amount,
		}})
	default:
		return types.CosmosMsg{}, UnsupportedError{Kind: asset.Info.kind, Method: "transfer"}
	}
}

// TransferFromMsg moves the asset from the owner to the recipient using an
// allowance. Only CW20 tokens support it.
func TransferFromMsg(asset Asset, from, to string) (types.CosmosMsg, error) {
	if asset.Info.kind != KindCw20 {
		return types.CosmosMsg{}, UnsupportedError{Kind: asset.Info.kind, Method: "transfer_from"}
	}
	return executeMsg(asset.Info.addr, cw20.ExecuteMsg{TransferFrom: &cw20.TransferFromMsg{
		Owner:     from,
		Recipient: to,
		Amount:    asset.Amount,
	}})
}

// SendMsg moves the asset to a contract and hands msg to the contract's
// receive hook. Only CW20 tokens support it. A nil msg is sent as an empty
// payload.
func SendMsg(asset Asset, contract string, msg []byte) (types.CosmosMsg, error) {
	if asset.Info.kind != KindCw20 {
		return types.CosmosMsg{}, UnsupportedError{Kind: asset.Info.kind, Method: "send"}
	}
	// the token contract decodes msg from a base64 string and rejects null
	if msg == nil {
		msg = []byte{}
	}
	return executeMsg(asset.Info.addr, cw20.ExecuteMsg{Send: &cw20.SendMsg{
		Contract: contract,
		Amount:   asset.Amount,
		Msg:      msg,
	}})
}

// executeMsg calls the token contract without attaching funds; the value
// moves inside the CW20 message.
func executeMsg(token types.Addr, msg cw20.ExecuteMsg) (types.CosmosMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return types.CosmosMsg{}, err
	}
	return types.CosmosMsg{Wasm: &types.WasmMsg{Execute: &types.ExecuteMsg{
		ContractAddr: token.String(),
		Msg:          bz,
		Funds:        types.Array[types.Coin]{},
	}}}, nil
}
