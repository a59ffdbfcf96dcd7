package cwasset

import (
	"encoding/json"

	"github.com/CosmWasm/cwasset/cw20"
	"github.com/CosmWasm/cwasset/types"
)

// QueryBalance returns the balance of address in this asset: a bank balance
// query for native coins, a CW20 balance query to the token contract otherwise.
//
// Every querier failure comes back as a QueryError holding the querier's
// error. Nothing is retried or cached.
func QueryBalance(querier types.Querier, info AssetInfo, address string) (types.Uint128, error) {
	switch info.kind {
	case KindNative:
		var res types.BalanceResponse
		request := types.QueryRequest{Bank: &types.BankQuery{Balance: &types.BalanceQuery{
			Address: address,
			Denom:   info.denom,
		}}}
		if err := query(querier, request, &res); err != nil {
			return types.Uint128{}, err
		}
		return res.Amount.Amount, nil
	case KindCw20:
		msg, err := json.Marshal(cw20.QueryMsg{Balance: &cw20.BalanceQuery{Address: address}})
		if err != nil {
			return types.Uint128{}, QueryError{Err: types.InvalidRequest{Err: err.Error()}}
		}
		var res cw20.BalanceResponse
		request := types.QueryRequest{Wasm: &types.WasmQuery{Smart: &types.SmartQuery{
			ContractAddr: info.addr.String(),
			Msg:          msg,
		}}}
		if err := query(querier, request, &res); err != nil {
			return types.Uint128{}, err
		}
		return res.Balance, nil
	default:
		return types.Uint128{}, UnsupportedError{Kind: info.kind, Method: "balance"}
	}
}

func query(querier types.Querier, request types.QueryRequest, response any) error {
	res, err := querier.Query(request)
	if err != nil {
		return QueryError{Err: err}
	}
	if err := json.Unmarshal(res, response); err != nil {
		return QueryError{Err: types.InvalidResponse{Err: err.Error(), Response: res}}
	}
	return nil
}
