package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryRequestSerialization(t *testing.T) {
	cases := map[string]struct {
		req  QueryRequest
		json string
	}{
		"bank balance": {
			req:  QueryRequest{Bank: &BankQuery{Balance: &BalanceQuery{Address: "alice", Denom: "uusd"}}},
			json: `{"bank":{"balance":{"address":"alice","denom":"uusd"}}}`,
		},
		"wasm smart": {
			req: QueryRequest{Wasm: &WasmQuery{Smart: &SmartQuery{
				ContractAddr: "mock_token",
				Msg:          []byte(`{"balance":{"address":"bob"}}`),
			}}},
			json: `{"wasm":{"smart":{"contract_addr":"mock_token","msg":"eyJiYWxhbmNlIjp7ImFkZHJlc3MiOiJib2IifX0="}}}`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bz, err := json.Marshal(tc.req)
			require.NoError(t, err)
			require.Equal(t, tc.json, string(bz))

			var parsed QueryRequest
			err = json.Unmarshal(bz, &parsed)
			require.NoError(t, err)
			require.Equal(t, tc.req, parsed)
		})
	}
}

func TestBalanceResponseSerialization(t *testing.T) {
	document := []byte(`{"amount":{"denom":"uusd","amount":"12345"}}`)
	var res BalanceResponse
	err := json.Unmarshal(document, &res)
	require.NoError(t, err)
	require.Equal(t, NewCoin(12345, "uusd"), res.Amount)
}
