package types

//-------- Queries --------

// Querier lets us make read-only queries on other modules.
// The returned bytes are the JSON encoded response of the queried module or
// contract; any failure on the host side is reported as the error.
type Querier interface {
	Query(request QueryRequest) ([]byte, error)
}

// QueryRequest is a tagged union, only (exactly) one of the fields should be set
type QueryRequest struct {
	Bank *BankQuery `json:"bank,omitempty"`
	Wasm *WasmQuery `json:"wasm,omitempty"`
}

// BankQuery is a query to the bank module.
type BankQuery struct {
	Balance *BalanceQuery `json:"balance,omitempty"`
}

// BalanceQuery is the request for a single native coin balance of an address.
type BalanceQuery struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

// BalanceResponse is the expected response to BalanceQuery
type BalanceResponse struct {
	Amount Coin `json:"amount"`
}

// WasmQuery is a query to the wasm module.
type WasmQuery struct {
	Smart *SmartQuery `json:"smart,omitempty"`
}

// SmartQuery response is raw bytes ([]byte)
type SmartQuery struct {
	// Bech32 encoded sdk.AccAddress of the contract
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
}
