package types

//------- Msgs -------------

// CosmosMsg represents a message that can be sent to the Cosmos SDK.
// Exactly one of the fields should be set.
type CosmosMsg struct {
	Bank *BankMsg `json:"bank,omitempty"`
	Wasm *WasmMsg `json:"wasm,omitempty"`
}

// BankMsg represents a message to the bank module.
type BankMsg struct {
	Send *SendMsg `json:"send,omitempty"`
}

// SendMsg represents a message to send tokens.
type SendMsg struct {
	ToAddress string      `json:"to_address"`
	Amount    Array[Coin] `json:"amount"`
}

// WasmMsg represents a message to the wasm module.
type WasmMsg struct {
	Execute *ExecuteMsg `json:"execute,omitempty"`
}

// ExecuteMsg represents a message to execute a wasm contract.
type ExecuteMsg struct {
	// ContractAddr is the sdk.AccAddress of the contract, which uniquely defines
	// the contract ID and instance ID. The sdk module should maintain a reverse lookup table.
	ContractAddr string `json:"contract_addr"`
	// Msg is assumed to be a json-encoded message, which will be passed directly
	// as `userMsg` when calling `Handle` on the above-defined contract
	Msg []byte `json:"msg"`
	// Funds is an optional amount of coins the sender attaches to the call
	Funds Array[Coin] `json:"funds"`
}
