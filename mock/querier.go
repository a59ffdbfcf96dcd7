package mock

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/rs/zerolog"
	"github.com/shamaton/msgpack/v2"

	"github.com/CosmWasm/cwasset/cw20"
	"github.com/CosmWasm/cwasset/types"
)

/*** Mock Querier ****/

const (
	prefixBankBalance  byte = 0x01
	prefixCw20Contract byte = 0x02
	prefixCw20Balance  byte = 0x03
)

// balanceRecord is the stored form of a balance.
type balanceRecord struct {
	Amount string `msgpack:"amount"`
}

// Querier answers bank balance queries and CW20 balance queries from an
// in-memory store. Balances that were never set are zero. A CW20 contract
// exists once any balance was set on it.
//
// Set balances before handing the querier out; setters are not synchronized
// with queries.
type Querier struct {
	db     *dbm.MemDB
	logger zerolog.Logger
	err    error
}

var _ types.Querier = (*Querier)(nil)

// NewQuerier creates an empty querier. Pass zerolog.Nop() to disable logging.
func NewQuerier(logger zerolog.Logger) *Querier {
	return &Querier{
		db:     dbm.NewMemDB(),
		logger: logger,
	}
}

// SetBalances sets the native balances of addr, one per coin.
func (q *Querier) SetBalances(addr string, coins ...types.Coin) {
	for _, coin := range coins {
		q.set(storeKey(prefixBankBalance, addr, coin.Denom), coin.Amount)
	}
}

// SetCw20Balance sets the balance of addr in the token contract.
func (q *Querier) SetCw20Balance(contract, addr string, amount types.Uint128) {
	if err := q.db.Set(storeKey(prefixCw20Contract, contract), []byte{1}); err != nil {
		panic(err)
	}
	q.set(storeKey(prefixCw20Balance, contract, addr), amount)
}

// FailWith makes every following query fail with err. Pass nil to recover.
func (q *Querier) FailWith(err error) {
	q.err = err
}

func (q *Querier) Query(request types.QueryRequest) ([]byte, error) {
	if q.err != nil {
		q.logger.Debug().Err(q.err).Msg("failing query")
		return nil, q.err
	}
	switch {
	case request.Bank != nil && request.Bank.Balance != nil:
		return q.queryBankBalance(*request.Bank.Balance)
	case request.Wasm != nil && request.Wasm.Smart != nil:
		return q.querySmart(*request.Wasm.Smart)
	default:
		bz, _ := json.Marshal(request)
		return nil, types.UnsupportedRequest{Kind: string(bz)}
	}
}

func (q *Querier) queryBankBalance(req types.BalanceQuery) ([]byte, error) {
	amount, err := q.get(storeKey(prefixBankBalance, req.Address, req.Denom))
	if err != nil {
		return nil, err
	}
	q.logger.Debug().
		Str("address", req.Address).
		Str("denom", req.Denom).
		Str("amount", amount.String()).
		Msg("bank balance query")
	return json.Marshal(types.BalanceResponse{Amount: types.Coin{Denom: req.Denom, Amount: amount}})
}

func (q *Querier) querySmart(req types.SmartQuery) ([]byte, error) {
	exists, err := q.db.Has(storeKey(prefixCw20Contract, req.ContractAddr))
	if err != nil {
		return nil, types.Unknown{}
	}
	if !exists {
		return nil, types.NoSuchContract{Addr: req.ContractAddr}
	}
	var msg cw20.QueryMsg
	if err := json.Unmarshal(req.Msg, &msg); err != nil {
		return nil, types.InvalidRequest{Err: err.Error(), Request: req.Msg}
	}
	if msg.Balance == nil {
		return nil, types.UnsupportedRequest{Kind: fmt.Sprintf("cw20 query %s", req.Msg)}
	}
	amount, err := q.get(storeKey(prefixCw20Balance, req.ContractAddr, msg.Balance.Address))
	if err != nil {
		return nil, err
	}
	q.logger.Debug().
		Str("contract", req.ContractAddr).
		Str("address", msg.Balance.Address).
		Str("amount", amount.String()).
		Msg("cw20 balance query")
	return json.Marshal(cw20.BalanceResponse{Balance: amount})
}

// set wraps the underlying DB's Set method panicing on error.
func (q *Querier) set(key []byte, amount types.Uint128) {
	bz, err := msgpack.Marshal(balanceRecord{Amount: amount.String()})
	if err != nil {
		panic(err)
	}
	if err := q.db.Set(key, bz); err != nil {
		panic(err)
	}
}

func (q *Querier) get(key []byte) (types.Uint128, error) {
	bz, err := q.db.Get(key)
	if err != nil {
		return types.Uint128{}, types.Unknown{}
	}
	if bz == nil {
		return types.Uint128{}, nil
	}
	var rec balanceRecord
	if err := msgpack.Unmarshal(bz, &rec); err != nil {
		return types.Uint128{}, types.InvalidResponse{Err: err.Error(), Response: bz}
	}
	amount, err := types.ParseUint128(rec.Amount)
	if err != nil {
		return types.Uint128{}, types.InvalidResponse{Err: err.Error(), Response: bz}
	}
	return amount, nil
}

// storeKey length-prefixes every part, so ("ab", "c") and ("a", "bc") differ.
func storeKey(prefix byte, parts ...string) []byte {
	key := []byte{prefix}
	for _, part := range parts {
		key = binary.AppendUvarint(key, uint64(len(part)))
		key = append(key, part...)
	}
	return key
}

// Dependencies bundles the capabilities a contract receives from its host.
type Dependencies struct {
	API     types.GoAPI
	Querier *Querier
}

func NewDependencies() Dependencies {
	return Dependencies{
		API:     NewMockAPI(),
		Querier: NewQuerier(zerolog.Nop()),
	}
}
