package cwasset

import (
	"errors"
	"fmt"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosmWasm/cwasset/mock"
	"github.com/CosmWasm/cwasset/types"
)

func mockQuerier() *mock.Querier {
	q := mock.NewQuerier(zerolog.Nop())
	q.SetBalances("alice", types.NewCoin(12345, "uusd"), types.NewCoin(67890, "uluna"))
	q.SetCw20Balance("mock_token", "bob", types.NewUint128(88888))
	q.SetCw20Balance("mock_token", "charlie", types.MaxUint128())
	return q
}

func TestQueryBalance(t *testing.T) {
	q := mockQuerier()
	token := Cw20(mock.MockAddr("mock_token"))

	cases := map[string]struct {
		info    AssetInfo
		address string
		exp     types.Uint128
	}{
		"native":               {info: Native[types.Addr]("uusd"), address: "alice", exp: types.NewUint128(12345)},
		"native other denom":   {info: Native[types.Addr]("uluna"), address: "alice", exp: types.NewUint128(67890)},
		"native no balance":    {info: Native[types.Addr]("uatom"), address: "alice", exp: types.Uint128{}},
		"native other address": {info: Native[types.Addr]("uusd"), address: "bob", exp: types.Uint128{}},
		"cw20":                 {info: token, address: "bob", exp: types.NewUint128(88888)},
		"cw20 max":             {info: token, address: "charlie", exp: types.MaxUint128()},
		"cw20 no balance":      {info: token, address: "alice", exp: types.Uint128{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			balance, err := QueryBalance(q, tc.info, tc.address)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, balance)
		})
	}
}

func TestQueryBalanceUnknownContract(t *testing.T) {
	q := mockQuerier()

	_, err := QueryBalance(q, Cw20(mock.MockAddr("other_token")), "bob")
	require.Error(t, err)
	assert.EqualError(t, err, "no such contract: other_token")
	assert.ErrorIs(t, err, ErrQuery)

	var queryErr QueryError
	require.ErrorAs(t, err, &queryErr)
	sysErr := queryErr.SystemError()
	require.NotNil(t, sysErr)
	assert.Equal(t, &types.NoSuchContract{Addr: "other_token"}, sysErr.NoSuchContract)

	var noSuchContract types.NoSuchContract
	assert.ErrorAs(t, err, &noSuchContract)
}

func TestQueryBalanceQuerierFailure(t *testing.T) {
	q := mockQuerier()
	boom := errors.New("connection reset by peer")
	q.FailWith(boom)

	_, err := QueryBalance(q, Native[types.Addr]("uusd"), "alice")
	require.Error(t, err)
	// the querier's message is passed through unchanged
	assert.EqualError(t, err, "connection reset by peer")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrQuery)
	assert.Nil(t, err.(QueryError).SystemError())

	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	assert.Equal(t, Codespace, codespace)
	assert.Equal(t, uint32(7), code)
}

type rawQuerier []byte

func (q rawQuerier) Query(types.QueryRequest) ([]byte, error) {
	return q, nil
}

func TestQueryBalanceInvalidResponse(t *testing.T) {
	_, err := QueryBalance(rawQuerier(`{"amount":{"denom":"uusd","amount":12}}`), Native[types.Addr]("uusd"), "alice")
	require.ErrorIs(t, err, ErrQuery)

	var queryErr QueryError
	require.ErrorAs(t, err, &queryErr)
	sysErr := queryErr.SystemError()
	require.NotNil(t, sysErr)
	require.NotNil(t, sysErr.InvalidResponse)
	assert.Equal(t, []byte(`{"amount":{"denom":"uusd","amount":12}}`), sysErr.InvalidResponse.Response)
}

func TestCheckAndQueryBalance(t *testing.T) {
	deps := mock.NewDependencies()
	deps.Querier.SetBalances("alice", types.NewCoin(12345, "uusd"))
	deps.Querier.SetCw20Balance("mock_token", "alice", types.NewUint128(88888))

	cases := map[string]struct {
		info AssetInfoUnchecked
		exp  types.Uint128
	}{
		"native":     {info: Native[string]("uusd"), exp: types.NewUint128(12345)},
		"cw20":       {info: Cw20("mock_token"), exp: types.NewUint128(88888)},
		"cw20 upper": {info: Cw20("MOCK_TOKEN"), exp: types.NewUint128(88888)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			info, err := tc.info.Check(deps.API)
			require.NoError(t, err)
			balance, err := QueryBalance(deps.Querier, info, "alice")
			require.NoError(t, err)
			assert.Equal(t, tc.exp, balance)
		})
	}
}

func TestQueryBalanceWrappedSystemError(t *testing.T) {
	deps := mock.NewDependencies()
	deps.Querier.FailWith(fmt.Errorf("smart query: %w", types.NoSuchContract{Addr: "mock_token"}))

	_, err := QueryBalance(deps.Querier, Cw20(mock.MockAddr("mock_token")), "alice")
	var queryErr QueryError
	require.ErrorAs(t, err, &queryErr)
	sysErr := queryErr.SystemError()
	require.NotNil(t, sysErr)
	assert.Equal(t, &types.NoSuchContract{Addr: "mock_token"}, sysErr.NoSuchContract)
}

func TestQueryBalanceUnsetInfo(t *testing.T) {
	_, err := QueryBalance(mockQuerier(), AssetInfo{}, "alice")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestErrorCodes(t *testing.T) {
	cases := map[string]struct {
		err  error
		code uint32
	}{
		"format":      {err: FormatError{What: "asset", Input: "x", Expected: assetFormat}, code: 2},
		"unknown":     {err: UnknownKindError{Kind: "cw721"}, code: 3},
		"address":     {err: AddressError{Addr: "x", Err: errors.New("too short")}, code: 4},
		"whitelist":   {err: WhitelistError{Denom: "uatom", Whitelist: []string{"uusd"}}, code: 5},
		"unsupported": {err: UnsupportedError{Kind: KindNative, Method: "send"}, code: 6},
		"query":       {err: QueryError{Err: types.Unknown{}}, code: 7},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			codespace, code, _ := errorsmod.ABCIInfo(tc.err, false)
			assert.Equal(t, Codespace, codespace)
			assert.Equal(t, tc.code, code)
		})
	}
}
