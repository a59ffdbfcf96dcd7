// Package mock provides in-memory stand-ins for the host capabilities a
// contract receives: address callbacks and a querier with bank and CW20
// balances. It is meant for tests.
package mock

import (
	"fmt"
	"strings"

	"github.com/CosmWasm/cwasset/types"
)

/***** Mock GoAPI ****/

const CanonicalLength = 64

const (
	CostCanonical uint64 = 440
	CostHuman     uint64 = 550
)

// MockCanonicalizeAddress lowercases the input, like bech32 where both casings
// decode to the same bytes, and pads it to CanonicalLength.
func MockCanonicalizeAddress(human string) ([]byte, uint64, error) {
	if len(human) < 3 {
		return nil, CostCanonical, fmt.Errorf("invalid input: human address too short")
	}
	if len(human) > CanonicalLength {
		return nil, CostCanonical, fmt.Errorf("invalid input: human address too long")
	}
	res := make([]byte, CanonicalLength)
	copy(res, strings.ToLower(human))
	return res, CostCanonical, nil
}

func MockHumanizeAddress(canon []byte) (string, uint64, error) {
	if len(canon) != CanonicalLength {
		return "", CostHuman, fmt.Errorf("wrong canonical length")
	}
	cut := CanonicalLength
	for i, v := range canon {
		if v == 0 {
			cut = i
			break
		}
	}
	human := string(canon[:cut])
	return human, CostHuman, nil
}

// MockValidateAddress accepts an address if it survives a canonicalize and
// humanize round trip unchanged, so uppercase input is rejected.
func MockValidateAddress(input string) (uint64, error) {
	canon, gasCost, err := MockCanonicalizeAddress(input)
	if err != nil {
		return gasCost, err
	}
	normalized, gasCostHuman, err := MockHumanizeAddress(canon)
	gasCost += gasCostHuman
	if err != nil {
		return gasCost, err
	}
	if normalized != input {
		return gasCost, fmt.Errorf("invalid input: address not normalized")
	}
	return gasCost, nil
}

func NewMockAPI() types.GoAPI {
	return types.GoAPI{
		HumanizeAddress:     MockHumanizeAddress,
		CanonicalizeAddress: MockCanonicalizeAddress,
		ValidateAddress:     MockValidateAddress,
	}
}

// MockAddr validates human with the mock API and panics if it is rejected.
func MockAddr(human string) types.Addr {
	addr, err := NewMockAPI().AddrValidate(human)
	if err != nil {
		panic(err)
	}
	return addr
}
