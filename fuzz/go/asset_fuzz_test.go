//go:build go1.18

package gofuzz

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/CosmWasm/cwasset"
	"github.com/CosmWasm/cwasset/mock"
	"github.com/CosmWasm/cwasset/types"
)

func FuzzParseAssetInfo(f *testing.F) {
	// Add seed corpus
	f.Add("native:uusd")
	f.Add("cw20:mock_token")
	f.Add("cw20:TERRA1234ABCD")
	f.Add("native:uusd:12345")
	f.Add("cw721:galactic_punk")
	f.Add(":")
	f.Add("")

	api := mock.NewMockAPI()

	f.Fuzz(func(t *testing.T, input string) {
		info, err := cwasset.ParseAssetInfo(input)
		if err != nil {
			return
		}
		// a parsed value displays as its input
		if info.String() != input {
			t.Fatalf("display %q differs from input %q", info.String(), input)
		}

		checked, err := info.Check(api)
		if err != nil {
			return
		}
		again, err := cwasset.ParseAssetInfo(checked.String())
		if err != nil {
			t.Fatalf("cannot parse display of checked %q: %v", checked.String(), err)
		}
		rechecked, err := again.Check(api)
		if err != nil {
			t.Fatalf("checked value did not validate again: %v", err)
		}
		if !rechecked.Equal(checked) {
			t.Fatalf("round trip changed %q to %q", checked.String(), rechecked.String())
		}
		if addr, ok := checked.AsCw20(); ok && addr.String() != strings.ToLower(addr.String()) {
			t.Fatalf("checked address %q is not lowercase", addr.String())
		}
	})
}

func FuzzParseAsset(f *testing.F) {
	f.Add("native:uusd:69420")
	f.Add("cw20:mock_token:88888")
	f.Add("native:uusd:340282366920938463463374607431768211456")
	f.Add("native:uusd:-1")

	f.Fuzz(func(t *testing.T, input string) {
		// JSON replaces invalid UTF-8
		if !utf8.ValidString(input) {
			return
		}
		asset, err := cwasset.ParseAsset(input)
		if err != nil {
			return
		}
		bz, err := json.Marshal(asset)
		if err != nil {
			t.Fatalf("cannot marshal %q: %v", input, err)
		}
		var decoded cwasset.AssetUnchecked
		if err := json.Unmarshal(bz, &decoded); err != nil {
			t.Fatalf("cannot unmarshal %s: %v", bz, err)
		}
		if !decoded.Equal(asset) {
			t.Fatalf("json round trip changed %q to %q", asset.String(), decoded.String())
		}
	})
}

func FuzzUint128JSON(f *testing.F) {
	f.Add([]byte(`"0"`))
	f.Add([]byte(`"340282366920938463463374607431768211455"`))
	f.Add([]byte(`"0001"`))
	f.Add([]byte(`123`))

	f.Fuzz(func(t *testing.T, data []byte) {
		var u types.Uint128
		if err := json.Unmarshal(data, &u); err != nil {
			return
		}
		bz, err := json.Marshal(u)
		if err != nil {
			t.Fatalf("cannot marshal %s: %v", u, err)
		}
		var again types.Uint128
		if err := json.Unmarshal(bz, &again); err != nil {
			t.Fatalf("cannot unmarshal %s: %v", bz, err)
		}
		if again != u {
			t.Fatalf("json round trip changed %s to %s", u, again)
		}
	})
}
