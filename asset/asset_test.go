// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/digest"
	"github.com/bitmark-inc/assetcore/fault"
)

func TestAssetLayout(t *testing.T) {
	a := &asset.Asset{
		Owner:           account.Address{1},
		UpdateAuthority: authority.HeldBy(account.Address{2}),
		Name:            "n",
		URI:             "u",
	}
	packed, err := a.Pack()
	assert.Nil(t, err, "pack")

	expected := []byte{1}
	expected = append(expected, 1)
	expected = append(expected, make([]byte, 31)...)
	expected = append(expected, 1, 2)
	expected = append(expected, make([]byte, 31)...)
	expected = append(expected, 1, 0, 0, 0, 'n')
	expected = append(expected, 1, 0, 0, 0, 'u')
	expected = append(expected, 0)
	assert.Equal(t, expected, packed, "packed bytes")

	// trailing plugin data must not be consumed
	record, n, err := asset.Load(append(packed, 0xff, 0xff))
	assert.Nil(t, err, "load")
	assert.Equal(t, uint64(len(packed)), n, "core length")
	assert.Equal(t, a, record, "round trip")
}

func TestAssetSeq(t *testing.T) {
	a := &asset.Asset{Name: "x"}
	assert.Equal(t, uint64(0), a.SeqValue(), "absent")

	assert.Nil(t, a.IncrementSeq(), "first")
	assert.Equal(t, uint64(1), a.SeqValue(), "first value")

	c := a.Clone()
	assert.Nil(t, a.IncrementSeq(), "second")
	assert.Equal(t, uint64(2), a.SeqValue(), "second value")
	assert.Equal(t, uint64(1), c.SeqValue(), "clone independent")

	packed, err := a.Pack()
	assert.Nil(t, err, "pack")
	loaded, _, err := asset.LoadAsset(packed)
	assert.Nil(t, err, "load")
	assert.Equal(t, uint64(2), loaded.SeqValue(), "stored value")
}

func TestAssetLimits(t *testing.T) {
	a := &asset.Asset{Name: strings.Repeat("x", asset.MaximumNameLength+1)}
	_, err := a.Pack()
	assert.Equal(t, fault.ErrNameTooLong, err, "name")

	c := &asset.Collection{URI: strings.Repeat("x", asset.MaximumURILength+1)}
	_, err = c.Pack()
	assert.Equal(t, fault.ErrURITooLong, err, "uri")

	a = &asset.Asset{Name: "bad\xc3"}
	_, err = a.Pack()
	assert.Equal(t, fault.ErrInvalidText, err, "name utf-8")

	c = &asset.Collection{URI: "https://example.com/\xff"}
	_, err = c.Pack()
	assert.Equal(t, fault.ErrInvalidText, err, "uri utf-8")
}

func TestCollection(t *testing.T) {
	c := &asset.Collection{
		UpdateAuthority: account.Address{9},
		Name:            "c",
		URI:             "https://example.com/c.json",
	}
	assert.Nil(t, c.Mint(), "mint")
	assert.Nil(t, c.Mint(), "mint")
	assert.Nil(t, c.Leave(), "leave")
	assert.Equal(t, uint32(2), c.NumMinted, "minted")
	assert.Equal(t, uint32(1), c.CurrentSize, "size")

	packed, err := c.Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, byte(asset.CollectionV1), packed[0], "key")

	loaded, n, err := asset.LoadCollection(packed)
	assert.Nil(t, err, "load")
	assert.Equal(t, uint64(len(packed)), n, "length")
	assert.Equal(t, c, loaded, "round trip")

	_, _, err = asset.LoadAsset(packed)
	assert.Equal(t, fault.ErrUnexpectedKey, err, "not an asset")
}

func TestHashedAsset(t *testing.T) {
	h := &asset.HashedAsset{Hash: digest.NewDigest([]byte("state"))}
	packed, err := h.Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, 33, len(packed), "length")

	loaded, err := asset.LoadHashedAsset(packed)
	assert.Nil(t, err, "load")
	assert.Equal(t, h, loaded, "round trip")

	_, err = asset.LoadHashedAsset([]byte{byte(asset.AssetV1)})
	assert.Equal(t, fault.ErrDeserialization, err, "truncated asset")
}

func TestLoadErrors(t *testing.T) {
	_, _, err := asset.Load(nil)
	assert.Equal(t, fault.ErrUninitialisedAccount, err, "empty")

	_, _, err = asset.Load([]byte{0, 1, 2})
	assert.Equal(t, fault.ErrUninitialisedAccount, err, "uninitialised")

	_, _, err = asset.Load([]byte{9})
	assert.Equal(t, fault.ErrUnexpectedKey, err, "bad key")

	_, _, err = asset.Load([]byte{byte(asset.PluginHeaderV1)})
	assert.Equal(t, fault.ErrUnexpectedKey, err, "header is not core")
}
