// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/processor"
	"github.com/bitmark-inc/assetcore/registry"
)

func TestCompressTransferDecompress(t *testing.T) {
	p, m := newProcessor(layout.FreeRent{}, true)

	err := p.Create(request(owner), processor.CreateArgs{
		Asset:   assetAddress,
		Name:    "compressed",
		Plugins: []processor.PluginEntry{{Plugin: attributes("red")}},
	})
	require.Nil(t, err, "create")

	_, err = p.Compress(request(buyer), assetAddress)
	assert.Equal(t, fault.ErrNoApprovals, err, "compress by stranger")

	proof, err := p.Compress(request(owner), assetAddress)
	require.Nil(t, err, "compress")
	assert.Equal(t, uint64(1), proof.Seq, "seq")
	expected, err := proof.Hash()
	require.Nil(t, err, "hash")
	journalled, err := lastProof(t, m).Hash()
	require.Nil(t, err, "journal hash")
	assert.Equal(t, expected, journalled, "journal")

	key, err := asset.KeyAt(storedCell(t, m, assetAddress).Data, 0)
	require.Nil(t, err, "key")
	assert.Equal(t, asset.HashedAssetV1, key, "hashed")

	err = p.AddPlugin(request(owner), processor.AddPluginArgs{Address: assetAddress, Plugin: &plugin.Immutable{}})
	assert.Equal(t, fault.ErrMissingCompressionProof, err, "no plugins while compressed")

	err = p.Transfer(request(owner), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer})
	assert.Equal(t, fault.ErrMissingCompressionProof, err, "transfer without proof")

	err = p.Transfer(request(owner), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer, Proof: proof})
	require.Nil(t, err, "transfer")
	next := lastProof(t, m)
	assert.Equal(t, buyer, next.Owner, "owner in proof")
	assert.Equal(t, uint64(2), next.Seq, "seq in proof")
	assert.Equal(t, 2, len(m.Entries()), "entries")

	err = p.Transfer(request(buyer), processor.TransferArgs{Asset: assetAddress, NewOwner: third, Proof: proof})
	assert.Equal(t, fault.ErrIncorrectAssetHash, err, "stale proof")

	err = p.Decompress(request(owner), processor.DecompressArgs{Asset: assetAddress, Proof: next})
	assert.Equal(t, fault.ErrNoApprovals, err, "decompress by old owner")

	err = p.Decompress(request(buyer), processor.DecompressArgs{Asset: assetAddress, Proof: next})
	require.Nil(t, err, "decompress")
	a := storedAsset(t, m, assetAddress)
	assert.Equal(t, buyer, a.Owner, "owner")
	assert.Equal(t, uint64(3), a.SeqValue(), "seq")
	w, err := registry.FetchPlugin(storedCell(t, m, assetAddress), plugin.Attributes)
	require.Nil(t, err, "plugin restored")
	assert.Equal(t, attributes("red"), w.Plugin, "plugin value")

	err = p.Decompress(request(buyer), processor.DecompressArgs{Asset: assetAddress, Proof: next})
	assert.Equal(t, fault.ErrNotCompressed, err, "decompress twice")
}

func TestCreateCompressed(t *testing.T) {
	p, m := newProcessor(layout.FreeRent{}, true)

	err := p.Create(request(owner), processor.CreateArgs{
		Asset:     assetAddress,
		Name:      "ledger",
		DataState: processor.LedgerState,
	})
	require.Nil(t, err, "create")
	entries := m.Entries()
	require.Equal(t, 1, len(entries), "entries")
	assert.Equal(t, journal.CompressionProof, entries[0].Kind, "kind")
	assert.Equal(t, uint64(1), entries[0].Sequence, "sequence")

	_, err = asset.LoadHashedAsset(storedCell(t, m, assetAddress).Data)
	require.Nil(t, err, "hashed")

	proof := lastProof(t, m)
	err = p.Burn(request(buyer), processor.BurnArgs{Asset: assetAddress, Proof: proof})
	assert.Equal(t, fault.ErrNoApprovals, err, "burn by stranger")

	err = p.Burn(request(owner), processor.BurnArgs{Asset: assetAddress, Proof: proof})
	require.Nil(t, err, "burn")
	assert.Equal(t, []byte{byte(asset.Uninitialized)}, storedCell(t, m, assetAddress).Data, "burned")
}

func TestCompressionDisabled(t *testing.T) {
	p, _ := newProcessor(layout.FreeRent{}, false)

	err := p.Create(request(owner), processor.CreateArgs{Asset: assetAddress, Name: "plain"})
	require.Nil(t, err, "create")

	_, err = p.Compress(request(owner), assetAddress)
	assert.Equal(t, fault.ErrNotAvailable, err, "compress")

	err = p.Decompress(request(owner), processor.DecompressArgs{Asset: assetAddress})
	assert.Equal(t, fault.ErrNotAvailable, err, "decompress")
}
