// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/compression"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/processor"
	"github.com/bitmark-inc/assetcore/processor/mocks"
)

func TestAtomicity(t *testing.T) {
	seed, m := newProcessor(layout.FreeRent{}, true)
	err := seed.Create(request(owner), processor.CreateArgs{Asset: assetAddress, Name: "atomic"})
	require.Nil(t, err, "create")
	cell := storedCell(t, m, assetAddress)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	batch := mocks.NewMockBatch(ctrl)
	store.EXPECT().Cell(gomock.Not(assetAddress)).Return(nil, false).AnyTimes()
	store.EXPECT().Cell(assetAddress).Return(cell, true).AnyTimes()

	p := processor.New(store, processor.Configuration{Rent: layout.FreeRent{}, Compression: true})

	// a rejected operation never opens a batch
	err = p.Transfer(request(buyer), processor.TransferArgs{Asset: assetAddress, NewOwner: third})
	assert.Equal(t, fault.ErrNoApprovals, err, "rejected")

	// a failing journal discards the batch
	gomock.InOrder(
		store.EXPECT().Begin().Return(batch, nil),
		batch.EXPECT().PutCell(gomock.Any()),
		batch.EXPECT().Append(journal.CompressionProof, gomock.Any()).Return(uint64(0), fault.ErrNotInitialised),
		batch.EXPECT().Abort(),
	)
	_, err = p.Compress(request(owner), assetAddress)
	assert.Equal(t, fault.ErrNotInitialised, err, "journal failure")

	// the store cell is never modified in place
	a, _, err := asset.LoadAsset(cell.Data)
	require.Nil(t, err, "store copy")
	assert.Nil(t, a.Seq, "seq untouched")

	var written *layout.Cell
	gomock.InOrder(
		store.EXPECT().Begin().Return(batch, nil),
		batch.EXPECT().PutCell(gomock.Any()).Do(func(c *layout.Cell) {
			written = c
		}),
		batch.EXPECT().Append(journal.CompressionProof, gomock.Any()).Return(uint64(1), nil),
		batch.EXPECT().Commit().Return([]journal.Entry{{Sequence: 1, Kind: journal.CompressionProof}}, nil),
	)
	proof, err := p.Compress(request(owner), assetAddress)
	require.Nil(t, err, "compress")
	require.NotNil(t, written, "written")

	hashed, err := asset.LoadHashedAsset(written.Data)
	require.Nil(t, err, "hashed")
	assert.Nil(t, compression.Verify(hashed, proof), "written hash")
}
