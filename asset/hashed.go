// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetcore/digest"
	"github.com/bitmark-inc/assetcore/wire"
)

// HashedAsset - a compressed asset
type HashedAsset struct {
	Hash digest.Digest `json:"hash"`
}

// Key - the record discriminator
func (h *HashedAsset) Key() Key {
	return HashedAssetV1
}

// Pack - stored form of a compressed asset
func (h *HashedAsset) Pack() ([]byte, error) {
	buffer := wire.AppendUint8(nil, uint8(HashedAssetV1))
	return append(buffer, h.Hash[:]...), nil
}

func unpackHashedAsset(u *wire.Unpacker) *HashedAsset {
	h := &HashedAsset{}
	u.ReadFixed(h.Hash[:])
	return h
}
