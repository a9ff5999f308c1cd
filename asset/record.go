// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// Record - a core record: *Asset, *Collection or *HashedAsset
type Record interface {
	Key() Key
	Pack() ([]byte, error)
}

// Load - read the core record at the start of a buffer
//
// returns the record and the number of bytes it occupies
func Load(data []byte) (Record, uint64, error) {
	key, err := KeyAt(data, 0)
	if nil != err {
		if fault.ErrTruncatedRecord == err {
			return nil, 0, fault.ErrUninitialisedAccount
		}
		return nil, 0, err
	}

	u := wire.NewUnpacker(data[1:])
	var record Record
	switch key {
	case Uninitialized:
		return nil, 0, fault.ErrUninitialisedAccount
	case AssetV1:
		record = unpackAsset(u)
	case CollectionV1:
		record = unpackCollection(u)
	case HashedAssetV1:
		record = unpackHashedAsset(u)
	default:
		return nil, 0, fault.ErrUnexpectedKey
	}
	if nil != u.Err() {
		return nil, 0, fault.ErrDeserialization
	}
	return record, uint64(1 + u.Offset()), nil
}

// LoadAsset - read a cell that must hold an uncompressed asset
func LoadAsset(data []byte) (*Asset, uint64, error) {
	record, n, err := Load(data)
	if nil != err {
		return nil, 0, err
	}
	a, ok := record.(*Asset)
	if !ok {
		return nil, 0, fault.ErrUnexpectedKey
	}
	return a, n, nil
}

// LoadCollection - read a cell that must hold a collection
func LoadCollection(data []byte) (*Collection, uint64, error) {
	record, n, err := Load(data)
	if nil != err {
		return nil, 0, err
	}
	c, ok := record.(*Collection)
	if !ok {
		return nil, 0, fault.ErrInvalidCollection
	}
	return c, n, nil
}

// LoadHashedAsset - read a cell that must hold a compressed asset
func LoadHashedAsset(data []byte) (*HashedAsset, error) {
	record, _, err := Load(data)
	if nil != err {
		return nil, err
	}
	h, ok := record.(*HashedAsset)
	if !ok {
		return nil, fault.ErrNotCompressed
	}
	return h, nil
}
