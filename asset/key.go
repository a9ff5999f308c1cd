// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetcore/fault"
)

// Key - record discriminator
type Key uint8

// record keys, values are the stored tags
const (
	Uninitialized    Key = 0
	AssetV1          Key = 1
	HashedAssetV1    Key = 2
	PluginHeaderV1   Key = 3
	PluginRegistryV1 Key = 4
	CollectionV1     Key = 5
)

// String - name of a key
func (k Key) String() string {
	switch k {
	case Uninitialized:
		return "Uninitialized"
	case AssetV1:
		return "AssetV1"
	case HashedAssetV1:
		return "HashedAssetV1"
	case PluginHeaderV1:
		return "PluginHeaderV1"
	case PluginRegistryV1:
		return "PluginRegistryV1"
	case CollectionV1:
		return "CollectionV1"
	default:
		return "*unknown*"
	}
}

// KeyAt - the key of the record starting at offset
func KeyAt(data []byte, offset uint64) (Key, error) {
	if offset >= uint64(len(data)) {
		return Uninitialized, fault.ErrTruncatedRecord
	}
	k := Key(data[offset])
	if k > CollectionV1 {
		return Uninitialized, fault.ErrUnexpectedKey
	}
	return k, nil
}
