// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - core records
//
// byte 0 of every stored record is a Key.  A cell holds one of:
//
//   AssetV1        an asset (owner, update authority, name, uri, seq)
//   CollectionV1   a collection (update authority, name, uri, counters)
//   HashedAssetV1  a compressed asset, only the 32 byte state hash
//
// and Load returns the matching record type chosen by that key
package asset
