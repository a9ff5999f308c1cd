// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compression - replace an asset and its plugins by one hash
//
// the hash of a compressed asset is
//
//   keccak256( asset_hash || u32 count || plugin_hash... )
//
// where asset_hash is the hash of the packed asset with its counter
// present and each plugin_hash is the hash of
//
//   u64 index || authority || plugin
//
// with plugins indexed in storage order.  The full state is kept
// outside the cell as a Proof.
package compression
