// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - 32 byte content hashes
//
// all content hashes are Keccak-256 (the original Keccak padding, not
// the FIPS-202 SHA3 padding) over the concatenation of the inputs
package digest
