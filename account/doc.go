// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - fixed width identities
//
// an address is the 32 byte ed25519 public key of an identity, it
// names storage cells (assets, collections, oracles) as well as the
// callers that act on them
//
// the text form is plain base58 without a checksum
package account
