// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - capability roles and their resolution
//
// An Authority is a claim: None, Owner, UpdateAuthority or a specific
// Address.  Plugins record the authority that manages them and
// Resolve works out which of those claims a caller currently holds.
package authority
