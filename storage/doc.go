// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk cell store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. address = cell address (32 bytes)
// 4. count   = successive index value as big endian uint64 (8 bytes)
// 5. balance = big endian uint64 (8 bytes)
//
// Cells:
//
//   C ++ address      - cell contents
//                       data: balance ++ cell bytes
//
// Journal:
//
//   N ++ "journal"    - next count value to use for appending to the journal
//                       data: count
//   J ++ count        - journal entries
//                       data: kind ++ payload
//
// Testing:
//
//   Z ++ key          - testing data
package storage
