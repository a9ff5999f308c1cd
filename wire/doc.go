// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - binary packing of stored records
//
// all records use the same little endian encoding:
//
//   u8, u16, u32, u64  - fixed width little endian
//   bool               - one byte 0x00 or 0x01
//   usize              - u64
//   string, bytes      - u32(length) ++ data
//   vector             - u32(count) ++ items
//   option             - 0x00 | 0x01 ++ item
//   enum               - u8(variant) ++ variant fields
//   address            - 32 raw bytes
//
// packing appends to a caller supplied slice; unpacking uses a cursor
// that records the first error and returns zero values afterwards so a
// whole record can be read before checking Err()
package wire
