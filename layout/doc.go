// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - in place variable length storage
//
// a storage cell is a single byte buffer with an attached balance.
// When plugins are present the buffer is laid out as:
//
//   [core record][plugin header][plugin 1]…[plugin N][plugin registry]
//
// this package only knows about byte ranges: Splice replaces one range
// by a range of a different length, moving everything up to a given
// end point and adjusting the balance of the cell so it covers the
// minimum for its new size.  The Regions list computes the new start of
// every range before any byte is moved so that a failing computation
// never leaves a half written cell.
package layout
