// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - plugin header and registry of a cell
//
// once the first plugin is added a cell is laid out as:
//
//   [core record][header][plugin 1]…[plugin N][registry]
//
// the header is found immediately after the core record and holds the
// offset of the registry; the registry lists every plugin and external
// adapter with its offset.  Regions are contiguous: each one ends where
// the next begins and the last ends at the registry offset.
//
// every mutation computes the new region list, registry and header
// first, then moves bytes, writes the payload and registry, and writes
// the header last
package registry
