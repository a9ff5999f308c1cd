// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - append only log of state kept outside the cells
//
// entries are numbered from one in append order; compression proofs and
// lifecycle hook notifications are written here so that an external
// reader can recover what the cells no longer hold
package journal
