// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the operations on assets and collections
//
// each call reads the cells it needs, works on private copies, runs the
// lifecycle checks and then writes every touched cell and journal entry
// in a single batch; nothing is written if any step fails
package processor
