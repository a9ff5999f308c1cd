// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lifecycle - decide whether a caller may perform an operation
//
// the core record check, the checks of every plugin on the asset and
// its collection and the checks of external adapters are reduced to a
// single decision:
//
//   ForceApproved before any rejection  allow immediately
//   any Rejected                        ErrInvalidAuthority
//   no Approved                         ErrNoApprovals
//   otherwise                           allow
package lifecycle
