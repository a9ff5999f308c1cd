// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package plugin - feature payloads stored after a core record
//
// Plugin is a closed set of payload types, each with a one byte Type
// tag.  Every payload implements the Validator hook set; the embedded
// hook defaults return Pass so a payload only overrides the operations
// it cares about.  Check gives the static classification of a plugin
// type for an operation: only CanApprove, CanReject and CanForceApprove
// cause its hook to be called.
//
// External plugin adapters (lifecycle hook, oracle, app data) are
// registered alongside plugins but are identified by a compound key of
// adapter type and address.
package plugin
