// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

// per type classification, anything absent is CheckNone
var checkTable = map[Type]map[Operation]CheckResult{
	Royalties: {
		Create:    CanReject,
		Transfer:  CanReject,
		AddPlugin: CanReject,
	},
	FreezeDelegate: {
		Transfer:              CanReject,
		Burn:                  CanReject,
		RemovePlugin:          CanReject,
		RevokePluginAuthority: CanReject,
	},
	BurnDelegate: {
		Burn: CanApprove,
	},
	TransferDelegate: {
		Transfer: CanApprove,
	},
	UpdateDelegate: {
		Create:       CanApprove,
		Update:       CanApprove,
		AddPlugin:    CanApprove,
		RemovePlugin: CanApprove,
		UpdatePlugin: CanApprove,
	},
	PermanentFreezeDelegate: {
		Transfer:     CanReject,
		Burn:         CanReject,
		RemovePlugin: CanReject,
	},
	PermanentTransferDelegate: {
		Transfer: CanForceApprove,
	},
	PermanentBurnDelegate: {
		Burn: CanForceApprove,
	},
	AddBlocker: {
		AddPlugin:                CanReject,
		AddExternalPluginAdapter: CanReject,
	},
	ImmutableMetadata: {
		Update: CanReject,
	},
}

// Check - static classification of a plugin type for an operation
//
// every type may approve updates to itself, its own removal and the
// revocation of its own authority
func (t Type) Check(op Operation) CheckResult {
	if c, ok := checkTable[t][op]; ok {
		return c
	}
	switch op {
	case UpdatePlugin, RemovePlugin, RevokePluginAuthority:
		return CanApprove
	}
	return CheckNone
}
