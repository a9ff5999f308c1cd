// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

// Operation - a lifecycle operation subject to validation
type Operation uint8

// lifecycle operations
const (
	Create Operation = iota
	Update
	Transfer
	Burn
	Compress
	Decompress
	AddPlugin
	RemovePlugin
	UpdatePlugin
	ApprovePluginAuthority
	RevokePluginAuthority
	AddExternalPluginAdapter
	RemoveExternalPluginAdapter
)

// String - name of an operation
func (op Operation) String() string {
	switch op {
	case Create:
		return "Create"
	case Update:
		return "Update"
	case Transfer:
		return "Transfer"
	case Burn:
		return "Burn"
	case Compress:
		return "Compress"
	case Decompress:
		return "Decompress"
	case AddPlugin:
		return "AddPlugin"
	case RemovePlugin:
		return "RemovePlugin"
	case UpdatePlugin:
		return "UpdatePlugin"
	case ApprovePluginAuthority:
		return "ApprovePluginAuthority"
	case RevokePluginAuthority:
		return "RevokePluginAuthority"
	case AddExternalPluginAdapter:
		return "AddExternalPluginAdapter"
	case RemoveExternalPluginAdapter:
		return "RemoveExternalPluginAdapter"
	default:
		return "*unknown*"
	}
}

// Event - the hookable event of an operation, false if it has none
func (op Operation) Event() (Event, bool) {
	switch op {
	case Create:
		return CreateEvent, true
	case Transfer:
		return TransferEvent, true
	case Burn:
		return BurnEvent, true
	case Update:
		return UpdateEvent, true
	default:
		return 0, false
	}
}
