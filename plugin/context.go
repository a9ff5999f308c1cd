// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/authority"
)

// Context - what a validation hook is told about the operation
type Context struct {
	Caller account.Address // identity performing the operation
	Roles  authority.Roles // roles the caller holds

	// the record of the plugin being consulted
	Authority authority.Authority

	// Transfer only
	NewOwner *account.Address

	// AddPlugin, RemovePlugin, UpdatePlugin, Approve/Revoke: the plugin
	// being acted on (for UpdatePlugin its new value) and its record
	// authority (for ApprovePluginAuthority the authority being granted)
	Target          Plugin
	TargetAuthority authority.Authority

	// AddExternalPluginAdapter, RemoveExternalPluginAdapter
	TargetAdapter Adapter
}

// targets - true if the operation acts on a plugin of type t
func (ctx *Context) targets(t Type) bool {
	return nil != ctx.Target && t == ctx.Target.Type()
}

// heldByCaller - true if the consulted plugin's authority is held
func (ctx *Context) heldByCaller() bool {
	return ctx.Roles.Contains(ctx.Authority)
}
