// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/plugin"
)

// the asset record's own rules
func validateAssetCore(op plugin.Operation, ctx *Context) plugin.ValidationResult {
	switch op {
	case plugin.Create:
		return approveIf(nil == ctx.Collection)

	case plugin.Update, plugin.AddExternalPluginAdapter, plugin.RemoveExternalPluginAdapter:
		return approveIf(ctx.Roles.Contains(authority.UpdateAuthorityRole))

	case plugin.Transfer, plugin.Burn, plugin.Compress, plugin.Decompress:
		return approveIf(ctx.Roles.Contains(authority.OwnerAuthority))

	case plugin.AddPlugin, plugin.RemovePlugin, plugin.ApprovePluginAuthority, plugin.RevokePluginAuthority:
		return approveIf(nil != ctx.Target && ctx.Roles.Contains(ctx.Target.Type().Manager()))

	default:
		return plugin.Pass
	}
}

// what the parent collection contributes to an asset operation
func validateParent(op plugin.Operation, ctx *Context) plugin.ValidationResult {
	if nil == ctx.Collection {
		return plugin.Pass
	}
	if plugin.Create == op {
		return approveIf(ctx.Caller == ctx.Collection.UpdateAuthority)
	}
	return plugin.Pass
}

// the collection record's own rules
func validateCollectionCore(op plugin.Operation, ctx *Context) plugin.ValidationResult {
	switch op {
	case plugin.Create:
		return plugin.Approved

	case plugin.Update, plugin.Burn,
		plugin.AddPlugin, plugin.RemovePlugin,
		plugin.ApprovePluginAuthority, plugin.RevokePluginAuthority,
		plugin.AddExternalPluginAdapter, plugin.RemoveExternalPluginAdapter:
		return approveIf(ctx.Roles.Contains(authority.UpdateAuthorityRole))

	default:
		return plugin.Pass
	}
}

func approveIf(condition bool) plugin.ValidationResult {
	if condition {
		return plugin.Approved
	}
	return plugin.Pass
}
