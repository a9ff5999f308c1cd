// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// Accounts - read access to cells referenced by adapters
type Accounts interface {
	Data(address account.Address) ([]byte, error)
}

// Context - everything known about one operation
type Context struct {
	Caller   account.Address
	Roles    authority.Roles
	NewOwner *account.Address

	// the plugin or adapter being acted on, see plugin.Context
	Target          plugin.Plugin
	TargetAuthority authority.Authority
	TargetAdapter   plugin.Adapter

	// Asset is nil for collection operations, Collection is the
	// asset's collection or the collection being operated on
	Asset      *asset.Asset
	Collection *asset.Collection

	Plugins            []registry.Wrapped
	Adapters           []registry.WrappedAdapter
	CollectionPlugins  []registry.Wrapped
	CollectionAdapters []registry.WrappedAdapter

	// needed only when an oracle is consulted
	Accounts Accounts
}

// hook - the context a plugin sees, authority is its own record's
func (ctx *Context) hook(a authority.Authority) *plugin.Context {
	return &plugin.Context{
		Caller:          ctx.Caller,
		Roles:           ctx.Roles,
		Authority:       a,
		NewOwner:        ctx.NewOwner,
		Target:          ctx.Target,
		TargetAuthority: ctx.TargetAuthority,
		TargetAdapter:   ctx.TargetAdapter,
	}
}
