// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/lifecycle"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// AddPluginArgs - arguments of AddPlugin and AddCollectionPlugin
type AddPluginArgs struct {
	Address   account.Address // asset or collection
	Plugin    plugin.Plugin
	Authority *authority.Authority // nil: the manager of the type
}

// PluginArgs - arguments of the operations on an existing plugin
type PluginArgs struct {
	Address account.Address
	Type    plugin.Type
}

// UpdatePluginArgs - arguments of UpdatePlugin and
// UpdateCollectionPlugin
type UpdatePluginArgs struct {
	Address account.Address
	Plugin  plugin.Plugin // the new value
}

// ApproveArgs - arguments of the approve operations
type ApproveArgs struct {
	Address   account.Address
	Type      plugin.Type
	Authority authority.Authority
}

// AddPlugin - add a plugin to an asset
func (p *Processor) AddPlugin(req Request, args AddPluginArgs) error {
	p.log.Debugf("add plugin: asset: %s  type: %s", args.Address, args.Plugin.Type())

	if args.Plugin.Type().IsPermanent() {
		return fault.ErrCannotAddPermanentPlugin
	}
	a := PluginEntry{Plugin: args.Plugin, Authority: args.Authority}.authority()
	return p.changeAsset(req, args.Address, plugin.AddPlugin, adding(args.Plugin, a), initialise(args.Plugin, a))
}

// AddCollectionPlugin - add a plugin to a collection
func (p *Processor) AddCollectionPlugin(req Request, args AddPluginArgs) error {
	p.log.Debugf("add plugin: collection: %s  type: %s", args.Address, args.Plugin.Type())

	if args.Plugin.Type().IsPermanent() {
		return fault.ErrCannotAddPermanentPlugin
	}
	if err := collectionPlugin(args.Plugin.Type()); nil != err {
		return err
	}
	a := PluginEntry{Plugin: args.Plugin, Authority: args.Authority}.authority()
	return p.changeCollection(req, args.Address, plugin.AddPlugin, adding(args.Plugin, a), initialise(args.Plugin, a))
}

// RemovePlugin - remove a plugin from an asset
func (p *Processor) RemovePlugin(req Request, args PluginArgs) error {
	p.log.Debugf("remove plugin: asset: %s  type: %s", args.Address, args.Type)
	return p.changeAsset(req, args.Address, plugin.RemovePlugin, existing(args.Type), deletion(args.Type))
}

// RemoveCollectionPlugin - remove a plugin from a collection
func (p *Processor) RemoveCollectionPlugin(req Request, args PluginArgs) error {
	p.log.Debugf("remove plugin: collection: %s  type: %s", args.Address, args.Type)
	return p.changeCollection(req, args.Address, plugin.RemovePlugin, existing(args.Type), deletion(args.Type))
}

// UpdatePlugin - replace the value of a plugin of an asset
func (p *Processor) UpdatePlugin(req Request, args UpdatePluginArgs) error {
	p.log.Debugf("update plugin: asset: %s  type: %s", args.Address, args.Plugin.Type())
	return p.changeAsset(req, args.Address, plugin.UpdatePlugin, replacing(args.Plugin), update(args.Plugin))
}

// UpdateCollectionPlugin - replace the value of a plugin of a collection
func (p *Processor) UpdateCollectionPlugin(req Request, args UpdatePluginArgs) error {
	p.log.Debugf("update plugin: collection: %s  type: %s", args.Address, args.Plugin.Type())
	return p.changeCollection(req, args.Address, plugin.UpdatePlugin, replacing(args.Plugin), update(args.Plugin))
}

// ApprovePluginAuthority - delegate a plugin of an asset
func (p *Processor) ApprovePluginAuthority(req Request, args ApproveArgs) error {
	p.log.Debugf("approve: asset: %s  type: %s  authority: %s", args.Address, args.Type, args.Authority)
	return p.changeAsset(req, args.Address, plugin.ApprovePluginAuthority, approving(args.Type, args.Authority), approval(args.Type, args.Authority))
}

// ApproveCollectionPluginAuthority - delegate a plugin of a collection
func (p *Processor) ApproveCollectionPluginAuthority(req Request, args ApproveArgs) error {
	p.log.Debugf("approve: collection: %s  type: %s  authority: %s", args.Address, args.Type, args.Authority)
	return p.changeCollection(req, args.Address, plugin.ApprovePluginAuthority, approving(args.Type, args.Authority), approval(args.Type, args.Authority))
}

// RevokePluginAuthority - return a plugin of an asset to its manager
func (p *Processor) RevokePluginAuthority(req Request, args PluginArgs) error {
	p.log.Debugf("revoke: asset: %s  type: %s", args.Address, args.Type)
	return p.changeAsset(req, args.Address, plugin.RevokePluginAuthority, revoking(args.Type), revocation(args.Type))
}

// RevokeCollectionPluginAuthority - return a plugin of a collection to
// its manager
func (p *Processor) RevokeCollectionPluginAuthority(req Request, args PluginArgs) error {
	p.log.Debugf("revoke: collection: %s  type: %s", args.Address, args.Type)
	return p.changeCollection(req, args.Address, plugin.RevokePluginAuthority, revoking(args.Type), revocation(args.Type))
}

func adding(p plugin.Plugin, a authority.Authority) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		ctx.Target = p
		ctx.TargetAuthority = a
		return nil
	}
}

func existing(t plugin.Type) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		w, err := registry.FetchPlugin(cell, t)
		if nil != err {
			return err
		}
		ctx.Target = w.Plugin
		ctx.TargetAuthority = w.Record.Authority
		return nil
	}
}

func replacing(p plugin.Plugin) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		w, err := registry.FetchPlugin(cell, p.Type())
		if nil != err {
			return err
		}
		ctx.Target = p
		ctx.TargetAuthority = w.Record.Authority
		return nil
	}
}

func approving(t plugin.Type, a authority.Authority) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		w, err := registry.FetchPlugin(cell, t)
		if nil != err {
			return err
		}
		ctx.Target = w.Plugin
		ctx.TargetAuthority = a
		return nil
	}
}

func revoking(t plugin.Type) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		w, err := registry.FetchPlugin(cell, t)
		if nil != err {
			return err
		}
		if w.Record.Authority.Equal(t.Manager()) {
			return fault.ErrCannotRevoke
		}
		ctx.Target = w.Plugin
		ctx.TargetAuthority = w.Record.Authority
		return nil
	}
}

func initialise(p plugin.Plugin, a authority.Authority) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.InitializePlugin(cell, payer, rent, p, a)
		return err
	}
}

func deletion(t plugin.Type) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.DeletePlugin(cell, payer, rent, t)
		return err
	}
}

func update(p plugin.Plugin) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.UpdatePlugin(cell, payer, rent, p)
		return err
	}
}

func approval(t plugin.Type, a authority.Authority) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.ApproveAuthorityOnPlugin(cell, payer, rent, t, a)
		return err
	}
}

func revocation(t plugin.Type) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.RevokeAuthorityOnPlugin(cell, payer, rent, t)
		return err
	}
}
