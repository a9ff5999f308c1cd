// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/lifecycle"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// AddAdapterArgs - arguments of the add adapter operations
type AddAdapterArgs struct {
	Address account.Address
	Adapter AdapterEntry
}

// AdapterArgs - arguments of the remove adapter operations
type AdapterArgs struct {
	Address account.Address
	Key     plugin.AdapterKey
}

// WriteDataArgs - arguments of WriteExternalPluginAdapterData
type WriteDataArgs struct {
	Address account.Address // asset or collection
	Key     plugin.AdapterKey
	Data    []byte
}

// AddExternalPluginAdapter - add an adapter to an asset
func (p *Processor) AddExternalPluginAdapter(req Request, args AddAdapterArgs) error {
	p.log.Debugf("add adapter: asset: %s  type: %s", args.Address, args.Adapter.Adapter.AdapterType())
	return p.changeAsset(req, args.Address, plugin.AddExternalPluginAdapter, attaching(args.Adapter), attach(args.Adapter))
}

// AddCollectionExternalPluginAdapter - add an adapter to a collection
func (p *Processor) AddCollectionExternalPluginAdapter(req Request, args AddAdapterArgs) error {
	p.log.Debugf("add adapter: collection: %s  type: %s", args.Address, args.Adapter.Adapter.AdapterType())
	return p.changeCollection(req, args.Address, plugin.AddExternalPluginAdapter, attaching(args.Adapter), attach(args.Adapter))
}

// RemoveExternalPluginAdapter - remove an adapter from an asset
func (p *Processor) RemoveExternalPluginAdapter(req Request, args AdapterArgs) error {
	p.log.Debugf("remove adapter: asset: %s  type: %s", args.Address, args.Key.Type)
	return p.changeAsset(req, args.Address, plugin.RemoveExternalPluginAdapter, detaching(args.Key), detach(args.Key))
}

// RemoveCollectionExternalPluginAdapter - remove an adapter from a
// collection
func (p *Processor) RemoveCollectionExternalPluginAdapter(req Request, args AdapterArgs) error {
	p.log.Debugf("remove adapter: collection: %s  type: %s", args.Address, args.Key.Type)
	return p.changeCollection(req, args.Address, plugin.RemoveExternalPluginAdapter, detaching(args.Key), detach(args.Key))
}

// WriteExternalPluginAdapterData - replace the data section of an
// adapter, only its data authority may do this
func (p *Processor) WriteExternalPluginAdapterData(req Request, args WriteDataArgs) error {
	p.log.Debugf("write data: %s  type: %s  bytes: %d", args.Address, args.Key.Type, len(args.Data))

	s := p.begin(req)
	cell, ok := s.cell(args.Address)
	if !ok {
		return fault.ErrUninitialisedAccount
	}
	record, _, err := asset.Load(cell.Data)
	if nil != err {
		return err
	}

	var roles authority.Roles
	var st *assetState
	switch record.(type) {
	case *asset.Asset:
		st, err = s.loadAsset(args.Address, nil)
		if nil != err {
			return err
		}
		ctx, err := s.assetContext(st)
		if nil != err {
			return err
		}
		roles = ctx.Roles
	case *asset.Collection:
		cs, err := s.collection(args.Address)
		if nil != err {
			return err
		}
		roles = s.collectionContext(cs).Roles
	default:
		return fault.ErrIncorrectAccount
	}

	w, err := registry.FetchExternalPluginAdapter(cell, args.Key)
	if nil != err {
		return err
	}
	dataAuthority, ok := w.Adapter.DataAuthority()
	if !ok {
		return fault.ErrNoDataSection
	}
	if !roles.Contains(dataAuthority) {
		p.log.Warnf("write data: identity: %s  not: %s", s.identity, dataAuthority)
		return fault.ErrInvalidAuthority
	}

	if _, err := registry.WriteExternalPluginAdapterData(cell, s.payer, p.rent, args.Key, args.Data); nil != err {
		return err
	}
	if nil != st {
		if err := st.reload(); nil != err {
			return err
		}
		if err := s.mutated(st); nil != err {
			return err
		}
	}
	return s.commit()
}

func attaching(e AdapterEntry) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		ctx.TargetAdapter = e.Adapter
		ctx.TargetAuthority = e.authority()
		return nil
	}
}

func detaching(key plugin.AdapterKey) prepareFunc {
	return func(cell *layout.Cell, ctx *lifecycle.Context) error {
		w, err := registry.FetchExternalPluginAdapter(cell, key)
		if nil != err {
			return err
		}
		ctx.TargetAdapter = w.Adapter
		ctx.TargetAuthority = w.Record.Authority
		return nil
	}
}

func attach(e AdapterEntry) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.InitializeExternalPluginAdapter(cell, payer, rent, e.Adapter, e.authority(), e.Checks, e.Data)
		return err
	}
}

func detach(key plugin.AdapterKey) applyFunc {
	return func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error {
		_, err := registry.DeleteExternalPluginAdapter(cell, payer, rent, key)
		return err
	}
}
