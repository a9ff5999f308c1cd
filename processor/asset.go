// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/compression"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// DataState - where a new asset keeps its state
type DataState uint8

// data states
const (
	AccountState DataState = 0 // in its cell
	LedgerState  DataState = 1 // compressed, proof in the journal
)

// PluginEntry - a plugin with the authority that will manage it
type PluginEntry struct {
	Plugin    plugin.Plugin
	Authority *authority.Authority // nil: the manager of the type
}

func (e PluginEntry) authority() authority.Authority {
	if nil != e.Authority {
		return *e.Authority
	}
	return e.Plugin.Type().Manager()
}

// AdapterEntry - an external plugin adapter with its record fields
type AdapterEntry struct {
	Adapter   plugin.Adapter
	Authority *authority.Authority // nil: update authority
	Checks    plugin.LifecycleChecks
	Data      []byte
}

func (e AdapterEntry) authority() authority.Authority {
	if nil != e.Authority {
		return *e.Authority
	}
	return authority.UpdateAuthorityRole
}

// CreateArgs - arguments of Create
type CreateArgs struct {
	Asset           account.Address
	Owner           *account.Address // nil: the caller
	UpdateAuthority *account.Address // nil: the caller, unused in a collection
	Collection      *account.Address
	Name            string
	URI             string
	Plugins         []PluginEntry
	Adapters        []AdapterEntry
	DataState       DataState
}

// Create - a new asset, optionally in a collection
//
// permanent plugins can only be given here
func (p *Processor) Create(req Request, args CreateArgs) error {
	p.log.Debugf("create: asset: %s  name: %q", args.Asset, args.Name)

	if LedgerState == args.DataState && !p.compression {
		return fault.ErrNotAvailable
	}

	s := p.begin(req)
	cell, err := s.fresh(args.Asset, fault.ErrAssetAlreadyExists)
	if nil != err {
		return err
	}

	a := &asset.Asset{
		Owner:           s.identity,
		UpdateAuthority: authority.HeldBy(s.identity),
		Name:            args.Name,
		URI:             args.URI,
	}
	if nil != args.Owner {
		a.Owner = *args.Owner
	}
	if nil != args.UpdateAuthority {
		a.UpdateAuthority = authority.HeldBy(*args.UpdateAuthority)
	}

	st := &assetState{
		address: args.Asset,
		cell:    cell,
	}
	if nil != args.Collection {
		c, err := s.collection(*args.Collection)
		if nil != err {
			return err
		}
		a.UpdateAuthority = authority.InCollection(*args.Collection)
		st.collection = c
	}

	core, err := a.Pack()
	if nil != err {
		return err
	}
	if err := layout.Resize(cell, s.payer, uint64(len(core)), p.rent); nil != err {
		return err
	}
	copy(cell.Data, core)

	for _, e := range args.Plugins {
		if _, err := registry.InitializePlugin(cell, s.payer, p.rent, e.Plugin, e.authority()); nil != err {
			return err
		}
	}
	for _, e := range args.Adapters {
		if _, err := registry.InitializeExternalPluginAdapter(cell, s.payer, p.rent, e.Adapter, e.authority(), e.Checks, e.Data); nil != err {
			return err
		}
	}
	if err := st.reload(); nil != err {
		return err
	}

	ctx, err := s.assetContext(st)
	if nil != err {
		return err
	}
	outcome, err := s.validateAsset(plugin.Create, ctx)
	if nil != err {
		return err
	}

	if nil != st.collection {
		if err := st.collection.collection.Mint(); nil != err {
			return err
		}
		if err := s.rewriteCollection(st.collection); nil != err {
			return err
		}
	}

	if LedgerState == args.DataState {
		proof, err := compression.NewProof(cell)
		if nil != err {
			return err
		}
		if err := s.store(cell, args.Asset, proof); nil != err {
			return err
		}
	}

	if err := s.notify(plugin.Create, args.Asset, outcome); nil != err {
		return err
	}
	return s.commit()
}

// TransferArgs - arguments of Transfer
type TransferArgs struct {
	Asset    account.Address
	NewOwner account.Address
	Proof    *compression.Proof // only for a compressed asset
}

// Transfer - give an asset to a new owner
//
// owner managed plugins delegated to an address return to the owner
func (p *Processor) Transfer(req Request, args TransferArgs) error {
	p.log.Debugf("transfer: asset: %s  new owner: %s", args.Asset, args.NewOwner)

	if args.NewOwner.IsZero() {
		return fault.ErrMissingNewOwner
	}

	s := p.begin(req)
	st, err := s.loadAsset(args.Asset, args.Proof)
	if nil != err {
		return err
	}
	ctx, err := s.assetContext(st)
	if nil != err {
		return err
	}
	ctx.NewOwner = &args.NewOwner

	outcome, err := s.validateAsset(plugin.Transfer, ctx)
	if nil != err {
		return err
	}

	payer, rent := s.funding(st)
	for _, w := range st.plugins {
		if w.Record.Type.IsOwnerManaged() && authority.Address == w.Record.Authority.Kind {
			if _, err := registry.RevokeAuthorityOnPlugin(st.cell, payer, rent, w.Record.Type); nil != err {
				return err
			}
		}
	}

	st.asset.Owner = args.NewOwner
	if err := s.mutated(st); nil != err {
		return err
	}
	if err := s.notify(plugin.Transfer, args.Asset, outcome); nil != err {
		return err
	}
	return s.commit()
}

// BurnArgs - arguments of Burn
type BurnArgs struct {
	Asset account.Address
	Proof *compression.Proof // only for a compressed asset
}

// Burn - destroy an asset, its cell keeps only the uninitialised key
func (p *Processor) Burn(req Request, args BurnArgs) error {
	p.log.Debugf("burn: asset: %s", args.Asset)

	s := p.begin(req)
	st, err := s.loadAsset(args.Asset, args.Proof)
	if nil != err {
		return err
	}
	ctx, err := s.assetContext(st)
	if nil != err {
		return err
	}
	outcome, err := s.validateAsset(plugin.Burn, ctx)
	if nil != err {
		return err
	}

	if nil != st.collection {
		if err := st.collection.collection.Leave(); nil != err {
			return err
		}
		if err := s.rewriteCollection(st.collection); nil != err {
			return err
		}
	}

	stored := st.cell
	if nil != st.hashed {
		stored = st.hashed
	}
	if err := s.burn(stored); nil != err {
		return err
	}
	if err := s.notify(plugin.Burn, args.Asset, outcome); nil != err {
		return err
	}
	return s.commit()
}

// UpdateArgs - arguments of Update, nil fields are unchanged
type UpdateArgs struct {
	Asset              account.Address
	NewName            *string
	NewURI             *string
	NewUpdateAuthority *authority.Holder // an address or none, leaves any collection
}

// Update - change the metadata of an asset
func (p *Processor) Update(req Request, args UpdateArgs) error {
	p.log.Debugf("update: asset: %s", args.Asset)

	if nil != args.NewUpdateAuthority && authority.HolderCollection == args.NewUpdateAuthority.Kind {
		return fault.ErrInvalidCollection
	}

	s := p.begin(req)
	st, err := s.loadAsset(args.Asset, nil)
	if nil != err {
		return err
	}
	ctx, err := s.assetContext(st)
	if nil != err {
		return err
	}
	outcome, err := s.validateAsset(plugin.Update, ctx)
	if nil != err {
		return err
	}

	if nil != args.NewName {
		st.asset.Name = *args.NewName
	}
	if nil != args.NewURI {
		st.asset.URI = *args.NewURI
	}
	if nil != args.NewUpdateAuthority {
		if nil != st.collection {
			if err := st.collection.collection.Leave(); nil != err {
				return err
			}
			if err := s.rewriteCollection(st.collection); nil != err {
				return err
			}
		}
		st.asset.UpdateAuthority = *args.NewUpdateAuthority
	}

	if err := s.mutated(st); nil != err {
		return err
	}
	if err := s.notify(plugin.Update, args.Asset, outcome); nil != err {
		return err
	}
	return s.commit()
}

// Compress - replace an asset by the hash of its proof
//
// returns the proof needed by later operations
func (p *Processor) Compress(req Request, address account.Address) (*compression.Proof, error) {
	p.log.Debugf("compress: asset: %s", address)

	if !p.compression {
		return nil, fault.ErrNotAvailable
	}

	s := p.begin(req)
	st, err := s.loadAsset(address, nil)
	if nil != err {
		return nil, err
	}
	ctx, err := s.assetContext(st)
	if nil != err {
		return nil, err
	}
	if _, err := s.validateAsset(plugin.Compress, ctx); nil != err {
		return nil, err
	}

	if err := s.mutated(st); nil != err {
		return nil, err
	}
	proof, err := compression.NewProof(st.cell)
	if nil != err {
		return nil, err
	}
	if err := s.store(st.cell, address, proof); nil != err {
		return nil, err
	}
	if err := s.commit(); nil != err {
		return nil, err
	}
	return proof, nil
}

// DecompressArgs - arguments of Decompress
type DecompressArgs struct {
	Asset account.Address
	Proof *compression.Proof
}

// Decompress - rebuild an asset and its plugins from a proof
func (p *Processor) Decompress(req Request, args DecompressArgs) error {
	p.log.Debugf("decompress: asset: %s", args.Asset)

	if !p.compression {
		return fault.ErrNotAvailable
	}

	s := p.begin(req)
	cell, ok := s.cell(args.Asset)
	if !ok {
		return fault.ErrUninitialisedAccount
	}
	if _, err := asset.LoadHashedAsset(cell.Data); nil != err {
		return err
	}

	st, err := s.loadAsset(args.Asset, args.Proof)
	if nil != err {
		return err
	}
	ctx, err := s.assetContext(st)
	if nil != err {
		return err
	}
	if _, err := s.validateAsset(plugin.Decompress, ctx); nil != err {
		return err
	}

	if _, err := compression.Rehydrate(cell, s.payer, p.rent, args.Proof); nil != err {
		return err
	}
	st.cell = cell
	st.hashed = nil
	if err := st.reload(); nil != err {
		return err
	}
	if err := s.mutated(st); nil != err {
		return err
	}
	return s.commit()
}
