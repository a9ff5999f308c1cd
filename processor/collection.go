// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// CreateCollectionArgs - arguments of CreateCollection
type CreateCollectionArgs struct {
	Collection      account.Address
	UpdateAuthority *account.Address // nil: the caller
	Name            string
	URI             string
	Plugins         []PluginEntry
	Adapters        []AdapterEntry
}

// CreateCollection - a new, empty collection
func (p *Processor) CreateCollection(req Request, args CreateCollectionArgs) error {
	p.log.Debugf("create collection: %s  name: %q", args.Collection, args.Name)

	s := p.begin(req)
	cell, err := s.fresh(args.Collection, fault.ErrCollectionAlreadyExists)
	if nil != err {
		return err
	}

	c := &asset.Collection{
		UpdateAuthority: s.identity,
		Name:            args.Name,
		URI:             args.URI,
	}
	if nil != args.UpdateAuthority {
		c.UpdateAuthority = *args.UpdateAuthority
	}
	core, err := c.Pack()
	if nil != err {
		return err
	}
	if err := layout.Resize(cell, s.payer, uint64(len(core)), p.rent); nil != err {
		return err
	}
	copy(cell.Data, core)

	for _, e := range args.Plugins {
		if err := collectionPlugin(e.Plugin.Type()); nil != err {
			return err
		}
		if _, err := registry.InitializePlugin(cell, s.payer, p.rent, e.Plugin, e.authority()); nil != err {
			return err
		}
	}
	for _, e := range args.Adapters {
		if _, err := registry.InitializeExternalPluginAdapter(cell, s.payer, p.rent, e.Adapter, e.authority(), e.Checks, e.Data); nil != err {
			return err
		}
	}

	cs, err := s.loadCollection(args.Collection)
	if nil != err {
		return err
	}
	if _, err := s.validateCollection(plugin.Create, s.collectionContext(cs)); nil != err {
		return err
	}
	return s.commit()
}

// UpdateCollectionArgs - arguments of UpdateCollection, nil fields are
// unchanged
type UpdateCollectionArgs struct {
	Collection         account.Address
	NewName            *string
	NewURI             *string
	NewUpdateAuthority *account.Address
}

// UpdateCollection - change the metadata of a collection
func (p *Processor) UpdateCollection(req Request, args UpdateCollectionArgs) error {
	p.log.Debugf("update collection: %s", args.Collection)

	s := p.begin(req)
	cs, err := s.collection(args.Collection)
	if nil != err {
		return err
	}
	if _, err := s.validateCollection(plugin.Update, s.collectionContext(cs)); nil != err {
		return err
	}

	if nil != args.NewName {
		cs.collection.Name = *args.NewName
	}
	if nil != args.NewURI {
		cs.collection.URI = *args.NewURI
	}
	if nil != args.NewUpdateAuthority {
		cs.collection.UpdateAuthority = *args.NewUpdateAuthority
	}
	if err := s.rewriteCollection(cs); nil != err {
		return err
	}
	return s.commit()
}

// BurnCollection - destroy a collection that has no assets left
func (p *Processor) BurnCollection(req Request, address account.Address) error {
	p.log.Debugf("burn collection: %s", address)

	s := p.begin(req)
	cs, err := s.collection(address)
	if nil != err {
		return err
	}
	if 0 != cs.collection.CurrentSize {
		return fault.ErrCannotBurnCollection
	}
	if _, err := s.validateCollection(plugin.Burn, s.collectionContext(cs)); nil != err {
		return err
	}
	if err := s.burn(cs.cell); nil != err {
		return err
	}
	return s.commit()
}

// collection - a collection that must exist
func (s *session) collection(address account.Address) (*collectionState, error) {
	cs, err := s.loadCollection(address)
	if fault.ErrUninitialisedAccount == err {
		return nil, fault.ErrMissingCollection
	}
	return cs, err
}

// owner managed plugins have no owner on a collection
func collectionPlugin(t plugin.Type) error {
	if t.IsOwnerManaged() {
		return fault.ErrInvalidPlugin
	}
	return nil
}
