// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
)

// InitializePlugin - append a plugin just before the registry
func InitializePlugin(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, p plugin.Plugin, a authority.Authority) (*Plugins, error) {
	meta, err := CreateMetaIdempotent(cell, payer, rent)
	if nil != err {
		return nil, err
	}
	if _, ok := meta.Registry.find(p.Type()); ok {
		return nil, fault.ErrPluginAlreadyExists
	}

	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	payload := plugin.Pack(p)
	next := meta.Registry.clone()
	regions, err = regions.Append(uint64(len(payload)), layout.PluginRegion, len(next.Records))
	if nil != err {
		return nil, err
	}
	next.Records = append(next.Records, Record{
		Type:      p.Type(),
		Authority: a,
	})
	if err := next.place(regions); nil != err {
		return nil, err
	}
	start := meta.Header.RegistryOffset
	return meta.realise(cell, payer, rent, start, 0, payload, next, regions)
}

// DeletePlugin - remove a plugin and close the gap
func DeletePlugin(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, t plugin.Type) (*Plugins, error) {
	meta, err := Load(cell)
	if nil != err {
		return nil, notFound(err)
	}
	j, ok := meta.Registry.find(t)
	if !ok {
		return nil, fault.ErrPluginNotFound
	}

	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	i, ok := regions.Find(layout.PluginRegion, j)
	if !ok {
		return nil, fault.ErrDeserialization
	}
	removed := regions[i]
	regions, err = regions.Remove(i)
	if nil != err {
		return nil, err
	}
	regions = regions.Renumber(layout.PluginRegion, j)

	next := meta.Registry.clone()
	next.Records = append(next.Records[:j], next.Records[j+1:]...)
	if err := next.place(regions); nil != err {
		return nil, err
	}
	return meta.realise(cell, payer, rent, removed.Start, removed.Length, nil, next, regions)
}

// UpdatePlugin - replace the payload of an existing plugin, resizing it
// in place
func UpdatePlugin(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, p plugin.Plugin) (*Plugins, error) {
	meta, err := Load(cell)
	if nil != err {
		return nil, notFound(err)
	}
	j, ok := meta.Registry.find(p.Type())
	if !ok {
		return nil, fault.ErrPluginNotFound
	}

	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	i, ok := regions.Find(layout.PluginRegion, j)
	if !ok {
		return nil, fault.ErrDeserialization
	}
	old := regions[i]
	payload := plugin.Pack(p)
	regions, err = regions.Resize(i, uint64(len(payload)))
	if nil != err {
		return nil, err
	}

	next := meta.Registry.clone()
	if err := next.place(regions); nil != err {
		return nil, err
	}
	return meta.realise(cell, payer, rent, old.Start, old.Length, payload, next, regions)
}

// ApproveAuthorityOnPlugin - delegate a plugin to another authority
func ApproveAuthorityOnPlugin(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, t plugin.Type, a authority.Authority) (*Plugins, error) {
	return setAuthority(cell, payer, rent, t, a)
}

// RevokeAuthorityOnPlugin - return a plugin to its manager
func RevokeAuthorityOnPlugin(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, t plugin.Type) (*Plugins, error) {
	return setAuthority(cell, payer, rent, t, t.Manager())
}

// only the registry changes size
func setAuthority(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, t plugin.Type, a authority.Authority) (*Plugins, error) {
	meta, err := Load(cell)
	if nil != err {
		return nil, notFound(err)
	}
	j, ok := meta.Registry.find(t)
	if !ok {
		return nil, fault.ErrPluginNotFound
	}
	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	next := meta.Registry.clone()
	next.Records[j].Authority = a
	start := meta.Header.RegistryOffset
	return meta.realise(cell, payer, rent, start, 0, nil, next, regions)
}

// ResizeCore - replace the core record, moving the header and every
// plugin by the change in its length
func ResizeCore(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, core []byte) error {
	_, coreLength, err := asset.Load(cell.Data)
	if nil != err {
		return err
	}
	newLength := uint64(len(core))

	if coreLength == cell.Size() {
		if err := layout.Resize(cell, payer, newLength, rent); nil != err {
			return err
		}
		copy(cell.Data, core)
		return nil
	}

	meta, err := load(cell.Data, coreLength)
	if nil != err {
		return err
	}
	regions, err := meta.regions()
	if nil != err {
		return err
	}
	fixed, err := layout.Add(newLength, HeaderLength)
	if nil != err {
		return err
	}
	regions, err = regions.Resize(0, fixed)
	if nil != err {
		return err
	}
	next := meta.Registry.clone()
	if err := next.place(regions); nil != err {
		return err
	}
	_, err = meta.realise(cell, payer, rent, 0, coreLength, core, next, regions)
	return err
}

// a cell without plugins has no plugin to find
func notFound(err error) error {
	if fault.ErrPluginsNotInitialised == err {
		return fault.ErrPluginNotFound
	}
	return err
}
