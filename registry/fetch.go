// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
)

// Wrapped - a plugin with its registry record
type Wrapped struct {
	Record Record        `json:"record"`
	Plugin plugin.Plugin `json:"-"`
}

// FetchPlugin - the plugin of a given type
func FetchPlugin(cell *layout.Cell, t plugin.Type) (*Wrapped, error) {
	meta, err := Load(cell)
	if nil != err {
		return nil, notFound(err)
	}
	return meta.Fetch(cell, t)
}

// FetchPlugins - every plugin in registry order, empty for a cell
// without plugins
func FetchPlugins(cell *layout.Cell) ([]Wrapped, error) {
	meta, err := Load(cell)
	if fault.ErrPluginsNotInitialised == err {
		return []Wrapped{}, nil
	}
	if nil != err {
		return nil, err
	}
	return meta.All(cell)
}

// ListPlugins - the types present in registry order
func ListPlugins(cell *layout.Cell) ([]plugin.Type, error) {
	meta, err := Load(cell)
	if fault.ErrPluginsNotInitialised == err {
		return []plugin.Type{}, nil
	}
	if nil != err {
		return nil, err
	}
	types := make([]plugin.Type, 0, len(meta.Registry.Records))
	for _, r := range meta.Registry.Records {
		types = append(types, r.Type)
	}
	return types, nil
}

// Fetch - read one plugin using already loaded metadata
func (p *Plugins) Fetch(cell *layout.Cell, t plugin.Type) (*Wrapped, error) {
	j, ok := p.Registry.find(t)
	if !ok {
		return nil, fault.ErrPluginNotFound
	}
	regions, err := p.regions()
	if nil != err {
		return nil, err
	}
	return p.read(cell.Data, regions, j)
}

// All - read every plugin using already loaded metadata
func (p *Plugins) All(cell *layout.Cell) ([]Wrapped, error) {
	regions, err := p.regions()
	if nil != err {
		return nil, err
	}
	result := make([]Wrapped, 0, len(p.Registry.Records))
	for j := range p.Registry.Records {
		w, err := p.read(cell.Data, regions, j)
		if nil != err {
			return nil, err
		}
		result = append(result, *w)
	}
	return result, nil
}

// a plugin must fill its region exactly
func (p *Plugins) read(data []byte, regions layout.Regions, j int) (*Wrapped, error) {
	i, ok := regions.Find(layout.PluginRegion, j)
	if !ok {
		return nil, fault.ErrDeserialization
	}
	r := regions[i]
	if r.End() > uint64(len(data)) {
		return nil, fault.ErrDeserialization
	}
	record := p.Registry.Records[j]
	decoded, n, err := plugin.Unpack(data[r.Start:r.End()])
	if nil != err {
		return nil, err
	}
	if n != r.Length || decoded.Type() != record.Type {
		return nil, fault.ErrDeserialization
	}
	return &Wrapped{
		Record: record,
		Plugin: decoded,
	}, nil
}
