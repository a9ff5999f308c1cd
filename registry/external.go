// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
)

// WrappedAdapter - an external adapter with its record and data section
type WrappedAdapter struct {
	Index   int            `json:"-"`
	Record  ExternalRecord `json:"record"`
	Adapter plugin.Adapter `json:"-"`
	Data    []byte         `json:"data,omitempty"`
}

// FetchExternalPluginAdapter - the adapter with a given compound key
func FetchExternalPluginAdapter(cell *layout.Cell, key plugin.AdapterKey) (*WrappedAdapter, error) {
	meta, err := Load(cell)
	if fault.ErrPluginsNotInitialised == err {
		return nil, fault.ErrExternalPluginAdapterNotFound
	}
	if nil != err {
		return nil, err
	}
	return meta.FetchAdapter(cell, key)
}

// ListExternalPluginAdapters - every adapter in registry order
func ListExternalPluginAdapters(cell *layout.Cell) ([]WrappedAdapter, error) {
	meta, err := Load(cell)
	if fault.ErrPluginsNotInitialised == err {
		return []WrappedAdapter{}, nil
	}
	if nil != err {
		return nil, err
	}
	return meta.Adapters(cell)
}

// FetchAdapter - find an adapter by key using loaded metadata
//
// records only carry the adapter type so each candidate of that type
// is decoded and its key compared
func (p *Plugins) FetchAdapter(cell *layout.Cell, key plugin.AdapterKey) (*WrappedAdapter, error) {
	regions, err := p.regions()
	if nil != err {
		return nil, err
	}
	for j, record := range p.Registry.External {
		if record.Type != key.Type {
			continue
		}
		w, err := p.readAdapter(cell.Data, regions, j)
		if nil != err {
			return nil, err
		}
		if w.Adapter.Key().Equal(key) {
			return w, nil
		}
	}
	return nil, fault.ErrExternalPluginAdapterNotFound
}

// Adapters - read every adapter using loaded metadata
func (p *Plugins) Adapters(cell *layout.Cell) ([]WrappedAdapter, error) {
	regions, err := p.regions()
	if nil != err {
		return nil, err
	}
	result := make([]WrappedAdapter, 0, len(p.Registry.External))
	for j := range p.Registry.External {
		w, err := p.readAdapter(cell.Data, regions, j)
		if nil != err {
			return nil, err
		}
		result = append(result, *w)
	}
	return result, nil
}

// an adapter is followed by its data section, if it has one, and the
// two fill the region exactly
func (p *Plugins) readAdapter(data []byte, regions layout.Regions, j int) (*WrappedAdapter, error) {
	i, ok := regions.Find(layout.ExternalRegion, j)
	if !ok {
		return nil, fault.ErrDeserialization
	}
	r := regions[i]
	if r.End() > uint64(len(data)) {
		return nil, fault.ErrDeserialization
	}
	record := p.Registry.External[j]
	a, n, err := plugin.UnpackAdapter(data[r.Start:r.End()])
	if nil != err {
		return nil, err
	}
	if a.AdapterType() != record.Type {
		return nil, fault.ErrDeserialization
	}

	w := &WrappedAdapter{
		Index:   j,
		Record:  record,
		Adapter: a,
	}
	rest := r.Length - n
	if _, ok := a.DataAuthority(); ok {
		if nil == record.DataOffset || nil == record.DataLen ||
			*record.DataOffset != r.Start+n || *record.DataLen != rest {
			return nil, fault.ErrDeserialization
		}
		w.Data = make([]byte, rest)
		copy(w.Data, data[r.Start+n:r.End()])
	} else if 0 != rest || nil != record.DataOffset || nil != record.DataLen {
		return nil, fault.ErrDeserialization
	}
	return w, nil
}

// InitializeExternalPluginAdapter - append an adapter, with its initial
// data section, just before the registry
func InitializeExternalPluginAdapter(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, a plugin.Adapter, auth authority.Authority, checks plugin.LifecycleChecks, data []byte) (*Plugins, error) {
	if err := plugin.CheckAdapter(a, checks); nil != err {
		return nil, err
	}
	_, hasData := a.DataAuthority()
	if !hasData && 0 != len(data) {
		return nil, fault.ErrNoDataSection
	}

	meta, err := CreateMetaIdempotent(cell, payer, rent)
	if nil != err {
		return nil, err
	}
	if _, err := meta.FetchAdapter(cell, a.Key()); nil == err {
		return nil, fault.ErrExternalPluginAdapterExists
	} else if fault.ErrExternalPluginAdapterNotFound != err {
		return nil, err
	}

	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	start := meta.Header.RegistryOffset
	payload := plugin.PackAdapter(a)
	record := ExternalRecord{
		Type:            a.AdapterType(),
		Authority:       auth,
		LifecycleChecks: checks,
		Offset:          start,
	}
	if hasData {
		dataOffset, err := layout.Add(start, uint64(len(payload)))
		if nil != err {
			return nil, err
		}
		dataLen := uint64(len(data))
		record.DataOffset = &dataOffset
		record.DataLen = &dataLen
		payload = append(payload, data...)
	}

	next := meta.Registry.clone()
	regions, err = regions.Append(uint64(len(payload)), layout.ExternalRegion, len(next.External))
	if nil != err {
		return nil, err
	}
	next.External = append(next.External, record)
	if err := next.place(regions); nil != err {
		return nil, err
	}
	return meta.realise(cell, payer, rent, start, 0, payload, next, regions)
}

// DeleteExternalPluginAdapter - remove an adapter and its data section
func DeleteExternalPluginAdapter(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, key plugin.AdapterKey) (*Plugins, error) {
	meta, err := Load(cell)
	if fault.ErrPluginsNotInitialised == err {
		return nil, fault.ErrExternalPluginAdapterNotFound
	}
	if nil != err {
		return nil, err
	}
	w, err := meta.FetchAdapter(cell, key)
	if nil != err {
		return nil, err
	}

	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	i, ok := regions.Find(layout.ExternalRegion, w.Index)
	if !ok {
		return nil, fault.ErrDeserialization
	}
	removed := regions[i]
	regions, err = regions.Remove(i)
	if nil != err {
		return nil, err
	}
	regions = regions.Renumber(layout.ExternalRegion, w.Index)

	next := meta.Registry.clone()
	next.External = append(next.External[:w.Index], next.External[w.Index+1:]...)
	if err := next.place(regions); nil != err {
		return nil, err
	}
	return meta.realise(cell, payer, rent, removed.Start, removed.Length, nil, next, regions)
}

// WriteExternalPluginAdapterData - replace the data section of an adapter
func WriteExternalPluginAdapterData(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, key plugin.AdapterKey, data []byte) (*Plugins, error) {
	meta, err := Load(cell)
	if fault.ErrPluginsNotInitialised == err {
		return nil, fault.ErrExternalPluginAdapterNotFound
	}
	if nil != err {
		return nil, err
	}
	w, err := meta.FetchAdapter(cell, key)
	if nil != err {
		return nil, err
	}
	if _, ok := w.Adapter.DataAuthority(); !ok {
		return nil, fault.ErrNoDataSection
	}

	regions, err := meta.regions()
	if nil != err {
		return nil, err
	}
	i, ok := regions.Find(layout.ExternalRegion, w.Index)
	if !ok {
		return nil, fault.ErrDeserialization
	}
	old := regions[i]
	payload := append(plugin.PackAdapter(w.Adapter), data...)
	regions, err = regions.Resize(i, uint64(len(payload)))
	if nil != err {
		return nil, err
	}

	next := meta.Registry.clone()
	dataLen := uint64(len(data))
	next.External[w.Index].DataLen = &dataLen
	if err := next.place(regions); nil != err {
		return nil, err
	}
	return meta.realise(cell, payer, rent, old.Start, old.Length, payload, next, regions)
}
