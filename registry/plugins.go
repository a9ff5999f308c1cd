// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
)

// Plugins - the plugin metadata of a cell
type Plugins struct {
	CoreLength uint64   `json:"coreLength"`
	Header     Header   `json:"header"`
	Registry   Registry `json:"registry"`
}

// Load - read the header and registry of a cell
//
// ErrPluginsNotInitialised if the cell holds only its core record
func Load(cell *layout.Cell) (*Plugins, error) {
	_, coreLength, err := asset.Load(cell.Data)
	if nil != err {
		return nil, err
	}
	return load(cell.Data, coreLength)
}

func load(data []byte, coreLength uint64) (*Plugins, error) {
	size := uint64(len(data))
	if coreLength == size {
		return nil, fault.ErrPluginsNotInitialised
	}
	end, err := layout.Add(coreLength, HeaderLength)
	if nil != err {
		return nil, err
	}
	if end > size {
		return nil, fault.ErrDeserialization
	}
	header, err := unpackHeader(data[coreLength:end])
	if nil != err {
		return nil, err
	}
	if header.RegistryOffset < end || header.RegistryOffset >= size {
		return nil, fault.ErrDeserialization
	}
	registry, err := unpackRegistry(data[header.RegistryOffset:])
	if nil != err {
		return nil, err
	}

	p := &Plugins{
		CoreLength: coreLength,
		Header:     *header,
		Registry:   *registry,
	}
	if _, err := p.regions(); nil != err {
		return nil, err
	}
	return p, nil
}

// CreateMetaIdempotent - load the header and registry, creating empty
// ones if the cell holds only its core record
func CreateMetaIdempotent(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) (*Plugins, error) {
	record, coreLength, err := asset.Load(cell.Data)
	if nil != err {
		return nil, err
	}
	if asset.HashedAssetV1 == record.Key() {
		return nil, fault.ErrUnexpectedKey
	}
	if coreLength != cell.Size() {
		return load(cell.Data, coreLength)
	}

	registryOffset, err := layout.Add(coreLength, HeaderLength)
	if nil != err {
		return nil, err
	}
	p := &Plugins{
		CoreLength: coreLength,
		Header:     Header{RegistryOffset: registryOffset},
		Registry: Registry{
			Records:  []Record{},
			External: []ExternalRecord{},
		},
	}
	registryBytes := p.Registry.Pack()
	size, err := layout.Add(registryOffset, uint64(len(registryBytes)))
	if nil != err {
		return nil, err
	}
	if err := layout.Resize(cell, payer, size, rent); nil != err {
		return nil, err
	}
	copy(cell.Data[registryOffset:], registryBytes)
	copy(cell.Data[coreLength:], p.Header.Pack())
	return p, nil
}

// regions - the current region list, the first region holding the core
// record and header
func (p *Plugins) regions() (layout.Regions, error) {
	fixed, err := layout.Add(p.CoreLength, HeaderLength)
	if nil != err {
		return nil, err
	}
	items := make([]layout.Region, 0, len(p.Registry.Records)+len(p.Registry.External))
	for i, r := range p.Registry.Records {
		items = append(items, layout.Region{Start: r.Offset, Kind: layout.PluginRegion, Index: i})
	}
	for i, r := range p.Registry.External {
		items = append(items, layout.Region{Start: r.Offset, Kind: layout.ExternalRegion, Index: i})
	}
	return layout.Build(fixed, p.Header.RegistryOffset, items)
}

// place - set every record offset from a region list
//
// external data offsets keep their distance from the record offset
func (r *Registry) place(regions layout.Regions) error {
	for _, region := range regions {
		switch region.Kind {
		case layout.PluginRegion:
			if region.Index >= len(r.Records) {
				return fault.ErrDeserialization
			}
			r.Records[region.Index].Offset = region.Start

		case layout.ExternalRegion:
			if region.Index >= len(r.External) {
				return fault.ErrDeserialization
			}
			record := &r.External[region.Index]
			if nil != record.DataOffset {
				distance, err := layout.Sub(*record.DataOffset, record.Offset)
				if nil != err {
					return err
				}
				dataOffset, err := layout.Add(region.Start, distance)
				if nil != err {
					return err
				}
				record.DataOffset = &dataOffset
			}
			record.Offset = region.Start
		}
	}
	return nil
}

// realise - make the cell match a computed layout
//
// [start, start+oldLength) is replaced by payload, next already holds
// the offsets of regions.  Funding for the final size is checked before
// any byte moves, then the balance is settled once at that size.
func (p *Plugins) realise(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, start uint64, oldLength uint64, payload []byte, next *Registry, regions layout.Regions) (*Plugins, error) {
	if err := regions.Check(); nil != err {
		return nil, err
	}
	coreLength, err := layout.Sub(regions[0].Length, HeaderLength)
	if nil != err {
		return nil, err
	}
	header := Header{RegistryOffset: regions.End()}
	registryBytes := next.Pack()
	size, err := layout.Add(header.RegistryOffset, uint64(len(registryBytes)))
	if nil != err {
		return nil, err
	}
	if err := layout.CheckResize(cell, payer, size, rent); nil != err {
		return nil, err
	}

	err = layout.Splice(cell, nil, layout.FreeRent{}, start, oldLength, uint64(len(payload)), p.Header.RegistryOffset)
	if nil != err {
		return nil, err
	}
	copy(cell.Data[start:], payload)
	if err := layout.Resize(cell, payer, size, rent); nil != err {
		return nil, err
	}
	copy(cell.Data[header.RegistryOffset:], registryBytes)
	copy(cell.Data[coreLength:], header.Pack())

	return &Plugins{
		CoreLength: coreLength,
		Header:     header,
		Registry:   *next,
	}, nil
}
