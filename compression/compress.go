// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compression

import (
	"sort"

	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/registry"
)

// NewProof - the proof for the current state of an asset cell
//
// plugins are indexed by storage offset; adapters cannot be compressed
func NewProof(cell *layout.Cell) (*Proof, error) {
	a, _, err := asset.LoadAsset(cell.Data)
	if nil != err {
		return nil, err
	}

	p := &Proof{
		Owner:           a.Owner,
		UpdateAuthority: a.UpdateAuthority,
		Name:            a.Name,
		URI:             a.URI,
		Seq:             a.SeqValue(),
		Plugins:         []HashablePluginSchema{},
	}

	plugins, err := registry.FetchPlugins(cell)
	if nil != err {
		return nil, err
	}
	adapters, err := registry.ListExternalPluginAdapters(cell)
	if nil != err {
		return nil, err
	}
	if 0 != len(adapters) {
		return nil, fault.ErrNotAvailable
	}

	sort.Slice(plugins, func(i, j int) bool {
		return plugins[i].Record.Offset < plugins[j].Record.Offset
	})
	for i, w := range plugins {
		p.Plugins = append(p.Plugins, HashablePluginSchema{
			Index:     uint64(i),
			Authority: w.Record.Authority,
			Plugin:    w.Plugin,
		})
	}
	return p, nil
}

// Compress - replace the contents of an asset cell by its hash
func Compress(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) (*Proof, error) {
	p, err := NewProof(cell)
	if nil != err {
		return nil, err
	}
	if err := Write(cell, payer, rent, p); nil != err {
		return nil, err
	}
	return p, nil
}

// Write - set a cell to the compressed form of a proof
func Write(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, p *Proof) error {
	hashed, err := p.Hashed()
	if nil != err {
		return err
	}
	data, err := hashed.Pack()
	if nil != err {
		return err
	}
	if err := layout.Resize(cell, payer, uint64(len(data)), rent); nil != err {
		return err
	}
	copy(cell.Data, data)
	return nil
}

// Rehydrate - verify a proof against a compressed cell and rebuild the
// asset and its plugins as fresh additions in proof order
func Rehydrate(cell *layout.Cell, payer *layout.Cell, rent layout.Rent, p *Proof) (*asset.Asset, error) {
	hashed, err := asset.LoadHashedAsset(cell.Data)
	if nil != err {
		return nil, err
	}
	if err := Verify(hashed, p); nil != err {
		return nil, err
	}

	a := p.Asset()
	core, err := a.Pack()
	if nil != err {
		return nil, err
	}

	// rebuilt on copies, written back only on success
	work := cell.Clone()
	workPayer := payer.Clone()
	if err := layout.Resize(work, workPayer, uint64(len(core)), rent); nil != err {
		return nil, err
	}
	copy(work.Data, core)

	for _, s := range p.Plugins {
		if _, err := registry.InitializePlugin(work, workPayer, rent, s.Plugin, s.Authority); nil != err {
			return nil, err
		}
	}
	*cell = *work
	if nil != payer && payer != cell {
		*payer = *workPayer
	}
	return a, nil
}
