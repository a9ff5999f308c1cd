// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

type pluginView struct {
	Record registry.Record `json:"record"`
	Plugin json.RawMessage `json:"plugin"`
}

type adapterView struct {
	Record  registry.ExternalRecord `json:"record"`
	Adapter json.RawMessage         `json:"adapter"`
	Data    string                  `json:"data,omitempty"`
}

type cellView struct {
	Address  account.Address `json:"address"`
	Balance  uint64          `json:"balance,string"`
	Size     uint64          `json:"size"`
	Kind     string          `json:"kind"`
	Record   asset.Record    `json:"record,omitempty"`
	Plugins  []pluginView    `json:"plugins,omitempty"`
	Adapters []adapterView   `json:"adapters,omitempty"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	cell, ok := m.database.Cell(address)
	if !ok {
		return fault.ErrUninitialisedAccount
	}

	view, err := describe(cell)
	if nil != err {
		return err
	}
	return printJson(m.w, view)
}

// decode a cell: core record then any plugins and adapters
func describe(cell *layout.Cell) (*cellView, error) {
	view := &cellView{
		Address: cell.Address,
		Balance: cell.Balance,
		Size:    cell.Size(),
	}

	if 1 == cell.Size() && asset.Uninitialized == asset.Key(cell.Data[0]) {
		view.Kind = "Burned"
		return view, nil
	}

	record, _, err := asset.Load(cell.Data)
	if fault.ErrUninitialisedAccount == err {
		view.Kind = asset.Uninitialized.String()
		return view, nil
	}
	if nil != err {
		return nil, err
	}
	view.Kind = record.Key().String()
	view.Record = record

	if asset.HashedAssetV1 == record.Key() {
		return view, nil
	}

	plugins, err := registry.FetchPlugins(cell)
	if nil != err {
		return nil, err
	}
	for _, w := range plugins {
		buffer, err := plugin.Encode(w.Plugin)
		if nil != err {
			return nil, err
		}
		view.Plugins = append(view.Plugins, pluginView{
			Record: w.Record,
			Plugin: buffer,
		})
	}

	adapters, err := registry.ListExternalPluginAdapters(cell)
	if nil != err {
		return nil, err
	}
	for _, w := range adapters {
		buffer, err := plugin.EncodeAdapter(w.Adapter)
		if nil != err {
			return nil, err
		}
		view.Adapters = append(view.Adapters, adapterView{
			Record:  w.Record,
			Adapter: buffer,
			Data:    string(w.Data),
		})
	}
	return view, nil
}
