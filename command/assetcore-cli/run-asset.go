// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/compression"
	"github.com/bitmark-inc/assetcore/processor"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}
	owner, err := checkOptionalAddress(c.String("owner"))
	if nil != err {
		return err
	}
	updateAuthority, err := checkOptionalAddress(c.String("update-authority"))
	if nil != err {
		return err
	}
	collection, err := checkOptionalAddress(c.String("collection"))
	if nil != err {
		return err
	}
	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}
	uri := c.String("uri")
	if "" == uri {
		return ErrRequiredURI
	}
	plugins, err := checkPlugins(c.StringSlice("plugin"))
	if nil != err {
		return err
	}
	adapters, err := checkAdapters(c.StringSlice("adapter"))
	if nil != err {
		return err
	}

	dataState := processor.AccountState
	if c.Bool("compressed") {
		dataState = processor.LedgerState
	}

	if m.verbose {
		fmt.Fprintf(m.e, "create: %s  name: %q  plugins: %d  adapters: %d\n", address, name, len(plugins), len(adapters))
	}

	err = m.processor.Create(req, processor.CreateArgs{
		Asset:           address,
		Owner:           owner,
		UpdateAuthority: updateAuthority,
		Collection:      collection,
		Name:            name,
		URI:             uri,
		Plugins:         plugins,
		Adapters:        adapters,
		DataState:       dataState,
	})
	if nil != err {
		return err
	}
	return show(m, address)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}
	newOwner, err := checkAddress(c.String("new-owner"))
	if nil != err {
		return err
	}
	proof, err := proofIfCompressed(m, address)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transfer: %s  to: %s  compressed: %t\n", address, newOwner, nil != proof)
	}

	err = m.processor.Transfer(req, processor.TransferArgs{
		Asset:    address,
		NewOwner: newOwner,
		Proof:    proof,
	})
	if nil != err {
		return err
	}
	return show(m, address)
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}
	proof, err := proofIfCompressed(m, address)
	if nil != err {
		return err
	}

	err = m.processor.Burn(req, processor.BurnArgs{
		Asset: address,
		Proof: proof,
	})
	if nil != err {
		return err
	}
	return show(m, address)
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}

	args := processor.UpdateArgs{
		Asset:   address,
		NewName: optionalString(c.String("name")),
		NewURI:  optionalString(c.String("uri")),
	}
	if s := c.String("update-authority"); "" != s {
		holder := authority.Holder{}
		if err := holder.UnmarshalText([]byte(s)); nil != err {
			return err
		}
		args.NewUpdateAuthority = &holder
	}

	err = m.processor.Update(req, args)
	if nil != err {
		return err
	}
	return show(m, address)
}

func runCompress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}

	proof, err := m.processor.Compress(req, address)
	if nil != err {
		return err
	}
	return printJson(m.w, processor.CompressionNotice{
		Asset: address,
		Proof: proof,
	})
}

func runDecompress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}
	proof, err := latestProof(address)
	if nil != err {
		return err
	}

	err = m.processor.Decompress(req, processor.DecompressArgs{
		Asset: address,
		Proof: proof,
	})
	if nil != err {
		return err
	}
	return show(m, address)
}

// the journalled proof of a compressed asset, nil otherwise
func proofIfCompressed(m *metadata, address account.Address) (*compression.Proof, error) {
	cell, ok := m.database.Cell(address)
	if !ok {
		return nil, nil
	}
	key, err := asset.KeyAt(cell.Data, 0)
	if nil != err || asset.HashedAssetV1 != key {
		return nil, nil
	}
	return latestProof(address)
}

// print a cell after an operation
func show(m *metadata, address account.Address) error {
	cell, ok := m.database.Cell(address)
	if !ok {
		return printJson(m.w, cellView{Address: address, Kind: asset.Uninitialized.String()})
	}
	view, err := describe(cell)
	if nil != err {
		return err
	}
	return printJson(m.w, view)
}
