// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/processor"
)

func runAddAdapter(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	entry, err := checkAdapter(c.String("adapter"))
	if nil != err {
		return err
	}

	args := processor.AddAdapterArgs{
		Address: address,
		Adapter: entry,
	}
	if c.Bool("collection") {
		err = m.processor.AddCollectionExternalPluginAdapter(req, args)
	} else {
		err = m.processor.AddExternalPluginAdapter(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, address)
}

func runRemoveAdapter(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	key, err := checkAdapterKey(c.String("key"))
	if nil != err {
		return err
	}

	args := processor.AdapterArgs{
		Address: address,
		Key:     key,
	}
	if c.Bool("collection") {
		err = m.processor.RemoveCollectionExternalPluginAdapter(req, args)
	} else {
		err = m.processor.RemoveExternalPluginAdapter(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, address)
}

func runWriteAdapterData(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	key, err := checkAdapterKey(c.String("key"))
	if nil != err {
		return err
	}

	err = m.processor.WriteExternalPluginAdapterData(req, processor.WriteDataArgs{
		Address: address,
		Key:     key,
		Data:    []byte(c.String("data")),
	})
	if nil != err {
		return err
	}
	return show(m, address)
}
