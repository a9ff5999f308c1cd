// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/processor"
)

func runCreateCollection(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("collection"))
	if nil != err {
		return err
	}
	updateAuthority, err := checkOptionalAddress(c.String("update-authority"))
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

	err = m.processor.CreateCollection(req, processor.CreateCollectionArgs{
		Collection:      address,
		UpdateAuthority: updateAuthority,
		Name:            name,
		URI:             uri,
		Plugins:         plugins,
		Adapters:        adapters,
	})
	if nil != err {
		return err
	}
	return show(m, address)
}

func runUpdateCollection(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("collection"))
	if nil != err {
		return err
	}
	updateAuthority, err := checkOptionalAddress(c.String("update-authority"))
	if nil != err {
		return err
	}

	err = m.processor.UpdateCollection(req, processor.UpdateCollectionArgs{
		Collection:         address,
		NewName:            optionalString(c.String("name")),
		NewURI:             optionalString(c.String("uri")),
		NewUpdateAuthority: updateAuthority,
	})
	if nil != err {
		return err
	}
	return show(m, address)
}

func runBurnCollection(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("collection"))
	if nil != err {
		return err
	}

	err = m.processor.BurnCollection(req, address)
	if nil != err {
		return err
	}
	return show(m, address)
}
