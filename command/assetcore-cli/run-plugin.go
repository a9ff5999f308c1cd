// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/processor"
)

func runAddPlugin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	p, err := checkPlugin(c.String("plugin"))
	if nil != err {
		return err
	}
	a, err := checkAuthority(c.String("plugin-authority"))
	if nil != err {
		return err
	}

	args := processor.AddPluginArgs{
		Address:   address,
		Plugin:    p,
		Authority: a,
	}
	if c.Bool("collection") {
		err = m.processor.AddCollectionPlugin(req, args)
	} else {
		err = m.processor.AddPlugin(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, address)
}

func runRemovePlugin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, args, err := pluginArguments(c)
	if nil != err {
		return err
	}
	if c.Bool("collection") {
		err = m.processor.RemoveCollectionPlugin(req, args)
	} else {
		err = m.processor.RemovePlugin(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, args.Address)
}

func runUpdatePlugin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, err := checkRequest(c)
	if nil != err {
		return err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	p, err := checkPlugin(c.String("plugin"))
	if nil != err {
		return err
	}

	args := processor.UpdatePluginArgs{
		Address: address,
		Plugin:  p,
	}
	if c.Bool("collection") {
		err = m.processor.UpdateCollectionPlugin(req, args)
	} else {
		err = m.processor.UpdatePlugin(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, address)
}

func runApprovePlugin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, target, err := pluginArguments(c)
	if nil != err {
		return err
	}
	a, err := checkAuthority(c.String("plugin-authority"))
	if nil != err {
		return err
	}
	if nil == a {
		return ErrRequiredAuthority
	}

	args := processor.ApproveArgs{
		Address:   target.Address,
		Type:      target.Type,
		Authority: *a,
	}
	if c.Bool("collection") {
		err = m.processor.ApproveCollectionPluginAuthority(req, args)
	} else {
		err = m.processor.ApprovePluginAuthority(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, args.Address)
}

func runRevokePlugin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	req, args, err := pluginArguments(c)
	if nil != err {
		return err
	}
	if c.Bool("collection") {
		err = m.processor.RevokeCollectionPluginAuthority(req, args)
	} else {
		err = m.processor.RevokePluginAuthority(req, args)
	}
	if nil != err {
		return err
	}
	return show(m, args.Address)
}

// request, address and plugin type common to several commands
func pluginArguments(c *cli.Context) (processor.Request, processor.PluginArgs, error) {
	req, err := checkRequest(c)
	if nil != err {
		return req, processor.PluginArgs{}, err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return req, processor.PluginArgs{}, err
	}
	t, err := checkPluginType(c.String("type"))
	if nil != err {
		return req, processor.PluginArgs{}, err
	}
	return req, processor.PluginArgs{Address: address, Type: t}, nil
}
