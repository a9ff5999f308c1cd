// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/processor"
)

var (
	ErrRequiredAddress    = fault.InvalidError("address is required")
	ErrRequiredAdapter    = fault.InvalidError("adapter is required")
	ErrRequiredAmount     = fault.InvalidError("amount is required")
	ErrRequiredAuthority  = fault.InvalidError("plugin authority is required")
	ErrRequiredCaller     = fault.InvalidError("caller is required")
	ErrRequiredConfigFile = fault.InvalidError("config file is required")
	ErrRequiredName       = fault.InvalidError("name is required")
	ErrRequiredPlugin     = fault.InvalidError("plugin is required")
	ErrRequiredPluginType = fault.InvalidError("plugin type is required")
	ErrRequiredURI        = fault.InvalidError("uri is required")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// a required base58 address
func checkAddress(s string) (account.Address, error) {
	if "" == s {
		return account.Address{}, ErrRequiredAddress
	}
	return account.AddressFromBase58(s)
}

// an optional base58 address, nil if blank
func checkOptionalAddress(s string) (*account.Address, error) {
	if "" == s {
		return nil, nil
	}
	address, err := account.AddressFromBase58(s)
	if nil != err {
		return nil, err
	}
	return &address, nil
}

// caller, payer and authority from the global flags
func checkRequest(c *cli.Context) (processor.Request, error) {
	s := c.GlobalString("caller")
	if "" == s {
		return processor.Request{}, ErrRequiredCaller
	}
	caller, err := account.AddressFromBase58(s)
	if nil != err {
		return processor.Request{}, err
	}
	payer, err := checkOptionalAddress(c.GlobalString("payer"))
	if nil != err {
		return processor.Request{}, err
	}
	signer, err := checkOptionalAddress(c.GlobalString("authority"))
	if nil != err {
		return processor.Request{}, err
	}
	return processor.Request{
		Caller:    caller,
		Payer:     payer,
		Authority: signer,
	}, nil
}

// a plugin in its JSON form
func checkPlugin(s string) (plugin.Plugin, error) {
	if "" == s {
		return nil, ErrRequiredPlugin
	}
	return plugin.Decode([]byte(s))
}

// a list of plugins, each optionally carrying an authority:
// {"type": ..., "data": {...}, "authority": "Owner"}
func checkPlugins(items []string) ([]processor.PluginEntry, error) {
	entries := make([]processor.PluginEntry, 0, len(items))
	for _, s := range items {
		p, err := checkPlugin(s)
		if nil != err {
			return nil, err
		}
		extra := struct {
			Authority *authority.Authority `json:"authority"`
		}{}
		if err := json.Unmarshal([]byte(s), &extra); nil != err {
			return nil, err
		}
		entries = append(entries, processor.PluginEntry{
			Plugin:    p,
			Authority: extra.Authority,
		})
	}
	return entries, nil
}

func checkPluginType(s string) (plugin.Type, error) {
	if "" == s {
		return 0, ErrRequiredPluginType
	}
	return plugin.TypeFromString(s)
}

// an optional authority, nil if blank
func checkAuthority(s string) (*authority.Authority, error) {
	if "" == s {
		return nil, nil
	}
	a := authority.Authority{}
	if err := a.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}
	return &a, nil
}

// JSON form of an adapter argument
type adapterArgument struct {
	Adapter   json.RawMessage        `json:"adapter"`
	Authority *authority.Authority   `json:"authority"`
	Checks    plugin.LifecycleChecks `json:"checks"`
	Data      string                 `json:"data"`
}

func checkAdapter(s string) (processor.AdapterEntry, error) {
	if "" == s {
		return processor.AdapterEntry{}, ErrRequiredAdapter
	}
	argument := adapterArgument{}
	if err := json.Unmarshal([]byte(s), &argument); nil != err {
		return processor.AdapterEntry{}, err
	}
	a, err := plugin.DecodeAdapter(argument.Adapter)
	if nil != err {
		return processor.AdapterEntry{}, err
	}
	entry := processor.AdapterEntry{
		Adapter:   a,
		Authority: argument.Authority,
		Checks:    argument.Checks,
	}
	if "" != argument.Data {
		entry.Data = []byte(argument.Data)
	}
	return entry, nil
}

func checkAdapters(items []string) ([]processor.AdapterEntry, error) {
	entries := make([]processor.AdapterEntry, 0, len(items))
	for _, s := range items {
		entry, err := checkAdapter(s)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func checkAdapterKey(s string) (plugin.AdapterKey, error) {
	key := plugin.AdapterKey{}
	if "" == s {
		return key, ErrRequiredAdapter
	}
	err := json.Unmarshal([]byte(s), &key)
	return key, err
}

// optional text, nil if blank
func optionalString(s string) *string {
	if "" == s {
		return nil
	}
	return &s
}
