// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

var (
	alice = account.Address{0x11, 0x22}
	bob   = account.Address{0x33, 0x44}
)

func TestCheckAddress(t *testing.T) {
	_, err := checkAddress("")
	assert.Equal(t, ErrRequiredAddress, err, "blank")

	address, err := checkAddress(alice.String())
	require.Nil(t, err, "decode")
	assert.Equal(t, alice, address, "address")

	optional, err := checkOptionalAddress("")
	assert.Nil(t, err, "blank optional")
	assert.Nil(t, optional, "blank optional value")

	_, err = checkOptionalAddress("0OIl")
	assert.NotNil(t, err, "not base58")
}

func TestCheckPlugins(t *testing.T) {
	entries, err := checkPlugins([]string{
		`{"type": "FreezeDelegate", "data": {"frozen": true}, "authority": "` + bob.String() + `"}`,
		`{"type": "ImmutableMetadata"}`,
	})
	require.Nil(t, err, "plugins")
	require.Len(t, entries, 2, "count")

	assert.Equal(t, plugin.FreezeDelegate, entries[0].Plugin.Type(), "first type")
	require.NotNil(t, entries[0].Authority, "first authority")
	assert.Equal(t, authority.ForAddress(bob), *entries[0].Authority, "first authority value")

	assert.Equal(t, plugin.ImmutableMetadata, entries[1].Plugin.Type(), "second type")
	assert.Nil(t, entries[1].Authority, "default authority")

	_, err = checkPlugins([]string{`{"type": "NoSuchPlugin"}`})
	assert.Equal(t, fault.ErrInvalidPlugin, err, "unknown plugin")
}

func TestCheckAdapter(t *testing.T) {
	entry, err := checkAdapter(`{
  "adapter": {"type": "LifecycleHook", "data": {"hookedProgram": "` + alice.String() + `", "schema": 0}},
  "checks": [{"event": 1, "check": 1}],
  "data": "hello"
}`)
	require.Nil(t, err, "adapter")
	assert.Equal(t, plugin.LifecycleHookAdapter, entry.Adapter.AdapterType(), "type")
	assert.Equal(t, alice, entry.Adapter.Key().Address, "hooked program")
	assert.Equal(t, plugin.LifecycleChecks{{Event: plugin.TransferEvent, Check: plugin.CheckCanListen}}, entry.Checks, "checks")
	assert.Equal(t, []byte("hello"), entry.Data, "data")
	assert.Nil(t, entry.Authority, "authority")

	_, err = checkAdapter("")
	assert.Equal(t, ErrRequiredAdapter, err, "blank")
}

func TestCheckAuthority(t *testing.T) {
	a, err := checkAuthority("")
	assert.Nil(t, err, "blank")
	assert.Nil(t, a, "blank value")

	a, err = checkAuthority("owner")
	require.Nil(t, err, "owner")
	assert.Equal(t, authority.OwnerAuthority, *a, "owner value")
}

func TestDescribe(t *testing.T) {
	a := &asset.Asset{
		Owner:           alice,
		UpdateAuthority: authority.HeldBy(bob),
		Name:            "Rock",
		URI:             "https://example.com/rock.json",
	}
	core, err := a.Pack()
	require.Nil(t, err, "pack")

	cell := layout.NewCell(account.Address{0xa1}, 0)
	cell.Data = core

	_, err = registry.InitializePlugin(cell, nil, layout.FreeRent{}, &plugin.AttributeList{}, authority.UpdateAuthorityRole)
	require.Nil(t, err, "add plugin")

	view, err := describe(cell)
	require.Nil(t, err, "describe")
	assert.Equal(t, "AssetV1", view.Kind, "kind")
	assert.Equal(t, a, view.Record, "record")
	require.Len(t, view.Plugins, 1, "plugins")
	assert.Equal(t, plugin.Attributes, view.Plugins[0].Record.Type, "plugin type")
	assert.Empty(t, view.Adapters, "adapters")

	burned := layout.NewCell(account.Address{0xa2}, 0)
	burned.Data = []byte{0}
	view, err = describe(burned)
	require.Nil(t, err, "describe burned")
	assert.Equal(t, "Burned", view.Kind, "burned kind")
}
