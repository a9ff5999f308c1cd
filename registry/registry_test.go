// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"math/rand"
	"strings"
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
	owner    = account.Address{0x01}
	delegate = account.Address{0x02}
)

var free = layout.FreeRent{}

func newAssetCell(t *testing.T, name string) (*layout.Cell, uint64) {
	a := &asset.Asset{
		Owner:           owner,
		UpdateAuthority: authority.HeldBy(owner),
		Name:            name,
		URI:             "https://example.com/" + name,
	}
	core, err := a.Pack()
	require.Nil(t, err, "pack asset")
	cell := layout.NewCell(account.Address{0xaa}, 0)
	cell.Data = core
	return cell, uint64(len(core))
}

// registry offset is the core, the header and every payload; the
// header follows the core record so it counts as part of the fixed
// region before the first plugin
func checkInvariant(t *testing.T, cell *layout.Cell) *registry.Plugins {
	meta, err := registry.Load(cell)
	require.Nil(t, err, "load")

	plugins, err := registry.FetchPlugins(cell)
	require.Nil(t, err, "fetch plugins")
	adapters, err := registry.ListExternalPluginAdapters(cell)
	require.Nil(t, err, "list adapters")

	total := meta.CoreLength + registry.HeaderLength
	for _, w := range plugins {
		total += uint64(len(plugin.Pack(w.Plugin)))
	}
	for _, w := range adapters {
		total += uint64(len(plugin.PackAdapter(w.Adapter)) + len(w.Data))
	}
	assert.Equal(t, total, meta.Header.RegistryOffset, "registry offset")
	assert.Equal(t, cell.Size(), meta.Header.RegistryOffset+uint64(len(meta.Registry.Pack())), "cell size")
	return meta
}

func TestCreateMetaIdempotent(t *testing.T) {
	cell, coreLength := newAssetCell(t, "idem")

	first, err := registry.CreateMetaIdempotent(cell, nil, free)
	require.Nil(t, err, "first")
	snapshot := append([]byte{}, cell.Data...)

	second, err := registry.CreateMetaIdempotent(cell, nil, free)
	require.Nil(t, err, "second")
	assert.Equal(t, snapshot, cell.Data, "bytes unchanged")
	assert.Equal(t, first, second, "same metadata")

	assert.Equal(t, coreLength+registry.HeaderLength, first.Header.RegistryOffset, "empty registry offset")
	assert.Equal(t, byte(asset.PluginHeaderV1), cell.Data[coreLength], "header key")
	assert.Equal(t, []byte{byte(asset.PluginRegistryV1), 0, 0, 0, 0, 0, 0, 0, 0}, cell.Data[first.Header.RegistryOffset:], "empty registry")
}

func TestLoadWithoutPlugins(t *testing.T) {
	cell, _ := newAssetCell(t, "bare")
	_, err := registry.Load(cell)
	assert.Equal(t, fault.ErrPluginsNotInitialised, err, "no header")

	_, err = registry.FetchPlugin(cell, plugin.FreezeDelegate)
	assert.Equal(t, fault.ErrPluginNotFound, err, "fetch")

	all, err := registry.FetchPlugins(cell)
	assert.Nil(t, err, "fetch all")
	assert.Equal(t, 0, len(all), "none")

	_, err = registry.DeletePlugin(cell, nil, free, plugin.FreezeDelegate)
	assert.Equal(t, fault.ErrPluginNotFound, err, "delete")
}

func TestAddUpdateRemove(t *testing.T) {
	cell, coreLength := newAssetCell(t, "plugins")

	_, err := registry.InitializePlugin(cell, nil, free, &plugin.Freeze{Frozen: false}, authority.OwnerAuthority)
	require.Nil(t, err, "add freeze")
	_, err = registry.InitializePlugin(cell, nil, free, &plugin.AttributeList{}, authority.UpdateAuthorityRole)
	require.Nil(t, err, "add attributes")
	_, err = registry.InitializePlugin(cell, nil, free, &plugin.Blocker{}, authority.UpdateAuthorityRole)
	require.Nil(t, err, "add blocker")

	_, err = registry.InitializePlugin(cell, nil, free, &plugin.Freeze{}, authority.OwnerAuthority)
	assert.Equal(t, fault.ErrPluginAlreadyExists, err, "duplicate")

	meta := checkInvariant(t, cell)
	assert.Equal(t, coreLength+registry.HeaderLength, meta.Registry.Records[0].Offset, "first plugin after header")
	assert.Equal(t, meta.Registry.Records[0].Offset+2, meta.Registry.Records[1].Offset, "freeze is two bytes")

	types, err := registry.ListPlugins(cell)
	assert.Nil(t, err, "list")
	assert.Equal(t, []plugin.Type{plugin.FreezeDelegate, plugin.Attributes, plugin.AddBlocker}, types, "types")

	// grow the middle plugin
	attributes := &plugin.AttributeList{List: []plugin.Attribute{{Key: "k", Value: strings.Repeat("v", 40)}}}
	_, err = registry.UpdatePlugin(cell, nil, free, attributes)
	require.Nil(t, err, "grow")
	checkInvariant(t, cell)

	w, err := registry.FetchPlugin(cell, plugin.Attributes)
	require.Nil(t, err, "fetch attributes")
	assert.Equal(t, attributes, w.Plugin, "updated value")

	w, err = registry.FetchPlugin(cell, plugin.AddBlocker)
	require.Nil(t, err, "blocker moved")
	assert.Equal(t, plugin.AddBlocker, w.Plugin.Type(), "blocker type")

	// then shrink it
	_, err = registry.UpdatePlugin(cell, nil, free, &plugin.AttributeList{})
	require.Nil(t, err, "shrink")
	checkInvariant(t, cell)

	_, err = registry.DeletePlugin(cell, nil, free, plugin.FreezeDelegate)
	require.Nil(t, err, "remove first")
	meta = checkInvariant(t, cell)
	assert.Equal(t, 2, len(meta.Registry.Records), "two left")
	assert.Equal(t, coreLength+registry.HeaderLength, meta.Registry.Records[0].Offset, "attributes moved down")

	_, err = registry.FetchPlugin(cell, plugin.FreezeDelegate)
	assert.Equal(t, fault.ErrPluginNotFound, err, "removed")

	_, err = registry.UpdatePlugin(cell, nil, free, &plugin.Freeze{})
	assert.Equal(t, fault.ErrPluginNotFound, err, "update missing")
}

func TestAuthorityChanges(t *testing.T) {
	cell, _ := newAssetCell(t, "authority")
	_, err := registry.InitializePlugin(cell, nil, free, &plugin.TransferDelegation{}, authority.OwnerAuthority)
	require.Nil(t, err, "add")
	before := cell.Size()

	_, err = registry.ApproveAuthorityOnPlugin(cell, nil, free, plugin.TransferDelegate, authority.ForAddress(delegate))
	require.Nil(t, err, "approve")
	assert.Equal(t, before+account.AddressLength, cell.Size(), "address stored")

	w, err := registry.FetchPlugin(cell, plugin.TransferDelegate)
	require.Nil(t, err, "fetch")
	assert.Equal(t, authority.ForAddress(delegate), w.Record.Authority, "delegated")

	_, err = registry.RevokeAuthorityOnPlugin(cell, nil, free, plugin.TransferDelegate)
	require.Nil(t, err, "revoke")
	assert.Equal(t, before, cell.Size(), "back to manager")

	w, err = registry.FetchPlugin(cell, plugin.TransferDelegate)
	require.Nil(t, err, "fetch")
	assert.Equal(t, authority.OwnerAuthority, w.Record.Authority, "manager")
	checkInvariant(t, cell)
}

func TestResizeCore(t *testing.T) {
	cell, _ := newAssetCell(t, "core")
	freeze := &plugin.Freeze{Frozen: true}
	_, err := registry.InitializePlugin(cell, nil, free, freeze, authority.OwnerAuthority)
	require.Nil(t, err, "add")

	for _, name := range []string{"a much longer asset name", "x"} {
		a := &asset.Asset{Owner: owner, UpdateAuthority: authority.HeldBy(owner), Name: name}
		core, err := a.Pack()
		require.Nil(t, err, "pack")

		err = registry.ResizeCore(cell, nil, free, core)
		require.Nil(t, err, "resize core: %s", name)

		loaded, n, err := asset.LoadAsset(cell.Data)
		require.Nil(t, err, "load asset")
		assert.Equal(t, name, loaded.Name, "name")
		assert.Equal(t, uint64(len(core)), n, "core length")

		meta := checkInvariant(t, cell)
		assert.Equal(t, n, meta.CoreLength, "header follows core")

		w, err := registry.FetchPlugin(cell, plugin.FreezeDelegate)
		require.Nil(t, err, "fetch")
		assert.Equal(t, freeze, w.Plugin, "plugin preserved")
	}

	bare, _ := newAssetCell(t, "bare")
	a := &asset.Asset{Owner: owner, Name: "renamed"}
	core, err := a.Pack()
	require.Nil(t, err, "pack")
	require.Nil(t, registry.ResizeCore(bare, nil, free, core), "no plugins")
	assert.Equal(t, core, bare.Data, "core only")
}

func TestRentIsSettled(t *testing.T) {
	cell, _ := newAssetCell(t, "rent")
	rent := layout.DefaultRent
	cell.Balance = rent.MinimumBalance(cell.Size())
	payer := layout.NewCell(delegate, 1000000000)
	total := cell.Balance + payer.Balance

	_, err := registry.InitializePlugin(cell, payer, rent, &plugin.AttributeList{List: []plugin.Attribute{{Key: "a", Value: "b"}}}, authority.UpdateAuthorityRole)
	require.Nil(t, err, "add")
	assert.Equal(t, rent.MinimumBalance(cell.Size()), cell.Balance, "funded for new size")

	_, err = registry.DeletePlugin(cell, payer, rent, plugin.Attributes)
	require.Nil(t, err, "remove")
	assert.Equal(t, rent.MinimumBalance(cell.Size()), cell.Balance, "refunded on shrink")
	assert.Equal(t, total, cell.Balance+payer.Balance, "nothing lost")

	poor := layout.NewCell(delegate, 0)
	_, err = registry.InitializePlugin(cell, poor, rent, &plugin.Blocker{}, authority.UpdateAuthorityRole)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "payer cannot fund")
}

func TestUnfundedChangeLeavesCell(t *testing.T) {
	cell, _ := newAssetCell(t, "unfunded")
	rent := layout.StorageRent{LamportsPerByteYear: 1, ExemptionThreshold: 1}
	small := &plugin.AttributeList{List: []plugin.Attribute{{Key: "a", Value: "b"}}}
	_, err := registry.InitializePlugin(cell, nil, free, small, authority.UpdateAuthorityRole)
	require.Nil(t, err, "add")
	_, err = registry.InitializePlugin(cell, nil, free, &plugin.Freeze{}, authority.OwnerAuthority)
	require.Nil(t, err, "add")
	cell.Balance = rent.MinimumBalance(cell.Size())

	data := append([]byte{}, cell.Data...)
	balance := cell.Balance
	broke := layout.NewCell(delegate, 0)

	big := &plugin.AttributeList{List: []plugin.Attribute{{Key: "key", Value: "a much longer value than before"}}}
	_, err = registry.UpdatePlugin(cell, broke, rent, big)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "update")
	_, err = registry.InitializePlugin(cell, broke, rent, &plugin.Blocker{}, authority.UpdateAuthorityRole)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "add")
	_, err = registry.InitializeExternalPluginAdapter(cell, broke, rent, &plugin.AppData{DataAuthorityRole: authority.OwnerAuthority}, authority.UpdateAuthorityRole, nil, nil)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "adapter")

	assert.Equal(t, data, cell.Data, "data unchanged")
	assert.Equal(t, balance, cell.Balance, "balance unchanged")
	assert.Equal(t, uint64(0), broke.Balance, "payer unchanged")
	checkInvariant(t, cell)
}

// random add, update and remove sequences keep the layout contiguous
func TestLayoutRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cell, _ := newAssetCell(t, "random")
	model := map[plugin.Type]plugin.Plugin{}

	randomAttributes := func() plugin.Plugin {
		list := make([]plugin.Attribute, r.Intn(4))
		for i := range list {
			list[i] = plugin.Attribute{Key: strings.Repeat("k", r.Intn(10)), Value: strings.Repeat("v", r.Intn(30))}
		}
		return &plugin.AttributeList{List: list}
	}
	makers := map[plugin.Type]func() plugin.Plugin{
		plugin.Attributes: randomAttributes,
		plugin.FreezeDelegate: func() plugin.Plugin {
			return &plugin.Freeze{Frozen: 0 == r.Intn(2)}
		},
		plugin.UpdateDelegate: func() plugin.Plugin {
			return &plugin.UpdateDelegation{AdditionalDelegates: make([]account.Address, r.Intn(3))}
		},
		plugin.MasterEdition: func() plugin.Plugin {
			name := strings.Repeat("m", r.Intn(20))
			return &plugin.Master{Name: &name}
		},
	}
	types := []plugin.Type{plugin.Attributes, plugin.FreezeDelegate, plugin.UpdateDelegate, plugin.MasterEdition}

	for step := 0; step < 200; step += 1 {
		tp := types[r.Intn(len(types))]
		_, present := model[tp]
		switch {
		case !present:
			p := makers[tp]()
			_, err := registry.InitializePlugin(cell, nil, free, p, tp.Manager())
			require.Nil(t, err, "step %d: add %s", step, tp)
			model[tp] = p
		case 0 == r.Intn(2):
			p := makers[tp]()
			_, err := registry.UpdatePlugin(cell, nil, free, p)
			require.Nil(t, err, "step %d: update %s", step, tp)
			model[tp] = p
		default:
			_, err := registry.DeletePlugin(cell, nil, free, tp)
			require.Nil(t, err, "step %d: remove %s", step, tp)
			delete(model, tp)
		}

		checkInvariant(t, cell)
		all, err := registry.FetchPlugins(cell)
		require.Nil(t, err, "step %d: fetch", step)
		require.Equal(t, len(model), len(all), "step %d: count", step)
		for _, w := range all {
			assert.Equal(t, plugin.Pack(model[w.Record.Type]), plugin.Pack(w.Plugin), "step %d: %s", step, w.Record.Type)
		}
	}
}

func TestCorruptRegistry(t *testing.T) {
	cell, coreLength := newAssetCell(t, "corrupt")
	_, err := registry.InitializePlugin(cell, nil, free, &plugin.Freeze{}, authority.OwnerAuthority)
	require.Nil(t, err, "add")

	bad := cell.Clone()
	bad.Data[coreLength] = byte(asset.AssetV1)
	_, err = registry.Load(bad)
	assert.Equal(t, fault.ErrUnexpectedKey, err, "header key")

	bad = cell.Clone()
	bad.Data = bad.Data[:len(bad.Data)-1]
	_, err = registry.Load(bad)
	assert.Equal(t, fault.ErrDeserialization, err, "truncated registry")

	bad = cell.Clone()
	bad.Data[coreLength+1] += 1
	_, err = registry.Load(bad)
	assert.NotNil(t, err, "registry offset moved")
}
