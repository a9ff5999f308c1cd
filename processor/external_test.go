// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/processor"
	"github.com/bitmark-inc/assetcore/registry"
)

func TestHookAndAppData(t *testing.T) {
	p, m := newProcessor(layout.FreeRent{}, true)

	hook := &plugin.LifecycleHook{HookedProgram: hookProgram}
	err := p.Create(request(owner), processor.CreateArgs{
		Asset: assetAddress,
		Name:  "hooked",
		Adapters: []processor.AdapterEntry{{
			Adapter: hook,
			Checks:  plugin.LifecycleChecks{{Event: plugin.TransferEvent, Check: plugin.CheckCanListen}},
		}},
	})
	require.Nil(t, err, "create")
	assert.Equal(t, 0, len(m.Entries()), "create is not listened to")

	_, err = p.Compress(request(owner), assetAddress)
	assert.Equal(t, fault.ErrNotAvailable, err, "adapters cannot be compressed")

	appData := &plugin.AppData{DataAuthorityRole: authority.ForAddress(third), Schema: plugin.SchemaJSON}
	err = p.AddExternalPluginAdapter(request(buyer), processor.AddAdapterArgs{Address: assetAddress, Adapter: processor.AdapterEntry{Adapter: appData}})
	assert.Equal(t, fault.ErrNoApprovals, err, "add by stranger")
	err = p.AddExternalPluginAdapter(request(owner), processor.AddAdapterArgs{Address: assetAddress, Adapter: processor.AdapterEntry{Adapter: appData}})
	require.Nil(t, err, "add app data")

	data := []byte(`{"level":7}`)
	err = p.WriteExternalPluginAdapterData(request(owner), processor.WriteDataArgs{Address: assetAddress, Key: appData.Key(), Data: data})
	assert.Equal(t, fault.ErrInvalidAuthority, err, "not the data authority")
	err = p.WriteExternalPluginAdapterData(request(third), processor.WriteDataArgs{Address: assetAddress, Key: appData.Key(), Data: data})
	require.Nil(t, err, "write")
	err = p.WriteExternalPluginAdapterData(request(third), processor.WriteDataArgs{Address: assetAddress, Key: hook.Key(), Data: data})
	assert.Equal(t, fault.ErrNoDataSection, err, "hook has no data")

	w, err := registry.FetchExternalPluginAdapter(storedCell(t, m, assetAddress), appData.Key())
	require.Nil(t, err, "fetch")
	assert.Equal(t, data, w.Data, "data")
	assert.Equal(t, uint64(2), storedAsset(t, m, assetAddress).SeqValue(), "seq")

	err = p.Transfer(request(owner), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer})
	require.Nil(t, err, "transfer")
	entries := m.Entries()
	require.Equal(t, 1, len(entries), "notified")
	assert.Equal(t, journal.HookNotification, entries[0].Kind, "kind")

	var notice processor.HookNotice
	require.Nil(t, json.Unmarshal(entries[0].Payload, &notice), "decode")
	assert.Equal(t, processor.HookNotice{
		Event:         "Transfer",
		Asset:         assetAddress,
		HookedProgram: hookProgram,
		Caller:        owner,
	}, notice, "notice")

	err = p.RemoveExternalPluginAdapter(request(buyer), processor.AdapterArgs{Address: assetAddress, Key: appData.Key()})
	assert.Equal(t, fault.ErrNoApprovals, err, "remove by owner")
	err = p.RemoveExternalPluginAdapter(request(owner), processor.AdapterArgs{Address: assetAddress, Key: appData.Key()})
	require.Nil(t, err, "remove")
	_, err = registry.FetchExternalPluginAdapter(storedCell(t, m, assetAddress), appData.Key())
	assert.Equal(t, fault.ErrExternalPluginAdapterNotFound, err, "removed")
}

func TestOracle(t *testing.T) {
	p, m := newProcessor(layout.FreeRent{}, false)

	verdict := func(transfer plugin.ValidationResult) {
		cell := layout.NewCell(oracleCell, 0)
		results := &plugin.OracleResults{
			Create:   plugin.Pass,
			Transfer: transfer,
			Burn:     plugin.Pass,
			Update:   plugin.Pass,
		}
		cell.Data = results.Pack()
		m.Put(cell)
	}

	oracle := &plugin.Oracle{BaseAddress: oracleCell}
	err := p.Create(request(owner), processor.CreateArgs{
		Asset: assetAddress,
		Name:  "guarded",
		Adapters: []processor.AdapterEntry{{
			Adapter: oracle,
			Checks:  plugin.LifecycleChecks{{Event: plugin.TransferEvent, Check: plugin.CheckCanReject}},
		}},
	})
	require.Nil(t, err, "create")

	err = p.Transfer(request(owner), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer})
	assert.Equal(t, fault.ErrUninitialisedAccount, err, "no oracle cell")

	verdict(plugin.Rejected)
	err = p.Transfer(request(owner), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer})
	assert.Equal(t, fault.ErrInvalidAuthority, err, "rejected")

	// an oracle cannot approve what the core does not
	verdict(plugin.Approved)
	err = p.Transfer(request(third), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer})
	assert.Equal(t, fault.ErrNoApprovals, err, "stranger")

	err = p.Transfer(request(owner), processor.TransferArgs{Asset: assetAddress, NewOwner: buyer})
	require.Nil(t, err, "accepted")
	assert.Equal(t, buyer, storedAsset(t, m, assetAddress).Owner, "owner")
}

func TestCollectionAdapters(t *testing.T) {
	p, m := newProcessor(layout.FreeRent{}, false)

	err := p.CreateCollection(request(curator), processor.CreateCollectionArgs{Collection: collectionAddress, Name: "listened"})
	require.Nil(t, err, "create collection")

	hook := &plugin.LifecycleHook{HookedProgram: hookProgram}
	err = p.AddCollectionExternalPluginAdapter(request(curator), processor.AddAdapterArgs{
		Address: collectionAddress,
		Adapter: processor.AdapterEntry{
			Adapter: hook,
			Checks:  plugin.LifecycleChecks{{Event: plugin.CreateEvent, Check: plugin.CheckCanListen}},
		},
	})
	require.Nil(t, err, "add hook")

	appData := &plugin.AppData{DataAuthorityRole: authority.UpdateAuthorityRole}
	err = p.AddCollectionExternalPluginAdapter(request(curator), processor.AddAdapterArgs{Address: collectionAddress, Adapter: processor.AdapterEntry{Adapter: appData}})
	require.Nil(t, err, "add app data")
	err = p.WriteExternalPluginAdapterData(request(curator), processor.WriteDataArgs{Address: collectionAddress, Key: appData.Key(), Data: []byte{1, 2, 3}})
	require.Nil(t, err, "write collection data")

	// members inherit the collection hook
	err = p.Create(request(curator), processor.CreateArgs{Asset: assetAddress, Name: "member", Owner: &owner, Collection: &collectionAddress})
	require.Nil(t, err, "create member")
	entries := m.Entries()
	require.Equal(t, 1, len(entries), "notified")
	assert.Equal(t, journal.HookNotification, entries[0].Kind, "kind")

	err = p.RemoveCollectionExternalPluginAdapter(request(owner), processor.AdapterArgs{Address: collectionAddress, Key: hook.Key()})
	assert.Equal(t, fault.ErrNoApprovals, err, "remove by member owner")
	err = p.RemoveCollectionExternalPluginAdapter(request(curator), processor.AdapterArgs{Address: collectionAddress, Key: hook.Key()})
	require.Nil(t, err, "remove")
}
