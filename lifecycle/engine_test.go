// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/lifecycle"
	"github.com/bitmark-inc/assetcore/lifecycle/mocks"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

var (
	owner     = account.Address{0x01}
	newOwner  = account.Address{0x02}
	delegate  = account.Address{0x03}
	stranger  = account.Address{0x04}
	curator   = account.Address{0x05}
	oracleKey = account.Address{0x06}
)

func wrap(p plugin.Plugin, a authority.Authority) registry.Wrapped {
	return registry.Wrapped{
		Record: registry.Record{Type: p.Type(), Authority: a},
		Plugin: p,
	}
}

// context for a caller acting on an asset owned by owner
func assetContext(t *testing.T, caller account.Address, plugins ...registry.Wrapped) *lifecycle.Context {
	a := &asset.Asset{Owner: owner, UpdateAuthority: authority.HeldBy(owner), Name: "a"}
	roles, err := authority.Resolve(caller, a.Owner, a.UpdateAuthority, nil)
	require.Nil(t, err, "resolve")
	return &lifecycle.Context{
		Caller:   caller,
		Roles:    roles,
		NewOwner: &newOwner,
		Asset:    a,
		Plugins:  plugins,
	}
}

// context for a caller acting on an asset in a collection run by curator
func memberContext(t *testing.T, caller account.Address, plugins []registry.Wrapped, collectionPlugins []registry.Wrapped) *lifecycle.Context {
	collectionAddress := account.Address{0xcc}
	c := &asset.Collection{UpdateAuthority: curator, Name: "c"}
	a := &asset.Asset{Owner: owner, UpdateAuthority: authority.InCollection(collectionAddress), Name: "a"}
	roles, err := authority.Resolve(caller, a.Owner, a.UpdateAuthority, &c.UpdateAuthority)
	require.Nil(t, err, "resolve")
	return &lifecycle.Context{
		Caller:            caller,
		Roles:             roles,
		NewOwner:          &newOwner,
		Asset:             a,
		Collection:        c,
		Plugins:           plugins,
		CollectionPlugins: collectionPlugins,
	}
}

func TestTransferByOwner(t *testing.T) {
	engine := &lifecycle.Engine{}

	ctx := assetContext(t, owner, wrap(&plugin.Freeze{Frozen: false}, authority.OwnerAuthority))
	outcome, err := engine.ValidateAsset(plugin.Transfer, ctx)
	assert.Nil(t, err, "unfrozen")
	assert.False(t, outcome.ForceApproved, "plain approval")

	ctx = assetContext(t, owner, wrap(&plugin.Freeze{Frozen: true}, authority.OwnerAuthority))
	_, err = engine.ValidateAsset(plugin.Transfer, ctx)
	assert.Equal(t, fault.ErrInvalidAuthority, err, "frozen")

	ctx = assetContext(t, stranger)
	_, err = engine.ValidateAsset(plugin.Transfer, ctx)
	assert.Equal(t, fault.ErrNoApprovals, err, "stranger")
}

func TestTransferDelegate(t *testing.T) {
	engine := &lifecycle.Engine{}
	transfer := wrap(&plugin.TransferDelegation{}, authority.ForAddress(delegate))

	_, err := engine.ValidateAsset(plugin.Transfer, assetContext(t, delegate, transfer))
	assert.Nil(t, err, "delegate")

	_, err = engine.ValidateAsset(plugin.Transfer, assetContext(t, stranger, transfer))
	assert.Equal(t, fault.ErrNoApprovals, err, "not the delegate")

	// a delegate cannot burn
	_, err = engine.ValidateAsset(plugin.Burn, assetContext(t, delegate, transfer))
	assert.Equal(t, fault.ErrNoApprovals, err, "burn")
}

// the outcome depends on which of the two plugins is consulted first
func TestForceApprovedOrder(t *testing.T) {
	plugins := []registry.Wrapped{
		wrap(&plugin.Freeze{Frozen: true}, authority.OwnerAuthority),
		wrap(&plugin.PermanentTransfer{}, authority.ForAddress(delegate)),
	}

	ascending := &lifecycle.Engine{}
	_, err := ascending.ValidateAsset(plugin.Transfer, assetContext(t, delegate, plugins...))
	assert.Equal(t, fault.ErrInvalidAuthority, err, "freeze first")

	reversed := &lifecycle.Engine{
		Order: []plugin.Type{plugin.PermanentTransferDelegate, plugin.FreezeDelegate},
	}
	outcome, err := reversed.ValidateAsset(plugin.Transfer, assetContext(t, delegate, plugins...))
	require.Nil(t, err, "permanent transfer first")
	assert.True(t, outcome.ForceApproved, "forced")

	// without a rejection the permanent delegate wins in any order
	unfrozen := []registry.Wrapped{
		wrap(&plugin.Freeze{Frozen: false}, authority.OwnerAuthority),
		plugins[1],
	}
	outcome, err = ascending.ValidateAsset(plugin.Transfer, assetContext(t, delegate, unfrozen...))
	require.Nil(t, err, "unfrozen")
	assert.True(t, outcome.ForceApproved, "forced")
}

func TestCollectionPluginsAreOverridden(t *testing.T) {
	engine := &lifecycle.Engine{}
	frozen := []registry.Wrapped{wrap(&plugin.PermanentFreeze{Frozen: true}, authority.UpdateAuthorityRole)}
	thawed := []registry.Wrapped{wrap(&plugin.PermanentFreeze{Frozen: false}, authority.UpdateAuthorityRole)}

	_, err := engine.ValidateAsset(plugin.Transfer, memberContext(t, owner, nil, frozen))
	assert.Equal(t, fault.ErrInvalidAuthority, err, "collection freeze")

	_, err = engine.ValidateAsset(plugin.Transfer, memberContext(t, owner, thawed, frozen))
	assert.Nil(t, err, "asset plugin overrides")
}

func TestCreateInCollection(t *testing.T) {
	engine := &lifecycle.Engine{}

	_, err := engine.ValidateAsset(plugin.Create, memberContext(t, curator, nil, nil))
	assert.Nil(t, err, "curator")

	_, err = engine.ValidateAsset(plugin.Create, memberContext(t, stranger, nil, nil))
	assert.Equal(t, fault.ErrNoApprovals, err, "stranger")

	delegation := []registry.Wrapped{wrap(&plugin.UpdateDelegation{}, authority.ForAddress(delegate))}
	_, err = engine.ValidateAsset(plugin.Create, memberContext(t, delegate, nil, delegation))
	assert.Nil(t, err, "update delegate of the collection")

	_, err = engine.ValidateAsset(plugin.Create, assetContext(t, stranger))
	assert.Nil(t, err, "no collection")
}

func TestUpdatePlugin(t *testing.T) {
	engine := &lifecycle.Engine{}
	stored := wrap(&plugin.Freeze{Frozen: false}, authority.OwnerAuthority)

	ctx := assetContext(t, owner, stored)
	ctx.Target = &plugin.Freeze{Frozen: true}
	_, err := engine.ValidateAsset(plugin.UpdatePlugin, ctx)
	assert.Nil(t, err, "owner")

	ctx = assetContext(t, stranger, stored)
	ctx.Target = &plugin.Freeze{Frozen: true}
	_, err = engine.ValidateAsset(plugin.UpdatePlugin, ctx)
	assert.Equal(t, fault.ErrNoApprovals, err, "stranger")

	attributes := wrap(&plugin.AttributeList{}, authority.UpdateAuthorityRole)
	delegation := wrap(&plugin.UpdateDelegation{AdditionalDelegates: []account.Address{stranger}}, authority.ForAddress(delegate))
	ctx = assetContext(t, stranger, attributes, delegation)
	ctx.Target = &plugin.AttributeList{List: []plugin.Attribute{{Key: "k", Value: "v"}}}
	_, err = engine.ValidateAsset(plugin.UpdatePlugin, ctx)
	assert.Nil(t, err, "additional delegate")
}

func TestAddPlugin(t *testing.T) {
	engine := &lifecycle.Engine{}

	ctx := assetContext(t, owner)
	ctx.Target = &plugin.RoyaltySplit{BasisPoints: 20000}
	ctx.TargetAuthority = authority.UpdateAuthorityRole
	_, err := engine.ValidateAsset(plugin.AddPlugin, ctx)
	assert.Equal(t, fault.ErrInvalidPluginSetting, err, "bad royalties")

	blocker := wrap(&plugin.Blocker{}, authority.UpdateAuthorityRole)
	ctx = assetContext(t, owner, blocker)
	ctx.Target = &plugin.AttributeList{}
	_, err = engine.ValidateAsset(plugin.AddPlugin, ctx)
	assert.Equal(t, fault.ErrInvalidAuthority, err, "blocked")

	ctx = assetContext(t, owner, blocker)
	ctx.Target = &plugin.TransferDelegation{}
	_, err = engine.ValidateAsset(plugin.AddPlugin, ctx)
	assert.Nil(t, err, "owner managed")

	ctx = assetContext(t, owner)
	ctx.Target = &plugin.Blocker{}
	_, err = engine.ValidateAsset(plugin.AddPlugin, ctx)
	assert.Nil(t, err, "blocker itself")
}

func TestRemoveAndRevoke(t *testing.T) {
	engine := &lifecycle.Engine{}
	delegated := wrap(&plugin.Freeze{Frozen: false}, authority.ForAddress(delegate))

	ctx := assetContext(t, delegate, delegated)
	ctx.Target = delegated.Plugin
	_, err := engine.ValidateAsset(plugin.RevokePluginAuthority, ctx)
	assert.Nil(t, err, "delegate gives up authority")

	_, err = engine.ValidateAsset(plugin.RemovePlugin, ctx)
	assert.Nil(t, err, "delegate removes")

	frozen := wrap(&plugin.Freeze{Frozen: true}, authority.ForAddress(delegate))
	ctx = assetContext(t, owner, frozen)
	ctx.Target = frozen.Plugin
	_, err = engine.ValidateAsset(plugin.RemovePlugin, ctx)
	assert.Equal(t, fault.ErrInvalidAuthority, err, "frozen freeze")
}

func TestOracle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	oracle := &plugin.Oracle{BaseAddress: oracleKey}
	adapter := registry.WrappedAdapter{
		Record: registry.ExternalRecord{
			Type:            plugin.OracleAdapter,
			Authority:       authority.UpdateAuthorityRole,
			LifecycleChecks: plugin.LifecycleChecks{{Event: plugin.TransferEvent, Check: plugin.CheckCanReject}},
		},
		Adapter: oracle,
	}
	rejecting := &plugin.OracleResults{Transfer: plugin.Rejected, Create: plugin.Pass, Burn: plugin.Pass, Update: plugin.Pass}
	passing := &plugin.OracleResults{Transfer: plugin.Pass, Create: plugin.Pass, Burn: plugin.Pass, Update: plugin.Pass}

	accounts := mocks.NewMockAccounts(ctl)
	gomock.InOrder(
		accounts.EXPECT().Data(oracleKey).Return(rejecting.Pack(), nil).Times(1),
		accounts.EXPECT().Data(oracleKey).Return(passing.Pack(), nil).Times(1),
	)

	engine := &lifecycle.Engine{}
	ctx := assetContext(t, owner)
	ctx.Adapters = []registry.WrappedAdapter{adapter}
	ctx.Accounts = accounts

	_, err := engine.ValidateAsset(plugin.Transfer, ctx)
	assert.Equal(t, fault.ErrInvalidAuthority, err, "oracle rejects")

	_, err = engine.ValidateAsset(plugin.Transfer, ctx)
	assert.Nil(t, err, "oracle passes")

	// no check registered for burn, so no read
	_, err = engine.ValidateAsset(plugin.Burn, ctx)
	assert.Nil(t, err, "burn")
}

func TestLifecycleHookListens(t *testing.T) {
	hook := registry.WrappedAdapter{
		Record: registry.ExternalRecord{
			Type:            plugin.LifecycleHookAdapter,
			Authority:       authority.UpdateAuthorityRole,
			LifecycleChecks: plugin.LifecycleChecks{{Event: plugin.BurnEvent, Check: plugin.CheckCanListen}},
		},
		Adapter: &plugin.LifecycleHook{HookedProgram: delegate},
	}
	engine := &lifecycle.Engine{}
	ctx := assetContext(t, owner)
	ctx.Adapters = []registry.WrappedAdapter{hook}

	outcome, err := engine.ValidateAsset(plugin.Burn, ctx)
	require.Nil(t, err, "burn")
	assert.Equal(t, []registry.WrappedAdapter{hook}, outcome.Listeners, "listener")

	outcome, err = engine.ValidateAsset(plugin.Transfer, ctx)
	require.Nil(t, err, "transfer")
	assert.Equal(t, 0, len(outcome.Listeners), "not listening")
}

func TestCollectionOperations(t *testing.T) {
	engine := &lifecycle.Engine{}
	c := &asset.Collection{UpdateAuthority: curator, Name: "c"}
	newContext := func(caller account.Address, plugins ...registry.Wrapped) *lifecycle.Context {
		return &lifecycle.Context{
			Caller:            caller,
			Roles:             authority.ResolveCollection(caller, c.UpdateAuthority),
			Collection:        c,
			CollectionPlugins: plugins,
		}
	}

	_, err := engine.ValidateCollection(plugin.Update, newContext(curator))
	assert.Nil(t, err, "curator update")

	_, err = engine.ValidateCollection(plugin.Update, newContext(stranger))
	assert.Equal(t, fault.ErrNoApprovals, err, "stranger update")

	delegation := wrap(&plugin.UpdateDelegation{}, authority.ForAddress(delegate))
	_, err = engine.ValidateCollection(plugin.Update, newContext(delegate, delegation))
	assert.Nil(t, err, "delegate update")

	immutable := wrap(&plugin.Immutable{}, authority.UpdateAuthorityRole)
	_, err = engine.ValidateCollection(plugin.Update, newContext(curator, immutable))
	assert.Equal(t, fault.ErrInvalidAuthority, err, "immutable")

	_, err = engine.ValidateCollection(plugin.Transfer, newContext(curator))
	assert.Equal(t, fault.ErrNoApprovals, err, "collections do not transfer")
}
