// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"encoding/json"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/compression"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/lifecycle"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// HookNotice - journal payload for a listening lifecycle hook
type HookNotice struct {
	Event         string          `json:"event"`
	Asset         account.Address `json:"asset"`
	HookedProgram account.Address `json:"hookedProgram"`
	Caller        account.Address `json:"caller"`
}

// CompressionNotice - journal payload holding the proof of a
// compressed asset
type CompressionNotice struct {
	Asset account.Address    `json:"asset"`
	Proof *compression.Proof `json:"proof"`
}

type pendingEntry struct {
	kind    journal.Kind
	payload []byte
}

// the working copies of one operation
type session struct {
	p        *Processor
	req      Request
	cells    map[account.Address]*layout.Cell
	order    []account.Address
	payer    *layout.Cell
	pending  []pendingEntry
	identity account.Address
}

func (p *Processor) begin(req Request) *session {
	s := &session{
		p:        p,
		req:      req,
		cells:    make(map[account.Address]*layout.Cell),
		identity: req.identity(),
	}
	if cell, ok := s.cell(req.payer()); ok {
		s.payer = cell
	}
	return s
}

// cell - the working copy of a cell, read on first use
func (s *session) cell(address account.Address) (*layout.Cell, bool) {
	if cell, ok := s.cells[address]; ok {
		return cell, true
	}
	cell, ok := s.p.store.Cell(address)
	if !ok {
		return nil, false
	}
	cell = cell.Clone()
	s.cells[address] = cell
	s.order = append(s.order, address)
	return cell, true
}

// fresh - the working copy of a cell that must hold no record yet
func (s *session) fresh(address account.Address, exists error) (*layout.Cell, error) {
	cell, ok := s.cell(address)
	if !ok {
		cell = layout.NewCell(address, 0)
		s.cells[address] = cell
		s.order = append(s.order, address)
	}
	if 0 != cell.Size() {
		return nil, exists
	}
	return cell, nil
}

// Data - current data of a cell, for oracle adapters
func (s *session) Data(address account.Address) ([]byte, error) {
	if cell, ok := s.cells[address]; ok {
		return cell.Data, nil
	}
	cell, ok := s.p.store.Cell(address)
	if !ok {
		return nil, fault.ErrUninitialisedAccount
	}
	return cell.Data, nil
}

func (s *session) record(kind journal.Kind, v interface{}) error {
	payload, err := json.Marshal(v)
	if nil != err {
		return err
	}
	s.pending = append(s.pending, pendingEntry{kind: kind, payload: payload})
	return nil
}

// notify - tell each listening hook about the event
func (s *session) notify(op plugin.Operation, address account.Address, outcome *lifecycle.Outcome) error {
	if nil == outcome {
		return nil
	}
	for _, w := range outcome.Listeners {
		hook, ok := w.Adapter.(*plugin.LifecycleHook)
		if !ok {
			continue
		}
		notice := HookNotice{
			Event:         op.String(),
			Asset:         address,
			HookedProgram: hook.HookedProgram,
			Caller:        s.identity,
		}
		if err := s.record(journal.HookNotification, notice); nil != err {
			return err
		}
	}
	return nil
}

// commit - write every working copy and pending entry in one batch
func (s *session) commit() error {
	batch, err := s.p.store.Begin()
	if nil != err {
		return err
	}
	for _, address := range s.order {
		cell := s.cells[address]
		if 0 == cell.Size() && 0 == cell.Balance {
			batch.DeleteCell(address)
		} else {
			batch.PutCell(cell)
		}
	}
	for _, e := range s.pending {
		if _, err := batch.Append(e.kind, e.payload); nil != err {
			batch.Abort()
			return err
		}
	}
	entries, err := batch.Commit()
	if nil != err {
		return err
	}
	for _, e := range entries {
		s.p.log.Debugf("journal: %d  kind: %s", e.Sequence, e.Kind)
	}
	return nil
}

// an asset with its collection
//
// a compressed asset is rehydrated into a scratch cell; changes are
// made there and folded back into a new proof when settled
type assetState struct {
	address  account.Address
	cell     *layout.Cell
	hashed   *layout.Cell // nil unless compressed
	asset    *asset.Asset
	plugins  []registry.Wrapped
	adapters []registry.WrappedAdapter

	collection *collectionState
}

// a collection with its plugins
type collectionState struct {
	address    account.Address
	cell       *layout.Cell
	collection *asset.Collection
	plugins    []registry.Wrapped
	adapters   []registry.WrappedAdapter
}

// loadAsset - an asset, the proof is needed only if it is compressed
func (s *session) loadAsset(address account.Address, proof *compression.Proof) (*assetState, error) {
	cell, ok := s.cell(address)
	if !ok {
		return nil, fault.ErrUninitialisedAccount
	}
	record, _, err := asset.Load(cell.Data)
	if nil != err {
		return nil, err
	}

	st := &assetState{
		address: address,
		cell:    cell,
	}
	switch record.(type) {
	case *asset.Asset:
	case *asset.HashedAsset:
		if nil == proof {
			return nil, fault.ErrMissingCompressionProof
		}
		scratch := cell.Clone()
		if _, err := compression.Rehydrate(scratch, nil, layout.FreeRent{}, proof); nil != err {
			return nil, err
		}
		st.hashed = cell
		st.cell = scratch
	default:
		return nil, fault.ErrIncorrectAccount
	}

	if err := st.reload(); nil != err {
		return nil, err
	}

	if collectionAddress, ok := st.asset.UpdateAuthority.Collection(); ok {
		c, err := s.collection(collectionAddress)
		if nil != err {
			return nil, err
		}
		st.collection = c
	}
	return st, nil
}

// reload - read the core, plugins and adapters of the working cell
func (st *assetState) reload() error {
	a, _, err := asset.LoadAsset(st.cell.Data)
	if nil != err {
		return err
	}
	plugins, err := registry.FetchPlugins(st.cell)
	if nil != err {
		return err
	}
	adapters, err := registry.ListExternalPluginAdapters(st.cell)
	if nil != err {
		return err
	}
	st.asset = a
	st.plugins = plugins
	st.adapters = adapters
	return nil
}

func (s *session) loadCollection(address account.Address) (*collectionState, error) {
	cell, ok := s.cell(address)
	if !ok {
		return nil, fault.ErrUninitialisedAccount
	}
	c, _, err := asset.LoadCollection(cell.Data)
	if nil != err {
		if fault.ErrUninitialisedAccount == err {
			return nil, err
		}
		return nil, fault.ErrInvalidCollection
	}
	plugins, err := registry.FetchPlugins(cell)
	if nil != err {
		return nil, err
	}
	adapters, err := registry.ListExternalPluginAdapters(cell)
	if nil != err {
		return nil, err
	}
	return &collectionState{
		address:    address,
		cell:       cell,
		collection: c,
		plugins:    plugins,
		adapters:   adapters,
	}, nil
}

// assetContext - lifecycle context of the session identity acting on
// an asset
func (s *session) assetContext(st *assetState) (*lifecycle.Context, error) {
	var collectionAuthority *account.Address
	ctx := &lifecycle.Context{
		Caller:   s.identity,
		Asset:    st.asset,
		Plugins:  st.plugins,
		Adapters: st.adapters,
		Accounts: s,
	}
	if nil != st.collection {
		collectionAuthority = &st.collection.collection.UpdateAuthority
		ctx.Collection = st.collection.collection
		ctx.CollectionPlugins = st.collection.plugins
		ctx.CollectionAdapters = st.collection.adapters
	}
	roles, err := authority.Resolve(s.identity, st.asset.Owner, st.asset.UpdateAuthority, collectionAuthority)
	if nil != err {
		return nil, err
	}
	ctx.Roles = roles
	return ctx, nil
}

func (s *session) collectionContext(c *collectionState) *lifecycle.Context {
	return &lifecycle.Context{
		Caller:             s.identity,
		Roles:              authority.ResolveCollection(s.identity, c.collection.UpdateAuthority),
		Collection:         c.collection,
		CollectionPlugins:  c.plugins,
		CollectionAdapters: c.adapters,
		Accounts:           s,
	}
}

func (s *session) validateAsset(op plugin.Operation, ctx *lifecycle.Context) (*lifecycle.Outcome, error) {
	outcome, err := s.p.engine.ValidateAsset(op, ctx)
	if nil != err {
		s.p.log.Warnf("%s: identity: %s  rejected: %s", op, s.identity, err)
		return nil, err
	}
	return outcome, nil
}

func (s *session) validateCollection(op plugin.Operation, ctx *lifecycle.Context) (*lifecycle.Outcome, error) {
	outcome, err := s.p.engine.ValidateCollection(op, ctx)
	if nil != err {
		s.p.log.Warnf("%s: identity: %s  rejected: %s", op, s.identity, err)
		return nil, err
	}
	return outcome, nil
}

// funding - who pays for changes to the working cell of an asset
//
// a scratch cell is never stored so it is resized for free
func (s *session) funding(st *assetState) (*layout.Cell, layout.Rent) {
	if nil != st.hashed {
		return nil, layout.FreeRent{}
	}
	return s.payer, s.p.rent
}

// rewrite - store a changed core record of an asset
func (s *session) rewrite(st *assetState) error {
	core, err := st.asset.Pack()
	if nil != err {
		return err
	}
	payer, rent := s.funding(st)
	return registry.ResizeCore(st.cell, payer, rent, core)
}

// mutated - bump the sequence, store the core and, for a compressed
// asset, replace the stored hash with that of a new proof
func (s *session) mutated(st *assetState) error {
	if err := st.asset.IncrementSeq(); nil != err {
		return err
	}
	if err := s.rewrite(st); nil != err {
		return err
	}
	if nil == st.hashed {
		return nil
	}
	proof, err := compression.NewProof(st.cell)
	if nil != err {
		return err
	}
	return s.store(st.hashed, st.address, proof)
}

// store - write the hash of a proof into a cell and journal the proof
func (s *session) store(cell *layout.Cell, address account.Address, proof *compression.Proof) error {
	if err := compression.Write(cell, s.payer, s.p.rent, proof); nil != err {
		return err
	}
	return s.record(journal.CompressionProof, CompressionNotice{Asset: address, Proof: proof})
}

// burn - leave only the uninitialised key with its rent
func (s *session) burn(cell *layout.Cell) error {
	if err := layout.Resize(cell, s.payer, 1, s.p.rent); nil != err {
		return err
	}
	cell.Data[0] = byte(asset.Uninitialized)
	return nil
}

// rewriteCollection - store a changed collection core
func (s *session) rewriteCollection(c *collectionState) error {
	core, err := c.collection.Pack()
	if nil != err {
		return err
	}
	return registry.ResizeCore(c.cell, s.payer, s.p.rent, core)
}
