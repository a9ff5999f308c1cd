// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/lifecycle"
	"github.com/bitmark-inc/assetcore/plugin"
)

// fills in the operation specific part of a context from the cell
type prepareFunc func(cell *layout.Cell, ctx *lifecycle.Context) error

// changes the cell once the operation is approved
type applyFunc func(cell *layout.Cell, payer *layout.Cell, rent layout.Rent) error

// changeAsset - validate then apply a registry change to an asset
func (p *Processor) changeAsset(req Request, address account.Address, op plugin.Operation, prepare prepareFunc, apply applyFunc) error {
	s := p.begin(req)
	st, err := s.loadAsset(address, nil)
	if nil != err {
		return err
	}
	ctx, err := s.assetContext(st)
	if nil != err {
		return err
	}
	if err := prepare(st.cell, ctx); nil != err {
		return err
	}
	outcome, err := s.validateAsset(op, ctx)
	if nil != err {
		return err
	}

	payer, rent := s.funding(st)
	if err := apply(st.cell, payer, rent); nil != err {
		return err
	}
	if err := st.reload(); nil != err {
		return err
	}
	if err := s.mutated(st); nil != err {
		return err
	}
	if err := s.notify(op, address, outcome); nil != err {
		return err
	}
	return s.commit()
}

// changeCollection - validate then apply a registry change to a
// collection
func (p *Processor) changeCollection(req Request, address account.Address, op plugin.Operation, prepare prepareFunc, apply applyFunc) error {
	s := p.begin(req)
	cs, err := s.collection(address)
	if nil != err {
		return err
	}
	ctx := s.collectionContext(cs)
	if err := prepare(cs.cell, ctx); nil != err {
		return err
	}
	if _, err := s.validateCollection(op, ctx); nil != err {
		return err
	}
	if err := apply(cs.cell, s.payer, p.rent); nil != err {
		return err
	}
	return s.commit()
}
