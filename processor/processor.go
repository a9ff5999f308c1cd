// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/lifecycle"
	"github.com/bitmark-inc/assetcore/plugin"
)

// Configuration - processor settings
type Configuration struct {
	Rent        layout.Rent   // nil: default rent
	Compression bool          // allow Compress, Decompress and compressed creation
	Order       []plugin.Type // lifecycle check order, nil: ascending
}

// Processor - runs operations against a store
type Processor struct {
	log         *logger.L
	store       Store
	rent        layout.Rent
	engine      *lifecycle.Engine
	compression bool
}

// Request - who is calling
//
// the caller signs and by default pays for any storage; Authority, if
// set, is the identity whose roles are checked in place of the caller
type Request struct {
	Caller    account.Address
	Payer     *account.Address
	Authority *account.Address
}

func (r Request) identity() account.Address {
	if nil != r.Authority {
		return *r.Authority
	}
	return r.Caller
}

func (r Request) payer() account.Address {
	if nil != r.Payer {
		return *r.Payer
	}
	return r.Caller
}

// New - create a processor
func New(store Store, configuration Configuration) *Processor {
	rent := configuration.Rent
	if nil == rent {
		rent = layout.DefaultRent
	}
	return &Processor{
		log:         logger.New("processor"),
		store:       store,
		rent:        rent,
		engine:      &lifecycle.Engine{Order: configuration.Order},
		compression: configuration.Compression,
	}
}
