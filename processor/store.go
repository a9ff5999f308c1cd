// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/storage"
)

// Store - source of cells and sink of committed batches
type Store interface {
	// a private copy of a cell, false if it does not exist
	Cell(address account.Address) (*layout.Cell, bool)
	Begin() (Batch, error)
}

// Batch - the writes of one operation
type Batch interface {
	journal.Journal
	PutCell(cell *layout.Cell)
	DeleteCell(address account.Address)
	Commit() ([]journal.Entry, error)
	Abort()
}

// Database - a store over the LevelDB pools
//
// committed journal entries are sent to the publisher if there is one
type Database struct {
	publisher *journal.Publisher
}

// NewDatabase - store using the already initialised storage
func NewDatabase(publisher *journal.Publisher) *Database {
	return &Database{
		publisher: publisher,
	}
}

// Cell - read a cell from the cells pool
func (d *Database) Cell(address account.Address) (*layout.Cell, bool) {
	return storage.GetCell(address)
}

// Begin - start the database transaction
func (d *Database) Begin() (Batch, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	return &databaseBatch{
		trx:       trx,
		ledger:    journal.NewLedger(trx),
		publisher: d.publisher,
	}, nil
}

type databaseBatch struct {
	trx       storage.Transaction
	ledger    *journal.Ledger
	publisher *journal.Publisher
}

func (b *databaseBatch) PutCell(cell *layout.Cell) {
	storage.PutCell(b.trx, cell)
}

func (b *databaseBatch) DeleteCell(address account.Address) {
	storage.DeleteCell(b.trx, address)
}

func (b *databaseBatch) Append(kind journal.Kind, payload []byte) (uint64, error) {
	return b.ledger.Append(kind, payload)
}

func (b *databaseBatch) Commit() ([]journal.Entry, error) {
	err := b.trx.Commit()
	if nil != err {
		return nil, err
	}
	entries := b.ledger.Appended()
	if nil != b.publisher && 0 != len(entries) {
		b.publisher.Publish(entries)
	}
	return entries, nil
}

func (b *databaseBatch) Abort() {
	b.trx.Abort()
}
