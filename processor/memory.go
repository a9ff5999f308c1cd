// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"sync"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/layout"
)

// Memory - a store held in memory, for dry runs
type Memory struct {
	sync.Mutex
	cells   map[account.Address]*layout.Cell
	entries []journal.Entry
	inUse   bool
}

// NewMemory - an empty memory store
func NewMemory() *Memory {
	return &Memory{
		cells: make(map[account.Address]*layout.Cell),
	}
}

// Cell - a copy of a stored cell
func (m *Memory) Cell(address account.Address) (*layout.Cell, bool) {
	m.Lock()
	defer m.Unlock()

	cell, ok := m.cells[address]
	if !ok {
		return nil, false
	}
	return cell.Clone(), true
}

// Fund - create or credit a plain cell
func (m *Memory) Fund(address account.Address, amount uint64) {
	m.Lock()
	defer m.Unlock()

	cell, ok := m.cells[address]
	if !ok {
		cell = layout.NewCell(address, 0)
		m.cells[address] = cell
	}
	cell.Balance += amount
}

// Put - store a copy of a cell outside any batch
func (m *Memory) Put(cell *layout.Cell) {
	m.Lock()
	defer m.Unlock()

	m.cells[cell.Address] = cell.Clone()
}

// Entries - every committed journal entry
func (m *Memory) Entries() []journal.Entry {
	m.Lock()
	defer m.Unlock()

	entries := make([]journal.Entry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

// Begin - start the single batch
func (m *Memory) Begin() (Batch, error) {
	m.Lock()
	defer m.Unlock()

	if m.inUse {
		return nil, fault.ErrTransactionInUse
	}
	m.inUse = true
	return &memoryBatch{
		m:     m,
		cells: make(map[account.Address]*layout.Cell),
		next:  uint64(len(m.entries)) + 1,
	}, nil
}

type memoryBatch struct {
	m       *Memory
	cells   map[account.Address]*layout.Cell // nil value: delete
	entries []journal.Entry
	next    uint64
	done    bool
}

func (b *memoryBatch) PutCell(cell *layout.Cell) {
	b.cells[cell.Address] = cell.Clone()
}

func (b *memoryBatch) DeleteCell(address account.Address) {
	b.cells[address] = nil
}

func (b *memoryBatch) Append(kind journal.Kind, payload []byte) (uint64, error) {
	if b.done {
		return 0, fault.ErrNotInitialised
	}
	p := make([]byte, len(payload))
	copy(p, payload)
	n := b.next
	b.entries = append(b.entries, journal.Entry{Sequence: n, Kind: kind, Payload: p})
	b.next += 1
	return n, nil
}

func (b *memoryBatch) Commit() ([]journal.Entry, error) {
	b.m.Lock()
	defer b.m.Unlock()

	if b.done {
		return nil, fault.ErrNotInitialised
	}
	for address, cell := range b.cells {
		if nil == cell {
			delete(b.m.cells, address)
		} else {
			b.m.cells[address] = cell
		}
	}
	b.m.entries = append(b.m.entries, b.entries...)
	b.m.inUse = false
	b.done = true
	return b.entries, nil
}

func (b *memoryBatch) Abort() {
	b.m.Lock()
	defer b.m.Unlock()

	if !b.done {
		b.m.inUse = false
		b.done = true
	}
}
