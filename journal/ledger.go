// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/storage"
)

// counter key in the JournalNextCount pool
var nextCountKey = []byte("journal")

// Ledger - journal kept in the database, appended through a transaction
type Ledger struct {
	trx      storage.Transaction
	appended []Entry
}

// NewLedger - entries become visible when the transaction commits
func NewLedger(trx storage.Transaction) *Ledger {
	return &Ledger{trx: trx}
}

// Append - add an entry, returning its sequence number
func (l *Ledger) Append(kind Kind, payload []byte) (uint64, error) {
	if nil == l.trx || !l.trx.InUse() {
		return 0, fault.ErrNotInitialised
	}
	next, ok := l.trx.GetN(storage.Pool.JournalNextCount, nextCountKey)
	if !ok {
		next = 1
	}
	l.trx.Put(storage.Pool.Journal, sequenceKey(next), packEntry(kind, payload))
	l.trx.PutN(storage.Pool.JournalNextCount, nextCountKey, next+1)

	p := make([]byte, len(payload))
	copy(p, payload)
	l.appended = append(l.appended, Entry{Sequence: next, Kind: kind, Payload: p})
	return next, nil
}

// Appended - entries added through this ledger
func (l *Ledger) Appended() []Entry {
	return l.appended
}

// Read - a committed entry
func Read(sequence uint64) (*Entry, error) {
	key := sequenceKey(sequence)
	value := storage.Pool.Journal.Get(key)
	if nil == value {
		return nil, fault.ErrJournalEntryNotFound
	}
	return unpackEntry(key, value)
}

// List - up to count committed entries starting from a sequence number
func List(start uint64, count int) ([]Entry, error) {
	cursor := storage.Pool.Journal.NewFetchCursor().Seek(sequenceKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}
	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		entry, err := unpackEntry(e.Key, e.Value)
		if nil != err {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// Last - sequence number of the last committed entry, zero if none
func Last() uint64 {
	next, ok := storage.Pool.JournalNextCount.GetN(nextCountKey)
	if !ok {
		return 0
	}
	return next - 1
}
