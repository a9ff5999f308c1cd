// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetcore/fault"
)

// Kind - what an entry holds
type Kind uint8

// entry kinds, values are the stored tags
const (
	CompressionProof Kind = 1
	HookNotification Kind = 2
)

// String - name of a kind
func (k Kind) String() string {
	switch k {
	case CompressionProof:
		return "CompressionProof"
	case HookNotification:
		return "HookNotification"
	default:
		return "*unknown*"
	}
}

// MarshalText - name for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry - one journal record
type Entry struct {
	Sequence uint64 `json:"sequence"`
	Kind     Kind   `json:"kind"`
	Payload  []byte `json:"payload"`
}

// Journal - somewhere to append entries
type Journal interface {
	Append(kind Kind, payload []byte) (uint64, error)
}

// key for an entry
func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}

func packEntry(kind Kind, payload []byte) []byte {
	return append([]byte{byte(kind)}, payload...)
}

func unpackEntry(key []byte, value []byte) (*Entry, error) {
	if 8 != len(key) || 0 == len(value) {
		return nil, fault.ErrTruncatedRecord
	}
	kind := Kind(value[0])
	if CompressionProof != kind && HookNotification != kind {
		return nil, fault.ErrUnexpectedKey
	}
	payload := make([]byte, len(value)-1)
	copy(payload, value[1:])
	return &Entry{
		Sequence: binary.BigEndian.Uint64(key),
		Kind:     kind,
		Payload:  payload,
	}, nil
}
