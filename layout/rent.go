// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

// Rent - the funding collaborator
type Rent interface {
	MinimumBalance(size uint64) uint64
}

// default rent parameters
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2
	DefaultStorageOverhead     = 128
)

// StorageRent - balance needed to keep a cell of a given size
type StorageRent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  uint64
	StorageOverhead     uint64
}

// DefaultRent - rent with the default parameters
var DefaultRent = StorageRent{
	LamportsPerByteYear: DefaultLamportsPerByteYear,
	ExemptionThreshold:  DefaultExemptionThreshold,
	StorageOverhead:     DefaultStorageOverhead,
}

// MinimumBalance - (overhead + size) × rate × threshold
func (r StorageRent) MinimumBalance(size uint64) uint64 {
	return (r.StorageOverhead + size) * r.LamportsPerByteYear * r.ExemptionThreshold
}

// FreeRent - no balance required, for tests and dry runs
type FreeRent struct{}

// MinimumBalance - always zero
func (FreeRent) MinimumBalance(size uint64) uint64 {
	return 0
}
