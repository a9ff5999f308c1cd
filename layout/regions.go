// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"sort"

	"github.com/bitmark-inc/assetcore/fault"
)

// Kind - what a region holds
type Kind int

// region kinds
const (
	CoreRegion Kind = iota
	PluginRegion
	ExternalRegion
)

// Region - a contiguous byte range of a cell
//
// Index is the position of the owning record in its registry list and
// is not meaningful for the core region
type Region struct {
	Start  uint64
	Length uint64
	Kind   Kind
	Index  int
}

// End - first byte after the region
func (r Region) End() uint64 {
	return r.Start + r.Length
}

// Regions - region list kept sorted by start and contiguous from zero
type Regions []Region

// NewRegions - a list holding only the core record
func NewRegions(coreLength uint64) Regions {
	return Regions{
		{Start: 0, Length: coreLength, Kind: CoreRegion},
	}
}

// Build - turn a set of (start, kind, index) items into a region list
// where each length extends to the next start, the last ending at end
func Build(coreLength uint64, end uint64, items []Region) (Regions, error) {
	sorted := make([]Region, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	regions := NewRegions(coreLength)
	for i, item := range sorted {
		next := end
		if i+1 < len(sorted) {
			next = sorted[i+1].Start
		}
		if item.Start != regions.End() || next < item.Start {
			return nil, fault.ErrDeserialization
		}
		item.Length = next - item.Start
		regions = append(regions, item)
	}
	if regions.End() != end {
		return nil, fault.ErrDeserialization
	}
	return regions, nil
}

// End - first byte after the last region
func (regions Regions) End() uint64 {
	if 0 == len(regions) {
		return 0
	}
	return regions[len(regions)-1].End()
}

// Find - locate the region of a given kind and index
func (regions Regions) Find(kind Kind, index int) (int, bool) {
	for i, r := range regions {
		if r.Kind == kind && (CoreRegion == kind || r.Index == index) {
			return i, true
		}
	}
	return 0, false
}

// Append - a new region at the end of the list
func (regions Regions) Append(length uint64, kind Kind, index int) (Regions, error) {
	start := regions.End()
	if _, err := Add(start, length); nil != err {
		return nil, err
	}
	result := regions.clone()
	return append(result, Region{Start: start, Length: length, Kind: kind, Index: index}), nil
}

// Resize - change the length of region i, moving all later regions
func (regions Regions) Resize(i int, newLength uint64) (Regions, error) {
	if i < 0 || i >= len(regions) {
		return nil, fault.ErrNumericalOverflow
	}
	delta, err := Delta(regions[i].Length, newLength)
	if nil != err {
		return nil, err
	}
	result := regions.clone()
	result[i].Length = newLength
	for j := i + 1; j < len(result); j += 1 {
		result[j].Start, err = AddSigned(result[j].Start, delta)
		if nil != err {
			return nil, err
		}
	}
	return result, nil
}

// Remove - drop region i, closing the gap
func (regions Regions) Remove(i int) (Regions, error) {
	if i <= 0 || i >= len(regions) {
		return nil, fault.ErrNumericalOverflow
	}
	shrunk, err := regions.Resize(i, 0)
	if nil != err {
		return nil, err
	}
	return append(shrunk[:i], shrunk[i+1:]...), nil
}

// Renumber - after removing a record from a registry list, indices
// above it move down by one
func (regions Regions) Renumber(kind Kind, removed int) Regions {
	result := regions.clone()
	for i := range result {
		if result[i].Kind == kind && result[i].Index > removed {
			result[i].Index -= 1
		}
	}
	return result
}

// Check - contiguity from zero
func (regions Regions) Check() error {
	next := uint64(0)
	for _, r := range regions {
		if r.Start != next {
			return fault.ErrDeserialization
		}
		end, err := Add(r.Start, r.Length)
		if nil != err {
			return err
		}
		next = end
	}
	return nil
}

func (regions Regions) clone() Regions {
	result := make(Regions, len(regions), len(regions)+1)
	copy(result, regions)
	return result
}
