// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/bitmark-inc/assetcore/fault"
)

// largest buffer a cell may hold
const maximumCellSize = 10 * 1024 * 1024

// Add - checked a + b
func Add(a uint64, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fault.ErrNumericalOverflow
	}
	return a + b, nil
}

// Sub - checked a - b
func Sub(a uint64, b uint64) (uint64, error) {
	if b > a {
		return 0, fault.ErrNumericalOverflow
	}
	return a - b, nil
}

// AddSigned - checked a + delta
func AddSigned(a uint64, delta int64) (uint64, error) {
	if delta >= 0 {
		return Add(a, uint64(delta))
	}
	return Sub(a, uint64(-delta))
}

// Delta - checked signed difference newLength - oldLength
func Delta(oldLength uint64, newLength uint64) (int64, error) {
	if oldLength > math.MaxInt64 || newLength > math.MaxInt64 {
		return 0, fault.ErrNumericalOverflow
	}
	return int64(newLength) - int64(oldLength), nil
}
