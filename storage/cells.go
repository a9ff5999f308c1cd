// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/layout"
)

// GetCell - read a cell, false if it does not exist
//
// the returned cell is a private copy
func GetCell(address account.Address) (*layout.Cell, bool) {
	balance, data := Pool.Cells.GetNB(address[:])
	if nil == data {
		return nil, false
	}
	cell := layout.NewCell(address, balance)
	cell.Data = make([]byte, len(data))
	copy(cell.Data, data)
	return cell, true
}

// PutCell - store a cell as part of a transaction
func PutCell(trx Transaction, cell *layout.Cell) {
	value := make([]byte, 8, 8+len(cell.Data))
	binary.BigEndian.PutUint64(value, cell.Balance)
	value = append(value, cell.Data...)
	trx.Put(Pool.Cells, cell.Address[:], value)
}

// DeleteCell - remove a cell as part of a transaction
func DeleteCell(trx Transaction, address account.Address) {
	trx.Delete(Pool.Cells, address[:])
}
