// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
)

// Cell - one storage cell
type Cell struct {
	Address account.Address `json:"address"`
	Data    []byte          `json:"data"`
	Balance uint64          `json:"balance,string"`
}

// NewCell - an empty cell
func NewCell(address account.Address, balance uint64) *Cell {
	return &Cell{
		Address: address,
		Balance: balance,
	}
}

// Size - current length of the buffer
func (cell *Cell) Size() uint64 {
	return uint64(len(cell.Data))
}

// Clone - deep copy, so work can be discarded on error
func (cell *Cell) Clone() *Cell {
	if nil == cell {
		return nil
	}
	data := make([]byte, len(cell.Data))
	copy(data, cell.Data)
	return &Cell{
		Address: cell.Address,
		Data:    data,
		Balance: cell.Balance,
	}
}

// CheckResize - the error Resize would return, without changing
// either cell
func CheckResize(cell *Cell, payer *Cell, newSize uint64, rent Rent) error {
	_, _, err := checkResize(cell, payer, newSize, rent)
	return err
}

// Resize - grow or shrink the buffer to newSize bytes
//
// the balance is topped up from the payer when the new size needs more
// and any excess is returned to the payer when it needs less; a nil
// payer cannot fund growth but shrinking still succeeds, keeping the
// excess in the cell.  A cell cannot pay for itself.
func Resize(cell *Cell, payer *Cell, newSize uint64, rent Rent) error {
	payer, required, err := checkResize(cell, payer, newSize, rent)
	if nil != err {
		return err
	}

	if required > cell.Balance {
		payer.Balance -= required - cell.Balance
		cell.Balance = required
	} else if required < cell.Balance && nil != payer {
		payer.Balance += cell.Balance - required
		cell.Balance = required
	}

	size := uint64(len(cell.Data))
	switch {
	case newSize > size:
		cell.Data = append(cell.Data, make([]byte, newSize-size)...)
	case newSize < size:
		// cap is clipped so a later append cannot see the released bytes
		cell.Data = cell.Data[:newSize:newSize]
	}
	return nil
}

// Shift - copy length bytes starting at from so they start at to
//
// the ranges may overlap
func Shift(cell *Cell, from uint64, to uint64, length uint64) error {
	size := cell.Size()
	fromEnd, err := Add(from, length)
	if nil != err {
		return err
	}
	toEnd, err := Add(to, length)
	if nil != err {
		return err
	}
	if fromEnd > size || toEnd > size {
		return fault.ErrNumericalOverflow
	}
	copy(cell.Data[to:toEnd], cell.Data[from:fromEnd])
	return nil
}

// Splice - replace [start, start+oldLength) by a range of newLength
// bytes, moving [start+oldLength, end) to follow it
//
// bytes after end are not preserved; the caller rewrites them (they
// hold the plugin header and registry).  Growth resizes before moving,
// shrinking moves before resizing, so no byte is ever read from or
// written to storage outside the buffer.  The new range is zero filled
// when it is longer than the old one.
func Splice(cell *Cell, payer *Cell, rent Rent, start uint64, oldLength uint64, newLength uint64, end uint64) error {
	oldEnd, err := Add(start, oldLength)
	if nil != err {
		return err
	}
	if oldEnd > end || end > cell.Size() {
		return fault.ErrNumericalOverflow
	}
	newEnd, err := Add(start, newLength)
	if nil != err {
		return err
	}
	tail := end - oldEnd

	switch {
	case newLength > oldLength:
		grow := newLength - oldLength
		newSize, err := Add(cell.Size(), grow)
		if nil != err {
			return err
		}
		if err := Resize(cell, payer, newSize, rent); nil != err {
			return err
		}
		if err := Shift(cell, oldEnd, newEnd, tail); nil != err {
			return err
		}
		zero(cell.Data[start:newEnd])

	case newLength < oldLength:
		shrink := oldLength - newLength
		newSize, err := Sub(cell.Size(), shrink)
		if nil != err {
			return err
		}
		if err := Shift(cell, oldEnd, newEnd, tail); nil != err {
			return err
		}
		if err := Resize(cell, payer, newSize, rent); nil != err {
			return err
		}
	}
	return nil
}

// every failure of Resize, before anything is written
func checkResize(cell *Cell, payer *Cell, newSize uint64, rent Rent) (*Cell, uint64, error) {
	if newSize > maximumCellSize {
		return nil, 0, fault.ErrNumericalOverflow
	}
	payer = fundingPayer(cell, payer)

	required := rent.MinimumBalance(newSize)
	if required > cell.Balance {
		if nil == payer || payer.Balance < required-cell.Balance {
			return nil, 0, fault.ErrInsufficientFunds
		}
	} else if required < cell.Balance && nil != payer {
		if _, err := Add(payer.Balance, cell.Balance-required); nil != err {
			return nil, 0, err
		}
	}
	return payer, required, nil
}

// a payer holding the cell's own address is no payer
func fundingPayer(cell *Cell, payer *Cell) *Cell {
	if nil == payer || payer == cell || payer.Address == cell.Address {
		return nil
	}
	return payer
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
