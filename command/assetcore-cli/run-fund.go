// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/layout"
)

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	cell, ok := m.database.Cell(address)
	if !ok {
		cell = layout.NewCell(address, 0)
	}
	balance, err := layout.Add(cell.Balance, amount)
	if nil != err {
		return err
	}
	cell.Balance = balance

	batch, err := m.database.Begin()
	if nil != err {
		return err
	}
	batch.PutCell(cell)
	if _, err := batch.Commit(); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "funded: %s  amount: %d\n", address, amount)
	}
	return printJson(m.w, cell)
}
