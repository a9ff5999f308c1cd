// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/account"
)

type keypairResult struct {
	Address account.Address `json:"address"`
	Seed    string          `json:"seed"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var keypair *account.Keypair
	var err error
	if seed := c.String("seed"); "" != seed {
		keypair, err = account.KeypairFromSeed(seed)
	} else {
		keypair, err = account.NewKeypair(rand.Reader)
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", keypair.Address)
	}

	return printJson(m.w, keypairResult{
		Address: keypair.Address,
		Seed:    keypair.Seed(),
	})
}
