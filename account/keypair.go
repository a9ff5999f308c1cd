// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/assetcore/fault"
)

// Keypair - an ed25519 key pair together with its address
type Keypair struct {
	Address    Address            `json:"address"`
	PrivateKey ed25519.PrivateKey `json:"-"`
}

// NewKeypair - generate a fresh key pair from the random source
func NewKeypair(random io.Reader) (*Keypair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return keypairFrom(publicKey, privateKey)
}

// KeypairFromSeed - rebuild a key pair from a 32 byte hex seed
func KeypairFromSeed(seedHex string) (*Keypair, error) {
	seed, err := hex.DecodeString(seedHex)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidAddress
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return keypairFrom(privateKey.Public().(ed25519.PublicKey), privateKey)
}

func keypairFrom(publicKey ed25519.PublicKey, privateKey ed25519.PrivateKey) (*Keypair, error) {
	k := &Keypair{
		PrivateKey: privateKey,
	}
	err := AddressFromBytes(&k.Address, publicKey)
	if nil != err {
		return nil, err
	}
	return k, nil
}

// Seed - hex form of the private key seed
func (k *Keypair) Seed() string {
	return hex.EncodeToString(k.PrivateKey.Seed())
}
