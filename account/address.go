// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/assetcore/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - a fixed width identity
type Address [AddressLength]byte

// Zero - the all zero address, never a valid identity
var Zero Address

// AddressFromBytes - convert and validate a byte slice to an address
func AddressFromBytes(address *Address, buffer []byte) error {
	if AddressLength != len(buffer) {
		return fault.ErrInvalidAddress
	}
	copy(address[:], buffer)
	return nil
}

// AddressFromBase58 - decode the base58 text form of an address
func AddressFromBase58(s string) (Address, error) {
	var address Address
	buffer, err := base58.Decode(s)
	if nil != err {
		return address, fault.ErrInvalidAddress
	}
	err = AddressFromBytes(&address, buffer)
	return address, err
}

// IsZero - true if this is the zero address
func (address Address) IsZero() bool {
	return address == Zero
}

// Equal - compare two addresses
func (address Address) Equal(other Address) bool {
	return bytes.Equal(address[:], other[:])
}

// String - base58 for use by the fmt package (for %s)
func (address Address) String() string {
	return base58.Encode(address[:])
}

// GoString - for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + address.String() + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert the base58 JSON form to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

// Scan - read a base58 address for use by the format package scan routines
func (address *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return !(' ' == c || '\t' == c || '\n' == c)
	})
	if nil != err {
		return err
	}
	return address.UnmarshalText(token)
}
