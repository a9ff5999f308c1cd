// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"strings"

	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
)

// Type - plugin tag
//
// the numeric order is the order in which plugins are consulted by
// the lifecycle checks
type Type uint8

// plugin types, values are the stored tags
const (
	Royalties                 Type = 0
	FreezeDelegate            Type = 1
	BurnDelegate              Type = 2
	TransferDelegate          Type = 3
	UpdateDelegate            Type = 4
	PermanentFreezeDelegate   Type = 5
	Attributes                Type = 6
	PermanentTransferDelegate Type = 7
	PermanentBurnDelegate     Type = 8
	Edition                   Type = 9
	MasterEdition             Type = 10
	AddBlocker                Type = 11
	ImmutableMetadata         Type = 12

	NumberOfTypes = 13
)

var typeNames = [NumberOfTypes]string{
	"Royalties",
	"FreezeDelegate",
	"BurnDelegate",
	"TransferDelegate",
	"UpdateDelegate",
	"PermanentFreezeDelegate",
	"Attributes",
	"PermanentTransferDelegate",
	"PermanentBurnDelegate",
	"Edition",
	"MasterEdition",
	"AddBlocker",
	"ImmutableMetadata",
}

// String - name of a plugin type
func (t Type) String() string {
	if t >= NumberOfTypes {
		return "*unknown*"
	}
	return typeNames[t]
}

// TypeFromString - case insensitive reverse of String
func TypeFromString(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(name, s) {
			return Type(i), nil
		}
	}
	return 0, fault.ErrInvalidPlugin
}

// MarshalText - type name for JSON
func (t Type) MarshalText() ([]byte, error) {
	if t >= NumberOfTypes {
		return nil, fault.ErrInvalidPlugin
	}
	return []byte(t.String()), nil
}

// UnmarshalText - type from its name
func (t *Type) UnmarshalText(s []byte) error {
	v, err := TypeFromString(string(s))
	if nil != err {
		return err
	}
	*t = v
	return nil
}

// Manager - the role that manages a plugin type by default
func (t Type) Manager() authority.Authority {
	switch t {
	case FreezeDelegate, BurnDelegate, TransferDelegate:
		return authority.OwnerAuthority
	default:
		return authority.UpdateAuthorityRole
	}
}

// IsOwnerManaged - true for plugins the owner controls
func (t Type) IsOwnerManaged() bool {
	return authority.Owner == t.Manager().Kind
}

// IsPermanent - true for plugins that can only be added at creation
func (t Type) IsPermanent() bool {
	switch t {
	case PermanentFreezeDelegate, PermanentTransferDelegate, PermanentBurnDelegate, Edition:
		return true
	default:
		return false
	}
}
