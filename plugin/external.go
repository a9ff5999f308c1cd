// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"strings"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// AdapterType - external plugin adapter tag
type AdapterType uint8

// adapter types, values are the stored tags
const (
	LifecycleHookAdapter AdapterType = 0
	OracleAdapter        AdapterType = 1
	AppDataAdapter       AdapterType = 2
)

var adapterNames = map[AdapterType]string{
	LifecycleHookAdapter: "LifecycleHook",
	OracleAdapter:        "Oracle",
	AppDataAdapter:       "AppData",
}

// String - name of an adapter type
func (t AdapterType) String() string {
	if name, ok := adapterNames[t]; ok {
		return name
	}
	return "*unknown*"
}

// MarshalText - type name for JSON
func (t AdapterType) MarshalText() ([]byte, error) {
	if _, ok := adapterNames[t]; !ok {
		return nil, fault.ErrInvalidPlugin
	}
	return []byte(t.String()), nil
}

// UnmarshalText - type from its name
func (t *AdapterType) UnmarshalText(s []byte) error {
	for k, name := range adapterNames {
		if strings.EqualFold(name, string(s)) {
			*t = k
			return nil
		}
	}
	return fault.ErrInvalidPlugin
}

// Schema - format of an adapter's data section
type Schema uint8

// schemas, values are the stored tags
const (
	SchemaBinary  Schema = 0
	SchemaJSON    Schema = 1
	SchemaMsgPack Schema = 2
)

// AdapterKey - compound identity of an adapter
//
// lifecycle hooks and oracles are keyed by an address, app data by
// its data authority
type AdapterKey struct {
	Type      AdapterType         `json:"type"`
	Address   account.Address     `json:"address"`
	Authority authority.Authority `json:"authority"`
}

// Equal - same adapter identity
func (k AdapterKey) Equal(other AdapterKey) bool {
	if k.Type != other.Type {
		return false
	}
	if AppDataAdapter == k.Type {
		return k.Authority.Equal(other.Authority)
	}
	return k.Address == other.Address
}

// Adapter - one of the external plugin adapter types
type Adapter interface {
	AdapterType() AdapterType
	Key() AdapterKey

	// who may write the data section, false if there is none
	DataAuthority() (authority.Authority, bool)

	packData(buffer []byte) []byte
}

// LifecycleHook - an external program notified of lifecycle events
type LifecycleHook struct {
	HookedProgram     account.Address      `json:"hookedProgram"`
	DataAuthorityRole *authority.Authority `json:"dataAuthority,omitempty"`
	Schema            Schema               `json:"schema"`
}

// AdapterType - the adapter tag
func (h *LifecycleHook) AdapterType() AdapterType {
	return LifecycleHookAdapter
}

// Key - keyed by the hooked program
func (h *LifecycleHook) Key() AdapterKey {
	return AdapterKey{Type: LifecycleHookAdapter, Address: h.HookedProgram}
}

// DataAuthority - a data section exists only with a data authority
func (h *LifecycleHook) DataAuthority() (authority.Authority, bool) {
	if nil == h.DataAuthorityRole {
		return authority.NoAuthority, false
	}
	return *h.DataAuthorityRole, true
}

func (h *LifecycleHook) packData(buffer []byte) []byte {
	buffer = wire.AppendAddress(buffer, h.HookedProgram)
	buffer = authority.PackOptional(buffer, h.DataAuthorityRole)
	return wire.AppendUint8(buffer, uint8(h.Schema))
}

// AppData - a data section written by its data authority
type AppData struct {
	DataAuthorityRole authority.Authority `json:"dataAuthority"`
	Schema            Schema              `json:"schema"`
}

// AdapterType - the adapter tag
func (a *AppData) AdapterType() AdapterType {
	return AppDataAdapter
}

// Key - keyed by the data authority
func (a *AppData) Key() AdapterKey {
	return AdapterKey{Type: AppDataAdapter, Authority: a.DataAuthorityRole}
}

// DataAuthority - always has a data section
func (a *AppData) DataAuthority() (authority.Authority, bool) {
	return a.DataAuthorityRole, true
}

func (a *AppData) packData(buffer []byte) []byte {
	buffer = a.DataAuthorityRole.Pack(buffer)
	return wire.AppendUint8(buffer, uint8(a.Schema))
}

// PackAdapter - stored form: adapter tag followed by its fields
func PackAdapter(a Adapter) []byte {
	buffer := wire.AppendUint8(nil, uint8(a.AdapterType()))
	return a.packData(buffer)
}

// UnpackAdapter - read an adapter from the start of a buffer
func UnpackAdapter(data []byte) (Adapter, uint64, error) {
	u := wire.NewUnpacker(data)
	t := AdapterType(u.ReadUint8())
	var a Adapter
	switch t {
	case LifecycleHookAdapter:
		a = &LifecycleHook{
			HookedProgram:     u.ReadAddress(),
			DataAuthorityRole: authority.UnpackOptional(u),
			Schema:            unpackSchema(u),
		}
	case OracleAdapter:
		a = &Oracle{
			BaseAddress:   u.ReadAddress(),
			ResultsOffset: unpackResultsOffset(u),
		}
	case AppDataAdapter:
		a = &AppData{
			DataAuthorityRole: authority.Unpack(u),
			Schema:            unpackSchema(u),
		}
	default:
		u.Fail(fault.ErrDeserialization)
	}
	if nil != u.Err() {
		return nil, 0, fault.ErrDeserialization
	}
	return a, uint64(u.Offset()), nil
}

func unpackSchema(u *wire.Unpacker) Schema {
	s := Schema(u.ReadUint8())
	if s > SchemaMsgPack {
		u.Fail(fault.ErrDeserialization)
	}
	return s
}
