// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/wire"
)

// Attribute - one key/value pair
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AttributeList - Attributes payload
type AttributeList struct {
	hooks
	List []Attribute `json:"attributeList"`
}

// Type - the plugin tag
func (a *AttributeList) Type() Type {
	return Attributes
}

func (a *AttributeList) packData(buffer []byte) []byte {
	buffer = wire.AppendLength(buffer, len(a.List))
	for _, item := range a.List {
		buffer = wire.AppendString(buffer, item.Key)
		buffer = wire.AppendString(buffer, item.Value)
	}
	return buffer
}

func unpackAttributeList(u *wire.Unpacker) Plugin {
	// two empty strings take eight bytes
	count := u.ReadLength(8)
	a := &AttributeList{
		List: make([]Attribute, 0, count),
	}
	for i := 0; i < count; i += 1 {
		a.List = append(a.List, Attribute{
			Key:   u.ReadString(),
			Value: u.ReadString(),
		})
	}
	return a
}

// EditionNumber - Edition payload
type EditionNumber struct {
	hooks
	Number uint32 `json:"number"`
}

// Type - the plugin tag
func (e *EditionNumber) Type() Type {
	return Edition
}

func (e *EditionNumber) packData(buffer []byte) []byte {
	return wire.AppendUint32(buffer, e.Number)
}

// Master - MasterEdition payload
type Master struct {
	hooks
	MaxSupply *uint32 `json:"maxSupply,omitempty"`
	Name      *string `json:"name,omitempty"`
	URI       *string `json:"uri,omitempty"`
}

// Type - the plugin tag
func (m *Master) Type() Type {
	return MasterEdition
}

func (m *Master) packData(buffer []byte) []byte {
	buffer = wire.AppendOptionalUint32(buffer, m.MaxSupply)
	buffer = wire.AppendOptionalString(buffer, m.Name)
	return wire.AppendOptionalString(buffer, m.URI)
}

// Blocker - AddBlocker payload, no further authority managed plugins
type Blocker struct {
	hooks
}

// Type - the plugin tag
func (b *Blocker) Type() Type {
	return AddBlocker
}

func (b *Blocker) packData(buffer []byte) []byte {
	return buffer
}

// ValidateAddPlugin - only owner managed plugins may still be added
func (b *Blocker) ValidateAddPlugin(ctx *Context) (ValidationResult, error) {
	if ctx.targets(AddBlocker) {
		return Pass, nil
	}
	return rejectIf(nil == ctx.Target || !ctx.Target.Type().IsOwnerManaged()), nil
}

// ValidateAddExternalPluginAdapter - no adapters may be added
func (b *Blocker) ValidateAddExternalPluginAdapter(ctx *Context) (ValidationResult, error) {
	return Rejected, nil
}

// Immutable - ImmutableMetadata payload, name and uri are fixed
type Immutable struct {
	hooks
}

// Type - the plugin tag
func (i *Immutable) Type() Type {
	return ImmutableMetadata
}

func (i *Immutable) packData(buffer []byte) []byte {
	return buffer
}

// ValidateUpdate - metadata can no longer change
func (i *Immutable) ValidateUpdate(ctx *Context) (ValidationResult, error) {
	return Rejected, nil
}
