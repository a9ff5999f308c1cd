// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/wire"
)

// HeaderLength - bytes in a stored header
const HeaderLength = 9

// smallest stored forms, used to bound vector counts
const (
	minimumRecordLength         = 1 + 1 + 8
	minimumExternalRecordLength = 1 + 1 + 1 + 8 + 1 + 1
)

// Header - pointer to the registry
type Header struct {
	RegistryOffset uint64 `json:"registryOffset"`
}

// Pack - stored form of the header
func (h *Header) Pack() []byte {
	buffer := wire.AppendUint8(nil, uint8(asset.PluginHeaderV1))
	return wire.AppendUint64(buffer, h.RegistryOffset)
}

func unpackHeader(data []byte) (*Header, error) {
	u := wire.NewUnpacker(data)
	if asset.PluginHeaderV1 != asset.Key(u.ReadUint8()) {
		return nil, fault.ErrUnexpectedKey
	}
	h := &Header{RegistryOffset: u.ReadUint64()}
	if nil != u.Err() {
		return nil, fault.ErrDeserialization
	}
	return h, nil
}

// Record - where a plugin lives and who manages it
type Record struct {
	Type      plugin.Type         `json:"type"`
	Authority authority.Authority `json:"authority"`
	Offset    uint64              `json:"offset"`
}

// ExternalRecord - where an external adapter lives
type ExternalRecord struct {
	Type            plugin.AdapterType     `json:"type"`
	Authority       authority.Authority    `json:"authority"`
	LifecycleChecks plugin.LifecycleChecks `json:"lifecycleChecks,omitempty"`
	Offset          uint64                 `json:"offset"`
	DataOffset      *uint64                `json:"dataOffset,omitempty"`
	DataLen         *uint64                `json:"dataLen,omitempty"`
}

// Registry - all plugin and adapter records of a cell
type Registry struct {
	Records  []Record         `json:"registry"`
	External []ExternalRecord `json:"externalRegistry"`
}

// Pack - stored form of the registry
func (r *Registry) Pack() []byte {
	buffer := wire.AppendUint8(nil, uint8(asset.PluginRegistryV1))
	buffer = wire.AppendLength(buffer, len(r.Records))
	for _, record := range r.Records {
		buffer = wire.AppendUint8(buffer, uint8(record.Type))
		buffer = record.Authority.Pack(buffer)
		buffer = wire.AppendUint64(buffer, record.Offset)
	}
	buffer = wire.AppendLength(buffer, len(r.External))
	for _, record := range r.External {
		buffer = wire.AppendUint8(buffer, uint8(record.Type))
		buffer = record.Authority.Pack(buffer)
		buffer = plugin.PackLifecycleChecks(buffer, record.LifecycleChecks)
		buffer = wire.AppendUint64(buffer, record.Offset)
		buffer = wire.AppendOptionalUint64(buffer, record.DataOffset)
		buffer = wire.AppendOptionalUint64(buffer, record.DataLen)
	}
	return buffer
}

// the registry is always the last thing in a cell
func unpackRegistry(data []byte) (*Registry, error) {
	u := wire.NewUnpacker(data)
	if asset.PluginRegistryV1 != asset.Key(u.ReadUint8()) {
		return nil, fault.ErrUnexpectedKey
	}

	r := &Registry{}
	count := u.ReadLength(minimumRecordLength)
	r.Records = make([]Record, 0, count)
	for i := 0; i < count; i += 1 {
		t := plugin.Type(u.ReadUint8())
		if t >= plugin.NumberOfTypes {
			u.Fail(fault.ErrDeserialization)
		}
		r.Records = append(r.Records, Record{
			Type:      t,
			Authority: authority.Unpack(u),
			Offset:    u.ReadUint64(),
		})
	}

	count = u.ReadLength(minimumExternalRecordLength)
	r.External = make([]ExternalRecord, 0, count)
	for i := 0; i < count; i += 1 {
		t := plugin.AdapterType(u.ReadUint8())
		if t > plugin.AppDataAdapter {
			u.Fail(fault.ErrDeserialization)
		}
		r.External = append(r.External, ExternalRecord{
			Type:            t,
			Authority:       authority.Unpack(u),
			LifecycleChecks: plugin.UnpackLifecycleChecks(u),
			Offset:          u.ReadUint64(),
			DataOffset:      u.ReadOptionalUint64(),
			DataLen:         u.ReadOptionalUint64(),
		})
	}

	if nil != u.Err() {
		return nil, fault.ErrDeserialization
	}
	if 0 != u.Remaining() {
		return nil, fault.ErrDeserialization
	}
	return r, nil
}

// clone - deep enough copy that records can be edited
func (r *Registry) clone() *Registry {
	c := &Registry{
		Records:  make([]Record, len(r.Records)),
		External: make([]ExternalRecord, len(r.External)),
	}
	copy(c.Records, r.Records)
	copy(c.External, r.External)
	return c
}

// find - index of the record of a plugin type
func (r *Registry) find(t plugin.Type) (int, bool) {
	for i, record := range r.Records {
		if t == record.Type {
			return i, true
		}
	}
	return 0, false
}
