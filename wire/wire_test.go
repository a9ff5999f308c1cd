// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

func TestPackLayout(t *testing.T) {
	var address account.Address
	address[0] = 0xaa
	address[31] = 0xbb
	n32 := uint32(7)

	b := wire.AppendUint8(nil, 0x05)
	b = wire.AppendBool(b, true)
	b = wire.AppendUint16(b, 0x0102)
	b = wire.AppendUint32(b, 0x03040506)
	b = wire.AppendUint64(b, 0x0708)
	b = wire.AppendString(b, "ab")
	b = wire.AppendOptionalUint32(b, nil)
	b = wire.AppendOptionalUint32(b, &n32)
	b = wire.AppendAddress(b, address)

	expected := []byte{
		0x05,
		0x01,
		0x02, 0x01,
		0x06, 0x05, 0x04, 0x03,
		0x08, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 'a', 'b',
		0x00,
		0x01, 0x07, 0x00, 0x00, 0x00,
	}
	expected = append(expected, address[:]...)
	assert.Equal(t, expected, b, "packed bytes")

	u := wire.NewUnpacker(b)
	assert.Equal(t, uint8(5), u.ReadUint8())
	assert.True(t, u.ReadBool())
	assert.Equal(t, uint16(0x0102), u.ReadUint16())
	assert.Equal(t, uint32(0x03040506), u.ReadUint32())
	assert.Equal(t, uint64(0x0708), u.ReadUint64())
	assert.Equal(t, "ab", u.ReadString())
	assert.Nil(t, u.ReadOptionalUint32())
	assert.Equal(t, &n32, u.ReadOptionalUint32())
	assert.Equal(t, address, u.ReadAddress())
	assert.Nil(t, u.Err(), "unpack error")
	assert.Equal(t, 0, u.Remaining(), "all consumed")
	assert.Equal(t, len(b), u.Offset(), "offset")
}

func TestUnpackTruncated(t *testing.T) {
	b := wire.AppendString(nil, "hello")

	for i := 0; i < len(b); i += 1 {
		u := wire.NewUnpacker(b[:i])
		s := u.ReadString()
		assert.Equal(t, "", s, "%d: string from truncated record", i)
		assert.Equal(t, fault.ErrTruncatedRecord, u.Err(), "%d: error", i)

		// sticky
		assert.Equal(t, uint64(0), u.ReadUint64(), "%d: read after error", i)
	}
}

func TestUnpackHugeCount(t *testing.T) {
	b := wire.AppendUint32(nil, 0xffffffff)
	u := wire.NewUnpacker(b)
	addresses := u.ReadAddresses()
	assert.Equal(t, 0, len(addresses), "no items")
	assert.Equal(t, fault.ErrTruncatedRecord, u.Err(), "count larger than buffer")
}

func TestUnpackBadBool(t *testing.T) {
	u := wire.NewUnpacker([]byte{0x02})
	assert.False(t, u.ReadBool())
	assert.Equal(t, fault.ErrDeserialization, u.Err(), "bool out of range")
}

func TestUnpackInvalidUTF8(t *testing.T) {
	b := wire.AppendString(nil, "ok\xff")
	u := wire.NewUnpacker(b)
	assert.Equal(t, "", u.ReadString(), "rejected string")
	assert.Equal(t, fault.ErrDeserialization, u.Err(), "not utf-8")

	u = wire.NewUnpacker(wire.AppendString(nil, "héllo"))
	assert.Equal(t, "héllo", u.ReadString(), "multibyte string")
	assert.Nil(t, u.Err(), "valid utf-8")
}
