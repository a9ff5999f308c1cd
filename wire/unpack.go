// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
)

// Unpacker - read cursor over a packed record
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading at the beginning of buffer
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Offset - number of bytes consumed so far
func (u *Unpacker) Offset() int {
	return u.n
}

// Remaining - number of unread bytes
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Err - the first error encountered, if any
func (u *Unpacker) Err() error {
	return u.err
}

// Fail - record an error found by the caller while decoding
func (u *Unpacker) Fail(err error) {
	if nil == u.err {
		u.err = err
	}
}

// take the next n bytes, nil after any error
func (u *Unpacker) take(n int) []byte {
	if nil != u.err {
		return nil
	}
	if n < 0 || u.n+n > len(u.buffer) {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	b := u.buffer[u.n : u.n+n]
	u.n += n
	return b
}

// ReadUint8 - read a single byte
func (u *Unpacker) ReadUint8() uint8 {
	b := u.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// ReadBool - read 0x00 or 0x01, anything else is an error
func (u *Unpacker) ReadBool() bool {
	switch u.ReadUint8() {
	case 0:
		return false
	case 1:
		return true
	default:
		u.Fail(fault.ErrDeserialization)
		return false
	}
}

// ReadUint16 - read a little endian u16
func (u *Unpacker) ReadUint16() uint16 {
	b := u.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// ReadUint32 - read a little endian u32
func (u *Unpacker) ReadUint32() uint32 {
	b := u.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64 - read a little endian u64
func (u *Unpacker) ReadUint64() uint64 {
	b := u.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadLength - read a vector count, each item occupying at least
// minimumItemSize bytes; counts that cannot fit the remaining buffer
// are rejected before any allocation
func (u *Unpacker) ReadLength(minimumItemSize int) int {
	count := int(u.ReadUint32())
	if nil != u.err {
		return 0
	}
	if minimumItemSize < 1 {
		minimumItemSize = 1
	}
	if count > u.Remaining()/minimumItemSize {
		u.err = fault.ErrTruncatedRecord
		return 0
	}
	return count
}

// ReadBytes - read a length prefixed byte slice (copied)
func (u *Unpacker) ReadBytes() []byte {
	length := u.ReadLength(1)
	b := u.take(length)
	if nil == b {
		return nil
	}
	result := make([]byte, length)
	copy(result, b)
	return result
}

// ReadString - read a length prefixed UTF-8 string
func (u *Unpacker) ReadString() string {
	length := u.ReadLength(1)
	b := u.take(length)
	if nil == b {
		return ""
	}
	if !utf8.Valid(b) {
		u.Fail(fault.ErrDeserialization)
		return ""
	}
	return string(b)
}

// ReadAddress - read 32 raw bytes
func (u *Unpacker) ReadAddress() account.Address {
	var address account.Address
	b := u.take(account.AddressLength)
	if nil != b {
		copy(address[:], b)
	}
	return address
}

// ReadFixed - fill b with the next len(b) raw bytes
func (u *Unpacker) ReadFixed(b []byte) {
	if s := u.take(len(b)); nil != s {
		copy(b, s)
	}
}

// ReadAddresses - read a vector of addresses
func (u *Unpacker) ReadAddresses() []account.Address {
	count := u.ReadLength(account.AddressLength)
	addresses := make([]account.Address, 0, count)
	for i := 0; i < count && nil == u.err; i += 1 {
		addresses = append(addresses, u.ReadAddress())
	}
	return addresses
}

// ReadOption - read the presence flag of an option
func (u *Unpacker) ReadOption() bool {
	return u.ReadBool()
}

// ReadOptionalUint32 - read Option<u32>
func (u *Unpacker) ReadOptionalUint32() *uint32 {
	if !u.ReadOption() {
		return nil
	}
	v := u.ReadUint32()
	return &v
}

// ReadOptionalUint64 - read Option<u64>
func (u *Unpacker) ReadOptionalUint64() *uint64 {
	if !u.ReadOption() {
		return nil
	}
	v := u.ReadUint64()
	return &v
}

// ReadOptionalString - read Option<string>
func (u *Unpacker) ReadOptionalString() *string {
	if !u.ReadOption() {
		return nil
	}
	v := u.ReadString()
	return &v
}
