// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetcore/account"
)

// AppendUint8 - append a single byte
func AppendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

// AppendBool - append a bool as 0x00 or 0x01
func AppendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// AppendUint16 - append a little endian u16
func AppendUint16(buffer []byte, value uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint32 - append a little endian u32
func AppendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint64 - append a little endian u64 (also used for usize)
func AppendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendLength - append a vector or string count
func AppendLength(buffer []byte, length int) []byte {
	return AppendUint32(buffer, uint32(length))
}

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendLength(buffer, len(s))
	return append(buffer, s...)
}

// AppendBytes - append a length prefixed byte slice
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendLength(buffer, len(data))
	return append(buffer, data...)
}

// AppendAddress - append the 32 raw bytes of an address
func AppendAddress(buffer []byte, address account.Address) []byte {
	return append(buffer, address[:]...)
}

// AppendAddresses - append a vector of addresses
func AppendAddresses(buffer []byte, addresses []account.Address) []byte {
	buffer = AppendLength(buffer, len(addresses))
	for _, a := range addresses {
		buffer = AppendAddress(buffer, a)
	}
	return buffer
}

// AppendOption - append the presence flag of an option, the caller
// appends the value itself when present
func AppendOption(buffer []byte, present bool) []byte {
	return AppendBool(buffer, present)
}

// AppendOptionalUint32 - append Option<u32>
func AppendOptionalUint32(buffer []byte, value *uint32) []byte {
	if nil == value {
		return AppendOption(buffer, false)
	}
	buffer = AppendOption(buffer, true)
	return AppendUint32(buffer, *value)
}

// AppendOptionalUint64 - append Option<u64>
func AppendOptionalUint64(buffer []byte, value *uint64) []byte {
	if nil == value {
		return AppendOption(buffer, false)
	}
	buffer = AppendOption(buffer, true)
	return AppendUint64(buffer, *value)
}

// AppendOptionalString - append Option<string>
func AppendOptionalString(buffer []byte, value *string) []byte {
	if nil == value {
		return AppendOption(buffer, false)
	}
	buffer = AppendOption(buffer, true)
	return AppendString(buffer, *value)
}
