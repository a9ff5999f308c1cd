// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// Event - lifecycle event an adapter can be attached to
type Event uint8

// events, values are the stored tags
const (
	CreateEvent   Event = 0
	TransferEvent Event = 1
	BurnEvent     Event = 2
	UpdateEvent   Event = 3
)

// ExternalCheck - bit flags of what an adapter may do for an event
type ExternalCheck uint32

// flags
const (
	CheckCanListen  ExternalCheck = 1
	CheckCanApprove ExternalCheck = 2
	CheckCanReject  ExternalCheck = 4
)

// Has - true if all flags in f are set
func (c ExternalCheck) Has(f ExternalCheck) bool {
	return f == c&f
}

// LifecycleCheck - an event and the adapter's flags for it
type LifecycleCheck struct {
	Event Event         `json:"event"`
	Check ExternalCheck `json:"check"`
}

// LifecycleChecks - list held in an external registry record
type LifecycleChecks []LifecycleCheck

// Find - flags for an event
func (checks LifecycleChecks) Find(event Event) (ExternalCheck, bool) {
	for _, c := range checks {
		if c.Event == event {
			return c.Check, true
		}
	}
	return 0, false
}

// PackLifecycleChecks - append Option<Vec<(event, check)>>
func PackLifecycleChecks(buffer []byte, checks LifecycleChecks) []byte {
	if nil == checks {
		return wire.AppendOption(buffer, false)
	}
	buffer = wire.AppendOption(buffer, true)
	buffer = wire.AppendLength(buffer, len(checks))
	for _, c := range checks {
		buffer = wire.AppendUint8(buffer, uint8(c.Event))
		buffer = wire.AppendUint32(buffer, uint32(c.Check))
	}
	return buffer
}

// UnpackLifecycleChecks - read Option<Vec<(event, check)>>
func UnpackLifecycleChecks(u *wire.Unpacker) LifecycleChecks {
	if !u.ReadOption() {
		return nil
	}
	count := u.ReadLength(5)
	checks := make(LifecycleChecks, 0, count)
	for i := 0; i < count; i += 1 {
		event := Event(u.ReadUint8())
		if event > UpdateEvent {
			u.Fail(fault.ErrDeserialization)
		}
		checks = append(checks, LifecycleCheck{
			Event: event,
			Check: ExternalCheck(u.ReadUint32()),
		})
	}
	return checks
}

// CheckAdapter - the lifecycle checks an adapter may carry
//
// oracles may only reject, app data has no checks and lifecycle hooks
// may only listen since no external program is run
func CheckAdapter(a Adapter, checks LifecycleChecks) error {
	seen := make(map[Event]struct{}, len(checks))
	for _, c := range checks {
		if c.Event > UpdateEvent {
			return fault.ErrInvalidPluginSetting
		}
		if _, ok := seen[c.Event]; ok {
			return fault.ErrInvalidPluginSetting
		}
		seen[c.Event] = struct{}{}

		switch a.AdapterType() {
		case OracleAdapter:
			if CheckCanReject != c.Check {
				return fault.ErrUnsupportedExternalCheck
			}
		case LifecycleHookAdapter:
			if CheckCanListen != c.Check {
				return fault.ErrNotAvailable
			}
		default:
			return fault.ErrUnsupportedExternalCheck
		}
	}
	if OracleAdapter == a.AdapterType() && 0 == len(checks) {
		return fault.ErrInvalidPluginSetting
	}
	return nil
}
