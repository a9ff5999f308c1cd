// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/registry"
)

// Engine - evaluates operations against the plugins of a cell
type Engine struct {
	// plugin types in the order their checks are folded in, types not
	// listed follow in ascending tag order; nil means ascending order
	Order []plugin.Type
}

// Outcome - the result of an allowed operation
type Outcome struct {
	ForceApproved bool                      `json:"forceApproved"`
	Listeners     []registry.WrappedAdapter `json:"listeners"`
}

// ValidateAsset - decide an operation on an asset
func (e *Engine) ValidateAsset(op plugin.Operation, ctx *Context) (*Outcome, error) {
	t := &tally{}
	if t.add(validateAssetCore(op, ctx)) || t.add(validateParent(op, ctx)) {
		return &Outcome{ForceApproved: true}, nil
	}
	checks := merge(ctx.CollectionPlugins, ctx.Plugins)
	adapters := mergeAdapters(ctx.CollectionAdapters, ctx.Adapters)
	return e.evaluate(op, ctx, t, checks, adapters)
}

// ValidateCollection - decide an operation on a collection
func (e *Engine) ValidateCollection(op plugin.Operation, ctx *Context) (*Outcome, error) {
	t := &tally{}
	if t.add(validateCollectionCore(op, ctx)) {
		return &Outcome{ForceApproved: true}, nil
	}
	checks := merge(ctx.CollectionPlugins, nil)
	adapters := mergeAdapters(ctx.CollectionAdapters, nil)
	return e.evaluate(op, ctx, t, checks, adapters)
}

func (e *Engine) evaluate(op plugin.Operation, ctx *Context, t *tally, checks map[plugin.Type]registry.Wrapped, adapters []registry.WrappedAdapter) (*Outcome, error) {

	// a plugin being added is consulted about itself
	if plugin.AddPlugin == op && nil != ctx.Target {
		tp := ctx.Target.Type()
		if _, ok := checks[tp]; !ok {
			checks[tp] = registry.Wrapped{
				Record: registry.Record{Type: tp, Authority: ctx.TargetAuthority},
				Plugin: ctx.Target,
			}
		}
	}

	for _, tp := range e.order() {
		w, ok := checks[tp]
		if !ok || plugin.CheckNone == tp.Check(op) {
			continue
		}
		r, err := plugin.Validate(w.Plugin, op, ctx.hook(w.Record.Authority))
		if nil != err {
			return nil, err
		}
		if plugin.UpdatePlugin == op {
			r = CombineUpdatePlugin(updateBase(ctx, w), r)
		}
		if t.add(r) {
			return &Outcome{ForceApproved: true}, nil
		}
	}

	outcome := &Outcome{}
	event, ok := op.Event()
	if ok {
		for _, w := range adapters {
			check, ok := w.Record.LifecycleChecks.Find(event)
			if !ok {
				continue
			}
			switch a := w.Adapter.(type) {
			case *plugin.LifecycleHook:
				if check.Has(plugin.CheckCanListen) {
					outcome.Listeners = append(outcome.Listeners, w)
				}
			case *plugin.Oracle:
				if nil == ctx.Accounts {
					return nil, fault.ErrIncorrectAccount
				}
				data, err := ctx.Accounts.Data(a.BaseAddress)
				if nil != err {
					return nil, err
				}
				r, err := a.Validate(event, check, data)
				if nil != err {
					return nil, err
				}
				if t.add(r) {
					return &Outcome{ForceApproved: true}, nil
				}
			}
		}
	}

	if err := t.err(); nil != err {
		return nil, err
	}
	return outcome, nil
}

// the plugin being updated approves a caller holding its authority
func updateBase(ctx *Context, w registry.Wrapped) plugin.ValidationResult {
	if nil != ctx.Target && ctx.Target.Type() == w.Record.Type && ctx.Roles.Contains(w.Record.Authority) {
		return plugin.Approved
	}
	return plugin.Pass
}

func (e *Engine) order() []plugin.Type {
	order := make([]plugin.Type, 0, plugin.NumberOfTypes)
	seen := [plugin.NumberOfTypes]bool{}
	if nil != e {
		for _, tp := range e.Order {
			if tp < plugin.NumberOfTypes && !seen[tp] {
				seen[tp] = true
				order = append(order, tp)
			}
		}
	}
	for tp := plugin.Type(0); tp < plugin.NumberOfTypes; tp += 1 {
		if !seen[tp] {
			order = append(order, tp)
		}
	}
	return order
}

// asset plugins override collection plugins of the same type
func merge(collection []registry.Wrapped, asset []registry.Wrapped) map[plugin.Type]registry.Wrapped {
	checks := make(map[plugin.Type]registry.Wrapped, len(collection)+len(asset))
	for _, w := range collection {
		checks[w.Record.Type] = w
	}
	for _, w := range asset {
		checks[w.Record.Type] = w
	}
	return checks
}

// asset adapters override collection adapters with the same key
func mergeAdapters(collection []registry.WrappedAdapter, asset []registry.WrappedAdapter) []registry.WrappedAdapter {
	adapters := make([]registry.WrappedAdapter, 0, len(collection)+len(asset))
	adapters = append(adapters, collection...)
next:
	for _, w := range asset {
		key := w.Adapter.Key()
		for i := range adapters {
			if key.Equal(adapters[i].Adapter.Key()) {
				adapters[i] = w
				continue next
			}
		}
		adapters = append(adapters, w)
	}
	return adapters
}
