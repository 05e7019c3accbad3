// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"maps"
	"reflect"

	"tessera.dev/tessera/base/reflectx"
	"tessera.dev/tessera/tree"
	"tessera.dev/tessera/types"
)

// Config describes a component to create declaratively: a registered
// type, an optional name, property values, and items for containers.
// Containers accept Config values anywhere they accept components
// (see [Container.Add]); they resolve them through the types registry,
// shallow-merging their [Container.Defaults] into Props without
// overwriting keys the config sets itself.
type Config struct {

	// Type is the name of the component type to create, either the
	// long name it is registered under in the types registry
	// (e.g., "tessera.dev/tessera/core.Panel") or its short ID name
	// (e.g., "panel").
	Type string

	// Name is the name for the new component. An empty name gets the
	// standard automatic naming when the component is added.
	Name string

	// Props are field values to set on the new component, keyed by
	// dot-separated field path (e.g., "Styles.Size.X").
	Props map[string]any

	// Items are configs for components to add to the new component,
	// which must be a container type when they are present.
	Items []Config
}

// resolveConfig constructs the component a [Config] describes. An
// unregistered or non-component type is a fatal configuration error
// and panics; bad property keys or values are logged and skipped.
func (ct *Container) resolveConfig(cfg Config) Component {
	typ := configType(cfg.Type)
	if typ == nil {
		panic("core: config type not found in the types registry: " + cfg.Type)
	}
	n := tree.NewOfType(typ)
	if n == nil {
		panic("core: config type cannot be instantiated: " + cfg.Type)
	}
	tree.InitNode(n)
	c, ok := n.(Component)
	if !ok {
		panic("core: config type is not a component: " + cfg.Type)
	}
	cb := c.AsComponent()
	if cfg.Name != "" {
		cb.SetName(cfg.Name)
	}
	props := cfg.Props
	if len(ct.Defaults) > 0 {
		merged := maps.Clone(ct.Defaults)
		maps.Copy(merged, props)
		props = merged
	}
	for key, v := range props {
		f, err := reflectx.FieldByPath(reflect.ValueOf(c), key)
		if err != nil {
			slog.Error("core: invalid config property path", "type", cfg.Type, "path", key, "err", err)
			continue
		}
		if err := reflectx.SetFieldValue(f, v); err != nil {
			slog.Error("core: cannot set config property", "type", cfg.Type, "path", key, "err", err)
		}
	}
	if len(cfg.Items) > 0 {
		cct := AsContainer(n)
		if cct == nil {
			panic("core: config has items but its type is not a container: " + cfg.Type)
		}
		for _, sub := range cfg.Items {
			cct.Add(sub)
		}
	}
	return c
}

// configType resolves a [Config.Type] in the types registry, by long
// name first and short ID name second.
func configType(name string) *types.Type {
	if typ := types.TypeByName(name); typ != nil {
		return typ
	}
	return types.TypeByIDName(name)
}
