// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Renderer is the boundary to the visual layer: given a component, it
// produces and maintains that component's visual representation.
// Containers call it implicitly on add, remove, and layout; the
// framework never inspects what a renderer produces.
type Renderer interface {

	// Mount materializes the visual representation of the given
	// component. It is called once when the component enters a
	// container in a scene using this renderer.
	Mount(c Component)

	// Unmount discards or parks the visual representation of the given
	// component. It is called when the component leaves its container.
	// A detached (not destroyed) component keeps its materialized
	// state so it can be re-mounted cheaply.
	Unmount(c Component)

	// Update refreshes the visual representation of the given
	// component after its geometry or visibility changed.
	Update(c Component)

	// Target returns an addressable element handle for the given
	// container, used to position its children. The handle is opaque
	// to the framework.
	Target(ct *Container) any
}

// NopRenderer is a [Renderer] that does nothing. It is the default
// renderer of a [Scene], letting component trees be built, laid out,
// and tested without a visual layer.
type NopRenderer struct{}

func (NopRenderer) Mount(c Component)        {}
func (NopRenderer) Unmount(c Component)      {}
func (NopRenderer) Update(c Component)       {}
func (NopRenderer) Target(ct *Container) any { return nil }
