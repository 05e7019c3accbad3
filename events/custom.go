// Copyright (c) 2025, Tessera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
)

// CustomEvent is a user-specified event that can be sent and received
// as needed, and contains a Data field for arbitrary data, and an
// optional position.
type CustomEvent struct {
	Base

	// PosAvail is set to true if the position is available.
	PosAvail bool
}

// NewCustom returns a new [CustomEvent] with the given data payload.
func NewCustom(data any) *CustomEvent {
	ev := &CustomEvent{}
	ev.Typ = Custom
	ev.SetUnique()
	ev.Data = data
	return ev
}

func (ce *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ce.Type(), ce.Data, ce.Time().Format("04:05"))
}

func (ce *CustomEvent) HasPos() bool {
	return ce.PosAvail
}
