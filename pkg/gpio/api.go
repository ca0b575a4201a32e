// Copyright 2024 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Author Ewout Prangsma
//

// Package gpio contains GPIO handles for the board that pin aliases
// resolve against.
package gpio

import (
	"github.com/pkg/errors"

	"github.com/binkynet/BoardPins/pkg/pins"
)

var (
	// NoPinError is returned when a pin operation is attempted on
	// the empty pin (resolved from `none`).
	NoPinError = errors.New("no pin")
	maskAny    = errors.WithStack
)

// InputPin is the interface satisfied by GPIO input pins.
type InputPin interface {
	Read() (bool, error)
}

// OutputPin is the interface satisfied by GPIO output pins.
type OutputPin interface {
	Write(bool) error
}

// LevelReader is implemented by boards that can report the level
// of a physical pin.
type LevelReader interface {
	Level(pins.PhysicalPin) (bool, error)
}

// LevelWriter is implemented by boards that can drive a physical pin.
type LevelWriter interface {
	SetLevel(pins.PhysicalPin, bool) error
}

// Type of GPIO handle
type Type string

const (
	// TypeVirtual is an in-memory board
	TypeVirtual Type = "virtual"
	// TypeSysfs is a board accessed through the Linux sysfs GPIO interface
	TypeSysfs Type = "sysfs"
)
