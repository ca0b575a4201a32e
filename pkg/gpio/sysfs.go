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

package gpio

import (
	"strconv"

	"github.com/ecc1/gpio"
	"github.com/pkg/errors"

	"github.com/binkynet/BoardPins/pkg/pins"
)

// SysfsBoard gives access to the board pins through the Linux
// sysfs GPIO interface. Physical pin N maps onto GPIO line Base+N.
type SysfsBoard struct {
	// Base is the number of the GPIO line of pin0.
	Base int
}

var (
	_ pins.GPIO[SysfsPin] = SysfsBoard{}
	_ LevelReader         = SysfsBoard{}
	_ LevelWriter         = SysfsBoard{}
)

// NewSysfsBoard creates a sysfs board with given line offset.
func NewSysfsBoard(base int) (SysfsBoard, error) {
	if base < 0 {
		return SysfsBoard{}, errors.Errorf("invalid GPIO base %d", base)
	}
	return SysfsBoard{Base: base}, nil
}

// Pin returns a descriptor of the given pin. No line is opened.
func (b SysfsBoard) Pin(p pins.PhysicalPin) SysfsPin {
	return SysfsPin{pin: p, line: b.Base + int(p), valid: true}
}

// Level configures the line of the given pin as input and reads it.
func (b SysfsBoard) Level(p pins.PhysicalPin) (bool, error) {
	if err := checkPin(p); err != nil {
		return false, err
	}
	in, err := b.Pin(p).Input(false)
	if err != nil {
		return false, err
	}
	value, err := in.Read()
	if err != nil {
		return false, errors.Wrapf(err, "Read[%s] failed", p)
	}
	return value, nil
}

// SetLevel configures the line of the given pin as output with given value.
func (b SysfsBoard) SetLevel(p pins.PhysicalPin, value bool) error {
	if err := checkPin(p); err != nil {
		return err
	}
	out, err := b.Pin(p).Output(false, value)
	if err != nil {
		return err
	}
	if err := out.Write(value); err != nil {
		return errors.Wrapf(err, "Write[%s] failed", p)
	}
	return nil
}

func checkPin(p pins.PhysicalPin) error {
	if p == pins.NoPin {
		return maskAny(NoPinError)
	}
	if !p.Valid() {
		return errors.Wrapf(pins.InvalidPinError, "%d", int(p))
	}
	return nil
}

// SysfsPin describes a single GPIO line.
// The zero SysfsPin is the empty pin; it cannot be opened.
type SysfsPin struct {
	pin   pins.PhysicalPin
	line  int
	valid bool
}

// Number returns the physical pin.
func (p SysfsPin) Number() pins.PhysicalPin {
	if !p.valid {
		return pins.NoPin
	}
	return p.pin
}

// Line returns the sysfs GPIO line number, -1 for the empty pin.
func (p SysfsPin) Line() int {
	if !p.valid {
		return -1
	}
	return p.line
}

// Input opens the line as input.
func (p SysfsPin) Input(activeLow bool) (InputPin, error) {
	if !p.valid {
		return nil, maskAny(NoPinError)
	}
	label := p.label()
	linesOpenedTotal.WithLabelValues(label, "input").Inc()
	result, err := gpio.Input(p.line, activeLow)
	if err != nil {
		linesOpenErrorTotal.WithLabelValues(label, "input").Inc()
		return nil, errors.Wrapf(err, "Input[%s, line %d] failed", p.pin, p.line)
	}
	return result, nil
}

// Output opens the line as output with given initial value.
func (p SysfsPin) Output(activeLow, initialValue bool) (OutputPin, error) {
	if !p.valid {
		return nil, maskAny(NoPinError)
	}
	label := p.label()
	linesOpenedTotal.WithLabelValues(label, "output").Inc()
	result, err := gpio.Output(p.line, activeLow, initialValue)
	if err != nil {
		linesOpenErrorTotal.WithLabelValues(label, "output").Inc()
		return nil, errors.Wrapf(err, "Output[%s, line %d] failed", p.pin, p.line)
	}
	return result, nil
}

// String returns the board name of the pin.
func (p SysfsPin) String() string {
	if !p.valid {
		return ""
	}
	return p.pin.String() + " (gpio" + strconv.Itoa(p.line) + ")"
}

func (p SysfsPin) label() string {
	return p.pin.String()
}
