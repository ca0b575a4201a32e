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

package pins

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PhysicalPin identifies a pin in the board's own addressing scheme
// (pin0...pin23).
type PhysicalPin int8

// PinCount is the number of physical pins on the board.
const PinCount = 24

// Physical pins of the board.
const (
	// NoPin is the empty value, used for the `none` alias.
	NoPin PhysicalPin = -1

	Pin0 PhysicalPin = iota - 1
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Pin10
	Pin11
	Pin12
	Pin13
	Pin14
	Pin15
	Pin16
	Pin17
	Pin18
	Pin19
	Pin20
	Pin21
	Pin22
	Pin23
)

// Valid returns true if the pin is one of pin0...pin23.
func (p PhysicalPin) Valid() bool {
	return p >= Pin0 && p <= Pin23
}

// String returns the board name of the pin ("pin3").
// NoPin is returned as an empty string.
func (p PhysicalPin) String() string {
	if p == NoPin {
		return ""
	}
	return "pin" + strconv.Itoa(int(p))
}

// ParsePhysicalPin parses a board pin name ("pin3") into a PhysicalPin.
func ParsePhysicalPin(name string) (PhysicalPin, error) {
	digits, found := strings.CutPrefix(name, "pin")
	if !found || digits == "" {
		return NoPin, errors.Wrapf(InvalidPinError, "'%s'", name)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || strconv.Itoa(n) != digits {
		return NoPin, errors.Wrapf(InvalidPinError, "'%s'", name)
	}
	p := PhysicalPin(n)
	if n > int(Pin23) || !p.Valid() {
		return NoPin, errors.Wrapf(InvalidPinError, "'%s' is out of range pin0...pin%d", name, PinCount-1)
	}
	return p, nil
}
