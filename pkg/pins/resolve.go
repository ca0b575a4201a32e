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

// GPIO is implemented by a handle of the board's GPIO controller
// that exposes one value of type P per physical pin.
type GPIO[P any] interface {
	// Pin returns the handle's pin with given index (pin0...pin23).
	Pin(PhysicalPin) P
}

// Bank is a GPIO handle that holds its pins as array elements.
type Bank[P any] [PinCount]P

// Pin returns the element of the given physical pin.
func (b *Bank[P]) Pin(p PhysicalPin) P {
	return b[p]
}

// Resolve returns the pin of gpio that the given alias maps to.
// None yields the zero value of P.
//
// Example: `Resolve(gpio, SPIMOSI) -> gpio.Pin(Pin3)`
func Resolve[P any](gpio GPIO[P], a Alias) P {
	p := Lookup(a)
	if p == NoPin {
		var empty P
		return empty
	}
	return gpio.Pin(p)
}

// ResolveMany returns the pins of gpio for all given aliases,
// in the order of the aliases. Duplicates are passed through.
//
// Example: `ResolveMany(gpio, SPIMOSI, SPIMISO, SPISCK, SPISS0) -> [pin3, pin4, pin5, pin2]`
func ResolveMany[P any](gpio GPIO[P], first Alias, rest ...Alias) []P {
	result := make([]P, 0, len(rest)+1)
	result = append(result, Resolve(gpio, first))
	for _, a := range rest {
		result = append(result, Resolve(gpio, a))
	}
	return result
}

// Resolve2 returns the pins of gpio for the given pair of aliases.
func Resolve2[P any](gpio GPIO[P], a, b Alias) (P, P) {
	return Resolve(gpio, a), Resolve(gpio, b)
}

// Resolve3 returns the pins of gpio for the given three aliases.
func Resolve3[P any](gpio GPIO[P], a, b, c Alias) (P, P, P) {
	return Resolve(gpio, a), Resolve(gpio, b), Resolve(gpio, c)
}

// Resolve4 returns the pins of gpio for the given four aliases,
// e.g. (SPIMOSI, SPIMISO, SPISCK, SPISS0).
func Resolve4[P any](gpio GPIO[P], a, b, c, d Alias) (P, P, P, P) {
	return Resolve(gpio, a), Resolve(gpio, b), Resolve(gpio, c), Resolve(gpio, d)
}
