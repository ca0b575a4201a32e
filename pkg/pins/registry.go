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

// Entry pairs an alias with the physical pin it resolves to.
type Entry struct {
	Alias Alias
	Pin   PhysicalPin
}

// registry maps every alias onto its physical pin.
// Several aliases share a physical pin; that mirrors the board wiring.
// The table has not been validated against hardware beyond dig14.
var registry = [aliasCount]PhysicalPin{
	None: NoPin,
	// SPI
	SPISCK:  Pin5,
	SPIMOSI: Pin3,
	SPIMISO: Pin4,
	SPISS0:  Pin2,
	SPISS2:  Pin9,
	SPICS3:  Pin10,
	// I2C
	I2CSDA: Pin12,
	I2CSCL: Pin13,
	// Serial
	SerialTX: Pin17,
	SerialRX: Pin16,
	// Digital/physical
	Dig0:  Pin16,
	Dig1:  Pin17,
	Dig2:  Pin18,
	Dig3:  Pin19,
	Dig4:  Pin20,
	Dig5:  Pin21,
	Dig6:  Pin22,
	Dig7:  Pin23,
	Dig8:  Pin0,
	Dig9:  Pin1,
	Dig10: Pin2,
	Dig11: Pin3,
	Dig12: Pin4,
	Dig13: Pin5,
	Dig14: Pin8, // tested
	Dig15: Pin9,
	Dig16: Pin10,
	Dig17: Pin11,
	Dig18: Pin12,
	Dig19: Pin13,
}

// Lookup returns the physical pin of the given alias.
// None yields NoPin. An undeclared alias value panics with an
// UnknownAliasError.
func Lookup(a Alias) PhysicalPin {
	if !a.Valid() {
		panic(UnknownAliasError{Name: a.String()})
	}
	return registry[a]
}

// Entries returns the complete registry in declaration order.
func Entries() []Entry {
	result := make([]Entry, aliasCount)
	for i, p := range registry {
		result[i] = Entry{Alias: Alias(i), Pin: p}
	}
	return result
}

// AliasesOf returns all aliases resolving to the given physical pin,
// in declaration order. Pins that no alias reaches yield nil.
func AliasesOf(p PhysicalPin) []Alias {
	var result []Alias
	for i, x := range registry {
		if x == p {
			result = append(result, Alias(i))
		}
	}
	return result
}
