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

	aerr "github.com/ewoutp/go-aggregate-error"
)

// Alias is a symbolic name of a board pin.
// The set of aliases is closed: referring to an alias that is not
// declared below does not compile.
type Alias uint8

const (
	// None is the explicit absence of a pin.
	None Alias = iota

	// SPI
	SPISCK
	SPIMOSI
	SPIMISO
	SPISS0
	// spi_ss1 is not documented for the board
	SPISS2
	SPICS3

	// I2C
	I2CSDA
	I2CSCL

	// Serial
	SerialTX
	SerialRX

	// Digital/physical pins as printed on the board
	Dig0
	Dig1
	Dig2
	Dig3
	Dig4
	Dig5
	Dig6
	Dig7
	Dig8
	Dig9
	Dig10
	Dig11
	Dig12
	Dig13
	Dig14
	Dig15
	Dig16
	Dig17
	Dig18
	Dig19

	aliasCount int = iota
)

var aliasNames = [aliasCount]string{
	None:     "none",
	SPISCK:   "spi_sck",
	SPIMOSI:  "spi_mosi",
	SPIMISO:  "spi_miso",
	SPISS0:   "spi_ss0",
	SPISS2:   "spi_ss2",
	SPICS3:   "spi_cs3",
	I2CSDA:   "i2c_sda",
	I2CSCL:   "i2c_scl",
	SerialTX: "serial_tx",
	SerialRX: "serial_rx",
	Dig0:     "dig0",
	Dig1:     "dig1",
	Dig2:     "dig2",
	Dig3:     "dig3",
	Dig4:     "dig4",
	Dig5:     "dig5",
	Dig6:     "dig6",
	Dig7:     "dig7",
	Dig8:     "dig8",
	Dig9:     "dig9",
	Dig10:    "dig10",
	Dig11:    "dig11",
	Dig12:    "dig12",
	Dig13:    "dig13",
	Dig14:    "dig14",
	Dig15:    "dig15",
	Dig16:    "dig16",
	Dig17:    "dig17",
	Dig18:    "dig18",
	Dig19:    "dig19",
}

var aliasByName = func() map[string]Alias {
	m := make(map[string]Alias, aliasCount)
	for i, name := range aliasNames {
		m[name] = Alias(i)
	}
	return m
}()

// Valid returns true if the alias is one of the declared aliases.
func (a Alias) Valid() bool {
	return int(a) < aliasCount
}

// String returns the symbolic name of the alias ("spi_mosi").
func (a Alias) String() string {
	if !a.Valid() {
		return "Alias(" + strconv.Itoa(int(a)) + ")"
	}
	return aliasNames[a]
}

// Aliases returns all declared aliases in declaration order.
func Aliases() []Alias {
	result := make([]Alias, aliasCount)
	for i := range result {
		result[i] = Alias(i)
	}
	return result
}

// ParseAlias returns the alias with the given symbolic name.
// Names are matched exactly; an unknown name results in an
// UnknownAliasError.
func ParseAlias(name string) (Alias, error) {
	if a, found := aliasByName[strings.TrimSpace(name)]; found {
		return a, nil
	}
	return None, maskAny(UnknownAliasError{Name: name})
}

// ParseAliases parses all given names, preserving order.
// When one or more names are unknown, the returned error lists all of them.
func ParseAliases(names ...string) ([]Alias, error) {
	var ae aerr.AggregateError
	result := make([]Alias, 0, len(names))
	for _, name := range names {
		a, err := ParseAlias(name)
		if err != nil {
			ae.Add(err)
			continue
		}
		result = append(result, a)
	}
	if err := ae.AsError(); err != nil {
		return nil, err
	}
	return result, nil
}
