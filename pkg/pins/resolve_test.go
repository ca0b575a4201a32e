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
	"testing"
)

// testPin is a pin of a testGPIO, identified by its board name.
type testPin struct {
	name string
}

// testGPIO counts calls to verify that resolving has no hidden state.
type testGPIO struct {
	pins  [PinCount]*testPin
	calls int
}

func newTestGPIO() *testGPIO {
	g := &testGPIO{}
	for i := range g.pins {
		g.pins[i] = &testPin{name: PhysicalPin(i).String()}
	}
	return g
}

func (g *testGPIO) Pin(p PhysicalPin) *testPin {
	g.calls++
	return g.pins[p]
}

func TestResolveAllAliases(t *testing.T) {
	gpio := newTestGPIO()
	for _, a := range Aliases() {
		p := Resolve[*testPin](gpio, a)
		expected := expectedTable[a.String()]
		if a == None {
			if p != nil {
				t.Errorf("Expected nil pin for none, got %v", p)
			}
			continue
		}
		if p == nil || p.name != expected {
			t.Errorf("Resolve(%s): expected %s, got %v", a, expected, p)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	gpio := newTestGPIO()
	first := Resolve[*testPin](gpio, Dig3)
	for i := 0; i < 10; i++ {
		Resolve[*testPin](gpio, Alias(i))
	}
	if again := Resolve[*testPin](gpio, Dig3); again != first {
		t.Errorf("Expected identical pin, got %v and %v", first, again)
	}
	if first != gpio.pins[Pin19] {
		t.Errorf("Expected pin19, got %v", first)
	}
}

func TestResolveNoneDoesNotTouchHandle(t *testing.T) {
	gpio := newTestGPIO()
	Resolve[*testPin](gpio, None)
	if gpio.calls != 0 {
		t.Errorf("Expected no calls for none, got %d", gpio.calls)
	}
}

func TestAliasingEqualities(t *testing.T) {
	gpio := newTestGPIO()
	pairs := [][2]Alias{
		{SerialTX, Dig1},
		{SerialRX, Dig0},
		{SPIMOSI, Dig11},
	}
	for _, pair := range pairs {
		a := Resolve[*testPin](gpio, pair[0])
		b := Resolve[*testPin](gpio, pair[1])
		if a != b {
			t.Errorf("Expected %s and %s to resolve to the same pin, got %v and %v", pair[0], pair[1], a, b)
		}
	}
}

func TestResolveManySPI(t *testing.T) {
	gpio := newTestGPIO()
	got := ResolveMany[*testPin](gpio, SPIMOSI, SPIMISO, SPISCK, SPISS0)
	expected := []string{"pin3", "pin4", "pin5", "pin2"}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d pins, got %d", len(expected), len(got))
	}
	for i, p := range got {
		if p.name != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], p.name)
		}
	}
}

func TestResolveManyMatchesResolve(t *testing.T) {
	gpio := newTestGPIO()
	tests := [][]Alias{
		{Dig3},
		{SerialTX, Dig1},
		{Dig5, Dig5, Dig5},
		{None, I2CSDA, None, I2CSCL},
		Aliases(),
	}
	for _, aliases := range tests {
		got := ResolveMany[*testPin](gpio, aliases[0], aliases[1:]...)
		if len(got) != len(aliases) {
			t.Errorf("%v: expected %d pins, got %d", aliases, len(aliases), len(got))
			continue
		}
		for i, a := range aliases {
			if got[i] != Resolve[*testPin](gpio, a) {
				t.Errorf("%v: position %d differs from Resolve(%s)", aliases, i, a)
			}
		}
	}
}

func TestResolveNoneInTuple(t *testing.T) {
	gpio := newTestGPIO()
	sda, none, scl := Resolve3[*testPin](gpio, I2CSDA, None, I2CSCL)
	if sda.name != "pin12" || scl.name != "pin13" {
		t.Errorf("Expected pin12 and pin13, got %s and %s", sda.name, scl.name)
	}
	if none != nil {
		t.Errorf("Expected empty value for none, got %v", none)
	}
}

func TestResolveTuples(t *testing.T) {
	gpio := newTestGPIO()
	tx, rx := Resolve2[*testPin](gpio, SerialTX, SerialRX)
	if tx.name != "pin17" || rx.name != "pin16" {
		t.Errorf("Expected (pin17, pin16), got (%s, %s)", tx.name, rx.name)
	}
	mosi, miso, sck, ss0 := Resolve4[*testPin](gpio, SPIMOSI, SPIMISO, SPISCK, SPISS0)
	got := []string{mosi.name, miso.name, sck.name, ss0.name}
	expected := []string{"pin3", "pin4", "pin5", "pin2"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}

func TestBank(t *testing.T) {
	var bank Bank[int]
	for i := range bank {
		bank[i] = 100 + i
	}
	if v := Resolve[int](&bank, Dig14); v != 108 {
		t.Errorf("Expected 108, got %d", v)
	}
	if v := Resolve[int](&bank, None); v != 0 {
		t.Errorf("Expected zero value for none, got %d", v)
	}
	got := ResolveMany[int](&bank, SerialTX, Dig1)
	if got[0] != 117 || got[1] != 117 {
		t.Errorf("Expected [117 117], got %v", got)
	}
}
