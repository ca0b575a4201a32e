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
	"context"
	"sync"

	"github.com/mattn/go-pubsub"

	"github.com/binkynet/BoardPins/pkg/pins"
)

// PinChange is published by a VirtualBoard when a pin level changes.
type PinChange struct {
	Pin   pins.PhysicalPin
	Value bool
}

// VirtualBoard is an in-memory board with all physical pins.
type VirtualBoard struct {
	mutex  sync.Mutex
	levels [pins.PinCount]bool
	pins   pins.Bank[*VirtualPin]
	events *pubsub.PubSub

	subMutex    sync.Mutex
	lastSubID   uint64
	subscribers map[uint64]func(PinChange)
}

var (
	_ pins.GPIO[*VirtualPin] = &VirtualBoard{}
	_ LevelReader            = &VirtualBoard{}
	_ LevelWriter            = &VirtualBoard{}
	_ InputPin               = &VirtualPin{}
	_ OutputPin              = &VirtualPin{}
)

// NewVirtualBoard creates a board with all pins low.
func NewVirtualBoard() *VirtualBoard {
	b := &VirtualBoard{
		events:      pubsub.New(),
		subscribers: make(map[uint64]func(PinChange)),
	}
	for i := range b.pins {
		b.pins[i] = &VirtualPin{board: b, pin: pins.PhysicalPin(i)}
	}
	b.events.Sub(b.dispatch)
	return b
}

// Pin returns the virtual pin with given index.
func (b *VirtualBoard) Pin(p pins.PhysicalPin) *VirtualPin {
	return b.pins.Pin(p)
}

// Level returns the current level of the given pin.
func (b *VirtualBoard) Level(p pins.PhysicalPin) (bool, error) {
	if err := checkPin(p); err != nil {
		return false, err
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.levels[p], nil
}

// SetLevel sets the level of the given pin.
func (b *VirtualBoard) SetLevel(p pins.PhysicalPin, value bool) error {
	if err := checkPin(p); err != nil {
		return err
	}
	return b.Pin(p).Write(value)
}

// Subscribe registers a callback that is invoked for every level change.
// Callbacks are invoked asynchronously.
// The returned function removes only this subscription.
func (b *VirtualBoard) Subscribe(cb func(PinChange)) context.CancelFunc {
	b.subMutex.Lock()
	b.lastSubID++
	id := b.lastSubID
	b.subscribers[id] = cb
	b.subMutex.Unlock()
	subscribersGauge.Inc()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.subMutex.Lock()
			delete(b.subscribers, id)
			b.subMutex.Unlock()
			subscribersGauge.Dec()
		})
	}
}

// dispatch fans a published change out to all current subscribers.
func (b *VirtualBoard) dispatch(x PinChange) {
	b.subMutex.Lock()
	callbacks := make([]func(PinChange), 0, len(b.subscribers))
	for _, cb := range b.subscribers {
		callbacks = append(callbacks, cb)
	}
	b.subMutex.Unlock()

	for _, cb := range callbacks {
		cb(x)
	}
}

// Close stops delivering events.
func (b *VirtualBoard) Close() error {
	b.events.Close()
	return nil
}

func (b *VirtualBoard) set(p pins.PhysicalPin, value bool) {
	b.mutex.Lock()
	changed := b.levels[p] != value
	b.levels[p] = value
	b.mutex.Unlock()

	if changed {
		b.events.Pub(PinChange{Pin: p, Value: value})
	}
}

// VirtualPin is a single pin of a VirtualBoard.
// The nil VirtualPin is the empty pin; all operations on it fail.
type VirtualPin struct {
	board *VirtualBoard
	pin   pins.PhysicalPin
}

// Number returns the physical pin.
func (p *VirtualPin) Number() pins.PhysicalPin {
	if p == nil {
		return pins.NoPin
	}
	return p.pin
}

// Read the current level.
func (p *VirtualPin) Read() (bool, error) {
	if p == nil {
		return false, maskAny(NoPinError)
	}
	return p.board.Level(p.pin)
}

// Write sets the level.
func (p *VirtualPin) Write(value bool) error {
	if p == nil {
		return maskAny(NoPinError)
	}
	p.board.set(p.pin, value)
	return nil
}

// String returns the board name of the pin.
func (p *VirtualPin) String() string {
	return p.Number().String()
}
