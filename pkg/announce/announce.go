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

// Package announce publishes the pin registry to an MQTT broker.
package announce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqttapi "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/BoardPins/pkg/pins"
	"github.com/binkynet/BoardPins/pkg/util"
)

const (
	defaultInterval = time.Minute
	publishTimeout  = time.Second * 2
	connectTimeout  = time.Second * 5
)

var maskAny = errors.WithStack

// Config of the announcer.
type Config struct {
	// Address of the broker (host:port)
	BrokerAddress string
	// Client ID used to connect
	ClientID string
	// Topic the registry is published on (retained)
	Topic string
	// Interval between publications
	Interval time.Duration
}

// Entry is the JSON representation of a registry entry.
type Entry struct {
	Alias string `json:"alias"`
	Pin   string `json:"pin"`
}

// Payload returns the JSON encoded registry.
func Payload() ([]byte, error) {
	all := pins.Entries()
	entries := make([]Entry, 0, len(all))
	for _, e := range all {
		entries = append(entries, Entry{Alias: e.Alias.String(), Pin: e.Pin.String()})
	}
	encoded, err := json.Marshal(entries)
	if err != nil {
		return nil, maskAny(err)
	}
	return encoded, nil
}

// Announcer periodically publishes the registry.
type Announcer struct {
	Config
	log zerolog.Logger
}

// New creates a new announcer.
func New(cfg Config, log zerolog.Logger) (*Announcer, error) {
	if cfg.BrokerAddress == "" {
		return nil, errors.New("broker address is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return &Announcer{
		Config: cfg,
		log:    log.With().Str("component", "announce").Logger(),
	}, nil
}

// Run publishes the registry until the given context is canceled.
func (a *Announcer) Run(ctx context.Context) error {
	payload, err := Payload()
	if err != nil {
		return err
	}
	return util.UntilCanceled(ctx, a.log, "Announcing pin registry", func(ctx context.Context) error {
		return a.runSession(ctx, payload)
	})
}

// runSession connects to the broker and publishes at the configured
// interval until the context is canceled or publishing fails.
func (a *Announcer) runSession(ctx context.Context, payload []byte) error {
	opts := mqttapi.NewClientOptions().
		AddBroker("tcp://" + a.BrokerAddress).
		SetClientID(a.ClientID)
	opts.SetKeepAlive(2 * time.Second)
	opts.SetPingTimeout(1 * time.Second)
	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(connectTimeout)

	client := mqttapi.NewClient(opts)
	token := client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("failed to connect to mqtt: %w", err)
		}
	case <-ctx.Done():
		return nil
	}
	defer client.Disconnect(250)

	for {
		token = client.Publish(a.Topic, 1, true, payload)
		if !token.WaitTimeout(publishTimeout) {
			return errors.Errorf("publish to '%s' timed out", a.Topic)
		}
		if err := token.Error(); err != nil {
			return errors.Wrapf(err, "publish to '%s' failed", a.Topic)
		}
		a.log.Debug().Str("topic", a.Topic).Int("bytes", len(payload)).Msg("Published pin registry")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(a.Interval):
			// Continue
		}
	}
}
