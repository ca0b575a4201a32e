//    Copyright 2024 Ewout Prangsma
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	terminate "github.com/pulcy/go-terminate"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/binkynet/BoardPins/pkg/announce"
	"github.com/binkynet/BoardPins/pkg/environment"
	"github.com/binkynet/BoardPins/pkg/gpio"
	"github.com/binkynet/BoardPins/pkg/logging"
	"github.com/binkynet/BoardPins/pkg/pins"
	"github.com/binkynet/BoardPins/pkg/server"
	"github.com/binkynet/BoardPins/pkg/ui"
)

const (
	projectName        = "BinkyNet Board Pins"
	defaultHTTPPort    = 7130
	defaultSSHPort     = 7131
	defaultMQTTTopic   = "binky/boardpins/registry"
	defaultMQTTClient  = "boardpins"
	defaultAnnounceInt = time.Minute
)

var (
	projectVersion = "dev"
	projectBuild   = "dev"
)

func main() {
	var levelFlag string
	var logFile string
	var gpioType string
	var gpioBase int
	var serve bool
	var serverHost string
	var httpPort int
	var sshPort int
	var mqttBroker string
	var mqttTopic string
	var mqttClientID string

	pflag.StringVarP(&levelFlag, "level", "l", "info", "Set log level")
	pflag.StringVar(&logFile, "log-file", "", "Also write logs (JSON) to this file")
	pflag.StringVarP(&gpioType, "gpio", "g", "auto", "Type of GPIO to resolve against (auto|virtual|sysfs)")
	pflag.IntVar(&gpioBase, "gpio-base", 0, "Sysfs GPIO line number of pin0")
	pflag.BoolVar(&serve, "serve", false, "Run the HTTP & SSH servers")
	pflag.StringVar(&serverHost, "host", "0.0.0.0", "Host address the servers will listen on")
	pflag.IntVar(&httpPort, "port", defaultHTTPPort, "Port the HTTP server will listen on")
	pflag.IntVar(&sshPort, "ssh-port", defaultSSHPort, "Port the SSH server will listen on (0 disables)")
	pflag.StringVar(&mqttBroker, "mqtt-broker", "", "Address (host:port) of the MQTT broker to announce the registry on")
	pflag.StringVar(&mqttTopic, "mqtt-topic", defaultMQTTTopic, "MQTT topic to announce the registry on")
	pflag.StringVar(&mqttClientID, "mqtt-client-id", defaultMQTTClient, "MQTT client ID")
	pflag.Parse()

	logger, logCloser, err := logging.NewLogger(levelFlag, logFile)
	if err != nil {
		Exitf("Failed to initialize logging: %v\n", err)
	}
	defer logCloser.Close()

	t := gpio.Type(gpioType)
	if gpioType == "auto" {
		t = environment.AutoDetectGPIOType(logger)
	}

	if !serve {
		if err := printPins(os.Stdout, t, gpioBase, pflag.Args()); err != nil {
			Exitf("%v\n", err)
		}
		return
	}

	if err := runServers(logger, t, gpioBase, serverHost, httpPort, sshPort, announce.Config{
		BrokerAddress: mqttBroker,
		ClientID:      mqttClientID,
		Topic:         mqttTopic,
		Interval:      defaultAnnounceInt,
	}); err != nil {
		Exitf("Service run failed: %v\n", err)
	}
}

// printPins resolves the given alias names (all aliases when empty)
// against the GPIO of given type and prints them as a table.
func printPins(w io.Writer, t gpio.Type, gpioBase int, names []string) error {
	aliases := pins.Aliases()
	if len(names) > 0 {
		var err error
		if aliases, err = pins.ParseAliases(names...); err != nil {
			return err
		}
	}

	var rows [][]string
	switch t {
	case gpio.TypeVirtual:
		board := gpio.NewVirtualBoard()
		defer board.Close()
		rows = describe[*gpio.VirtualPin](board, aliases)
	case gpio.TypeSysfs:
		board, err := gpio.NewSysfsBoard(gpioBase)
		if err != nil {
			return err
		}
		rows = describe[gpio.SysfsPin](board, aliases)
	default:
		return errors.Errorf("Unknown GPIO type '%s' (virtual|sysfs)", t)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Alias", "Pin", "GPIO").
		Rows(rows...)
	fmt.Fprintln(w, tbl.Render())
	return nil
}

// describe resolves all aliases in order and returns a row per alias.
func describe[P fmt.Stringer](g pins.GPIO[P], aliases []pins.Alias) [][]string {
	resolved := pins.ResolveMany(g, aliases[0], aliases[1:]...)
	rows := make([][]string, 0, len(aliases))
	for i, a := range aliases {
		rows = append(rows, []string{a.String(), pins.Lookup(a).String(), resolved[i].String()})
	}
	return rows
}

// runServers runs the HTTP/SSH servers and the optional MQTT announcer
// until a termination signal is received.
func runServers(logger zerolog.Logger, t gpio.Type, gpioBase int, host string, httpPort, sshPort int, announceCfg announce.Config) error {
	var levels gpio.LevelReader
	var watched ui.LevelSource
	switch t {
	case gpio.TypeVirtual:
		board := gpio.NewVirtualBoard()
		defer board.Close()
		levels, watched = board, board
	case gpio.TypeSysfs:
		// Sysfs levels are only read on request; the UI does not poll them
		board, err := gpio.NewSysfsBoard(gpioBase)
		if err != nil {
			return errors.Wrap(err, "Failed to initialize sysfs board")
		}
		levels = board
	default:
		return errors.Errorf("Unknown GPIO type '%s' (virtual|sysfs)", t)
	}

	startedAt := time.Now()
	httpServer, err := server.New(server.Config{
		Host:     host,
		HTTPPort: httpPort,
		SSHPort:  sshPort,
	}, logger, levels, ui.Handler(startedAt, watched))
	if err != nil {
		return errors.Wrap(err, "Failed to initialize Server")
	}

	var announcer *announce.Announcer
	if announceCfg.BrokerAddress != "" {
		announcer, err = announce.New(announceCfg, logger)
		if err != nil {
			return errors.Wrap(err, "Failed to initialize announcer")
		}
	}

	// Prepare to shutdown in a controlled manor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	term := terminate.NewTerminator(func(template string, args ...interface{}) {
		logger.Info().Msgf(template, args...)
	}, cancel)
	go term.ListenSignals()

	logger.Info().
		Str("version", projectVersion).
		Str("build", projectBuild).
		Str("gpio", string(t)).
		Msgf("Starting %s", projectName)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(ctx) })
	if announcer != nil {
		g.Go(func() error { return announcer.Run(ctx) })
	}
	return g.Wait()
}

// Print the given error message and exit with code 1
func Exitf(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, message, args...)
	os.Exit(1)
}
