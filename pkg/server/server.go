// Copyright 2023 Ewout Prangsma
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

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/binkynet/BoardPins/pkg/gpio"
)

// Config for the HTTP server.
type Config struct {
	// Host interface to listen on
	Host string
	// Port to listen on for HTTP requests
	HTTPPort int
	// Port to listen on for SSH requests (0 disables SSH)
	SSHPort int
	// Path of the SSH host key, created when missing
	HostKeyPath string
}

// UI creates a Bubble Tea model for an incoming SSH session.
type UI func(s ssh.Session) (tea.Model, []tea.ProgramOption)

// Server runs the HTTP & SSH servers for the registry.
type Server struct {
	Config
	log    zerolog.Logger
	levels gpio.LevelReader
	ui     UI
}

// New configures a new Server.
// levels is optional; when set, single pin lookups include the pin level.
// When levels also implements gpio.LevelWriter, pin levels can be set.
func New(cfg Config, log zerolog.Logger, levels gpio.LevelReader, ui UI) (*Server, error) {
	if cfg.SSHPort != 0 && ui == nil {
		return nil, errors.New("UI is required when SSH is enabled")
	}
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = ".ssh/id_ed25519"
	}
	return &Server{
		Config: cfg,
		log:    log.With().Str("component", "server").Logger(),
		levels: levels,
		ui:     ui,
	}, nil
}

// newRouter builds the HTTP routes.
func (s *Server) newRouter() *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.GET("/v1/pins", s.handleListPins)
	r.GET("/v1/pins/:alias", s.handleGetPin)
	r.PUT("/v1/pins/:alias", s.handleSetPin)
	r.GET("/v1/resolve", s.handleResolve)
	r.GET("/v1/physical/:pin", s.handleGetPhysical)
	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	r.GET("/debug/pprof/*", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	return r
}

// Run the server until the given context is canceled.
func (s *Server) Run(ctx context.Context) error {
	log := s.log

	// Prepare HTTP listener
	httpAddr := net.JoinHostPort(s.Host, strconv.Itoa(s.HTTPPort))
	httpLis, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on address %s", httpAddr)
	}
	httpSrv := http.Server{
		Handler: s.newRouter(),
	}

	// Prepare SSH server
	var sshServer *ssh.Server
	sshAddr := net.JoinHostPort(s.Host, strconv.Itoa(s.SSHPort))
	if s.SSHPort != 0 {
		sshServer, err = wish.NewServer(
			wish.WithAddress(sshAddr),
			// Creates an ED25519 keypair in the given path if it doesn't exist yet.
			wish.WithHostKeyPath(s.HostKeyPath),
			// The last item in the chain is the first to be called.
			wish.WithMiddleware(
				bubbletea.Middleware(bubbletea.Handler(s.ui)),
				activeterm.Middleware(),
				logging.Middleware(),
			),
		)
		if err != nil {
			httpLis.Close()
			return errors.Wrap(err, "could not create SSH server")
		}
	}

	// Serve apis
	errCh := make(chan error, 2)
	log.Debug().Str("address", httpAddr).Msg("Serving HTTP")
	go func() {
		if err := httpSrv.Serve(httpLis); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("failed to serve HTTP server")
			errCh <- errors.Wrap(err, "failed to serve HTTP server")
		}
		log.Debug().Str("address", httpAddr).Msg("Done Serving HTTP")
	}()
	// Serve UI
	if sshServer != nil {
		log.Debug().Str("address", sshAddr).Msg("Serving SSH")
		go func() {
			if err := sshServer.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
				log.Error().Err(err).Msg("failed to serve SSH server")
				errCh <- errors.Wrap(err, "failed to serve SSH server")
			}
			log.Debug().Str("address", sshAddr).Msg("Done Serving SSH")
		}()
	}

	// Wait until context closed or one of the servers failed
	var result error
	select {
	case <-ctx.Done():
	case result = <-errCh:
	}

	log.Info().Msg("Closing servers")
	httpSrv.Shutdown(context.Background())
	if sshServer != nil {
		sshServer.Shutdown(context.Background())
	}

	return result
}
