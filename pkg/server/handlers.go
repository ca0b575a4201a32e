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

package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/binkynet/BoardPins/pkg/gpio"
	"github.com/binkynet/BoardPins/pkg/pins"
)

// PinEntry is the JSON representation of a resolved alias.
type PinEntry struct {
	Alias string `json:"alias"`
	Pin   string `json:"pin"`
	Level *bool  `json:"level,omitempty"`
}

// PhysicalEntry is the JSON representation of a physical pin.
type PhysicalEntry struct {
	Pin     string   `json:"pin"`
	Aliases []string `json:"aliases"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newPinEntry(a pins.Alias) PinEntry {
	return PinEntry{Alias: a.String(), Pin: pins.Lookup(a).String()}
}

// GET /v1/pins
func (s *Server) handleListPins(c echo.Context) error {
	entries := pins.Entries()
	result := make([]PinEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, PinEntry{Alias: e.Alias.String(), Pin: e.Pin.String()})
	}
	return c.JSON(http.StatusOK, result)
}

// GET /v1/pins/:alias
func (s *Server) handleGetPin(c echo.Context) error {
	name := c.Param("alias")
	a, err := pins.ParseAlias(name)
	if err != nil {
		unknownAliasTotal.Inc()
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	lookupTotal.WithLabelValues(a.String()).Inc()
	result := newPinEntry(a)
	if p := pins.Lookup(a); s.levels != nil && p != pins.NoPin {
		level, err := s.levels.Level(p)
		if err != nil {
			s.log.Warn().Err(err).Str("pin", p.String()).Msg("Failed to read level")
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		result.Level = &level
	}
	return c.JSON(http.StatusOK, result)
}

// PUT /v1/pins/:alias?level=true
func (s *Server) handleSetPin(c echo.Context) error {
	a, err := pins.ParseAlias(c.Param("alias"))
	if err != nil {
		unknownAliasTotal.Inc()
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	level, err := strconv.ParseBool(c.QueryParam("level"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid level '" + c.QueryParam("level") + "'"})
	}
	writer, ok := s.levels.(gpio.LevelWriter)
	if !ok {
		return c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "board cannot drive pins"})
	}
	p := pins.Lookup(a)
	if err := writer.SetLevel(p, level); err != nil {
		if errors.Cause(err) == gpio.NoPinError {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		s.log.Warn().Err(err).Str("pin", p.String()).Msg("Failed to set level")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	setLevelTotal.WithLabelValues(a.String()).Inc()
	result := newPinEntry(a)
	result.Level = &level
	return c.JSON(http.StatusOK, result)
}

// GET /v1/resolve?alias=a&alias=b
func (s *Server) handleResolve(c echo.Context) error {
	names := c.QueryParams()["alias"]
	if len(names) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at least one alias is required"})
	}
	aliases, err := pins.ParseAliases(names...)
	if err != nil {
		unknownAliasTotal.Inc()
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	result := make([]PinEntry, 0, len(aliases))
	for _, a := range aliases {
		lookupTotal.WithLabelValues(a.String()).Inc()
		result = append(result, newPinEntry(a))
	}
	return c.JSON(http.StatusOK, result)
}

// GET /v1/physical/:pin
func (s *Server) handleGetPhysical(c echo.Context) error {
	p, err := pins.ParsePhysicalPin(c.Param("pin"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	result := PhysicalEntry{Pin: p.String(), Aliases: []string{}}
	for _, a := range pins.AliasesOf(p) {
		result.Aliases = append(result.Aliases, a.String())
	}
	return c.JSON(http.StatusOK, result)
}
