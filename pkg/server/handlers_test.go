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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/binkynet/BoardPins/pkg/gpio"
	"github.com/binkynet/BoardPins/pkg/pins"
)

func newTestServer(t *testing.T, levels gpio.LevelReader) *Server {
	s, err := New(Config{}, zerolog.Nop(), levels, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, url string, result interface{}) int {
	return do(t, s, http.MethodGet, url, result)
}

func put(t *testing.T, s *Server, url string, result interface{}) int {
	return do(t, s, http.MethodPut, url, result)
}

func do(t *testing.T, s *Server, method, url string, result interface{}) int {
	req := httptest.NewRequest(method, url, nil)
	rec := httptest.NewRecorder()
	s.newRouter().ServeHTTP(rec, req)
	if result != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), result); err != nil {
			t.Fatalf("%s %s: failed to decode '%s': %v", method, url, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func TestListPins(t *testing.T) {
	s := newTestServer(t, nil)
	var entries []PinEntry
	if code := get(t, s, "/v1/pins", &entries); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if len(entries) != 31 {
		t.Fatalf("Expected 31 entries, got %d", len(entries))
	}
	if entries[0].Alias != "none" || entries[0].Pin != "" {
		t.Errorf("Unexpected first entry %+v", entries[0])
	}
	if entries[2].Alias != "spi_mosi" || entries[2].Pin != "pin3" {
		t.Errorf("Unexpected third entry %+v", entries[2])
	}
}

func TestGetPin(t *testing.T) {
	s := newTestServer(t, nil)
	var entry PinEntry
	if code := get(t, s, "/v1/pins/dig14", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if entry.Pin != "pin8" {
		t.Errorf("Expected pin8, got %s", entry.Pin)
	}
	if entry.Level != nil {
		t.Error("Did not expect a level without a board")
	}
}

func TestGetPinUnknown(t *testing.T) {
	s := newTestServer(t, nil)
	var resp ErrorResponse
	if code := get(t, s, "/v1/pins/spi_ss1", &resp); code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", code)
	}
	if !strings.Contains(resp.Error, "spi_ss1") {
		t.Errorf("Expected alias in error, got '%s'", resp.Error)
	}
}

func TestGetPinWithLevel(t *testing.T) {
	board := gpio.NewVirtualBoard()
	defer board.Close()
	if err := board.Pin(pins.Pin17).Write(true); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s := newTestServer(t, board)

	var entry PinEntry
	if code := get(t, s, "/v1/pins/serial_tx", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if entry.Level == nil || !*entry.Level {
		t.Errorf("Expected high level, got %+v", entry)
	}
	entry = PinEntry{}
	if code := get(t, s, "/v1/pins/none", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if entry.Level != nil || entry.Pin != "" {
		t.Errorf("Expected empty pin without level, got %+v", entry)
	}
}

func TestSetPin(t *testing.T) {
	board := gpio.NewVirtualBoard()
	defer board.Close()
	s := newTestServer(t, board)

	var entry PinEntry
	if code := put(t, s, "/v1/pins/dig1?level=true", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if entry.Pin != "pin17" || entry.Level == nil || !*entry.Level {
		t.Errorf("Unexpected entry %+v", entry)
	}
	// serial_tx shares pin17 with dig1
	entry = PinEntry{}
	if code := get(t, s, "/v1/pins/serial_tx", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if entry.Level == nil || !*entry.Level {
		t.Errorf("Expected high level, got %+v", entry)
	}
	if v, _ := board.Level(pins.Pin17); !v {
		t.Error("Expected pin17 level high on board")
	}
}

func TestSetPinErrors(t *testing.T) {
	board := gpio.NewVirtualBoard()
	defer board.Close()
	s := newTestServer(t, board)

	var resp ErrorResponse
	if code := put(t, s, "/v1/pins/none?level=true", &resp); code != http.StatusBadRequest {
		t.Errorf("Expected 400 for none, got %d", code)
	}
	if !strings.Contains(resp.Error, gpio.NoPinError.Error()) {
		t.Errorf("Expected no pin error, got '%s'", resp.Error)
	}
	if code := put(t, s, "/v1/pins/dig20?level=true", nil); code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown alias, got %d", code)
	}
	if code := put(t, s, "/v1/pins/dig3?level=high", nil); code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid level, got %d", code)
	}
	if code := put(t, s, "/v1/pins/dig3", nil); code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing level, got %d", code)
	}
	if v, _ := board.Level(pins.Pin19); v {
		t.Error("Expected pin19 to remain low")
	}

	// Without a board, levels cannot be set
	if code := put(t, newTestServer(t, nil), "/v1/pins/dig3?level=true", nil); code != http.StatusNotImplemented {
		t.Errorf("Expected 501 without board, got %d", code)
	}
}

func TestResolve(t *testing.T) {
	s := newTestServer(t, nil)
	var entries []PinEntry
	url := "/v1/resolve?alias=spi_mosi&alias=spi_miso&alias=spi_sck&alias=spi_ss0&alias=none"
	if code := get(t, s, url, &entries); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	expected := []string{"pin3", "pin4", "pin5", "pin2", ""}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}
	for i := range expected {
		if entries[i].Pin != expected[i] {
			t.Errorf("Position %d: expected '%s', got '%s'", i, expected[i], entries[i].Pin)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	s := newTestServer(t, nil)
	var resp ErrorResponse
	if code := get(t, s, "/v1/resolve", &resp); code != http.StatusBadRequest {
		t.Errorf("Expected 400 without aliases, got %d", code)
	}
	resp = ErrorResponse{}
	if code := get(t, s, "/v1/resolve?alias=dig3&alias=dig20&alias=digit3", &resp); code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", code)
	}
	if !strings.Contains(resp.Error, "'dig20'") || !strings.Contains(resp.Error, "'digit3'") {
		t.Errorf("Expected all unknown aliases in '%s'", resp.Error)
	}
}

func TestGetPhysical(t *testing.T) {
	s := newTestServer(t, nil)
	var entry PhysicalEntry
	if code := get(t, s, "/v1/physical/pin16", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if strings.Join(entry.Aliases, ",") != "serial_rx,dig0" {
		t.Errorf("Expected serial_rx,dig0, got %v", entry.Aliases)
	}
	entry = PhysicalEntry{}
	if code := get(t, s, "/v1/physical/pin6", &entry); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if len(entry.Aliases) != 0 {
		t.Errorf("Expected no aliases for pin6, got %v", entry.Aliases)
	}
	if code := get(t, s, "/v1/physical/pin24", nil); code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", code)
	}
}

func TestNewRequiresUIForSSH(t *testing.T) {
	if _, err := New(Config{SSHPort: 7122}, zerolog.Nop(), nil, nil); err == nil {
		t.Error("Expected error when SSH is enabled without UI")
	}
}
