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

package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/dustin/go-humanize"

	"github.com/binkynet/BoardPins/pkg/gpio"
	"github.com/binkynet/BoardPins/pkg/pins"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// LevelSource is a board that reports pin levels and their changes.
type LevelSource interface {
	gpio.LevelReader
	Subscribe(cb func(gpio.PinChange)) context.CancelFunc
}

// Root is the top level model of the terminal UI.
type Root struct {
	term      string
	width     int
	height    int
	startedAt time.Time
	uptime    string
	table     table.Model
	board     LevelSource
	changes   <-chan gpio.PinChange
	done      <-chan struct{}
}

var _ tea.Model = Root{}

// NewRoot creates the root model for a terminal of given type.
// board is optional; without it no levels are shown.
func NewRoot(term string, startedAt time.Time, board LevelSource) Root {
	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Alias", Width: 12},
			{Title: "Pin", Width: 8},
			{Title: "Level", Width: 6},
		}),
		table.WithRows(Rows(board)),
		table.WithFocused(true),
		table.WithHeight(16),
	)
	return Root{
		term:      term,
		startedAt: startedAt,
		uptime:    humanize.Time(startedAt),
		table:     tbl,
		board:     board,
	}
}

// Handler creates a model for an incoming SSH session.
// The session follows level changes of board (if any) until it is closed.
func Handler(startedAt time.Time, board LevelSource) func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()
		r := NewRoot(pty.Term, startedAt, board).watch(s.Context())
		r.width = pty.Window.Width
		r.height = pty.Window.Height
		return r, []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// watch subscribes to level changes of the board until ctx is done.
func (r Root) watch(ctx context.Context) Root {
	if r.board == nil {
		return r
	}
	changes := make(chan gpio.PinChange, 16)
	cancel := r.board.Subscribe(func(c gpio.PinChange) {
		select {
		case changes <- c:
		default:
			// UI is behind; the next change refreshes all rows anyway
		}
	})
	go func() {
		<-ctx.Done()
		cancel()
	}()
	r.changes = changes
	r.done = ctx.Done()
	return r
}

// Rows returns one table row per registry entry.
func Rows(board gpio.LevelReader) []table.Row {
	entries := pins.Entries()
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		pin, level := e.Pin.String(), "-"
		if pin == "" {
			pin = "-"
		} else if board != nil {
			level = levelString(board, e.Pin)
		}
		rows = append(rows, table.Row{e.Alias.String(), pin, level})
	}
	return rows
}

func levelString(board gpio.LevelReader, p pins.PhysicalPin) string {
	v, err := board.Level(p)
	switch {
	case err != nil:
		return "?"
	case v:
		return "high"
	default:
		return "low"
	}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (r Root) Init() tea.Cmd {
	if r.changes == nil {
		return doTick()
	}
	return tea.Batch(doTick(), waitForChange(r.changes, r.done))
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (r Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		r.uptime = humanize.Time(r.startedAt)
		return r, doTick()
	case levelMsg:
		r.table.SetRows(Rows(r.board))
		return r, waitForChange(r.changes, r.done)
	case tea.WindowSizeMsg:
		r.height = msg.Height
		r.width = msg.Width
		if h := r.height - lipgloss.Height(r.headerView()) - 2; h > 0 {
			r.table.SetHeight(h)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		}
	}

	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (r Root) View() string {
	return r.headerView() + r.table.View() + "\n" + r.footerView()
}

func (r Root) headerView() string {
	return headerStyle.Render("Board pin registry") + "  started " + r.uptime + "\n"
}

// footerView lists the aliases that share the pin of the selected row.
func (r Root) footerView() string {
	row := r.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	a, err := pins.ParseAlias(row[0])
	if err != nil {
		return footerStyle.Render(err.Error())
	}
	p := pins.Lookup(a)
	var shared []string
	if p != pins.NoPin {
		for _, x := range pins.AliasesOf(p) {
			if x != a {
				shared = append(shared, x.String())
			}
		}
	}
	if len(shared) == 0 {
		return footerStyle.Render("q - Disconnect")
	}
	return footerStyle.Render("Shared with: "+strings.Join(shared, ", ")) + "\n" +
		footerStyle.Render("q - Disconnect")
}

type tickMsg time.Time

func doTick() tea.Cmd {
	return tea.Tick(time.Second*10, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type levelMsg gpio.PinChange

// waitForChange waits for the next level change.
// It returns nil when done is closed.
func waitForChange(changes <-chan gpio.PinChange, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case c := <-changes:
			return levelMsg(c)
		case <-done:
			return nil
		}
	}
}
