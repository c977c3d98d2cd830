// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/passwdgen/passwdgen/internal/password"
)

// Requester performs one request/response exchange against the responder.
// It is an interface so tests can drive the menu without a network.
type Requester interface {
	Request(ctx context.Context, category byte, length string) (string, error)
	Addr() string
}

type viewState int

const (
	stateMenu viewState = iota
	stateHelp
	stateWaiting
	stateResult
)

// resultMsg is sent by the exchange command when the round trip finishes.
type resultMsg struct {
	password string
	err      error
}

type model struct {
	state     viewState
	requester Requester
	input     textinput.Model

	// Result of the last exchange
	password string
	err      error
	copied   bool

	// Validation feedback shown above the prompt
	status string

	width, height int
}

func newModel(r Requester) *model {
	ti := textinput.New()
	ti.Placeholder = "s 12"
	ti.CharLimit = 48
	ti.Width = 30
	ti.Focus()
	return &model{
		state:     stateMenu,
		requester: r,
		input:     ti,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case resultMsg:
		m.state = stateResult
		m.password = msg.password
		m.err = msg.err
		m.copied = false
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateHelp:
		// Any key returns to the menu.
		m.state = stateMenu
		return m, nil
	case stateWaiting:
		// Ignore input until the exchange finishes.
		return m, nil
	case stateResult:
		switch key.String() {
		case "c":
			if m.err == nil {
				if err := clipboard.WriteAll(m.password); err == nil {
					m.copied = true
				}
			}
			return m, nil
		case "enter", "esc":
			m.state = stateMenu
			m.status = ""
			m.input.SetValue("")
			return m, textinput.Blink
		}
		return m, nil
	}

	// stateMenu
	if key.Type == tea.KeyEnter {
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the command line typed at the menu prompt and either
// handles a control code, rejects invalid input locally, or kicks off one
// exchange. Control codes fold case ('Q' quits); generation codes do not
// ('N' is invalid).
func (m *model) submit() (tea.Model, tea.Cmd) {
	fields := strings.Fields(m.input.Value())
	if len(fields) == 0 || len(fields) > 2 || len(fields[0]) != 1 {
		m.status = "Invalid input. Please provide a valid type and length."
		return m, nil
	}
	code := fields[0][0]

	switch code {
	case 'h', 'H':
		m.state = stateHelp
		m.input.SetValue("")
		m.status = ""
		return m, nil
	case 'q', 'Q':
		return m, tea.Quit
	}

	if !password.TypeAllowed(password.Codes, code) {
		m.status = "Invalid type. Please choose a valid option."
		return m, nil
	}

	length := fmt.Sprintf("%d", password.DefaultLength)
	if len(fields) == 2 {
		length = fields[1]
	}
	if !password.LengthInRange(length, password.MinLength, password.MaxLength) {
		m.status = "Invalid length. Please choose a valid range."
		return m, nil
	}

	m.state = stateWaiting
	m.status = ""
	return m, m.exchangeCmd(code, length)
}

// exchangeCmd performs the blocking round trip off the update loop.
func (m *model) exchangeCmd(category byte, length string) tea.Cmd {
	r := m.requester
	return func() tea.Msg {
		pw, err := r.Request(context.Background(), category, length)
		return resultMsg{password: pw, err: err}
	}
}

func (m *model) View() string {
	switch m.state {
	case stateHelp:
		return docStyle.Render(m.viewHelp())
	case stateWaiting:
		return docStyle.Render(m.viewWaiting())
	case stateResult:
		return docStyle.Render(m.viewResult())
	}
	return docStyle.Render(m.viewMenu())
}

const menuText = `Enter the password type and its length (between 6 and 32):
  n: numeric password (digits only)
  a: alphabetic password (lowercase letters only)
  m: mixed password (lowercase letters and digits)
  s: secure password (uppercase, lowercase, digits and symbols)
  u: secure password without ambiguity (no look-alike characters)
  h: help menu
  q: quit the application`

const helpText = `Commands:
 h        : show this help menu
 n LENGTH : generate a numeric password (digits only)
 a LENGTH : generate an alphabetic password (lowercase letters only)
 m LENGTH : generate a mixed password (lowercase letters and digits)
 s LENGTH : generate a secure password (uppercase, lowercase, digits, symbols)
 u LENGTH : generate a secure password without ambiguity (no look-alike characters)
 q        : quit the application

 The length (LENGTH) must be between 6 and 32 characters

 Ambiguous characters excluded by the 'u' option:
 0 O o (zero and letter O)
 1 l I i (one and letters l, I)
 2 Z z (two and letter Z)
 5 S s (five and letter S)
 8 B (eight and letter B)

If the length is omitted, a default of 8 is used`

func (m *model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString("\n")
	b.WriteString(menuStyle.Render(menuText))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: send request • h: help • q: quit"))
	return b.String()
}

func (m *model) viewHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Generator Help"))
	b.WriteString("\n")
	b.WriteString(helpTextStyle.Render(helpText))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("press any key to return"))
	return b.String()
}

func (m *model) viewWaiting() string {
	return fmt.Sprintf("Requesting password from %s ...", m.requester.Addr())
}

func (m *model) viewResult() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Request failed: %v", m.err)))
	} else {
		b.WriteString(successStyle.Render("Password generated: " + m.password))
		if m.copied {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("copied to clipboard"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("c: copy • enter: new request • ctrl+c: quit"))
	return b.String()
}
