// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the interactive requester menu and blocks until the user
// quits it.
func Run(r Requester) error {
	_, err := tea.NewProgram(newModel(r)).Run()
	return err
}
