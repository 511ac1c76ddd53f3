package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Start browses the bank files of cwd until the user quits.
func Start(cwd string) error {
	fileSelector, err := CreateFileSelector(cwd)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(fileSelector).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
