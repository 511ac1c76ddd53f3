package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/psx-vab/ds"
)

const (
	CwdStateCorrect   = "correct"
	CwdStateIncorrect = "incorrect"
	CwdStateBlank     = ""
)

type (
	FileName     string
	FileSelector struct {
		cwd       string
		cwdState  string
		fileNames []FileName
		cursor    int
		// bank is the file being viewed, nil while browsing
		bank *BankView
		err  error
	}
)

var bankExtensions = []string{".vab", ".vh"}

func IsBankFile(name string) bool {
	return lo.Contains(bankExtensions, strings.ToLower(filepath.Ext(name)))
}

func CreateFileSelector(cwd string) (*FileSelector, error) {
	fileNames, err := ReadDirectory(cwd)
	if err != nil {
		return nil, errors.Wrap(err, "CreateFileSelector error")
	}
	cwdState := CwdStateIncorrect
	if len(fileNames) > 0 {
		cwdState = CwdStateCorrect
	}
	return &FileSelector{
		cwd:       cwd,
		cwdState:  cwdState,
		fileNames: fileNames,
	}, nil
}

// ReadDirectory lists the VAB and VH files of path, sorted by name.
func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	bankEntries := lo.Filter(
		entries,
		func(entry os.DirEntry, _ int) bool {
			return !entry.IsDir() && IsBankFile(entry.Name())
		},
	)
	fileNames := lo.Map(
		bankEntries,
		func(entry os.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	)
	sort.Slice(fileNames, func(i, j int) bool { return fileNames[i] < fileNames[j] })
	return fileNames, nil
}

func (s *FileSelector) Selected() (FileName, bool) {
	if s.cursor < 0 || s.cursor >= len(s.fileNames) {
		return "", false
	}
	return s.fileNames[s.cursor], true
}

func (s *FileSelector) View() string {
	if s.bank != nil {
		return s.bank.View()
	}

	output := "PSX VAB\n\n"
	output += "Current directory: " + s.cwd + "\n"

	switch s.cwdState {
	case CwdStateIncorrect, CwdStateBlank:
		output += "No .vab or .vh file here, please start from another folder\n"
	case CwdStateCorrect:
		for i, fileName := range s.fileNames {
			marker := "  "
			if i == s.cursor {
				marker = "> "
			}
			output += fmt.Sprintf("%s%s\n", marker, fileName)
		}
	default:
		panic(ds.ErrUnreachableCode{
			Caller: "FileSelector.View",
			Detail: fmt.Sprintf("invalid directory state %q", s.cwdState),
		})
	}
	if s.err != nil {
		output += "\nError: " + s.err.Error() + "\n"
	}
	output += "\nup/down: move, enter: open, q: quit\n"

	return output
}

func (s *FileSelector) open() {
	fileName, ok := s.Selected()
	if !ok {
		return
	}
	bank, err := LoadBankView(filepath.Join(s.cwd, string(fileName)))
	if err != nil {
		s.err = err
		return
	}
	s.err = nil
	s.bank = bank
}

func (s *FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	}
	if s.bank != nil {
		switch keyMsg.String() {
		case "esc", "backspace", "left", "h":
			s.bank = nil
		default:
			s.bank.Update(keyMsg)
		}
		return s, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.fileNames)-1 {
			s.cursor++
		}
	case "enter", "right", "l":
		s.open()
	}
	return s, nil
}

func (s *FileSelector) Init() tea.Cmd {
	return nil
}
