package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"github.com/thanhnguyen2187/psx-vab/vab/vprogram"
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
)

// BankView shows the header of a bank, one active program at a time.
type BankView struct {
	path    string
	header  *vheader.Header
	program int
}

// LoadBankView decodes the header of a .vab or .vh file. The body is not needed.
func LoadBankView(path string) (*BankView, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "LoadBankView error")
	}
	header, err := vheader.Decode(lbytes.NewStreamFromBytes(bs), vheader.DefaultOptions())
	if err != nil {
		return nil, errors.Wrapf(err, "LoadBankView error decoding %s", path)
	}
	return &BankView{
		path:   path,
		header: header,
	}, nil
}

func (r *BankView) Program() (vprogram.Program, bool) {
	programs := r.header.ActivePrograms()
	if r.program >= len(programs) {
		return vprogram.Program{}, false
	}
	return programs[r.program], true
}

func (r *BankView) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if r.program > 0 {
			r.program--
		}
	case "down", "j":
		if r.program < len(r.header.ActivePrograms())-1 {
			r.program++
		}
	}
}

func (r *BankView) View() string {
	header := r.header
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%s\n\n", filepath.Base(r.path)))
	sb.WriteString(fmt.Sprintf("Version: %d, ID: %d\n", header.Version, header.ID))
	sb.WriteString(fmt.Sprintf("Master volume: %d, master pan: %d\n", header.MasterVolume, header.MasterPan))
	sb.WriteString(
		fmt.Sprintf(
			"Programs: %d, tones: %d, waveforms: %d (%d bytes)\n\n",
			len(header.ActivePrograms()), header.ToneCount(), header.WaveformCount(), header.BodySize(),
		),
	)

	program, ok := r.Program()
	if ok {
		sb.WriteString(
			fmt.Sprintf(
				"Program %d (%d/%d): volume %d, panning %d, priority %d\n",
				program.Index, r.program+1, len(header.ActivePrograms()),
				program.MasterVolume, program.MasterPanning, program.Priority,
			),
		)
		lines := lo.Map(
			program.Tones,
			func(tone vtone.Tone, i int) string {
				return fmt.Sprintf(
					"  tone %2d: keys %3d-%3d, centre %3d, volume %3d, waveform %d (%d bytes)",
					i, tone.Minimum, tone.Maximum, tone.Centre, tone.Volume,
					tone.WaveformIndex, r.waveformSize(int(tone.WaveformIndex)),
				)
			},
		)
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString("\nup/down: program, esc: back, q: quit\n")
	return sb.String()
}

func (r *BankView) waveformSize(index int) int {
	if index < 0 || index >= len(r.header.WaveformSizes) {
		return 0
	}
	return r.header.WaveformSizes[index]
}
