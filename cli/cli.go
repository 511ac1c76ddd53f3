package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Export      *ExportCmd      `arg:"subcommand:export"`
		Import      *ImportCmd      `arg:"subcommand:import"`
		Info        *InfoCmd        `arg:"subcommand:info"`
		Verbose     bool            `arg:"-v" help:"log debug messages"`
	}
	InteractiveCmd struct {
		Dir string `arg:"positional" help:"folder to browse, the current one by default" placeholder:"DIR"`
	}
	ExportCmd struct {
		// the body is only needed next to a .vh file
		Input  string `arg:"required" help:"path to the .vab or .vh file" placeholder:"bank.vab"`
		Body   string `help:"path to the .vb file of a .vh" placeholder:"bank.vb"`
		Output string `arg:"required" help:"folder to export into" placeholder:"DIR"`
		Names  string `help:"files.yml of a previous export to reuse its names" placeholder:"files.yml"`
		Strict bool   `help:"reject headers with a wrong full size"`
		Force  bool   `help:"export into a non-empty folder"`
	}
	ImportCmd struct {
		Files      string `arg:"required" help:"path to files.yml" placeholder:"files.yml"`
		Header     string `arg:"required" help:"path to vab.yml" placeholder:"vab.yml"`
		Output     string `arg:"required" help:"path to the .vab, or .vh to write a .vh and a .vb" placeholder:"bank.vab"`
		Autodetect bool   `help:"strip the header of VAG files"`
		Pad        bool   `help:"pad waveforms with zeros to a multiple of 8 bytes"`
		Force      bool   `help:"overwrite the destination file"`
	}
	InfoCmd struct {
		Input string `arg:"positional,required" help:"path to the .vab or .vh file" placeholder:"FILE"`
		JSON  bool   `arg:"--json" help:"print the header as JSON"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to unpack and repack PlayStation VAB sound banks",
			"(.vab, or a .vh header with its .vb body).",
		},
		"\n",
	)
	des += "\n"
	return des
}

func SetupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartInteractive(dir string) error {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "StartInteractive get current working directory error")
		}
		dir = cwd
	}
	return ui.Start(dir)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	SetupLogger(args.Verbose)

	var err error
	switch {
	case args.Export != nil:
		err = StartExporting(*args.Export)
	case args.Import != nil:
		err = StartImporting(*args.Import)
	case args.Info != nil:
		err = StartInfo(*args.Info, os.Stdout)
	case args.Interactive != nil:
		err = StartInteractive(args.Interactive.Dir)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		slog.Error("failed", "error", err)
		os.Exit(1)
	}
}
