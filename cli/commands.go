package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/ds"
	"github.com/thanhnguyen2187/psx-vab/vab"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"github.com/thanhnguyen2187/psx-vab/vab/vinfo"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

func isHeaderOnly(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vh")
}

// siblingBody returns the .vb path next to a .vh one.
func siblingBody(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".vb"
}

func readStream(path string) (*lbytes.Stream, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return lbytes.NewStreamFromBytes(bs), nil
}

func decodeFile(input string, body string, opts vheader.Options) (*vnode.Container, error) {
	stream, err := readStream(input)
	if err != nil {
		return nil, err
	}
	if !isHeaderOnly(input) {
		return vab.DecodeVAB(stream, opts)
	}
	if body == "" {
		body = siblingBody(input)
	}
	slog.Debug("reading body", "path", body)
	bodyStream, err := readStream(body)
	if err != nil {
		return nil, err
	}
	return vab.DecodeVHVB(stream, bodyStream, opts)
}

func StartExporting(cmd ExportCmd) error {
	if !CheckExistence(cmd.Input) {
		return errors.Errorf("source file %s does not exist", cmd.Input)
	}
	if entries, err := os.ReadDir(cmd.Output); err == nil && len(entries) > 0 && !cmd.Force {
		return errors.Errorf("destination folder %s is not empty, use --force to export anyway", cmd.Output)
	}
	opts := vheader.DefaultOptions()
	opts.StrictSize = cmd.Strict
	container, err := decodeFile(cmd.Input, cmd.Body, opts)
	if err != nil {
		return errors.Wrap(err, "StartExporting error")
	}
	if err := vinfo.Export(container, cmd.Output, cmd.Names); err != nil {
		return errors.Wrap(err, "StartExporting error")
	}
	return nil
}

func writeOutput(path string, bs []byte, force bool) error {
	if CheckExistence(path) && !force {
		return errors.Errorf("destination file %s exists, use --force to overwrite it", path)
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return err
	}
	slog.Info("written", "path", path, "size", len(bs))
	return nil
}

func StartImporting(cmd ImportCmd) error {
	importOpts := vinfo.ImportOptions{
		AutodetectVag: cmd.Autodetect,
		PadToSizeUnit: cmd.Pad,
	}
	container, err := vinfo.Import(cmd.Files, cmd.Header, importOpts)
	if err != nil {
		return errors.Wrap(err, "StartImporting error")
	}
	opts := vab.DefaultEncodeOptions()
	if !isHeaderOnly(cmd.Output) {
		bs, err := vab.EncodeVAB(container, opts)
		if err != nil {
			return errors.Wrap(err, "StartImporting error")
		}
		return writeOutput(cmd.Output, bs, cmd.Force)
	}
	vh, vb, err := vab.EncodeVHVB(container, opts)
	if err != nil {
		return errors.Wrap(err, "StartImporting error")
	}
	if err := writeOutput(cmd.Output, vh, cmd.Force); err != nil {
		return errors.Wrap(err, "StartImporting error")
	}
	return writeOutput(siblingBody(cmd.Output), vb, cmd.Force)
}

func StartInfo(cmd InfoCmd, w io.Writer) error {
	stream, err := readStream(cmd.Input)
	if err != nil {
		return errors.Wrap(err, "StartInfo error")
	}
	header, err := vheader.Decode(stream, vheader.DefaultOptions())
	if err != nil {
		return errors.Wrap(err, "StartInfo error")
	}
	if cmd.JSON {
		_, err := fmt.Fprintln(w, ds.DumpIndentedJSON(header))
		return err
	}
	_, err = fmt.Fprintf(
		w,
		"version: %d\nid: %d\nprograms: %d\ntones: %d\nwaveforms: %d\nheader size: %d\nfull size: %d\n",
		header.Version,
		header.ID,
		len(header.ActivePrograms()),
		header.ToneCount(),
		header.WaveformCount(),
		header.HeaderSize(),
		header.FullSize(),
	)
	return err
}
