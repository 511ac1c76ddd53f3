package vinfo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/ds"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vag"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

func readWaveform(dir string, file FileInfo, opts ImportOptions) ([]byte, error) {
	bs, err := os.ReadFile(filepath.Join(dir, file.Path))
	if err != nil {
		return nil, err
	}
	switch {
	case file.Offset < 0 || file.Offset > int64(len(bs)):
		return nil, verror.New(
			verror.KindSizeMismatch,
			"offset %d out of file %s with length %d",
			file.Offset, file.Path, len(bs),
		)
	case file.Offset > 0:
		bs = bs[file.Offset:]
	case opts.AutodetectVag && vag.IsVagFormat(bs):
		slog.Debug("stripping VAG header", "path", file.Path)
		bs = vag.StripHeader(bs)
	}
	if file.OriginalLength >= 0 && int64(len(bs)) > file.OriginalLength {
		slog.Warn(
			"waveform is larger than the original one",
			"path", file.Path,
			"length", len(bs),
			"original_length", file.OriginalLength,
		)
	}
	padded := ds.NearestDivisibleByM(len(bs), sizeUnit)
	switch {
	case padded == len(bs):
	case opts.PadToSizeUnit:
		slog.Warn(
			"padding waveform to the size table unit",
			"path", file.Path,
			"length", len(bs),
			"padded_length", padded,
		)
		bs = append(bs, make([]byte, padded-len(bs))...)
	default:
		slog.Debug(
			"waveform length is not a multiple of the size table unit",
			"path", file.Path,
			"length", len(bs),
		)
	}
	return bs, nil
}

// Import builds a container from a files.yml listing and a vab.yml header.
// The header node comes last, with its waveform sizes set.
func Import(filesPath string, headerPath string, opts ImportOptions) (*vnode.Container, error) {
	info, err := ReadContainerInfo(filesPath)
	if err != nil {
		return nil, errors.Wrap(err, "Import error")
	}
	if len(info.Files) > vheader.MaximumWaveforms {
		err := verror.New(
			verror.KindTooManyWaveforms,
			"%d files listed, maximum is %d",
			len(info.Files), vheader.MaximumWaveforms,
		)
		return nil, errors.Wrap(err, "Import error")
	}
	header, err := ReadHeaderYAML(headerPath)
	if err != nil {
		return nil, errors.Wrap(err, "Import error")
	}

	dir := filepath.Dir(filesPath)
	container := vnode.NewContainer()
	header.WaveformSizes = make([]int, 0, len(info.Files))
	total := 0
	for i, file := range info.Files {
		bs, err := readWaveform(dir, file, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "Import error reading file %d", i)
		}
		total += len(bs)
		if total > vheader.MaximumTotalWaveformsSize {
			err := verror.New(
				verror.KindTotalSizeExceeded,
				"waveforms take 0x%X bytes up to %s, maximum is 0x%X",
				total, file.Path, vheader.MaximumTotalWaveformsSize,
			)
			return nil, errors.Wrap(err, "Import error")
		}
		name := fmt.Sprintf("audio_%d", i)
		container.Add(vnode.NewBinary(name, lbytes.NewStreamFromBytes(bs)))
		header.WaveformSizes = append(header.WaveformSizes, len(bs))
	}
	container.Add(vnode.NewHeader(header))

	slog.Info("imported", "files", len(info.Files), "programs", len(header.ActivePrograms()), "size", total)
	return container, nil
}
