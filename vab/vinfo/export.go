package vinfo

import (
	"fmt"
	"hash/crc32"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

// DefaultFileName names an exported waveform after its position and content.
func DefaultFileName(index int, data []byte) string {
	return fmt.Sprintf("%04d_%08X.vag", index, crc32.ChecksumIEEE(data))
}

func exportNames(binaries []vnode.Node, namesPath string) ([]string, error) {
	if namesPath == "" {
		return lo.Map(
			binaries,
			func(node vnode.Node, i int) string {
				return DefaultFileName(i, node.Stream().Bytes())
			},
		), nil
	}
	info, err := ReadContainerInfo(namesPath)
	if err != nil {
		return nil, err
	}
	if len(info.Files) != len(binaries) {
		return nil, verror.New(
			verror.KindCountMismatch,
			"%s lists %d files for %d waveforms",
			namesPath, len(info.Files), len(binaries),
		)
	}
	return lo.Map(
		info.Files,
		func(file FileInfo, _ int) string {
			return file.Path
		},
	), nil
}

// Export writes the header and the waveforms of container into outDir. With
// a namesPath, waveforms take the names of that files.yml, in order, and no
// new files.yml is written.
func Export(container *vnode.Container, outDir string, namesPath string) error {
	header := container.Header()
	if header == nil {
		err := verror.New(verror.KindMissingHeader, "nothing to export")
		return errors.Wrap(err, "Export error")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrap(err, "Export error")
	}
	if err := WriteHeaderYAML(header, filepath.Join(outDir, HeaderFileName)); err != nil {
		return errors.Wrap(err, "Export error")
	}

	binaries := container.Binaries()
	names, err := exportNames(binaries, namesPath)
	if err != nil {
		return errors.Wrap(err, "Export error")
	}
	info := ContainerInfo{Files: make([]FileInfo, 0, len(binaries))}
	written := map[string]bool{}
	for i, node := range binaries {
		data := node.Stream().Bytes()
		name := names[i]
		info.Files = append(info.Files, FileInfo{Path: name, OriginalLength: int64(len(data))})
		if written[name] {
			slog.Info("skipping duplicated file name", "node", node.Name, "path", name)
			continue
		}
		path := filepath.Join(outDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrap(err, "Export error")
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrapf(err, "Export error writing %s", path)
		}
		written[name] = true
		slog.Debug("exported waveform", "node", node.Name, "path", path, "length", len(data))
	}

	if namesPath == "" {
		if err := WriteContainerInfo(&info, filepath.Join(outDir, FilesFileName)); err != nil {
			return errors.Wrap(err, "Export error")
		}
	}
	slog.Info("exported", "dir", outDir, "files", len(written))
	return nil
}
