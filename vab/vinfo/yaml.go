package vinfo

import (
	"os"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"gopkg.in/yaml.v3"
)

func readYAML(path string, out any) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bs, out)
}

func writeYAML(path string, in any) error {
	bs, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}

// ReadHeaderYAML reads a header written by WriteHeaderYAML. Its waveform
// sizes are left empty: they come from the waveform files.
func ReadHeaderYAML(path string) (*vheader.Header, error) {
	header := vheader.New(0)
	if err := readYAML(path, header); err != nil {
		return nil, errors.Wrapf(err, "ReadHeaderYAML error reading %s", path)
	}
	return header, nil
}

func WriteHeaderYAML(header *vheader.Header, path string) error {
	if err := writeYAML(path, header); err != nil {
		return errors.Wrapf(err, "WriteHeaderYAML error writing %s", path)
	}
	return nil
}

func ReadContainerInfo(path string) (*ContainerInfo, error) {
	info := ContainerInfo{}
	if err := readYAML(path, &info); err != nil {
		return nil, errors.Wrapf(err, "ReadContainerInfo error reading %s", path)
	}
	return &info, nil
}

func WriteContainerInfo(info *ContainerInfo, path string) error {
	if err := writeYAML(path, info); err != nil {
		return errors.Wrapf(err, "WriteContainerInfo error writing %s", path)
	}
	return nil
}
