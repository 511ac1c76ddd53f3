// Package vinfo moves a decoded VAB to and from a folder: the header as
// vab.yml, each waveform as its own file, and files.yml listing them in order.
package vinfo

import (
	"gopkg.in/yaml.v3"
)

type (
	ContainerInfo struct {
		Files []FileInfo `yaml:"files"`
	}
	FileInfo struct {
		// Path is relative to the folder of the files.yml listing it.
		Path string `yaml:"path"`
		// Offset skips the first bytes of the file; never written on export.
		Offset int64 `yaml:"offset,omitempty"`
		// OriginalLength is the exported length, -1 when unknown.
		OriginalLength int64 `yaml:"original_length"`
	}
	ImportOptions struct {
		// AutodetectVag strips the VAG header of files that have one and no
		// explicit offset.
		AutodetectVag bool
		// PadToSizeUnit appends zeros to waveforms whose length is not a
		// multiple of the size table unit.
		PadToSizeUnit bool
	}
)

const (
	HeaderFileName = "vab.yml"
	FilesFileName  = "files.yml"
	// sizeUnit is the granularity of the waveform size table.
	sizeUnit = 8
)

func (r *FileInfo) UnmarshalYAML(value *yaml.Node) error {
	type plain FileInfo
	info := plain{OriginalLength: -1}
	if err := value.Decode(&info); err != nil {
		return err
	}
	*r = FileInfo(info)
	return nil
}
