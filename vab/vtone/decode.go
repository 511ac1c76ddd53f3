package vtone

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/vazrupe/endibuf"
)

func DecodeEntry(reader *endibuf.Reader) (*Tone, error) {
	e := entry{}
	if err := binary.Read(reader, reader.Endian, &e); err != nil {
		err := errors.Wrap(err, "vtone.DecodeEntry error")
		return nil, err
	}
	tone := fromEntry(e)
	return &tone, nil
}

func DecodeBlock(reader *endibuf.Reader, numTones int) ([]Tone, error) {
	tones := make([]Tone, 0, numTones)
	for i := 0; i < numTones; i++ {
		tone, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "vtone.DecodeBlock error at tone %d", i)
			return nil, err
		}
		tones = append(tones, *tone)
	}
	return tones, nil
}
