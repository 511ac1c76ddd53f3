package lbytes

import (
	"io"

	"github.com/pkg/errors"
)

func NewStream() *Stream {
	return &Stream{
		buf: &buffer{data: make([]byte, 0)},
	}
}

func NewStreamFromBytes(bs []byte) *Stream {
	return &Stream{
		buf:    &buffer{data: bs},
		length: int64(len(bs)),
	}
}

func (s *Stream) Len() int64 {
	return s.length
}

func (s *Stream) Position() int64 {
	return s.pos
}

// Bytes returns the content of the stream without copying it.
func (s *Stream) Bytes() []byte {
	return s.buf.data[s.offset : s.offset+s.length : s.offset+s.length]
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= s.length {
		return 0, io.EOF
	}
	n := copy(p, s.Bytes()[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *Stream) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > s.length {
		if err := s.grow(end); err != nil {
			return 0, err
		}
	}
	n := copy(s.buf.data[s.offset+s.pos:], p)
	s.pos += int64(n)
	return n, nil
}

func (s *Stream) grow(length int64) error {
	if s.fixed {
		return errors.Wrapf(ErrFixedLength, "Stream.Write past length %d", s.length)
	}
	// root streams own the whole buffer from offset zero
	if needed := s.offset + length; needed > int64(len(s.buf.data)) {
		s.buf.data = append(s.buf.data, make([]byte, needed-int64(len(s.buf.data)))...)
	}
	s.length = length
	return nil
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	newPos := int64(0)
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = s.pos + offset
	case io.SeekEnd:
		newPos = s.length + offset
	default:
		return s.pos, errors.Errorf("Stream.Seek invalid whence %d", whence)
	}
	if newPos < 0 {
		return s.pos, ErrNegativeSeek
	}
	s.pos = newPos
	return s.pos, nil
}

// Slice creates a new stream over [offset, offset+length) of s sharing its buffer.
func (s *Stream) Slice(offset int64, length int64) (*Stream, error) {
	if offset < 0 || length < 0 || offset+length > s.length {
		err := errors.Wrapf(
			io.ErrUnexpectedEOF,
			"Stream.Slice range [%d, %d) out of stream length %d",
			offset, offset+length, s.length,
		)
		return nil, err
	}
	return &Stream{
		buf:    s.buf,
		offset: s.offset + offset,
		length: length,
		fixed:  true,
	}, nil
}
