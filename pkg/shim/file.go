package shim

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// ErrCreate reports that a file could not be opened for writing, as
// opposed to failing part way through the write.
var ErrCreate = errors.New("cannot create file")

var (
	bomLE = []byte{0xff, 0xfe}
	bomBE = []byte{0xfe, 0xff}
)

// ResponseFile is a UTF-16 response file held as raw code units. The
// units are never decoded, so names that are not well-formed UTF-16
// survive a rewrite.
type ResponseFile struct {
	Name  string
	Units []uint16

	// BOM records whether the file on disk started with a byte-order mark.
	BOM bool
}

// ReadResponseFile reads the UTF-16 file at path. A byte-order mark
// selects the byte order; without one the file is taken to be
// little-endian. A trailing odd byte is dropped.
func ReadResponseFile(path string) (*ResponseFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw = raw[:len(raw)&^1]

	f := &ResponseFile{Name: path}
	var order binary.ByteOrder = binary.LittleEndian
	switch {
	case bytes.HasPrefix(raw, bomLE):
		f.BOM, raw = true, raw[len(bomLE):]
	case bytes.HasPrefix(raw, bomBE):
		order = binary.BigEndian
		f.BOM, raw = true, raw[len(bomBE):]
	}

	f.Units = make([]uint16, len(raw)/2)
	for i := range f.Units {
		f.Units[i] = order.Uint16(raw[2*i:])
	}
	return f, nil
}

// Encode returns the units as UTF-16LE, with a byte-order mark only if
// the file was read with one.
func (f *ResponseFile) Encode() []byte {
	var b []byte
	if f.BOM {
		b = make([]byte, len(bomLE), len(bomLE)+2*len(f.Units))
		copy(b, bomLE)
	} else {
		b = make([]byte, 0, 2*len(f.Units))
	}
	for _, u := range f.Units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

// FileWriter replaces the contents of a file. Implementations wrap a
// failure to open the file with ErrCreate.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}

type osWriter struct{}

func (osWriter) WriteFile(path string, data []byte) error {
	return DumpFile(path, data)
}

// DumpFile replaces the file at path with data. The file is closed
// before DumpFile returns.
func DumpFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreate, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
