package shim

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/unicode"
)

func utf16le(t *testing.T, s string, bom bool) []byte {
	t.Helper()
	policy := unicode.IgnoreBOM
	if bom {
		policy = unicode.UseBOM
	}
	b, err := unicode.UTF16(unicode.LittleEndian, policy).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "RSP00003045884740.rsp")
	if err := os.WriteFile(path, data, 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadResponseFile(t *testing.T) {
	const contents = `"/OUT:a.lib" "/DEBUG"`
	tests := []struct {
		name    string
		data    []byte
		wantBOM bool
	}{
		{"no bom", utf16le(t, contents, false), false},
		{"le bom", utf16le(t, contents, true), true},
		{"odd length", append(utf16le(t, contents, false), 'x'), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.data)
			rsp, err := ReadResponseFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if rsp.Name != path {
				t.Errorf("Name = %q; want %q", rsp.Name, path)
			}
			if got := text(rsp.Units); got != contents {
				t.Errorf("Units = %q; want %q", got, contents)
			}
			if rsp.BOM != tt.wantBOM {
				t.Errorf("BOM = %v; want %v", rsp.BOM, tt.wantBOM)
			}
		})
	}
}

func TestReadResponseFileBigEndian(t *testing.T) {
	be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(`"a" "b"`))
	if err != nil {
		t.Fatal(err)
	}
	rsp, err := ReadResponseFile(writeFile(t, be))
	if err != nil {
		t.Fatal(err)
	}
	if got := text(rsp.Units); got != `"a" "b"` || !rsp.BOM {
		t.Errorf("got %q, BOM %v", got, rsp.BOM)
	}

	// Written back little-endian.
	if got, want := rsp.Encode(), utf16le(t, `"a" "b"`, true); !bytes.Equal(got, want) {
		t.Errorf("Encode = % x; want % x", got, want)
	}
}

func TestReadResponseFileMissing(t *testing.T) {
	_, err := ReadResponseFile(filepath.Join(t.TempDir(), "missing.rsp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v; want not exist", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	lone := []byte{'"', 0, 'a', 0, 0x00, 0xd8, '"', 0, ' ', 0, '"', 0, 0x00, 0xdc, '"', 0}
	tests := []struct {
		name string
		data []byte
	}{
		{"no bom", utf16le(t, "\"C:\\Jürgen\\a.obj\" \"日本.obj\"", false)},
		{"bom", utf16le(t, "\"C:\\Jürgen\\a.obj\" \"日本.obj\"", true)},
		{"lone surrogates", lone},
		{"lone surrogates with bom", append([]byte{0xff, 0xfe}, lone...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsp, err := ReadResponseFile(writeFile(t, tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if got := rsp.Encode(); !bytes.Equal(got, tt.data) {
				t.Errorf("round trip = % x; want % x", got, tt.data)
			}
		})
	}
}

func TestReadResponseFileUnits(t *testing.T) {
	rsp, err := ReadResponseFile(writeFile(t, []byte{'a', 0, 0x00, 0xd8, 0x3d, 0xd8, 0x1e, 0xdd}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{'a', 0xd800, 0xd83d, 0xdd1e}, rsp.Units); diff != "" {
		t.Errorf("Units mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpFile(t *testing.T) {
	path := writeFile(t, []byte("a much longer previous content"))
	if err := DumpFile(path, []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("file = %q; want %q", got, "new")
	}
}

func TestDumpFileCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "a.rsp")
	err := DumpFile(path, []byte("x"))
	if !errors.Is(err, ErrCreate) {
		t.Errorf("got error %v; want ErrCreate", err)
	}
}
