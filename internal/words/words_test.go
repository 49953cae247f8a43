package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadSplitsLines(t *testing.T) {
	got, err := Load(strings.NewReader("a\nb\nc\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load = %q, want %q", got, want)
	}
}

func TestLoadKeepsEntriesVerbatim(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"crlf", "Hallo\r\ndies\r\nist\r\neine\r\nWortliste!\r\n", []string{"Hallo", "dies", "ist", "eine", "Wortliste!"}},
		{"no trailing newline", "x\ny", []string{"x", "y"}},
		{"blank and duplicate", "a\n\na\n", []string{"a", "", "a"}},
		{"whitespace kept", " pad \n", []string{" pad "}},
		{"empty", "", []string{}},
		{"byte order mark", "\ufeffapple\nbanana\n", []string{"apple", "banana"}},
		{"lone carriage return", "a\rb\r\nc\r", []string{"a", "b", "c"}},
		{"blank crlf lines", "a\r\n\r\nb\r\n", []string{"a", "", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(c.in))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Load = %q, want %q", got, c.want)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoadSurfacesReadErrors(t *testing.T) {
	if _, err := Load(failingReader{}); !errors.Is(err, ErrRead) {
		t.Fatalf("err = %v, want ErrRead", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("eins\nzwei\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if want := []string{"eins", "zwei"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadFile = %q, want %q", got, want)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrRead) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want ErrRead wrapping fs.ErrNotExist", err)
	}
}

func TestSourceFallsBackToEmbedded(t *testing.T) {
	got, err := Source("")
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("embedded list is empty")
	}
	for _, w := range got {
		if w == "" {
			t.Fatalf("embedded list contains a blank entry")
		}
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"b", "a", "b", "c", "a"})
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe = %q, want %q", got, want)
	}
}

func TestLoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	got, err := Load(strings.NewReader(long + "\nshort\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Fatalf("Load returned %d entries, first has %d bytes", len(got), len(got[0]))
	}
}
