package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/decodekit/errors"
)

func TestLoadPreservesOrder(t *testing.T) {
	input := "c.wav THIRD\na.wav FIRST\nb.wav\n"
	records, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	wantInputs := []string{"c.wav", "a.wav", "b.wav"}
	for i, want := range wantInputs {
		if records[i].Input != want {
			t.Errorf("records[%d].Input = %q, want %q", i, records[i].Input, want)
		}
	}
}

func TestLoadNumbersLines(t *testing.T) {
	input := "a.wav\nb.wav REF\n\nc.wav\n"
	records, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}
	for i, rec := range records {
		if rec.Line != i+1 {
			t.Errorf("records[%d].Line = %d, want %d", i, rec.Line, i+1)
		}
	}
}

func TestLoadKeepsDuplicatesAndBlanks(t *testing.T) {
	// no filtering or deduplication: blank lines and repeats stay in place
	input := "a.wav\n\na.wav\n"
	records, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	if records[1].Input != "" {
		t.Errorf("records[1].Input = %q, want empty for blank line", records[1].Input)
	}
}

func TestLoadEmpty(t *testing.T) {
	records, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	if err := os.WriteFile(path, []byte("a.wav HELLO\nb.wav\n"), 0o600); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Reference != "HELLO" || !records[0].HasReference {
		t.Errorf("records[0] = %+v, want reference HELLO", records[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/does/not/exist.txt")
	if err == nil {
		t.Fatal("LoadFile = nil, want error")
	}
	if errors.CodeOf(err) != errors.ErrCodeManifestUnreadable {
		t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.ErrCodeManifestUnreadable)
	}
}
