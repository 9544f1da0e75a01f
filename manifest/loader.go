package manifest

import (
	"bufio"
	"io"
	"os"

	"github.com/kbukum/decodekit/errors"
)

// Load reads a manifest from r, one record per line, preserving order.
// No filtering or deduplication is applied.
func Load(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		rec := ParseRecord(scanner.Text())
		rec.Line = len(records) + 1
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.ManifestUnreadable("<reader>", err)
	}
	return records, nil
}

// LoadFile reads the manifest at path. An unreadable manifest is a fatal
// configuration error; callers are not expected to retry.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ManifestUnreadable(path, err)
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, errors.ManifestUnreadable(path, err)
	}
	return records, nil
}
