package manifest

import "strings"

// Record is a single manifest line: a primary input token plus an optional
// reference transcript built from the trailing tokens.
type Record struct {
	// Input is the path or identifier of the input to decode.
	Input string `json:"input"`
	// Reference is the reference transcript. Only meaningful when
	// HasReference is true; an absent reference is not the same value as
	// an empty one.
	Reference string `json:"reference,omitempty"`
	// HasReference reports whether the record carried any trailing tokens.
	HasReference bool `json:"has_reference"`
	// Line is the 1-based line number of this record in the manifest it was
	// loaded from. Zero for records built by hand. Sharding and striding do
	// not renumber records, so errors can point back at the original file.
	Line int `json:"line,omitempty"`
}

// ParseRecord splits a manifest line into a Record. The first
// whitespace-separated token is the input; any remaining tokens are joined
// with single spaces to form the reference. Original spacing between
// reference tokens is not preserved. A blank line parses to a Record with
// an empty Input, which is surfaced as an error at dispatch time rather
// than filtered here.
func ParseRecord(line string) Record {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}
	}
	rec := Record{Input: fields[0]}
	if len(fields) > 1 {
		rec.Reference = strings.Join(fields[1:], " ")
		rec.HasReference = true
	}
	return rec
}
