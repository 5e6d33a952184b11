package ingest

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Candidate is a file the walk turned up; whether it is content is
// decided by the filename grammar, not here.
type Candidate struct {
	Path string
}

// DiscoverSource walks root and collects every file carrying the content
// extension. The match here is deliberately loose (case-insensitive);
// the filename grammar check happens later and is the strict gate. No
// ordering is promised beyond what the walk happens to produce.
func DiscoverSource(root, ext string) ([]Candidate, error) {
	suffix := strings.ToLower(ext)
	var out []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir():
			return nil
		case strings.HasSuffix(strings.ToLower(d.Name()), suffix):
			out = append(out, Candidate{Path: path})
		}
		return nil
	})
	return out, err
}
