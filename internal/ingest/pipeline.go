package ingest

import (
	"errors"
	"io/fs"
	"os"
)

// File is one discovered content file whose name matched the grammar,
// read into memory and ready for the index builder.
type File struct {
	Path  string
	Match FilenameMatch
	Raw   []byte
}

type Warning struct {
	Path string
	Msg  string
}

// FileError records one file that had to be skipped and why. The run as
// a whole keeps going.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report collects everything non-fatal that happened during one load or
// build pass, for the operator log.
type Report struct {
	Warnings []Warning
	Errors   []FileError
}

func (r *Report) Warn(path, msg string) {
	r.Warnings = append(r.Warnings, Warning{Path: path, Msg: msg})
}

func (r *Report) Fail(path string, err error) {
	r.Errors = append(r.Errors, FileError{Path: path, Err: err})
}

func (r *Report) Merge(other Report) {
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Load discovers content files under root, keeps the ones whose names
// match the grammar, and reads them. A missing root is not an error:
// the site simply starts empty, with a warning in the report. Unreadable
// files are skipped and reported the same way. Files are returned in
// walk order and the builder processes them in that order.
func Load(root, ext string) ([]File, Report, error) {
	var rep Report

	sources, err := DiscoverSource(root, ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			rep.Warn(root, "content directory missing, starting with an empty index")
			return nil, rep, nil
		}
		return nil, rep, err
	}

	parser := NewFilenameParser(ext)
	var out []File
	for _, sf := range sources {
		match, ok := parser.Match(sf.Path)
		if !ok {
			// 文件名不符合规则，静默跳过
			continue
		}
		raw, err := os.ReadFile(sf.Path)
		if err != nil {
			rep.Fail(sf.Path, err)
			continue
		}
		out = append(out, File{Path: sf.Path, Match: match, Raw: raw})
	}
	return out, rep, nil
}
