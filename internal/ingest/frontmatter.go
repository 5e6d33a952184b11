package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
)

var ErrBadFrontMatter = errors.New("malformed front matter")

// FrontMatter is the decoded header of one content file. Absent or null
// keys come out as empty strings; unknown keys are ignored.
type FrontMatter struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// DecodeFrontMatter parses header text as YAML. An empty or
// whitespace-only header is fine and yields the zero value. A non-empty
// header that fails to parse is reported as ErrBadFrontMatter so the
// caller can skip the file and keep going.
func DecodeFrontMatter(header []byte) (FrontMatter, error) {
	var fm FrontMatter
	if len(bytes.TrimSpace(header)) == 0 {
		return fm, nil
	}
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return FrontMatter{}, fmt.Errorf("%w: %v", ErrBadFrontMatter, err)
	}
	return fm, nil
}
