package ingest

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// FilenameMatch is the parsed form of a dated content filename. It only
// lives long enough to build the article; nothing stores it.
type FilenameMatch struct {
	Path  string
	Slug  string
	Year  int
	Month int
	Day   int
	Ext   string
}

// FilenameParser recognizes names shaped like 2023-05-01-my-post.md:
// three runs of digits, a slug that may itself contain hyphens, then
// the exact content extension. Anything else is not content and callers
// skip it without comment. The digits are taken literally, there is no
// calendar check, so 2023-13-40-x.md parses fine.
type FilenameParser struct {
	ext string
	re  *regexp.Regexp
}

func NewFilenameParser(ext string) *FilenameParser {
	re := regexp.MustCompile(`^(\d+)-(\d+)-(\d+)-(.+)` + regexp.QuoteMeta(ext) + `$`)
	return &FilenameParser{ext: ext, re: re}
}

func (p *FilenameParser) Match(path string) (FilenameMatch, bool) {
	name := filepath.Base(path)
	groups := p.re.FindStringSubmatch(name)
	if groups == nil {
		return FilenameMatch{}, false
	}
	year, err := strconv.Atoi(groups[1])
	if err != nil {
		return FilenameMatch{}, false
	}
	month, err := strconv.Atoi(groups[2])
	if err != nil {
		return FilenameMatch{}, false
	}
	day, err := strconv.Atoi(groups[3])
	if err != nil {
		return FilenameMatch{}, false
	}
	return FilenameMatch{
		Path:  path,
		Slug:  groups[4],
		Year:  year,
		Month: month,
		Day:   day,
		Ext:   p.ext,
	}, true
}
