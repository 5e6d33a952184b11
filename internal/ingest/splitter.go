package ingest

import "bytes"

var frontMatterDelim = []byte("---")

// SplitFrontMatter cuts raw file text into a front-matter header and the
// body that follows it. A delimiter is any line beginning with three
// dashes; the rest of that line is ignored. When the text itself starts
// with the delimiter the search begins right after those three bytes, so
// the opening line can never match itself and whatever line is found is
// taken as the closing marker. Only that single closing occurrence is
// ever searched for; there is no separate check that a proper opening
// line exists. No delimiter found means no front matter at all and the
// body is the input unchanged, opening line included.
func SplitFrontMatter(raw []byte) (header, body []byte) {
	search := 0
	opened := false
	if bytes.HasPrefix(raw, frontMatterDelim) {
		search = len(frontMatterDelim)
		opened = true
	}

	at := findDelimLine(raw, search)
	if at < 0 {
		return nil, raw
	}

	headStart := search
	if opened {
		// 跳过开头分隔行本身，从下一行开始才算 header
		nl := bytes.IndexByte(raw[search:], '\n')
		headStart = search + nl + 1
	}
	header = raw[headStart:at]

	lineEnd := bytes.IndexByte(raw[at:], '\n')
	if lineEnd < 0 {
		return header, nil
	}
	return header, raw[at+lineEnd+1:]
}

// findDelimLine returns the offset of the first line at or after start
// that begins with the delimiter, or -1. A position only counts as a
// line start when it is offset 0 or preceded by a newline, so dashes in
// the middle of a line never match.
func findDelimLine(raw []byte, start int) int {
	i := start
	if i > 0 && raw[i-1] != '\n' {
		nl := bytes.IndexByte(raw[i:], '\n')
		if nl < 0 {
			return -1
		}
		i += nl + 1
	}
	for i < len(raw) {
		if bytes.HasPrefix(raw[i:], frontMatterDelim) {
			return i
		}
		nl := bytes.IndexByte(raw[i:], '\n')
		if nl < 0 {
			return -1
		}
		i += nl + 1
	}
	return -1
}
