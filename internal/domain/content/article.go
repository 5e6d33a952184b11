package content

import "fmt"

// Article is one published entry, fully derived at build time. Values
// are plain data and never mutated after the index is built.
type Article struct {
	Slug     string
	Title    string
	Subtitle string
	URL      string
	Content  string // rendered HTML
	Date     string // sortable token, see DateToken
}

func URLFor(slug string) string {
	return "/blog/" + slug + ".html"
}

// DateToken packs year/month/day into a zero-padded string like
// "20230501". Components are not range checked: month 13 becomes "13"
// and sorts after "12". Fixed width is what makes plain string
// comparison order these correctly.
func DateToken(year, month, day int) string {
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}
