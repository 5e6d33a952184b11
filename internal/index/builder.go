package index

import (
	"inkwell/internal/domain/content"
	"inkwell/internal/ingest"
	"inkwell/internal/render"
)

// Builder folds loaded content files into a Store. The fold runs on the
// calling goroutine, one file at a time, in the order given; with
// duplicate slugs that order decides which file wins.
type Builder struct {
	Renderer render.Renderer
}

// Build produces a complete store plus a report of files that had to be
// skipped. A file either contributes a fully derived article or nothing
// at all; a decode or render failure never leaves a partial entry
// behind.
func (b *Builder) Build(files []ingest.File) (*Store, ingest.Report) {
	var rep ingest.Report
	st := newStore(len(files))

	for _, f := range files {
		header, body := ingest.SplitFrontMatter(f.Raw)
		fm, err := ingest.DecodeFrontMatter(header)
		if err != nil {
			rep.Fail(f.Path, err)
			continue
		}
		html, err := b.Renderer.Render(body)
		if err != nil {
			rep.Fail(f.Path, err)
			continue
		}
		m := f.Match
		st.insert(content.Article{
			Slug:     m.Slug,
			Title:    fm.Title,
			Subtitle: fm.Subtitle,
			URL:      content.URLFor(m.Slug),
			Content:  string(html),
			Date:     content.DateToken(m.Year, m.Month, m.Day),
		})
	}
	return st, rep
}
