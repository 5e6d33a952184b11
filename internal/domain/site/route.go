package site

type RouteKind string

const (
	RouteHome    RouteKind = "home"
	RouteArticle RouteKind = "article"
)

// Route maps one request path to what the server should look up. The
// home route has no slug; an article route carries the store key the
// path resolves to.
type Route struct {
	Kind RouteKind
	Slug string
	Path string
}

func (r Route) String() string {
	if r.Slug == "" {
		return string(r.Kind) + " " + r.Path
	}
	return string(r.Kind) + " " + r.Slug + " " + r.Path
}
