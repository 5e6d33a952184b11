package app

import (
	"inkwell/internal/domain/site"
	"inkwell/internal/index"
)

// BuildRoutes derives the route list for one store: the fixed home
// route plus one article route per slug, in store iteration order.
// Deriving from the store value itself is what guarantees every listed
// slug resolves in the store these routes ship with.
func BuildRoutes(st *index.Store) []site.Route {
	routes := make([]site.Route, 0, st.Len()+1)
	routes = append(routes, site.Route{Kind: site.RouteHome, Path: "/"})
	for _, a := range st.Articles() {
		routes = append(routes, site.Route{
			Kind: site.RouteArticle,
			Slug: a.Slug,
			Path: a.URL,
		})
	}
	return routes
}
