package serve

import (
	"context"
	"fmt"
	"github.com/fsnotify/fsnotify"
	"html/template"
	"inkwell/internal/app"
	"inkwell/internal/domain/config"
	"inkwell/internal/domain/content"
	"inkwell/internal/index"
	"inkwell/internal/ingest"
	"inkwell/internal/render"
	"log"
	"net/http"
	"strings"
	"time"
)

type Server struct {
	cfg config.Config

	md    render.Renderer
	cache *render.Cache

	holder *index.Holder
	hub    *reloadHub

	watcher *fsnotify.Watcher
}

func New(cfg config.Config) (*Server, error) {
	cache, err := render.OpenCache(cfg.Serve.CachePath)
	if err != nil {
		return nil, fmt.Errorf("serve: failed to open render cache: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		md:     render.NewCachedRenderer(render.NewMarkdownRenderer(), cache),
		cache:  cache,
		holder: index.NewHolder(),
		hub:    newReloadHub(),
	}
	return s, nil
}

func (s *Server) Close() error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.rebuild(); err != nil {
		return err
	}

	// 启动文件监控；失败只降级为警告，继续用当前快照提供服务
	if err := s.startWatch(ctx); err != nil {
		log.Printf("[warn] watch disabled: %v", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: s.handler(),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	log.Printf("[serve] listening on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/blog/", s.handleArticle)
	mux.HandleFunc("/dev/events", s.handleSSE)
	return mux
}

// rebuild re-ingests the whole content tree and publishes a fresh
// snapshot. It runs on one goroutine at a time (startup, then the watch
// loop) and readers keep the previous snapshot until Replace.
func (s *Server) rebuild() error {
	dir := s.cfg.Content.Dir
	log.Printf("[serve] ingest from %s ...", dir)
	start := time.Now()

	files, rep, err := ingest.Load(dir, s.cfg.Content.Extension)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	builder := index.Builder{Renderer: s.md}
	st, brep := builder.Build(files)
	rep.Merge(brep)

	for _, w := range rep.Warnings {
		log.Printf("[warn] %s: %s", w.Path, w.Msg)
	}
	for _, fe := range rep.Errors {
		log.Printf("[warn] skipped %s: %v", fe.Path, fe.Err)
	}

	routes := app.BuildRoutes(st)
	s.holder.Replace(&index.Snapshot{Store: st, Routes: routes})

	log.Printf("[serve] ingested %d articles, %d routes (%d skipped) in %s",
		st.Len(), len(routes), len(rep.Errors), time.Since(start).Round(time.Millisecond))
	s.hub.notify("reload")

	return nil
}

var homeTpl = template.Must(template.New("home").Parse(`<!doctype html>
<html lang="{{.Site.Language}}">
<head><meta charset="utf-8"><title>{{.Site.Title}}</title></head>
<body>
<h1>{{.Site.Title}}</h1>
{{if .Site.Subtitle}}<p>{{.Site.Subtitle}}</p>{{end}}
<h2>Latest</h2>
<ul>
{{range .Recent}}<li><a href="{{.URL}}">{{if .Title}}{{.Title}}{{else}}{{.Slug}}{{end}}</a></li>
{{end}}</ul>
<h2>Archive</h2>
<ul>
{{range .All}}<li>{{.Date}} <a href="{{.URL}}">{{if .Title}}{{.Title}}{{else}}{{.Slug}}{{end}}</a></li>
{{end}}</ul>
{{if .Site.Author}}<p>{{.Site.Author}}</p>{{end}}
<script>new EventSource("/dev/events").onmessage=function(e){if(e.data==="reload")location.reload()}</script>
</body>
</html>
`))

type homeData struct {
	Site   config.SiteConfig
	Recent []content.Article
	All    []content.Article
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.handleNotFound(w, r)
		return
	}
	snap := s.holder.Current()
	if snap == nil {
		http.Error(w, "index not ready", http.StatusServiceUnavailable)
		return
	}

	data := homeData{
		Site:   s.cfg.Site,
		Recent: index.Recent(snap.Store),
		All:    index.Chronological(snap.Store),
	}
	var buf strings.Builder
	if err := homeTpl.Execute(&buf, data); err != nil {
		log.Printf("render home error: %v", err)
		http.Error(w, "render home error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, []byte(buf.String()))
}

var articleTpl = template.Must(template.New("article").Parse(`<!doctype html>
<html lang="{{.Lang}}">
<head><meta charset="utf-8"><title>{{.Article.Title}}</title></head>
<body>
<article>
<h1>{{if .Article.Title}}{{.Article.Title}}{{else}}{{.Article.Slug}}{{end}}</h1>
{{if .Article.Subtitle}}<p>{{.Article.Subtitle}}</p>{{end}}
{{.Body}}
</article>
<script>new EventSource("/dev/events").onmessage=function(e){if(e.data==="reload")location.reload()}</script>
</body>
</html>
`))

type articleData struct {
	Lang    string
	Article content.Article
	Body    template.HTML
}

// 文章页：/blog/<slug>.html
func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	snap := s.holder.Current()
	if snap == nil {
		http.Error(w, "index not ready", http.StatusServiceUnavailable)
		return
	}

	slug, ok := slugFromPath(r.URL.Path)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	// 路由和快照可能短暂不一致，查不到就按 404 处理
	art, err := snap.Store.Get(slug)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}

	data := articleData{
		Lang:    s.cfg.Site.Language,
		Article: art,
		Body:    template.HTML(art.Content),
	}
	var buf strings.Builder
	if err := articleTpl.Execute(&buf, data); err != nil {
		log.Printf("render article error: %v", err)
		http.Error(w, "render article error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, []byte(buf.String()))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

func slugFromPath(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/blog/")
	if rest == path || rest == "" {
		return "", false
	}
	slug, ok := strings.CutSuffix(rest, ".html")
	if !ok || slug == "" {
		return "", false
	}
	return slug, true
}

func writeHTML(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
