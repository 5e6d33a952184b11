package serve

import (
	"context"
	"github.com/fsnotify/fsnotify"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

const rebuildDelay = 200 * time.Millisecond

// startWatch wires the content tree into an fsnotify watcher and starts
// the rebuild loop. Called once from ListenAndServe; failing here only
// costs live reload, the snapshot built at startup keeps serving.
func (s *Server) startWatch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watchTree(w, s.cfg.Content.Dir); err != nil {
		_ = w.Close()
		return err
	}
	s.watcher = w
	go s.watchLoop(ctx, w)
	return nil
}

// watchTree registers root and every directory under it; fsnotify does
// not recurse by itself.
func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func (s *Server) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	log.Printf("[serve] watching %s for changes ...", s.cfg.Content.Dir)

	delay := time.NewTimer(rebuildDelay)
	if !delay.Stop() {
		select {
		case <-delay.C:
		default:
		}
	}
	// 把一阵密集改动合并成一次重建
	bump := func() {
		if !delay.Stop() {
			select {
			case <-delay.C:
			default:
			}
		}
		delay.Reset(rebuildDelay)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create != 0 {
				// 新建的子目录也要纳入监控
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				bump()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[warn] watcher error: %v", err)
		case <-delay.C:
			if err := s.rebuild(); err != nil {
				log.Printf("[serve] rebuild error: %v", err)
			}
		}
	}
}
