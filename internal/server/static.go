package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

//go:embed web
var webFS embed.FS

// indexFile is served for every path that is not a file in the web root.
const indexFile = "index.html"

func (s *Server) staticHandler() (http.Handler, error) {
	root, err := s.webRoot()
	if err != nil {
		return nil, err
	}
	if _, err := fs.Stat(root, indexFile); err != nil {
		return nil, fmt.Errorf("web root has no %s: %w", indexFile, err)
	}
	return spaHandler(root), nil
}

func (s *Server) webRoot() (fs.FS, error) {
	if s.cfg.StaticDir == "" {
		return fs.Sub(webFS, "web")
	}
	info, err := os.Stat(s.cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s is not a directory", s.cfg.StaticDir)
	}
	return os.DirFS(s.cfg.StaticDir), nil
}

// spaHandler serves files from root and falls back to index.html for any
// path that does not name a regular file.
func spaHandler(root fs.FS) http.Handler {
	files := http.FileServerFS(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name != "" {
			if info, err := fs.Stat(root, name); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFileFS(w, r, root, indexFile)
	})
}
