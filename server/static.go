package server

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// staticFiles serves built non-HTML files (theme assets, images, downloads)
// from the output directory. HTML is always rendered per request.
type staticFiles struct {
	root    fs.FS
	handler http.Handler
}

func newStaticFiles(dir string) *staticFiles {
	root := os.DirFS(dir)
	return &staticFiles{root: root, handler: http.FileServerFS(root)}
}

// serve reports whether the request was answered from disk.
func (f *staticFiles) serve(w http.ResponseWriter, r *http.Request) bool {
	name := strings.TrimPrefix(cleanPath(r.URL.Path), "/")
	if name == "" || !fs.ValidPath(name) {
		return false
	}
	if ext := strings.ToLower(path.Ext(name)); ext == "" || ext == ".html" {
		return false
	}
	info, err := fs.Stat(f.root, name)
	if err != nil || info.IsDir() {
		return false
	}
	f.handler.ServeHTTP(w, r)
	return true
}

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
