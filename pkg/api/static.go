package api

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// serveImage serves files from the images directory. A missing file yields a
// structured 404 body rather than the default plain-text page. Paths are
// cleaned and confined to the directory.
func (a *API) serveImage(w http.ResponseWriter, r *http.Request) {
	name := path.Clean(strings.TrimPrefix(r.URL.Path, "/images/"))
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		a.imageNotFound(w, r)
		return
	}

	file := filepath.Join(a.imagesDir, filepath.FromSlash(name))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		a.imageNotFound(w, r)
		return
	}
	http.ServeFile(w, r, file)
}

func (a *API) imageNotFound(w http.ResponseWriter, r *http.Request) {
	a.writeError(w, http.StatusNotFound, "Image not found",
		fmt.Sprintf("The requested image %s does not exist", r.URL.Path))
}
