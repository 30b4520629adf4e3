package web

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mogaika/fbxbin/utils"
	"github.com/mogaika/fbxbin/webutils"
)

func listFbxFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".fbx") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func HandlerAjaxFiles(w http.ResponseWriter, r *http.Request) {
	if files, err := listFbxFiles(ServerDirectory); err != nil {
		webutils.WriteError(w, err)
	} else {
		webutils.WriteJson(w, files)
	}
}

// requestedPath flattens the file route variable to a name inside
// ServerDirectory, so a crafted request cannot escape it.
func requestedPath(r *http.Request) string {
	return filepath.Join(ServerDirectory, filepath.Base(mux.Vars(r)["file"]))
}

func HandlerAjaxFile(w http.ResponseWriter, r *http.Request) {
	doc, err := ServerCache.Get(requestedPath(r))
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteJson(w, doc)
}

func HandlerDumpFile(w http.ResponseWriter, r *http.Request) {
	doc, err := ServerCache.Get(requestedPath(r))
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	webutils.WriteResult(w, []byte(utils.SDump(doc)))
}
