package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/fbxbin/cache"
)

var ServerDirectory string
var ServerCache *cache.Cache

func StartServer(addr string, dir string, c *cache.Cache) error {
	ServerDirectory = dir
	ServerCache = c

	r := mux.NewRouter()
	r.HandleFunc("/json/files", HandlerAjaxFiles)
	r.HandleFunc("/json/file/{file}", HandlerAjaxFile)
	r.HandleFunc("/dump/file/{file}", HandlerDumpFile)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
