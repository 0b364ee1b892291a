// Command terraserve serves terrain previews over HTTP.
//
//	GET /terrain.png?alg=perlin&seed=7&exp=8&freq=4&warp=true&shade=true&scale=2
//	GET /terrains                 stored names as JSON (with -store)
//	GET /terrains/{name}.png      stored terrain preview
//	GET /terrains/{name}.json     stored document
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/katalvlaran/lvlterrain/storage"
)

var (
	addr     = flag.String("addr", ":3333", "listen address")
	storeDir = flag.String("store", "", "document store directory; empty serves generation only")
	maxExp   = flag.Int("max-exp", 10, "largest size exponent a request may ask for")
)

func main() {
	flag.Parse()

	var store storage.Store
	if *storeDir != "" {
		fs, err := storage.NewFileStore(*storeDir)
		if err != nil {
			log.Fatal(err)
		}
		defer fs.Close()
		store = fs
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newServer(store, *maxExp).router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("terraserve listening on %s", *addr)
	log.Fatal(srv.ListenAndServe())
}
