package main

import (
	"flag"
	"log"
	"strings"

	"github.com/mogaika/fbxbin/cache"
	"github.com/mogaika/fbxbin/config"
	"github.com/mogaika/fbxbin/fbx"
	"github.com/mogaika/fbxbin/web"
)

func main() {
	var addr, dir, level, enc string
	var cacheSize int
	var listEncodings, parsecheck bool
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&dir, "dir", ".", "Path to folder with fbx files")
	flag.StringVar(&level, "level", "checked", "Decode strictness (permissive, checked, strict)")
	flag.StringVar(&enc, "encoding", "", "String encoding override (default Windows 1252)")
	flag.IntVar(&cacheSize, "cachesize", 32, "Count of decoded documents kept in memory")
	flag.BoolVar(&listEncodings, "listencodings", false, "Print supported string encodings and exit")
	flag.BoolVar(&parsecheck, "parsecheck", false, "Decode every fbx file in -dir at all strictness levels and exit")
	flag.Parse()

	if listEncodings {
		log.Printf("Supported encodings:\n%v", strings.Join(config.ListEncodings(), "\n"))
		return
	}
	if enc != "" {
		if err := config.SetEncoding(enc); err != nil {
			log.Fatal(err)
		}
	}

	lvl, err := fbx.ParseLevel(level)
	if err != nil {
		log.Fatal(err)
	}

	if parsecheck {
		parseCheck(dir)
		return
	}

	c, err := cache.NewCache(cacheSize, lvl)
	if err != nil {
		log.Fatal(err)
	}

	if err := web.StartServer(addr, dir, c); err != nil {
		log.Fatal(err)
	}
}
