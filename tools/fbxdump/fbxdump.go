package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mogaika/fbxbin/config"
	"github.com/mogaika/fbxbin/fbx"
	"github.com/mogaika/fbxbin/utils"
)

func dump(doc *fbx.Document, format string) error {
	switch format {
	case "spew":
		utils.Dump(doc)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(doc)
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
	default:
		log.Fatalf("Unknown output format %q", format)
	}
	return nil
}

func main() {
	var level, format, enc string
	flag.StringVar(&level, "level", "checked", "Decode strictness (permissive, checked, strict)")
	flag.StringVar(&format, "format", "spew", "Output format (spew, yaml, json)")
	flag.StringVar(&enc, "encoding", "", "String encoding override (default Windows 1252)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: fbxdump [flags] file.fbx")
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

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	doc, err := fbx.Parse(f, lvl)
	if err != nil {
		log.Fatal(err)
	}
	if err := dump(doc, format); err != nil {
		log.Fatal(err)
	}
}
