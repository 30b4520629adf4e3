package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mogaika/fbxbin/fbx"
)

func parseCheckFile(path string, level fbx.Level) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := fbx.Parse(f, level)
	if err != nil {
		return err
	}
	log.Printf("OK %-10v %q version %d, %d root nodes", level, filepath.Base(path), doc.Version, len(doc.Nodes))
	return nil
}

func parseCheck(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal(err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".fbx") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		for _, level := range []fbx.Level{fbx.Permissive, fbx.Checked, fbx.Strict} {
			if err := parseCheckFile(filepath.Join(dir, name), level); err != nil {
				failed++
				log.Printf("E  %-10v %q: %v", level, name, err)
			}
		}
	}
	log.Printf("Checked %d files, %d failures", len(names), failed)
}
