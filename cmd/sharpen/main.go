// sharpen generates C# source files from a YAML schema document.
// Run: sharpen -schema model.yaml -out ./generated [-watch]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sharpgen/sharpen/model"
	"github.com/sharpgen/sharpen/writer"
)

func main() {
	var (
		schemaPath = flag.String("schema", "", "path to the YAML schema document")
		outDir     = flag.String("out", ".", "output directory for generated files")
		cachePath  = flag.String("cache", "", "digest cache file (optional)")
		watch      = flag.Bool("watch", false, "regenerate when the schema file changes")
	)
	flag.Parse()
	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "sharpen: -schema is required")
		flag.Usage()
		os.Exit(2)
	}

	var opts []writer.Option
	if *cachePath != "" {
		cache, err := writer.OpenCache(*cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sharpen: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, writer.WithCache(cache))
	}
	w := writer.New(*outDir, opts...)

	generate := func() error {
		s, err := model.Load(*schemaPath)
		if err != nil {
			return err
		}
		f, err := model.Build(s)
		if err != nil {
			return err
		}
		task := writer.Task{Path: outputName(*schemaPath), Source: f}
		if err := w.WriteAll(context.Background(), []writer.Task{task}); err != nil {
			return err
		}
		m := w.Metrics()
		fmt.Printf("sharpen: %d written, %d unchanged, %d bytes\n", m.FilesWritten, m.FilesSkipped, m.TotalBytes)
		return nil
	}

	if err := generate(); err != nil {
		fmt.Fprintf(os.Stderr, "sharpen: %v\n", err)
		os.Exit(1)
	}
	if !*watch {
		return
	}
	fmt.Printf("sharpen: watching %s\n", *schemaPath)
	if err := writer.Watch(context.Background(), *schemaPath, 250*time.Millisecond, generate); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "sharpen: %v\n", err)
		os.Exit(1)
	}
}

// outputName derives the generated file name from the schema file name,
// e.g. shop.yaml becomes Shop.cs.
func outputName(schemaPath string) string {
	base := filepath.Base(schemaPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "generated"
	}
	return strings.ToUpper(base[:1]) + base[1:] + ".cs"
}
