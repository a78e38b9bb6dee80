// Package figgen discovers figure sources in a manuscript's FIGURES
// directory and drives the external generators that turn them into images.
//
// Generated output follows a fixed naming convention: a source FIGURES/x.mmd
// produces FIGURES/x/x.png. The conversion pipeline resolves figure paths by
// the same convention and never invokes generation itself.
package figgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Sentinel errors for figure generation.
var (
	ErrUnsupportedFormat = errors.New("unsupported figure format")
	ErrGeneratorFailed   = errors.New("figure generator failed")
	ErrGeneratorTimeout  = errors.New("figure generator timed out")
)

// Supported output formats.
var supportedFormats = map[string]bool{
	"png": true,
	"svg": true,
	"pdf": true,
	"eps": true,
}

// Kind identifies the generator a source needs.
type Kind int

const (
	KindMermaid Kind = iota // .mmd diagram rendered by the mermaid CLI
	KindPython              // .py script producing its own image files
)

// Source is one discovered figure source file.
type Source struct {
	Path string
	Kind Kind
}

// Generator runs external figure generators with a shared timeout.
type Generator struct {
	FiguresDir string
	OutputDir  string
	Format     string
	Timeout    time.Duration
	MermaidBin string
	PythonBin  string
}

// defaultTimeout bounds one generator invocation.
const defaultTimeout = 2 * time.Minute

// New returns a Generator writing next to the sources in figuresDir.
func New(figuresDir string) *Generator {
	return &Generator{
		FiguresDir: figuresDir,
		OutputDir:  figuresDir,
		Format:     "png",
		Timeout:    defaultTimeout,
		MermaidBin: "mmdc",
		PythonBin:  "python3",
	}
}

// Discover lists the figure sources in FiguresDir. A missing directory is
// not an error: manuscripts without generated figures are common.
func (g *Generator) Discover() ([]Source, error) {
	if !supportedFormats[g.Format] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, g.Format)
	}
	entries, err := os.ReadDir(g.FiguresDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading figures directory: %w", err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(g.FiguresDir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".mmd":
			sources = append(sources, Source{Path: path, Kind: KindMermaid})
		case ".py":
			sources = append(sources, Source{Path: path, Kind: KindPython})
		}
	}
	return sources, nil
}

// OutputPath derives the generated image path for a source by the naming
// convention: base name becomes a directory holding a file of the same base
// name with the format extension.
func OutputPath(outputDir, srcPath, format string) string {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	return filepath.Join(outputDir, base, base+"."+format)
}

// GenerateAll runs every discovered generator. Generators have no data
// dependency on each other, so they run concurrently; the first error wins
// but all of them are waited for.
func (g *Generator) GenerateAll(ctx context.Context) error {
	sources, err := g.Discover()
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(sources))
	for _, src := range sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			if err := g.generate(ctx, src); err != nil {
				errs <- err
			}
		}(src)
	}
	wg.Wait()
	close(errs)

	return <-errs
}
