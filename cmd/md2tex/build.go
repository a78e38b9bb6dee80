package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/figgen"
	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/metadata"
)

// Sentinel errors for CLI operations.
var (
	ErrNoManuscript       = errors.New("manuscript directory not found")
	ErrNoMainDocument     = errors.New("main document not found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrStrictWarnings     = errors.New("warnings treated as errors (strict mode)")
)

// Manuscript file naming convention.
const (
	configFile        = "00_CONFIG.yml"
	mainFile          = "01_MAIN.md"
	supplementaryFile = "02_SUPPLEMENTARY_INFO.md"
	figuresDir        = "FIGURES"
)

// buildManuscript converts one manuscript directory: metadata front matter,
// the main document, and the optional supplementary document.
func buildManuscript(ctx context.Context, dir string, flags *buildFlags, env *Environment) error {
	if !fileutil.DirExists(dir) {
		return fmt.Errorf("%w: %s", ErrNoManuscript, dir)
	}
	mainPath := filepath.Join(dir, mainFile)
	if !fileutil.FileExists(mainPath) {
		return fmt.Errorf("%w: %s", ErrNoMainDocument, mainPath)
	}

	if flags.figures {
		env.logf(flags.quiet, "%s: regenerating figures", dir)
		gen := figgen.New(filepath.Join(dir, figuresDir))
		gen.Timeout = flags.timeout
		if err := gen.GenerateAll(ctx); err != nil {
			return err
		}
	}

	body, err := fileutil.ReadText(mainPath)
	if err != nil {
		return err
	}

	// Metadata: standalone config wins, frontmatter is the fallback.
	var cfg *metadata.Config
	if configPath := filepath.Join(dir, configFile); fileutil.FileExists(configPath) {
		cfg, err = metadata.Load(configPath)
	} else {
		cfg, body, err = metadata.ParseFrontmatter(body)
	}
	if err != nil {
		return err
	}

	outDir := filepath.Join(dir, flags.output)
	conv := md2tex.NewConverter(md2tex.WithFigureDir(flags.figureDir))

	if cfg != nil {
		if err := fileutil.WriteText(filepath.Join(outDir, "FRONTMATTER.tex"), frontMatter(cfg)); err != nil {
			return err
		}
	}

	var warnings []md2tex.Warning
	convert := func(src, dst string, supplementary bool) error {
		result, err := conv.Convert(ctx, md2tex.Input{Markdown: src, Supplementary: supplementary})
		if err != nil {
			return err
		}
		warnings = append(warnings, result.Warnings...)
		return fileutil.WriteText(filepath.Join(outDir, dst), result.LaTeX)
	}

	if err := convert(body, "MAIN.tex", false); err != nil {
		return err
	}

	// Per-section fragments for template placement, \input-able one by one.
	// The whole-document pass above already reported the warnings, so the
	// section pass only produces the fragments.
	sections, err := conv.ConvertSections(ctx, md2tex.Input{Markdown: body})
	if err != nil {
		return err
	}
	for _, s := range sections {
		if flags.verbose {
			env.logf(flags.quiet, "%s: section %q", dir, s.Key)
		}
		path := filepath.Join(outDir, "sections", s.Key+".tex")
		if err := fileutil.WriteText(path, s.LaTeX+"\n"); err != nil {
			return err
		}
	}

	if suppPath := filepath.Join(dir, supplementaryFile); fileutil.FileExists(suppPath) {
		supp, err := fileutil.ReadText(suppPath)
		if err != nil {
			return err
		}
		if err := convert(supp, "SUPPLEMENTARY.tex", true); err != nil {
			return err
		}
	}

	for _, w := range warnings {
		env.logf(flags.quiet, "%s: warning: %s", dir, w)
	}
	if flags.strict && len(warnings) > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrStrictWarnings, len(warnings))
	}

	env.logf(flags.quiet, "%s: wrote %s", dir, outDir)
	return nil
}

// frontMatter renders the metadata blocks the document template includes.
func frontMatter(cfg *metadata.Config) string {
	blocks := []string{
		"% Front matter generated from manuscript metadata",
		cfg.TitleBlock(),
		cfg.AuthorsAndAffiliationsBlock(),
		cfg.CorrespondingAuthorsBlock(),
	}
	if kw := cfg.KeywordsBlock(); kw != "" {
		blocks = append(blocks, kw)
	}
	if date := cfg.DateBlock(); date != "" {
		blocks = append(blocks, date)
	}
	if cfg.LineNumbers {
		blocks = append(blocks, `\linenumbers`)
	}
	return strings.Join(blocks, "\n") + "\n"
}
