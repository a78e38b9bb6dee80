package main

import (
	"errors"
	"os"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/figgen"
	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/metadata"
)

// Exit codes for md2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful build
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitExternal = 4 // External figure generator errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, figgen.ErrGeneratorFailed) ||
		errors.Is(err, figgen.ErrGeneratorTimeout) {
		return ExitExternal
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrRead) ||
		errors.Is(err, fileutil.ErrWrite) ||
		errors.Is(err, ErrNoMainDocument) ||
		errors.Is(err, ErrNoManuscript) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, metadata.ErrConfigNotFound) ||
		errors.Is(err, metadata.ErrConfigParse) ||
		errors.Is(err, metadata.ErrInvalidConfig) ||
		errors.Is(err, md2tex.ErrEmptyMarkdown) ||
		errors.Is(err, figgen.ErrUnsupportedFormat) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrStrictWarnings) {
		return ExitUsage
	}

	return ExitGeneral
}
