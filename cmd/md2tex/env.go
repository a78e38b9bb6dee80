package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// logf writes a line to stderr unless quiet.
func (e *Environment) logf(quiet bool, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(e.Stderr, format+"\n", args...)
}
