package main

import (
	"context"
	"io"
	"os"
	"time"

	carto2pdf "github.com/alnah/go-carto2pdf"
)

// Converter is the part of carto2pdf.Converter the command uses.
type Converter interface {
	Convert(ctx context.Context, input carto2pdf.Input) (*carto2pdf.ConvertResult, error)
	Close() error
}

var _ Converter = (*carto2pdf.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(opts ...carto2pdf.Option) (Converter, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(opts ...carto2pdf.Option) (Converter, error) {
			return carto2pdf.NewConverter(opts...)
		},
	}
}
