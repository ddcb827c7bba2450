package source

import (
	"context"
	"fmt"
	"os"

	"github.com/amitger07/yodle-juggle-fest/format"
	"github.com/amitger07/yodle-juggle-fest/types"
)

// File implements a population source backed by a text file.
type File struct {
	path string
}

var _ types.PopulationSource = (*File)(nil)

// NewFile creates a population source that reads path on every load.
//
// Parameters:
//   - path: File in the population format (see package format)
//
// Returns:
//   - *File: Initialized file source
//
// Example:
//
//	m, err := jugglefest.Run(ctx, source.NewFile("jugglefest.txt"), jugglefest.WithSeed(1))
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// LoadPopulation opens and parses the file.
//
// Returns:
//   - *types.Population: Parsed population
//   - error: Context, open or *format.ParseError
func (f *File) LoadPopulation(ctx context.Context) (*types.Population, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open population file: %w", err)
	}
	defer file.Close()

	pop, err := format.ParsePopulation(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}

	return pop, nil
}
