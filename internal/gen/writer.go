package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// WriteDebugUnformatted writes the unformatted source carried by a
// *FormatError next to the intended output, as name.unformatted.go. It returns
// the path written, or "" if err carries no source.
func WriteDebugUnformatted(err error, outputDir string) (string, error) {
	var ferr *FormatError
	if !errors.As(err, &ferr) || outputDir == "" {
		return "", nil
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", err
	}

	p := filepath.Join(outputDir, strings.TrimSuffix(ferr.Filename, ".go")+".unformatted.go")

	return p, os.WriteFile(p, ferr.Source, filePerm)
}
