package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory
// instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Source reads and writes one configuration file. An absent file is not
// an error: the source reports empty content and Exists() == false, so
// a configuration can start from pure defaults and be written out
// later.
type Source struct {
	filepath string
	data     []byte
	exists   bool
}

// NewSource creates a Source for the given path. If the file exists its
// contents are read once and cached; if it does not, the source is
// empty. A directory at the path is an error.
func NewSource(fpath string) (*Source, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Source{filepath: cleanPath}, nil
		}

		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Source{
		filepath: cleanPath,
		data:     data,
		exists:   true,
	}, nil
}

// Path returns the cleaned file path.
func (s *Source) Path() string { return s.filepath }

// Exists reports whether the file was present when the source was
// created.
func (s *Source) Exists() bool { return s.exists }

// Fetch returns a copy of the cached file content. A copy is returned
// to prevent callers from mutating the cached data.
func (s *Source) Fetch() ([]byte, error) {
	result := make([]byte, len(s.data))
	copy(result, s.data)

	return result, nil
}

// Write replaces the file content on disk and updates the cache, so a
// subsequent Fetch observes what was written.
func (s *Source) Write(data []byte) error {
	if err := os.WriteFile(s.filepath, data, 0o600); err != nil {
		return fmt.Errorf("writing file %q: %w", s.filepath, err)
	}

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.exists = true

	return nil
}
