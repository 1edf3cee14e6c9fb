package internal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

const maxLineLength int = 1024 * 1024

// Reads all lines of the file under given path.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	lines := make([]string, 0)
	fileScanner := bufio.NewScanner(file)
	fileScanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for fileScanner.Scan() {
		lines = append(lines, fileScanner.Text())
	}

	if err := fileScanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}

// Writes content next to path and renames it over path, so readers never see a partial file.
func WriteFileAtomic(path string, content []byte) error {
	directory := filepath.Dir(path)
	temporary, err := os.CreateTemp(directory, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", directory, err)
	}

	temporaryPath := temporary.Name()
	_, err = temporary.Write(content)
	if closeErr := temporary.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(temporaryPath, 0644)
	}
	if err == nil {
		err = os.Rename(temporaryPath, path)
	}

	if err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
