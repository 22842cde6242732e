package fileutil

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// MaxFileSize is the largest catalog or failure document vmsg reads (4MB).
const MaxFileSize = 4 * 1024 * 1024

// StdinPath is the path that selects standard input in ReadInput.
const StdinPath = "-"

// ErrFileTooLarge indicates that input exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("input exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file of at most MaxFileSize bytes.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return ReadWithLimit(f)
}

// ReadWithLimit reads r to EOF, failing if more than MaxFileSize bytes arrive.
func ReadWithLimit(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// ReadInput reads path, or stdin when path is StdinPath.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		return ReadWithLimit(stdin)
	}
	return ReadFileWithLimit(path)
}
