package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrTooLarge        = errors.New("input exceeds the size limit")
	ErrNotUTF8         = errors.New("input is not valid UTF-8")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// textExtensions are read as plain text. RTF markup is not interpreted.
var textExtensions = map[string]bool{
	"":     true,
	".txt": true,
	".md":  true,
	".rtf": true,
}

// ReadFile loads a plain-text document of at most maxBytes bytes.
func ReadFile(path string, maxBytes int) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return ReadText(f, maxBytes)
}

// ReadText reads r fully, rejecting input over maxBytes or not UTF-8 encoded.
func ReadText(r io.Reader, maxBytes int) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(maxBytes)+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxBytes {
		return "", fmt.Errorf("%w of %d bytes", ErrTooLarge, maxBytes)
	}
	if !utf8.Valid(data) {
		return "", ErrNotUTF8
	}

	return string(data), nil
}
