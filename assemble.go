package sicasm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Assemble runs both passes over path and writes the resulting object
// program to outPath. Each pass opens its own handle on path — Pass1
// and Pass2 never share file state.
func Assemble(path, outPath string) (*Object, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	st, err := Pass1(lines)
	if err != nil {
		return nil, err
	}

	lines2, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	obj, err := Pass2(lines2, st)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", outPath, err)
	}
	defer f.Close()

	if err := obj.Write(f); err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", outPath, err)
	}

	return obj, nil
}

// DefaultOutPath derives the object-file path for a source file by
// replacing its extension with ".obj" (or appending one, if none).
func DefaultOutPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + ".obj"
	}
	return strings.TrimSuffix(path, ext) + ".obj"
}

// ReadLines reads path's lines into memory. Pass1 and Pass2 each take
// their own slice so neither pass can observe the other mutating it.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return lines, nil
}
