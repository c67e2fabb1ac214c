package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errTerminalOutput is returned when raw frames would be written to a TTY.
var errTerminalOutput = errors.New("refusing to write raw frames to a terminal; redirect standard output or pass --out FILE")

// readInput reads the whole input file, or standard input for "-".
func (t *tool) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(t.stdin)
	}
	return os.ReadFile(path)
}

// openInput opens the input file, or standard input for "-".
func (t *tool) openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(t.stdin), nil
	}
	return os.Open(path)
}

// openOutput creates the output file, or returns standard output for "-".
func (t *tool) openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		if t.stdoutIsTerminal != nil && t.stdoutIsTerminal() {
			return nil, errTerminalOutput
		}
		return nopWriteCloser{t.stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

// writeOutput writes data to the output file, or standard output for "-".
func (t *tool) writeOutput(path string, data []byte) error {
	w, err := t.openOutput(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return w.Close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
