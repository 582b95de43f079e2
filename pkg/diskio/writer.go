package diskio

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	inputFmt  = "test%d.dat"
	answerFmt = "test%d.dat.ans"
)

func InputName(idx int) string {
	return fmt.Sprintf(inputFmt, idx)
}

func AnswerName(idx int) string {
	return fmt.Sprintf(answerFmt, idx)
}

// Writer persists encoded fixtures as numbered files in one directory.
type Writer struct {
	dir string
}

// New creates dir if it does not exist yet.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Open attaches to an existing fixture directory.
func Open(dir string) (*Writer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

// Write stores the input stream of fixture idx and, when answers is not nil,
// its answer stream.
func (w *Writer) Write(idx int, input, answers []byte) error {
	if err := os.WriteFile(filepath.Join(w.dir, InputName(idx)), input, 0o644); err != nil {
		return err
	}
	if answers == nil {
		return nil
	}
	return os.WriteFile(filepath.Join(w.dir, AnswerName(idx)), answers, 0o644)
}

// Read loads fixture idx. answers is nil when no answer file exists.
func (w *Writer) Read(idx int) (input, answers []byte, err error) {
	input, err = os.ReadFile(filepath.Join(w.dir, InputName(idx)))
	if err != nil {
		return nil, nil, err
	}
	answers, err = os.ReadFile(filepath.Join(w.dir, AnswerName(idx)))
	if os.IsNotExist(err) {
		return input, nil, nil
	}
	return input, answers, err
}
