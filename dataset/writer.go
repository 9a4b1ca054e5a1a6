package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/scenario"
)

// File names inside a dataset directory.
const (
	ScenariosFile = "scenarios.jsonl"
	QuestionsFile = "questions.jsonl"
	ReportFile    = "report.json"
	zstdExt       = ".zst"
)

// jsonlWriter appends JSON lines to one file, through zstd when enabled.
type jsonlWriter struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

func createJSONL(path string, compress bool) (*jsonlWriter, error) {
	if compress {
		path += zstdExt
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	jw := &jsonlWriter{f: f}
	if !compress {
		jw.w = bufio.NewWriterSize(f, 128*1024)
		return jw, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	jw.enc = enc
	jw.w = bufio.NewWriterSize(enc, 128*1024)

	return jw, nil
}

func (jw *jsonlWriter) write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := jw.w.Write(b); err != nil {
		return err
	}

	return jw.w.WriteByte('\n')
}

func (jw *jsonlWriter) close() error {
	err := jw.w.Flush()
	if jw.enc != nil {
		err = errors.Join(err, jw.enc.Close())
	}

	return errors.Join(err, jw.f.Close())
}

// Writer writes a dataset directory. It is safe for concurrent use.
type Writer struct {
	dir string

	mu        sync.Mutex
	scenarios *jsonlWriter
	questions *jsonlWriter
	closed    bool
}

// NewWriter creates dir if needed and truncates the dataset files in it.
func NewWriter(dir string, compress bool) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for _, name := range []string{ScenariosFile, QuestionsFile} {
		// a stale file of the other form would shadow the new one in Open
		stale := filepath.Join(dir, name)
		if !compress {
			stale += zstdExt
		}
		if err := os.Remove(stale); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	s, err := createJSONL(filepath.Join(dir, ScenariosFile), compress)
	if err != nil {
		return nil, err
	}
	q, err := createJSONL(filepath.Join(dir, QuestionsFile), compress)
	if err != nil {
		_ = s.close()
		return nil, err
	}

	return &Writer{dir: dir, scenarios: s, questions: q}, nil
}

// Dir returns the dataset directory.
func (w *Writer) Dir() string { return w.dir }

// WriteScenario appends one scenario record.
func (w *Writer) WriteScenario(s *scenario.Scenario) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("dataset: WriteScenario: %w", os.ErrClosed)
	}

	return w.scenarios.write(s)
}

// WriteQuestions appends question records.
func (w *Writer) WriteQuestions(qs ...question.Instance) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("dataset: WriteQuestions: %w", os.ErrClosed)
	}
	for _, q := range qs {
		if err := w.questions.write(q); err != nil {
			return err
		}
	}

	return nil
}

// WriteReport writes v as indented JSON to report.json.
func (w *Writer) WriteReport(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.dir, ReportFile), append(b, '\n'), 0o644)
}

// Close flushes and closes both files. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	return errors.Join(w.scenarios.close(), w.questions.close())
}
