package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/scenario"
)

// Reader streams the records of a dataset directory.
type Reader struct {
	scenarios string
	questions string
}

// Open locates the scenario and question files in dir, plain or compressed.
func Open(dir string) (*Reader, error) {
	s, err := locate(dir, ScenariosFile)
	if err != nil {
		return nil, err
	}
	q, err := locate(dir, QuestionsFile)
	if err != nil {
		return nil, err
	}

	return &Reader{scenarios: s, questions: q}, nil
}

// locate prefers the plain file over the compressed one.
func locate(dir, name string) (string, error) {
	for _, p := range []string{filepath.Join(dir, name), filepath.Join(dir, name+zstdExt)} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("dataset: %s(%s) in %s: %w", name, zstdExt, dir, os.ErrNotExist)
}

// Paths returns the scenario and question file paths.
func (r *Reader) Paths() (scenarios, questions string) { return r.scenarios, r.questions }

// EachScenario decodes scenario records in file order and stops at the first error.
func (r *Reader) EachScenario(fn func(*scenario.Scenario) error) error {
	return scan(r.scenarios, func(line int, raw []byte) error {
		var s scenario.Scenario
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("dataset: %s:%d: %w", filepath.Base(r.scenarios), line, err)
		}

		return fn(&s)
	})
}

// EachQuestion decodes question records in file order and stops at the first error.
func (r *Reader) EachQuestion(fn func(question.Instance) error) error {
	return scan(r.questions, func(line int, raw []byte) error {
		var q question.Instance
		if err := json.Unmarshal(raw, &q); err != nil {
			return fmt.Errorf("dataset: %s:%d: %w", filepath.Base(r.questions), line, err)
		}

		return fn(q)
	})
}

// Scenarios reads every scenario record.
func (r *Reader) Scenarios() ([]*scenario.Scenario, error) {
	var out []*scenario.Scenario
	err := r.EachScenario(func(s *scenario.Scenario) error {
		out = append(out, s)
		return nil
	})

	return out, err
}

// Questions reads every question record.
func (r *Reader) Questions() ([]question.Instance, error) {
	var out []question.Instance
	err := r.EachQuestion(func(q question.Instance) error {
		out = append(out, q)
		return nil
	})

	return out, err
}

// scan calls fn for every non-empty line of path, numbering lines from 1.
func scan(path string, fn func(line int, raw []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, zstdExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return err
		}
		defer dec.Close()
		src = dec
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		if err := fn(line, raw); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("dataset: %s:%d: %w", filepath.Base(path), line+1, err)
	}

	return nil
}
