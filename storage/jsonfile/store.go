// Package jsonfile saves the portfolio state as one pretty-printed JSON file.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/portfolio"
)

const DefaultPath = "portfolio_data.json"

type repository struct {
	path string
}

var _ portfolio.Repository = (*repository)(nil) // interface compliance check

// NewRepository returns a repository backed by the file at path.
// The file does not need to exist yet.
func NewRepository(path string) portfolio.Repository {
	if path == "" {
		path = DefaultPath
	}
	return &repository{path: path}
}

func (repo *repository) Load() (portfolio.State, error) {
	st, err := readState(repo.path)
	if errors.Is(err, fs.ErrNotExist) {
		st = portfolio.State{}
		st.Normalize()
		return st, nil
	}
	return st, err
}

func (repo *repository) Save(st portfolio.State) error {
	return writeState(repo.path, st)
}

func (repo *repository) Export(st portfolio.State, path string) error {
	return writeState(path, st)
}

func (repo *repository) Import(path string) (portfolio.State, error) {
	return readState(path)
}

func readState(path string) (portfolio.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return emptyState(), &core.DataLoadError{Path: path, Err: errors.Wrap(err, "reading file")}
	}
	st, err := Decode(data)
	if err != nil {
		return emptyState(), &core.DataLoadError{Path: path, Err: err}
	}
	return st, nil
}

func writeState(path string, st portfolio.State) error {
	data, err := Encode(st)
	if err != nil {
		return &core.DataSaveError{Path: path, Err: err}
	}
	if err := writeFileAtomic(path, data); err != nil {
		return &core.DataSaveError{Path: path, Err: err}
	}
	return nil
}

// Decode parses a saved state. Unknown keys are ignored and missing or null fields take their defaults.
func Decode(data []byte) (portfolio.State, error) {
	var st portfolio.State
	if err := json.Unmarshal(data, &st); err != nil {
		return emptyState(), errors.Wrap(err, "decoding json")
	}
	st.Normalize()
	return st, nil
}

// Encode renders the state with a 2-space indent, without escaping HTML characters.
func Encode(st portfolio.State) ([]byte, error) {
	st = st.Clone()
	st.Normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes to a sibling temp file first so a failed write never truncates the target.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "replacing file")
	}
	return nil
}

func emptyState() portfolio.State {
	st := portfolio.State{}
	st.Normalize()
	return st
}
