// Package memory keeps the portfolio state in memory. Used by tests and, layered over the data file, by dry runs.
package memory

import (
	"os"
	"sync"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/portfolio"
)

// Repository is the in-memory portfolio.Repository. Exports are kept in memory too, keyed by path.
type Repository struct {
	sync.RWMutex
	state   *portfolio.State
	exports map[string]portfolio.State

	// SaveErr, when set, is returned by every Save.
	SaveErr error
}

var _ portfolio.Repository = (*Repository)(nil) // interface compliance check

// NewRepository returns an empty repository, optionally seeded with a saved state.
func NewRepository(seed ...portfolio.State) *Repository {
	repo := &Repository{exports: make(map[string]portfolio.State)}
	if len(seed) > 0 {
		st := seed[0].Clone()
		repo.state = &st
	}
	return repo
}

func (repo *Repository) Load() (portfolio.State, error) {
	repo.RLock()
	defer repo.RUnlock()

	if repo.state == nil {
		st := portfolio.State{}
		st.Normalize()
		return st, nil
	}
	return repo.state.Clone(), nil
}

func (repo *Repository) Save(st portfolio.State) error {
	repo.Lock()
	defer repo.Unlock()

	if repo.SaveErr != nil {
		return &core.DataSaveError{Path: "memory", Err: repo.SaveErr}
	}
	st = st.Clone()
	repo.state = &st
	return nil
}

// Saved reports whether Save succeeded at least once.
func (repo *Repository) Saved() bool {
	repo.RLock()
	defer repo.RUnlock()
	return repo.state != nil
}

func (repo *Repository) Export(st portfolio.State, path string) error {
	repo.Lock()
	defer repo.Unlock()
	repo.exports[path] = st.Clone()
	return nil
}

func (repo *Repository) Import(path string) (portfolio.State, error) {
	repo.RLock()
	defer repo.RUnlock()

	st, ok := repo.exports[path]
	if !ok {
		return portfolio.State{}, &core.DataLoadError{Path: path, Err: os.ErrNotExist}
	}
	return st.Clone(), nil
}

// DryRun keeps every Save in memory on top of another repository.
// Until the first Save the state is read from base; export and import always go through base.
type DryRun struct {
	portfolio.Repository // base
	mem                  *Repository
}

var _ portfolio.Repository = (*DryRun)(nil)

func NewDryRun(base portfolio.Repository) *DryRun {
	return &DryRun{Repository: base, mem: NewRepository()}
}

func (repo *DryRun) Load() (portfolio.State, error) {
	if repo.mem.Saved() {
		return repo.mem.Load()
	}
	return repo.Repository.Load()
}

func (repo *DryRun) Save(st portfolio.State) error {
	return repo.mem.Save(st)
}
