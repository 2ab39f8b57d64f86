// Package portfolio holds the portfolio data model, the commands that change it and the Service
// that persists every change.
package portfolio

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
)

var nowFunc = time.Now // mockable

type (
	Repository interface {
		// Load returns an empty State when nothing has been saved yet.
		Load() (State, error)
		// Save overwrites the whole saved state.
		Save(state State) error
		Export(state State, path string) error
		Import(path string) (State, error)
	}

	// Service owns the live State. Every successful command is saved before it becomes visible.
	Service struct {
		repo Repository
		log  core.Logger

		mu    sync.RWMutex
		state State
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	st := State{}
	st.Normalize()
	return &Service{repo: repo, log: log, state: st}
}

// Reload replaces the live state with the saved one.
// On failure the last known good state is kept.
func (svc *Service) Reload() error {
	st, err := svc.repo.Load()
	if err == nil {
		err = errors.Wrap(st.Validate(), "saved portfolio data")
	}
	if err != nil {
		svc.log.Error("could not load portfolio data", err)
		return err
	}
	st.Normalize()

	svc.mu.Lock()
	svc.state = st
	svc.mu.Unlock()
	return nil
}

// State returns a copy of the live state.
func (svc *Service) State() State {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.Clone()
}

// commit runs cmd on a copy of the live state and only keeps the result once it has been saved.
func (svc *Service) commit(cmd func(st *State) error) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	st := svc.state.Clone()
	if err := cmd(&st); err != nil {
		return err
	}
	st.Normalize()
	if err := svc.repo.Save(st); err != nil {
		svc.log.Error("could not save portfolio data", err)
		return err
	}
	svc.state = st
	return nil
}

func (svc *Service) SetStudentInfo(ns NewStudentInfo) (info StudentInfo, err error) {
	err = svc.commit(func(st *State) error {
		info, err = st.SetStudentInfo(ns)
		return err
	})
	if err == nil {
		svc.log.Info("student info saved", info)
	}
	return info, err
}

func (svc *Service) AddItem(ni NewItem) (it Item, err error) {
	err = svc.commit(func(st *State) error {
		it, err = st.AddItem(ni, nowFunc())
		return err
	})
	if err == nil {
		svc.log.Info("portfolio item added", map[string]interface{}{"title": it.Title})
	}
	return it, err
}

func (svc *Service) UpdateItem(index int, ni NewItem) (it Item, err error) {
	err = svc.commit(func(st *State) error {
		it, err = st.UpdateItem(index, ni)
		return err
	})
	return it, err
}

func (svc *Service) DeleteItem(index int) (it Item, err error) {
	err = svc.commit(func(st *State) error {
		it, err = st.DeleteItem(index)
		return err
	})
	if err == nil {
		svc.log.Info("portfolio item deleted", map[string]interface{}{"title": it.Title})
	}
	return it, err
}

func (svc *Service) AddFeedback(itemIndex int, nf NewFeedback) (fb FeedbackEntry, err error) {
	err = svc.commit(func(st *State) error {
		fb, err = st.AddFeedback(itemIndex, nf, nowFunc())
		return err
	})
	return fb, err
}

func (svc *Service) UpdateFeedback(itemIndex, fbIndex int, nf NewFeedback) (fb FeedbackEntry, err error) {
	err = svc.commit(func(st *State) error {
		fb, err = st.UpdateFeedback(itemIndex, fbIndex, nf)
		return err
	})
	return fb, err
}

func (svc *Service) RemoveFeedback(itemIndex, fbIndex int) (fb FeedbackEntry, err error) {
	err = svc.commit(func(st *State) error {
		fb, err = st.RemoveFeedback(itemIndex, fbIndex)
		return err
	})
	return fb, err
}

func (svc *Service) SetReflection(nr NewReflection) (rd ReflectionData, err error) {
	err = svc.commit(func(st *State) error {
		rd, err = st.SetReflection(nr, nowFunc())
		return err
	})
	return rd, err
}

func (svc *Service) Items() []Item {
	return svc.State().PortfolioItems
}

func (svc *Service) Item(index int) (Item, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	it, err := svc.state.item(index)
	if err != nil {
		return Item{}, err
	}
	return it.clone(), nil
}

func (svc *Service) CountItemsWithoutFeedback() int {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.CountItemsWithoutFeedback()
}

func (svc *Service) AllFeedback() []ItemFeedback {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.state.AllFeedback()
}

// Export writes the live state to path.
func (svc *Service) Export(path string) error {
	st := svc.State()
	st.Normalize()
	if err := svc.repo.Export(st, path); err != nil {
		return err
	}
	svc.log.Info("portfolio data exported", map[string]interface{}{"path": path})
	return nil
}

// Import replaces the live state with the one saved at path and persists it right away.
// Items or feedback that break the portfolio rules reject the whole file.
func (svc *Service) Import(path string) error {
	imported, err := svc.repo.Import(path)
	if err != nil {
		return err
	}
	if err := imported.Validate(); err != nil {
		return errors.Wrapf(err, "import %s", path)
	}
	if err := svc.commit(func(st *State) error {
		*st = imported
		return nil
	}); err != nil {
		return errors.Wrap(err, "import")
	}
	svc.log.Info("portfolio data imported", map[string]interface{}{"path": path})
	return nil
}
