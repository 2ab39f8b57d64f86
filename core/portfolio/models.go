package portfolio

import (
	"sort"

	"github.com/trezcool/portfolio/core"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

type StudentInfo struct {
	Name          string `json:"name"`
	StudentNumber string `json:"student_number"`
	Semester      string `json:"semester"`  // "2".."8"
	Milestone     string `json:"milestone"` // "1".."4"
}

type FeedbackEntry struct {
	From             string `json:"from"`
	Text             string `json:"text"`
	LearningOutcomes []int  `json:"learning_outcomes"`
	Date             string `json:"date"`
}

// HasOutcome reports whether the feedback was tagged for outcome id.
func (fb FeedbackEntry) HasOutcome(id int) bool {
	return containsInt(fb.LearningOutcomes, id)
}

type Item struct {
	Title            string          `json:"title"`
	LearningOutcomes []int           `json:"learning_outcomes"`
	IsGroupWork      bool            `json:"is_group_work"`
	GroupMembers     []string        `json:"group_members"`
	GithubLink       string          `json:"github_link"`
	Description      string          `json:"description"`
	DateAdded        string          `json:"date_added"`
	Feedback         []FeedbackEntry `json:"feedback"`
}

func (it Item) HasOutcome(id int) bool {
	return containsInt(it.LearningOutcomes, id)
}

// FeedbackFor returns the feedback tagged for outcome id, in entry order.
// Feedback is scoped per (item, outcome): an entry that was not tagged for id is left out
// even when the item itself claims id.
func (it Item) FeedbackFor(id int) []FeedbackEntry {
	var relevant []FeedbackEntry
	for _, fb := range it.Feedback {
		if fb.HasOutcome(id) {
			relevant = append(relevant, fb)
		}
	}
	return relevant
}

type ReflectionData struct {
	ProudOf          string `json:"proud_of"`
	StruggledWith    string `json:"struggled_with"`
	WantToLearn      string `json:"want_to_learn"`
	IsComplete       bool   `json:"is_complete"`
	GenerateMarkdown bool   `json:"generate_markdown"`
	SubmissionDate   string `json:"submission_date"` // RFC 3339
}

// Ready reports whether the document may be generated.
func (rd ReflectionData) Ready() bool {
	return rd.IsComplete &&
		core.CleanString(rd.ProudOf) != "" &&
		core.CleanString(rd.StruggledWith) != "" &&
		core.CleanString(rd.WantToLearn) != ""
}

// State is the whole persisted application state.
type State struct {
	StudentInfo    StudentInfo    `json:"student_info"`
	PortfolioItems []Item         `json:"portfolio_items"`
	ReflectionData ReflectionData `json:"reflection_data"`
}

// NeedsSetup reports the first-run state: no student has been registered yet.
func (s State) NeedsSetup() bool {
	return core.CleanString(s.StudentInfo.Name) == ""
}

// Normalize applies the declared defaults: every list is non-nil.
// It is applied once after decoding and before every save.
func (s *State) Normalize() {
	if s.PortfolioItems == nil {
		s.PortfolioItems = []Item{}
	}
	for i := range s.PortfolioItems {
		it := &s.PortfolioItems[i]
		if it.LearningOutcomes == nil {
			it.LearningOutcomes = []int{}
		}
		if it.GroupMembers == nil {
			it.GroupMembers = []string{}
		}
		if it.Feedback == nil {
			it.Feedback = []FeedbackEntry{}
		}
		for j := range it.Feedback {
			if it.Feedback[j].LearningOutcomes == nil {
				it.Feedback[j].LearningOutcomes = []int{}
			}
		}
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	if s.PortfolioItems != nil {
		c.PortfolioItems = make([]Item, len(s.PortfolioItems))
		for i, it := range s.PortfolioItems {
			c.PortfolioItems[i] = it.clone()
		}
	}
	return c
}

func (it Item) clone() Item {
	c := it
	c.LearningOutcomes = cloneInts(it.LearningOutcomes)
	if it.GroupMembers != nil {
		c.GroupMembers = append([]string{}, it.GroupMembers...)
	}
	if it.Feedback != nil {
		c.Feedback = make([]FeedbackEntry, len(it.Feedback))
		for i, fb := range it.Feedback {
			fb.LearningOutcomes = cloneInts(fb.LearningOutcomes)
			c.Feedback[i] = fb
		}
	}
	return c
}

// ItemFeedback groups the feedback of one portfolio item for overviews.
type ItemFeedback struct {
	Index    int
	Title    string
	Feedback []FeedbackEntry
}

// NewStudentInfo contains the information needed to (re)register the student.
type NewStudentInfo struct {
	Name          string `json:"name" validate:"notblank"`
	StudentNumber string `json:"student_number" validate:"notblank"`
	Semester      string `json:"semester" validate:"omitempty,oneof=2 3 4 5 6 7 8"`
	Milestone     string `json:"milestone" validate:"omitempty,oneof=1 2 3 4"`
}

func (ns *NewStudentInfo) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.StudentNumber = core.CleanString(ns.StudentNumber)
	ns.Semester = core.CleanString(ns.Semester)
	ns.Milestone = core.CleanString(ns.Milestone)
	return core.ValidateStruct(ns)
}

// NewItem contains the information needed to add or replace a portfolio item.
// Field order is the order in which missing fields are reported.
type NewItem struct {
	Title            string   `json:"title" validate:"notblank"`
	LearningOutcomes []int    `json:"learning_outcomes" validate:"outcomes"`
	IsGroupWork      bool     `json:"is_group_work"`
	GroupMembers     []string `json:"group_members"`
	GithubLink       string   `json:"github_link" validate:"notblank"`
	Description      string   `json:"description" validate:"notblank"`

	// Feedback replaces the item's feedback on update when non-nil.
	Feedback []FeedbackEntry `json:"feedback"`
}

func (ni *NewItem) Validate() error {
	ni.Title = core.CleanString(ni.Title)
	ni.GithubLink = core.CleanString(ni.GithubLink)
	ni.Description = core.CleanString(ni.Description)
	ni.LearningOutcomes = normalizeOutcomes(ni.LearningOutcomes)
	if ni.IsGroupWork {
		ni.GroupMembers = core.CleanStrings(ni.GroupMembers)
	} else {
		ni.GroupMembers = []string{}
	}
	return core.ValidateStruct(ni)
}

// NewFeedback contains the information needed to add or replace a feedback entry.
type NewFeedback struct {
	From             string `json:"from" validate:"notblank"`
	Text             string `json:"text" validate:"notblank"`
	LearningOutcomes []int  `json:"learning_outcomes" validate:"outcomes"`

	itemOutcomes []int // outcomes of the owning item
}

// Validate checks the feedback against the item it is meant for.
func (nf *NewFeedback) Validate(item Item) error {
	nf.From = core.CleanString(nf.From)
	nf.Text = core.CleanString(nf.Text)
	nf.LearningOutcomes = normalizeOutcomes(nf.LearningOutcomes)
	nf.itemOutcomes = item.LearningOutcomes
	return core.ValidateStruct(nf)
}

// NewReflection contains the reflection answers submitted with the document.
type NewReflection struct {
	ProudOf          string `json:"proud_of" validate:"notblank"`
	StruggledWith    string `json:"struggled_with" validate:"notblank"`
	WantToLearn      string `json:"want_to_learn" validate:"notblank"`
	Complete         bool   `json:"is_complete"`
	GenerateMarkdown bool   `json:"generate_markdown"`
}

func (nr *NewReflection) Validate() error {
	nr.ProudOf = core.CleanString(nr.ProudOf)
	nr.StruggledWith = core.CleanString(nr.StruggledWith)
	nr.WantToLearn = core.CleanString(nr.WantToLearn)
	return core.ValidateStruct(nr)
}

// normalizeOutcomes sorts and de-duplicates ids. Never returns nil.
func normalizeOutcomes(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func cloneInts(ids []int) []int {
	if ids == nil {
		return nil
	}
	return append([]int{}, ids...)
}
