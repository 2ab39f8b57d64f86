package portfolio

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
)

const (
	itemKind     = "portfolio item"
	feedbackKind = "feedback"
)

// The commands below validate first and mutate last: a command that fails leaves the state untouched.

// SetStudentInfo replaces the whole student record.
func (s *State) SetStudentInfo(ns NewStudentInfo) (StudentInfo, error) {
	if err := ns.Validate(); err != nil {
		return StudentInfo{}, err
	}
	s.StudentInfo = StudentInfo{
		Name:          ns.Name,
		StudentNumber: ns.StudentNumber,
		Semester:      ns.Semester,
		Milestone:     ns.Milestone,
	}
	return s.StudentInfo, nil
}

// AddItem appends a new item, stamped with the date of `now` and without feedback.
func (s *State) AddItem(ni NewItem, now time.Time) (Item, error) {
	ni.Feedback = nil
	if err := ni.Validate(); err != nil {
		return Item{}, err
	}
	it := Item{
		Title:            ni.Title,
		LearningOutcomes: ni.LearningOutcomes,
		IsGroupWork:      ni.IsGroupWork,
		GroupMembers:     ni.GroupMembers,
		GithubLink:       ni.GithubLink,
		Description:      ni.Description,
		DateAdded:        now.Format(DateLayout),
		Feedback:         []FeedbackEntry{},
	}
	s.PortfolioItems = append(s.PortfolioItems, it)
	return it, nil
}

// UpdateItem replaces the item at index, keeping its date_added.
// The existing feedback is kept unless ni.Feedback is set; either way it must fit the new outcomes.
func (s *State) UpdateItem(index int, ni NewItem) (Item, error) {
	old, err := s.item(index)
	if err != nil {
		return Item{}, err
	}
	if ni.Feedback == nil {
		ni.Feedback = old.clone().Feedback
	}
	if err := ni.Validate(); err != nil {
		return Item{}, err
	}
	it := Item{
		Title:            ni.Title,
		LearningOutcomes: ni.LearningOutcomes,
		IsGroupWork:      ni.IsGroupWork,
		GroupMembers:     ni.GroupMembers,
		GithubLink:       ni.GithubLink,
		Description:      ni.Description,
		DateAdded:        old.DateAdded,
		Feedback:         ni.Feedback,
	}
	s.PortfolioItems[index] = it
	return it, nil
}

// DeleteItem removes the item at index together with its feedback.
func (s *State) DeleteItem(index int) (Item, error) {
	it, err := s.item(index)
	if err != nil {
		return Item{}, err
	}
	s.PortfolioItems = append(s.PortfolioItems[:index], s.PortfolioItems[index+1:]...)
	return it, nil
}

// AddFeedback appends feedback to the item at itemIndex, dated `now`.
func (s *State) AddFeedback(itemIndex int, nf NewFeedback, now time.Time) (FeedbackEntry, error) {
	it, err := s.item(itemIndex)
	if err != nil {
		return FeedbackEntry{}, err
	}
	if err := nf.Validate(it); err != nil {
		return FeedbackEntry{}, err
	}
	fb := FeedbackEntry{
		From:             nf.From,
		Text:             nf.Text,
		LearningOutcomes: nf.LearningOutcomes,
		Date:             now.Format(DateTimeLayout),
	}
	s.PortfolioItems[itemIndex].Feedback = append(s.PortfolioItems[itemIndex].Feedback, fb)
	return fb, nil
}

// UpdateFeedback replaces a feedback entry, keeping its original date.
func (s *State) UpdateFeedback(itemIndex, fbIndex int, nf NewFeedback) (FeedbackEntry, error) {
	it, err := s.item(itemIndex)
	if err != nil {
		return FeedbackEntry{}, err
	}
	if fbIndex < 0 || fbIndex >= len(it.Feedback) {
		return FeedbackEntry{}, core.NewIndexError(feedbackKind, fbIndex, len(it.Feedback))
	}
	if err := nf.Validate(it); err != nil {
		return FeedbackEntry{}, err
	}
	fb := FeedbackEntry{
		From:             nf.From,
		Text:             nf.Text,
		LearningOutcomes: nf.LearningOutcomes,
		Date:             it.Feedback[fbIndex].Date,
	}
	s.PortfolioItems[itemIndex].Feedback[fbIndex] = fb
	return fb, nil
}

func (s *State) RemoveFeedback(itemIndex, fbIndex int) (FeedbackEntry, error) {
	it, err := s.item(itemIndex)
	if err != nil {
		return FeedbackEntry{}, err
	}
	if fbIndex < 0 || fbIndex >= len(it.Feedback) {
		return FeedbackEntry{}, core.NewIndexError(feedbackKind, fbIndex, len(it.Feedback))
	}
	fb := it.Feedback[fbIndex]
	feedback := s.PortfolioItems[itemIndex].Feedback
	s.PortfolioItems[itemIndex].Feedback = append(feedback[:fbIndex], feedback[fbIndex+1:]...)
	return fb, nil
}

// SetReflection stores the reflection answers.
// is_complete can only become true once all three answers are given; the submission date is stamped with `now`.
func (s *State) SetReflection(nr NewReflection, now time.Time) (ReflectionData, error) {
	if err := nr.Validate(); err != nil {
		return ReflectionData{}, err
	}
	s.ReflectionData = ReflectionData{
		ProudOf:          nr.ProudOf,
		StruggledWith:    nr.StruggledWith,
		WantToLearn:      nr.WantToLearn,
		IsComplete:       nr.Complete,
		GenerateMarkdown: nr.GenerateMarkdown,
		SubmissionDate:   now.Format(time.RFC3339),
	}
	return s.ReflectionData, nil
}

// CountItemsWithoutFeedback returns the number of items nobody reviewed yet.
func (s State) CountItemsWithoutFeedback() int {
	var n int
	for _, it := range s.PortfolioItems {
		if len(it.Feedback) == 0 {
			n++
		}
	}
	return n
}

// AllFeedback lists the feedback of every item that has some, in item order.
func (s State) AllFeedback() []ItemFeedback {
	all := make([]ItemFeedback, 0)
	for i, it := range s.PortfolioItems {
		if len(it.Feedback) == 0 {
			continue
		}
		all = append(all, ItemFeedback{Index: i, Title: it.Title, Feedback: it.clone().Feedback})
	}
	return all
}

func (s State) item(index int) (Item, error) {
	if index < 0 || index >= len(s.PortfolioItems) {
		return Item{}, core.NewIndexError(itemKind, index, len(s.PortfolioItems))
	}
	return s.PortfolioItems[index], nil
}

// Validate checks state that did not come through the commands, such as an imported file.
// Every item and feedback entry must pass the same checks as when it was added.
func (s State) Validate() error {
	for i, it := range s.PortfolioItems {
		ni := NewItem{
			Title:            it.Title,
			LearningOutcomes: it.LearningOutcomes,
			IsGroupWork:      it.IsGroupWork,
			GroupMembers:     it.GroupMembers,
			GithubLink:       it.GithubLink,
			Description:      it.Description,
			Feedback:         it.Feedback,
		}
		if err := ni.Validate(); err != nil {
			return invalidItem(i, it, err)
		}
		for _, fb := range it.Feedback {
			nf := NewFeedback{From: fb.From, Text: fb.Text, LearningOutcomes: fb.LearningOutcomes}
			if err := nf.Validate(it); err != nil {
				return invalidItem(i, it, err)
			}
		}
	}
	return nil
}

func invalidItem(index int, it Item, err error) error {
	prefix := fmt.Sprintf("%s %d (%q): ", itemKind, index+1, it.Title)
	var (
		flds []core.FieldError
		verr *core.ValidationError
	)
	if errors.As(err, &verr) {
		for _, fe := range verr.Fields {
			flds = append(flds, core.FieldError{Field: fe.Field, Error: prefix + fe.Error})
		}
	}
	return core.NewValidationError(errors.New(prefix+err.Error()), flds...)
}
