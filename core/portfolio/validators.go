package portfolio

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/outcome"
)

var (
	outcomesTag  = "outcomes"
	outcomesText = "{0} must list at least one learning outcome between 1 and 9"

	feedbackOutcomesTag  = "item_outcomes"
	feedbackOutcomesText = "{0} must only list learning outcomes claimed by the portfolio item"
)

func init() {
	_ = core.Validate.RegisterValidation(outcomesTag, outcomesValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, outcomesTag, outcomesText)

	core.Validate.RegisterStructValidation(itemStructValidation, NewItem{})
	core.Validate.RegisterStructValidation(feedbackStructValidation, NewFeedback{})
	core.RegisterCustomTranslation(core.Validate, core.Translator, feedbackOutcomesTag, feedbackOutcomesText)
}

// Custom Validators

// outcomesValidation checks that at least one outcome is listed and that all of them are catalog ids.
func outcomesValidation(fl validator.FieldLevel) bool {
	ids, ok := fl.Field().Interface().([]int)
	if !ok || len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !outcome.IsValidID(id) {
			return false
		}
	}
	return true
}

// itemStructValidation checks that replacement feedback only targets outcomes of the item.
func itemStructValidation(sl validator.StructLevel) {
	ni, ok := sl.Current().Interface().(NewItem)
	if !ok {
		return
	}
	for _, fb := range ni.Feedback {
		if !subsetOf(fb.LearningOutcomes, ni.LearningOutcomes) {
			sl.ReportError(ni.Feedback, "feedback", "Feedback", feedbackOutcomesTag, "")
			return
		}
	}
}

// feedbackStructValidation checks that feedback only targets outcomes of its item.
func feedbackStructValidation(sl validator.StructLevel) {
	nf, ok := sl.Current().Interface().(NewFeedback)
	if !ok || len(nf.LearningOutcomes) == 0 {
		return
	}
	if !subsetOf(nf.LearningOutcomes, nf.itemOutcomes) {
		sl.ReportError(nf.LearningOutcomes, "learning_outcomes", "LearningOutcomes", feedbackOutcomesTag, "")
	}
}

func subsetOf(ids, of []int) bool {
	for _, id := range ids {
		if !containsInt(of, id) {
			return false
		}
	}
	return true
}
