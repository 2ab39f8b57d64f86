package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/portfolio"
)

type itemFlags struct {
	title, outcomes, members, link, description *string
	group                                       *bool
}

func newItemFlags(fs *flag.FlagSet) itemFlags {
	return itemFlags{
		title:       fs.String("title", "", "title"),
		outcomes:    fs.String("outcomes", "", "learning outcomes, e.g. 1,3"),
		group:       fs.Bool("group", false, "group work"),
		members:     fs.String("members", "", "group members, comma separated"),
		link:        fs.String("link", "", "GitHub link to the evidence"),
		description: fs.String("description", "", "description"),
	}
}

func (cli *commandLine) items(args []string) error {
	if err := parse(newFlagSet("items", cli.ui), args); err != nil {
		return err
	}
	items := cli.svc.Items()
	rows := make([]string, 0, len(items))
	for i, it := range items {
		kind := "personal"
		if it.IsGroupWork {
			kind = "group"
			if len(it.GroupMembers) > 0 {
				kind += " with " + strings.Join(it.GroupMembers, ", ")
			}
		}
		rows = append(rows,
			fmt.Sprintf("%d. %s [LU %s] %s, added %s, %d feedback", i+1, it.Title, formatOutcomes(it.LearningOutcomes), kind, it.DateAdded, len(it.Feedback)),
			"   "+it.GithubLink,
		)
	}
	cli.ui.List(fmt.Sprintf("Portfolio items (%d)", len(items)), rows)
	cli.remindFeedback(cli.svc.CountItemsWithoutFeedback())
	return nil
}

func (cli *commandLine) addItem(args []string) error {
	fs := newFlagSet("add-item", cli.ui)
	f := newItemFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	var err error
	prompts := []struct {
		flag, label string
		value       *string
	}{
		{"title", "Title", f.title},
		{"outcomes", "Learning outcomes (e.g. 1,3)", f.outcomes},
		{"link", "GitHub link", f.link},
		{"description", "Description", f.description},
	}
	for _, p := range prompts {
		if isSet(fs, p.flag) {
			continue
		}
		if *p.value, err = cli.ask(p.label, ""); err != nil {
			return err
		}
	}
	if *f.group && !isSet(fs, "members") {
		if *f.members, err = cli.ask("Group members (comma separated)", ""); err != nil {
			return err
		}
	}

	ids, err := parseOutcomes(*f.outcomes)
	if err != nil {
		return err
	}
	it, err := cli.svc.AddItem(portfolio.NewItem{
		Title:            *f.title,
		LearningOutcomes: ids,
		IsGroupWork:      *f.group,
		GroupMembers:     core.SplitList(*f.members),
		GithubLink:       *f.link,
		Description:      *f.description,
	})
	if err != nil {
		return err
	}
	cli.ui.Info("added %q [LU %s]", it.Title, formatOutcomes(it.LearningOutcomes))
	return nil
}

// editItem replaces the given fields of an item; the others keep their value.
func (cli *commandLine) editItem(args []string) error {
	fs := newFlagSet("edit-item", cli.ui)
	index := fs.Int("index", 0, "position of the item, as listed by `items`")
	f := newItemFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *index == 0 {
		fs.Usage()
		return errHelp
	}

	cur, err := cli.svc.Item(position(*index))
	if err != nil {
		return err
	}
	ni := portfolio.NewItem{
		Title:            cur.Title,
		LearningOutcomes: cur.LearningOutcomes,
		IsGroupWork:      cur.IsGroupWork,
		GroupMembers:     cur.GroupMembers,
		GithubLink:       cur.GithubLink,
		Description:      cur.Description,
	}
	if isSet(fs, "title") {
		ni.Title = *f.title
	}
	if isSet(fs, "outcomes") {
		if ni.LearningOutcomes, err = parseOutcomes(*f.outcomes); err != nil {
			return err
		}
	}
	if isSet(fs, "group") {
		ni.IsGroupWork = *f.group
	}
	if isSet(fs, "members") {
		ni.GroupMembers = core.SplitList(*f.members)
	}
	if isSet(fs, "link") {
		ni.GithubLink = *f.link
	}
	if isSet(fs, "description") {
		ni.Description = *f.description
	}

	it, err := cli.svc.UpdateItem(position(*index), ni)
	if err != nil {
		return err
	}
	cli.ui.Info("updated %q [LU %s]", it.Title, formatOutcomes(it.LearningOutcomes))
	return nil
}

func (cli *commandLine) deleteItem(args []string) error {
	fs := newFlagSet("delete-item", cli.ui)
	index := fs.Int("index", 0, "position of the item, as listed by `items`")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *index == 0 {
		fs.Usage()
		return errHelp
	}

	it, err := cli.svc.Item(position(*index))
	if err != nil {
		return err
	}
	if !*yes {
		ok, err := cli.confirm(fmt.Sprintf("Delete %q and its %d feedback entries?", it.Title, len(it.Feedback)))
		if err != nil || !ok {
			return err
		}
	}
	if _, err := cli.svc.DeleteItem(position(*index)); err != nil {
		return err
	}
	cli.ui.Info("deleted %q", it.Title)
	return nil
}

func (cli *commandLine) feedback(args []string) error {
	if err := parse(newFlagSet("feedback", cli.ui), args); err != nil {
		return err
	}
	all := cli.svc.AllFeedback()
	if len(all) == 0 {
		cli.ui.Info("no feedback yet")
	}
	for _, itf := range all {
		rows := make([]string, 0, len(itf.Feedback))
		for i, fb := range itf.Feedback {
			rows = append(rows, fmt.Sprintf("%d. %s (%s) [LU %s]: %s", i+1, fb.From, fb.Date, formatOutcomes(fb.LearningOutcomes), fb.Text))
		}
		cli.ui.List(fmt.Sprintf("%d. %s", itf.Index+1, itf.Title), rows)
	}
	cli.remindFeedback(cli.svc.CountItemsWithoutFeedback())
	return nil
}

type feedbackFlags struct {
	item, index          *int
	from, text, outcomes *string
}

func newFeedbackFlags(fs *flag.FlagSet, withIndex bool) feedbackFlags {
	f := feedbackFlags{item: fs.Int("item", 0, "position of the portfolio item, as listed by `items`")}
	if withIndex {
		f.index = fs.Int("index", 0, "position of the feedback, as listed by `feedback`")
	}
	f.from = fs.String("from", "", "who gave the feedback")
	f.text = fs.String("text", "", "the feedback")
	f.outcomes = fs.String("outcomes", "", "learning outcomes it is about, e.g. 1,3")
	return f
}

func (cli *commandLine) addFeedback(args []string) error {
	fs := newFlagSet("add-feedback", cli.ui)
	f := newFeedbackFlags(fs, false)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *f.item == 0 {
		fs.Usage()
		return errHelp
	}
	it, err := cli.svc.Item(position(*f.item))
	if err != nil {
		return err
	}

	if !isSet(fs, "from") {
		if *f.from, err = cli.ask("From", ""); err != nil {
			return err
		}
	}
	if !isSet(fs, "text") {
		if *f.text, err = cli.ask("Feedback", ""); err != nil {
			return err
		}
	}
	if !isSet(fs, "outcomes") {
		label := fmt.Sprintf("Learning outcomes (of %s)", formatOutcomes(it.LearningOutcomes))
		if *f.outcomes, err = cli.ask(label, ""); err != nil {
			return err
		}
	}
	ids, err := parseOutcomes(*f.outcomes)
	if err != nil {
		return err
	}

	fb, err := cli.svc.AddFeedback(position(*f.item), portfolio.NewFeedback{From: *f.from, Text: *f.text, LearningOutcomes: ids})
	if err != nil {
		return err
	}
	cli.ui.Info("feedback from %s added to %q", fb.From, it.Title)
	return nil
}

func (cli *commandLine) editFeedback(args []string) error {
	fs := newFlagSet("edit-feedback", cli.ui)
	f := newFeedbackFlags(fs, true)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *f.item == 0 || *f.index == 0 {
		fs.Usage()
		return errHelp
	}

	it, err := cli.svc.Item(position(*f.item))
	if err != nil {
		return err
	}
	fbIndex := position(*f.index)
	if fbIndex < 0 || fbIndex >= len(it.Feedback) {
		return core.NewIndexError("feedback", fbIndex, len(it.Feedback))
	}
	cur := it.Feedback[fbIndex]
	nf := portfolio.NewFeedback{From: cur.From, Text: cur.Text, LearningOutcomes: cur.LearningOutcomes}
	if isSet(fs, "from") {
		nf.From = *f.from
	}
	if isSet(fs, "text") {
		nf.Text = *f.text
	}
	if isSet(fs, "outcomes") {
		if nf.LearningOutcomes, err = parseOutcomes(*f.outcomes); err != nil {
			return err
		}
	}

	if _, err := cli.svc.UpdateFeedback(position(*f.item), fbIndex, nf); err != nil {
		return err
	}
	cli.ui.Info("feedback updated")
	return nil
}

func (cli *commandLine) removeFeedback(args []string) error {
	fs := newFlagSet("remove-feedback", cli.ui)
	item := fs.Int("item", 0, "position of the portfolio item, as listed by `items`")
	index := fs.Int("index", 0, "position of the feedback, as listed by `feedback`")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *item == 0 || *index == 0 {
		fs.Usage()
		return errHelp
	}

	if !*yes {
		ok, err := cli.confirm("Remove this feedback?")
		if err != nil || !ok {
			return err
		}
	}
	fb, err := cli.svc.RemoveFeedback(position(*item), position(*index))
	if err != nil {
		return err
	}
	cli.ui.Info("feedback from %s removed", fb.From)
	return nil
}
