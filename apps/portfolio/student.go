package main

import (
	"fmt"
	"strings"

	"github.com/trezcool/portfolio/core/outcome"
	"github.com/trezcool/portfolio/core/portfolio"
)

func (cli *commandLine) setup(args []string) error {
	fs := newFlagSet("setup", cli.ui)
	name := fs.String("name", "", "full name")
	number := fs.String("number", "", "student number")
	semester := fs.String("semester", "", "semester (2-8)")
	milestone := fs.String("milestone", "", "peilmoment (1-4)")
	if err := parse(fs, args); err != nil {
		return err
	}

	cur := cli.svc.State().StudentInfo
	ns := portfolio.NewStudentInfo{Name: *name, StudentNumber: *number, Semester: *semester, Milestone: *milestone}
	var err error
	if !isSet(fs, "name") {
		if ns.Name, err = cli.ask("Name", cur.Name); err != nil {
			return err
		}
	}
	if !isSet(fs, "number") {
		if ns.StudentNumber, err = cli.ask("Student number", cur.StudentNumber); err != nil {
			return err
		}
	}
	if !isSet(fs, "semester") {
		if ns.Semester, err = cli.ask("Semester (2-8)", cur.Semester); err != nil {
			return err
		}
	}
	if !isSet(fs, "milestone") {
		if ns.Milestone, err = cli.ask("Peilmoment (1-4)", cur.Milestone); err != nil {
			return err
		}
	}

	info, err := cli.svc.SetStudentInfo(ns)
	if err != nil {
		return err
	}
	cli.ui.Info("student saved: %s (%s)", info.Name, info.StudentNumber)
	return nil
}

func (cli *commandLine) student(args []string) error {
	if err := parse(newFlagSet("student", cli.ui), args); err != nil {
		return err
	}
	info := cli.svc.State().StudentInfo
	cli.ui.List("Student", []string{
		"Name:           " + info.Name,
		"Student number: " + info.StudentNumber,
		"Semester:       " + info.Semester,
		"Peilmoment:     " + info.Milestone,
	})
	return nil
}

func (cli *commandLine) status(args []string) error {
	if err := parse(newFlagSet("status", cli.ui), args); err != nil {
		return err
	}
	st := cli.svc.State()

	reflection := "incomplete"
	if st.ReflectionData.Ready() {
		reflection = "complete"
	}
	withoutFeedback := st.CountItemsWithoutFeedback()
	cli.ui.List(fmt.Sprintf("%s %s", cli.conf.AppName, cli.conf.Build), []string{
		fmt.Sprintf("Student:         %s (%s)", st.StudentInfo.Name, st.StudentInfo.StudentNumber),
		fmt.Sprintf("Portfolio items: %d (%d without feedback)", len(st.PortfolioItems), withoutFeedback),
		fmt.Sprintf("Outcomes:        %s", coverage(st.PortfolioItems)),
		fmt.Sprintf("Reflection:      %s", reflection),
	})
	cli.remindFeedback(withoutFeedback)
	return nil
}

func (cli *commandLine) remindFeedback(n int) {
	if n > 0 {
		cli.ui.Warn("%d portfolio item(s) have no feedback yet", n)
	}
}

// coverage lists, per outcome, how many items claim it.
func coverage(items []portfolio.Item) string {
	parts := make([]string, 0, outcome.MaxID)
	for id := outcome.MinID; id <= outcome.MaxID; id++ {
		var n int
		for _, it := range items {
			if it.HasOutcome(id) {
				n++
			}
		}
		parts = append(parts, fmt.Sprintf("%d:%d", id, n))
	}
	return strings.Join(parts, " ")
}

func (cli *commandLine) outcomes(args []string) error {
	fs := newFlagSet("outcomes", cli.ui)
	id := fs.Int("id", 0, "show the details of one learning outcome")
	if err := parse(fs, args); err != nil {
		return err
	}

	catalog := outcome.Default()
	if *id == 0 {
		rows := make([]string, 0, len(catalog))
		for _, lo := range catalog {
			rows = append(rows, fmt.Sprintf("%d. %s", lo.ID, lo.Title))
		}
		cli.ui.List("Leeruitkomsten", rows)
		return nil
	}

	lo, ok := catalog.Get(*id)
	if !ok {
		return fmt.Errorf("there is no learning outcome %d (1-%d)", *id, outcome.MaxID)
	}
	cli.ui.Info("Leeruitkomst %d: %s\n\n%s\n", lo.ID, lo.Title, lo.Description)
	cli.ui.List("Indicatoren:", bullets(lo.Indicators))
	cli.ui.List("Voorbeelden van opdrachten:", bullets(lo.Examples))
	return nil
}

func bullets(ss []string) []string {
	rows := make([]string, len(ss))
	for i, s := range ss {
		rows[i] = "- " + s
	}
	return rows
}

func (cli *commandLine) exportData(args []string) error {
	fs := newFlagSet("export", cli.ui)
	file := fs.String("file", "", "destination file")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *file == "" {
		fs.Usage()
		return errHelp
	}
	if err := cli.svc.Export(*file); err != nil {
		return err
	}
	cli.ui.Info("portfolio exported to %s", *file)
	return nil
}

func (cli *commandLine) importData(args []string) error {
	fs := newFlagSet("import", cli.ui)
	file := fs.String("file", "", "file written by export")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *file == "" {
		fs.Usage()
		return errHelp
	}
	if !*yes {
		ok, err := cli.confirm("Replace all current data with " + *file + "?")
		if err != nil || !ok {
			return err
		}
	}
	if err := cli.svc.Import(*file); err != nil {
		return err
	}
	cli.ui.Info("portfolio imported from %s", *file)
	return nil
}
