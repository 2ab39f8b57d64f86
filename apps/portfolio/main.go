package main

import (
	"io"
	"log"
	"os"

	"github.com/trezcool/portfolio/core"
	logsvc "github.com/trezcool/portfolio/services/logger"
	pdfsvc "github.com/trezcool/portfolio/services/pdf"
)

func main() {
	conf := core.NewConfig()

	var logOut io.Writer = io.Discard
	if conf.Debug {
		logOut = os.Stderr
	}
	std := log.New(logOut, "PORTFOLIO : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// start CLI
	cli := commandLine{
		conf:     conf,
		log:      logger,
		ui:       newConsole(os.Stdin, os.Stdout),
		renderer: pdfsvc.NewChromeRenderer(conf),
	}
	err := cli.run(os.Args)
	logger.Wait()
	if err != nil {
		if err != errHelp {
			cli.ui.Error(err)
		}
		os.Exit(1)
	}
}
