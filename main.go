package main

import (
	"github.com/redexp/pedigree/providers"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	configPath string
	verbose    int
	logFile    string
)

func init() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.Int("web-socket", 0, "Start websocket server on port")
	pflag.StringVar(&configPath, "config", "", "Settings file (yaml)")
	pflag.CountVarP(&verbose, "verbose", "v", "Log verbosity, repeat for more")
	pflag.StringVar(&logFile, "log-file", "", "Write log to file instead of stderr")
	pflag.Parse()
}

func main() {
	if logFile != "" {
		commonlog.Configure(verbose, &logFile)
	} else {
		commonlog.Configure(verbose, nil)
	}

	settings, err := providers.LoadSettings(configPath)

	if err != nil {
		panic(err)
	}

	providers.Setup(settings, nil)

	err = providers.StartServer()

	if err != nil {
		panic(err)
	}
}
