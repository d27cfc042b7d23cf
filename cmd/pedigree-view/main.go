package main

import (
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/narrative"
	"github.com/redexp/pedigree/providers"
	"github.com/redexp/pedigree/state"
	"github.com/redexp/pedigree/viewer"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	configPath := pflag.String("config", "", "Settings file (yaml)")
	importPath := pflag.StringP("import", "i", "", "Open a csv or xlsx pedigree")
	outDir := pflag.StringP("out", "o", ".", "Directory for exported files")
	verbose := pflag.CountP("verbose", "v", "Log verbosity, repeat for more")
	pflag.Parse()

	commonlog.Configure(*verbose, nil)

	settings, err := providers.LoadSettings(*configPath)

	if err != nil {
		panic(err)
	}

	err = i18n.SetLocale(settings.Locale)

	if err != nil {
		panic(err)
	}

	root := state.CreateRoot(nil)
	root.ShowFootnotes = settings.ShowFootnotes

	var collaborator narrative.Collaborator

	client, err := narrative.NewOpenAI(settings.Narrative)

	if err == nil {
		collaborator = client
	}

	app := viewer.New(root, narrative.NewService(collaborator), viewer.Options{
		Width:  settings.Width,
		Height: settings.Height,
		OutDir: *outDir,
	})

	if *importPath != "" {
		err = app.Import(*importPath)

		if err != nil {
			panic(err)
		}
	}

	err = app.Run()

	if err != nil {
		panic(err)
	}
}
