package viewer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/redexp/pedigree/codec"
	"github.com/redexp/pedigree/export"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/render/raster"
	"github.com/redexp/pedigree/state"
)

func (app *App) writeFile(name string, cb func(io.Writer) error) error {
	var buf bytes.Buffer

	err := cb(&buf)

	if err != nil {
		return err
	}

	path := app.outPath(name)
	err = os.WriteFile(path, buf.Bytes(), 0o644)

	if err != nil {
		return err
	}

	log.Infof("saved %s", path)

	return nil
}

func (app *App) saveAll(names []string, writers []func(io.Writer) error) {
	for i, name := range names {
		err := app.writeFile(name, writers[i])

		if err != nil {
			log.Errorf("save %s: %s", name, err)
			app.fail(err)
			return
		}
	}

	app.flash(app.outPath(names[0]))
}

func (app *App) exportTables() {
	store := app.Root.Snapshot()

	app.saveAll(
		[]string{"pedigree_data.csv", "pedigree_data.xlsx"},
		[]func(io.Writer) error{
			func(w io.Writer) error { return codec.EncodeCSV(w, store) },
			func(w io.Writer) error { return codec.EncodeXLSX(w, store) },
		},
	)
}

func (app *App) exportImages() {
	w, h := app.Options.Width, app.Options.Height
	png, err := raster.PNG(app.Renderer, app.frame(), w, h)

	if err != nil {
		app.fail(err)
		return
	}

	app.saveAll(
		[]string{"pedigree.png", "pedigree.pdf"},
		[]func(io.Writer) error{
			func(out io.Writer) error {
				_, err := out.Write(png)
				return err
			},
			func(out io.Writer) error { return export.CanvasPDF(out, png, float64(w), float64(h)) },
		},
	)
}

func (app *App) exportNote() {
	name := "medical_note.pdf"
	title := i18n.L("note_title")

	if app.note.kind == "analysis" {
		name = "analysis.pdf"
		title = i18n.L("analysis_title")
	}

	text := app.note.result.Text

	app.saveAll([]string{name}, []func(io.Writer) error{
		func(w io.Writer) error { return export.NarrativePDF(w, title, text) },
	})
}

// Import loads a csv or xlsx file before the window opens.
func (app *App) Import(path string) error {
	f, err := os.Open(path)

	if err != nil {
		return err
	}

	defer f.Close()

	var store *state.Store

	if isXLSX(path) {
		store, err = codec.DecodeXLSX(f, app.Root.NewId)
	} else {
		store, err = codec.DecodeCSV(f, app.Root.NewId)
	}

	if err != nil {
		return err
	}

	app.Controller.Replace(store)
	app.status = i18n.L("imported", store.Len())
	app.statusUntil = StatusTime

	return nil
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
