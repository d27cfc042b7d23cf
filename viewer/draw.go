package viewer

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/render"
	"github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
)

const (
	panelPad  = 12.0
	panelText = 14.0
	panelLine = 18.0
)

var (
	panelBg  = render.MustHex("#F4F4F4")
	overlay  = render.MustHex("#00000080")
	boxColor = render.White
)

func (app *App) frame() render.Frame {
	f := render.FrameOf(app.Root)
	f.LegendTitle = i18n.L("legend_title")

	return f
}

func (app *App) draw() {
	c := app.canvas
	app.Renderer.Draw(c, app.frame())

	app.drawPanel()

	if app.menu != "" {
		app.drawMenu()
	}

	if app.prompt != nil {
		app.drawPrompt()
	}

	if app.status != "" && rl.GetTime() < app.statusUntil {
		y := float64(app.Options.Height) - panelLine

		c.Rect(Rect{X: 0, Y: y - panelLine + 4, Width: float64(app.Options.Width), Height: panelLine + 4}, render.Style{Fill: &panelBg})
		c.Text(Pos{X: panelPad, Y: y}, app.status, render.Font{Size: panelText}, render.Black)
	}
}

func (app *App) drawPanel() {
	c := app.canvas
	x := float64(app.Options.Width)
	width := float64(PanelWidth)

	c.Rect(Rect{X: x, Y: 0, Width: width, Height: float64(app.Options.Height)}, render.Style{Fill: &panelBg})

	lines := make([]string, 0)

	if m := app.Root.HighlightedMember(); m != nil {
		lines = append(lines, memberLines(app.Root.Store, m)...)
		lines = append(lines, "")
	}

	lines = append(lines, help...)

	if app.noteBusy {
		lines = append(lines, "", i18n.L("busy"))
	}

	if app.note.result.Text != "" {
		title := i18n.L("note_title")

		if app.note.kind == "analysis" {
			title = i18n.L("analysis_title")
		}

		lines = append(lines, "", title)
		lines = append(lines, app.wrap(app.note.result.Text, width-2*panelPad)...)
	}

	y := panelPad + panelText

	for _, line := range lines {
		if y > float64(app.Options.Height) {
			break
		}

		c.Text(Pos{X: x + panelPad, Y: y}, line, render.Font{Size: panelText}, render.Black)
		y += panelLine
	}
}

var help = []string{
	"P / C / S  add parent, child, spouse",
	"Delete  remove member",
	"F footnotes   R relayout   N new",
	"+ / -  zoom   arrows  pan",
	"Ctrl+Z undo",
	"Ctrl+S save csv, xlsx",
	"Ctrl+E save png, pdf",
	"A analysis   M note   O note pdf",
}

func memberLines(store *state.Store, m *state.Member) []string {
	dead := ""

	if m.IsDead {
		dead = " †"
	}

	lines := []string{
		state.Describe(store, m),
		state.DisplayName(m) + dead,
		fmt.Sprintf("%s, %s", m.Sex, m.Relationship),
	}

	for _, field := range []string{m.AgeAtDiagnosis, m.Cancers, m.Genetics} {
		if field != "" {
			lines = append(lines, field)
		}
	}

	return lines
}

func (app *App) wrap(text string, width float64) []string {
	lines := make([]string, 0)

	for _, para := range strings.Split(text, "\n") {
		line := ""

		for _, word := range strings.Fields(para) {
			next := word

			if line != "" {
				next = line + " " + word
			}

			if line != "" && app.canvas.TextWidth(next, panelText) > width {
				lines = append(lines, line)
				next = word
			}

			line = next
		}

		lines = append(lines, line)
	}

	return lines
}

func (app *App) drawMenu() {
	a := app.Root.Annotations.Get(app.menu)

	if a == nil {
		return
	}

	at := app.Root.View.ToScreen(a.Pos())
	box := Rect{X: at.X, Y: at.Y + 6, Width: 200, Height: panelLine*2 + 8}

	app.canvas.Rect(box, render.Style{Fill: &boxColor, Stroke: &render.Stroke{Color: render.Black, Width: 1}})
	app.canvas.Text(Pos{X: box.X + 6, Y: box.Y + panelLine}, "E edit   D delete", render.Font{Size: panelText}, render.Black)
	app.canvas.Text(Pos{X: box.X + 6, Y: box.Y + panelLine*2}, "Esc close", render.Font{Size: panelText}, render.Black)
}

func (app *App) drawPrompt() {
	c := app.canvas
	w := float64(app.Options.Width)
	h := float64(app.Options.Height)

	c.Rect(Rect{X: 0, Y: 0, Width: w, Height: h}, render.Style{Fill: &overlay})

	box := Rect{X: w/2 - 160, Y: h/2 - 40, Width: 320, Height: 80}

	c.Rect(box, render.Style{Fill: &boxColor, Stroke: &render.Stroke{Color: render.Black, Width: 1}})
	c.Text(Pos{X: box.X + panelPad, Y: box.Y + 26}, i18n.L(app.prompt.title), render.Font{Size: panelText, Bold: true}, render.Black)
	c.Text(Pos{X: box.X + panelPad, Y: box.Y + 56}, string(app.prompt.text)+"_", render.Font{Size: panelText}, render.Black)
}
