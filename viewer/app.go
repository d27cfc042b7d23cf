package viewer

import (
	"context"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/interact"
	"github.com/redexp/pedigree/narrative"
	"github.com/redexp/pedigree/render"
	"github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pedigree.viewer")

const (
	PanelWidth  = 280
	StatusTime  = 4.0
	Title       = "Pedigree"
	narrativeCh = 1
)

type Options struct {
	Width  int
	Height int
	OutDir string
}

type narrativeDone struct {
	kind   string
	result narrative.Result
}

// App is the desktop front end: one window with the pedigree canvas and a side panel.
type App struct {
	Root       *state.Root
	Controller *interact.Controller
	Renderer   *render.Renderer
	Narrator   *narrative.Service
	Options    Options

	canvas   *Canvas
	gestures interact.Gestures
	down     bool
	last     Pos

	prompt *prompt
	menu   string

	status      string
	statusUntil float64

	notes    chan narrativeDone
	note     narrativeDone
	noteBusy bool
}

func New(root *state.Root, narrator *narrative.Service, opts Options) *App {
	return &App{
		Root:       root,
		Controller: interact.NewController(root),
		Renderer:   render.NewRenderer(nil),
		Narrator:   narrator,
		Options:    opts,
		notes:      make(chan narrativeDone, narrativeCh),
	}
}

func (app *App) Run() error {
	if app.Options.OutDir != "" {
		err := os.MkdirAll(app.Options.OutDir, 0o755)

		if err != nil {
			return err
		}
	}

	rl.InitWindow(int32(app.Options.Width+PanelWidth), int32(app.Options.Height), Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	app.canvas = NewCanvas()
	defer app.canvas.Unload()

	log.Infof("window %dx%d", app.Options.Width, app.Options.Height)

	for !rl.WindowShouldClose() {
		app.update()

		rl.BeginDrawing()
		app.draw()
		rl.EndDrawing()
	}

	return nil
}

func (app *App) update() {
	select {
	case done := <-app.notes:
		if !done.result.Busy {
			app.noteBusy = false
		}

		if done.result.Error != "" {
			app.flash(done.result.Error)
		} else {
			app.note = done
		}
	default:
	}

	if app.prompt != nil {
		app.updatePrompt()
		return
	}

	app.updatePointer()
	app.updateKeys()
}

func (app *App) updatePointer() {
	ctrl := app.Controller
	mouse := rl.GetMousePosition()
	at := Pos{X: float64(mouse.X), Y: float64(mouse.Y)}
	inside := at.X < float64(app.Options.Width) && rl.IsCursorOnScreen()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && inside {
		ctrl.Zoom(wheel > 0)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && inside {
		app.menu = ""
		app.down = true
		app.last = at
		ctrl.PointerDown(at)
		return
	}

	if !app.down {
		return
	}

	if !inside {
		app.down = false
		ctrl.PointerUp()
		return
	}

	if at != app.last {
		app.last = at
		ctrl.PointerMove(at)
	}

	if !rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		return
	}

	app.down = false
	ctrl.PointerUp()

	app.effect(ctrl.Click(at))

	if app.gestures.Release(at, rl.GetTime()) {
		app.effect(ctrl.DoubleClick(at))
	}
}

func (app *App) effect(e *interact.Effect) {
	if e == nil {
		return
	}

	switch e.Type {
	case interact.EffectFocusMember:
		m := app.Root.Store.Get(e.MemberId)

		if m != nil {
			app.flash(state.Describe(app.Root.Store, m))
		}

	case interact.EffectAnnotationMenu:
		app.menu = e.AnnotationId

	case interact.EffectPromptAnnotation:
		at := e.At
		app.prompt = newPrompt("enter_text", "", func(text string) {
			app.Controller.AddAnnotation(at, text)
		})
	}
}

func (app *App) flash(text string) {
	app.status = text
	app.statusUntil = rl.GetTime() + StatusTime
}

func (app *App) fail(err error) {
	app.flash(interact.ErrorMessage(err))
}

func (app *App) requestNarrative(kind string) {
	if app.Narrator == nil {
		return
	}

	if app.noteBusy {
		app.flash(i18n.L("busy"))
		return
	}

	app.noteBusy = true
	store := app.Root.Snapshot()

	go func() {
		var res narrative.Result

		if kind == "analysis" {
			res = app.Narrator.Analyze(context.Background(), store)
		} else {
			res = app.Narrator.MedicalNote(context.Background(), store)
		}

		app.notes <- narrativeDone{kind: kind, result: res}
	}()
}

func (app *App) outPath(name string) string {
	return filepath.Join(app.Options.OutDir, name)
}
