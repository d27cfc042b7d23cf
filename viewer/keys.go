package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/redexp/pedigree/interact"
	"github.com/redexp/pedigree/state"
)

var arrowKeys = map[int32]string{
	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",
}

var relativeKeys = map[int32]state.Kind{
	rl.KeyP: state.KindParent,
	rl.KeyC: state.KindChild,
	rl.KeyS: state.KindSpouse,
}

func modifier() (ctrl bool, meta bool) {
	ctrl = rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	meta = rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)

	return
}

func (app *App) updateKeys() {
	ctrl, meta := modifier()
	c := app.Controller

	for key, name := range arrowKeys {
		if rl.IsKeyPressed(key) {
			c.Key(interact.Key{Name: name})
		}
	}

	if app.menu != "" {
		app.updateMenu()
		return
	}

	if ctrl || meta {
		switch {
		case rl.IsKeyPressed(rl.KeyZ):
			c.Key(interact.Key{Name: "z", Ctrl: ctrl, Meta: meta})
		case rl.IsKeyPressed(rl.KeyS):
			app.exportTables()
		case rl.IsKeyPressed(rl.KeyE):
			app.exportImages()
		}

		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		c.Zoom(true)

	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		c.Zoom(false)

	case rl.IsKeyPressed(rl.KeyF):
		c.ToggleFootnotes(!app.Root.ShowFootnotes)

	case rl.IsKeyPressed(rl.KeyN):
		c.New()
		app.note = narrativeDone{}

	case rl.IsKeyPressed(rl.KeyR):
		c.Relayout()

	case rl.IsKeyPressed(rl.KeyDelete) && app.Root.Highlighted != "":
		_, err := c.DeleteMember(app.Root.Highlighted)

		if err != nil {
			app.fail(err)
		}

	case rl.IsKeyPressed(rl.KeyA):
		app.requestNarrative("analysis")

	case rl.IsKeyPressed(rl.KeyM):
		app.requestNarrative("note")

	case rl.IsKeyPressed(rl.KeyO) && app.note.result.Text != "":
		app.exportNote()
	}

	for key, kind := range relativeKeys {
		if !rl.IsKeyPressed(key) {
			continue
		}

		origin := app.Root.HighlightedMember()

		if origin == nil {
			origin = app.Root.Store.Proband()
		}

		m, err := c.AddRelative(origin.Id, kind)

		if err != nil {
			app.fail(err)
			continue
		}

		c.Highlight(m.Id)
	}
}

// updateMenu handles the annotation menu: E edits, D or Delete removes, Escape closes.
func (app *App) updateMenu() {
	id := app.menu
	a := app.Root.Annotations.Get(id)

	if a == nil {
		app.menu = ""
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyE):
		app.menu = ""
		app.prompt = newPrompt("edit_text", a.Text, func(text string) {
			err := app.Controller.EditAnnotation(id, text)

			if err != nil {
				app.fail(err)
			}
		})

	case rl.IsKeyPressed(rl.KeyD), rl.IsKeyPressed(rl.KeyDelete):
		app.menu = ""

		err := app.Controller.DeleteAnnotation(id)

		if err != nil {
			app.fail(err)
		}

	case rl.IsKeyPressed(rl.KeyEscape):
		app.menu = ""
	}
}
