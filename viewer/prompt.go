package viewer

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// prompt is the inline text entry used for annotations.
type prompt struct {
	title string
	text  []rune
	done  func(text string)
}

func newPrompt(titleKey string, text string, done func(string)) *prompt {
	return &prompt{
		title: titleKey,
		text:  []rune(text),
		done:  done,
	}
}

func (p *prompt) Value() string {
	return strings.TrimSpace(string(p.text))
}

func (app *App) updatePrompt() {
	p := app.prompt

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		p.text = append(p.text, rune(ch))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) && len(p.text) > 0:
		p.text = p.text[:len(p.text)-1]

	case rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeyKpEnter):
		app.prompt = nil

		// an empty answer is the same as cancel
		if value := p.Value(); value != "" {
			p.done(value)
		}

	case rl.IsKeyPressed(rl.KeyEscape):
		app.prompt = nil
	}
}
