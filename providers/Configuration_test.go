package providers

import (
	"testing"
)

func TestDecodeSettings(t *testing.T) {
	s := DefaultSettings()

	err := DecodeSettings([]byte(`
locale: ar
width: "800"
narrative:
  noteModel: local-model
  noteTemperature: 0.2
  baseUrl: http://localhost:8080/v1
`), &s)

	if err != nil {
		t.Fatal(err)
	}

	if s.Locale != "ar" || s.Width != 800 || s.Height != 650 {
		t.Errorf("settings: %+v", s)
	}

	if s.Narrative.NoteModel != "local-model" || s.Narrative.NoteTemperature != 0.2 {
		t.Errorf("narrative: %+v", s.Narrative)
	}

	if s.Narrative.AnalysisModel != "gpt-4o" || !s.ShowFootnotes {
		t.Errorf("defaults lost: %+v", s)
	}

	err = settingsValidate.Struct(s)

	if err != nil {
		t.Error(err)
	}

	s.Locale = "xx"

	if settingsValidate.Struct(s) == nil {
		t.Error("expect invalid locale")
	}
}

func TestGetClientConfiguration(t *testing.T) {
	res, err := GetClientConfiguration(map[string]any{
		"locale":         "uk",
		"show_footnotes": false,
	})

	if err != nil {
		t.Fatal(err)
	}

	if res.Locale != "uk" || res.ShowFootnotes == nil || *res.ShowFootnotes {
		t.Errorf("got: %+v", res)
	}
}
