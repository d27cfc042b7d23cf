package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/redexp/pedigree/render"
	"github.com/redexp/pedigree/render/raster"
	"github.com/redexp/pedigree/state"
	"github.com/redexp/pedigree/utils"
)

func TestCanvasPDF(t *testing.T) {
	store := state.NewPedigree(utils.SequenceIds("m"))
	png, err := raster.PNG(render.NewRenderer(nil), render.Frame{Store: store, View: state.NewView()}, 650, 650)

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	err = CanvasPDF(&buf, png, 650, 650)

	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("not a pdf: %q", buf.Bytes()[:10])
	}

	if !bytes.Contains(buf.Bytes(), []byte("650.00 650.00")) {
		t.Error("page is not canvas sized")
	}
}

func TestNarrativePDF(t *testing.T) {
	var buf bytes.Buffer

	text := strings.Repeat("The proband was diagnosed with breast cancer at 45. ", 400)

	err := NarrativePDF(&buf, "Medical note", text)

	if err != nil {
		t.Fatal(err)
	}

	pages := bytes.Count(buf.Bytes(), []byte("/Type /Page\n"))

	if pages < 2 {
		t.Errorf("pages: %d", pages)
	}
}
