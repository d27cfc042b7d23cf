package providers

import (
	"bytes"
	"context"
	"fmt"

	"github.com/redexp/pedigree/codec"
	"github.com/redexp/pedigree/export"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/interact"
	"github.com/redexp/pedigree/render"
	"github.com/redexp/pedigree/render/raster"
	. "github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
)

func NewPedigreeHandlers() MethodHandlers {
	return MethodHandlers{
		MembersMethod:          NoParams(Members),
		AddRelativeMethod:      WithParams(AddRelative),
		UpdateMemberMethod:     WithParams(UpdateMember),
		DeleteMemberMethod:     WithParams(DeleteMember),
		NewMethod:              NoParams(NewSession),
		HighlightMethod:        WithParams(Highlight),
		RelayoutMethod:         NoParams(Relayout),
		RenderMethod:           WithParams(Render),
		PointerMethod:          WithParams(Pointer),
		KeyMethod:              WithParams(KeyDown),
		ZoomMethod:             WithParams(Zoom),
		PanMethod:              WithParams(Pan),
		FootnotesMethod:        WithParams(Footnotes),
		AnnotationAddMethod:    WithParams(AnnotationAdd),
		AnnotationEditMethod:   WithParams(AnnotationEdit),
		AnnotationDeleteMethod: WithParams(AnnotationDelete),
		ExportCSVMethod:        NoParams(ExportCSV),
		ExportXLSXMethod:       NoParams(ExportXLSX),
		ExportPNGMethod:        WithParams(ExportPNG),
		ExportPDFMethod:        WithParams(ExportPDF),
		ImportCSVMethod:        WithParams(ImportCSV),
		ImportXLSXMethod:       WithParams(ImportXLSX),
		AnalyzeMethod:          NoParams(Analyze),
		MedicalNoteMethod:      NoParams(MedicalNote),
		ExportNotePDFMethod:    WithParams(ExportNotePDF),
	}
}

const (
	MembersMethod          = "pedigree/members"
	AddRelativeMethod      = "pedigree/addRelative"
	UpdateMemberMethod     = "pedigree/updateMember"
	DeleteMemberMethod     = "pedigree/deleteMember"
	NewMethod              = "pedigree/new"
	HighlightMethod        = "pedigree/highlight"
	RelayoutMethod         = "pedigree/relayout"
	RenderMethod           = "pedigree/render"
	PointerMethod          = "pedigree/pointer"
	KeyMethod              = "pedigree/key"
	ZoomMethod             = "pedigree/zoom"
	PanMethod              = "pedigree/pan"
	FootnotesMethod        = "pedigree/footnotes"
	AnnotationAddMethod    = "pedigree/annotation/add"
	AnnotationEditMethod   = "pedigree/annotation/edit"
	AnnotationDeleteMethod = "pedigree/annotation/delete"
	ExportCSVMethod        = "pedigree/export/csv"
	ExportXLSXMethod       = "pedigree/export/xlsx"
	ExportPNGMethod        = "pedigree/export/png"
	ExportPDFMethod        = "pedigree/export/pdf"
	ImportCSVMethod        = "pedigree/import/csv"
	ImportXLSXMethod       = "pedigree/import/xlsx"
	AnalyzeMethod          = "pedigree/analyze"
	MedicalNoteMethod      = "pedigree/medicalNote"
	ExportNotePDFMethod    = "pedigree/export/notePdf"
)

// Result answers every mutation. Rejections are not RPC errors, they carry a localized message.
type Result struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type Session struct {
	Members       []*Member   `json:"members"`
	Annotations   Annotations `json:"annotations"`
	Highlighted   string      `json:"highlighted,omitempty"`
	View          View        `json:"view"`
	ShowFootnotes bool        `json:"showFootnotes"`
	CanUndo       bool        `json:"canUndo"`
	Issues        []Issue     `json:"issues"`
}

// locked runs cb under the session lock.
func locked[T any](cb func() T) T {
	root.UpdateLock.Lock()
	defer root.UpdateLock.Unlock()

	return cb()
}

func Members(ctx *Ctx) (any, error) {
	trackContext(ctx)

	return locked(func() *Session {
		return &Session{
			Members:       root.Store.Clone().Members,
			Annotations:   root.Annotations.Clone(),
			Highlighted:   root.Highlighted,
			View:          root.View,
			ShowFootnotes: root.ShowFootnotes,
			CanUndo:       root.Undo.Len() > 0,
			Issues:        Integrity(root.Store),
		}
	}), nil
}

type AddRelativeParams struct {
	OriginId string `json:"originId"`
	Kind     Kind   `json:"kind"`
}

func AddRelative(ctx *Ctx, params *AddRelativeParams) (any, error) {
	trackContext(ctx)

	return locked(func() *Result {
		m, err := controller.AddRelative(params.OriginId, params.Kind)

		if err != nil {
			return fail(err)
		}

		return done(m.Clone())
	}), nil
}

type UpdateMemberParams struct {
	Patch map[string]any `json:"patch"`
}

func UpdateMember(ctx *Ctx, params *UpdateMemberParams) (any, error) {
	trackContext(ctx)

	patch, err := DecodePatch(params.Patch)

	if err != nil {
		return fail(err), nil
	}

	return locked(func() *Result {
		m, err := controller.UpdateMember(patch)

		if err != nil {
			return fail(err)
		}

		return done(m.Clone())
	}), nil
}

type IdParams struct {
	Id string `json:"id"`
}

func DeleteMember(ctx *Ctx, params *IdParams) (any, error) {
	trackContext(ctx)

	return locked(func() *Result {
		removed, err := controller.DeleteMember(params.Id)

		if err != nil {
			return fail(err)
		}

		return done(removed)
	}), nil
}

func NewSession(ctx *Ctx) (any, error) {
	trackContext(ctx)

	return locked(func() *Result {
		controller.New()

		return done(root.Store.Proband().Clone())
	}), nil
}

func Highlight(ctx *Ctx, params *IdParams) (any, error) {
	return locked(func() *Result {
		if !controller.Highlight(params.Id) {
			return fail(fmt.Errorf("%w: %s", ErrUnknownMember, params.Id))
		}

		return done(nil)
	}), nil
}

func Relayout(ctx *Ctx) (any, error) {
	return locked(func() *Result {
		return done(controller.Relayout())
	}), nil
}

type RenderParams struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (params *RenderParams) size() (int, int) {
	w, h := params.Width, params.Height

	if w <= 0 {
		w = settings.Width
	}

	if h <= 0 {
		h = settings.Height
	}

	return w, h
}

type RenderResult struct {
	Commands []render.Command `json:"commands"`
	Legend   []string         `json:"legend"`
	Image    string           `json:"image"`
}

// Render returns the draw commands of the current frame for clients with their own canvas,
// plus the same frame as a base64 png.
func Render(ctx *Ctx, params *RenderParams) (any, error) {
	f := snapshotFrame()
	rec, legend := renderer.Record(f)
	w, h := params.size()

	image, err := encode(func(buf *bytes.Buffer) error {
		png, err := raster.PNG(renderer, f, w, h)

		if err != nil {
			return err
		}

		_, err = buf.Write(png)

		return err
	})

	if err != nil {
		return nil, err
	}

	return &RenderResult{
		Commands: rec.Commands,
		Legend:   legend,
		Image:    image,
	}, nil
}

func frame() render.Frame {
	f := render.FrameOf(root)
	f.LegendTitle = i18n.L("legend_title")

	return f
}

type PointerType string

const (
	PointerDown     PointerType = "down"
	PointerMove     PointerType = "move"
	PointerUp       PointerType = "up"
	PointerLeave    PointerType = "leave"
	PointerClick    PointerType = "click"
	PointerDblClick PointerType = "dblclick"
)

type PointerParams struct {
	Type PointerType `json:"type"`
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
}

type PointerResult struct {
	Mode    interact.Mode    `json:"mode"`
	Changed bool             `json:"changed"`
	Effect  *interact.Effect `json:"effect,omitempty"`
}

func Pointer(ctx *Ctx, params *PointerParams) (any, error) {
	trackContext(ctx)

	return locked(func() *PointerResult {
		res := &PointerResult{}
		at := Pos{X: params.X, Y: params.Y}

		switch params.Type {
		case PointerDown:
			controller.PointerDown(at)
		case PointerMove:
			res.Changed = controller.PointerMove(at)
		case PointerUp, PointerLeave:
			controller.PointerUp()
		case PointerClick:
			res.Effect = controller.Click(at)
		case PointerDblClick:
			res.Effect = controller.DoubleClick(at)
		}

		res.Mode = controller.Mode()

		return res
	}), nil
}

func KeyDown(ctx *Ctx, params *interact.Key) (any, error) {
	return locked(func() *Result {
		return &Result{Ok: controller.Key(*params)}
	}), nil
}

type ZoomParams struct {
	In bool `json:"in"`
}

func Zoom(ctx *Ctx, params *ZoomParams) (any, error) {
	return locked(func() *Result {
		return done(controller.Zoom(params.In))
	}), nil
}

type PanParams struct {
	Direction Direction `json:"direction"`
}

func Pan(ctx *Ctx, params *PanParams) (any, error) {
	return locked(func() *Result {
		return &Result{Ok: controller.Pan(params.Direction)}
	}), nil
}

type FootnotesParams struct {
	Show bool `json:"show"`
}

func Footnotes(ctx *Ctx, params *FootnotesParams) (any, error) {
	return locked(func() *Result {
		controller.ToggleFootnotes(params.Show)

		return done(nil)
	}), nil
}

type AnnotationParams struct {
	Id   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

func AnnotationAdd(ctx *Ctx, params *AnnotationParams) (any, error) {
	return locked(func() *Result {
		a := controller.AddAnnotation(Pos{X: params.X, Y: params.Y}, params.Text)

		if a == nil {
			return &Result{}
		}

		return done(*a)
	}), nil
}

func AnnotationEdit(ctx *Ctx, params *AnnotationParams) (any, error) {
	return locked(func() *Result {
		err := controller.EditAnnotation(params.Id, params.Text)

		if err != nil {
			return fail(err)
		}

		return done(nil)
	}), nil
}

func AnnotationDelete(ctx *Ctx, params *IdParams) (any, error) {
	return locked(func() *Result {
		err := controller.DeleteAnnotation(params.Id)

		if err != nil {
			return fail(err)
		}

		return done(nil)
	}), nil
}

type File struct {
	Name string `json:"name"`
	Mime string `json:"mime"`
	Data string `json:"data"`
}

func exportFile(name string, mime string, cb func(*bytes.Buffer) error) *Result {
	data, err := encode(cb)

	if err != nil {
		log.Errorf("export %s: %s", name, err)
		return fail(err)
	}

	log.Infof("exported %s", name)

	return done(&File{Name: name, Mime: mime, Data: data})
}

func ExportCSV(ctx *Ctx) (any, error) {
	store := locked(root.Snapshot)

	return exportFile("pedigree_data.csv", "text/csv", func(buf *bytes.Buffer) error {
		return codec.EncodeCSV(buf, store)
	}), nil
}

func ExportXLSX(ctx *Ctx) (any, error) {
	store := locked(root.Snapshot)

	return exportFile("pedigree_data.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", func(buf *bytes.Buffer) error {
		return codec.EncodeXLSX(buf, store)
	}), nil
}

func snapshotFrame() render.Frame {
	return locked(func() render.Frame {
		f := frame()
		f.Store = root.Snapshot()
		f.Annotations = root.Annotations.Clone()

		return f
	})
}

func ExportPNG(ctx *Ctx, params *RenderParams) (any, error) {
	f := snapshotFrame()
	w, h := params.size()

	return exportFile("pedigree.png", "image/png", func(buf *bytes.Buffer) error {
		png, err := raster.PNG(renderer, f, w, h)

		if err != nil {
			return err
		}

		_, err = buf.Write(png)

		return err
	}), nil
}

func ExportPDF(ctx *Ctx, params *RenderParams) (any, error) {
	f := snapshotFrame()
	w, h := params.size()

	return exportFile("pedigree.pdf", "application/pdf", func(buf *bytes.Buffer) error {
		png, err := raster.PNG(renderer, f, w, h)

		if err != nil {
			return err
		}

		return export.CanvasPDF(buf, png, float64(w), float64(h))
	}), nil
}

type ImportParams struct {
	Data string `json:"data"`
}

func importFile(ctx *Ctx, params *ImportParams, decodeStore func(*bytes.Reader, utils.IdGenerator) (*Store, error)) (any, error) {
	trackContext(ctx)

	r, err := decode(params.Data)

	if err != nil {
		return fail(err), nil
	}

	store, err := decodeStore(r, root.NewId)

	if err != nil {
		log.Warningf("import: %s", err)

		if res := fail(err); res.Message != err.Error() {
			return res, nil
		}

		return &Result{Message: i18n.L("import_failed", err.Error())}, nil
	}

	return locked(func() *Result {
		controller.Replace(store)

		return &Result{
			Ok:      true,
			Message: i18n.L("imported", store.Len()),
		}
	}), nil
}

func ImportCSV(ctx *Ctx, params *ImportParams) (any, error) {
	return importFile(ctx, params, func(r *bytes.Reader, newId utils.IdGenerator) (*Store, error) {
		return codec.DecodeCSV(r, newId)
	})
}

func ImportXLSX(ctx *Ctx, params *ImportParams) (any, error) {
	return importFile(ctx, params, func(r *bytes.Reader, newId utils.IdGenerator) (*Store, error) {
		return codec.DecodeXLSX(r, newId)
	})
}

// Analyze and MedicalNote work on a copy so the session stays usable while the model answers.
func Analyze(ctx *Ctx) (any, error) {
	store := locked(root.Snapshot)

	return narrator.Analyze(context.Background(), store), nil
}

func MedicalNote(ctx *Ctx) (any, error) {
	store := locked(root.Snapshot)

	return narrator.MedicalNote(context.Background(), store), nil
}

type NotePDFParams struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func ExportNotePDF(ctx *Ctx, params *NotePDFParams) (any, error) {
	name := "medical_note.pdf"
	title := i18n.L("note_title")

	if params.Kind == "analysis" {
		name = "analysis.pdf"
		title = i18n.L("analysis_title")
	}

	return exportFile(name, "application/pdf", func(buf *bytes.Buffer) error {
		return export.NarrativePDF(buf, title, params.Text)
	}), nil
}
