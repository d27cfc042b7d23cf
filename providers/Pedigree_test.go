package providers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/redexp/pedigree/codec"
	"github.com/redexp/pedigree/interact"
	"github.com/redexp/pedigree/utils"
	"github.com/tliron/glsp"
)

func setupTest() {
	Setup(DefaultSettings(), utils.SequenceIds("m"))
}

func call(t *testing.T, method string, params string) any {
	ctx := &glsp.Context{
		Method: method,
		Params: json.RawMessage(params),
	}

	res, validMethod, validParams, err := NewPedigreeHandlers().Handle(ctx)

	if !validMethod || !validParams || err != nil {
		t.Fatalf("%s: %v %v %v", method, validMethod, validParams, err)
	}

	return res
}

func TestHandle_UnknownMethod(t *testing.T) {
	setupTest()

	_, validMethod, _, _ := NewPedigreeHandlers().Handle(&glsp.Context{Method: "pedigree/nope"})

	if validMethod {
		t.Error("validMethod")
	}

	_, validMethod, validParams, _ := NewPedigreeHandlers().Handle(&glsp.Context{
		Method: AddRelativeMethod,
		Params: json.RawMessage(`[`),
	})

	if !validMethod || validParams {
		t.Errorf("bad params: %v %v", validMethod, validParams)
	}
}

func TestAddRelative_Messages(t *testing.T) {
	setupTest()

	tests := []struct {
		params string
		ok     bool
		msg    string
	}{
		{params: `{"originId":"m1","kind":"child"}`, ok: false, msg: "Add a spouse before adding a child"},
		{params: `{"originId":"m1","kind":"spouse"}`, ok: true},
		{params: `{"originId":"m1","kind":"spouse"}`, ok: false, msg: "This member already has a spouse"},
		{params: `{"originId":"m1","kind":"child"}`, ok: true},
		{params: `{"originId":"x","kind":"parent"}`, ok: false, msg: "Unknown member x"},
		{params: `{"originId":"m1","kind":"cousin"}`, ok: false, msg: "Unknown relative type"},
	}

	for i, test := range tests {
		res := call(t, AddRelativeMethod, test.params).(*Result)

		if res.Ok != test.ok || res.Message != test.msg {
			t.Errorf("%d - got: %v %q; expect: %v %q", i, res.Ok, res.Message, test.ok, test.msg)
		}
	}

	if root.Store.Len() != 3 {
		t.Errorf("len: %d", root.Store.Len())
	}
}

func TestUpdateMember_Invalid(t *testing.T) {
	setupTest()

	res := call(t, UpdateMemberMethod, `{"patch":{"id":"m1","sex":"other"}}`).(*Result)

	if res.Ok || !strings.HasPrefix(res.Message, "Invalid member data") {
		t.Errorf("invalid sex: %+v", res)
	}

	res = call(t, UpdateMemberMethod, `{"patch":{"id":"m1","name":"Jane","ageAtDiagnosis":42}}`).(*Result)

	if !res.Ok {
		t.Fatalf("update: %+v", res)
	}

	m := root.Store.Get("m1")

	if m.Name != "Jane" || m.AgeAtDiagnosis != "42" {
		t.Errorf("member: %+v", m)
	}

	res = call(t, DeleteMemberMethod, `{"id":"m1"}`).(*Result)

	if res.Ok || res.Message != "The proband can not be deleted" {
		t.Errorf("delete proband: %+v", res)
	}
}

func TestPointer_Click(t *testing.T) {
	setupTest()

	res := call(t, PointerMethod, `{"type":"click","x":500,"y":500}`).(*PointerResult)

	if res.Effect == nil || res.Effect.Type != interact.EffectPromptAnnotation {
		t.Fatalf("effect: %+v", res.Effect)
	}

	add := call(t, AnnotationAddMethod, `{"x":500,"y":500,"text":"note"}`).(*Result)

	if !add.Ok || len(root.Annotations) != 1 {
		t.Fatalf("add: %+v", add)
	}

	res = call(t, PointerMethod, `{"type":"click","x":502,"y":498}`).(*PointerResult)

	if res.Effect == nil || res.Effect.Type != interact.EffectAnnotationMenu {
		t.Errorf("menu: %+v", res.Effect)
	}

	res = call(t, PointerMethod, `{"type":"dblclick","x":325,"y":325}`).(*PointerResult)

	if res.Effect == nil || res.Effect.MemberId != "m1" {
		t.Errorf("focus: %+v", res.Effect)
	}
}

func TestExportImportCSV(t *testing.T) {
	setupTest()

	call(t, AddRelativeMethod, `{"originId":"m1","kind":"spouse"}`)
	call(t, AddRelativeMethod, `{"originId":"m1","kind":"child"}`)

	res := call(t, ExportCSVMethod, `null`).(*Result)
	file := res.Data.(*File)

	if file.Name != "pedigree_data.csv" {
		t.Errorf("name: %s", file.Name)
	}

	data, err := base64.StdEncoding.DecodeString(file.Data)

	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(data, []byte(strings.Join(codec.Header(), ","))) {
		t.Errorf("header: %s", data)
	}

	setupTest()

	params, _ := json.Marshal(ImportParams{Data: file.Data})
	imported := call(t, ImportCSVMethod, string(params)).(*Result)

	if !imported.Ok || imported.Message != "Imported 3 members" {
		t.Fatalf("import: %+v", imported)
	}

	if root.Store.Len() != 3 || root.Store.Proband() == nil {
		t.Errorf("store: %d", root.Store.Len())
	}

	params, _ = json.Marshal(ImportParams{Data: base64.StdEncoding.EncodeToString([]byte(""))})
	empty := call(t, ImportCSVMethod, string(params)).(*Result)

	if empty.Ok || empty.Message != "The file has no header row" {
		t.Errorf("empty: %+v", empty)
	}

	if root.Store.Len() != 3 {
		t.Errorf("store replaced: %d", root.Store.Len())
	}
}

func TestRender(t *testing.T) {
	setupTest()

	res := call(t, RenderMethod, `{"width":200,"height":200}`).(*RenderResult)

	if len(res.Commands) == 0 || res.Image == "" {
		t.Errorf("empty render")
	}

	png, _ := base64.StdEncoding.DecodeString(res.Image)

	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("not a png")
	}
}

func TestAnalyze_MissingKey(t *testing.T) {
	setupTest()

	res := call(t, AnalyzeMethod, `null`)
	text, _ := json.Marshal(res)

	if !strings.Contains(string(text), "API key") {
		t.Errorf("got: %s", text)
	}
}
