package render

import (
	"fmt"
	"testing"
)

func TestPalette_Seed(t *testing.T) {
	p := NewPalette()

	list := []struct {
		Label  string
		Expect string
	}{
		{"Breast", "#ff69b4"},
		{"Lung", "#4169e1"},
		{"Leukemia", "#ff0000"},
	}

	for i, item := range list {
		got := p.Color(item.Label).Hex()

		if got != item.Expect {
			t.Errorf("%d - got: %s; expect: %s", i, got, item.Expect)
		}
	}
}

func TestPalette_Memo(t *testing.T) {
	p := NewPalette()
	a := p.Color("Pancreas")
	p.Color("Skin")
	b := p.Color("Pancreas")

	if a != b {
		t.Errorf("got: %s; expect: %s", b.Hex(), a.Hex())
	}
}

func TestPalette_Unique(t *testing.T) {
	p := NewPalette()
	seen := make(map[Color]string)

	for label, hex := range seedColors {
		seen[MustHex(hex)] = label
	}

	for i := range 200 {
		label := fmt.Sprintf("Condition %d", i)
		c := p.Color(label)

		if prev, exist := seen[c]; exist {
			t.Fatalf("%s and %s share %s", label, prev, c.Hex())
		}

		seen[c] = label
	}
}

func TestColorJSON(t *testing.T) {
	c := Halo
	data, err := c.MarshalJSON()

	if err != nil {
		t.Fatal(err)
	}

	if string(data) != `"#87ceeb99"` {
		t.Errorf("got: %s", data)
	}

	var back Color
	err = back.UnmarshalJSON(data)

	if err != nil || back != c {
		t.Errorf("got: %v; expect: %v; %v", back, c, err)
	}
}
