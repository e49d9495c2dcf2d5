package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPageInitializesCollections(t *testing.T) {
	page := NewPage(612, 792)

	if page.Stitches == nil || page.Colors == nil || page.Symbols == nil || page.Legend == nil {
		t.Error("Expected collections to be initialized")
	}

	data, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Empty collections serialize as [], an undetected grid as null
	for _, want := range []string{`"stitches":[]`, `"colors":[]`, `"symbols":[]`, `"legend":[]`, `"grid":null`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected JSON to contain %s, got %s", want, data)
		}
	}
}

func TestPatternAddPage(t *testing.T) {
	p := NewPattern()
	p.AddPage(NewPage(612, 792))
	p.AddPage(NewPage(612, 792))

	if p.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", p.PageCount())
	}
	if p.Pages[0].Number != 1 || p.Pages[1].Number != 2 {
		t.Errorf("Expected pages numbered 1 and 2, got %d and %d", p.Pages[0].Number, p.Pages[1].Number)
	}

	// Pre-numbered pages keep their number
	page := NewPage(612, 792)
	page.Number = 7
	p.AddPage(page)
	if p.Pages[2].Number != 7 {
		t.Errorf("Expected page number 7, got %d", p.Pages[2].Number)
	}
}

func TestPatternGetPage(t *testing.T) {
	p := NewPattern()
	p.AddPage(NewPage(612, 792))
	p.AddPage(NewPage(612, 792))

	if got := p.GetPage(2); got == nil || got.Number != 2 {
		t.Errorf("Expected page 2, got %+v", got)
	}
	if got := p.GetPage(99); got != nil {
		t.Errorf("Expected nil for missing page, got %+v", got)
	}
}

func TestPatternStitchCount(t *testing.T) {
	p := NewPattern()
	page1 := NewPage(612, 792)
	page1.Stitches = append(page1.Stitches, Stitch{Row: 0, Col: 0, Type: StitchCross})
	page2 := NewPage(612, 792)
	page2.Stitches = append(page2.Stitches,
		Stitch{Row: 1, Col: 1, Type: StitchFull},
		Stitch{Row: 1, Col: 2, Type: StitchFull},
	)
	p.AddPage(page1)
	p.AddPage(page2)

	if n := p.StitchCount(); n != 3 {
		t.Errorf("Expected 3 stitches, got %d", n)
	}
}

func TestStitchJSON(t *testing.T) {
	// Color is omitted when the fill could not be resolved
	data, err := json.Marshal(Stitch{Row: 2, Col: 3, Type: StitchCross})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "color") {
		t.Errorf("Expected color to be omitted, got %s", data)
	}

	data, err = json.Marshal(Stitch{Row: 2, Col: 3, Type: StitchFull, Color: "#ff0000"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"color":"#ff0000"`) {
		t.Errorf("Expected color field, got %s", data)
	}
}

func TestColorEntryJSON(t *testing.T) {
	// Page-local entries carry no id
	data, err := json.Marshal(ColorEntry{Hex: "#ff0000", RGB: RGB{R: 255}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"id"`) {
		t.Errorf("Expected id to be omitted, got %s", data)
	}

	// Palette entries do
	data, err = json.Marshal(ColorEntry{ID: 1, Hex: "#ff0000", RGB: RGB{R: 255}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"id":1`) {
		t.Errorf("Expected id field, got %s", data)
	}
}

func TestGridDegenerate(t *testing.T) {
	g := Grid{Detected: true, CellWidth: 10, CellHeight: 10}
	if g.Degenerate() {
		t.Error("Expected regular grid not to be degenerate")
	}

	g.CellHeight = 0
	if !g.Degenerate() {
		t.Error("Expected zero cell height to be degenerate")
	}
}

func TestMetadataJSON(t *testing.T) {
	// Empty metadata collapses to an empty object
	data, err := json.Marshal(Metadata{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected {}, got %s", data)
	}

	data, err = json.Marshal(Metadata{Title: "Rose Sampler", Author: "J. Doe"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"title":"Rose Sampler"`) {
		t.Errorf("Expected title field, got %s", data)
	}
}
