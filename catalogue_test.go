package carto2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCatalogue(t *testing.T) {
	t.Parallel()

	data := `{"data":[
		{
			"name": "Atelier A",
			"address": {"customFormatedAddress": "1 rue X, 44850 Saint-Mars-du-Désert"},
			"telephone": "02 40 00 00 00",
			"email": null,
			"url": "https://example.org",
			"details": "Réparation de vélos",
			"openHours": {"We": "14h-18h", "Mo": "9h-12h"},
			"detailshoraires": "Fermé en août"
		},
		{"telephone": 240000000, "details": true, "openHours": []},
		{"name": "Atelier A"}
	]}`

	cat, err := ParseCatalogue([]byte(data))
	if err != nil {
		t.Fatalf("ParseCatalogue() error = %v", err)
	}
	if len(cat.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(cat.Entities))
	}

	a := cat.Entities[0]
	if a.Name != (Text{Value: "Atelier A", Valid: true}) {
		t.Errorf("Name = %+v", a.Name)
	}
	if a.Address.Value != "1 rue X, 44850 Saint-Mars-du-Désert" {
		t.Errorf("Address = %+v", a.Address)
	}
	if a.Email.Valid {
		t.Errorf("null email should be absent, got %+v", a.Email)
	}
	if a.SpecialHours.Value != "Fermé en août" {
		t.Errorf("SpecialHours = %+v", a.SpecialHours)
	}

	// Opening hours keep source order, not calendar order.
	wantHours := []OpeningHours{
		{Day: "We", Hours: Text{Value: "14h-18h", Valid: true}},
		{Day: "Mo", Hours: Text{Value: "9h-12h", Valid: true}},
	}
	if len(a.OpenHours) != len(wantHours) {
		t.Fatalf("OpenHours = %+v", a.OpenHours)
	}
	for i, h := range wantHours {
		if a.OpenHours[i] != h {
			t.Errorf("OpenHours[%d] = %+v, want %+v", i, a.OpenHours[i], h)
		}
	}

	b := cat.Entities[1]
	if b.Name.Valid {
		t.Errorf("missing name should be absent, got %+v", b.Name)
	}
	if b.Telephone.Value != "240000000" {
		t.Errorf("numeric telephone = %q, want literal form", b.Telephone.Value)
	}
	if b.Details.Value != "true" {
		t.Errorf("boolean details = %q", b.Details.Value)
	}
	if b.OpenHours != nil {
		t.Errorf("non-object openHours should be ignored, got %+v", b.OpenHours)
	}

	// Duplicates are preserved.
	if cat.Entities[2].Name.Value != "Atelier A" {
		t.Errorf("duplicate entity lost: %+v", cat.Entities[2])
	}
}

func TestParseCatalogue_NullHours(t *testing.T) {
	t.Parallel()

	cat, err := ParseCatalogue([]byte(`{"data":[{"openHours":{"Mo":null,"Tu":""}}]}`))
	if err != nil {
		t.Fatalf("ParseCatalogue() error = %v", err)
	}
	want := []OpeningHours{
		{Day: "Mo"},
		{Day: "Tu", Hours: Text{Valid: true}},
	}
	got := cat.Entities[0].OpenHours
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("OpenHours = %+v, want %+v", got, want)
	}
}

func TestParseCatalogue_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`{}`, `{"data":[]}`, `{"data":null}`, `{"other":1}`} {
		cat, err := ParseCatalogue([]byte(in))
		if err != nil {
			t.Errorf("ParseCatalogue(%s) error = %v", in, err)
			continue
		}
		if len(cat.Entities) != 0 {
			t.Errorf("ParseCatalogue(%s) = %d entities, want 0", in, len(cat.Entities))
		}
	}
}

func TestParseCatalogue_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{name: "invalid json", in: `{"data":[`, wantMsg: "invalid JSON"},
		{name: "empty input", in: ``, wantMsg: "invalid JSON"},
		{name: "top-level array", in: `[{"name":"x"}]`, wantMsg: "must be an object"},
		{name: "data not array", in: `{"data":{"name":"x"}}`, wantMsg: "must be an array"},
		{name: "entity not object", in: `{"data":[{"name":"x"}, "y"]}`, wantMsg: "data[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCatalogue([]byte(tt.in))
			if !errors.Is(err, ErrCatalogueParse) {
				t.Fatalf("error = %v, want ErrCatalogueParse", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadCatalogue(t *testing.T) {
	t.Parallel()

	cat, err := LoadCatalogue(strings.NewReader(`{"data":[{"name":"Ressourcerie"}]}`))
	if err != nil {
		t.Fatalf("LoadCatalogue() error = %v", err)
	}
	if len(cat.Entities) != 1 || cat.Entities[0].Name.Value != "Ressourcerie" {
		t.Errorf("LoadCatalogue() = %+v", cat)
	}
}

func TestLoadCatalogueFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "elements.json")
	if err := os.WriteFile(path, []byte(`{"data":[{"name":"A"},{"name":"B"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadCatalogueFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogueFile() error = %v", err)
	}
	if len(cat.Entities) != 2 {
		t.Errorf("got %d entities, want 2", len(cat.Entities))
	}

	_, err = LoadCatalogueFile(filepath.Join(dir, "absent.json"))
	if !errors.Is(err, ErrCatalogueRead) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrCatalogueRead wrapping os.ErrNotExist", err)
	}
}
