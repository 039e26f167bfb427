//go:build integration

package carto2pdf

// Notes:
// - Requires Chrome/Chromium (rod downloads one when ROD_BROWSER_BIN is unset).
// - The rendered PDF is read back with ledongthuc/pdf to check the text layer.

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

const integrationTimeout = 60 * time.Second

func TestChromeEngine_Integration(t *testing.T) {
	c, err := NewConverter(WithEngine(EngineChrome), WithTimeout(integrationTimeout))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	result, err := c.Convert(context.Background(), Input{
		Catalogue: mustParse(t, `{"data":[
			{"name":"Atelier A","openHours":{"Mo":"9h-12h"},"url":"https://example.org"},
			{"telephone":"0240000000"}
		]}`),
		Logo:   &Logo{Name: "logo.png", Type: "PNG", Data: testPNG(t)},
		Footer: &Footer{ShowPageNumber: true, Text: "Collectif"},
		Date:   testDate,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}

	text, pages := readPDF(t, result.PDF)
	if pages < 1 {
		t.Fatalf("pages = %d", pages)
	}
	for _, want := range []string{"Atelier A", "Nom inconnu", "0240000000"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text does not contain %q", want)
		}
	}
}

func TestChromeEngine_ReusesBrowser(t *testing.T) {
	c, err := NewConverter(WithEngine(EngineChrome), WithTimeout(integrationTimeout))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	in := Input{Catalogue: mustParse(t, `{"data":[{"name":"A"}]}`), Date: testDate}
	for i := range 2 {
		if _, err := c.Convert(context.Background(), in); err != nil {
			t.Fatalf("Convert() #%d error = %v", i+1, err)
		}
	}
}
