// Package carto2pdf turns the JSON export of a community map into a PDF
// directory of its places: ressourceries, workshops, local producers.
//
// # Quick Start
//
// Load the catalogue and the logo, convert, and close the converter:
//
//	cat, err := carto2pdf.LoadCatalogueFile("elements.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logo, err := carto2pdf.LoadLogo("logo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := carto2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, carto2pdf.Input{
//	    Catalogue: cat,
//	    Logo:      logo,
//	    Footer:    carto2pdf.DefaultFooter(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("Données de la Carto - Complet.pdf", result.PDF, 0644)
//
// # Conversion Stages
//
//  1. Loading: the "data" array is read in order with gjson. Missing or null
//     fields stay distinguishable from empty ones.
//  2. Composition: Compose builds a Document of title, paragraph and entity
//     blocks. All text goes through Sanitize, which maps typographic marks to
//     ASCII, drops <b> markers, turns <br> into line breaks and restricts the
//     result to ISO-8859-1 so the PDF core fonts can draw it.
//  3. Rendering: the fpdf engine (default) lays the document out natively on
//     A4 pages. The chrome engine writes it as Markdown, converts it to HTML
//     with Goldmark and prints it with headless Chrome (go-rod).
//
// # Configuration
//
//	conv, err := carto2pdf.NewConverter(
//	    carto2pdf.WithEngine(carto2pdf.EngineChrome),
//	    carto2pdf.WithTimeout(2 * time.Minute),
//	    carto2pdf.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion texts are passed via Input. Empty fields keep the French
// defaults of DefaultIntro and DefaultLabels:
//
//	result, err := conv.Convert(ctx, carto2pdf.Input{
//	    Catalogue: cat,
//	    Intro:     carto2pdf.Intro{Title: "Annuaire 2026"},
//	    Labels:    carto2pdf.Labels{Website: "Site internet"},
//	    Footer:    &carto2pdf.Footer{ShowPageNumber: true, Text: "Collectif"},
//	    Date:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
//	})
//
// # Error Handling
//
// Errors wrap package sentinels and can be checked with errors.Is:
//
//	if errors.Is(err, carto2pdf.ErrCatalogueParse) {
//	    // malformed JSON
//	}
package carto2pdf
