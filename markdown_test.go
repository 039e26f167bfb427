package carto2pdf

import "testing"

func TestDocumentMarkdown(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Title: "Intro",
		Blocks: []Block{
			{Kind: BlockTitle, Text: "Intro"},
			{Kind: BlockParagraph, Text: "Corps du texte"},
			{Kind: BlockTitle, Text: "Catalogue"},
			{Kind: BlockEntity, Entity: &EntityBlock{
				Name:           "Atelier A",
				HoursHeading:   "Horaires d'ouverture :",
				Hours:          []string{"Lundi: 9h-12h", "Mardi: 14h-18h"},
				SpecialHeading: "Horaires particuliers :",
				SpecialHours:   "Sur rendez-vous",
				Fields:         []string{"Adresse : 1 rue X", "Email : a_b@example.org"},
			}},
			{Kind: BlockEntity, Entity: &EntityBlock{
				Name:   "Nom inconnu",
				Fields: []string{"Adresse : Non renseigné"},
			}},
		},
	}

	want := "## Intro\n" +
		"\n" +
		"Corps du texte\n" +
		"\n" +
		"## Catalogue\n" +
		"\n" +
		"### Atelier A\n" +
		"\n" +
		"**Horaires d'ouverture :**\n" +
		"Lundi: 9h-12h\n" +
		"Mardi: 14h-18h\n" +
		"\n" +
		"**Horaires particuliers :**\n" +
		"Sur rendez-vous\n" +
		"\n" +
		"Adresse : 1 rue X\n" +
		`Email : a\_b@example.org` + "\n" +
		"\n" +
		"### Nom inconnu\n" +
		"\n" +
		"Adresse : Non renseigné\n"

	if got := documentMarkdown(doc); got != want {
		t.Errorf("documentMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestDocumentMarkdown_EscapesCatalogueText(t *testing.T) {
	t.Parallel()

	doc := &Document{Blocks: []Block{
		{Kind: BlockEntity, Entity: &EntityBlock{
			Name:   "# Pas un titre",
			Fields: []string{"- pas une liste", "1. pas une liste"},
		}},
	}}

	want := "### \\# Pas un titre\n\n\\- pas une liste\n1\\. pas une liste\n"
	if got := documentMarkdown(doc); got != want {
		t.Errorf("documentMarkdown() = %q, want %q", got, want)
	}
}
