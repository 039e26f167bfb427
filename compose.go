package carto2pdf

import "fmt"

// BlockKind identifies the content of a document block.
type BlockKind int

// Block kinds, in the order they first appear in a composed document.
const (
	BlockTitle BlockKind = iota
	BlockParagraph
	BlockEntity
)

func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockParagraph:
		return "paragraph"
	case BlockEntity:
		return "entity"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// Block is one rendered content unit.
type Block struct {
	Kind   BlockKind
	Text   string       // title or paragraph text, sanitized
	Entity *EntityBlock // set when Kind is BlockEntity
}

// Document is the ordered sequence of blocks handed to a renderer.
type Document struct {
	Title  string // used for PDF metadata
	Blocks []Block
}

// EntityBlocks returns the entity blocks in document order.
func (d *Document) EntityBlocks() []*EntityBlock {
	var out []*EntityBlock
	for _, b := range d.Blocks {
		if b.Kind == BlockEntity {
			out = append(out, b.Entity)
		}
	}
	return out
}

// LineStyle tells a renderer how to typeset a line of an entity block.
type LineStyle int

// Line styles of an entity block.
const (
	StyleName LineStyle = iota
	StyleHoursHeading
	StyleHours
	StyleSpecialHeading
	StyleSpecialHours
	StyleField
)

// Line is a sanitized line of an entity block.
type Line struct {
	Style LineStyle
	Text  string
}

// EntityBlock is the composed section for one entity. All text is sanitized.
type EntityBlock struct {
	Name           string
	HoursHeading   string   // empty when the entity has no opening hours
	Hours          []string // "<day>: <hours>", source order
	SpecialHeading string   // empty when the entity has no special hours
	SpecialHours   string
	Fields         []string // address, telephone, email, website, details
}

// Lines flattens the block in its fixed emission order: name, opening hours,
// special hours, then address, telephone, email, website and details.
func (b *EntityBlock) Lines() []Line {
	lines := make([]Line, 0, 3+len(b.Hours)+len(b.Fields))
	lines = append(lines, Line{Style: StyleName, Text: b.Name})

	if len(b.Hours) > 0 {
		lines = append(lines, Line{Style: StyleHoursHeading, Text: b.HoursHeading})
		for _, h := range b.Hours {
			lines = append(lines, Line{Style: StyleHours, Text: h})
		}
	}

	if b.SpecialHours != "" {
		lines = append(lines,
			Line{Style: StyleSpecialHeading, Text: b.SpecialHeading},
			Line{Style: StyleSpecialHours, Text: b.SpecialHours},
		)
	}

	for _, f := range b.Fields {
		lines = append(lines, Line{Style: StyleField, Text: f})
	}
	return lines
}

// Intro holds the literal texts placed before the catalogue.
type Intro struct {
	Title          string
	Body           string
	CatalogueTitle string
}

// DefaultIntro returns the introduction of the Saint-Mars-du-Désert directory.
func DefaultIntro() Intro {
	return Intro{
		Title: "Tiers lieu marsien : Collectif eco-citoyen",
		Body: "Ce document regroupe les informations des ressourceries, ateliers de création, " +
			"producteurs locaux et d'autres situés autour de Saint mars du Désert. Les données " +
			"proviennent d'une cartographie réalisée par le Collectif Eco-citoyen marsien qui " +
			"contient l'enrièrté des informations trier et placer sur une carte (n'hésitez pas à " +
			"aller consulter sur le site du Tiers lieu : " +
			"https://tierslieumarsien.fr/le-collectif-eco-citoyen/). Cependant afin d'améliorer " +
			"la lisibilité et la consultation de ces informations, nous avons aussi centralisé " +
			"toutes les données dans ce document unique. Chaque lieu est décrit de manière présice " +
			"avec le plus d'informations possibles. Cette initiative s'inscrit dans notre " +
			"engagement pour soutenir des actions locales qui constituent une économie circulaire. " +
			"Nous espérons que ce guide vous aidera à trouver facilement les ressources disponibles " +
			"près de chez vous. N'hésitez pas à consulter la cartographie en ligne pour plus de détails.",
		CatalogueTitle: "Catalogue des ressourceries et producteurs locaux et bien plus....",
	}
}

// withDefaults fills empty fields from DefaultIntro.
func (i Intro) withDefaults() Intro {
	d := DefaultIntro()
	if i.Title == "" {
		i.Title = d.Title
	}
	if i.Body == "" {
		i.Body = d.Body
	}
	if i.CatalogueTitle == "" {
		i.CatalogueTitle = d.CatalogueTitle
	}
	return i
}

// Labels are the headings, field labels and placeholders of entity blocks.
type Labels struct {
	OpeningHours string
	SpecialHours string
	Address      string
	Telephone    string
	Email        string
	Website      string
	Details      string
	UnknownName  string // used when an entity has no name
	NotProvided  string // used for every other missing field

	// AddressNotProvided is used for a missing address. Empty falls back to
	// NotProvided when that is set, else to the default.
	AddressNotProvided string
}

// DefaultLabels returns the French labels.
func DefaultLabels() Labels {
	return Labels{
		OpeningHours: "Horaires d'ouverture",
		SpecialHours: "Horaires particuliers",
		Address:      "Adresse",
		Telephone:    "Téléphone",
		Email:        "Email",
		Website:      "Site Web",
		Details:      "Détails",
		UnknownName:  "Nom inconnu",
		NotProvided:  "Non renseigné",

		AddressNotProvided: "Non renseignée",
	}
}

// withDefaults fills empty fields from DefaultLabels.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&l.OpeningHours, d.OpeningHours)
	fill(&l.SpecialHours, d.SpecialHours)
	fill(&l.Address, d.Address)
	fill(&l.Telephone, d.Telephone)
	fill(&l.Email, d.Email)
	fill(&l.Website, d.Website)
	fill(&l.Details, d.Details)
	fill(&l.UnknownName, d.UnknownName)
	fill(&l.AddressNotProvided, l.NotProvided)
	fill(&l.AddressNotProvided, d.AddressNotProvided)
	fill(&l.NotProvided, d.NotProvided)
	return l
}

// Compose builds the document: intro title, intro body, catalogue title, then
// one entity block per entity in catalogue order. Empty Intro and Labels
// fields fall back to their defaults. A nil catalogue composes no entities.
func Compose(cat *Catalogue, intro Intro, labels Labels) *Document {
	intro = intro.withDefaults()
	labels = labels.withDefaults()

	var entities []Entity
	if cat != nil {
		entities = cat.Entities
	}

	doc := &Document{
		Title:  Sanitize(intro.Title),
		Blocks: make([]Block, 0, len(entities)+3),
	}
	doc.Blocks = append(doc.Blocks,
		Block{Kind: BlockTitle, Text: Sanitize(intro.Title)},
		Block{Kind: BlockParagraph, Text: Sanitize(intro.Body)},
		Block{Kind: BlockTitle, Text: Sanitize(intro.CatalogueTitle)},
	)

	for i := range entities {
		doc.Blocks = append(doc.Blocks, Block{
			Kind:   BlockEntity,
			Entity: composeEntity(&entities[i], labels),
		})
	}
	return doc
}

func composeEntity(e *Entity, labels Labels) *EntityBlock {
	b := &EntityBlock{
		Name: Sanitize(e.Name.Or(labels.UnknownName)),
	}

	if len(e.OpenHours) > 0 {
		b.HoursHeading = Sanitize(heading(labels.OpeningHours))
		b.Hours = make([]string, 0, len(e.OpenHours))
		for _, oh := range e.OpenHours {
			b.Hours = append(b.Hours, Sanitize(DayName(oh.Day)+": "+oh.Hours.Or(labels.NotProvided)))
		}
	}

	// An empty special hours string counts as absent.
	if special := Sanitize(e.SpecialHours.Value); e.SpecialHours.Valid && special != "" {
		b.SpecialHeading = Sanitize(heading(labels.SpecialHours))
		b.SpecialHours = special
	}

	b.Fields = []string{
		field(labels.Address, e.Address, labels.AddressNotProvided),
		field(labels.Telephone, e.Telephone, labels.NotProvided),
		field(labels.Email, e.Email, labels.NotProvided),
		field(labels.Website, e.URL, labels.NotProvided),
		field(labels.Details, e.Details, labels.NotProvided),
	}
	return b
}

func heading(label string) string {
	return label + " :"
}

func field(label string, value Text, placeholder string) string {
	return Sanitize(label + " : " + value.Or(placeholder))
}
