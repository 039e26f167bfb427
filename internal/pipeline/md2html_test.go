package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewGoldmarkConverter_InvalidTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewGoldmarkConverter("{{.Body")
	if err == nil {
		t.Fatal("NewGoldmarkConverter() expected error for malformed template")
	}
}

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	// Notes:
	// - the default page template wraps the fragment in a full document
	// - hard wraps turn each source line into its own visual line
	// - GFM autolinks bare URLs
	tests := []struct {
		name    string
		title   string
		content string
		wantSub []string
		notSub  []string
	}{
		{
			name:    "document skeleton",
			title:   "Catalogue",
			content: "## Titre",
			wantSub: []string{
				"<!DOCTYPE html>",
				`<html lang="fr">`,
				"<title>Catalogue</title>",
				"<h2>Titre</h2>",
			},
		},
		{
			name:    "hard wraps",
			title:   "t",
			content: "Lundi: 9h-12h\nMardi: 14h-18h",
			wantSub: []string{"Lundi: 9h-12h<br />"},
		},
		{
			name:    "autolinks urls",
			title:   "t",
			content: "Site Web : https://example.org",
			wantSub: []string{`<a href="https://example.org">https://example.org</a>`},
		},
		{
			name:    "raw html is not passed through",
			title:   "t",
			content: "<script>alert(1)</script>",
			notSub:  []string{"<script>alert(1)</script>"},
		},
		{
			name:    "title is escaped",
			title:   "<b>t</b>",
			content: "x",
			wantSub: []string{"<title>&lt;b&gt;t&lt;/b&gt;</title>"},
		},
	}

	conv, err := NewGoldmarkConverter("")
	if err != nil {
		t.Fatalf("NewGoldmarkConverter() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.title, tt.content)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, sub := range tt.wantSub {
				if !strings.Contains(got, sub) {
					t.Errorf("ToHTML() missing %q in:\n%s", sub, got)
				}
			}
			for _, sub := range tt.notSub {
				if strings.Contains(got, sub) {
					t.Errorf("ToHTML() unexpectedly contains %q in:\n%s", sub, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_CustomTemplate(t *testing.T) {
	t.Parallel()

	conv, err := NewGoldmarkConverter(`<main data-title="{{.Title}}">{{.Body}}</main>`)
	if err != nil {
		t.Fatalf("NewGoldmarkConverter() error = %v", err)
	}

	got, err := conv.ToHTML(context.Background(), "Annuaire", "texte")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	want := "<main data-title=\"Annuaire\"><p>texte</p>\n</main>"
	if got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	conv, err := NewGoldmarkConverter("")
	if err != nil {
		t.Fatalf("NewGoldmarkConverter() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = conv.ToHTML(ctx, "t", "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
