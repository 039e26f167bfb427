package carto2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{in: "", want: EngineFPDF},
		{in: "fpdf", want: EngineFPDF},
		{in: " FPDF ", want: EngineFPDF},
		{in: "chrome", want: EngineChrome},
		{in: "Chrome", want: EngineChrome},
		{in: "latex", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseEngine(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidEngine) {
				t.Errorf("ParseEngine(%q) error = %v, want ErrInvalidEngine", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseEngine(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestFooter_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		footer *Footer
		page   int
		want   string
	}{
		{name: "nil", footer: nil, page: 1, want: ""},
		{name: "empty", footer: &Footer{}, page: 1, want: ""},
		{name: "default", footer: DefaultFooter(), page: 3, want: "Page 3"},
		{name: "page and date", footer: &Footer{ShowPageNumber: true, Date: "04/03/2026"}, page: 1, want: "Page 1 - 04/03/2026"},
		{name: "all parts", footer: &Footer{ShowPageNumber: true, Date: "mars 2026", Text: "Collectif"}, page: 2, want: "Page 2 - mars 2026 - Collectif"},
		{name: "text only", footer: &Footer{Text: "Collectif"}, page: 2, want: "Collectif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.footer.text(tt.page); got != tt.want {
				t.Errorf("text(%d) = %q, want %q", tt.page, got, tt.want)
			}
		})
	}
}

func TestLoadLogo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, data []byte) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	logo, err := LoadLogo(write("logo.PNG", testPNG(t)))
	if err != nil {
		t.Fatalf("LoadLogo() error = %v", err)
	}
	if logo.Type != "PNG" || logo.Name != "logo.PNG" || len(logo.Data) == 0 {
		t.Errorf("LoadLogo() = %+v", logo)
	}

	jpg, err := LoadLogo(write("photo.jpeg", []byte{0xFF, 0xD8}))
	if err != nil {
		t.Fatalf("LoadLogo(jpeg) error = %v", err)
	}
	if jpg.Type != "JPG" || jpg.mimeType() != "image/jpeg" {
		t.Errorf("jpeg logo = %+v, mime %q", jpg, jpg.mimeType())
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing", path: filepath.Join(dir, "absent.png"), wantErr: ErrLogoNotFound},
		{name: "unsupported", path: write("logo.svg", []byte("<svg/>")), wantErr: ErrUnsupportedImage},
		{name: "no extension", path: write("logo", []byte("x")), wantErr: ErrUnsupportedImage},
		{name: "empty", path: write("empty.gif", nil), wantErr: ErrLogoRead},
	}
	for _, tt := range tests {
		if _, err := LoadLogo(tt.path); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: LoadLogo() error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithTimeout(%v) did not panic", d)
				}
			}()
			WithTimeout(d)
		}()
	}
}
