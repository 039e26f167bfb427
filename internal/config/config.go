// Package config loads the YAML configuration of the carto2pdf command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-carto2pdf/internal/fileutil"
	"github.com/alnah/go-carto2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength  = 4096
	MaxTitleLength = 200
	MaxIntroLength = 5000 // intro paragraph
	MaxLabelLength = 100
	MaxDateLength  = 50 // "auto:[Mis à jour le] D MMMM YYYY"
	MaxTextLength  = 500
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultInput  = "elements.json"
	DefaultOutput = "Données de la Carto - Complet.pdf"
	DefaultLogo   = "logo.png"
	DefaultEngine = "fpdf"
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "go-carto2pdf"

// Config holds all configuration for catalogue generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Logo     LogoConfig     `yaml:"logo"`
	Document DocumentConfig `yaml:"document"`
	Labels   LabelsConfig   `yaml:"labels"`
	Footer   FooterConfig   `yaml:"footer"`
	Engine   string         `yaml:"engine"`  // "fpdf" or "chrome"
	Assets   AssetsConfig   `yaml:"assets"`  // chrome engine only
	Timeout  string         `yaml:"timeout"` // Go duration, e.g. "45s" (empty = library default)
}

// InputConfig locates the JSON catalogue.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig locates the generated PDF.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LogoConfig locates the first-page logo.
type LogoConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// DocumentConfig overrides the introduction texts and the document date.
// Empty fields keep the built-in texts.
type DocumentConfig struct {
	Title          string `yaml:"title"`
	Intro          string `yaml:"intro"`
	CatalogueTitle string `yaml:"catalogueTitle"`
	Date           string `yaml:"date"` // YYYY-MM-DD, PDF creation date (empty = now)
}

// LabelsConfig overrides entity headings, field labels and placeholders.
type LabelsConfig struct {
	OpeningHours string `yaml:"openingHours"`
	SpecialHours string `yaml:"specialHours"`
	Address      string `yaml:"address"`
	Telephone    string `yaml:"telephone"`
	Email        string `yaml:"email"`
	Website      string `yaml:"website"`
	Details      string `yaml:"details"`
	UnknownName  string `yaml:"unknownName"`
	NotProvided  string `yaml:"notProvided"`

	AddressNotProvided string `yaml:"addressNotProvided"`
}

// FooterConfig defines the page footer.
type FooterConfig struct {
	HidePageNumber bool   `yaml:"hidePageNumber"`
	Date           string `yaml:"date"` // literal, "auto" or "auto:FORMAT"
	Text           string `yaml:"text"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: DefaultInput},
		Output: OutputConfig{Path: DefaultOutput},
		Logo:   LogoConfig{Path: DefaultLogo},
		Engine: DefaultEngine,
	}
}

// TimeoutDuration parses Timeout. Zero means unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig; also available for configs built in code.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"logo.path", c.Logo.Path, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.intro", c.Document.Intro, MaxIntroLength},
		{"document.catalogueTitle", c.Document.CatalogueTitle, MaxTitleLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"labels.openingHours", c.Labels.OpeningHours, MaxLabelLength},
		{"labels.specialHours", c.Labels.SpecialHours, MaxLabelLength},
		{"labels.address", c.Labels.Address, MaxLabelLength},
		{"labels.telephone", c.Labels.Telephone, MaxLabelLength},
		{"labels.email", c.Labels.Email, MaxLabelLength},
		{"labels.website", c.Labels.Website, MaxLabelLength},
		{"labels.details", c.Labels.Details, MaxLabelLength},
		{"labels.unknownName", c.Labels.UnknownName, MaxLabelLength},
		{"labels.notProvided", c.Labels.NotProvided, MaxLabelLength},
		{"labels.addressNotProvided", c.Labels.AddressNotProvided, MaxLabelLength},
		{"footer.date", c.Footer.Date, MaxDateLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Engine) {
	case "", "fpdf", "chrome":
	default:
		return fmt.Errorf("%w: engine %q (must be fpdf or chrome)", ErrInvalidValue, c.Engine)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file; otherwise it is
// searched as <name>.yaml or <name>.yml in the current directory, then in
// the user config directory. Keys absent from the file keep DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
