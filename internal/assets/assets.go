package assets

// Built-in asset names.
const (
	// DefaultStyleName is the name of the built-in CSS style.
	DefaultStyleName = "catalogue"

	// DocumentTemplateName is the page skeleton wrapping the converted Markdown.
	DocumentTemplateName = "document"

	// LogoTemplateName renders the logo block on the first page.
	LogoTemplateName = "logo"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the default embedded loader.
// The name should not include the .html extension or path components.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
