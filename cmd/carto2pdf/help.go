package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: carto2pdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the JSON export of the map into a PDF directory.")
	fmt.Fprintln(w, "Without flags, reads elements.json and logo.png from the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        JSON catalogue (default: elements.json)")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF (default: \"Données de la Carto - Complet.pdf\")")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --logo <path>         First-page logo (default: logo.png, \"\" = none)")
	fmt.Fprintln(w, "      --no-logo             Do not draw a logo")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <name>       fpdf (default) or chrome")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ (chrome engine)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Conversion timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --date <YYYY-MM-DD>   Document date (default: today)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-date <s>     Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Mis à jour le] D MMMM YYYY")
	fmt.Fprintln(w, "      --footer-text <s>     Footer text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "      --version             Show version information")
}
