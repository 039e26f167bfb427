package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-carto2pdf/internal/config"
)

// cliFlags holds every command-line flag. None is required: without flags
// the command reads elements.json and logo.png from the working directory.
type cliFlags struct {
	input       string
	output      string
	config      string
	logo        string
	noLogo      bool
	engine      string
	assetPath   string
	timeout     string
	date        string
	footerDate  string
	footerText  string
	quiet       bool
	verbose     bool
	version     bool
	printConfig bool
}

// parseFlags parses args (without the program name). The returned FlagSet
// reports which flags were set explicitly.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("carto2pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.input, "input", "i", config.DefaultInput, "JSON catalogue file")
	fs.StringVarP(&f.output, "output", "o", config.DefaultOutput, "output PDF file")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.logo, "logo", config.DefaultLogo, "logo image for the first page (PNG, JPEG, GIF)")
	fs.BoolVar(&f.noLogo, "no-logo", false, "do not draw a logo")
	fs.StringVar(&f.engine, "engine", config.DefaultEngine, "rendering engine: fpdf, chrome")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (chrome engine)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.date, "date", "", "document date YYYY-MM-DD (default: today)")
	fs.StringVar(&f.footerDate, "footer-date", "", "footer date: \"auto\", \"auto:FORMAT\" or literal")
	fs.StringVar(&f.footerText, "footer-text", "", "footer text")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected argument %q (use --input)", fs.Arg(0))
	}
	if f.quiet && f.verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return f, fs, nil
}

// mergeFlags copies explicitly set flags over cfg. Flags left at their
// default never override a config value.
func mergeFlags(fs *flag.FlagSet, f *cliFlags, cfg *config.Config) {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("input", &cfg.Input.Path, f.input)
	set("output", &cfg.Output.Path, f.output)
	set("engine", &cfg.Engine, f.engine)
	set("asset-path", &cfg.Assets.BasePath, f.assetPath)
	set("timeout", &cfg.Timeout, f.timeout)
	set("date", &cfg.Document.Date, f.date)
	set("footer-date", &cfg.Footer.Date, f.footerDate)
	set("footer-text", &cfg.Footer.Text, f.footerText)

	if fs.Changed("logo") {
		cfg.Logo.Path = f.logo
		cfg.Logo.Disabled = f.logo == ""
	}
	if f.noLogo {
		cfg.Logo.Disabled = true
	}
}
