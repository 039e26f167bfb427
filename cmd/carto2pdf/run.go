package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	carto2pdf "github.com/alnah/go-carto2pdf"
	"github.com/alnah/go-carto2pdf/internal/config"
	"github.com/alnah/go-carto2pdf/internal/dateutil"
	"github.com/alnah/go-carto2pdf/internal/fileutil"
	"github.com/alnah/go-carto2pdf/internal/hints"
	"github.com/alnah/go-carto2pdf/internal/yamlutil"
)

// filePermissions is rw-r--r-- for the generated PDF.
const filePermissions = 0o644

// successMessage is printed once the PDF is written.
const successMessage = "✅ PDF généré avec succès : '%s'\n"

// run loads the configuration and the catalogue, converts it and writes the PDF.
func run(ctx context.Context, f *cliFlags, fs *flag.FlagSet, env *Environment, log zerolog.Logger) error {
	start := env.Now()

	cfg, err := loadConfig(f, fs)
	if err != nil {
		return err
	}
	if f.printConfig {
		out, err := yamlutil.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("printing config: %w", err)
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	params, err := resolveParams(cfg, env.Now())
	if err != nil {
		return err
	}

	stageStart := env.Now()
	cat, err := carto2pdf.LoadCatalogueFile(cfg.Input.Path)
	if err != nil {
		return err
	}
	log.Debug().
		Str("input", cfg.Input.Path).
		Int("entities", len(cat.Entities)).
		Dur("elapsed", env.Now().Sub(stageStart)).
		Msg("catalogue loaded")

	var logo *carto2pdf.Logo
	if !cfg.Logo.Disabled && cfg.Logo.Path != "" {
		if logo, err = carto2pdf.LoadLogo(cfg.Logo.Path); err != nil {
			return err
		}
		log.Debug().Str("logo", cfg.Logo.Path).Int("bytes", len(logo.Data)).Msg("logo loaded")
	}

	opts := []carto2pdf.Option{
		carto2pdf.WithEngine(params.engine),
		carto2pdf.WithAssetPath(cfg.Assets.BasePath),
	}
	if params.timeout > 0 {
		opts = append(opts, carto2pdf.WithTimeout(params.timeout))
	}

	conv, err := env.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conv.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("closing converter")
		}
	}()

	stageStart = env.Now()
	result, err := conv.Convert(ctx, carto2pdf.Input{
		Catalogue: cat,
		Intro: carto2pdf.Intro{
			Title:          cfg.Document.Title,
			Body:           cfg.Document.Intro,
			CatalogueTitle: cfg.Document.CatalogueTitle,
		},
		Labels: labelsFromConfig(cfg.Labels),
		Logo:   logo,
		Footer: &carto2pdf.Footer{
			ShowPageNumber: !cfg.Footer.HidePageNumber,
			Date:           params.footerDate,
			Text:           cfg.Footer.Text,
		},
		Date: params.date,
	})
	if err != nil {
		return err
	}
	log.Debug().
		Str("engine", string(params.engine)).
		Int("bytes", len(result.PDF)).
		Dur("elapsed", env.Now().Sub(stageStart)).
		Msg("PDF rendered")

	if err := fileutil.WriteFileAtomic(cfg.Output.Path, result.PDF, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", carto2pdf.ErrWritePDF, err)
	}

	log.Debug().Dur("total", env.Now().Sub(start)).Msg("done")
	if !f.quiet {
		fmt.Fprintf(env.Stdout, successMessage, cfg.Output.Path)
	}
	return nil
}

// loadConfig returns the config file (or defaults) with explicit flags applied.
func loadConfig(f *cliFlags, fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = config.LoadConfig(f.config); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(fs, f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}
	return cfg, nil
}

// params are the config values that need parsing before conversion.
type params struct {
	engine     carto2pdf.Engine
	timeout    time.Duration
	date       time.Time
	footerDate string
}

func resolveParams(cfg *config.Config, now time.Time) (*params, error) {
	engine, err := carto2pdf.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}

	date, err := dateutil.ParseDate(cfg.Document.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}
	if date.IsZero() {
		date = now
	}

	footerDate, err := dateutil.ResolveDate(cfg.Footer.Date, date)
	if err != nil {
		return nil, fmt.Errorf("%w: footer date: %w", ErrInvalidFlag, err)
	}

	return &params{engine: engine, timeout: timeout, date: date, footerDate: footerDate}, nil
}

func labelsFromConfig(l config.LabelsConfig) carto2pdf.Labels {
	return carto2pdf.Labels{
		OpeningHours: l.OpeningHours,
		SpecialHours: l.SpecialHours,
		Address:      l.Address,
		Telephone:    l.Telephone,
		Email:        l.Email,
		Website:      l.Website,
		Details:      l.Details,
		UnknownName:  l.UnknownName,
		NotProvided:  l.NotProvided,

		AddressNotProvided: l.AddressNotProvided,
	}
}

// hintFor returns an actionable hint for common failures, or "".
func hintFor(err error, f *cliFlags) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(f.config))
	case errors.Is(err, carto2pdf.ErrCatalogueRead) && errors.Is(err, os.ErrNotExist):
		return hints.ForCatalogueNotFound()
	case errors.Is(err, carto2pdf.ErrCatalogueParse):
		return hints.ForCatalogueParse()
	case errors.Is(err, carto2pdf.ErrLogoNotFound):
		return hints.ForLogoNotFound()
	case errors.Is(err, carto2pdf.ErrUnsupportedImage):
		return hints.ForUnsupportedImage()
	case errors.Is(err, carto2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, carto2pdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
