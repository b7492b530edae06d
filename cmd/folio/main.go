package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/gallery"
	"folio/internal/media"
	"folio/internal/ui"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Gallery    GalleryCmd    `cmd:"" aliases:"ls" help:"Show the project gallery"`
	Teaser     TeaserCmd     `cmd:"" help:"Show the homepage teaser (pinned first, capped)"`
	Facets     FacetsCmd     `cmd:"" help:"Show technology and role facets with counts"`
	Show       ShowCmd       `cmd:"" aliases:"s" help:"Show one project, unlocking it if protected"`
	Add        AddCmd        `cmd:"" aliases:"a" help:"Add a project to the catalog"`
	Edit       EditCmd       `cmd:"" aliases:"e" help:"Edit project metadata"`
	Rm         RmCmd         `cmd:"" help:"Remove a project from the catalog"`
	Role       RoleCmd       `cmd:"" help:"Manage role metadata"`
	Image      ImageCmd      `cmd:"" help:"Print the resolved image URL of a project"`
	HashSecret HashSecretCmd `cmd:"" name:"hash-secret" help:"Print an argon2id encoding of a secret"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file"`
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if c.LogLevel != "" {
		level, err := config.ParseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	setupLogging(cfg.LogLevel)

	catalogPath := config.DefaultCatalogPath()
	if c.CatalogPath != "" {
		if catalogPath, err = config.ExpandPath(c.CatalogPath); err != nil {
			return fmt.Errorf("invalid catalog path: %w", err)
		}
	}

	cat, err := catalog.NewYAMLCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	if err := cat.Load(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Debug("catalog loaded", "path", config.ShortenPath(catalogPath), "items", cat.Count())

	scheme := gallery.Scheme(cfg.SecretScheme)
	verifier, err := gallery.VerifierFor(scheme)
	if err != nil {
		return err
	}

	images, err := newImageResolver(cfg.Images)
	if err != nil {
		return fmt.Errorf("failed to set up image resolver: %w", err)
	}

	globals := &Globals{
		Cat:         cat,
		CatalogPath: catalogPath,
		Out:         os.Stdout,
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		Images:      images,
		Verifier:    verifier,
		Scheme:      scheme,
		TeaserCap:   cfg.TeaserCap,
		Prompt:      ui.PromptSecret,
		Wizard:      ui.RunDraftWizard,
	}
	ctx.Bind(globals)
	return nil
}

func setupLogging(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func newImageResolver(cfg config.ImageConfig) (media.Resolver, error) {
	if !cfg.S3.Enabled() {
		return media.NewStaticResolver(cfg.BaseURL, cfg.Placeholder), nil
	}
	return media.NewS3Resolver(media.S3Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
		URLTTL:    cfg.S3.URLTTL,
	}, cfg.Placeholder)
}

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Portfolio catalog: gallery, teaser and protected projects"),
		kong.UsageOnError(),
		kong.BindTo(runCtx, (*context.Context)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
