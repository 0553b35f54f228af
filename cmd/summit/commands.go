package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/spf13/cobra"

	"github.com/phanxgames/curtain"
	"github.com/phanxgames/curtain/catalog"
	"github.com/phanxgames/curtain/config"
	"github.com/phanxgames/curtain/site"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	format     string
}

var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	var route string

	cmd := &cobra.Command{
		Use:   "summit",
		Short: "E-Summit 2026 site",
		Long:  "Opens the E-Summit site: overlay page transitions, scroll reveals and the event catalog.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats)
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), opts, route)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "output format (json|text)")
	cmd.Flags().StringVar(&route, "route", "/", "route to open at startup")

	cmd.AddCommand(newEventsCommand(opts))
	cmd.AddCommand(newScriptCommand(opts))
	return cmd
}

// app is everything the commands share after configuration loads.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	cat    *catalog.Catalog
}

func loadApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, cat: cat}, nil
}

// newSite builds a shell positioned at route with the site mounted on it.
func (a *app) newSite(route string) (*curtain.Shell, *site.Site, error) {
	router := curtain.NewMemoryRouter(route)
	shell, err := curtain.NewShell(router, a.cfg.ShellConfig(), curtain.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}
	anim := shell.Animator()
	s, err := site.New(shell, router, a.cat, site.Settings{
		Reveal:   a.cfg.RevealOptions(),
		Magnetic: a.cfg.MagneticController(anim),
		Float:    a.cfg.FloatController(anim),
		Lift:     curtain.NewLift(anim),
		Logger:   a.logger,
	})
	if err != nil {
		shell.Close()
		return nil, nil, err
	}
	return shell, s, nil
}

func runWindow(ctx context.Context, opts *rootOptions, route string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	a, err := loadApp(ctx, opts, os.Stderr)
	if err != nil {
		return err
	}
	shell, s, err := a.newSite(route)
	if err != nil {
		return err
	}
	defer s.Close()

	run := a.cfg.RunConfig()
	run.OnBack = func() { s.Back() }
	a.logger.Info("starting", "route", route, "events", a.cat.Len(), "width", run.Width, "height", run.Height)
	return curtain.Run(shell, run)
}

func newLogger(c config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// loadCatalog returns the embedded events unless a path is configured. With
// watch enabled the file is reloaded in the background until ctx ends.
func loadCatalog(ctx context.Context, c config.CatalogConfig, logger *slog.Logger) (*catalog.Catalog, error) {
	if c.Path == "" {
		return catalog.Default(), nil
	}
	records, err := catalog.Load(c.Path)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(records)
	if err != nil {
		return nil, err
	}
	if c.Watch {
		go func() {
			if err := catalog.Watch(ctx, c.Path, cat, logger); err != nil {
				logger.Error("catalog watch stopped", "path", c.Path, "err", err)
			}
		}()
	}
	return cat, nil
}

// eventSummary is one line of `summit events`.
type eventSummary struct {
	ID     int    `json:"id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Route  string `json:"route"`
	Rules  int    `json:"rules"`
	Rounds int    `json:"rounds"`
}

func newEventsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "events",
		Short:        "List the event catalog",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(context.Background(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return writeEvents(cmd.OutOrStdout(), opts.format, a.cat.All())
		},
	}
}

func writeEvents(w io.Writer, format string, records []catalog.Record) error {
	summaries := make([]eventSummary, len(records))
	for i, r := range records {
		summaries[i] = eventSummary{
			ID:     r.ID,
			Slug:   r.Slug,
			Title:  r.Title,
			Route:  site.EventRoute(r.Slug),
			Rules:  len(r.Rules),
			Rounds: len(r.Rounds),
		}
	}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%d  %-20s %-20s %d rules, %d rounds\n", s.ID, s.Slug, s.Title, s.Rules, s.Rounds); err != nil {
			return err
		}
	}
	return nil
}

// scriptResult is the outcome of `summit script`.
type scriptResult struct {
	Route    string `json:"route"`
	Page     string `json:"page"`
	Frames   uint64 `json:"frames"`
	Rejected int    `json:"rejected"`
	Finished bool   `json:"finished"`
}

func newScriptCommand(opts *rootOptions) *cobra.Command {
	var (
		route     string
		maxFrames int
	)
	cmd := &cobra.Command{
		Use:   "script <file.json>",
		Short: "Play an input script against the site without a window",
		Long: `Play a JSON input script (navigate, scroll, move, leave, click, wait)
against the site at 60 frames per second without opening a window, then
report where it ended up. The run stops when the script finishes and no
transition is in flight, or after --max-frames.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			a, err := loadApp(context.Background(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			res, err := a.playScript(data, route, maxFrames)
			if err != nil {
				return err
			}
			return writeScriptResult(cmd.OutOrStdout(), opts.format, res)
		},
	}
	cmd.Flags().StringVar(&route, "route", "/", "route to start from")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 60*60, "frame limit")
	return cmd
}

func (a *app) playScript(data []byte, route string, maxFrames int) (scriptResult, error) {
	runner, err := curtain.LoadTestScript(data)
	if err != nil {
		return scriptResult{}, err
	}
	shell, s, err := a.newSite(route)
	if err != nil {
		return scriptResult{}, err
	}
	defer shell.Close()
	defer s.Close()

	shell.SetTestRunner(runner)
	for range maxFrames {
		shell.Update(1.0 / 60)
		if runner.Done() && !shell.Transitions().Snapshot().Animating {
			break
		}
	}
	return scriptResult{
		Route:    shell.Router().CurrentRoute(),
		Page:     s.Page().Kind.String(),
		Frames:   shell.Frames(),
		Rejected: runner.Rejected,
		Finished: runner.Done(),
	}, nil
}

func writeScriptResult(w io.Writer, format string, res scriptResult) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(res)
	}
	_, err := fmt.Fprintf(w, "route=%s page=%s frames=%d rejected=%d finished=%t\n",
		res.Route, res.Page, res.Frames, res.Rejected, res.Finished)
	return err
}
