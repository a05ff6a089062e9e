package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vmunix/renamarr/internal/config"
	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/organizer"
	"github.com/vmunix/renamarr/internal/probe"
	"github.com/vmunix/renamarr/internal/resolver"
	"github.com/vmunix/renamarr/internal/tmdb"
)

var (
	dryRun     bool
	noInteract bool
	noCache    bool
)

var renameCmd = &cobra.Command{
	Use:   "rename <movie|show> <path> <output-name>",
	Short: "Rename a media library",
	Long: `Rename every video under <path> into a canonical layout.

The output directory is created next to <path> (in its parent
directory) under <output-name>. Files are moved, not copied; run with
--dry-run first to preview the result as placeholder text files.`,
	Args: cobra.ExactArgs(3),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Write placeholder files instead of moving media")
	renameCmd.Flags().BoolVar(&noInteract, "no-interact", false, "Never prompt; always pick the first catalog match")
	renameCmd.Flags().BoolVar(&noCache, "no-cache", false, "Do not load or persist lookup caches")
}

func runRename(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log.Level)

	// A missing credential is fatal before any file is touched.
	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return err
	}

	root, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("media path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media path %s is not a directory", root)
	}
	outRoot := organizer.OutputRoot(root, args[2])

	fmt.Printf("Media path:   %s\n", root)
	fmt.Printf("Output path:  %s\n", outRoot)
	if !noInteract && !confirm("OK? (Y/n, default: Y): ") {
		return nil
	}

	fsys := afero.NewOsFs()
	deny, err := mediapath.LoadDenyList(fsys, cfg.Scanner.DenyList)
	if err != nil {
		return err
	}

	client := tmdb.NewClient(apiKey)
	chooser := resolver.NewChooser(!noInteract, logger)
	res := resolver.New(client, chooser, logger.With("component", "resolver"))

	var store *resolver.Store
	if !noCache && !cfg.Cache.Disabled {
		store, err = resolver.OpenStore(cfg.Cache.Path)
		if err != nil {
			logger.Warn("lookup cache unavailable, continuing without it", "error", err)
		} else {
			defer store.Close()
			if err := store.Load(cmd.Context(), res); err != nil {
				logger.Warn("could not load lookup cache", "error", err)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	prober := probe.New(logger.With("component", "probe"))
	org := organizer.New(fsys, res, prober, deny, dryRun, logger)

	summary, runErr := org.Run(ctx, root, outRoot, kind)

	// Caches are flushed exactly once, on the way out, whether the run
	// finished or a termination signal canceled it.
	if store != nil {
		if err := store.Save(context.Background(), res); err != nil {
			logger.Warn("could not persist lookup cache", "error", err)
		}
	}

	if summary != nil {
		printSummary(summary)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func parseKind(s string) (mediapath.Kind, error) {
	switch s {
	case "movie":
		return mediapath.KindMovie, nil
	case "show":
		return mediapath.KindShow, nil
	default:
		return "", fmt.Errorf("media kind must be \"movie\" or \"show\", got %q", s)
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return !strings.EqualFold(strings.TrimSpace(input), "n")
}

func printSummary(s *organizer.Summary) {
	fmt.Printf("Discovered %d videos, resolved %d, renamed %d\n",
		s.Discovered, s.Resolved, s.Renamed)
	if len(s.Unresolved) > 0 {
		fmt.Println("Titles without a catalog id (fix the name or year and re-run):")
		for _, title := range s.Unresolved {
			fmt.Printf("  %s\n", title)
		}
	}
	for _, c := range s.Collisions {
		fmt.Printf("skipped: %s\n", c.Error())
	}
}
