package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vmunix/renamarr/internal/config"
	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/renamer"
)

// parseResultJSON is the JSON-friendly representation of an extracted record.
type parseResultJSON struct {
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Name        string   `json:"name,omitempty"`
	Year        int      `json:"year,omitempty"`
	Season      *int     `json:"season,omitempty"`
	Episode     *int     `json:"episode,omitempty"`
	EpisodeEnd  int      `json:"episode_end,omitempty"`
	Resolution  string   `json:"resolution,omitempty"`
	Class       string   `json:"class"`
	Tags        []string `json:"tags,omitempty"`
	Destination string   `json:"destination"`
	Skipped     bool     `json:"skipped,omitempty"`
}

var (
	parseJSON bool
	parseFile string
)

var parseCmd = &cobra.Command{
	Use:   "parse <movie|show> <relative-path>",
	Short: "Parse a library-relative path (local, no network needed)",
	Long: `Parse a library-relative video path and show what would be inferred
from it, plus the destination it would be renamed to.

Examples:
  renamarr parse movie "Movie.Title.2019.1080p.x264/Movie.Title.2019.1080p.mkv"
  renamarr parse show "ShowName (2020)/Season 01/ShowName - S01E02.mkv"
  renamarr parse show --file paths.txt --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runParseCmd,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Read paths from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	var paths []string
	if parseFile != "" {
		paths, err = readPathFile(parseFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	} else if len(args) > 1 {
		paths = []string{args[1]}
	} else {
		return fmt.Errorf("usage: renamarr parse <movie|show> <relative-path> or --file <filename>")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	deny, err := mediapath.LoadDenyList(afero.NewOsFs(), cfg.Scanner.DenyList)
	if err != nil {
		return err
	}

	results := make([]parseResultJSON, 0, len(paths))
	for _, p := range paths {
		results = append(results, parseOne(p, kind, deny))
	}

	if parseJSON {
		return outputParseJSON(results)
	}
	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printParseResult(r)
	}
	return nil
}

func parseOne(p string, kind mediapath.Kind, deny *mediapath.DenyList) parseResultJSON {
	rec := mediapath.Extract(p, kind, deny)
	if rec == nil {
		return parseResultJSON{Path: p, Skipped: true}
	}
	result := parseResultJSON{
		Path:        p,
		Title:       rec.Title,
		Name:        rec.Name,
		Year:        rec.Year,
		EpisodeEnd:  rec.EpisodeEnd,
		Resolution:  rec.Resolution,
		Class:       rec.Class.String(),
		Destination: renamer.BuildPath(rec),
	}
	// Season 0 is a real value (specials), so presence is a pointer, not a
	// zero check.
	if rec.HasSeason {
		s := rec.Season
		result.Season = &s
	}
	if rec.HasEpisode {
		e := rec.Episode
		result.Episode = &e
	}
	for _, t := range rec.FeaturetteTags {
		result.Tags = append(result.Tags, t.String())
	}
	return result
}

// readPathFile reads library-relative paths from a file, one per line.
func readPathFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}

func printParseResult(r parseResultJSON) {
	fmt.Printf("Path:        %s\n", r.Path)
	if r.Skipped {
		fmt.Println("Skipped:     not a video file")
		return
	}
	fmt.Printf("Title:       %s\n", r.Title)
	if r.Name != "" {
		fmt.Printf("Name:        %s\n", r.Name)
	}
	if r.Year > 0 {
		fmt.Printf("Year:        %d\n", r.Year)
	}
	if r.Season != nil {
		fmt.Printf("Season:      %d\n", *r.Season)
	}
	if r.Episode != nil {
		fmt.Printf("Episode:     %d\n", *r.Episode)
	}
	if r.EpisodeEnd > 0 {
		fmt.Printf("EpisodeEnd:  %d\n", r.EpisodeEnd)
	}
	if r.Resolution != "" {
		fmt.Printf("Resolution:  %s\n", r.Resolution)
	}
	fmt.Printf("Class:       %s\n", r.Class)
	if len(r.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Printf("Destination: %s\n", r.Destination)
}

func outputParseJSON(results []parseResultJSON) error {
	var output interface{}
	if len(results) == 1 {
		output = results[0]
	} else {
		output = results
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
