package resolver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/vmunix/renamarr/internal/mediapath"
	"github.com/vmunix/renamarr/internal/tmdb"
)

// ErrAmbiguous is returned by FailChooser when more than one candidate
// remains after the year filter.
var ErrAmbiguous = errors.New("resolver: ambiguous candidates")

// Chooser decides between multiple catalog candidates that survived the
// year-match filter. Implementations must be deterministic or interactive;
// the resolver never auto-fails an ambiguous title. The context bounds the
// decision: an interactive chooser must abandon its prompt when it is
// canceled.
type Chooser interface {
	Choose(ctx context.Context, rec *mediapath.Record, candidates []tmdb.Candidate) (tmdb.Candidate, error)
}

// NewChooser picks the chooser for a run: a prompting chooser when
// interaction is wanted and stdin is a terminal, otherwise first-candidate
// selection. Falling back avoids blocking forever on a pipe.
func NewChooser(interactive bool, log *slog.Logger) Chooser {
	if !interactive {
		return FirstChooser{Log: log}
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if log != nil {
			log.Warn("stdin is not a terminal, falling back to first-candidate selection")
		}
		return FirstChooser{Log: log}
	}
	return &PromptChooser{In: os.Stdin, Out: os.Stdout, Log: log}
}

// FirstChooser always selects the first candidate.
type FirstChooser struct {
	Log *slog.Logger
}

func (f FirstChooser) Choose(_ context.Context, rec *mediapath.Record, candidates []tmdb.Candidate) (tmdb.Candidate, error) {
	if len(candidates) == 0 {
		return tmdb.Candidate{}, tmdb.ErrNotFound
	}
	if f.Log != nil && len(candidates) > 1 {
		f.Log.Info("selecting first candidate",
			"title", rec.Title, "selected", candidates[0].Name, "candidates", len(candidates))
	}
	return candidates[0], nil
}

// FailChooser refuses ambiguity; useful in tests and strict batch runs.
type FailChooser struct{}

func (FailChooser) Choose(_ context.Context, rec *mediapath.Record, candidates []tmdb.Candidate) (tmdb.Candidate, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return tmdb.Candidate{}, fmt.Errorf("%w: %q has %d candidates", ErrAmbiguous, rec.Title, len(candidates))
}

// PromptChooser renders the candidate list and blocks for a 1-based
// selection, re-prompting on out-of-range or non-numeric input. There is no
// timeout, but a canceled context abandons the prompt so a termination
// signal is not held up waiting for a human to press enter.
type PromptChooser struct {
	In  io.Reader
	Out io.Writer
	Log *slog.Logger
}

// promptLine carries one line of operator input off the reader goroutine.
type promptLine struct {
	text string
	err  error
}

func (p *PromptChooser) Choose(ctx context.Context, rec *mediapath.Record, candidates []tmdb.Candidate) (tmdb.Candidate, error) {
	if len(candidates) == 0 {
		return tmdb.Candidate{}, tmdb.ErrNotFound
	}

	year := ""
	if rec.Year != 0 {
		year = fmt.Sprintf(" (%d)", rec.Year)
	}
	fmt.Fprintf(p.Out, "Multiple results found for %s%s\n", rec.Title, year)
	fmt.Fprintln(p.Out, p.renderCandidates(rec.Title, candidates))

	// Reads happen on their own goroutine so cancellation can interrupt a
	// prompt. A read blocked on stdin at cancellation time is abandoned; it
	// ends when the process does.
	lines := make(chan promptLine)
	go func() {
		reader := bufio.NewReader(p.In)
		for {
			line, err := reader.ReadString('\n')
			select {
			case lines <- promptLine{text: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		fmt.Fprint(p.Out, "Selection: ")
		select {
		case <-ctx.Done():
			return tmdb.Candidate{}, ctx.Err()
		case l := <-lines:
			if l.err != nil && l.text == "" {
				return tmdb.Candidate{}, fmt.Errorf("read selection: %w", l.err)
			}
			n, convErr := strconv.Atoi(strings.TrimSpace(l.text))
			if convErr != nil || n < 1 || n > len(candidates) {
				fmt.Fprintln(p.Out, "Invalid selection")
				continue
			}
			return candidates[n-1], nil
		}
	}
}

func (p *PromptChooser) renderCandidates(parsedTitle string, candidates []tmdb.Candidate) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Name", "Date", "ID", "Genres", "Match"})

	for i, c := range candidates {
		similarity := edlib.JaroWinklerSimilarity(strings.ToLower(parsedTitle), strings.ToLower(c.Name))
		tw.AppendRow(table.Row{
			i + 1,
			c.Name,
			c.Date,
			c.ID,
			strings.Join(c.Genres, ", "),
			fmt.Sprintf("%.0f%%", similarity*100),
		})
	}

	return tw.Render()
}
