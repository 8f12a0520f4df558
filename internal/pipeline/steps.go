package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/matchdex/matchdex/internal/aggregate"
	"github.com/matchdex/matchdex/internal/config"
	"github.com/matchdex/matchdex/internal/database"
	"github.com/matchdex/matchdex/internal/model"
	"github.com/matchdex/matchdex/internal/report"
	"github.com/matchdex/matchdex/internal/scrape"
)

// FetchStep fetches the results page and extracts the raw match list.
// A fetch failure aborts the run; there is no retry.
type FetchStep struct {
	// client fetches the page.
	client *scrape.Client

	// parser extracts matches from the page HTML.
	parser *scrape.Parser

	// logger for structured logging.
	logger *slog.Logger
}

// NewFetchStep creates a fetch step from a configured client and parser.
func NewFetchStep(client *scrape.Client, parser *scrape.Parser, logger *slog.Logger) *FetchStep {
	return &FetchStep{
		client: client,
		parser: parser,
		logger: logger,
	}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches and parses the results page into run.Matches.
func (s *FetchStep) Do(ctx context.Context, run *model.Run) error {
	body, err := s.client.Fetch(ctx, run.SourceURL)
	if err != nil {
		return err
	}

	matches, err := s.parser.Parse(body)
	if err != nil {
		return err
	}

	s.logger.Info("extracted matches",
		"source", run.SourceURL,
		"matches", len(matches),
	)
	run.Matches = matches
	return nil
}

// ReplayStep loads the raw match list from the matches.json snapshot of a
// previous run instead of fetching the source.
type ReplayStep struct {
	// snapshotDir is where matches.json lives.
	snapshotDir string

	// logger for structured logging.
	logger *slog.Logger
}

// NewReplayStep creates a replay step reading snapshots from dir.
func NewReplayStep(dir string, logger *slog.Logger) *ReplayStep {
	return &ReplayStep{
		snapshotDir: dir,
		logger:      logger,
	}
}

// Name returns the step name.
func (s *ReplayStep) Name() string {
	return "replay"
}

// Do loads run.Matches from the snapshot.
func (s *ReplayStep) Do(_ context.Context, run *model.Run) error {
	matches, err := report.ReadMatchesSnapshot(s.snapshotDir)
	if err != nil {
		return err
	}

	s.logger.Info("replayed matches from snapshot", "matches", len(matches))
	run.Matches = matches
	return nil
}

// MatchesSnapshotStep persists the raw match list to matches.json.
// It runs right after extraction so the snapshot reflects exactly what was
// scraped, before any aggregation.
type MatchesSnapshotStep struct {
	// dir receives the snapshot file.
	dir string
}

// NewMatchesSnapshotStep creates the raw snapshot step.
func NewMatchesSnapshotStep(dir string) *MatchesSnapshotStep {
	return &MatchesSnapshotStep{dir: dir}
}

// Name returns the step name.
func (s *MatchesSnapshotStep) Name() string {
	return "snapshot_matches"
}

// Do writes the snapshot.
func (s *MatchesSnapshotStep) Do(_ context.Context, run *model.Run) error {
	return report.WriteMatchesSnapshot(s.dir, run.Matches)
}

// AggregateStep builds the per-team view from the raw match list and
// persists it to teams.json.
type AggregateStep struct {
	// dir receives the teams snapshot file.
	dir string

	// logger for structured logging.
	logger *slog.Logger
}

// NewAggregateStep creates the aggregation step.
func NewAggregateStep(dir string, logger *slog.Logger) *AggregateStep {
	return &AggregateStep{
		dir:    dir,
		logger: logger,
	}
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return "aggregate"
}

// Do aggregates run.Matches into run.Teams.
func (s *AggregateStep) Do(_ context.Context, run *model.Run) error {
	teams, err := aggregate.Aggregate(run.Matches)
	if err != nil {
		return err
	}
	run.Teams = teams

	s.logger.Info("aggregated teams", "teams", len(teams))
	return report.WriteTeamsSnapshot(s.dir, teams)
}

// WorkbookStep renders the Excel workbook.
type WorkbookStep struct {
	// writer renders the workbook.
	writer *report.WorkbookWriter

	// path is the workbook output path.
	path string

	// logger for structured logging.
	logger *slog.Logger
}

// NewWorkbookStep creates the workbook step.
func NewWorkbookStep(writer *report.WorkbookWriter, path string, logger *slog.Logger) *WorkbookStep {
	return &WorkbookStep{
		writer: writer,
		path:   path,
		logger: logger,
	}
}

// Name returns the step name.
func (s *WorkbookStep) Name() string {
	return "workbook"
}

// Do writes the workbook.
func (s *WorkbookStep) Do(_ context.Context, run *model.Run) error {
	if err := s.writer.Write(run.Teams, s.path); err != nil {
		return err
	}
	run.WorkbookPath = s.path

	s.logger.Info("workbook written", "path", s.path, "sheets", len(run.Teams))
	return nil
}

// ScorecardStep generates every scorecard document into a staged folder
// tree and swaps the tree into place once all of them are on disk.
//
// Generation fans out per (team, history entry) pair: every pair is an
// independent unit owning its own output path and its own template import.
// Output paths are allocated sequentially up front so collision suffixes
// follow history order no matter how the fan-out schedules; the errgroup
// Wait is the completion barrier that keeps the run from finishing with
// writes still in flight.
type ScorecardStep struct {
	// generator fills the template.
	generator *report.ScorecardGenerator

	// dataFolder is the final tree root.
	dataFolder string

	// concurrency is the fan-out width.
	concurrency int

	// logger for structured logging.
	logger *slog.Logger
}

// NewScorecardStep creates the scorecard generation step.
func NewScorecardStep(generator *report.ScorecardGenerator, dataFolder string, concurrency int, logger *slog.Logger) *ScorecardStep {
	return &ScorecardStep{
		generator:   generator,
		dataFolder:  dataFolder,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Name returns the step name.
func (s *ScorecardStep) Name() string {
	return "scorecards"
}

// scorecardJob is one planned document generation.
type scorecardJob struct {
	team  string
	entry model.HistoryEntry
	dest  string
}

// Do stages the tree, generates all scorecards, and commits the tree.
func (s *ScorecardStep) Do(ctx context.Context, run *model.Run) error {
	tree := report.NewTreeBuilder(s.dataFolder)
	if err := tree.Stage(run.Teams); err != nil {
		return err
	}
	defer tree.Discard()

	// Plan all output paths before dispatching anything.
	alloc := report.NewPathAllocator()
	jobs := make([]scorecardJob, 0)
	for _, team := range run.Teams {
		dir, err := tree.TeamDir(team.Name)
		if err != nil {
			return err
		}
		for _, entry := range team.History {
			jobs = append(jobs, scorecardJob{
				team:  team.Name,
				entry: entry,
				dest:  alloc.Allocate(dir, entry.Opponent),
			})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return s.generator.Generate(job.team, job.entry, job.dest)
		})
	}

	// Join barrier: the run is not done until every document is written.
	if err := g.Wait(); err != nil {
		return err
	}

	if err := tree.Commit(); err != nil {
		return err
	}

	run.DataFolder = s.dataFolder
	run.ScorecardCount = len(jobs)

	s.logger.Info("scorecards generated",
		"folder", s.dataFolder,
		"documents", len(jobs),
	)
	return nil
}

// MarkdownStep writes the optional Markdown summary.
type MarkdownStep struct {
	// path is the summary output path.
	path string

	// logger for structured logging.
	logger *slog.Logger
}

// NewMarkdownStep creates the summary step.
func NewMarkdownStep(path string, logger *slog.Logger) *MarkdownStep {
	return &MarkdownStep{
		path:   path,
		logger: logger,
	}
}

// Name returns the step name.
func (s *MarkdownStep) Name() string {
	return "markdown"
}

// Do renders the summary to the configured path.
func (s *MarkdownStep) Do(_ context.Context, run *model.Run) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create summary %s: %w", s.path, err)
	}
	defer f.Close() //nolint:errcheck // Close error surfaced below

	if err := report.NewSummaryWriter(f).Write(run); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush summary %s: %w", s.path, err)
	}

	s.logger.Info("summary written", "path", s.path)
	return nil
}

// ArchiveStep saves the finished run to the SQLite archive.
type ArchiveStep struct {
	// dbDir is the archive directory.
	dbDir string

	// logger for structured logging.
	logger *slog.Logger
}

// NewArchiveStep creates the archive step.
func NewArchiveStep(dbDir string, logger *slog.Logger) *ArchiveStep {
	return &ArchiveStep{
		dbDir:  dbDir,
		logger: logger,
	}
}

// Name returns the step name.
func (s *ArchiveStep) Name() string {
	return "archive"
}

// Do saves the run.
func (s *ArchiveStep) Do(ctx context.Context, run *model.Run) error {
	archive, err := database.Open(s.dbDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer archive.Close() //nolint:errcheck // Read-mostly close

	id, err := archive.SaveRun(ctx, run)
	if err != nil {
		return err
	}

	s.logger.Info("run archived", "id", id, "dir", s.dbDir)
	return nil
}

// ExtractPipeline assembles the full extraction pipeline for cfg.
// The scorecard generator is constructed here, so a missing template fails
// before any network traffic happens.
func ExtractPipeline(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	client := scrape.NewClient(
		scrape.WithTimeout(cfg.Timeout),
		scrape.WithUserAgent(cfg.UserAgent),
		scrape.WithMaxBodySize(cfg.MaxBodySize),
	)
	parser := scrape.NewParser(cfg.Document.Selectors)

	first := NewFetchStep(client, parser, logger)
	return assemblePipeline(cfg, logger, first, opts...)
}

// ReplayPipeline assembles the pipeline that regenerates all artifacts from
// the matches.json snapshot.
func ReplayPipeline(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	first := NewReplayStep(cfg.SnapshotDir, logger)
	return assemblePipeline(cfg, logger, first, opts...)
}

// assemblePipeline wires the shared tail of both pipelines behind the given
// first step.
func assemblePipeline(cfg *config.Config, logger *slog.Logger, first Step, opts ...Option) (*Pipeline, error) {
	generator, err := report.NewScorecardGenerator(cfg.TemplatePath, cfg.Document.Scorecard)
	if err != nil {
		return nil, err
	}

	p := New(opts...)
	p.AddSteps(
		first,
		NewMatchesSnapshotStep(cfg.SnapshotDir),
		NewAggregateStep(cfg.SnapshotDir, logger),
		NewWorkbookStep(report.NewWorkbookWriter(), cfg.WorkbookPath, logger),
		NewScorecardStep(generator, cfg.DataFolder, cfg.Concurrency, logger),
	)

	if cfg.MarkdownPath != "" {
		p.AddSteps(NewMarkdownStep(cfg.MarkdownPath, logger))
	}
	if cfg.Archive {
		p.AddSteps(NewArchiveStep(cfg.DBDir, logger))
	}

	return p, nil
}
