// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/poiesic/matchwire"
	"github.com/poiesic/matchwire/analytics"
	"github.com/poiesic/matchwire/config"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/insight"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "matchwire",
		Usage: "Matching and feedback engine for requester/candidate introductions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "mock-ai",
				Usage: "Use deterministic mock AI services instead of live models",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "match",
				Usage:  "Recommend candidates for a requester profile",
				Action: matchCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "requester",
						Aliases:  []string{"r"},
						Usage:    "Requester profile ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Matching strategy (rule, similarity)",
						Value: "rule",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum candidates to return (similarity only, 0 = configured max)",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Ask the advisor for an assessment of each match",
					},
					&cli.BoolFlag{
						Name:  "record",
						Usage: "Record the surfaced matches as impressions",
					},
				},
			},
			{
				Name:   "insight",
				Usage:  "Assess one requester/candidate pair",
				Action: insightCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "requester",
						Aliases:  []string{"r"},
						Usage:    "Requester profile ID",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "candidate",
						Aliases:  []string{"c"},
						Usage:    "Candidate profile ID",
						Required: true,
					},
				},
			},
			{
				Name:   "embed",
				Usage:  "Refresh profile embeddings for the configured model version",
				Action: embedCommand,
			},
			{
				Name:  "feedback",
				Usage: "Record and inspect match feedback",
				Subcommands: []*cli.Command{
					{
						Name:   "submit",
						Usage:  "Submit or update feedback for a match pair",
						Action: feedbackSubmitCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "user",
								Aliases:  []string{"u"},
								Usage:    "Submitting user ID",
								Required: true,
							},
							&cli.Uint64Flag{
								Name:     "requester",
								Aliases:  []string{"r"},
								Usage:    "Requester profile ID",
								Required: true,
							},
							&cli.Uint64Flag{
								Name:     "candidate",
								Aliases:  []string{"c"},
								Usage:    "Candidate profile ID",
								Required: true,
							},
							&cli.BoolFlag{
								Name:  "helpful",
								Usage: "Mark the match as helpful (omit for not helpful)",
							},
							&cli.StringFlag{
								Name:  "outcome",
								Usage: "What the match led to (none, contacted, successful)",
								Value: "none",
							},
							&cli.StringFlag{
								Name:  "notes",
								Usage: "Free-form notes",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List a user's feedback, newest first",
						Action: feedbackListCommand,
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:     "user",
								Aliases:  []string{"u"},
								Usage:    "User ID",
								Required: true,
							},
						},
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show feedback and match metrics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "Scope metrics to one user (platform-wide when omitted)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openEngine loads the layered config, applies CLI overrides, and builds
// the engine. Caller must Close it.
func openEngine(c *cli.Context) (*matchwire.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dir := c.String("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if c.Bool("mock-ai") {
		cfg.MockAI = true
	}

	return matchwire.NewEngine(cfg)
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	requesterId := core.ID(c.Uint64("requester"))

	var matches []*core.MatchCandidate
	switch c.String("kind") {
	case "rule":
		matches, err = engine.MatchByRules(ctx, requesterId)
	case "similarity":
		matches, err = engine.MatchBySimilarity(ctx, requesterId, c.Int("limit"))
	default:
		return fmt.Errorf("unknown match kind %q: must be rule or similarity", c.String("kind"))
	}
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No candidates found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tCANDIDATE\tSCORE\tEXPLANATION")
	for _, m := range matches {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%s\n", m.Rank, m.CandidateId, m.Score, m.Explanation)
	}
	w.Flush()

	if c.Bool("explain") {
		insights, err := engine.ExplainMatches(ctx, matches)
		if err != nil {
			return fmt.Errorf("insight failed: %w", err)
		}
		for _, ins := range insights {
			printInsight(ins)
		}
	}

	if c.Bool("record") {
		if err := engine.RecordImpressions(ctx, matches...); err != nil {
			return fmt.Errorf("failed to record impressions: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Recorded %d impressions.\n", len(matches))
	}

	return nil
}

func insightCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ins, err := engine.ExplainPair(ctx,
		core.ID(c.Uint64("requester")), core.ID(c.Uint64("candidate")))
	if err != nil {
		return fmt.Errorf("insight failed: %w", err)
	}

	printInsight(ins)
	return nil
}

func printInsight(ins *insight.Insight) {
	fmt.Printf("\nCandidate %d (%s):\n", ins.Candidate.CandidateId, ins.Bundle.Provider)
	fmt.Printf("  %s\n", ins.Bundle.Rationale)
	if ins.Bundle.OutreachAngle != "" {
		fmt.Printf("  Outreach: %s\n", ins.Bundle.OutreachAngle)
	}
	for _, risk := range ins.Bundle.Risks {
		fmt.Printf("  Risk [%s/%d]: %s\n", risk.Kind, risk.Severity, risk.Detail)
	}
	if ins.Degraded {
		fmt.Println("  (advisor unavailable, deterministic explanation shown)")
	}
}

func embedCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	refreshed, err := engine.RefreshEmbeddings(ctx)
	if err != nil {
		return fmt.Errorf("embedding refresh failed: %w", err)
	}

	fmt.Printf("Refreshed %d profile embeddings.\n", refreshed)
	return nil
}

func feedbackSubmitCommand(c *cli.Context) error {
	ctx := context.Background()

	outcome, err := parseOutcome(c.String("outcome"))
	if err != nil {
		return err
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	stored, err := engine.SubmitFeedback(ctx, &core.MatchFeedback{
		UserId:      core.ID(c.Uint64("user")),
		RequesterId: core.ID(c.Uint64("requester")),
		CandidateId: core.ID(c.Uint64("candidate")),
		Helpful:     c.Bool("helpful"),
		Outcome:     outcome,
		Notes:       c.String("notes"),
	})
	if err != nil {
		return fmt.Errorf("failed to submit feedback: %w", err)
	}

	fmt.Printf("Recorded feedback %d for pair (%d, %d).\n",
		stored.Id, stored.RequesterId, stored.CandidateId)
	return nil
}

func feedbackListCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	records, err := engine.MyFeedback(ctx, core.ID(c.Uint64("user")))
	if err != nil {
		return fmt.Errorf("failed to list feedback: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No feedback recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REQUESTER\tCANDIDATE\tHELPFUL\tOUTCOME\tUPDATED\tNOTES")
	for _, fb := range records {
		fmt.Fprintf(w, "%d\t%d\t%t\t%s\t%s\t%s\n",
			fb.RequesterId, fb.CandidateId, fb.Helpful, fb.Outcome,
			fb.UpdatedAt.Format("2006-01-02 15:04"), fb.Notes)
	}
	return w.Flush()
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	var metrics *analytics.Metrics
	userId := core.ID(c.Uint64("user"))
	if userId != 0 {
		metrics, err = engine.UserMetrics(ctx, userId)
		if err != nil {
			return fmt.Errorf("failed to compute metrics for user %d: %w", userId, err)
		}
		fmt.Printf("Metrics for user %d:\n", userId)
	} else {
		metrics, err = engine.PlatformMetrics(ctx)
		if err != nil {
			return fmt.Errorf("failed to compute platform metrics: %w", err)
		}
		fmt.Println("Platform metrics:")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  Feedback total\t%d\n", metrics.FeedbackTotal)
	fmt.Fprintf(w, "  Helpful\t%d\n", metrics.HelpfulCount)
	fmt.Fprintf(w, "  Not helpful\t%d\n", metrics.NotHelpfulCount)
	fmt.Fprintf(w, "  Contacted\t%d\n", metrics.ContactedCount)
	fmt.Fprintf(w, "  Successful\t%d\n", metrics.SuccessfulCount)
	fmt.Fprintf(w, "  Helpfulness rate\t%.2f\n", metrics.HelpfulnessRate)
	fmt.Fprintf(w, "  Matches surfaced\t%d\n", metrics.MatchesSurfaced)
	fmt.Fprintf(w, "  Matches with feedback\t%d\n", metrics.MatchesWithFeedback)
	return w.Flush()
}

func parseOutcome(s string) (core.Outcome, error) {
	switch strings.ToLower(s) {
	case "none":
		return core.OutcomeNone, nil
	case "contacted":
		return core.OutcomeContacted, nil
	case "successful":
		return core.OutcomeSuccessful, nil
	}
	return 0, fmt.Errorf("unknown outcome %q: must be none, contacted, or successful", s)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
