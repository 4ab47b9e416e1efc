package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/matchwire"
	"github.com/poiesic/matchwire/config"
	"github.com/poiesic/matchwire/core"
)

var topics = []*core.Topic{
	{Name: "machine learning", Category: "technology"},
	{Name: "robotics", Category: "technology"},
	{Name: "developer tools", Category: "technology"},
	{Name: "climate tech", Category: "technology"},
	{Name: "fintech", Category: "finance"},
	{Name: "payments", Category: "finance"},
	{Name: "logistics", Category: "operations"},
	{Name: "supply chain", Category: "operations"},
	{Name: "go-to-market", Category: "business"},
	{Name: "enterprise sales", Category: "business"},
	{Name: "product design", Category: "design"},
	{Name: "healthcare", Category: "life sciences"},
	{Name: "biotech", Category: "life sciences"},
	{Name: "hardware", Category: "technology"},
	{Name: "manufacturing", Category: "industry"},
}

type seedProfile struct {
	role        core.Role
	userId      core.ID
	name        string
	description string
	topics      []string
	eligible    bool
}

var profiles = []seedProfile{
	{core.RoleRequester, 100, "Acme Robotics",
		"Industrial robot arms for mid-size factories, looking for advisors with deployment experience.",
		[]string{"robotics", "manufacturing", "hardware"}, true},
	{core.RoleRequester, 101, "Ledgerline",
		"Real-time reconciliation for multi-currency payment flows.",
		[]string{"fintech", "payments"}, true},
	{core.RoleRequester, 102, "Verdant Grid",
		"Battery dispatch software for commercial solar installations.",
		[]string{"climate tech", "machine learning"}, true},
	{core.RoleRequester, 103, "Parcelworks",
		"Route optimization for regional last-mile carriers.",
		[]string{"logistics", "supply chain", "machine learning"}, true},
	{core.RoleRequester, 104, "Helix Notes",
		"Clinical documentation assistant for small practices.",
		[]string{"healthcare", "machine learning"}, true},
	{core.RoleCandidate, 200, "Dana Wu",
		"Twenty years in factory automation, ex-VP manufacturing at two robotics companies.",
		[]string{"robotics", "manufacturing", "hardware"}, true},
	{core.RoleCandidate, 201, "Marcus Bell",
		"Payments infrastructure veteran, built settlement systems at a top-ten acquirer.",
		[]string{"payments", "fintech", "enterprise sales"}, true},
	{core.RoleCandidate, 202, "Priya Raman",
		"Applied ML lead turned advisor, focus on forecasting and optimization systems.",
		[]string{"machine learning", "logistics"}, true},
	{core.RoleCandidate, 203, "Tomas Keller",
		"Former utility executive, now advising grid software and storage startups.",
		[]string{"climate tech", "enterprise sales"}, true},
	{core.RoleCandidate, 204, "Amara Okafor",
		"Clinician-informaticist, helps health startups navigate provider workflows.",
		[]string{"healthcare", "biotech"}, true},
	{core.RoleCandidate, 205, "Jules Fontaine",
		"Design partner specializing in complex B2B product surfaces.",
		[]string{"product design", "developer tools"}, true},
	{core.RoleCandidate, 206, "Elena Vasquez",
		"Three-time founder, go-to-market coaching for technical CEOs.",
		[]string{"go-to-market", "enterprise sales", "developer tools"}, true},
	{core.RoleCandidate, 207, "Retired Advisor",
		"No longer taking introductions.",
		[]string{"fintech"}, false},
}

var (
	dataDir = flag.String("data-dir", "./matchwire-data", "database directory")
	mockAI  = flag.Bool("mock-ai", true, "use mock AI services when refreshing embeddings")
	refresh = flag.Bool("refresh", true, "refresh profile embeddings after seeding")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func seed(ctx context.Context, engine *matchwire.Engine) error {
	store := engine.Store()

	stored, err := store.Topics.PutTopics(ctx, topics...)
	if err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}

	topicIds := make(map[string]core.ID, len(stored))
	for _, topic := range stored {
		topicIds[topic.Name] = topic.Id
	}

	for _, sp := range profiles {
		profile := &core.Profile{
			Role:        sp.role,
			UserId:      sp.userId,
			Name:        sp.name,
			Description: sp.description,
			Eligible:    sp.eligible,
		}
		for _, name := range sp.topics {
			profile.TopicIds = append(profile.TopicIds, topicIds[name])
		}
		if _, err := store.Profiles.PutProfiles(ctx, profile); err != nil {
			return fmt.Errorf("failed to seed profile %q: %w", sp.name, err)
		}
	}

	slog.Info("seeded demo data", "topics", len(stored), "profiles", len(profiles))
	return nil
}

func main() {
	cfg := config.New()
	cfg.DataDir = *dataDir
	cfg.MockAI = *mockAI

	engine, err := matchwire.NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	ctx := context.Background()

	if err := seed(ctx, engine); err != nil {
		panic(err)
	}

	if *refresh {
		refreshed, err := engine.RefreshEmbeddings(ctx)
		if err != nil {
			panic(err)
		}
		slog.Info("refreshed embeddings", "count", refreshed)
	}
}
