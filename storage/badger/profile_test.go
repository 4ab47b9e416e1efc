package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

func TestProfileBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	profile := &core.Profile{
		Role:     core.RoleRequester,
		UserId:   11,
		Name:     "Acme Robotics",
		TopicIds: []core.ID{1, 2},
		Eligible: true,
	}

	added, err := repos.Profiles.PutProfiles(ctx, profile)
	if err != nil {
		t.Fatalf("Failed to put profile: %v", err)
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	retrieved, err := repos.Profiles.GetProfile(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved.Name != "Acme Robotics" {
		t.Fatalf("Expected 'Acme Robotics', got '%s'", retrieved.Name)
	}

	byUser, err := repos.Profiles.GetProfileByUser(ctx, 11, core.RoleRequester)
	if err != nil {
		t.Fatalf("Failed to get profile by user: %v", err)
	}
	if byUser.Id != added[0].Id {
		t.Fatalf("Expected profile %d, got %d", added[0].Id, byUser.Id)
	}
}

func TestProfileNotFound(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Profiles.GetProfile(context.Background(), 9999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestListEligibleCandidates(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	profiles := []*core.Profile{
		{Id: 3, Role: core.RoleCandidate, Name: "Casey", Eligible: true},
		{Id: 1, Role: core.RoleCandidate, Name: "Alex", Eligible: true},
		{Id: 2, Role: core.RoleCandidate, Name: "Blair", Eligible: false},
		{Id: 4, Role: core.RoleRequester, Name: "Acme", Eligible: true},
	}
	if _, err := repos.Profiles.PutProfiles(ctx, profiles...); err != nil {
		t.Fatalf("Failed to put profiles: %v", err)
	}

	eligible, err := repos.Profiles.ListEligibleCandidates(ctx, core.RoleCandidate)
	if err != nil {
		t.Fatalf("Failed to list eligible candidates: %v", err)
	}

	if len(eligible) != 2 {
		t.Fatalf("Expected 2 eligible candidates, got %d", len(eligible))
	}
	// BigEndian index keys give ID-ascending order
	if eligible[0].Id != 1 || eligible[1].Id != 3 {
		t.Fatalf("Expected order [1 3], got [%d %d]", eligible[0].Id, eligible[1].Id)
	}
}

func TestEligibilityFlip_RemovesFromIndex(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	profile := &core.Profile{Id: 7, Role: core.RoleCandidate, Name: "Jordan", Eligible: true}
	if _, err := repos.Profiles.PutProfiles(ctx, profile); err != nil {
		t.Fatalf("Failed to put profile: %v", err)
	}

	profile.Eligible = false
	if _, err := repos.Profiles.PutProfiles(ctx, profile); err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}

	eligible, err := repos.Profiles.ListEligibleCandidates(ctx, core.RoleCandidate)
	if err != nil {
		t.Fatalf("Failed to list eligible candidates: %v", err)
	}
	if len(eligible) != 0 {
		t.Fatalf("Expected no eligible candidates, got %d", len(eligible))
	}
}

func TestTopicContentIDs(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	topic := &core.Topic{Name: "artificial intelligence", Category: "technology"}
	added, err := repos.Topics.PutTopics(ctx, topic)
	if err != nil {
		t.Fatalf("Failed to put topic: %v", err)
	}

	want := core.IDFromContent("(technology,artificial intelligence)")
	if added[0].Id != want {
		t.Fatalf("Expected content ID %d, got %d", want, added[0].Id)
	}

	retrieved, err := repos.Topics.GetTopic(ctx, want)
	if err != nil {
		t.Fatalf("Failed to get topic: %v", err)
	}
	if retrieved.Name != "artificial intelligence" {
		t.Fatalf("Unexpected topic name '%s'", retrieved.Name)
	}
}

func TestEmbeddingVersioning(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	embedding := &core.ProfileEmbedding{
		ProfileId:    42,
		ModelVersion: "v2",
		Vector:       []float32{0.5, 0.5},
	}
	if err := repos.Embeddings.PutEmbedding(ctx, embedding); err != nil {
		t.Fatalf("Failed to put embedding: %v", err)
	}

	got, err := repos.Embeddings.GetEmbedding(ctx, 42, "v2")
	if err != nil {
		t.Fatalf("Failed to get embedding: %v", err)
	}
	if len(got.Vector) != 2 {
		t.Fatalf("Expected 2-dim vector, got %d", len(got.Vector))
	}

	// A stale model version reads the same as an absent embedding
	_, err = repos.Embeddings.GetEmbedding(ctx, 42, "v3")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for stale version, got %v", err)
	}

	_, err = repos.Embeddings.GetEmbedding(ctx, 999, "v2")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for missing embedding, got %v", err)
	}
}
