package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/conclave-ai/conclave/ent"
	artifactent "github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/pkg/extract"
	"github.com/conclave-ai/conclave/pkg/models"
)

// ArtifactService manages extracted code artifacts
type ArtifactService struct {
	client  *ent.Client
	meeting *MeetingService
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client, meeting *MeetingService) *ArtifactService {
	return &ArtifactService{client: client, meeting: meeting}
}

// ListArtifacts returns a meeting's artifacts in filename order
func (s *ArtifactService) ListArtifacts(ctx context.Context, meetingID string) ([]models.CodeArtifact, error) {
	found, err := s.client.CodeArtifact.Query().
		Where(artifactent.MeetingIDEQ(meetingID)).
		Order(ent.Asc(artifactent.FieldFilename)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	artifacts := make([]models.CodeArtifact, 0, len(found))
	for _, a := range found {
		artifacts = append(artifacts, toArtifact(a))
	}
	return artifacts, nil
}

// GetArtifact retrieves one artifact by ID
func (s *ArtifactService) GetArtifact(ctx context.Context, artifactID string) (models.CodeArtifact, error) {
	found, err := s.client.CodeArtifact.Query().
		Where(artifactent.IDEQ(artifactID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.CodeArtifact{}, ErrNotFound
		}
		return models.CodeArtifact{}, fmt.Errorf("failed to get artifact: %w", err)
	}
	return toArtifact(found), nil
}

// ExtractArtifacts runs the code extractor over the meeting transcript
// and upserts the results in one transaction. Unchanged files keep
// their version; changed content bumps it. A requirements.txt artifact
// is added when Python artifacts import outside the standard library.
// Extraction is idempotent for an unchanged transcript.
func (s *ArtifactService) ExtractArtifacts(ctx context.Context, meetingID string) ([]models.CodeArtifact, error) {
	messages, err := s.meeting.ListMessages(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	extracted := extract.Artifacts(messages)
	if reqs := extract.GenerateRequirements(extracted); len(reqs) > 0 {
		extracted = append(extracted, extract.Artifact{
			Filename: "requirements.txt",
			Language: "text",
			Content:  joinLines(reqs),
		})
	}
	if len(extracted) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var out []models.CodeArtifact
	for _, a := range extracted {
		saved, err := upsertArtifact(ctx, tx, meetingID, a)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit artifacts: %w", err)
	}
	return out, nil
}

// ExtractBestEffort runs extraction on meeting completion. Failures are
// logged, never surfaced: they must not fail the meeting.
func (s *ArtifactService) ExtractBestEffort(ctx context.Context, meetingID string) {
	artifacts, err := s.ExtractArtifacts(ctx, meetingID)
	if err != nil {
		slog.Error("Artifact extraction failed",
			"meeting_id", meetingID,
			"error", err)
		return
	}
	slog.Info("Artifact extraction complete",
		"meeting_id", meetingID,
		"artifacts", len(artifacts))
}

func upsertArtifact(ctx context.Context, tx *ent.Tx, meetingID string, a extract.Artifact) (models.CodeArtifact, error) {
	existing, err := tx.CodeArtifact.Query().
		Where(
			artifactent.MeetingIDEQ(meetingID),
			artifactent.FilenameEQ(a.Filename),
		).
		Only(ctx)
	switch {
	case err == nil:
		if existing.Content == a.Content {
			return toArtifact(existing), nil
		}
		updated, err := existing.Update().
			SetContent(a.Content).
			SetLanguage(a.Language).
			SetVersion(existing.Version + 1).
			Save(ctx)
		if err != nil {
			return models.CodeArtifact{}, fmt.Errorf("failed to update artifact %s: %w", a.Filename, err)
		}
		return toArtifact(updated), nil

	case ent.IsNotFound(err):
		builder := tx.CodeArtifact.Create().
			SetID(uuid.New().String()).
			SetMeetingID(meetingID).
			SetFilename(a.Filename).
			SetLanguage(a.Language).
			SetContent(a.Content)
		if a.SourceAgent != "" {
			builder.SetSourceAgent(a.SourceAgent)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			return models.CodeArtifact{}, fmt.Errorf("failed to create artifact %s: %w", a.Filename, err)
		}
		return toArtifact(created), nil

	default:
		return models.CodeArtifact{}, fmt.Errorf("failed to query artifact %s: %w", a.Filename, err)
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
