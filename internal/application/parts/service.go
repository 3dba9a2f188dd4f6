package parts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/partkit/partkit/internal/domain/catalog"
	"github.com/partkit/partkit/internal/domain/naming"
	"github.com/partkit/partkit/internal/domain/shared"
	"github.com/partkit/partkit/internal/domain/subscription"
)

// CatalogClient is the slice of the API client the service needs.
type CatalogClient interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	GetProduct(ctx context.Context, partNumber string) (*catalog.ProductRecord, error)
	GetPrice(ctx context.Context, partNumber string) ([]catalog.PriceBreak, error)
	GetChanges(ctx context.Context, since string) ([]catalog.ChangedProduct, error)
	AddProduct(ctx context.Context, partNumber string) error
	RemoveProduct(ctx context.Context, partNumber string) error
	DownloadImages(ctx context.Context, partNumber, dir string) ([]string, error)
	DownloadCAD(ctx context.Context, partNumber, dir string, formats []string) ([]string, error)
	DownloadDatasheets(ctx context.Context, partNumber, dir string) ([]string, error)
}

// Service orchestrates the catalog API, the naming engine, and the
// local subscription ledger.
type Service struct {
	client    CatalogClient
	repo      subscription.Repository
	generator *naming.Generator
	analyzer  *naming.Analyzer
	logger    *zap.Logger
}

// NewService creates a parts service.
func NewService(client CatalogClient, repo subscription.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	generator := naming.NewGenerator(naming.NewRegistry())
	return &Service{
		client:    client,
		repo:      repo,
		generator: generator,
		analyzer:  naming.NewAnalyzer(generator),
		logger:    logger.Named("parts"),
	}
}

// Generator exposes the naming engine for callers that already hold a
// product record, such as the REST facade.
func (s *Service) Generator() *naming.Generator { return s.generator }

// Analyzer exposes the part analyzer.
func (s *Service) Analyzer() *naming.Analyzer { return s.analyzer }

// Login authenticates against the catalog API.
func (s *Service) Login(ctx context.Context, username, password string) error {
	return s.client.Login(ctx, username, password)
}

// Logout drops the API session.
func (s *Service) Logout(ctx context.Context) error {
	return s.client.Logout(ctx)
}

// NameResult pairs a generated name with the record it came from.
type NameResult struct {
	PartNumber string
	Name       string
	Record     *catalog.ProductRecord
}

// NameProduct fetches a part and runs it through the naming engine.
func (s *Service) NameProduct(ctx context.Context, partNumber string) (*NameResult, error) {
	record, err := s.fetchAndTrack(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	name := s.generator.GenerateName(record)
	s.logger.Info("generated name",
		zap.String("part", partNumber), zap.String("name", name))

	return &NameResult{PartNumber: record.PartNumber, Name: name, Record: record}, nil
}

// AnalyzeProduct fetches a part and explains how its name is built.
func (s *Service) AnalyzeProduct(ctx context.Context, partNumber string) (naming.PartAnalysis, error) {
	record, err := s.fetchAndTrack(ctx, partNumber)
	if err != nil {
		return naming.PartAnalysis{}, err
	}
	return s.analyzer.Analyze(record), nil
}

// GetInfo fetches the full catalog record for a part.
func (s *Service) GetInfo(ctx context.Context, partNumber string) (*catalog.ProductRecord, error) {
	return s.fetchAndTrack(ctx, partNumber)
}

// GetPrice fetches the price tiers for a part.
func (s *Service) GetPrice(ctx context.Context, partNumber string) ([]catalog.PriceBreak, error) {
	return s.client.GetPrice(ctx, partNumber)
}

// GetChanges lists subscribed parts changed since the given date.
func (s *Service) GetChanges(ctx context.Context, since string) ([]catalog.ChangedProduct, error) {
	return s.client.GetChanges(ctx, since)
}

// Subscribe adds a part upstream and records it in the local ledger.
func (s *Service) Subscribe(ctx context.Context, partNumber string) error {
	partNumber = normalizePartNumber(partNumber)
	if partNumber == "" {
		return shared.ErrInvalidInput
	}

	if err := s.client.AddProduct(ctx, partNumber); err != nil {
		return err
	}
	s.track(ctx, partNumber)
	s.logger.Info("subscribed", zap.String("part", partNumber))
	return nil
}

// Unsubscribe removes a part upstream and from the local ledger.
func (s *Service) Unsubscribe(ctx context.Context, partNumber string) error {
	partNumber = normalizePartNumber(partNumber)
	if err := s.client.RemoveProduct(ctx, partNumber); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, partNumber); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	s.logger.Info("unsubscribed", zap.String("part", partNumber))
	return nil
}

// List returns the local subscription ledger.
func (s *Service) List(ctx context.Context) ([]*subscription.Subscription, error) {
	return s.repo.List(ctx)
}

// SyncResult reports the outcome of syncing one tracked part.
type SyncResult struct {
	PartNumber string
	Name       string
	Err        error
}

// Sync re-fetches every tracked part, regenerates its name, and stamps
// the ledger. Failures are reported per part, not aborted on.
func (s *Service) Sync(ctx context.Context) ([]SyncResult, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(subs))
	for _, sub := range subs {
		record, err := s.client.GetProduct(ctx, sub.PartNumber)
		if err != nil {
			s.logger.Warn("sync failed for part",
				zap.String("part", sub.PartNumber), zap.Error(err))
			results = append(results, SyncResult{PartNumber: sub.PartNumber, Err: err})
			continue
		}

		name := s.generator.GenerateName(record)
		sub.RecordSync(name, record.DetailDescription, time.Now())
		if err := s.repo.Update(ctx, sub); err != nil {
			results = append(results, SyncResult{PartNumber: sub.PartNumber, Err: err})
			continue
		}
		results = append(results, SyncResult{PartNumber: sub.PartNumber, Name: name})
	}

	s.logger.Info("sync complete", zap.Int("parts", len(results)))
	return results, nil
}

// ImportStats summarizes an import run.
type ImportStats struct {
	Subscribed int
	Skipped    int
	Failed     int
}

// Import subscribes every part number listed in a file, one per line.
// Blank lines and lines starting with # are skipped; part numbers are
// normalized to upper case. Already tracked parts count as skipped.
func (s *Service) Import(ctx context.Context, path string) (ImportStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return ImportStats{}, fmt.Errorf("opening import file: %w", err)
	}
	defer file.Close()

	var stats ImportStats
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partNumber := normalizePartNumber(line)
		if _, err := s.repo.FindByPartNumber(ctx, partNumber); err == nil {
			stats.Skipped++
			continue
		}

		if err := s.Subscribe(ctx, partNumber); err != nil {
			s.logger.Warn("import failed for part",
				zap.String("part", partNumber), zap.Error(err))
			stats.Failed++
			continue
		}
		stats.Subscribed++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading import file: %w", err)
	}

	s.logger.Info("import complete",
		zap.Int("subscribed", stats.Subscribed),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed", stats.Failed))
	return stats, nil
}

// DownloadImages saves a part's images below dir.
func (s *Service) DownloadImages(ctx context.Context, partNumber, dir string) ([]string, error) {
	return s.client.DownloadImages(ctx, partNumber, dir)
}

// DownloadCAD saves a part's CAD files below dir.
func (s *Service) DownloadCAD(ctx context.Context, partNumber, dir string, formats []string) ([]string, error) {
	return s.client.DownloadCAD(ctx, partNumber, dir, formats)
}

// DownloadDatasheets saves a part's datasheets below dir.
func (s *Service) DownloadDatasheets(ctx context.Context, partNumber, dir string) ([]string, error) {
	return s.client.DownloadDatasheets(ctx, partNumber, dir)
}

// fetchAndTrack pulls a record from the API and mirrors the part into
// the local ledger. Product data is only served for subscribed parts,
// so a successful fetch implies an upstream subscription.
func (s *Service) fetchAndTrack(ctx context.Context, partNumber string) (*catalog.ProductRecord, error) {
	partNumber = normalizePartNumber(partNumber)
	record, err := s.client.GetProduct(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	s.track(ctx, partNumber)
	return record, nil
}

// track records a part in the ledger, ignoring duplicates. Ledger
// failures never block the API result.
func (s *Service) track(ctx context.Context, partNumber string) {
	sub, err := subscription.New(partNumber)
	if err != nil {
		return
	}
	if err := s.repo.Add(ctx, sub); err != nil && !errors.Is(err, shared.ErrAlreadyExists) {
		s.logger.Warn("could not track part locally",
			zap.String("part", partNumber), zap.Error(err))
	}
}

func normalizePartNumber(partNumber string) string {
	return strings.ToUpper(strings.TrimSpace(partNumber))
}
