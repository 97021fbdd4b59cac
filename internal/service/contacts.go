package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zoomka/contact-intel/api/internal/dto"
	"github.com/zoomka/contact-intel/api/internal/entity"
	"github.com/zoomka/contact-intel/api/internal/pipeline"
	"github.com/zoomka/contact-intel/api/internal/repository"
)

// ErrEmptyPayload indicates the caller sent nothing to process.
var ErrEmptyPayload = errors.New("payload must not be empty")

// ContactsService runs the intelligence pipeline over scanned payloads and
// persists the results.
type ContactsService struct {
	repo    repository.ContactsRepository
	cleaner *ContactCleaner
}

// NewContactsService creates a new instance of ContactsService.
func NewContactsService(repo repository.ContactsRepository, defaultPhoneRegion string) *ContactsService {
	return &ContactsService{
		repo:    repo,
		cleaner: NewContactCleaner(defaultPhoneRegion),
	}
}

// Scan processes a raw scanned payload end to end and saves the record. The
// pipeline never fails; only the store can.
func (s *ContactsService) Scan(ctx context.Context, raw string) (*dto.ScanResponse, error) {
	if raw == "" {
		return nil, ErrEmptyPayload
	}

	record := pipeline.Assemble(raw)
	s.cleaner.Clean(record)

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	return s.scanResponse(record, pipeline.Classify(raw).String()), nil
}

// ImportVCard processes a payload the caller identified as card-format text.
func (s *ContactsService) ImportVCard(ctx context.Context, raw string) (*dto.ScanResponse, error) {
	if raw == "" {
		return nil, ErrEmptyPayload
	}

	record := pipeline.AssembleVCard(raw)
	s.cleaner.Clean(record)

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	return s.scanResponse(record, "vcard"), nil
}

// ListContacts returns contacts newest first, honoring category and search
// filters.
func (s *ContactsService) ListContacts(ctx context.Context, filter dto.ContactListFilter) ([]entity.ContactRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	return s.repo.List(ctx, filter)
}

// ExportVCard renders the stored record in the card format.
func (s *ContactsService) ExportVCard(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return pipeline.ExportVCard(record), nil
}

// DeleteContact removes a contact by id.
func (s *ContactsService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ContactsService) scanResponse(record *entity.ContactRecord, format string) *dto.ScanResponse {
	return &dto.ScanResponse{
		Contact:     record,
		DisplayName: pipeline.DisplayName(record),
		Format:      format,
		Validation:  pipeline.Validate(record),
	}
}
