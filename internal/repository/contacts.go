package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoomka/contact-intel/api/internal/dto"
	"github.com/zoomka/contact-intel/api/internal/entity"
)

// ErrContactNotFound indicates there is no contact row for the given id.
var ErrContactNotFound = errors.New("contact not found")

// ContactsRepository describes persistence operations for scanned contacts.
// Implementations must guarantee that an id, once saved, is never reused and
// that each write is atomic per record.
type ContactsRepository interface {
	Save(ctx context.Context, record *entity.ContactRecord) error
	Get(ctx context.Context, id uuid.UUID) (*entity.ContactRecord, error)
	List(ctx context.Context, filter dto.ContactListFilter) ([]entity.ContactRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

const contactColumns = `
        id, name, role, company, email, phone, phone_e164, website, category,
        image, notes, tags, social_media, location, target_markets, score,
        raw_data, scanned_at, created_at, updated_at`

// Save inserts a contact record. The id comes from the pipeline and is never
// regenerated here.
func (r *PGXContactsRepository) Save(ctx context.Context, record *entity.ContactRecord) error {
	if record == nil {
		return fmt.Errorf("contact payload is nil")
	}

	socialJSON, err := marshalOrNil(record.SocialMedia)
	if err != nil {
		return fmt.Errorf("marshal social media: %w", err)
	}
	locationJSON, err := marshalOrNil(record.Location)
	if err != nil {
		return fmt.Errorf("marshal location: %w", err)
	}

	query := `
        INSERT INTO contacts (
            id, name, role, company, email, phone, phone_e164, website, category,
            image, notes, tags, social_media, location, target_markets, score,
            raw_data, scanned_at, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9,
            $10, $11, $12, $13, $14, $15, $16,
            $17, $18, NOW(), NOW()
        )`

	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.Name,
		record.Role,
		record.Company,
		record.Email,
		record.Phone,
		record.PhoneE164,
		record.Website,
		record.Category,
		record.Image,
		record.Notes,
		record.Tags,
		socialJSON,
		locationJSON,
		marketStrings(record.TargetMarkets),
		record.Score,
		record.RawData,
		record.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// Get retrieves a contact by id.
func (r *PGXContactsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ContactRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)

	record, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("query contact by id: %w", err)
	}
	return record, nil
}

// List retrieves contacts ordered by capture time (newest first), optionally
// filtered by exact category or a case-insensitive substring query across
// name, company, role and category.
func (r *PGXContactsRepository) List(ctx context.Context, filter dto.ContactListFilter) ([]entity.ContactRecord, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + contactColumns + ` FROM contacts`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", idx))
		args = append(args, filter.Category)
		idx++
	}
	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf(
			"(name ILIKE $%d OR company ILIKE $%d OR role ILIKE $%d OR category ILIKE $%d)",
			idx, idx, idx, idx))
		args = append(args, pattern)
		idx++
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}

	query.WriteString(" ORDER BY scanned_at DESC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var records []entity.ContactRecord
	for rows.Next() {
		record, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return records, nil
}

// Delete removes a contact by id.
func (r *PGXContactsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*entity.ContactRecord, error) {
	var (
		record       entity.ContactRecord
		tags         []string
		socialJSON   []byte
		locationJSON []byte
		markets      []string
	)

	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Role,
		&record.Company,
		&record.Email,
		&record.Phone,
		&record.PhoneE164,
		&record.Website,
		&record.Category,
		&record.Image,
		&record.Notes,
		&tags,
		&socialJSON,
		&locationJSON,
		&markets,
		&record.Score,
		&record.RawData,
		&record.ScannedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Tags = tags
	if len(socialJSON) > 0 {
		var social entity.SocialMediaSet
		if err := json.Unmarshal(socialJSON, &social); err != nil {
			return nil, fmt.Errorf("decode social media: %w", err)
		}
		record.SocialMedia = &social
	}
	if len(locationJSON) > 0 {
		var location entity.LocationGuess
		if err := json.Unmarshal(locationJSON, &location); err != nil {
			return nil, fmt.Errorf("decode location: %w", err)
		}
		record.Location = &location
	}
	for _, market := range markets {
		record.TargetMarkets = append(record.TargetMarkets, entity.Market(market))
	}

	return &record, nil
}

func marshalOrNil(value any) (any, error) {
	switch v := value.(type) {
	case *entity.SocialMediaSet:
		if v == nil {
			return nil, nil
		}
	case *entity.LocationGuess:
		if v == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func marketStrings(markets []entity.Market) []string {
	if len(markets) == 0 {
		return nil
	}
	values := make([]string, 0, len(markets))
	for _, market := range markets {
		values = append(values, string(market))
	}
	return values
}
