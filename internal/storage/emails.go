package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"stoik.com/emailregistry/internal/core/domain"
)

const uniqueViolation = "23505"

const emailColumns = "id, client_id, recipient, sender, sent_at, smtp_code, body, fraud_label"

type EmailsStorage struct {
	db *PostgresDB
}

func NewEmailsStorage(db *PostgresDB) *EmailsStorage {
	return &EmailsStorage{
		db: db,
	}
}

// StoreBatch inserts the whole batch in one transaction and returns the
// records with their assigned ids, in input order. A duplicate smtp code
// rolls everything back and returns domain.ErrStorageConflict.
func (s *EmailsStorage) StoreBatch(ctx context.Context, batch []domain.EmailRecord) ([]domain.EmailRecord, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO emails (client_id, recipient, sender, sent_at, smtp_code, body, fraud_label)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	stored := make([]domain.EmailRecord, 0, len(batch))
	for _, email := range batch {
		err := tx.QueryRow(ctx, insert,
			email.ClientID,
			email.Recipient,
			email.Sender,
			email.Timestamp,
			email.SMTPCode,
			email.Body,
			string(email.FraudLabel),
		).Scan(&email.ID)
		if err != nil {
			return nil, mapError(err)
		}
		stored = append(stored, email)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError(err)
	}

	return stored, nil
}

// Search returns one page of a client's emails ordered by id.
func (s *EmailsStorage) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.EmailRecord, error) {
	conditions := []string{"client_id = $1"}
	args := []any{filter.ClientID}

	if filter.BodyContains != "" {
		args = append(args, "%"+escapeLike(filter.BodyContains)+"%")
		conditions = append(conditions, fmt.Sprintf("body ILIKE $%d", len(args)))
	}
	if filter.Sender != "" {
		args = append(args, filter.Sender)
		conditions = append(conditions, fmt.Sprintf("sender = $%d", len(args)))
	}

	args = append(args, filter.PageSize, filter.Offset())
	query := fmt.Sprintf(
		"SELECT %s FROM emails WHERE %s ORDER BY id LIMIT $%d OFFSET $%d",
		emailColumns, strings.Join(conditions, " AND "), len(args)-1, len(args),
	)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEmails(rows)
}

func (s *EmailsStorage) GetEmailsByIDs(ctx context.Context, ids []int64) ([]domain.EmailRecord, error) {
	if len(ids) == 0 {
		return []domain.EmailRecord{}, nil
	}

	rows, err := s.db.Query(ctx,
		"SELECT "+emailColumns+" FROM emails WHERE id = ANY($1) ORDER BY id",
		ids,
	)
	if err != nil {
		return nil, err
	}
	return collectEmails(rows)
}

func collectEmails(rows pgx.Rows) ([]domain.EmailRecord, error) {
	defer rows.Close()

	emails := make([]domain.EmailRecord, 0)
	for rows.Next() {
		var email domain.EmailRecord
		var label string
		err := rows.Scan(
			&email.ID,
			&email.ClientID,
			&email.Recipient,
			&email.Sender,
			&email.Timestamp,
			&email.SMTPCode,
			&email.Body,
			&label,
		)
		if err != nil {
			return nil, err
		}
		email.FraudLabel = domain.FraudLabel(label)
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w (%s)", domain.ErrStorageConflict, pgErr.ConstraintName)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
