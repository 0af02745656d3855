package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/neocontrole/authserver/types"
)

// EstablishmentRepository handles persistence for establishments.
type EstablishmentRepository struct {
	db *sql.DB
}

func NewEstablishmentRepository(db *sql.DB) *EstablishmentRepository {
	return &EstablishmentRepository{db: db}
}

func (r *EstablishmentRepository) List(ctx context.Context) ([]types.Establishment, error) {
	const query = `
		SELECT id, nome, url_front
		FROM auth_estabelecimentos`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []types.Establishment
	for rows.Next() {
		var est types.Establishment
		if err := rows.Scan(&est.ID, &est.Nome, &est.URLFront); err != nil {
			return nil, err
		}
		items = append(items, est)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EstablishmentRepository) GetByID(ctx context.Context, id string) (types.Establishment, error) {
	const query = `
		SELECT id, nome, url_front
		FROM auth_estabelecimentos
		WHERE id = $1`
	var est types.Establishment
	err := r.db.QueryRowContext(ctx, query, id).Scan(&est.ID, &est.Nome, &est.URLFront)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Establishment{}, ErrNotFound
		}
		return types.Establishment{}, err
	}
	return est, nil
}

func (r *EstablishmentRepository) Create(ctx context.Context, est types.Establishment) (types.Establishment, error) {
	const query = `
		INSERT INTO auth_estabelecimentos (id, nome, url_front)
		VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, est.ID, est.Nome, est.URLFront); err != nil {
		return types.Establishment{}, err
	}
	return est, nil
}

func (r *EstablishmentRepository) Update(ctx context.Context, est types.Establishment) (types.Establishment, error) {
	const query = `
		UPDATE auth_estabelecimentos
		SET nome = $1,
			url_front = $2
		WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, est.Nome, est.URLFront, est.ID)
	if err != nil {
		return types.Establishment{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Establishment{}, err
	}
	if affected == 0 {
		return types.Establishment{}, ErrNotFound
	}
	return est, nil
}

func (r *EstablishmentRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM auth_estabelecimentos`
	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
