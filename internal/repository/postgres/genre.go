package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/repository"
)

type genreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) repository.GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *domain.Genre) error {
	query := `INSERT INTO genres (name, created_on) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.Name, time.Now()).Scan(&g.ID)
}

func (r *genreRepository) GetByID(ctx context.Context, id int32) (*domain.Genre, error) {
	g := &domain.Genre{}
	query := `SELECT id, name, created_on FROM genres WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *genreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_on FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedOn); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genreRepository) Update(ctx context.Context, g *domain.Genre) error {
	res, err := r.db.ExecContext(ctx, `UPDATE genres SET name=$1 WHERE id=$2`, g.Name, g.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *genreRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
