package repository

import (
	"context"
	"errors"
	"fmt"

	"listing-distance-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a listing does not exist.
var ErrNotFound = errors.New("repository: listing not found")

// Schema creates the listings table. geom is NULL for listings without a known location.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		kind VARCHAR(16) NOT NULL CHECK (kind IN ('property', 'job')),
		title VARCHAR(255) NOT NULL,
		address VARCHAR(255) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326)
	);

	CREATE INDEX IF NOT EXISTS listings_geom_idx ON listings USING GIST (geom);
	CREATE INDEX IF NOT EXISTS listings_kind_idx ON listings (kind);
`

const selectListing = `
	SELECT
		id,
		kind,
		title,
		address,
		ST_Y(geom::geometry) AS latitude,
		ST_X(geom::geometry) AS longitude
	FROM listings
`

// Execer is satisfied by both *pgx.Conn and *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the listings table and its indexes if they are missing.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// Repository reads listings from PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetListing loads a single listing by id
func (r *Repository) GetListing(ctx context.Context, id int) (*models.Listing, error) {
	sql := selectListing + `WHERE id = $1`

	var l models.Listing
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&l.ID,
		&l.Kind,
		&l.Title,
		&l.Address,
		&l.Latitude,
		&l.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to load listing %d: %w", id, err)
	}

	return &l, nil
}

// ListListings returns up to limit listings ordered by id. An empty kind matches every kind.
func (r *Repository) ListListings(ctx context.Context, kind models.Kind, limit int) ([]models.Listing, error) {
	sql := selectListing + `
		WHERE ($1::text = '' OR kind = $1::text)
		ORDER BY id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		var l models.Listing
		err := rows.Scan(
			&l.ID,
			&l.Kind,
			&l.Title,
			&l.Address,
			&l.Latitude,
			&l.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return listings, nil
}
