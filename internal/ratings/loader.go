package ratings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"gopkg.in/yaml.v3"
)

// document is the on-disk rating layout shared by the JSON and YAML forms.
type document struct {
	Teams map[string]entry `json:"teams" yaml:"teams"`
	Meta  Meta             `json:"meta" yaml:"meta"`
}

// entry is one team as written in the document. A missing field means the
// league average.
type entry struct {
	Attack  *float64 `json:"attack" yaml:"attack"`
	Defense *float64 `json:"defense" yaml:"defense"`
}

func (e entry) rating() TeamRating {
	r := defaultRating
	if e.Attack != nil {
		r.Attack = *e.Attack
	}
	if e.Defense != nil {
		r.Defense = *e.Defense
	}
	return r
}

// LoadFile reads a rating document (teams.json or teams.yaml).
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a rating document. Documents starting with '{' are read as
// JSON, anything else as YAML.
func Parse(data []byte) (*Table, error) {
	var doc document
	var err error
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse ratings document: %w", err)
	}

	teams := make(map[string]TeamRating, len(doc.Teams))
	for name, e := range doc.Teams {
		teams[name] = e.rating()
	}
	return NewTable(teams, doc.Meta)
}

// PgQuerier is the subset of pgxpool.Pool used to load ratings.
type PgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	teamRatingsQuery = `SELECT name, attack, defense FROM team_ratings`
	ratingMetaQuery  = `SELECT avg_attack, avg_defense FROM rating_meta LIMIT 1`
)

// LoadPostgres reads the rating table from the team_ratings and rating_meta
// tables. A missing rating_meta row falls back to average constants.
func LoadPostgres(ctx context.Context, db PgQuerier) (*Table, error) {
	rows, err := db.Query(ctx, teamRatingsQuery)
	if err != nil {
		return nil, fmt.Errorf("team ratings query failed: %w", err)
	}
	defer rows.Close()

	teams := make(map[string]TeamRating)
	for rows.Next() {
		var name string
		var r TeamRating
		if err := rows.Scan(&name, &r.Attack, &r.Defense); err != nil {
			return nil, fmt.Errorf("failed to scan team rating: %w", err)
		}
		teams[name] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("team ratings iteration failed: %w", err)
	}

	var meta Meta
	err = db.QueryRow(ctx, ratingMetaQuery).Scan(&meta.AvgAttack, &meta.AvgDefense)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("rating meta query failed: %w", err)
	}

	return NewTable(teams, meta)
}
