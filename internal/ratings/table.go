// Package ratings holds the static team rating table and resolves user-supplied
// team names against it.
package ratings

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultKey is the table entry used when a team name cannot be resolved.
const DefaultKey = "Default"

// TeamRating is a team's scoring and conceding strength relative to the league
// average (1.0 = average).
type TeamRating struct {
	Attack  float64 `json:"attack" yaml:"attack"`
	Defense float64 `json:"defense" yaml:"defense"`
}

// Meta carries the normalization constants applied to every rating.
type Meta struct {
	AvgAttack  float64 `json:"avg_attack" yaml:"avg_attack"`
	AvgDefense float64 `json:"avg_defense" yaml:"avg_defense"`
}

var (
	defaultRating = TeamRating{Attack: 1.0, Defense: 1.0}
	defaultMeta   = Meta{AvgAttack: 1.0, AvgDefense: 1.0}
)

// Resolution tags how a team name was matched against the table.
type Resolution int

const (
	ResolvedExact Resolution = iota
	ResolvedNormalized
	ResolvedCaseInsensitive
	ResolvedDefault
)

func (r Resolution) String() string {
	switch r {
	case ResolvedExact:
		return "exact"
	case ResolvedNormalized:
		return "normalized"
	case ResolvedCaseInsensitive:
		return "case_insensitive"
	case ResolvedDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Table is an immutable rating table. Build it with NewTable (or one of the
// loaders) before serving predictions; it is safe for concurrent reads.
type Table struct {
	teams       map[string]TeamRating
	keys        []string
	def         TeamRating
	meta        Meta
	fingerprint string
}

// NewTable validates and copies the given ratings. A missing DefaultKey entry
// falls back to an average rating; zero meta values fall back to 1.0.
func NewTable(teams map[string]TeamRating, meta Meta) (*Table, error) {
	if meta.AvgAttack == 0 {
		meta.AvgAttack = defaultMeta.AvgAttack
	}
	if meta.AvgDefense == 0 {
		meta.AvgDefense = defaultMeta.AvgDefense
	}
	if !(meta.AvgAttack > 0) || !(meta.AvgDefense > 0) || math.IsInf(meta.AvgAttack, 0) || math.IsInf(meta.AvgDefense, 0) {
		return nil, fmt.Errorf("invalid meta: avg_attack=%v avg_defense=%v must be positive and finite", meta.AvgAttack, meta.AvgDefense)
	}

	t := &Table{
		teams: make(map[string]TeamRating, len(teams)),
		keys:  make([]string, 0, len(teams)),
		def:   defaultRating,
		meta:  meta,
	}
	for name, r := range teams {
		if !validRating(r) {
			return nil, fmt.Errorf("invalid rating for %q: attack=%v defense=%v", name, r.Attack, r.Defense)
		}
		t.teams[name] = r
		t.keys = append(t.keys, name)
	}
	sort.Strings(t.keys)

	if r, ok := t.teams[DefaultKey]; ok {
		t.def = r
	}
	t.fingerprint = t.computeFingerprint()

	return t, nil
}

func validRating(r TeamRating) bool {
	return r.Attack >= 0 && r.Defense >= 0 && !math.IsInf(r.Attack, 0) && !math.IsInf(r.Defense, 0)
}

// Resolve looks up a team by name. It tries the name as given, then with
// spaces and underscores swapped, then a case-insensitive match of each of
// those forms, and finally returns the default rating. It never fails.
func (t *Table) Resolve(name string) (TeamRating, Resolution) {
	if r, ok := t.teams[name]; ok {
		return r, ResolvedExact
	}

	variants := []string{
		name,
		strings.ReplaceAll(name, " ", "_"),
		strings.ReplaceAll(name, "_", " "),
	}
	for _, v := range variants[1:] {
		if r, ok := t.teams[v]; ok {
			return r, ResolvedNormalized
		}
	}

	// keys are sorted so duplicate case-folded names resolve the same way every time
	for _, v := range variants {
		for _, k := range t.keys {
			if strings.EqualFold(k, v) {
				return t.teams[k], ResolvedCaseInsensitive
			}
		}
	}

	return t.def, ResolvedDefault
}

// Default returns the fallback rating.
func (t *Table) Default() TeamRating { return t.def }

// Meta returns the normalization constants.
func (t *Table) Meta() Meta { return t.meta }

// Teams returns the known team names in sorted order, excluding the default entry.
func (t *Table) Teams() []string {
	out := make([]string, 0, len(t.keys))
	for _, k := range t.keys {
		if k != DefaultKey {
			out = append(out, k)
		}
	}
	return out
}

// Len returns the number of entries, the default entry included.
func (t *Table) Len() int { return len(t.keys) }

// Fingerprint identifies the table contents; two tables with the same
// entries and meta share a fingerprint.
func (t *Table) Fingerprint() string { return t.fingerprint }

func (t *Table) computeFingerprint() string {
	h := sha256.New()
	for _, k := range t.keys {
		r := t.teams[k]
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(r.Attack, 'g', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(r.Defense, 'g', -1, 64)))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte(strconv.FormatFloat(t.meta.AvgAttack, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(t.meta.AvgDefense, 'g', -1, 64)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
