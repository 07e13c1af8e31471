package exercise

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sync"
)

// Matcher classifies exercise names against the lookup table. The table
// is loaded at most once per Matcher and cached for its lifetime;
// concurrent callers arriving during the load await the same result. A
// missing or unreadable table degrades matching to the built-in keyword
// tier, never a hard failure.
//
// The zero value is usable and classifies with keywords only.
type Matcher struct {
	// TablePath is the on-disk lookup table location, tried first.
	TablePath string

	// TableURL is the HTTP retrieval fallback used when the file is
	// unavailable.
	TableURL string

	// HTTPClient overrides http.DefaultClient for the URL fallback.
	HTTPClient *http.Client

	mu      sync.Mutex
	loaded  bool
	pending chan struct{}
	table   []LookupEntry
}

// Classify finds the best classification for an exercise name. It is
// total: every input yields a match, bottoming out at the generic
// total-body default with confidence 0.3.
//
// Resolution order: exact normalized lookup title, fuzzy lookup title
// (>0.7), built-in keyword tier (>0.6), canonical taxonomy names (>0.5),
// default. Within a tier the first entry encountered wins ties.
func (m *Matcher) Classify(ctx context.Context, name string) Match {
	normalized := Normalize(name)
	table := m.lookupTable(ctx)

	for _, entry := range table {
		if entry.Hevy.ExerciseTitle == nil {
			continue
		}
		if Normalize(*entry.Hevy.ExerciseTitle) == normalized {
			return Match{
				Category:        entry.Garmin.CategoryID,
				CategorySubtype: entry.Garmin.ExerciseID,
				Confidence:      1.0,
			}
		}
	}

	var bestLookup *Match
	bestLookupScore := 0.0
	for _, entry := range table {
		if entry.Hevy.ExerciseTitle == nil {
			continue
		}
		score := Similarity(normalized, *entry.Hevy.ExerciseTitle)
		if score > bestLookupScore && score > 0.7 {
			bestLookupScore = score
			bestLookup = &Match{
				Category:        entry.Garmin.CategoryID,
				CategorySubtype: entry.Garmin.ExerciseID,
				Confidence:      score,
			}
		}
	}
	if bestLookup != nil {
		return *bestLookup
	}

	var best *Match
	bestScore := 0.0
	for _, mapping := range keywordMappings {
		for _, keyword := range mapping.Keywords {
			score := Similarity(normalized, keyword)
			if score > bestScore && score > 0.5 {
				bestScore = score
				best = &Match{
					Category:        mapping.Category,
					CategorySubtype: mapping.CategorySubtype,
					Confidence:      score,
				}
			}
		}
	}
	if best != nil && bestScore > 0.6 {
		return *best
	}

	// Last tier: the taxonomy-side canonical names. A keyword candidate in
	// (0.5, 0.6] stays in play and can still win here.
	for _, entry := range table {
		score := Similarity(normalized, Normalize(entry.Garmin.ExerciseName))
		if score > bestScore && score > 0.5 {
			bestScore = score
			best = &Match{
				Category:        entry.Garmin.CategoryID,
				CategorySubtype: entry.Garmin.ExerciseID,
				Confidence:      score,
			}
		}
	}

	if best == nil || bestScore < 0.5 {
		return Default()
	}
	return *best
}

// lookupTable returns the cached table, loading it on first use. At most
// one load runs regardless of caller count; latecomers block on the
// in-flight load (or their context) and share its result.
func (m *Matcher) lookupTable(ctx context.Context) []LookupEntry {
	m.mu.Lock()
	if m.loaded {
		table := m.table
		m.mu.Unlock()
		return table
	}
	if m.pending != nil {
		pending := m.pending
		m.mu.Unlock()
		select {
		case <-pending:
		case <-ctx.Done():
			return nil
		}
		m.mu.Lock()
		table := m.table
		m.mu.Unlock()
		return table
	}
	pending := make(chan struct{})
	m.pending = pending
	m.mu.Unlock()

	table := m.loadTable(ctx)

	m.mu.Lock()
	m.table = table
	m.loaded = true
	m.pending = nil
	m.mu.Unlock()
	close(pending)

	return table
}

// loadTable never fails hard: any problem yields an empty table and the
// keyword tier takes over.
func (m *Matcher) loadTable(ctx context.Context) []LookupEntry {
	if m.TablePath != "" {
		if data, err := os.ReadFile(m.TablePath); err == nil {
			var table []LookupEntry
			if err := json.Unmarshal(data, &table); err == nil {
				return table
			}
		}
	}

	if m.TableURL == "" {
		return nil
	}
	client := m.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.TableURL, nil)
	if err != nil {
		return nil
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	var table []LookupEntry
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil
	}
	return table
}
