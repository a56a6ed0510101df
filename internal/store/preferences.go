package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Preferences is the key/value preference set of one visitor. It satisfies
// i18n.PreferenceStore.
type Preferences struct {
	store   *Store
	visitor string
}

// Preferences returns the preference set for visitorID.
func (s *Store) Preferences(visitorID string) *Preferences {
	return &Preferences{store: s, visitor: visitorID}
}

// Get returns the stored value, or "" when the key was never set.
func (p *Preferences) Get(key string) (string, error) {
	var v string
	err := p.store.db.QueryRow(
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		p.visitor, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}
	return v, nil
}

// Set stores value under key.
func (p *Preferences) Set(key, value string) error {
	_, err := p.store.db.Exec(`
		INSERT INTO preferences (visitor_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, p.visitor, key, value, p.store.stamp())
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
