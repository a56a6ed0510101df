package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
)

// Retention is how long visit records are kept.
const Retention = "-12 months"

// VisitorMetric is one recorded page view.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Lang      string    `json:"lang"`
	Timestamp time.Time `json:"timestamp"`
	Seen      string    `json:"seen"`
}

// Stats summarises visits for the admin dashboard.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	Languages        map[string]int64 `json:"languages"`
	RecentVisitors   []VisitorMetric  `json:"recent_visitors"`
	TotalText        string           `json:"total_text"`
}

// HashIP hashes ip with the per-process salt. The same IP hashes the same
// way for the lifetime of the process.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// TrackVisit records a page view.
func (s *Store) TrackVisit(ip, userAgent, path, lang string) error {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, lang, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, lang, s.stamp())
	if err != nil {
		return fmt.Errorf("record visitor: %w", err)
	}
	return nil
}

// CleanupOldVisits deletes visits older than Retention and returns how many
// were removed.
func (s *Store) CleanupOldVisits() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM visitors WHERE timestamp < datetime('now', ?)`, Retention)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than 12 months", n)
	}
	return n, nil
}

// Stats computes the dashboard numbers.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{Languages: make(map[string]int64)}

	counts := []struct {
		dst   *int64
		query string
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}
	stats.TotalText = humanize.Comma(stats.TotalVisitors)

	rows, err := s.db.Query(`SELECT value, COUNT(*) FROM preferences WHERE key = 'jg-lang' GROUP BY value`)
	if err != nil {
		return nil, fmt.Errorf("language split: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lang string
		var n int64
		if err := rows.Scan(&lang, &n); err != nil {
			continue
		}
		stats.Languages[lang] = n
	}

	recent, err := s.RecentVisits(50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

// RecentVisits returns the latest limit visits, newest first.
func (s *Store) RecentVisits(limit int) ([]VisitorMetric, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(lang, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	now := s.now()
	var out []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Lang, &ts); err != nil {
			continue
		}
		if t, err := time.Parse(timeLayout, ts); err == nil {
			v.Timestamp = t
			v.Seen = humanize.RelTime(t, now, "ago", "from now")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
