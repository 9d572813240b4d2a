// Package library holds the logbook data model and reads and writes the JSON
// export file produced by the practice-log app.
package library

import "time"

// Piece is a free-typed (title, composer) pair as the user entered it. The
// composer is optional; a JSON null and an empty string mean the same thing.
type Piece struct {
	Title    string `json:"title"`
	Composer string `json:"composer,omitempty"`
}

// LogbookEntry is one practice session. The id is immutable; piece titles
// and composers may be rewritten by an explicit bulk rename.
type LogbookEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Duration   int       `json:"duration"` // seconds
	Pieces     []Piece   `json:"pieces"`
	Notes      string    `json:"notes,omitempty"`
	Mood       string    `json:"mood,omitempty"`
	Type       string    `json:"type,omitempty"`
	Instrument string    `json:"instrument,omitempty"`
	ScoreID    string    `json:"scoreId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RepertoireItem is a piece the user tracks, with practice aggregates.
type RepertoireItem struct {
	ScoreID           string    `json:"scoreId"`
	Title             string    `json:"title"`
	Composer          string    `json:"composer,omitempty"`
	PracticeCount     int       `json:"practiceCount"`
	TotalPracticeTime int       `json:"totalPracticeTime"` // seconds
	LastPracticed     time.Time `json:"lastPracticed,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	PersonalNotes     string    `json:"personalNotes,omitempty"`
	ReferenceLinks    []string  `json:"referenceLinks,omitempty"`
}

// Export is the app's JSON backup format.
type Export struct {
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
	Entries    []LogbookEntry   `json:"entries"`
	Repertoire []RepertoireItem `json:"repertoire,omitempty"`
}
