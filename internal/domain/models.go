// Package domain defines the persistence models for songs, users, playlists,
// and collaborations. These types are mapped with GORM and form the core data
// layer of the application.
//
// Identifiers are opaque prefixed strings ("song-…", "user-…", "collab-…")
// generated at insert time. They are unique, never reused, and never parsed
// for meaning beyond their namespace prefix.
package domain

import "time"

// Song represents a single track in the catalog.
//
// Duration is optional and therefore a pointer: a NULL column round-trips as
// nil, and the JSON field is omitted when absent. InsertedAt is set once at
// creation; UpdatedAt is refreshed by every successful update.
type Song struct {
	ID         string    `json:"id"         gorm:"type:varchar(50);primaryKey"`
	Title      string    `json:"title"      gorm:"type:text;not null"`
	Year       int       `json:"year"       gorm:"not null"`
	Performer  string    `json:"performer"  gorm:"type:text;not null"`
	Genre      string    `json:"genre"      gorm:"type:text;not null"`
	Duration   *int      `json:"duration,omitempty"`
	InsertedAt time.Time `json:"insertedAt" gorm:"column:inserted_at;not null"`
	UpdatedAt  time.Time `json:"updatedAt"  gorm:"column:updated_at;not null"`
}

// TableName returns the database table name for Song.
func (Song) TableName() string { return "songs" }

// SongSummary is the reduced projection returned by the songs listing:
// only id, title, and performer.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// User represents a registered account. Username is unique; Password stores
// the bcrypt hash and is never serialized.
type User struct {
	ID       string `json:"id"       gorm:"type:varchar(50);primaryKey"`
	Username string `json:"username" gorm:"type:varchar(50);not null;uniqueIndex:ux_users_username"`
	Password string `json:"-"        gorm:"type:text;not null"`
	Fullname string `json:"fullname" gorm:"type:text;not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Playlist is referenced for ownership checks on collaboration mutations.
// Playlist CRUD itself lives outside this service.
type Playlist struct {
	ID    string `json:"id"    gorm:"type:varchar(50);primaryKey"`
	Name  string `json:"name"  gorm:"type:text;not null"`
	Owner string `json:"owner" gorm:"type:varchar(50);not null;index:idx_playlists_owner"`
}

// TableName returns the database table name for Playlist.
func (Playlist) TableName() string { return "playlists" }

// Collaboration grants a non-owner user edit rights on a playlist.
// At most one row may exist per (playlist_id, user_id) pair.
type Collaboration struct {
	ID         string `json:"id"         gorm:"type:varchar(50);primaryKey"`
	PlaylistID string `json:"playlistId" gorm:"column:playlist_id;type:varchar(50);not null;uniqueIndex:ux_collab_playlist_user"`
	UserID     string `json:"userId"     gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:ux_collab_playlist_user"`
}

// TableName returns the database table name for Collaboration.
func (Collaboration) TableName() string { return "collaborations" }
