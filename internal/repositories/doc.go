// Package repositories implements SQLite persistence for the local cache.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [ProfileRepository] : Account profile persistence with email-based lookups
//   - [PlaylistRepository] : Playlist caching keyed by backend remote ID, including the originating prompt
//   - [TrackRepository] : Track caching with ISRC-based lookups for export matching
//
// Sequence numbers provide stable, human-readable ordering (e.g., playlist #15) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
