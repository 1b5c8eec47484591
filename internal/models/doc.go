// Package models defines domain entities and persistence interfaces for the Sound Whiskers client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing backend and music service data
//   - [Playlist] : Playlist metadata from the Sound Whiskers backend
//   - [Track] : Song metadata with ISRC for cross-service matching
//   - [GenerationPreview] : Unsaved result of an AI generation call, held in memory until discarded or persisted
//   - [PlaylistDraft] : Creation payload sent to the backend
//   - [Profile] : Account profile carrying the plan entitlement
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [PersistedProfile] : Cached account profile
//   - [PersistedPlaylist] : Locally cached playlists with their originating prompt
//   - [PersistedTrack] : Cached tracks with ISRC for export matching
//
// All persistent entities implement the [Model] interface providing ID generation, timestamps,
// validation, and soft delete support. The [Repository] interface defines standard CRUD
// operations for database access.
package models
