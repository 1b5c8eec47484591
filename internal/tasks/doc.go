// Package tasks orchestrates playlist exports to external music services with real-time progress reporting.
//
// # Core Operations
//
// The [Engine] interface defines the export operation:
//
//  1. [Engine.Run] : Full Sound Whiskers → destination export
//     - Fetches the source playlist and its tracks from the backend
//     - Searches each track on the destination service by title and artist
//     - Creates the destination playlist and adds all matched tracks
//     - Returns detailed results including failed matches
//
// The source argument accepts either a playlist ID or an exact playlist name;
// name lookup scans the account's playlists when the ID fetch fails.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Track Caching
//
// The optional [TrackCacher] interface enables automatic track persistence during exports.
//
// Tracks are cached silently (errors ignored) to avoid disrupting exports.
//
// # Implementation
//
// [ExportEngine] implements [Engine] with dependencies on:
//   - [BackendClient] : Sound Whiskers API client (api.Client)
//   - [services.Service] : destination provider (Spotify)
//   - [TrackCacher] : Optional persistence layer (repositories.TrackRepository)
package tasks
