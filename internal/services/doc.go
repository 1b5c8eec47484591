// Package services defines the [Service] interface for music streaming providers and implements it for Spotify.
//
// # Service Interface
//
// All export targets implement a common abstraction, enabling playlist
// export to work uniformly across providers.
//
// # Spotify Implementation
//
// [SpotifyService] uses OAuth2 for authentication with automatic token refresh.
//
// The [oauth2.Config.Client] automatically refreshes expired tokens using the refresh token.
// Write scopes (playlist-modify-public, playlist-modify-private) are requested up front
// so exported playlists can be created and populated in one session.
//
// # OAuth Service Extension
//
// The [OAuthService] interface extends Service for OAuth providers.
//
// [SpotifyService] implements this for the authorization code flow driven by the CLI's
// local callback server.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrMissingCredentials] : required credential absent
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrTokenExpired] : OAuth token expired, reauthorization needed
//   - [shared.ErrTrackNotFound] : search returned no candidates
//
// # API Mappings
//
// Provider-specific JSON responses are converted to models.Playlist and models.Track:
//   - Spotify: Maps [SpotifySimplePlaylist] → [models.Playlist] and [SpotifyTrack] → [models.Track] with ISRC from external_ids
//
// Track matching during export uses the provider's search endpoint with a
// title plus artist query, taking the top result.
package services
