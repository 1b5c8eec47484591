// Package api implements the HTTP client for the Sound Whiskers backend.
//
// # Gateway
//
// [Client.Do] performs exactly one network call per invocation and classifies
// the response into a closed set of outcomes via sentinel errors:
//
//   - success: 2xx, body decoded into the caller's result
//   - [shared.ErrProPlanRequired] : HTTP 403 with body code "PRO_PLAN_REQUIRED"
//   - [shared.ErrQuotaExceeded] : HTTP 429
//   - [shared.ErrAPIRequest] : any other non-2xx status or transport fault
//
// The gateway performs no retries and no caching; retry policy is a caller
// decision. Callers branch on outcomes with errors.Is, so new endpoints reuse
// the same dispatch without re-deriving the HTTP status mapping.
//
// # Typed endpoints
//
// The remaining methods ([Client.GeneratePlaylist], [Client.CreatePlaylist],
// [Client.ListPlaylists], [Client.GetProfile], ...) are thin typed wrappers
// over the gateway for the backend's visible surface.
//
// # Rate limiting
//
// An optional client-side token bucket (golang.org/x/time/rate) paces
// outgoing requests. It is best-effort politeness only; quota enforcement
// stays server-side and is reported as [shared.ErrQuotaExceeded].
package api
