// Package web implements an HTMX-based web application mirroring the TUI functionality.
//
// # HTMX Web Application Implementation Plan
//
// # Architecture
//
// The web app replicates the six-view TUI workflow using server-side rendering
// with HTMX for dynamic updates. Each view corresponds to a template and handler:
//
//  1. Prompt Form: Server-rendered form with hx-post to start generation
//  2. Generation Progress: HTMX polling while the backend generates a preview
//  3. Preview: HTMX partial swap showing generated tracks + save button
//  4. Save Confirm: Modal with playlist name input and hx-post trigger
//  5. Export Monitor: SSE (Server-Sent Events) streaming export progress
//  6. Results Display: Created playlist with export breakdown
//
// Core Components
//
//   - HTTP Server: net/http server with html/template rendering on the server package's BasicRouter
//   - Workflow Integration: Uses same workflows.GenerationWorkflow and workflows.CreationWorkflow as TUI
//   - Session Management: Cookie-based sessions for OAuth state and account tracking
//   - SSE Handler: Streams real-time progress during exports
//
// Routes
//
//	GET  /                      → Prompt form (requires auth)
//	POST /generate              → Start generation, return preview partial
//	POST /playlists             → Persist the previewed draft
//	GET  /playlists/{id}        → Playlist detail with export button
//	GET  /auth/spotify          → OAuth initiation
//	GET  /auth/spotify/callback → OAuth completion
//	POST /export                → Start export, return SSE endpoint
//	GET  /export/{id}/stream    → SSE progress stream
//	GET  /export/{id}/result    → Final result view
//
// Templates
//
//   - base.html: Layout with navigation, plan badge, auth status
//   - prompt.html: Prompt form with hx-post
//   - preview.html: Partial template for generated tracks
//   - progress.html: SSE consumer with progress bar
//   - results.html: Created playlist and match breakdown
//
// # State Management
//
// Unlike the TUI's in-memory state, the web app persists state in:
//   - Session cookies: Authentication tokens, profile ID
//   - Playlist records: Cached via repositories across requests
//   - In-memory channels: SSE connections for active exports
//
// # Progress Streaming
//
// Export progress uses Server-Sent Events:
//  1. POST /export resolves the playlist, returns an export ID
//  2. Client opens SSE connection to /export/{id}/stream
//  3. Handler launches goroutine running ExportEngine.Run
//  4. Progress channel updates stream as SSE events
//  5. On completion, send "done" event with redirect URL
//
// Authentication Flow
//
//  1. User visits /, redirected to /auth/spotify if no export target is linked
//  2. OAuth dance stores tokens in session
//  3. Session middleware validates tokens on protected routes
//  4. Expired tokens trigger reauthorization flow
//
// Dependencies
//
//   - html/template: Server-side rendering
//   - net/http: HTTP server and SSE
//   - gorilla/sessions or similar: Cookie management
//
// Implementation Tasks
//
//  1. HTTP server setup reusing server.BasicRouter and LoggingMiddleware
//  2. Template structure with HTMX integration
//  3. Session middleware for auth state
//  4. Prompt handler calling the generation workflow
//  5. Preview handler (HTMX partial)
//  6. Save handler calling the creation workflow
//  7. SSE handler streaming ExportEngine progress updates
//  8. Result handler displaying the export outcome
//  9. OAuth handlers wrapping existing Spotify auth
//  10. Error handling and validation
//
// # Testing Strategy
//
// Use httptest:
//   - Mock api.Client for generation and playlist data
//   - Mock tasks.ExportEngine for exports
//   - Validate HTMX headers and response structure
//   - Test SSE stream formatting
package web
