// Package server provides HTTP routing, middleware, and OAuth callback handling for the CLI.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
// [LoggingMiddleware] logs request method, path, and duration at debug level.
//
// # OAuth Callback Handler
//
// OAuthHandler implements the OAuth2 authorization code callback flow.
//
// The handler validates the state parameter (CSRF protection), exchanges the authorization code for tokens,
// and sends the result through a channel.
//
// It only processes one callback to prevent replay attacks.
//
// # Current Usage
//
// The server package supports CLI OAuth flows for Spotify export authentication.
// When the user runs `swx auth spotify`, a temporary HTTP server starts on localhost:3000, handles the callback,
// and shuts down after receiving the OAuth token.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
