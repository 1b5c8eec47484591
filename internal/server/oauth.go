package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
)

// OAuthResult is the outcome of one authorization flow: a token or an error.
type OAuthResult struct {
	Token *oauth2.Token
	err   error
}

func (o *OAuthResult) Error() error {
	return o.err
}

// OAuthHandler serves the OAuth2 authorization-code callback.
// Implements [Handler] for registration with a [Router].
type OAuthHandler struct {
	config      *oauth2.Config
	state       string
	resultChan  chan OAuthResult
	once        sync.Once
	callbackHit bool
	mu          sync.Mutex
}

// NewOAuthHandler creates a callback handler bound to the given OAuth2
// config and CSRF state token.
func NewOAuthHandler(config *oauth2.Config, state string) *OAuthHandler {
	return &OAuthHandler{
		config:     config,
		state:      state,
		resultChan: make(chan OAuthResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *OAuthHandler) Routes() []string {
	return []string{"/callback"}
}

// ServeHTTP validates the state parameter, exchanges the authorization code
// for tokens, and delivers the outcome through the result channel. Only the
// first callback is processed; repeats get a 400.
func (h *OAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.callbackHit {
		h.mu.Unlock()
		http.Error(w, "Callback already processed", http.StatusBadRequest)
		return
	}
	h.callbackHit = true
	h.mu.Unlock()

	query := r.URL.Query()

	if query.Get("state") != h.state {
		h.Send(OAuthResult{err: fmt.Errorf("invalid state parameter")})
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	code := query.Get("code")
	if code == "" {
		err := fmt.Errorf("authorization failed: %s - %s", query.Get("error"), query.Get("error_description"))
		h.Send(OAuthResult{err: err})
		http.Error(w, "Authorization failed", http.StatusBadRequest)
		return
	}

	token, err := h.config.Exchange(context.Background(), code)
	if err != nil {
		h.Send(OAuthResult{err: fmt.Errorf("token exchange failed: %w", err)})
		http.Error(w, "Token exchange failed", http.StatusInternalServerError)
		return
	}

	h.Send(OAuthResult{Token: token})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, successPage)
}

// Send delivers the OAuth result through the channel exactly once.
func (h *OAuthHandler) Send(result OAuthResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the channel the flow outcome is delivered on.
// It receives exactly one result and is then closed.
func (h *OAuthHandler) Result() <-chan OAuthResult {
	return h.resultChan
}

const successPage = `<!DOCTYPE html>
<html>
<head>
    <title>Sound Whiskers</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #1a1625; }
        .card { text-align: center; background: #2a2438; color: #eee; padding: 2.5rem;
                border-radius: 12px; }
        h1 { color: #7D56F4; margin: 0 0 1rem 0; }
        p { color: #aaa; margin: 0; }
    </style>
</head>
<body>
    <div class="card">
        <h1>✓ Spotify connected</h1>
        <p>You can close this window and return to swx.</p>
    </div>
</body>
</html>
`
