package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	AuthURL     = "https://stackexchange.com/oauth/dialog"
	TokenURL    = "https://stackexchange.com/oauth/access_token/json"
	RedirectURL = "https://stackexchange.com/oauth/login_success"

	// ScopeNoExpiry asks for a token that never expires
	ScopeNoExpiry = "no_expiry"

	oauthPrefix = "https://stackexchange.com/oauth/"
)

var (
	ErrMissingClientID = errors.New("a client ID must be provided")
	ErrEmptyURL        = errors.New("a URL must be provided to extract the token from it")
	ErrForeignURL      = errors.New("the URL doesn't appear to come from Stack Exchange")
	ErrNoToken         = errors.New("the URL doesn't carry an access token")
	ErrNoCode          = errors.New("the URL doesn't carry an authorization code")
	ErrMissingSecret   = errors.New("a client secret is required to exchange an authorization code")
	ErrStateMismatch   = errors.New("the URL was issued for another authorization request")
)

// openURL is swapped in tests so no browser is launched
var openURL = browser.OpenURL

// OAuthConfig returns the OAuth2 settings of a StackApps application
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  RedirectURL,
		Scopes:       []string{ScopeNoExpiry},
		Endpoint: oauth2.Endpoint{
			AuthURL:   AuthURL,
			TokenURL:  TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL returns the URL to open in a browser to grant the app
// access, and the random state it carries.
func AuthorizationURL(clientID string) (string, string, error) {
	if clientID == "" {
		return "", "", ErrMissingClientID
	}
	state := uuid.NewString()
	return OAuthConfig(clientID, "").AuthCodeURL(state), state, nil
}

// parseLoginURL checks rawURL comes from the Stack Exchange OAuth pages and
// merges its fragment and query parameters, fragment first.
func parseLoginURL(rawURL string) (url.Values, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}
	if !strings.HasPrefix(rawURL, oauthPrefix) {
		return nil, fmt.Errorf("%w: %s", ErrForeignURL, rawURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrForeignURL, rawURL)
	}

	values, err := url.ParseQuery(u.EscapedFragment())
	if err != nil {
		values = url.Values{}
	}
	for k, vs := range u.Query() {
		if _, ok := values[k]; !ok {
			values[k] = vs
		}
	}
	return values, nil
}

// ExtractToken returns the access token of a login_success URL, the page
// Stack Exchange redirects to once the user approved the app.
func ExtractToken(rawURL string) (string, error) {
	values, err := parseLoginURL(rawURL)
	if err != nil {
		return "", err
	}
	token := values.Get("access_token")
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// ExtractCode returns the authorization code of a login_success URL.
func ExtractCode(rawURL string) (string, error) {
	values, err := parseLoginURL(rawURL)
	if err != nil {
		return "", err
	}
	code := values.Get("code")
	if code == "" {
		return "", ErrNoCode
	}
	return code, nil
}

// Exchange trades an authorization code for an access token
func Exchange(ctx context.Context, cfg *oauth2.Config, code string) (string, error) {
	if cfg.ClientSecret == "" {
		return "", ErrMissingSecret
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok.AccessToken, nil
}

// Login walks the user through the OAuth flow: it opens the authorization
// page, reads the login_success URL pasted on in, and returns the token it
// carries or the token its authorization code is exchanged for.
func Login(ctx context.Context, log zerolog.Logger, in io.Reader, out io.Writer, clientID, clientSecret string) (string, error) {
	authURL, state, err := AuthorizationURL(clientID)
	if err != nil {
		return "", err
	}

	_, _ = fmt.Fprintf(out, "Copy this URL to your browser and complete the authentication:\n%s\n\n", authURL)
	if err := openURL(authURL); err != nil {
		log.Warn().Err(err).Msg("could not open the browser")
	}

	_, _ = fmt.Fprintln(out, "Paste here the login success URL:")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read the login success URL: %w", err)
	}

	values, err := parseLoginURL(line)
	if err != nil {
		return "", err
	}
	if got := values.Get("state"); got != "" && got != state {
		return "", ErrStateMismatch
	}

	if token := values.Get("access_token"); token != "" {
		return token, nil
	}
	if code := values.Get("code"); code != "" {
		return Exchange(ctx, OAuthConfig(clientID, clientSecret), code)
	}
	return "", ErrNoToken
}
