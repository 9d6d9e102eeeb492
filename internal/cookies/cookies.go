// Package cookies imports browser cookies so downloads can reuse an
// existing logged-in session.
package cookies

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/browserutils/kooky"
	// Register all supported browser cookie stores
	_ "github.com/browserutils/kooky/browser/all"

	"github.com/ytget/universal-downloader/internal/config"
)

// Provider reads cookies from one browser's cookie store and caches
// them per domain. Safe for concurrent use.
type Provider struct {
	browser string

	mu    sync.RWMutex
	cache map[string][]*http.Cookie
}

// NewProvider creates a provider reading from the named browser.
// The name config.BrowserNone disables cookie import.
func NewProvider(browser string) *Provider {
	return &Provider{
		browser: browser,
		cache:   make(map[string][]*http.Cookie),
	}
}

// CookiesFor returns the browser cookies matching the URL's base domain
func (p *Provider) CookiesFor(ctx context.Context, rawURL string) ([]*http.Cookie, error) {
	if p == nil || p.browser == config.BrowserNone || p.browser == "" {
		return nil, nil
	}

	domain, err := baseDomain(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract base domain: %w", err)
	}

	p.mu.RLock()
	if cookies, ok := p.cache[domain]; ok {
		p.mu.RUnlock()
		return cookies, nil
	}
	p.mu.RUnlock()

	cookies := p.loadForDomain(ctx, domain)

	p.mu.Lock()
	p.cache[domain] = cookies
	p.mu.Unlock()

	return cookies, nil
}

// Client returns an HTTP client whose cookie jar holds the browser
// cookies for the URL's domain. Returns nil when no cookies are
// available so callers can fall back to the default client.
func (p *Provider) Client(ctx context.Context, rawURL string) (*http.Client, error) {
	cookies, err := p.CookiesFor(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if len(cookies) == 0 {
		return nil, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	jar.SetCookies(&url.URL{Scheme: u.Scheme, Host: u.Host}, cookies)

	return &http.Client{Jar: jar}, nil
}

// loadForDomain reads the cookie stores of the configured browser
func (p *Provider) loadForDomain(ctx context.Context, domain string) []*http.Cookie {
	stores := kooky.FindAllCookieStores()

	var found []*kooky.Cookie
	for _, store := range stores {
		if !strings.EqualFold(store.Browser(), p.browser) {
			continue
		}
		if err := ctx.Err(); err != nil {
			break
		}

		cookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		if err != nil {
			log.Printf("Failed to read cookies from %s: %v", store.Browser(), err)
			continue
		}
		found = append(found, cookies...)
	}

	if len(found) == 0 {
		log.Printf("No %s cookies found for %s, proceeding without cookies", p.browser, domain)
		return nil
	}

	log.Printf("Imported %d %s cookies for %s", len(found), p.browser, domain)
	return toHTTPCookies(found)
}

// toHTTPCookies converts kooky cookies to http.Cookie format
func toHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}
	return httpCookies
}

// baseDomain parses a URL and extracts its registrable base domain
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}

	parts := strings.Split(host, ".")
	if len(parts) > 2 {
		return strings.Join(parts[len(parts)-2:], "."), nil
	}
	return host, nil
}
