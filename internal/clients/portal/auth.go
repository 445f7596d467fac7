package portal

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

var publicPages = []string{"/login", "/register"}

var publicPagePrefixes = []string{"/portfolio/public/"}

// handleUnauthorized clears the stored token and forces navigation to the
// login page, unless the user is already on an auth/public page or the
// failing request targeted an auth endpoint. In those cases the 401 is left
// to the caller.
func (c *Client) handleUnauthorized(req *http.Request) {

	if isAuthEndpoint(req.URL.Path) {
		return
	}

	if isPublicPage(c.navigator.CurrentPath()) {
		return
	}

	if err := c.tokens.Clear(req.Context()); err != nil {
		log.Errorf("failed to clear stored token: %v", err)
	}
	c.navigator.NavigateTo("/login")
}

func isAuthEndpoint(path string) bool {
	return strings.Contains(path, "/auth/")
}

func isPublicPage(path string) bool {
	for _, page := range publicPages {
		if path == page {
			return true
		}
	}
	for _, prefix := range publicPagePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
