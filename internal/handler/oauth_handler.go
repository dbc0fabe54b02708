package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/response"
	"github.com/xxxsen/taskradar/internal/service"
)

type OAuthHandler struct {
	oauth  *service.OAuthService
	states *oauthStateStore
}

func NewOAuthHandler(oauth *service.OAuthService) *OAuthHandler {
	return &OAuthHandler{oauth: oauth, states: newOAuthStateStore()}
}

func (h *OAuthHandler) AuthURL(c *gin.Context) {
	provider := strings.ToLower(c.Param("provider"))
	state := h.states.Create(provider)
	authURL, err := h.oauth.GetAuthURL(provider, state)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"url": authURL})
}

func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.redirectAuthError(c, "invalid", "")
		return
	}
	provider, ok := h.states.Consume(state)
	if !ok || provider != strings.ToLower(c.Param("provider")) {
		h.redirectAuthError(c, "invalid", provider)
		return
	}
	profile, err := h.oauth.ExchangeCode(c.Request.Context(), provider, code)
	if err != nil {
		h.redirectAuthError(c, mapOAuthError(err), provider)
		return
	}
	user, token, err := h.oauth.LoginOrCreate(c.Request.Context(), profile)
	if err != nil {
		h.redirectAuthError(c, mapOAuthError(err), provider)
		return
	}
	redirect := "/oauth/callback?token=" + url.QueryEscape(token) + "&email=" + url.QueryEscape(user.Email) + "&provider=" + url.QueryEscape(provider)
	c.Redirect(http.StatusFound, redirect)
}

func (h *OAuthHandler) redirectAuthError(c *gin.Context, code, provider string) {
	redirect := "/oauth/callback?error=" + url.QueryEscape(code)
	if provider != "" {
		redirect += "&provider=" + url.QueryEscape(provider)
	}
	c.Redirect(http.StatusFound, redirect)
}

func mapOAuthError(err error) string {
	switch err {
	case appErr.ErrConflict:
		return "conflict"
	case appErr.ErrInvalid:
		return "invalid"
	case appErr.ErrNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

const oauthStateTTL = 10 * time.Minute

// oauthStateStore keeps short-lived anti-CSRF states. Entries expire after
// oauthStateTTL or on first consumption, whichever comes first.
type oauthStateStore struct {
	cache *expirable.LRU[string, string]
}

func newOAuthStateStore() *oauthStateStore {
	return &oauthStateStore{cache: expirable.NewLRU[string, string](1024, nil, oauthStateTTL)}
}

func (s *oauthStateStore) Create(provider string) string {
	state := randomState()
	s.cache.Add(state, provider)
	return state
}

func (s *oauthStateStore) Consume(state string) (string, bool) {
	provider, ok := s.cache.Get(state)
	if !ok {
		return "", false
	}
	s.cache.Remove(state)
	return provider, true
}

func randomState() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
