package service

import (
	"context"
	"strings"
	"time"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/oauth"
	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/jwt"
	"github.com/xxxsen/taskradar/internal/pkg/timeutil"
	"github.com/xxxsen/taskradar/internal/repo"
)

type OAuthService struct {
	users     *repo.UserRepo
	oauths    *repo.OAuthRepo
	jwtSecret []byte
	jwtTTL    time.Duration
	providers map[string]oauth.Provider
}

func NewOAuthService(users *repo.UserRepo, oauths *repo.OAuthRepo, secret []byte, ttl time.Duration, providers map[string]oauth.Provider) *OAuthService {
	if providers == nil {
		providers = map[string]oauth.Provider{}
	}
	return &OAuthService{
		users:     users,
		oauths:    oauths,
		jwtSecret: secret,
		jwtTTL:    ttl,
		providers: providers,
	}
}

func (s *OAuthService) GetAuthURL(provider, state string) (string, error) {
	impl := s.providers[strings.ToLower(provider)]
	if impl == nil {
		return "", appErr.ErrInvalid
	}
	return impl.AuthURL(state)
}

func (s *OAuthService) ExchangeCode(ctx context.Context, provider, code string) (*oauth.Profile, error) {
	impl := s.providers[strings.ToLower(provider)]
	if impl == nil {
		return nil, appErr.ErrInvalid
	}
	return impl.ExchangeCode(ctx, code)
}

// LoginOrCreate signs the user in with an external identity, creating the
// account on first sign-in. An existing local account with the same email
// but no binding is reported as a conflict rather than silently merged.
func (s *OAuthService) LoginOrCreate(ctx context.Context, profile *oauth.Profile) (*model.User, string, error) {
	if profile == nil || profile.ProviderUserID == "" || profile.Email == "" || profile.Provider == "" {
		return nil, "", appErr.ErrInvalid
	}
	if account, err := s.oauths.GetByProviderUserID(ctx, profile.Provider, profile.ProviderUserID); err == nil {
		user, err := s.users.GetByID(ctx, account.UserID)
		if err != nil {
			return nil, "", err
		}
		token, err := jwt.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
		if err != nil {
			return nil, "", err
		}
		return user, token, nil
	} else if err != appErr.ErrNotFound {
		return nil, "", err
	}
	if _, err := s.users.GetByEmail(ctx, profile.Email); err == nil {
		return nil, "", appErr.ErrConflict
	} else if err != appErr.ErrNotFound {
		return nil, "", err
	}
	now := timeutil.NowUnix()
	user := &model.User{
		ID:    newID(),
		Email: profile.Email,
		Ctime: now,
		Mtime: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	account := &model.OAuthAccount{
		ID:             newID(),
		UserID:         user.ID,
		Provider:       profile.Provider,
		ProviderUserID: profile.ProviderUserID,
		Email:          profile.Email,
		Ctime:          now,
		Mtime:          now,
	}
	if err := s.oauths.Create(ctx, account); err != nil {
		return nil, "", err
	}
	token, err := jwt.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
