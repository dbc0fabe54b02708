package oauth

import (
	"net/http"
	"strings"
)

type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// ProviderArgs bundles config with the http client a provider should use for
// token and userinfo calls.
type ProviderArgs struct {
	Config ProviderConfig
	Client *http.Client
}

func decodeProviderArgs(args interface{}) (ProviderArgs, error) {
	cfg, ok := args.(ProviderArgs)
	if !ok {
		return ProviderArgs{}, nil
	}
	cfg.Config.ClientID = strings.TrimSpace(cfg.Config.ClientID)
	cfg.Config.ClientSecret = strings.TrimSpace(cfg.Config.ClientSecret)
	cfg.Config.RedirectURL = strings.TrimSpace(cfg.Config.RedirectURL)
	return cfg, nil
}
