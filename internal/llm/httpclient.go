package llm

import (
	"net/http"
	"net/url"

	"github.com/argumint/argumint/internal/config"
)

// newHTTPClient builds the outbound client for providers that accept a
// custom one, routing through configured proxies. Returns nil when no
// proxy is set so SDK transport defaults stay untouched.
func newHTTPClient(cfg *config.Config) *http.Client {
	if cfg.HTTPProxy == "" && cfg.HTTPSProxy == "" {
		return nil
	}

	httpProxy, httpsProxy := cfg.HTTPProxy, cfg.HTTPSProxy
	proxy := func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}

	return &http.Client{
		Transport: &http.Transport{Proxy: proxy},
	}
}
