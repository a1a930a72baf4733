package stubhub

import (
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
)

// Environment variables read by ProxyFromEnv.
const (
	EnvProxyHost     = "STUBHUB_PROXY_HOST"
	EnvProxyPort     = "STUBHUB_PROXY_PORT"
	EnvProxyUser     = "STUBHUB_PROXY_USER"
	EnvProxyPassword = "STUBHUB_PROXY_PASSWORD"
)

// ProxyConfig describes an outbound HTTP proxy. A zero value means the
// standard HTTP_PROXY/HTTPS_PROXY environment applies.
type ProxyConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ProxyFromEnv reads the STUBHUB_PROXY_* variables. An unparsable port is
// treated as unset.
func ProxyFromEnv() ProxyConfig {
	p := ProxyConfig{
		Host:     os.Getenv(EnvProxyHost),
		User:     os.Getenv(EnvProxyUser),
		Password: os.Getenv(EnvProxyPassword),
	}
	if port, err := strconv.Atoi(os.Getenv(EnvProxyPort)); err == nil {
		p.Port = port
	}
	return p
}

// URL returns the proxy URL, or nil when no host is configured.
func (p ProxyConfig) URL() *url.URL {
	if p.Host == "" {
		return nil
	}
	host := p.Host
	if p.Port > 0 {
		host = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	}
	u := &url.URL{Scheme: "http", Host: host}
	if p.User != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	return u
}

func (p ProxyConfig) transport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default
	if u := p.URL(); u != nil {
		t.Proxy = http.ProxyURL(u)
	} else {
		t.Proxy = http.ProxyFromEnvironment
	}
	return t
}
