package config

import (
	"fmt"
	"strings"
	"time"
)

// Profile names one of the built-in CORS policies
type Profile string

const (
	// ProfileScoped limits CORS to /api/** for the local front-end origins and enables SPA fallback
	ProfileScoped Profile = "scoped"
	// ProfileOpen applies CORS to every path for wildcard http origins, without SPA fallback
	ProfileOpen Profile = "open"
)

// ParseProfile maps a profile name to a Profile. Matching ignores case and
// surrounding spaces; "a" and "b" are accepted as aliases.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scoped", "a":
		return ProfileScoped, nil
	case "open", "b":
		return ProfileOpen, nil
	default:
		return "", fmt.Errorf("unknown CORS profile %q (expected %q or %q)", name, ProfileScoped, ProfileOpen)
	}
}

// CORSPolicy is the cross-origin policy applied to inbound requests
type CORSPolicy struct {
	// PathScope is "/**" for every path or "<prefix>/**" for a subtree
	PathScope        string   `yaml:"path_scope"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	// MaxAge is the pre-flight cache duration in seconds
	MaxAge      int  `yaml:"max_age"`
	SPAFallback bool `yaml:"spa_fallback"`
}

var defaultMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

// PolicyFor returns a fresh copy of the built-in policy for profile
func PolicyFor(profile Profile) (CORSPolicy, error) {
	switch profile {
	case ProfileScoped:
		return CORSPolicy{
			PathScope: "/api/**",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:80",
				"http://localhost",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:80",
				"http://127.0.0.1",
			},
			AllowedMethods:   append([]string(nil), defaultMethods...),
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           3600,
			SPAFallback:      true,
		}, nil
	case ProfileOpen:
		return CORSPolicy{
			PathScope: "/**",
			AllowedOrigins: []string{
				"http://*:3000",
				"http://*:80",
				"http://*",
			},
			AllowedMethods:   append([]string(nil), defaultMethods...),
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           3600,
			SPAFallback:      false,
		}, nil
	default:
		return CORSPolicy{}, fmt.Errorf("unknown CORS profile %q", profile)
	}
}

func (p CORSPolicy) Validate() error {
	if p.PathScope == "" || !strings.HasPrefix(p.PathScope, "/") {
		return fmt.Errorf("cors path_scope must start with '/', got %q", p.PathScope)
	}
	if strings.Contains(strings.TrimSuffix(p.PathScope, "/**"), "*") {
		return fmt.Errorf("cors path_scope only supports a trailing /**, got %q", p.PathScope)
	}
	if len(p.AllowedOrigins) == 0 {
		return fmt.Errorf("cors allowed_origins must not be empty")
	}
	for _, origin := range p.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors allowed_origins contains an empty entry")
		}
	}
	if len(p.AllowedMethods) == 0 {
		return fmt.Errorf("cors allowed_methods must not be empty")
	}
	if p.MaxAge < 0 {
		return fmt.Errorf("cors max_age must not be negative, got %d", p.MaxAge)
	}
	return nil
}

// MaxAgeDuration returns MaxAge as a time.Duration
func (p CORSPolicy) MaxAgeDuration() time.Duration {
	return time.Duration(p.MaxAge) * time.Second
}

// CORSOverrides holds the CORS fields a config file may set on top of the
// selected profile. Nil and empty fields leave the profile value alone.
type CORSOverrides struct {
	PathScope        *string  `yaml:"path_scope"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials *bool    `yaml:"allow_credentials"`
	MaxAge           *int     `yaml:"max_age"`
	SPAFallback      *bool    `yaml:"spa_fallback"`
}

func (o CORSOverrides) applyTo(p *CORSPolicy) {
	if o.PathScope != nil {
		p.PathScope = *o.PathScope
	}
	if len(o.AllowedOrigins) > 0 {
		p.AllowedOrigins = append([]string(nil), o.AllowedOrigins...)
	}
	if len(o.AllowedMethods) > 0 {
		p.AllowedMethods = append([]string(nil), o.AllowedMethods...)
	}
	if len(o.AllowedHeaders) > 0 {
		p.AllowedHeaders = append([]string(nil), o.AllowedHeaders...)
	}
	if o.AllowCredentials != nil {
		p.AllowCredentials = *o.AllowCredentials
	}
	if o.MaxAge != nil {
		p.MaxAge = *o.MaxAge
	}
	if o.SPAFallback != nil {
		p.SPAFallback = *o.SPAFallback
	}
}
