package middleware

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/config"
	"hello-api-go/internal/constants"
)

// CORS applies policy to requests inside the policy's path scope. Allowed
// origins are reflected back with credentials; disallowed origins get 403.
// Pre-flight requests are answered here and never reach the router.
// onReject, if not nil, is called once per rejected origin check.
//
// A "*" in AllowedHeaders reflects the pre-flight's
// Access-Control-Request-Headers, since browsers do not treat a literal
// "*" as a wildcard on credentialed requests.
func CORS(policy config.CORSPolicy, logger *zap.Logger, onReject func()) gin.HandlerFunc {
	matcher := NewOriginMatcher(policy.AllowedOrigins)
	named, reflectHeaders := splitWildcard(policy.AllowedHeaders)
	// with a wildcard the header list is written by reflectRequestHeaders
	allowHeaders := policy.AllowedHeaders
	if reflectHeaders {
		allowHeaders = nil
	}

	handler := cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			allowed := matcher.Match(origin)
			if !allowed {
				logger.Debug(fmt.Sprintf("%s Origin rejected", constants.APIName()), zap.String("origin", origin))
				if onReject != nil {
					onReject()
				}
			}
			return allowed
		},
		AllowMethods:     policy.AllowedMethods,
		AllowHeaders:     allowHeaders,
		AllowCredentials: policy.AllowCredentials,
		MaxAge:           policy.MaxAgeDuration(),
	})

	inScope := pathScopeMatcher(policy.PathScope)

	return func(c *gin.Context) {
		if !inScope(c.Request.URL.Path) {
			c.Next()
			return
		}
		if reflectHeaders && c.Request.Method == http.MethodOptions {
			reflectRequestHeaders(c, matcher, named)
		}
		handler(c)
	}
}

// splitWildcard drops "*" from headers and reports whether it was present
func splitWildcard(headers []string) ([]string, bool) {
	var named []string
	wildcard := false
	for _, h := range headers {
		if strings.TrimSpace(h) == "*" {
			wildcard = true
			continue
		}
		named = append(named, h)
	}
	return named, wildcard
}

// reflectRequestHeaders sets Access-Control-Allow-Headers to the requested
// headers plus the named ones. Only allowed origins get the header. It must
// run before the cors handler answers the pre-flight.
func reflectRequestHeaders(c *gin.Context, matcher *OriginMatcher, named []string) {
	header := c.Writer.Header()
	header.Add("Vary", "Access-Control-Request-Headers")

	if !matcher.Match(c.GetHeader("Origin")) {
		return
	}
	var allowed []string
	if requested := strings.TrimSpace(c.GetHeader("Access-Control-Request-Headers")); requested != "" {
		allowed = append(allowed, requested)
	}
	allowed = append(allowed, named...)
	if len(allowed) > 0 {
		header.Set("Access-Control-Allow-Headers", strings.Join(allowed, ","))
	}
}

// pathScopeMatcher turns "/**" or "/prefix/**" into a path predicate
func pathScopeMatcher(scope string) func(string) bool {
	prefix := strings.TrimSuffix(scope, "/**")
	if prefix == "" || prefix == "/" {
		return func(string) bool { return true }
	}
	if !strings.HasSuffix(scope, "/**") {
		return func(p string) bool { return p == prefix }
	}
	return func(p string) bool {
		return p == prefix || strings.HasPrefix(p, prefix+"/")
	}
}

// OriginMatcher matches request origins against exact origins and
// wildcard patterns such as "http://*:3000". A lone "*" matches any origin.
type OriginMatcher struct {
	exact    map[string]struct{}
	patterns []string
	any      bool
}

func NewOriginMatcher(origins []string) *OriginMatcher {
	m := &OriginMatcher{exact: make(map[string]struct{})}
	for _, origin := range origins {
		origin = strings.ToLower(strings.TrimSpace(origin))
		switch {
		case origin == "*":
			m.any = true
		case strings.Contains(origin, "*"):
			m.patterns = append(m.patterns, origin)
		default:
			m.exact[origin] = struct{}{}
		}
	}
	return m
}

func (m *OriginMatcher) Match(origin string) bool {
	origin = strings.ToLower(origin)
	if origin == "" || origin == "null" {
		return false
	}
	if m.any {
		return true
	}
	if _, ok := m.exact[origin]; ok {
		return true
	}
	for _, pattern := range m.patterns {
		// '*' never crosses a '/', so it stays inside the host:port part
		if ok, err := path.Match(pattern, origin); err == nil && ok {
			return true
		}
	}
	return false
}
