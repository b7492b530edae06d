// Package media turns item image references into displayable URLs. A
// resolver never fails: anything it cannot resolve becomes the placeholder.
package media

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
)

type Resolver interface {
	Resolve(ctx context.Context, ref string) string
}

// StaticResolver serves references relative to a public base URL. Absolute
// http(s) references pass through unchanged.
type StaticResolver struct {
	base        *url.URL
	placeholder string
}

func NewStaticResolver(baseURL, placeholder string) *StaticResolver {
	r := &StaticResolver{placeholder: placeholder}
	if baseURL == "" {
		return r
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		slog.Warn("ignoring invalid image base url", "url", baseURL, "error", err)
		return r
	}
	r.base = u
	return r
}

func (r *StaticResolver) Resolve(_ context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return r.placeholder
	}
	if isAbsoluteURL(ref) {
		return ref
	}
	if r.base == nil {
		return r.placeholder
	}
	return r.base.JoinPath(ref).String()
}

func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
