package logging

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	bcryptPattern = regexp.MustCompile(`^\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}$`)
)

// DefaultRedactOptions returns the masq options applied to every log handler.
// Account credentials, issued tokens and stored password digests never reach a log.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("password_hash"),
		masq.WithFieldName("PasswordHash"),
		masq.WithFieldName("token"),
		masq.WithFieldName("Token"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("jwt_secret"),
		masq.WithFieldName("JWTSecret"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldPrefix("secret"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(bcryptPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr func that redacts secrets.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}

// redactHandler applies a ReplaceAttr func for handlers that lack one.
type redactHandler struct {
	inner   slog.Handler
	replace func([]string, slog.Attr) slog.Attr
	groups  []string
}

func newRedactHandler(inner slog.Handler, replace func([]string, slog.Attr) slog.Attr) *redactHandler {
	return &redactHandler{inner: inner, replace: replace}
}

func (h *redactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *redactHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.replace(h.groups, a))
		return true
	})

	return h.inner.Handle(ctx, out)
}

func (h *redactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replace(h.groups, a)
	}

	return &redactHandler{inner: h.inner.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

func (h *redactHandler) WithGroup(name string) slog.Handler {
	groups := append(append([]string(nil), h.groups...), name)
	return &redactHandler{inner: h.inner.WithGroup(name), replace: h.replace, groups: groups}
}
