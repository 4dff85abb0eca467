package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VisitorCookie identifies a browser across visits
const VisitorCookie = "visitor_id"

type visitorKey struct{}

// VisitorID assigns a visitor id cookie when missing and stores the id
// in the request context
func VisitorID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(VisitorCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), id)))
	})
}

// WithVisitorID returns a context carrying id
func WithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorKey{}, id)
}

// GetVisitorID returns the visitor id stored by VisitorID, or ""
func GetVisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

// VisitRecorder stores one page view
type VisitRecorder interface {
	RecordVisit(ctx context.Context, ip, userAgent, path string) error
}

var untrackedPrefixes = []string{"/static/", "/api/", "/favicon"}

// TrackVisits records page views in the background. Static assets, API
// calls and requests carrying DNT: 1 are skipped.
func TrackVisits(rec VisitRecorder, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet && shouldTrack(r) {
				ip := clientIP(r)
				ua := r.UserAgent()
				path := r.URL.Path
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := rec.RecordVisit(ctx, ip, ua, path); err != nil {
						log.Warn("recording visit", "path", path, "error", err)
					}
				}()
			}
			next.ServeHTTP(w, r)
		})
	}
}

func shouldTrack(r *http.Request) bool {
	if r.Header.Get("DNT") == "1" {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// clientIP strips the port; chi's RealIP has already applied proxy headers
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
