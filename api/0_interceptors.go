package api

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/service"
)

const (
	contextServicerKey      = "ed0fa170-5593-11ed-9d60-9bdc940af29d"
	contextCorrelationIDKey = "correlation-id"

	CorrelationIDHeader = "X-Correlation-Id"
)

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(context.WithValue(ctx, contextServicerKey, s))
		}
	}
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(contextServicerKey).(service.Servicer)
}

// correlationID takes the caller correlation id or creates a new one and
// echoes it in the response.
func correlationID(next box.H) box.H {
	return func(ctx context.Context) {
		id := strings.TrimSpace(box.GetRequest(ctx).Header.Get(CorrelationIDHeader))
		if id == "" {
			id = persistence.NextID()
		}
		box.GetResponse(ctx).Header().Set(CorrelationIDHeader, id)
		next(context.WithValue(ctx, contextCorrelationIDKey, id))
	}
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(contextCorrelationIDKey).(string)
	return id
}

func setVersionHeader(version string) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			box.GetResponse(ctx).Header().Set("X-Version", version)
			next(ctx)
		}
	}
}

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Println("PANIC:", err)
				debug.PrintStack()
				box.GetResponse(ctx).WriteHeader(http.StatusInternalServerError)
			}
		}()
		next(ctx)
	}
}

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			now := time.Now()
			defer func() {
				l.Println(now.UTC().Format(time.RFC3339Nano), formatRemoteAddr(r), r.Method, r.URL.String(), time.Since(now))
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	i := strings.LastIndex(r.RemoteAddr, ":")
	if i < 0 {
		return r.RemoteAddr
	}
	return r.RemoteAddr[0:i]
}
