package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes bounds how much of an unread body is discarded, so the
// connection can be reused without reading arbitrarily large uploads.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what the coaching handlers left unread in
// the request body and closes it once the handler returns.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			drainBody(r.Body)
		})
	}
}

func drainBody(body io.ReadCloser) {
	if body == nil || body == http.NoBody {
		return
	}
	_, _ = io.CopyN(io.Discard, body, maxDrainBytes)
	_ = body.Close()
}
