package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/hash"
)

const hashHeader = "HashSHA256"

// NewHashMiddleware verifies the request body signature when the client
// supplies one and signs response bodies. A no-op when no key is configured.
func NewHashMiddleware(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			if reqHash := r.Header.Get(hashHeader); reqHash != "" {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					http.Error(w, "invalid request body", http.StatusBadRequest)
					return
				}
				if err := hash.VerifyHash(string(body), secretKey, reqHash); err != nil {
					http.Error(w, "invalid body hash", http.StatusBadRequest)
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			hw := &hashResponseWriter{ResponseWriter: w, key: secretKey}
			next.ServeHTTP(hw, r)
			hw.flush()
		})
	}
}

type hashResponseWriter struct {
	http.ResponseWriter
	key    string
	buf    bytes.Buffer
	status int
}

func (w *hashResponseWriter) WriteHeader(status int) {
	w.status = status
}

func (w *hashResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *hashResponseWriter) flush() {
	if w.buf.Len() > 0 {
		w.Header().Set(hashHeader, hash.CalculateHash(w.buf.String(), w.key))
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	_, _ = w.ResponseWriter.Write(w.buf.Bytes())
}
