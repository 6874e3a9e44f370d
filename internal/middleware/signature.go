package middleware

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/auth"
)

// Authenticate verifies every signature header against the request method,
// path, timestamp, nonce and body, and puts the set of signers into the
// request context. Timestamps further than window from now are rejected.
// Requests without signatures pass with an empty set, transitions reject them.
func Authenticate(window time.Duration) func(http.Handler) http.Handler {
	return authenticate(time.Now, window)
}

func authenticate(now func() time.Time, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := r.Header.Values(auth.SignatureHeader)
			if len(headers) == 0 {
				next.ServeHTTP(w, r.WithContext(auth.WithSigners(r.Context(), auth.NewSigners())))
				return
			}

			nonce := r.Header.Get(auth.NonceHeader)
			if !validNonce(nonce) {
				writeError(w, http.StatusUnauthorized, "missing or malformed nonce")
				return
			}

			ts, err := strconv.ParseInt(r.Header.Get(auth.TimestampHeader), 10, 64)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "missing or malformed timestamp")
				return
			}
			if skew := now().Sub(time.Unix(ts, 0)); skew > window || skew < -window {
				writeError(w, http.StatusUnauthorized, "stale timestamp")
				return
			}

			body, err := ioutil.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "failed to read body")
				return
			}
			r.Body = ioutil.NopCloser(bytes.NewReader(body))

			msg := auth.Message(r.Method, r.URL.Path, ts, nonce, body)
			ids := make([]address.Address, 0, len(headers))
			for _, h := range headers {
				id, err := auth.Verify(h, msg)
				if err != nil {
					log.WithError(err).Debug("signature rejected")
					writeError(w, http.StatusUnauthorized, err.Error())
					return
				}
				ids = append(ids, id)
			}

			signers := auth.NewSigners(ids...).WithNonce(nonce)
			next.ServeHTTP(w, r.WithContext(auth.WithSigners(r.Context(), signers)))
		})
	}
}

// validNonce accepts 1 to auth.MaxNonceLen printable ASCII characters.
func validNonce(nonce string) bool {
	if nonce == "" || len(nonce) > auth.MaxNonceLen {
		return false
	}
	for i := 0; i < len(nonce); i++ {
		if nonce[i] < 0x21 || nonce[i] > 0x7e {
			return false
		}
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}
