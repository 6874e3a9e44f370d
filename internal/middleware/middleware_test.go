package middleware

import (
	"bytes"
	"crypto/ed25519"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/auth"
)

func key(seed byte) (address.Address, ed25519.PrivateKey) {
	s := make([]byte, ed25519.SeedSize)
	s[0] = seed
	k := ed25519.NewKeyFromSeed(s)

	var id address.Address
	copy(id[:], k.Public().(ed25519.PublicKey))

	return id, k
}

func TestAuthenticate(t *testing.T) {
	alice, aliceKey := key(1)
	bob, bobKey := key(2)
	body := []byte(`{"content":"hi"}`)
	now := time.Unix(1700000000, 0)
	ts := now.Unix()
	msg := auth.Message(http.MethodPost, "/v1/messages", ts, "n-1", body)

	tt := []struct {
		name      string
		headers   []string
		nonce     string
		timestamp string
		code      int
		signers   []address.Address
	}{
		{name: "anonymous", code: http.StatusOK},
		{name: "single", headers: []string{auth.Sign(aliceKey, msg)}, code: http.StatusOK, signers: []address.Address{alice}},
		{name: "multiple", headers: []string{auth.Sign(aliceKey, msg), auth.Sign(bobKey, msg)}, code: http.StatusOK, signers: []address.Address{alice, bob}},
		{name: "forged", headers: []string{auth.Sign(aliceKey, []byte("other"))}, code: http.StatusUnauthorized},
		{name: "body_only", headers: []string{auth.Sign(aliceKey, body)}, code: http.StatusUnauthorized},
		{name: "other_path", headers: []string{auth.Sign(aliceKey, auth.Message(http.MethodPost, "/v1/tips", ts, "n-1", body))}, code: http.StatusUnauthorized},
		{name: "other_nonce", headers: []string{auth.Sign(aliceKey, msg)}, nonce: "n-2", code: http.StatusUnauthorized},
		{name: "missing_nonce", headers: []string{auth.Sign(aliceKey, msg)}, nonce: "-", code: http.StatusUnauthorized},
		{name: "missing_timestamp", headers: []string{auth.Sign(aliceKey, msg)}, timestamp: "-", code: http.StatusUnauthorized},
		{
			name:      "stale",
			headers:   []string{auth.Sign(aliceKey, auth.Message(http.MethodPost, "/v1/messages", ts-600, "n-1", body))},
			timestamp: strconv.FormatInt(ts-600, 10),
			code:      http.StatusUnauthorized,
		},
		{
			name:      "future",
			headers:   []string{auth.Sign(aliceKey, auth.Message(http.MethodPost, "/v1/messages", ts+600, "n-1", body))},
			timestamp: strconv.FormatInt(ts+600, 10),
			code:      http.StatusUnauthorized,
		},
		{
			name:      "within_window",
			headers:   []string{auth.Sign(aliceKey, auth.Message(http.MethodPost, "/v1/messages", ts-60, "n-1", body))},
			timestamp: strconv.FormatInt(ts-60, 10),
			code:      http.StatusOK,
			signers:   []address.Address{alice},
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var got auth.Signers
			var read []byte

			h := authenticate(func() time.Time { return now }, 5*time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = auth.SignersFromContext(r.Context())
				read, _ = ioutil.ReadAll(r.Body)
			}))

			r := httptest.NewRequest(http.MethodPost, "/v1/messages", bytes.NewReader(body))
			for _, v := range tc.headers {
				r.Header.Add(auth.SignatureHeader, v)
			}
			if len(tc.headers) > 0 {
				setHeader(r, auth.NonceHeader, tc.nonce, "n-1")
				setHeader(r, auth.TimestampHeader, tc.timestamp, strconv.FormatInt(ts, 10))
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			require.Equal(t, tc.code, w.Code)
			if tc.code != http.StatusOK {
				return
			}

			assert.Equal(t, body, read)
			assert.Equal(t, len(tc.signers), got.Len())
			for _, v := range tc.signers {
				assert.True(t, got.Contains(v))
			}
			if len(tc.signers) > 0 {
				assert.Equal(t, "n-1", got.Nonce())
			}
		})
	}
}

// setHeader sets v, or def when v is empty. "-" leaves the header unset.
func setHeader(r *http.Request, key, v, def string) {
	switch v {
	case "-":
	case "":
		r.Header.Set(key, def)
	default:
		r.Header.Set(key, v)
	}
}

func TestValidNonce(t *testing.T) {
	assert.True(t, validNonce("3f2b8c1e-7d4a-4e0b-9a61-2c5d8e9f0a1b"))
	assert.False(t, validNonce(""))
	assert.False(t, validNonce("a b"))
	assert.False(t, validNonce("a\nb"))
	assert.False(t, validNonce(strings.Repeat("x", auth.MaxNonceLen+1)))
}

func TestCached(t *testing.T) {
	calls := 0
	status := http.StatusOK

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
		_, _ = w.Write([]byte("body"))
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/a", nil))
		assert.Equal(t, "body", w.Body.String())
	}
	assert.Equal(t, 1, calls)

	status = http.StatusNotFound
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/b", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestBodyLimiter(t *testing.T) {
	h := BodyLimiter(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := ioutil.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("12345"))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("1234"))))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogger(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}
