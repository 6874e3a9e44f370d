package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metaPinger struct{}

func (metaPinger) Ping(context.Context) (interface{}, error) { return "height=1", nil }
func (metaPinger) Name() string { return "meta" }

func TestHandler(t *testing.T) {
	tt := []struct {
		name    string
		pingers []Pinger
		code    int
		errors  map[string]string
	}{
		{
			name:    "ok",
			pingers: []Pinger{SubjectPinger("storage", func(context.Context) error { return nil }), metaPinger{}},
			code:    http.StatusOK,
		},
		{
			name: "failed",
			pingers: []Pinger{
				SubjectPinger("storage", func(context.Context) error { return errors.New("down") }),
				metaPinger{},
			},
			code:   http.StatusInternalServerError,
			errors: map[string]string{"storage": "down"},
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/health", nil)

			Handler(time.Second, tc.pingers...)(w, r)

			assert.Equal(t, tc.code, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "dev", resp.Version)
			assert.Equal(t, "height=1", resp.Meta["meta"])
			assert.Equal(t, tc.errors, resp.Errors)
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "dev-undefined", GetVersion())
}
