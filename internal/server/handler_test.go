package server

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/auth"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/service"
	"github.com/chumchon-net/chumchon/internal/service/mock"
)

func key(seed byte) (address.Address, ed25519.PrivateKey) {
	s := make([]byte, ed25519.SeedSize)
	s[0] = seed
	k := ed25519.NewKeyFromSeed(s)

	var id address.Address
	copy(id[:], k.Public().(ed25519.PublicKey))

	return id, k
}

func setup(t *testing.T) (*mock.MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := mock.NewMockService(ctrl)
	router := chi.NewRouter()
	SetupRouter(s, router, time.Minute)

	return s, router
}

func do(h http.Handler, method, path string, body []byte, keys ...ed25519.PrivateKey) *httptest.ResponseRecorder {
	r := signed(httptest.NewRequest(method, path, bytes.NewReader(body)), body, keys...)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// signed adds a fresh nonce, the current timestamp and one signature per key.
func signed(r *http.Request, body []byte, keys ...ed25519.PrivateKey) *http.Request {
	if len(keys) == 0 {
		return r
	}

	nonce := uuid.NewString()
	ts := time.Now().Unix()
	r.Header.Set(auth.NonceHeader, nonce)
	r.Header.Set(auth.TimestampHeader, strconv.FormatInt(ts, 10))

	msg := auth.Message(r.Method, r.URL.Path, ts, nonce, body)
	for _, k := range keys {
		r.Header.Add(auth.SignatureHeader, auth.Sign(k, msg))
	}
	return r
}

func Test_createUserProfile(t *testing.T) {
	s, h := setup(t)
	owner, ownerKey := key(1)
	created := address.Address{42}

	s.EXPECT().CreateUserProfile(gomock.Any(), service.CreateUserProfileRequest{
		Owner:       owner,
		Username:    "alice",
		Bio:         "gm",
		ShowBalance: true,
	}).DoAndReturn(func(ctx context.Context, _ service.CreateUserProfileRequest) (address.Address, error) {
		assert.True(t, auth.SignersFromContext(ctx).Contains(owner))
		return created, nil
	})

	body := []byte(fmt.Sprintf(`{"owner":%q,"username":"alice","bio":"gm","show_balance":true}`, owner))
	w := do(h, http.MethodPost, "/v1/profiles", body, ownerKey)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"address":%q}`, created), w.Body.String())
}

func Test_updateUserProfile(t *testing.T) {
	s, h := setup(t)
	owner, ownerKey := key(1)

	s.EXPECT().UpdateUserProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r service.UpdateUserProfileRequest) error {
			assert.Equal(t, owner, r.Owner)
			assert.Nil(t, r.ProfilePictureURL)
			return nil
		},
	)

	w := do(h, http.MethodPut, fmt.Sprintf("/v1/profiles/%s", owner), []byte(`{"username":"bob"}`), ownerKey)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_forgedSignature(t *testing.T) {
	_, h := setup(t)
	_, ownerKey := key(1)

	r := signed(httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewReader([]byte(`{}`))), []byte(`{"name":"x"}`), ownerKey)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_signatureBoundToPath(t *testing.T) {
	_, h := setup(t)
	_, ownerKey := key(1)
	message := address.Address{9}
	body := []byte(`{"amount":10}`)

	original := signed(httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v1/messages/%s/tips", message), bytes.NewReader(body)), body, ownerKey)

	r := httptest.NewRequest(http.MethodPost, "/v1/escrows", bytes.NewReader(body))
	r.Header = original.Header.Clone()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_replayedRequest(t *testing.T) {
	s, h := setup(t)
	_, ownerKey := key(1)
	message := address.Address{9}
	path := fmt.Sprintf("/v1/messages/%s/tips", message)
	body := []byte(`{"amount":10}`)

	var nonces []string
	s.EXPECT().TipMessage(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ service.TipMessageRequest) error {
		nonces = append(nonces, auth.SignersFromContext(ctx).Nonce())
		if len(nonces) > 1 {
			return errs.ErrReplayedRequest
		}
		return nil
	}).Times(2)

	original := signed(httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body)), body, ownerKey)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, original)
	require.Equal(t, http.StatusNoContent, w.Code)

	replay := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	replay.Header = original.Header.Clone()
	w = httptest.NewRecorder()
	h.ServeHTTP(w, replay)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.Len(t, nonces, 2)
	assert.Equal(t, nonces[0], nonces[1])
	assert.Equal(t, original.Header.Get(auth.NonceHeader), nonces[0])
}

func Test_badRequest(t *testing.T) {
	_, h := setup(t)

	tt := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "address", method: http.MethodGet, path: "/v1/groups/nope"},
		{name: "json", method: http.MethodPost, path: "/v1/groups", body: `{`},
		{name: "unknown_field", method: http.MethodPost, path: "/v1/challenges", body: `{"winner":"x"}`},
		{name: "amount", method: http.MethodPost, path: fmt.Sprintf("/v1/messages/%s/tips", address.Address{1}), body: `{"amount":-1}`},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := do(h, tc.method, tc.path, []byte(tc.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_errorMapping(t *testing.T) {
	group := address.Address{7}

	tt := []struct {
		name string
		err  error
		code int
		body string
	}{
		{name: "not_found", err: fmt.Errorf("%w: gone", errs.ErrNotFound), code: http.StatusNotFound, body: `"code":"NotFound"`},
		{name: "validation", err: errs.ErrNameTooLong, code: http.StatusBadRequest, body: `"category":"validation"`},
		{name: "authorization", err: errs.ErrNotGroupMember, code: http.StatusForbidden, body: `"code":"NotGroupMember"`},
		{name: "precondition", err: errs.ErrInviteUsed, code: http.StatusConflict, body: `"code":"InviteUsed"`},
		{name: "external", err: errs.ErrInsufficientTokenBalance, code: http.StatusUnprocessableEntity, body: `"category":"external"`},
		{name: "internal", err: errors.New("disk on fire"), code: http.StatusInternalServerError, body: `"internal error"`},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, h := setup(t)
			s.EXPECT().GetGroup(gomock.Any(), group).Return(nil, tc.err)

			w := do(h, http.MethodGet, fmt.Sprintf("/v1/groups/%s", group), nil)

			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func Test_getInvite(t *testing.T) {
	s, h := setup(t)
	invite := address.Address{9}

	tt := []struct {
		name   string
		invite entities.Invite
		status string
	}{
		{name: "active", invite: entities.Invite{Code: "c", MaxUses: 2, Uses: 1, ExpiresAt: time.Now().Add(time.Hour).Unix()}, status: "active"},
		{name: "exhausted", invite: entities.Invite{Code: "c", MaxUses: 2, Uses: 2, ExpiresAt: time.Now().Add(time.Hour).Unix()}, status: "exhausted"},
		{name: "expired", invite: entities.Invite{Code: "c", MaxUses: 2, ExpiresAt: time.Now().Add(-time.Hour).Unix()}, status: "expired"},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s.EXPECT().GetInvite(gomock.Any(), invite).Return(&tc.invite, nil)

			w := do(h, http.MethodGet, fmt.Sprintf("/v1/invites/%s", invite), nil)
			require.Equal(t, http.StatusOK, w.Code)

			var got Invite
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.invite.Uses, got.Uses)
		})
	}
}

func Test_useInvite(t *testing.T) {
	s, h := setup(t)
	member, memberKey := key(3)
	group := address.Address{5}

	s.EXPECT().UseInvite(gomock.Any(), service.UseInviteRequest{
		Group:  group,
		Code:   "WELCOME",
		Member: member,
	}).Return(address.Address{6}, nil)

	body := []byte(fmt.Sprintf(`{"member":%q}`, member))
	w := do(h, http.MethodPost, fmt.Sprintf("/v1/groups/%s/invites/WELCOME/use", group), body, memberKey)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_listSubmissions_Cached(t *testing.T) {
	s, h := setup(t)
	challenge := address.Address{11}

	s.EXPECT().ListSubmissions(gomock.Any(), challenge).Return([]*entities.MemeSubmission{
		{Challenge: challenge, Submitter: address.Address{1}, Votes: 3, SubmittedAt: 10},
		{Challenge: challenge, Submitter: address.Address{2}, Votes: 1, SubmittedAt: 5},
	}, nil).Times(1)

	path := fmt.Sprintf("/v1/challenges/%s/submissions", challenge)
	for i := 0; i < 2; i++ {
		w := do(h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []Submission
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.EqualValues(t, 3, got[0].Votes)
	}
}

func Test_acceptEscrow(t *testing.T) {
	s, h := setup(t)
	counterparty, counterpartyKey := key(4)
	escrow := address.Address{12}

	s.EXPECT().AcceptEscrow(gomock.Any(), service.AcceptEscrowRequest{
		Escrow:       escrow,
		Counterparty: counterparty,
	}).Return(errs.ErrEscrowExpired)

	body := []byte(fmt.Sprintf(`{"caller":%q}`, counterparty))
	w := do(h, http.MethodPost, fmt.Sprintf("/v1/escrows/%s/accept", escrow), body, counterpartyKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EscrowExpired")
}

func Test_getBalance(t *testing.T) {
	s, h := setup(t)
	owner := address.Address{13}

	s.EXPECT().GetBalance(gomock.Any(), owner).Return(uint64(1500), nil)

	w := do(h, http.MethodGet, fmt.Sprintf("/v1/accounts/%s/balance", owner), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"owner":%q,"lamports":1500}`, owner), w.Body.String())
}
