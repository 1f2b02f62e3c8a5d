package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestSession_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	tests := []struct {
		name    string
		session *Session
		want    time.Time
	}{
		{"nil", nil, time.Time{}},
		{"empty", &Session{}, time.Time{}},
		{"opaque", &Session{AccessToken: "not-a-jwt"}, time.Time{}},
		{"jwt without exp", &Session{AccessToken: signedToken(t, jwt.RegisteredClaims{Subject: "u1"})}, time.Time{}},
		{"jwt", &Session{AccessToken: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})}, exp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.session.ExpiresAt()))
		})
	}
}

func TestSession_ExpiresAt_ExpiredTokenStillDecodes(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	s := &Session{AccessToken: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})}
	require.True(t, exp.Equal(s.ExpiresAt()))
}

func TestSession_Usable(t *testing.T) {
	var s *Session
	assert.False(t, s.Usable())
	assert.False(t, (&Session{}).Usable())
	assert.True(t, (&Session{AccessToken: "t"}).Usable())
}

func TestAuthResponse_Validate(t *testing.T) {
	require.ErrorIs(t, AuthResponse{Token: "t"}.Validate(), ErrMissingUserID)
	require.NoError(t, AuthResponse{ID: "u1"}.Validate())
	require.ErrorIs(t, AuthResponse{ID: "u1"}.RequireToken(), ErrMissingToken)
	require.NoError(t, AuthResponse{ID: "u1", Token: "t"}.RequireToken())
}

func TestAuthResponse_UserAndSession(t *testing.T) {
	var r AuthResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":"u1","email":"a@b.c","name":"A","token":"tok"}`), &r))

	require.Equal(t, &User{ID: "u1", Email: "a@b.c", Name: "A"}, r.User())
	require.Equal(t, &Session{AccessToken: "tok"}, r.Session())

	r.Token = ""
	require.Nil(t, r.Session())
}

func TestAuthState_CloneIsDeep(t *testing.T) {
	st := AuthState{
		User:            &User{ID: "u1", Name: "A"},
		Session:         &Session{AccessToken: "t"},
		IsAuthenticated: true,
	}
	c := st.Clone()
	c.User.Name = "B"
	c.Session.AccessToken = "x"

	require.Equal(t, "A", st.User.Name)
	require.Equal(t, "t", st.Session.AccessToken)
	require.True(t, c.IsAuthenticated)
}

func TestAuthStatus_String(t *testing.T) {
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "unauthenticated", StatusUnauthenticated.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
}

func TestUser_JSONOmitsOptionalFields(t *testing.T) {
	b, err := json.Marshal(User{ID: "u1", Email: "a@b.c", Name: "A"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1","email":"a@b.c","name":"A"}`, string(b))
}

func TestExpense_Splits(t *testing.T) {
	var e Expense
	// split_data travels as base64 of the JSON split list.
	require.NoError(t, json.Unmarshal([]byte(`{"id":"e1","split_data":"W3sidXNlcl9pZCI6ImEiLCJhbW91bnQiOjV9XQ=="}`), &e))

	splits, err := e.Splits()
	require.NoError(t, err)
	assert.Equal(t, []ExpenseSplit{{UserID: "a", Amount: 5}}, splits)

	empty, err := (&Expense{}).Splits()
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = (&Expense{SplitData: []byte("nope")}).Splits()
	require.Error(t, err)
}
