package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_GenerateAndParse(t *testing.T) {
	m := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := m.Generate(ctx, "henkobit", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sess, err := m.Parse(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "henkobit", sess.Usuario)
	assert.True(t, sess.EsAdmin)
}

func TestSession_NonAdmin(t *testing.T) {
	m := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := m.Generate(ctx, "operario", false)
	assert.NoError(t, err)

	sess, err := m.Parse(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "operario", sess.Usuario)
	assert.False(t, sess.EsAdmin)
}

func TestSession_Expired(t *testing.T) {
	m := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := m.Generate(ctx, "henkobit", true)
	assert.NoError(t, err)

	sess, err := m.Parse(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, sess)
}

func TestSession_InvalidToken(t *testing.T) {
	m := New("secret", time.Minute)
	ctx := context.Background()

	sess, err := m.Parse(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, sess)
}

func TestSession_WrongSecret(t *testing.T) {
	m1 := New("secret1", time.Minute)
	m2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := m1.Generate(ctx, "admin", true)
	assert.NoError(t, err)

	sess, err := m2.Parse(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, sess)
}

func TestSession_GetTokenFromRequest(t *testing.T) {
	m := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name        string
		cookie      *http.Cookie
		expectError bool
	}{
		{"ValidCookie", &http.Cookie{Name: CookieName, Value: "tok123"}, false},
		{"NoCookie", nil, true},
		{"EmptyValue", &http.Cookie{Name: CookieName, Value: ""}, true},
		{"WrongName", &http.Cookie{Name: "other", Value: "tok123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			token, err := m.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "tok123", token)
			}
		})
	}
}

func TestSession_SetAndClearCookie(t *testing.T) {
	m := New("secret", time.Hour)

	rr := httptest.NewRecorder()
	m.SetCookie(rr, "tok123")

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "tok123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rr = httptest.NewRecorder()
	m.ClearCookie(rr)
	cookies = rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
