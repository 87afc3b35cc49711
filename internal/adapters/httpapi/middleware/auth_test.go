package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func sessionToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func newAuthRouter(required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := func(c *gin.Context) {
		ident := CurrentIdentity(c)
		if ident == nil {
			c.JSON(http.StatusOK, gin.H{"userId": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": ident.UserID, "email": ident.Email})
	}

	if required {
		r.GET("/me", SessionAuth(testSecret), handler)
	} else {
		r.GET("/me", OptionalSession(testSecret), handler)
	}
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuthResolvesIdentity(t *testing.T) {
	r := newAuthRouter(true)
	token := sessionToken(t, testSecret, jwt.MapClaims{
		"sub":        "user_1",
		"email":      "ada@example.com",
		"first_name": "Ada",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userId":"user_1"`)
	require.Contains(t, w.Body.String(), `"email":"ada@example.com"`)
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(true)

	w := get(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsWrongKey(t *testing.T) {
	r := newAuthRouter(true)
	token := sessionToken(t, []byte("some-other-secret"), jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := get(r, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter(true)
	token := sessionToken(t, testSecret, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w := get(r, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsTokenWithoutSubject(t *testing.T) {
	r := newAuthRouter(true)
	token := sessionToken(t, testSecret, jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := get(r, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalSessionAllowsAnonymous(t *testing.T) {
	r := newAuthRouter(false)

	w := get(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userId":""`)
}

func TestOptionalSessionResolvesWhenPresent(t *testing.T) {
	r := newAuthRouter(false)
	token := sessionToken(t, testSecret, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userId":"user_1"`)
}
