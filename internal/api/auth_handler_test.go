package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/snapvault/photo-api/internal/api/shared"
	"github.com/snapvault/photo-api/internal/mocks"
	"github.com/snapvault/photo-api/internal/service/auth"
)

const (
	testAccessSecret  = "access-secret-which-is-32-chars!"
	testRefreshSecret = "refresh-secret-which-is-32-chars"
)

type authEnv struct {
	handler *AuthHandler
	users   *mocks.UserStore
	jwt     auth.JWTService
	hasher  auth.PasswordHasher
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()

	users := mocks.NewUserStore()
	jwtService := auth.NewTestJWTService(
		testAccessSecret, testRefreshSecret,
		15*time.Minute, 24*time.Hour,
		time.Now,
	)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	return &authEnv{
		handler: NewAuthHandler(users, jwtService, hasher, nil),
		users:   users,
		jwt:     jwtService,
		hasher:  hasher,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	handler(rec, r)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) shared.Envelope {
	t.Helper()
	var env shared.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func (e *authEnv) register(t *testing.T, email, password string) {
	t.Helper()
	rec := postJSON(t, e.handler.Register, "/register", RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: "Ann",
		LastName:  "Andersson",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("returns public profile without credentials", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)

		rec := postJSON(t, env.handler.Register, "/register", RegisterRequest{
			Email:     "ann@example.com",
			Password:  "hunter2",
			FirstName: "Ann",
			LastName:  "Andersson",
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, shared.StatusSuccess, body.Status)

		data, ok := body.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ann@example.com", data["email"])
		assert.Equal(t, "Ann", data["first_name"])
		assert.Equal(t, "Andersson", data["last_name"])
		assert.NotContains(t, rec.Body.String(), "hunter2")
		assert.NotContains(t, rec.Body.String(), "password")

		assert.Equal(t, 1, env.users.Count())
	})

	t.Run("stores a hash, not the cleartext password", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)
		env.register(t, "ann@example.com", "hunter2")

		user, err := env.users.GetByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		assert.Empty(t, user.Password)
		assert.NotEqual(t, "hunter2", user.HashedPassword)
		assert.NoError(t, env.hasher.Compare(user.HashedPassword, "hunter2"))
	})

	t.Run("invalid fields rejected without creating a row", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			req  RegisterRequest
		}{
			{
				name: "short password",
				req: RegisterRequest{
					Email: "ann@example.com", Password: "abc",
					FirstName: "Ann", LastName: "Andersson",
				},
			},
			{
				name: "bad email",
				req: RegisterRequest{
					Email: "not-an-email", Password: "hunter2",
					FirstName: "Ann", LastName: "Andersson",
				},
			},
			{
				name: "short first name",
				req: RegisterRequest{
					Email: "ann@example.com", Password: "hunter2",
					FirstName: "An", LastName: "Andersson",
				},
			},
			{
				name: "missing last name",
				req: RegisterRequest{
					Email: "ann@example.com", Password: "hunter2",
					FirstName: "Ann",
				},
			},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				env := newAuthEnv(t)

				rec := postJSON(t, env.handler.Register, "/register", tc.req)

				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				assert.Equal(t, shared.StatusFail, decodeBody(t, rec).Status)
				assert.Equal(t, 0, env.users.Count())
			})
		}
	})

	t.Run("duplicate email conflicts without a second row", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)
		env.register(t, "ann@example.com", "hunter2")

		rec := postJSON(t, env.handler.Register, "/register", RegisterRequest{
			Email:     "ann@example.com",
			Password:  "different",
			FirstName: "Another",
			LastName:  "Person",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, shared.StatusFail, decodeBody(t, rec).Status)
		assert.Equal(t, 1, env.users.Count())
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte("{not json")))
		env.handler.Register(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues a working token pair", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)
		env.register(t, "ann@example.com", "hunter2")

		rec := postJSON(t, env.handler.Login, "/login", LoginRequest{
			Email:    "ann@example.com",
			Password: "hunter2",
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		data, ok := body.Data.(map[string]any)
		require.True(t, ok)

		accessToken, _ := data["access_token"].(string)
		refreshToken, _ := data["refresh_token"].(string)
		require.NotEmpty(t, accessToken)
		require.NotEmpty(t, refreshToken)

		claims, err := env.jwt.ValidateToken(context.Background(), accessToken)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", claims.Email)
		assert.Equal(t, "Ann Andersson", claims.DisplayName)

		_, err = env.jwt.ValidateRefreshToken(context.Background(), refreshToken)
		assert.NoError(t, err)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)
		env.register(t, "ann@example.com", "hunter2")

		unknownEmail := postJSON(t, env.handler.Login, "/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter2",
		})
		wrongPassword := postJSON(t, env.handler.Login, "/login", LoginRequest{
			Email:    "ann@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	identity := func(env *authEnv, t *testing.T) auth.Identity {
		t.Helper()
		env.register(t, "ann@example.com", "hunter2")
		user, err := env.users.GetByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		return auth.Identity{
			UserID:      user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName(),
		}
	}

	refreshWith := func(t *testing.T, env *authEnv, header string) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		env.handler.Refresh(rec, r)
		return rec
	}

	t.Run("valid refresh token yields a fresh access token", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)
		id := identity(env, t)

		refreshToken, err := env.jwt.GenerateRefreshToken(context.Background(), id)
		require.NoError(t, err)

		rec := refreshWith(t, env, "Bearer "+refreshToken)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		data, ok := decodeBody(t, rec).Data.(map[string]any)
		require.True(t, ok)
		accessToken, _ := data["access_token"].(string)
		require.NotEmpty(t, accessToken)

		claims, err := env.jwt.ValidateToken(context.Background(), accessToken)
		require.NoError(t, err)
		assert.Equal(t, id.UserID, claims.UserID)
		assert.Equal(t, id.Email, claims.Email)
		assert.Equal(t, id.DisplayName, claims.DisplayName)
	})

	t.Run("access token is not accepted as a refresh credential", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)
		id := identity(env, t)

		accessToken, err := env.jwt.GenerateToken(context.Background(), id)
		require.NoError(t, err)

		rec := refreshWith(t, env, "Bearer "+accessToken)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", decodeBody(t, rec).Data)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()
		env := newAuthEnv(t)

		rec := refreshWith(t, env, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization required", decodeBody(t, rec).Data)
	})
}
