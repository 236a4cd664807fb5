package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/snapvault/photo-api/internal/api/middleware"
	"github.com/snapvault/photo-api/internal/api/shared"
	"github.com/snapvault/photo-api/internal/domain"
	"github.com/snapvault/photo-api/internal/platform/logger"
	"github.com/snapvault/photo-api/internal/redact"
	"github.com/snapvault/photo-api/internal/service/auth"
	"github.com/snapvault/photo-api/internal/store"
)

// AuthHandler handles registration, login, and token refresh.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /register. On success it returns the public
// profile only; the cleartext password is hashed before storage and never
// logged.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	// Friendly pre-check. The users.email unique constraint remains the
	// authoritative guard; a concurrent duplicate still surfaces below.
	if _, err := h.userStore.GetByEmail(r.Context(), req.Email); err == nil {
		shared.RespondFail(w, r, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check email availability", "error", redact.Error(err))
		shared.RespondError(w, r, http.StatusInternalServerError,
			"Exception thrown in database when creating a new user")
		return
	}

	user, err := domain.NewUser(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	hash, err := h.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondError(w, r, http.StatusInternalServerError,
			"Exception thrown when hashing the password")
		return
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondFail(w, r, http.StatusConflict, "Email already registered")
			return
		}
		log.Error("failed to create user", "error", redact.Error(err))
		shared.RespondError(w, r, http.StatusInternalServerError,
			"Exception thrown in database when creating a new user")
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))

	shared.RespondSuccess(w, r, ProfileResponse{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// Login handles POST /login. An unknown email and a wrong password return
// the same generic failure so callers cannot probe for registered
// addresses.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondFail(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondFail(w, r, http.StatusUnprocessableEntity, shared.ValidationErrors(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondFail(w, r, http.StatusUnauthorized, "Authentication failed")
			return
		}
		log.Error("failed to get user by email", "error", redact.Error(err))
		shared.RespondError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondFail(w, r, http.StatusUnauthorized, "Authentication failed")
		return
	}

	identity := auth.Identity{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName(),
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), identity)
	if err != nil {
		log.Error("failed to generate access token",
			"error", err,
			"user_id", user.ID)
		shared.RespondError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), identity)
	if err != nil {
		log.Error("failed to generate refresh token",
			"error", err,
			"user_id", user.ID)
		shared.RespondError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))

	shared.RespondSuccess(w, r, TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh handles POST /refresh. The refresh token arrives as a bearer
// credential and is validated against the refresh secret exclusively; the
// timestamp claims are dropped and a fresh access token is issued with the
// same identity.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	token, err := middleware.BearerToken(r)
	if err != nil {
		shared.RespondFail(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), token)
	if err != nil {
		log.Debug("refresh token rejected", "error", redact.Error(err))
		shared.RespondFail(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), claims.Identity())
	if err != nil {
		log.Error("failed to generate access token",
			"error", err,
			"user_id", claims.UserID)
		shared.RespondError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondSuccess(w, r, AccessTokenResponse{AccessToken: accessToken})
}
