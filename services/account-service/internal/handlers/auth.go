package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/m-alharbi/aqarbook/libs/auth"
	"github.com/m-alharbi/aqarbook/libs/db"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/account-service/internal/sessions"
	"github.com/m-alharbi/aqarbook/services/account-service/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	signer      TokenSigner
	pool        *db.Pool
	users       *storage.UserRepository
	outbox      *outbox.Repository
	refreshRepo *sessions.RefreshRepository
	refreshTTL  time.Duration
}

func NewAuthHandler(
	signer TokenSigner,
	pool *db.Pool,
	users *storage.UserRepository,
	outboxRepo *outbox.Repository,
	refreshRepo *sessions.RefreshRepository,
	refreshTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		signer:      signer,
		pool:        pool,
		users:       users,
		outbox:      outboxRepo,
		refreshRepo: refreshRepo,
		refreshTTL:  refreshTTL,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Locale   string `json:"locale"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type meResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Locale string `json:"locale,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(strings.ToLower(req.Role))
	if req.Email == "" || req.Password == "" || req.Name == "" {
		http.Error(w, "email, password and name required", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = "user"
	}
	if req.Role != "user" && req.Role != "owner" {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user := storage.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hash,
		Role:         req.Role,
		Locale:       strings.TrimSpace(req.Locale),
	}
	ctx := r.Context()
	tx, err := h.pool.Begin(ctx)
	if err != nil {
		http.Error(w, "failed to start transaction", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.users.CreateTx(ctx, tx, user); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create user", http.StatusInternalServerError)
		return
	}

	createdPayload, err := json.Marshal(map[string]any{
		"user_id":    user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		http.Error(w, "failed to marshal user event", http.StatusInternalServerError)
		return
	}
	if err := h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "user",
		AggregateID:   user.ID,
		EventType:     "account.user.created.v1",
		Payload:       createdPayload,
	}); err != nil {
		http.Error(w, "failed to enqueue user event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit transaction", http.StatusInternalServerError)
		return
	}

	token, err := issueJWT(user, h.signer)
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}
	refreshToken, err := h.issueRefreshToken(ctx, user.ID)
	if err != nil {
		http.Error(w, "failed to issue refresh token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(loginResponse{
		AccessToken:  token,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to lookup user", http.StatusInternalServerError)
		return
	}

	if err := verifyPassword(user.PasswordHash, req.Password); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := issueJWT(user, h.signer)
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}
	refreshToken, err := h.issueRefreshToken(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "failed to issue refresh token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(loginResponse{
		AccessToken:  token,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.RefreshToken = strings.TrimSpace(req.RefreshToken)
	if req.RefreshToken == "" {
		http.Error(w, "refresh_token required", http.StatusBadRequest)
		return
	}

	hash := sessions.HashToken(req.RefreshToken)
	tokenRecord, err := h.refreshRepo.GetByHash(r.Context(), hash)
	if err != nil {
		if sessions.IsNotFound(err) {
			http.Error(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to lookup refresh token", http.StatusInternalServerError)
		return
	}
	if tokenRecord.RevokedAt != nil || tokenRecord.ExpiresAt.Before(time.Now()) {
		http.Error(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetByID(r.Context(), tokenRecord.UserID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to lookup user", http.StatusInternalServerError)
		return
	}

	if err := h.refreshRepo.Revoke(r.Context(), tokenRecord.ID); err != nil {
		http.Error(w, "failed to rotate refresh token", http.StatusInternalServerError)
		return
	}

	newRefreshToken, err := h.issueRefreshToken(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "failed to issue refresh token", http.StatusInternalServerError)
		return
	}

	newAccessToken, err := issueJWT(user, h.signer)
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(loginResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
		TokenType:    "Bearer",
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.RefreshToken = strings.TrimSpace(req.RefreshToken)
	if req.RefreshToken == "" {
		http.Error(w, "refresh_token required", http.StatusBadRequest)
		return
	}

	hash := sessions.HashToken(req.RefreshToken)
	tokenRecord, err := h.refreshRepo.GetByHash(r.Context(), hash)
	if err != nil {
		if sessions.IsNotFound(err) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Error(w, "failed to lookup refresh token", http.StatusInternalServerError)
		return
	}

	if tokenRecord.RevokedAt == nil {
		if err := h.refreshRepo.Revoke(r.Context(), tokenRecord.ID); err != nil {
			http.Error(w, "failed to revoke refresh token", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") || len(strings.TrimSpace(authHeader)) <= len("Bearer ") {
		http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	claims, err := h.signer.Verify(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.Sub)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to lookup user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(meResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Locale: user.Locale,
	})
}

func issueJWT(user storage.User, signer TokenSigner) (string, error) {
	now := time.Now()
	return signer.Sign(auth.Claims{
		Sub:    user.ID,
		Role:   user.Role,
		Locale: user.Locale,
		Iat:    now.Unix(),
		Exp:    now.Add(1 * time.Hour).Unix(),
	})
}

func (h *AuthHandler) issueRefreshToken(ctx context.Context, userID string) (string, error) {
	raw, err := newRefreshToken()
	if err != nil {
		return "", err
	}
	expiresAt := time.Now().Add(h.refreshTTL)
	if _, err := h.refreshRepo.Create(ctx, userID, raw, expiresAt); err != nil {
		return "", err
	}
	return raw, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash string, raw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
}
