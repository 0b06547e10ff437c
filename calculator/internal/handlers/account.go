package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"profit_engine/calculator/internal/auth"
	"profit_engine/calculator/internal/pricing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AccountHandler struct {
	accounts AccountStore
	products ProductRepository
	sessions SessionStore
}

func NewAccountHandler(a AccountStore, p ProductRepository, s SessionStore) *AccountHandler {
	return &AccountHandler{accounts: a, products: p, sessions: s}
}

// ---------------------------------------------------------------------
// 1. REGISTER (Sign Up)
// ---------------------------------------------------------------------
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	accountID, err := h.accounts.CreateAccount(r.Context(), req.Email, string(hashedPwd))
	if err != nil {
		http.Error(w, "Registration failed. Email might exist.", http.StatusConflict)
		return
	}

	// Seed the starter product so the product list is never empty. If this
	// fails the List handler re-seeds on first read.
	starter := pricing.NewProduct()
	starter.ID = uuid.New().String()
	if _, err := h.products.CreateProduct(r.Context(), accountID, starter); err != nil {
		logger.Warn().Err(err).Int("account_id", accountID).Msg("failed to seed starter product")
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Registered!"})
}

// ---------------------------------------------------------------------
// 2. LOGIN (Get Token & Save Session)
// ---------------------------------------------------------------------
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	// A. Find Account
	account, err := h.accounts.GetAccountByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if account == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	// B. Check Password
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	// C. Generate Tokens
	accessToken, err := auth.GenerateAccessToken(account.ID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.GenerateRefreshToken(account.ID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// D. Save Session
	// The refresh token must be on record for Refresh to accept it, and
	// Logout revokes it by deleting this entry.
	if err := h.sessions.SaveRefreshToken(r.Context(), account.ID, refreshToken, auth.RefreshTokenTTL); err != nil {
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// ---------------------------------------------------------------------
// 3. REFRESH (New Access Token)
// ---------------------------------------------------------------------
func (h *AccountHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		http.Error(w, "Missing Token", http.StatusUnauthorized)
		return
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		http.Error(w, "Invalid Header Format", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		http.Error(w, "Invalid Token", http.StatusUnauthorized)
		return
	}
	if claims.TokenType != "REFRESH" {
		http.Error(w, "Invalid Token Type", http.StatusUnauthorized)
		return
	}

	// The token must still be the active session. Logout deletes it, which
	// turns an otherwise valid token away here.
	stored, err := h.sessions.GetRefreshToken(r.Context(), claims.AccountID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stored == "" || stored != parts[1] {
		http.Error(w, "Session expired or revoked", http.StatusUnauthorized)
		return
	}

	newAccessToken, err := auth.GenerateAccessToken(claims.AccountID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"access_token": newAccessToken,
	})
}

// ---------------------------------------------------------------------
// 4. LOGOUT (Revoke Session)
// ---------------------------------------------------------------------
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.DeleteRefreshToken(r.Context(), accountID); err != nil {
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"status": "logged_out"})
}
