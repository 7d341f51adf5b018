package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/store"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users    store.UserRepository
	sessions *SessionManager
}

// NewAuthHandler creates a new handler for the auth endpoints.
func NewAuthHandler(users store.UserRepository, sessions *SessionManager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

type loginPageData struct {
	Error string
}

// ShowLogin renders the login page.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "login.html", loginPageData{})
}

// Login verifies submitted credentials. A bad username or password renders
// the login page again with an inline error rather than redirecting.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		renderPage(w, http.StatusBadRequest, "login.html", loginPageData{Error: "Username and password are required"})
		return
	}

	user, err := h.users.FindByUsername(r.Context(), username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Printf("Error looking up user %q at login: %v", username, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		renderPage(w, http.StatusUnauthorized, "login.html", loginPageData{Error: "❌ Invalid Username or Password"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		renderPage(w, http.StatusUnauthorized, "login.html", loginPageData{Error: "❌ Invalid Username or Password"})
		return
	}

	token, err := h.sessions.Issue(user.Username)
	if err != nil {
		log.Printf("Error issuing session for %q: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register creates a new account and sends the user to the login page.
// A taken username renders an inline error and leaves the existing record
// untouched.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		renderPage(w, http.StatusBadRequest, "login.html", loginPageData{Error: "Username and password are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for %q: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	err = h.users.CreateUser(r.Context(), &domain.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			renderPage(w, http.StatusConflict, "login.html", loginPageData{Error: "❌ User already exists"})
			return
		}
		log.Printf("Error creating user %q: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
