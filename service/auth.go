package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/JAYASASIREKHA/fooddelivery/middleware"
	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/peer"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

// RegisterInput carries a registration request into the identity store.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AuthResponse is the wire shape returned by register and login.
type AuthResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// AuthService is the identity store: user records, token issuance, and the
// peer-delegation fallbacks for register and login.
type AuthService struct {
	store *store.Store
	peer  *peer.Client
	log   *zap.Logger
}

func NewAuthService(st *store.Store, pc *peer.Client, log *zap.Logger) *AuthService {
	return &AuthService{store: st, peer: pc, log: log}
}

// Register creates a user. A duplicate local email fails with ErrEmailTaken.
// Otherwise registration is first offered to the peer: on peer success the
// peer's canonical record is adopted locally (password re-hashed here) and the
// peer's response returned verbatim. If the peer is unreachable, a user id is
// minted locally and the peer is informed asynchronously for eventual sync.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	if _, exists := s.store.UserByEmail(in.Email); exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	payload := peer.AuthPayload{Email: in.Email, Password: in.Password, Name: in.Name, Phone: in.Phone}
	if res, err := s.peer.RegisterUser(ctx, payload); err == nil && res.User.ID != "" {
		if _, err := s.store.AddUser(models.User{
			ID:           res.User.ID,
			Email:        res.User.Email,
			PasswordHash: string(hash),
			Name:         res.User.Name,
			Phone:        res.User.Phone,
		}); err != nil {
			return nil, err
		}
		return &AuthResponse{Message: res.Message, User: res.User, Token: res.Token}, nil
	}

	user := models.User{
		ID:           mintUserID(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
	}
	user, err = s.store.AddUser(user)
	if err != nil {
		return nil, err
	}

	// Let the peer catch up eventually; failures are ignored.
	s.peer.ReplicateUser(payload)

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Message: "User registered successfully",
		User:    user.Public(),
		Token:   token,
	}, nil
}

// Login authenticates against the local store first. A local miss — unknown
// email or a password that doesn't match the local hash — consults the peer;
// peer success synchronizes a shadow record (hash of the caller's plaintext,
// since the peer never shares hashes) and the peer's response is returned. A
// total miss fails with ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if user, ok := s.store.UserByEmail(email); ok {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
			token, err := middleware.GenerateToken(user.ID)
			if err != nil {
				return nil, err
			}
			return &AuthResponse{
				Message: "Login successful",
				User:    user.Public(),
				Token:   token,
			}, nil
		}
	}

	res, err := s.peer.LoginUser(ctx, peer.AuthPayload{Email: email, Password: password})
	if err != nil || res.User.ID == "" {
		return nil, ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.AddUser(models.User{
		ID:           res.User.ID,
		Email:        res.User.Email,
		PasswordHash: string(hash),
		Name:         res.User.Name,
		Phone:        res.User.Phone,
	}); err != nil {
		s.log.Warn("shadow user sync failed", zap.Error(err))
	}
	return &AuthResponse{Message: res.Message, User: res.User, Token: res.Token}, nil
}

// Me resolves a verified token's user id to the local user record.
func (s *AuthService) Me(userID string) (models.User, error) {
	user, ok := s.store.UserByID(userID)
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return user, nil
}

// mintUserID builds the deterministic-format local user id:
// "USER-" + epoch millis + "-" + random 4-digit suffix.
func mintUserID() string {
	return fmt.Sprintf("USER-%d-%d", time.Now().UnixMilli(), 1000+rand.Intn(9000))
}
