package service

import (
	"context"
	"errors"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	Users       *repository.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewAuthService(users *repository.UserRepository, jwtSecret string, expiryHours int64) *AuthService {
	return &AuthService{
		Users:       users,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Register creates an account with the given role. Students and lecturers
// share the accounts collection; the role tag is the only difference.
func (s *AuthService) Register(ctx context.Context, user *models.User, plainPassword string) error {
	existing, err := s.Users.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), 10)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if err := s.Users.Create(ctx, user); err != nil {
		return mapDuplicateEmail(err)
	}
	return nil
}

// mapDuplicateEmail converts a unique-index violation on users.email into
// ErrEmailTaken, so a racing duplicate registration reports the same error
// as the sequential existence check.
func mapDuplicateEmail(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
			Issuer:    "learning-service",
		},
		UserID: user.ID.Hex(),
		Role:   user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// UpdateProfile merges the three editable profile fields and nothing else.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, firstName, lastName, profilePicture string) (*models.User, error) {
	update := bson.M{"updated_at": time.Now()}
	if firstName != "" {
		update["first_name"] = firstName
	}
	if lastName != "" {
		update["last_name"] = lastName
	}
	if profilePicture != "" {
		update["profile_picture"] = profilePicture
	}
	if err := s.Users.Update(ctx, userID, update); err != nil {
		return nil, err
	}
	return s.Users.FindByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 10)
	if err != nil {
		return err
	}
	return s.Users.Update(ctx, userID, bson.M{"password": string(hash), "updated_at": time.Now()})
}
