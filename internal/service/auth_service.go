package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
	"github.com/anthonypiegaro/OA-Reporting-Backend/utilities"
)

// EventUserRegistered is published on the global bus after a successful
// registration, with the created user as payload.
const EventUserRegistered = "user.registered"

// AuthService interface
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService initializes authentication service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || user.Password == "" {
		return ErrInvalidCredentials
	}

	// Self-registration always creates a regular account. Staff status is
	// set directly on the user record by an administrator.
	user.IsStaff = false

	if existing, err := s.userRepo.GetUserByEmail(user.Email); err == nil && existing != nil {
		return ErrEmailInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.userRepo.CreateUser(user); err != nil {
		return err
	}

	utilities.GlobalEventBus.Publish(EventUserRegistered, *user)
	return nil
}

func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Strip the hash before the user leaves the service.
	user.Password = ""
	return user, nil
}
