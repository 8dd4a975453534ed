package service

import (
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
)

// UserSummary is the minimal projection used by athlete pickers.
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserService interface {
	GetAllUsers() ([]UserSummary, error)
	GetUserByID(id uint) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers() ([]UserSummary, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}
	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, UserSummary{
			ID:   user.ID,
			Name: user.FirstName + " " + user.LastName,
		})
	}
	return summaries, nil
}

func (s *userService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	user.Password = ""
	return user, nil
}
