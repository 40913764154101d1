package service

import (
	"time"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

// UpdateProfile applies the user-editable fields only.
func (s *UserService) UpdateProfile(userID uint, name, targetExam string, examYear int) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if targetExam != "" {
		user.TargetExam = targetExam
	}
	if examYear > 0 {
		user.ExamYear = examYear
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateAvatar(userID uint, avatarURL string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	user.Avatar = avatarURL
	user.UpdatedAt = time.Now()
	return s.UserRepo.Update(user)
}
