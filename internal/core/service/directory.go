package service

import (
	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

const defaultRole = "user"

type DirectoryService struct {
	users *store.Collection[domain.User]
}

func NewDirectoryService(users *store.Collection[domain.User]) *DirectoryService {
	return &DirectoryService{users: users}
}

func (s *DirectoryService) ListUsers() []domain.User {
	return s.users.List()
}

func (s *DirectoryService) GetUser(id int) (domain.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *DirectoryService) CreateUser(name, email, role string) domain.User {
	if role == "" {
		role = defaultRole
	}
	return s.users.Append(func(id int) domain.User {
		return domain.User{ID: id, Name: name, Email: email, Role: role}
	})
}
