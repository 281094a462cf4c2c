package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo        Repository
	adminEmails []string
}

func NewService(repo Repository, adminEmails []string) *Service {
	return &Service{repo: repo, adminEmails: adminEmails}
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByEmail(email string) (User, error) {
	return s.repo.GetByEmail(email)
}

// Register creates an account with a bcrypt-hashed password. Duplicate emails
// (case-insensitive) are rejected with ErrEmailExists.
func (s *Service) Register(user User) (User, error) {
	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user.Password = string(hashed)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.IsAdmin = s.IsAdminEmail(user.Email)
	return s.repo.Create(user)
}

// Authenticate verifies credentials against the stored bcrypt hash and stamps
// the last-login time on success.
func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	user.LastLogin = time.Now().UTC().Format(time.RFC3339)
	user.IsAdmin = s.IsAdminEmail(user.Email)
	if updated, err := s.repo.Update(user.ID, user); err == nil {
		return updated, nil
	}
	return user, nil
}

// Delete removes an account; admin accounts are protected from deletion.
func (s *Service) Delete(id int) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user.IsAdmin || s.IsAdminEmail(user.Email) {
		return ErrProtected
	}
	return s.repo.Delete(id)
}

// AppendOrderSummary records a placed order on the matching account.
func (s *Service) AppendOrderSummary(email string, summary OrderSummary) error {
	return s.repo.AppendOrderSummary(email, summary)
}

// IsAdminEmail reports whether the email belongs to the admin allowlist.
// The list only marks which accounts get the role; authorization itself is
// enforced by the JWT role claim on every admin endpoint.
func (s *Service) IsAdminEmail(email string) bool {
	for _, admin := range s.adminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}
