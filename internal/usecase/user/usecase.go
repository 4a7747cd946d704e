package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "activity-report-service/internal/domain/user"
	"activity-report-service/pkg/hash"

	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)

	if in.Username == "" || in.Email == "" || in.FullName == "" {
		return nil, fmt.Errorf("%w: username, email and full_name are required", ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if in.Role == "" {
		in.Role = domain.RoleStaff
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	if _, err := u.repo.GetByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := u.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hash.Password(in.Password)
	if err != nil {
		return nil, err
	}

	usr := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		FullName:     in.FullName,
		Role:         in.Role,
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// Authenticate collapses unknown-username and wrong-password into one
// error so login attempts cannot probe for usernames.
func (u *Usecase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	usr, err := u.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	if !hash.Verify(password, usr.PasswordHash) {
		return nil, domain.ErrBadCredentials
	}
	return usr, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.User, error) {
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.User, error) {
	return u.repo.List(ctx)
}

// UpdateProfileInput uses pointer fields so "omitted" and "set" are
// distinguishable. Role is deliberately absent: it is immutable here.
type UpdateProfileInput struct {
	ID       uint64
	FullName *string
	Email    *string
	Password *string
}

func (u *Usecase) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error) {
	usr, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full_name must not be empty", ErrInvalidInput)
		}
		usr.FullName = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
		}
		if email != usr.Email {
			if _, err := u.repo.GetByEmail(ctx, email); err == nil {
				return nil, domain.ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			usr.Email = email
		}
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
		}
		hashed, err := hash.Password(*in.Password)
		if err != nil {
			return nil, err
		}
		usr.PasswordHash = hashed
	}

	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}
