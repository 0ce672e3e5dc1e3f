package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
	minPhoneDigits    = 10
)

var (
	ErrNameRequired       = fmt.Errorf("%w: name is required", apperr.ErrValidation)
	ErrInvalidEmail       = fmt.Errorf("%w: enter a valid email address", apperr.ErrValidation)
	ErrInvalidPhone       = fmt.Errorf("%w: phone number must have at least %d digits", apperr.ErrValidation, minPhoneDigits)
	ErrWeakPassword       = fmt.Errorf("%w: password must be at least %d characters and contain an uppercase letter", apperr.ErrValidation, minPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("%w: password must be at most %d bytes", apperr.ErrValidation, maxPasswordBytes)
	ErrPasswordUnchanged  = fmt.Errorf("%w: new password must differ from the current one", apperr.ErrValidation)
	ErrEmailTaken         = fmt.Errorf("%w: an account with this email already exists", apperr.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthenticated)
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// IAccountUseCase covers signup, login and the profile edits that touch the session.
//
// Passwords are stored as bcrypt hashes. Accounts created before hashing still hold the
// plaintext; they are verified once and rehashed on that login.

type IAccountUseCase interface {
	Signup(ctx context.Context, in SignupInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, current, next string) error
	UpdateProfile(ctx context.Context, name, phone string) (entities.Identity, error)
}

type AccountUseCase struct {
	users     interfaces.IUserRepository
	directory interfaces.IUserDirectory
	sessions  interfaces.ISessionManager
	cost      int
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(users interfaces.IUserRepository, directory interfaces.IUserDirectory, sessions interfaces.ISessionManager) *AccountUseCase {
	return &AccountUseCase{users: users, directory: directory, sessions: sessions, cost: bcrypt.DefaultCost}
}

func (u *AccountUseCase) Signup(ctx context.Context, in SignupInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	email := entities.NormalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)
	switch {
	case name == "":
		return entities.User{}, ErrNameRequired
	case !emailPattern.MatchString(email):
		return entities.User{}, ErrInvalidEmail
	case !validPhone(phone):
		return entities.User{}, ErrInvalidPhone
	case len(in.Password) > maxPasswordBytes:
		return entities.User{}, ErrPasswordTooLong
	case !validPassword(in.Password):
		return entities.User{}, ErrWeakPassword
	}

	_, err := u.directory.FindUserByEmail(ctx, email)
	if err == nil {
		return entities.User{}, ErrEmailTaken
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return entities.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}
	created, err := u.users.Create(ctx, entities.User{
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Printf("[account][usecase] signup failed email=%s err=%v", email, err)
		return entities.User{}, err
	}
	log.Printf("[account][usecase] signup success email=%s record_key=%s", email, created.RecordKey)
	return created, nil
}

func (u *AccountUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = entities.NormalizeEmail(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	usr, err := u.directory.FindUserByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return entities.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return entities.Session{}, err
	}
	if !u.verifyPassword(ctx, usr, password) {
		log.Printf("[account][usecase] login rejected email=%s", email)
		return entities.Session{}, ErrInvalidCredentials
	}

	return u.sessions.Establish(ctx, entities.Identity{Email: usr.Email, Name: usr.Name, Phone: usr.Phone})
}

func (u *AccountUseCase) Logout(ctx context.Context) error {
	return u.sessions.Clear(ctx)
}

func (u *AccountUseCase) ChangePassword(ctx context.Context, current, next string) error {
	me, err := u.sessions.RequireIdentity(ctx)
	if err != nil {
		return err
	}
	if len(next) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if !validPassword(next) {
		return ErrWeakPassword
	}
	if current == next {
		return ErrPasswordUnchanged
	}
	usr, err := u.directory.FindUserByEmail(ctx, me.Email)
	if err != nil {
		return err
	}
	if !u.verifyPassword(ctx, usr, current) {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), u.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := u.users.UpdatePasswordHash(ctx, usr.RecordKey, string(hash)); err != nil {
		log.Printf("[account][usecase] password change failed email=%s err=%v", me.Email, err)
		return err
	}
	log.Printf("[account][usecase] password changed email=%s", me.Email)
	return nil
}

func (u *AccountUseCase) UpdateProfile(ctx context.Context, name, phone string) (entities.Identity, error) {
	me, err := u.sessions.RequireIdentity(ctx)
	if err != nil {
		return entities.Identity{}, err
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return entities.Identity{}, ErrNameRequired
	}
	if !validPhone(phone) {
		return entities.Identity{}, ErrInvalidPhone
	}
	usr, err := u.directory.FindUserByEmail(ctx, me.Email)
	if err != nil {
		return entities.Identity{}, err
	}
	if err := u.users.UpdateProfile(ctx, usr.RecordKey, name, phone); err != nil {
		return entities.Identity{}, err
	}
	return u.sessions.UpdateIdentity(ctx, name, phone)
}

func (u *AccountUseCase) verifyPassword(ctx context.Context, usr entities.User, password string) bool {
	if isBcryptHash(usr.PasswordHash) {
		return bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) == nil
	}
	if subtle.ConstantTimeCompare([]byte(usr.PasswordHash), []byte(password)) != 1 {
		return false
	}
	// Legacy plaintext record: upgrade it now that we know the password.
	if hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost); err == nil {
		if err := u.users.UpdatePasswordHash(ctx, usr.RecordKey, string(hash)); err != nil {
			log.Printf("[account][usecase] warning: legacy password rehash failed email=%s err=%v", usr.Email, err)
		}
	}
	return true
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func validPassword(p string) bool {
	if len(p) < minPasswordLength {
		return false
	}
	for _, r := range p {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func validPhone(p string) bool {
	digits := 0
	for _, r := range p {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits
}
