package user

import (
	"errors"
	"time"

	"hospitality/database/repository/user"
	"hospitality/models"
	"hospitality/services/notification"
	"hospitality/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials covers both unknown email and wrong password, so a
// failed signin never reveals which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService owns platform accounts: signup with email verification, and
// password signin issuing a JWT.
type UserService interface {
	// Register creates an unverified account and emails a verification code.
	Register(fullName, email, password string) (*models.User, error)
	// VerifyOTP confirms the emailed code and marks the account verified.
	VerifyOTP(email, code string) error
	// Authenticate checks credentials and returns a signed token. Unverified
	// accounts cannot sign in.
	Authenticate(email, password string) (*models.AuthResponse, error)
	// GetUser retrieves an account by ID.
	GetUser(id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	repo     userRepo.UserRepository
	notifier notification.Notifier
}

// NewUserService creates a UserService.
func NewUserService(repo userRepo.UserRepository, notifier notification.Notifier) *DefaultUserService {
	return &DefaultUserService{repo: repo, notifier: notifier}
}

// Register creates the account and kicks off email verification.
func (s *DefaultUserService) Register(fullName, email, password string) (*models.User, error) {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Verified:     false,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	otp, err := utils.GenerateNumericOTP(6)
	if err != nil {
		return nil, err
	}
	if err := utils.StoreOTP(user.ID, otp); err != nil {
		return nil, err
	}
	if err := s.notifier.SendVerificationCode(user.Email, user.FullName, otp); err != nil {
		utils.GetLogger().Error("Failed to send verification code",
			zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

// VerifyOTP confirms the emailed code and marks the account verified.
func (s *DefaultUserService) VerifyOTP(email, code string) error {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}

	ok, err := utils.VerifyOTPRecord(user.ID, code)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrInvalidOTP
	}
	return s.repo.MarkVerified(user.ID)
}

// Authenticate checks credentials and returns a signed token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Verified {
		return nil, models.ErrUserNotVerified
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Token:    token,
	}, nil
}

// GetUser retrieves an account by ID.
func (s *DefaultUserService) GetUser(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}
