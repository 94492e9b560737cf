package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Name     string
	Username string
	Password string
	Role     models.Role
}

func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, utils.ValidationError("username and password are required")
	}
	if len(in.Password) < 6 {
		return nil, utils.ValidationError("password must be at least 6 characters")
	}
	if !in.Role.Valid() {
		return nil, utils.ValidationError("invalid role %q", in.Role)
	}

	var existing models.User
	err := s.DB.Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return nil, utils.ConflictError("username %q already taken", in.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.InternalError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	user := models.User{
		Name:     in.Name,
		Username: in.Username,
		Password: string(hash),
		Role:     in.Role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, utils.WrapDBError(err, "user")
	}
	return &user, nil
}

// Login verifies credentials and issues a signed token carrying the caller
// identity the middleware will trust downstream.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, utils.ValidationError("invalid username or password")
		}
		return "", nil, utils.InternalError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, utils.ValidationError("invalid username or password")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, utils.InternalError(err)
	}
	return token, &user, nil
}
