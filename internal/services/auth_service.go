package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wrenfield/carelog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrShareTokenNotFound     = errors.New("share token not found")
	ErrShareTokenNotPatient   = errors.New("share token does not belong to a patient")
	ErrCareLinkExists         = errors.New("care link already exists")
	ErrSelfCareLink           = errors.New("cannot link to yourself")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	FindByShareToken(token string) (models.User, bool, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdateShareToken(userID uint, token string) error
}

type AuthCareLinkRepository interface {
	Create(link *models.CareLink) error
	Exists(clinicianID uint, patientID uint) (bool, error)
	ListPatientsByClinician(clinicianID uint) ([]models.User, error)
}

type AuthService struct {
	users AuthUserRepository
	links AuthCareLinkRepository
}

func NewAuthService(users AuthUserRepository, links AuthCareLinkRepository) *AuthService {
	return &AuthService{users: users, links: links}
}

// Register creates a new account with a fresh share token. The email
// must already be normalized and the password policy already checked.
func (service *AuthService) Register(email string, password string, role string) (models.User, error) {
	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		ShareToken:   uuid.NewString(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(currentPassword))) != nil {
		return ErrAuthCredentialsInvalid
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(hash))
}

// RotateShareToken replaces the patient's share token, invalidating any
// invite that has not been redeemed yet.
func (service *AuthService) RotateShareToken(userID uint) (string, error) {
	token := uuid.NewString()
	if err := service.users.UpdateShareToken(userID, token); err != nil {
		return "", err
	}
	return token, nil
}

// RedeemShareToken links the clinician to the patient who owns the
// token. Redeeming a token twice is an error, not a no-op.
func (service *AuthService) RedeemShareToken(clinicianID uint, token string) (models.User, error) {
	patient, found, err := service.users.FindByShareToken(strings.TrimSpace(token))
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrShareTokenNotFound
	}
	if patient.Role != models.RolePatient {
		return models.User{}, ErrShareTokenNotPatient
	}
	if patient.ID == clinicianID {
		return models.User{}, ErrSelfCareLink
	}

	linked, err := service.links.Exists(clinicianID, patient.ID)
	if err != nil {
		return models.User{}, err
	}
	if linked {
		return models.User{}, ErrCareLinkExists
	}

	link := models.CareLink{ClinicianID: clinicianID, PatientID: patient.ID}
	if err := service.links.Create(&link); err != nil {
		return models.User{}, err
	}
	return patient, nil
}

func (service *AuthService) ListLinkedPatients(clinicianID uint) ([]models.User, error) {
	return service.links.ListPatientsByClinician(clinicianID)
}

func (service *AuthService) IsLinked(clinicianID uint, patientID uint) (bool, error) {
	return service.links.Exists(clinicianID, patientID)
}

func (service *AuthService) FindUser(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
