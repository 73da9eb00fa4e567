package services

import (
	"errors"
	"testing"

	"github.com/wrenfield/carelog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubAuthUsers struct {
	users  []models.User
	nextID uint
}

func (stub *stubAuthUsers) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubAuthUsers) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (stub *stubAuthUsers) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (stub *stubAuthUsers) FindByShareToken(token string) (models.User, bool, error) {
	for _, user := range stub.users {
		if user.ShareToken == token {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (stub *stubAuthUsers) Create(user *models.User) error {
	stub.nextID++
	user.ID = stub.nextID
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *stubAuthUsers) UpdatePassword(userID uint, passwordHash string) error {
	for index := range stub.users {
		if stub.users[index].ID == userID {
			stub.users[index].PasswordHash = passwordHash
		}
	}
	return nil
}

func (stub *stubAuthUsers) UpdateShareToken(userID uint, token string) error {
	for index := range stub.users {
		if stub.users[index].ID == userID {
			stub.users[index].ShareToken = token
		}
	}
	return nil
}

type stubCareLinks struct {
	links []models.CareLink
}

func (stub *stubCareLinks) Create(link *models.CareLink) error {
	stub.links = append(stub.links, *link)
	return nil
}

func (stub *stubCareLinks) Exists(clinicianID uint, patientID uint) (bool, error) {
	for _, link := range stub.links {
		if link.ClinicianID == clinicianID && link.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubCareLinks) ListPatientsByClinician(clinicianID uint) ([]models.User, error) {
	return nil, nil
}

func TestRegisterHashesPasswordAndIssuesShareToken(t *testing.T) {
	users := &stubAuthUsers{}
	service := NewAuthService(users, &stubCareLinks{})

	user, err := service.Register("ana@example.com", "StrongPass1", models.RolePatient)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "StrongPass1" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("StrongPass1")) != nil {
		t.Fatalf("stored hash does not match the password")
	}
	if user.ShareToken == "" {
		t.Fatalf("expected a share token on registration")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := &stubAuthUsers{users: []models.User{{ID: 1, Email: "ana@example.com"}}}
	service := NewAuthService(users, &stubCareLinks{})

	_, err := service.Register("ana@example.com", "StrongPass1", models.RolePatient)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &stubAuthUsers{users: []models.User{{ID: 1, Email: "ana@example.com", PasswordHash: string(hash)}}}
	service := NewAuthService(users, &stubCareLinks{})

	if _, err := service.Authenticate("ana@example.com", "WrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
	if _, err := service.Authenticate("ana@example.com", "StrongPass1"); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
}

func TestRedeemShareTokenLinksClinician(t *testing.T) {
	users := &stubAuthUsers{users: []models.User{
		{ID: 1, Email: "ana@example.com", Role: models.RolePatient, ShareToken: "token-1"},
	}, nextID: 1}
	links := &stubCareLinks{}
	service := NewAuthService(users, links)

	patient, err := service.RedeemShareToken(2, "token-1")
	if err != nil {
		t.Fatalf("RedeemShareToken: %v", err)
	}
	if patient.ID != 1 {
		t.Fatalf("expected patient 1, got %d", patient.ID)
	}
	if len(links.links) != 1 || links.links[0].ClinicianID != 2 || links.links[0].PatientID != 1 {
		t.Fatalf("unexpected link: %+v", links.links)
	}
}

func TestRedeemShareTokenRejectsSecondRedemption(t *testing.T) {
	users := &stubAuthUsers{users: []models.User{
		{ID: 1, Role: models.RolePatient, ShareToken: "token-1"},
	}, nextID: 1}
	links := &stubCareLinks{links: []models.CareLink{{ClinicianID: 2, PatientID: 1}}}
	service := NewAuthService(users, links)

	if _, err := service.RedeemShareToken(2, "token-1"); !errors.Is(err, ErrCareLinkExists) {
		t.Fatalf("expected ErrCareLinkExists, got %v", err)
	}
}

func TestRedeemShareTokenRejectsUnknownAndNonPatientTokens(t *testing.T) {
	users := &stubAuthUsers{users: []models.User{
		{ID: 3, Role: models.RoleClinician, ShareToken: "clinician-token"},
	}, nextID: 3}
	service := NewAuthService(users, &stubCareLinks{})

	if _, err := service.RedeemShareToken(2, "missing"); !errors.Is(err, ErrShareTokenNotFound) {
		t.Fatalf("expected ErrShareTokenNotFound, got %v", err)
	}
	if _, err := service.RedeemShareToken(2, "clinician-token"); !errors.Is(err, ErrShareTokenNotPatient) {
		t.Fatalf("expected ErrShareTokenNotPatient, got %v", err)
	}
}

func TestRotateShareTokenReplacesToken(t *testing.T) {
	users := &stubAuthUsers{users: []models.User{
		{ID: 1, Role: models.RolePatient, ShareToken: "token-1"},
	}, nextID: 1}
	service := NewAuthService(users, &stubCareLinks{})

	token, err := service.RotateShareToken(1)
	if err != nil {
		t.Fatalf("RotateShareToken: %v", err)
	}
	if token == "" || token == "token-1" {
		t.Fatalf("expected a fresh token, got %q", token)
	}
	if users.users[0].ShareToken != token {
		t.Fatalf("expected stored token updated")
	}
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &stubAuthUsers{users: []models.User{{ID: 1, PasswordHash: string(hash)}}, nextID: 1}
	service := NewAuthService(users, &stubCareLinks{})

	if err := service.ChangePassword(1, "WrongPass1", "EvenStronger2"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
	if err := service.ChangePassword(1, "StrongPass1", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if err := service.ChangePassword(1, "StrongPass1", "EvenStronger2"); err != nil {
		t.Fatalf("expected successful change, got %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(users.users[0].PasswordHash), []byte("EvenStronger2")) != nil {
		t.Fatalf("stored hash does not match the new password")
	}
}
