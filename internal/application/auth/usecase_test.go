package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/auth"
	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/reportes-api/pkg/jwt"
)

// memUserRepo repositorio de usuarios en memoria.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-pruebas",
		ExpMinutes: 60,
		Issuer:     "reportes-api-test",
	})
	return uc, repo
}

func TestRegisterUser_CreaConRolPorDefecto(t *testing.T) {
	uc, repo := newUseCase()

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "segura123",
		Name:     "Ana",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.RoleAnalista, resp.Role, "sin rol explícito se asigna analista")
	assert.Equal(t, "active", resp.Status)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "segura123", stored.PasswordHash, "el password nunca se persiste en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenValidoConRol(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "admin@example.com", Password: "segura123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "segura123"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	userID, role, err := pkgjwt.Parse("secret-de-pruebas", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "segura123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "segura123"})
	require.NoError(t, err)
	repo.byEmail["ana@example.com"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "segura123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
