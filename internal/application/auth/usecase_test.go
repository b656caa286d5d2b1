package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/pkg/config"
	"github.com/jorge052011/crm-distribuidora/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{}}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	u.ID = "u-1"
	f.porEmail[u.Email] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return f.porEmail[email], nil
}

func (f *fakeUsuarioRepo) GetByID(string) (*entity.Usuario, error) { return nil, nil }

func cfgJWT() config.JWTConfig {
	return config.JWTConfig{Secret: "secreto-de-prueba", Expiration: 60, Issuer: "crm-test"}
}

func TestRegisterYLogin(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, cfgJWT())

	usuario, err := uc.Register(dto.RegisterRequest{
		Email:    "Ventas@Distribuidora.cl",
		Password: "contraseña-larga",
		Nombre:   "Equipo Ventas",
	})
	require.NoError(t, err)
	assert.Equal(t, "ventas@distribuidora.cl", usuario.Email)
	assert.Equal(t, entity.RolVendedor, usuario.Rol)

	login, err := uc.Login(dto.LoginRequest{Email: "ventas@distribuidora.cl", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	userID, rol, err := jwt.Parse(cfgJWT().Secret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, entity.RolVendedor, rol)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, cfgJWT())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.cl", Password: "12345678x"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.cl", Password: "12345678x"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validaciones(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), cfgJWT())

	_, err := uc.Register(dto.RegisterRequest{Email: "sin-arroba", Password: "12345678x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.cl", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.cl", Password: "12345678x", Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, cfgJWT())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.cl", Password: "12345678x"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.cl", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@b.cl", Password: "12345678x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, cfgJWT())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.cl", Password: "12345678x"})
	require.NoError(t, err)
	repo.porEmail["a@b.cl"].Activo = false

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.cl", Password: "12345678x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
