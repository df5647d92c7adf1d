package usecase

import (
	"testing"
	"time"

	authdomain "pitchcraft-backend/internal/auth/domain"
	authdto "pitchcraft-backend/internal/auth/dto"
	"pitchcraft-backend/internal/auth/repository"
	"pitchcraft-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepository is an in-memory UserRepository for tests.
type memoryUserRepository struct {
	users  map[string]*authdomain.User
	tokens map[string]*authdomain.RefreshToken
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		users:  make(map[string]*authdomain.User),
		tokens: make(map[string]*authdomain.RefreshToken),
	}
}

func (r *memoryUserRepository) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *memoryUserRepository) Update(user *authdomain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryUserRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.tokens[token], nil
}

func (r *memoryUserRepository) DeleteRefreshToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *memoryUserRepository) DeleteRefreshTokensByUser(userID string) error {
	for t, rt := range r.tokens {
		if rt.UserID == userID {
			delete(r.tokens, t)
		}
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func registerRequest() *authdto.RegisterRequest {
	return &authdto.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestRegister(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.User)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Ada Lovelace", resp.User.Name, "display name is first + last name")
	assert.Equal(t, "email", resp.User.Provider)

	stored, err := repo.FindByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.Password, "password must be stored hashed")
	assert.True(t, repository.CheckPasswordHash("password123", stored.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(registerRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestLogin(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid credentials", "ada@example.com", "password123", false},
		{"wrong password", "ada@example.com", "wrong", true},
		{"unknown email", "nobody@example.com", "password123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Login(&authdto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
		})
	}
}

func TestLogin_GoogleAccountRefused(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	require.NoError(t, repo.Create(&authdomain.User{
		Email:    "g@example.com",
		Name:     "G User",
		Provider: "google",
	}))

	_, err := uc.Login(&authdto.LoginRequest{Email: "g@example.com", Password: "whatever"})
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = uc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	t.Run("unknown token refused", func(t *testing.T) {
		_, err := uc.RefreshToken("garbage")
		assert.Error(t, err)
	})

	t.Run("revoked token refused", func(t *testing.T) {
		require.NoError(t, uc.Logout(resp.RefreshToken))
		_, err := uc.RefreshToken(resp.RefreshToken)
		assert.Error(t, err)
	})
}
