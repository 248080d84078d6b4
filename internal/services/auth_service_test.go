package services

import (
	"context"
	"testing"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes the password and creates a farmer profile", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UsersRepo.On("FindByEmail", mock.Anything, "amina@example.com").Return(nil, nil)
		store.UsersRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			if u.PasswordHash == "hunter2-long" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2-long")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = testFarmerID
		}).Return(nil)
		store.FarmersRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.FarmerProfile) bool {
			return p.UserID == testFarmerID
		})).Return(nil)

		service := NewAuthService(store, testSecret)
		user, err := service.Register(context.Background(), "amina", "amina@example.com", "hunter2-long", domain.RoleFarmer)

		assert.NoError(t, err)
		assert.Equal(t, testFarmerID, user.ID)
		store.AssertExpectations(t)
	})

	t.Run("buyers get no farmer profile", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UsersRepo.On("FindByEmail", mock.Anything, "ben@example.com").Return(nil, nil)
		store.UsersRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewAuthService(store, testSecret)
		_, err := service.Register(context.Background(), "ben", "ben@example.com", "hunter2-long", domain.RoleBuyer)

		assert.NoError(t, err)
		store.FarmersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UsersRepo.On("FindByEmail", mock.Anything, "amina@example.com").
			Return(&domain.User{ID: 1, Email: "amina@example.com"}, nil)

		service := NewAuthService(store, testSecret)
		_, err := service.Register(context.Background(), "amina", "amina@example.com", "hunter2-long", domain.RoleBuyer)

		var ce *domain.ConflictError
		assert.ErrorAs(t, err, &ce)
	})

	t.Run("short password", func(t *testing.T) {
		service := NewAuthService(mocks.NewMockStore(), testSecret)
		_, err := service.Register(context.Background(), "amina", "amina@example.com", "short", domain.RoleBuyer)

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2-long"), bcrypt.MinCost)
	assert.NoError(t, err)

	store := mocks.NewMockStore()
	store.UsersRepo.On("FindByEmail", mock.Anything, "amina@example.com").Return(&domain.User{
		ID: testBuyerID, Username: "amina", Email: "amina@example.com",
		PasswordHash: string(hash), Role: domain.RoleBuyer,
	}, nil)

	service := NewAuthService(store, testSecret)

	token, user, err := service.Login(context.Background(), "amina@example.com", "hunter2-long")
	assert.NoError(t, err)
	assert.Equal(t, testBuyerID, user.ID)
	assert.NotEmpty(t, token)

	id, email, role, err := service.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, testBuyerID, id)
	assert.Equal(t, "amina@example.com", email)
	assert.Equal(t, domain.RoleBuyer, role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2-long"), bcrypt.MinCost)

	store := mocks.NewMockStore()
	store.UsersRepo.On("FindByEmail", mock.Anything, "amina@example.com").Return(&domain.User{
		ID: testBuyerID, Email: "amina@example.com", PasswordHash: string(hash),
	}, nil)

	service := NewAuthService(store, testSecret)
	_, _, err := service.Login(context.Background(), "amina@example.com", "wrong-password")

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAuthService_ParseToken_RejectsForeignSignature(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2-long"), bcrypt.MinCost)

	store := mocks.NewMockStore()
	store.UsersRepo.On("FindByEmail", mock.Anything, "amina@example.com").Return(&domain.User{
		ID: testBuyerID, Email: "amina@example.com", PasswordHash: string(hash),
	}, nil)

	token, _, err := NewAuthService(store, "other-secret").Login(context.Background(), "amina@example.com", "hunter2-long")
	assert.NoError(t, err)

	_, _, _, err = NewAuthService(mocks.NewMockStore(), testSecret).ParseToken(token)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("renames the user", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UsersRepo.On("FindByID", mock.Anything, testBuyerID).Return(&domain.User{
			ID: testBuyerID, Username: "amina", Email: "amina@example.com", Role: domain.RoleBuyer,
		}, nil)
		store.UsersRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == testBuyerID && u.Username == "amina-farms"
		})).Return(nil)

		user, err := NewAuthService(store, testSecret).UpdateProfile(context.Background(), testBuyerID, "amina-farms")

		assert.NoError(t, err)
		assert.Equal(t, "amina-farms", user.Username)
		store.AssertExpectations(t)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		store := mocks.NewMockStore()
		_, err := NewAuthService(store, testSecret).UpdateProfile(context.Background(), testBuyerID, "")

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		store.UsersRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UsersRepo.On("FindByID", mock.Anything, testBuyerID).Return(nil, nil)

		_, err := NewAuthService(store, testSecret).UpdateProfile(context.Background(), testBuyerID, "amina-farms")

		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}
