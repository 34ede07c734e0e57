package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/pkg/apperr"
)

func TestUserCreateDefaults(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(config.New(), users)

	user, err := svc.Create(context.Background(), &model.User{
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@school.lk",
		Password:  "Abcdef12",
	})
	require.NoError(t, err)
	assert.True(t, user.Active, "new accounts start active")
	assert.False(t, user.Archived)
	assert.NotEqual(t, "Abcdef12", user.Password)
}

func TestUserArchive(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(config.New(), users)

	user, err := svc.Create(context.Background(), &model.User{Email: "jane@school.lk", Password: "Abcdef12"})
	require.NoError(t, err)

	archived, err := svc.Archive(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, archived)
	assert.True(t, archived.Archived, "soft delete goes through the update path")
}

func TestUserUpdateMalformedID(t *testing.T) {
	svc := NewUserService(config.New(), newFakeUserRepo())
	_, err := svc.Update(context.Background(), "bogus", model.UserUpdate{})
	assert.True(t, apperr.IsInvalidIdentifier(err))
}

func TestUserUpdateMissingRecord(t *testing.T) {
	svc := NewUserService(config.New(), newFakeUserRepo())
	user, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), model.UserUpdate{})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetLoggedUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(config.New(), users)

	user, err := svc.Create(context.Background(), &model.User{
		Firstname: "Jane", Lastname: "Doe", Email: "jane@school.lk", Password: "Abcdef12",
	})
	require.NoError(t, err)

	view, err := svc.GetLoggedUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Jane Doe", view.Name)
}
