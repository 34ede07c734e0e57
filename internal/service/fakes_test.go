package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"staffhub/internal/model"
	"staffhub/pkg/apperr"
	"staffhub/pkg/util"
)

// fakeUserRepo is an in-memory IUserRepository mirroring the real
// repository's contracts: passwords hashed on create, policy checked on
// update, nil for absent records.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*model.User{}}
}

func (f *fakeUserRepo) match(u *model.User, filter model.UserFilter) bool {
	if filter.ID != nil && u.ID != *filter.ID {
		return false
	}
	if filter.Email != "" && u.Email != util.NormalizeEmail(filter.Email) {
		return false
	}
	if filter.RefNo != "" && u.RefNo != filter.RefNo {
		return false
	}
	if filter.NIC != "" && u.NIC != filter.NIC {
		return false
	}
	return true
}

func (f *fakeUserRepo) FindOne(ctx context.Context, filter model.UserFilter) (*model.User, error) {
	for _, u := range f.users {
		if f.match(u, filter) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindLatest(ctx context.Context, filter model.UserFilter) (*model.User, error) {
	var latest *model.User
	for _, u := range f.users {
		if !f.match(u, filter) {
			continue
		}
		if latest == nil || u.CreatedAt.After(latest.CreatedAt) {
			latest = u
		}
	}
	return latest, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	hash, err := util.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.Email = util.NormalizeEmail(user.Email)
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) UpdateOne(ctx context.Context, filter model.UserFilter, update model.UserUpdate) (*model.User, error) {
	if update.Password != nil && !util.ValidatePassword(*update.Password) {
		return nil, &apperr.WeakPasswordError{}
	}
	for _, u := range f.users {
		if !f.match(u, filter) {
			continue
		}
		if update.Password != nil {
			hash, err := util.HashPassword(*update.Password)
			if err != nil {
				return nil, err
			}
			u.Password = hash
		}
		if update.Active != nil {
			u.Active = *update.Active
		}
		if update.Archived != nil {
			u.Archived = *update.Archived
		}
		if update.Firstname != nil {
			u.Firstname = *update.Firstname
		}
		if update.Email != nil {
			u.Email = util.NormalizeEmail(*update.Email)
		}
		return u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) ListPaged(ctx context.Context, query model.UserListQuery) (*model.PagedResult[model.UserListItem], error) {
	return &model.PagedResult[model.UserListItem]{Records: []model.UserListItem{}}, nil
}

func (f *fakeUserRepo) LoggedUserView(ctx context.Context, id string) (*model.LoggedUserView, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	u, ok := f.users[oid]
	if !ok {
		return nil, nil
	}
	return &model.LoggedUserView{ID: u.ID, Name: u.Firstname + " " + u.Lastname, Email: u.Email}, nil
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeResetRepo is an in-memory IPasswordResetRepository.
type fakeResetRepo struct {
	tokens map[string]*model.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: map[string]*model.PasswordResetToken{}}
}

func (f *fakeResetRepo) Create(ctx context.Context, token *model.PasswordResetToken) (*model.PasswordResetToken, error) {
	token.ID = primitive.NewObjectID()
	f.tokens[token.Token] = token
	return token, nil
}

func (f *fakeResetRepo) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	return f.tokens[token], nil
}

func (f *fakeResetRepo) Consume(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	record, ok := f.tokens[token]
	if !ok {
		return nil, nil
	}
	delete(f.tokens, token)
	return record, nil
}
