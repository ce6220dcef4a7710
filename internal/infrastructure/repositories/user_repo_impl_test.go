package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
)

func newMentor(name, email string) *entities.User {
	return &entities.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Role:         entities.UserRoleMentor,
		Expertise:    []string{"databases", "distributed systems"},
		Contact: entities.ContactInfo{
			Email:           email,
			EmailVisible:    true,
			Whatsapp:        "+15550100",
			PreferredMethod: entities.ContactMethodWhatsapp,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newMentor("Ada", "ada@example.com")
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, entities.UserRoleMentor, got.Role)
	assert.Equal(t, []string{"databases", "distributed systems"}, got.Expertise)
	assert.True(t, got.Contact.EmailVisible)
	assert.False(t, got.Contact.PhoneVisible)
	assert.Equal(t, entities.ContactMethodWhatsapp, got.Contact.PreferredMethod)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMentor("Ada", "ada@example.com")))
	err := repo.Create(ctx, newMentor("Other Ada", "ada@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newMentor("Ada", "ada@example.com")
	require.NoError(t, repo.Create(ctx, u))

	u.Title = "Professor of Computing"
	u.Contact.PhoneVisible = true
	u.Contact.Phone = "+15550123"
	u.IsProfileComplete = true
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Professor of Computing", got.Title)
	assert.True(t, got.Contact.PhoneVisible)
	assert.True(t, got.IsProfileComplete)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)

	u := newMentor("Ghost", "ghost@example.com")
	err := repo.Update(context.Background(), u)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newMentor("Ada", "ada@example.com")
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "newhash"))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, uuid.New(), "x"), domainerrors.ErrNotFound)
}

func TestUserRepository_ListMentors(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMentor("Ada", "ada@example.com")))
	require.NoError(t, repo.Create(ctx, newMentor("Grace", "grace@example.com")))

	mentee := newMentor("Linus", "linus@example.com")
	mentee.Role = entities.UserRoleMentee
	require.NoError(t, repo.Create(ctx, mentee))

	all, err := repo.ListMentors(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.ListMentors(ctx, "Gra")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Grace", filtered[0].Name)

	byExpertise, err := repo.ListMentors(ctx, "databases")
	require.NoError(t, err)
	assert.Len(t, byExpertise, 2)
}

func TestUserRepository_CountByRole(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMentor("Ada", "ada@example.com")))
	mentee := newMentor("Linus", "linus@example.com")
	mentee.Role = entities.UserRoleMentee
	require.NoError(t, repo.Create(ctx, mentee))

	mentors, err := repo.CountByRole(ctx, entities.UserRoleMentor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mentors)

	admins, err := repo.CountByRole(ctx, entities.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), admins)
}
