package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/domain/repositories"
)

// ProfileUsecase handles profile and mentor directory logic
type ProfileUsecase struct {
	userRepo    repositories.UserRepository
	requestRepo repositories.MentorshipRequestRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repositories.UserRepository, requestRepo repositories.MentorshipRequestRepository) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

// Get returns a user's own profile.
func (u *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile update and recomputes the
// profile-complete flag.
func (u *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Title != nil {
		user.Title = *input.Title
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Expertise != nil {
		user.Expertise = input.Expertise
	}
	if input.Interests != nil {
		user.Interests = input.Interests
	}
	if input.Contact != nil {
		user.Contact = *input.Contact
		if user.Contact.PreferredMethod == "" {
			user.Contact.PreferredMethod = entities.ContactMethodEmail
		}
	}

	user.IsProfileComplete = u.profileComplete(user)

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListMentors returns the mentor directory, optionally filtered.
func (u *ProfileUsecase) ListMentors(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.ListMentors(ctx, search)
}

// GetMentor returns a mentor profile with the contact block projected for
// the viewer.
func (u *ProfileUsecase) GetMentor(ctx context.Context, mentorID, viewerID uuid.UUID) (*entities.User, entities.ContactView, error) {
	mentor, err := u.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, entities.ContactView{}, domainerrors.NotFound("mentor not found")
		}
		return nil, entities.ContactView{}, err
	}
	if mentor.Role != entities.UserRoleMentor {
		return nil, entities.ContactView{}, domainerrors.NotFound("mentor not found")
	}

	view, err := u.ContactFor(ctx, mentor, viewerID)
	if err != nil {
		return nil, entities.ContactView{}, err
	}
	return mentor, view, nil
}

// ContactFor projects a mentor's contact block for a viewer. Hidden fields
// unlock only through an accepted mentorship request between the pair; the
// mentor always sees their own details.
func (u *ProfileUsecase) ContactFor(ctx context.Context, mentor *entities.User, viewerID uuid.UUID) (entities.ContactView, error) {
	unlocked := mentor.ID == viewerID
	if !unlocked {
		accepted, err := u.requestRepo.HasAccepted(ctx, mentor.ID, viewerID)
		if err != nil {
			return entities.ContactView{}, err
		}
		unlocked = accepted
	}
	return VisibleContact(mentor.Contact, unlocked), nil
}

// profileComplete requires the descriptive fields a directory card needs.
func (u *ProfileUsecase) profileComplete(user *entities.User) bool {
	if user.Name == "" || user.Bio == "" {
		return false
	}
	if user.Role == entities.UserRoleMentor {
		return user.Title != "" && len(user.Expertise) > 0
	}
	return len(user.Interests) > 0
}
