package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/domain/repositories"
)

// OpportunityUsecase handles the opportunity catalog
type OpportunityUsecase struct {
	opportunityRepo repositories.OpportunityRepository
	userRepo        repositories.UserRepository
}

// NewOpportunityUsecase creates a new opportunity usecase
func NewOpportunityUsecase(opportunityRepo repositories.OpportunityRepository, userRepo repositories.UserRepository) *OpportunityUsecase {
	return &OpportunityUsecase{
		opportunityRepo: opportunityRepo,
		userRepo:        userRepo,
	}
}

// Create posts a new opportunity owned by the mentor.
func (u *OpportunityUsecase) Create(ctx context.Context, mentorID uuid.UUID, input *entities.CreateOpportunityInput) (*entities.Opportunity, error) {
	mentor, err := u.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != entities.UserRoleMentor {
		return nil, domainerrors.Forbidden("only mentors can post opportunities")
	}

	opp := &entities.Opportunity{
		ID:              uuid.New(),
		MentorID:        mentorID,
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    null.NewString(input.Requirements, input.Requirements != ""),
		ApplicationLink: null.NewString(input.ApplicationLink, input.ApplicationLink != ""),
		Status:          entities.OpportunityStatusOpen,
	}
	if input.Deadline != nil {
		opp.Deadline = null.TimeFrom(*input.Deadline)
	}

	if err := u.opportunityRepo.Create(ctx, opp); err != nil {
		return nil, err
	}
	opp.Mentor = mentor.Summary()
	return opp, nil
}

// Get returns a single opportunity with its mentor summary.
func (u *OpportunityUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Opportunity, error) {
	opp, err := u.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("opportunity not found")
		}
		return nil, err
	}
	u.attachMentors(ctx, []*entities.Opportunity{opp})
	return opp, nil
}

// List searches the catalog with pagination.
func (u *OpportunityUsecase) List(ctx context.Context, search entities.OpportunitySearch, limit, offset int) ([]*entities.Opportunity, int64, error) {
	opps, total, err := u.opportunityRepo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	u.attachMentors(ctx, opps)
	return opps, total, nil
}

// ListMine returns the opportunities a mentor owns.
func (u *OpportunityUsecase) ListMine(ctx context.Context, mentorID uuid.UUID) ([]*entities.Opportunity, error) {
	return u.opportunityRepo.ListByMentor(ctx, mentorID)
}

// Update applies a partial update to an opportunity the mentor owns.
func (u *OpportunityUsecase) Update(ctx context.Context, id, mentorID uuid.UUID, input *entities.UpdateOpportunityInput) (*entities.Opportunity, error) {
	opp, err := u.ownedOpportunity(ctx, id, mentorID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		opp.Title = *input.Title
	}
	if input.Description != nil {
		opp.Description = *input.Description
	}
	if input.Requirements != nil {
		opp.Requirements = null.NewString(*input.Requirements, *input.Requirements != "")
	}
	if input.ApplicationLink != nil {
		opp.ApplicationLink = null.NewString(*input.ApplicationLink, *input.ApplicationLink != "")
	}
	if input.Deadline != nil {
		opp.Deadline = null.TimeFrom(*input.Deadline)
	}
	if input.Status != nil {
		status := entities.OpportunityStatus(*input.Status)
		if status != entities.OpportunityStatusOpen && status != entities.OpportunityStatusClosed {
			return nil, domainerrors.BadRequest("status must be open or closed")
		}
		opp.Status = status
	}

	if err := u.opportunityRepo.Update(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

// Delete removes an opportunity the mentor owns.
func (u *OpportunityUsecase) Delete(ctx context.Context, id, mentorID uuid.UUID) error {
	if _, err := u.ownedOpportunity(ctx, id, mentorID); err != nil {
		return err
	}
	return u.opportunityRepo.Delete(ctx, id)
}

func (u *OpportunityUsecase) ownedOpportunity(ctx context.Context, id, mentorID uuid.UUID) (*entities.Opportunity, error) {
	opp, err := u.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("opportunity not found")
		}
		return nil, err
	}
	if opp.MentorID != mentorID {
		return nil, domainerrors.Forbidden("opportunity belongs to another mentor")
	}
	return opp, nil
}

func (u *OpportunityUsecase) attachMentors(ctx context.Context, opps []*entities.Opportunity) {
	cache := make(map[uuid.UUID]*entities.UserSummary)
	for _, opp := range opps {
		if s, ok := cache[opp.MentorID]; ok {
			opp.Mentor = s
			continue
		}
		mentor, err := u.userRepo.GetByID(ctx, opp.MentorID)
		if err != nil {
			cache[opp.MentorID] = nil
			continue
		}
		cache[opp.MentorID] = mentor.Summary()
		opp.Mentor = cache[opp.MentorID]
	}
}
