package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists profile fields of an existing user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":                user.Name,
		"title":               user.Title,
		"bio":                 user.Bio,
		"expertise":           encodeStrings(user.Expertise),
		"interests":           encodeStrings(user.Interests),
		"contact_email":       user.Contact.Email,
		"contact_email_shown": user.Contact.EmailVisible,
		"contact_phone":       user.Contact.Phone,
		"contact_phone_shown": user.Contact.PhoneVisible,
		"whatsapp":            user.Contact.Whatsapp,
		"whatsapp_shown":      user.Contact.WhatsappVisible,
		"preferred_method":    string(user.Contact.PreferredMethod),
		"is_profile_complete": user.IsProfileComplete,
		"updated_at":          time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListMentors lists mentor profiles, optionally filtered by a name or
// expertise substring
func (r *UserRepository) ListMentors(ctx context.Context, search string) ([]*entities.User, error) {
	query := r.db.WithContext(ctx).Where("role = ?", entities.UserRoleMentor)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR expertise LIKE ?", like, like)
	}

	var ms []models.User
	if err := query.Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	var users []*entities.User
	for _, m := range ms {
		model := m
		users = append(users, r.toEntity(&model))
	}
	return users, nil
}

// CountByRole counts users holding a role
func (r *UserRepository) CountByRole(ctx context.Context, role entities.UserRole) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", role).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *UserRepository) toModel(user *entities.User) *models.User {
	return &models.User{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		Role:              string(user.Role),
		Title:             user.Title,
		Bio:               user.Bio,
		Expertise:         encodeStrings(user.Expertise),
		Interests:         encodeStrings(user.Interests),
		ContactEmail:      user.Contact.Email,
		ContactEmailShown: user.Contact.EmailVisible,
		ContactPhone:      user.Contact.Phone,
		ContactPhoneShown: user.Contact.PhoneVisible,
		Whatsapp:          user.Contact.Whatsapp,
		WhatsappShown:     user.Contact.WhatsappVisible,
		PreferredMethod:   string(user.Contact.PreferredMethod),
		IsProfileComplete: user.IsProfileComplete,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	user := &entities.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		Title:        m.Title,
		Bio:          m.Bio,
		Expertise:    decodeStrings(m.Expertise),
		Interests:    decodeStrings(m.Interests),
		Contact: entities.ContactInfo{
			Email:           m.ContactEmail,
			EmailVisible:    m.ContactEmailShown,
			Phone:           m.ContactPhone,
			PhoneVisible:    m.ContactPhoneShown,
			Whatsapp:        m.Whatsapp,
			WhatsappVisible: m.WhatsappShown,
			PreferredMethod: entities.ContactMethod(m.PreferredMethod),
		},
		IsProfileComplete: m.IsProfileComplete,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		user.DeletedAt = &t
	}
	return user
}

// encodeStrings serializes a string slice to a JSON text column. An empty
// slice is stored as the empty string.
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(b)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
