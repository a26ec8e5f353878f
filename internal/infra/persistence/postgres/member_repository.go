package postgres

import (
	"context"

	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	"mentalk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindByID retrieves a single member by their unique ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// FindByPhoneNumber retrieves a single member by their phone number.
func (repo *memberRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by phone number")
	}

	return toMemberDomain(&memberM), nil
}

// Create persists a new member. An unset role defaults to USER before insert.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	if member.Role == "" {
		member.Role = entity.RoleUser
	}

	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		return translateMemberCreateError(err)
	}

	// Update the entity with generated values
	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// translateMemberCreateError maps storage rejections onto domain errors. The
// phone_number unique index is named explicitly so a concurrent first-signup
// race reports the duplicate phone number rather than a vague integrity error.
func translateMemberCreateError(err error) error {
	if isUniqueViolationOn(err, "phone_number") {
		return domainerrors.ErrDataIntegrityViolation.WrapMessage("phone number already registered")
	}
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrDataIntegrityViolation.WrapMessage("member already exists")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrDataIntegrityViolation.WrapMessage("missing required member information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
}

// Update modifies an existing member.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"name":         memberM.Name,
			"phone_number": memberM.PhoneNumber,
			"role":         memberM.Role,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDataIntegrityViolation.WrapMessage("phone number already registered")
		}

		return errors.Wrap(result.Error, "failed to update member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Role:        entity.Role(data.Role),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMemberDomain converts a domain Member entity to a GORM MemberModel.
func fromMemberDomain(data *entity.Member) *model.MemberModel {
	if data == nil {
		return nil
	}

	return &model.MemberModel{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Role:        data.Role.String(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
