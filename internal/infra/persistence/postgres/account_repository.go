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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// ExistsByEmail reports whether any local account uses the given email.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocalAccountModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// ExistsByMemberID reports whether the member already owns a local account.
func (repo *accountRepository) ExistsByMemberID(ctx context.Context, memberID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocalAccountModel{}).
		Where("member_id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check account existence")
	}

	return count > 0, nil
}

// FindByEmail retrieves a single local account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.LocalAccount, error) {
	var accountM model.LocalAccountModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByMemberID retrieves the local account owned by the given member.
func (repo *accountRepository) FindByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.LocalAccount, error) {
	var accountM model.LocalAccountModel

	if err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by member ID")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new local account. Duplicate-key violations are mapped onto
// the domain error matching the violated index: email for the shared-mailbox
// case, member_id for the second-signup case.
func (repo *accountRepository) Create(ctx context.Context, account *entity.LocalAccount) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return translateAccountCreateError(err)
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// translateAccountCreateError maps storage rejections onto the same domain
// errors the usecase pre-checks produce, so a signup that loses the
// check-then-act race fails identically to one caught by the pre-check.
func translateAccountCreateError(err error) error {
	if isUniqueViolationOn(err, "email") {
		return domainerrors.ErrEmailAlreadyInUse
	}
	if isUniqueViolationOn(err, "member_id") {
		return domainerrors.ErrAlreadyRegistered
	}
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrDataIntegrityViolation.WrapMessage("account already exists")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrDataIntegrityViolation.WrapMessage("invalid member reference")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrDataIntegrityViolation.WrapMessage("missing required account information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
}

// Update modifies an existing local account, used for password changes.
func (repo *accountRepository) Update(ctx context.Context, account *entity.LocalAccount) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocalAccountModel{}).
		Where("id = ?", account.ID).
		Update("hashed_password", account.HashedPassword)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM LocalAccountModel to a domain LocalAccount entity.
func toAccountDomain(data *model.LocalAccountModel) *entity.LocalAccount {
	if data == nil {
		return nil
	}

	return &entity.LocalAccount{
		ID:             data.ID,
		MemberID:       data.MemberID,
		Email:          data.Email,
		HashedPassword: data.HashedPassword,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain LocalAccount entity to a GORM LocalAccountModel.
func fromAccountDomain(data *entity.LocalAccount) *model.LocalAccountModel {
	if data == nil {
		return nil
	}

	return &model.LocalAccountModel{
		ID:             data.ID,
		MemberID:       data.MemberID,
		Email:          data.Email,
		HashedPassword: data.HashedPassword,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
