package postgres

import (
	"testing"

	domainerrors "mentalk/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           pgUniqueViolationCode,
		ConstraintName: constraint,
	}
}

func TestIsUniqueViolationOn(t *testing.T) {
	assert.True(t, isUniqueViolationOn(uniqueViolation("uni_local_accounts_email"), "email"))
	assert.True(t, isUniqueViolationOn(uniqueViolation("uni_local_accounts_member_id"), "member_id"))
	assert.True(t, isUniqueViolationOn(uniqueViolation("uni_members_phone_number"), "phone_number"))

	// A violation on one index must never match another column's name.
	assert.False(t, isUniqueViolationOn(uniqueViolation("uni_local_accounts_email"), "member_id"))
	assert.False(t, isUniqueViolationOn(uniqueViolation("uni_local_accounts_member_id"), "email"))

	// Only duplicate-key errors qualify, regardless of the constraint name.
	fkErr := &pgconn.PgError{Code: pgForeignKeyViolationCode, ConstraintName: "fk_local_accounts_email"}
	assert.False(t, isUniqueViolationOn(fkErr, "email"))
	assert.False(t, isUniqueViolationOn(errors.New("email rejected"), "email"))
}

func TestIsUniqueViolationOn_WrappedError(t *testing.T) {
	// The driver error reaches the repository wrapped by gorm; matching must
	// survive the wrapping.
	err := errors.Wrap(uniqueViolation("uni_local_accounts_email"), "insert failed")

	assert.True(t, isUniqueViolationOn(err, "email"))
}

func TestTranslateAccountCreateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "duplicate email",
			err:     uniqueViolation("uni_local_accounts_email"),
			wantErr: domainerrors.ErrEmailAlreadyInUse,
		},
		{
			name:    "duplicate member id",
			err:     uniqueViolation("uni_local_accounts_member_id"),
			wantErr: domainerrors.ErrAlreadyRegistered,
		},
		{
			name:    "wrapped duplicate email",
			err:     errors.Wrap(uniqueViolation("uni_local_accounts_email"), "insert failed"),
			wantErr: domainerrors.ErrEmailAlreadyInUse,
		},
		{
			name:    "unrecognized unique index",
			err:     uniqueViolation("local_accounts_pkey"),
			wantErr: domainerrors.ErrDataIntegrityViolation,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: pgForeignKeyViolationCode, ConstraintName: "fk_local_accounts_member"},
			wantErr: domainerrors.ErrDataIntegrityViolation,
		},
		{
			name:    "not null violation",
			err:     &pgconn.PgError{Code: pgNotNullViolationCode, ColumnName: "hashed_password"},
			wantErr: domainerrors.ErrDataIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateAccountCreateError(tt.err)

			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTranslateAccountCreateError_UnknownError(t *testing.T) {
	err := translateAccountCreateError(errors.New("connection reset"))

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestTranslateMemberCreateError(t *testing.T) {
	err := translateMemberCreateError(uniqueViolation("uni_members_phone_number"))
	require.ErrorIs(t, err, domainerrors.ErrDataIntegrityViolation)
	assert.Contains(t, err.Error(), "phone number already registered")

	err = translateMemberCreateError(uniqueViolation("members_pkey"))
	require.ErrorIs(t, err, domainerrors.ErrDataIntegrityViolation)
	assert.Contains(t, err.Error(), "member already exists")

	err = translateMemberCreateError(&pgconn.PgError{Code: pgNotNullViolationCode, ColumnName: "name"})
	require.ErrorIs(t, err, domainerrors.ErrDataIntegrityViolation)
}
