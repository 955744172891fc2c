package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type credentialRepositoryImpl struct {
	db *database.DB
}

func NewCredentialRepository(db *database.DB) auth.CredentialRepository {
	return &credentialRepositoryImpl{db: db}
}

// GetByStaffID implements auth.CredentialRepository.
func (c *credentialRepositoryImpl) GetByStaffID(ctx context.Context, staffID int) (auth.Credential, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT staff_id, password_hash, role, department, created_at, updated_at
		FROM credentials
		WHERE staff_id = $1
	`

	var cred auth.Credential
	err := q.QueryRow(ctx, query, staffID).Scan(
		&cred.StaffID, &cred.PasswordHash, &cred.Role, &cred.Department,
		&cred.CreatedAt, &cred.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Credential{}, auth.ErrInvalidCredentials
		}
		return auth.Credential{}, fmt.Errorf("failed to get credential for staff id %d: %w", staffID, err)
	}

	return cred, nil
}
