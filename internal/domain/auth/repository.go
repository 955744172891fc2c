package auth

import "context"

type CredentialRepository interface {
	GetByStaffID(ctx context.Context, staffID int) (Credential, error)
}
