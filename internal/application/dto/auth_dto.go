package dto

import "time"

// LoginRequest credenciais de entrada do gate de sessão.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse projeção pública de UserProfile (nunca expõe o hash).
type UserResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"isActive"`
	MFAEnabled     bool      `json:"mfaEnabled"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// LoginResponse sessão emitida pelo gate. MustResetPassword obriga o console a
// encaminhar para a troca de senha antes de qualquer outra ação.
type LoginResponse struct {
	Token             string       `json:"token"`
	User              UserResponse `json:"user"`
	MustResetPassword bool         `json:"mustResetPassword,omitempty"`
}

// ResetPasswordRequest troca de senha forçada (conta de fábrica) ou voluntária.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// CreateUserRequest cadastro de usuário por um ADM do tenant.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserRequest atualização parcial de usuário.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"isActive"`
	MFAEnabled *bool   `json:"mfaEnabled"`
}

// UserListResponse listagem paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
