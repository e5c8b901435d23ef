package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("credenciais Nexus não localizadas")
	ErrEmailAlreadyExists = errors.New("o email já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrTenantSuspended    = errors.New("instância suspensa")
	ErrSeatLimit          = errors.New("limite de usuários do plano atingido")

	// Falhas do store externo, classificadas conforme exige o contrato de
	// sincronização: nunca engolidas como erro genérico.
	ErrSchemaMismatch   = errors.New("coluna inexistente no schema remoto")
	ErrPermissionDenied = errors.New("política de segurança bloqueou a gravação")
)
