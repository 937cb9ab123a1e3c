package models

import (
	"strings"
	"time"
)

// User é uma conta de acesso. O e-mail é a chave primária.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminInvite concede papel administrativo a um e-mail.
// A existência do convite é a fonte de verdade do papel do usuário.
type AdminInvite struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// IsAdminRole informa se o papel dá acesso ao painel administrativo.
// "ADM Master" e qualquer papel contendo "ADM" contam como admin.
func IsAdminRole(role string) bool {
	return role == "ADM Master" || strings.Contains(role, "ADM")
}

// PushToken associa um dispositivo a um usuário para notificações.
type PushToken struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	Platform  string    `json:"platform,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
