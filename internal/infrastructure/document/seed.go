package document

import (
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// Credenciales de la cuenta administradora sembrada.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "Password123!"
)

// Seed documento por defecto: un Admin verificado y dos departamentos.
func Seed() *entity.Document {
	doc := &entity.Document{
		Accounts: []entity.Account{{
			ID:        entity.NewID(),
			FirstName: "Admin",
			LastName:  "",
			Email:     SeedAdminEmail,
			Password:  SeedAdminPassword,
			Role:      entity.RoleAdmin,
			Verified:  true,
		}},
		Departments: []entity.Department{
			{ID: entity.NewID(), Name: "Engineering", Description: "Software team"},
			{ID: entity.NewID(), Name: "HR", Description: "Human Resources"},
		},
	}
	doc.Normalize()
	return doc
}
