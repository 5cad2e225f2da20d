package main

import (
	"log"
	"os"

	"catalog-be/internal/config"
	"catalog-be/internal/entity"
	"catalog-be/internal/model"
	"catalog-be/pkg/database"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultCategories holds one enabled category per category type.
var defaultCategories = []struct {
	name string
	kind entity.CategoryType
}{
	{"Téléphonie", entity.CategoryTypeTelephonie},
	{"TV", entity.CategoryTypeTV},
	{"Son", entity.CategoryTypeSon},
	{"Informatique", entity.CategoryTypeInformatique},
	{"Photo", entity.CategoryTypePhoto},
	{"Jeux vidéo", entity.CategoryTypeJeuxVideo},
	{"Jouets", entity.CategoryTypeJouets},
	{"Électroménager", entity.CategoryTypeElectromenager},
	{"Meubles & déco", entity.CategoryTypeMeublesDeco},
	{"Literie", entity.CategoryTypeLiterie},
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM migration...")
	if err := database.AutoMigrate(db, model.All()...); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	color.Green("Tables migrated: %d", len(model.All()))

	color.Yellow("Seeding categories...")
	seeded, err := seedCategories(db)
	if err != nil {
		color.Red("Error: Failed to seed categories: %v", err)
		os.Exit(1)
	}
	color.Green("Categories inserted: %d", seeded)

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		color.Yellow("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	if err := seedAdmin(db, username, os.Getenv("ADMIN_EMAIL"), password); err != nil {
		color.Red("Error: Failed to seed admin: %v", err)
		os.Exit(1)
	}
	color.Green("Admin account %q ready", username)
}

// seedCategories inserts missing categories and leaves existing names alone.
func seedCategories(db *gorm.DB) (int64, error) {
	rows := make([]model.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		rows = append(rows, model.Category{
			Name:         c.name,
			Description:  c.name,
			Enabled:      true,
			CategoryType: c.kind.String(),
		})
	}
	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}

func seedAdmin(db *gorm.DB, username, email, password string) error {
	if email == "" {
		email = username + "@localhost"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        datatypes.NewJSONSlice([]string{entity.RoleAdmin.String(), entity.RoleUser.String()}),
	}
	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_name"}}, DoNothing: true}).Create(&admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("admin %q already exists, password left unchanged", username)
	}
	return nil
}
