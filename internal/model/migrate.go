package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&WeddingList{},
		&GiftItem{},
		&Reservation{},
		&Rsvp{},
		&Category{},
		&TemplateGiftItem{},
	); err != nil {
		return err
	}

	// Case-insensitive unique username and email.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower " +
			"ON users ((lower(username)))",
	).Error; err != nil {
		return err
	}
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower " +
			"ON users ((lower(email)))",
	).Error
}
