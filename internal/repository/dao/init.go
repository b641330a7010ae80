package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&Season{},
		&Tour{},
		&TourCard{},
		&Tournament{},
		&Team{},
		&Transaction{},
		&PushSubscription{},
	)
}
