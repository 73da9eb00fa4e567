package cli

import (
	"fmt"

	"github.com/wrenfield/carelog/internal/db"
	"github.com/wrenfield/carelog/internal/models"
)

func RunListUsersCommand(dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var users []models.User
	if err := database.Order("id ASC").Find(&users).Error; err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users registered.")
		return nil
	}

	for _, user := range users {
		fmt.Printf("%d\t%s\t%s\t%s\n", user.ID, user.Email, user.Role, user.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
