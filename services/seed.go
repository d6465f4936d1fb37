package services

import (
	"strconv"

	"reminder-app/reminder/database"
	"reminder-app/reminder/models"
)

// Seed creates two demo users with one task each when no user exists yet.
// It reports whether anything was created.
func Seed(db *database.Database, users UserServiceInterface, tasks TaskServiceInterface, today models.Date) (bool, error) {
	var count int64
	if err := db.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	alice, err := users.CreateUser(db, "Alice")
	if err != nil {
		return false, err
	}
	bob, err := users.CreateUser(db, "Bob")
	if err != nil {
		return false, err
	}

	_, err = tasks.CreateTask(db, alice, TaskInput{
		Description: "Müll rausbringen",
		DueDate:     today.String(),
		Priority:    string(models.PriorityNormal),
		Details:     "Gelber Sack.",
		Status:      string(models.StatusOpen),
		AssigneeID:  strconv.FormatUint(uint64(bob.ID), 10),
	})
	if err != nil {
		return false, err
	}

	_, err = tasks.CreateTask(db, bob, TaskInput{
		Description: "Wocheneinkauf",
		Priority:    string(models.PriorityHigh),
		Details:     "Liste am Kühlschrank.",
		Status:      string(models.StatusOpen),
		AssigneeID:  strconv.FormatUint(uint64(alice.ID), 10),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
