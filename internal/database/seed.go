package database

import (
	"time"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the development fixture set into an empty database. Tests build
// on the same rows, so changing them means revisiting the test expectations.
func Seed(db *gorm.DB) error {
	statuses := []models.TaskStatus{
		{Name: "Nowe"},
		{Name: "W trakcie realizacji"},
		{Name: "Zrealizowane"},
		{Name: "Anulowane"},
	}
	if err := db.Create(&statuses).Error; err != nil {
		return err
	}

	taskTypes := []models.TaskType{
		{Name: "Zmiana ceny"},
		{Name: "Dodaj nowy produkt"},
	}
	if err := db.Create(&taskTypes).Error; err != nil {
		return err
	}

	users := []models.User{
		{Login: "admin", FirstName: "Daniel", LastName: "Zawłocki", IsCreator: true, IsContractor: true, IsAdmin: true},
		{Login: "danzaw", FirstName: "Daniel", LastName: "Zawłocki", IsCreator: true, IsContractor: true},
		{Login: "przoci", FirstName: "Przemek", LastName: "Ociepa", IsContractor: true},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].Login), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users[i].PasswordHash = hash
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	attributeTypes := []models.TaskAttributeType{
		{Name: "string"},
		{Name: "int"},
		{Name: "float"},
		{Name: "list"},
		{Name: "json"},
	}
	if err := db.Create(&attributeTypes).Error; err != nil {
		return err
	}

	attributes := []models.TaskAttribute{
		{Name: "Nazwa produktu", TypeID: 1},
		{Name: "Cena", TypeID: 3},
		{Name: "Opis", TypeID: 1},
	}
	if err := db.Create(&attributes).Error; err != nil {
		return err
	}

	bindings := []models.TaskAttributeToTaskType{
		{TaskTypeID: 1, TaskAttributeID: 1},
		{TaskTypeID: 1, TaskAttributeID: 2},
		{TaskTypeID: 2, TaskAttributeID: 1},
		{TaskTypeID: 2, TaskAttributeID: 2},
		{TaskTypeID: 2, TaskAttributeID: 3, Sort: 1},
	}
	if err := db.Create(&bindings).Error; err != nil {
		return err
	}

	now := time.Now()
	tasks := []models.Task{
		{Name: "Zmiana ceny czegos tam", TypeID: 1, StatusID: 1, CreatorID: 2, CreateDate: now},
		{Name: "Dodaj cos tam", TypeID: 2, StatusID: 1, CreatorID: 2, CreateDate: now},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return err
	}

	content := []models.TaskAttributeValue{
		{TaskID: 1, TaskAttributeID: 1, Value: "Laptop Asus"},
		{TaskID: 1, TaskAttributeID: 2, Value: "10.00"},
		{TaskID: 2, TaskAttributeID: 1, Value: "Laptop Asus2"},
		{TaskID: 2, TaskAttributeID: 2, Value: "110.00"},
		{TaskID: 2, TaskAttributeID: 3, Value: "Bardzo fajny laptop"},
	}
	return db.Create(&content).Error
}
