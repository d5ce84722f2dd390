package devstore

import "time"

// The models mirror the remote store's schema closely enough to honor the
// HTTP contract; they are not a specification of the real storage engine.

type User struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	Email     string
}

type Organization struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Address     string
}

type Employee struct {
	ID             int64        `gorm:"primaryKey"`
	UserID         int64        `gorm:"not null"`
	User           User
	OrganizationID int64        `gorm:"not null"`
	Organization   Organization
	EmployeeType   string       `gorm:"not null"`
	Department     string
	Position       string
	JoiningDate    time.Time
	IsActive       bool
}

type Assignment struct {
	ID             int64        `gorm:"primaryKey"`
	Title          string       `gorm:"not null"`
	Description    string
	OrganizationID int64        `gorm:"not null"`
	Organization   Organization
	Deadline       time.Time
	Status         string       `gorm:"default:pending"`
	CreatedAt      time.Time    `gorm:"autoCreateTime"`
}

type EmployeeAssignment struct {
	ID                 int64      `gorm:"primaryKey"`
	EmployeeID         int64      `gorm:"not null"`
	Employee           Employee
	AssignmentID       int64      `gorm:"not null"`
	Assignment         Assignment
	StartTime          time.Time  `gorm:"not null"`
	EndTime            *time.Time
	EvaluationScore    *float64
	EvaluationComments string
	IsCompleted        bool
}
