package model

import "time"

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Due         time.Time `json:"due" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// IsExpired reports whether the task is past due and still open.
// It is a computed predicate, never stored.
func (t *Task) IsExpired(now time.Time) bool {
	return t.Due.Before(now) && !t.Completed
}
