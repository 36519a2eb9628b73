package entity

import "time"

// Reminder represents a location-tagged reminder.
type Reminder struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description;type:text"`
	Location    string    `gorm:"column:location"`
	Latitude    float64   `gorm:"column:latitude"`
	Longitude   float64   `gorm:"column:longitude"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// SameContent reports whether two reminders carry identical user-visible fields.
// Timestamps are managed by the store and are not compared.
func (r *Reminder) SameContent(other *Reminder) bool {
	return r.ID == other.ID &&
		r.Title == other.Title &&
		r.Description == other.Description &&
		r.Location == other.Location &&
		r.Latitude == other.Latitude &&
		r.Longitude == other.Longitude
}
