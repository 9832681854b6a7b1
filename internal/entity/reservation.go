package entity

import "time"

type Reservation struct {
	ID           int64     `json:"id" db:"id"`
	Code         string    `json:"reservation_id" db:"code"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	TimeSlot     string    `json:"time_slot" db:"time_slot"`
	People       int       `json:"people" db:"people"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
