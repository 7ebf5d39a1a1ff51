package domain

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Application is an admission form submitted from the website, stored verbatim.
type Application struct {
	ID         int64          `db:"id" json:"id"`
	Payload    types.JSONText `db:"payload" json:"payload"`
	ReceivedAt time.Time      `db:"received_at" json:"received_at"`
}
