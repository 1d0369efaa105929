package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// IsPostgres reports whether the connection speaks PostgreSQL. The
// double-booking exclusion constraint only exists on that path.
func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// EnsureReservationConstraints installs the storage-level guard against
// overlapping booked reservations. On SQLite this is a no-op and the
// service-level overlap check is the only line of defense.
func EnsureReservationConstraints(db *gorm.DB) error {
	if !IsPostgres(db) {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	if err := db.Exec(`ALTER TABLE reservations DROP CONSTRAINT IF EXISTS excl_vehicle_date_overlap`).Error; err != nil {
		return err
	}

	return db.Exec(`
ALTER TABLE reservations
  ADD CONSTRAINT excl_vehicle_date_overlap
  EXCLUDE USING gist (
    vehicle_id WITH =,
    daterange(start_date::date, end_date::date, '[]') WITH &&
  )
  WHERE (status = 'booked')
`).Error
}
