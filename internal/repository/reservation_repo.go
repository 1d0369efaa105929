package repository

import (
	"context"
	"errors"
	"time"

	"carrental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrOverlapConstraint is returned when the storage-level exclusion
// constraint rejects an insert or update because another booked
// reservation already covers an overlapping date range.
var ErrOverlapConstraint = errors.New("reservation overlap constraint violation")

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	UserID           int64     `gorm:"column:user_id;index"`
	VehicleID        int64     `gorm:"column:vehicle_id;index"`
	StartDate        time.Time `gorm:"column:start_date"`
	EndDate          time.Time `gorm:"column:end_date"`
	TotalPrice       float64   `gorm:"column:total_price"`
	Status           string    `gorm:"column:status"`
	ConfirmationCode string    `gorm:"column:confirmation_code"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:               m.ID,
		UserID:           m.UserID,
		VehicleID:        m.VehicleID,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		TotalPrice:       m.TotalPrice,
		Status:           domain.ReservationStatus(m.Status),
		ConfirmationCode: m.ConfirmationCode,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toReservationModel(b *domain.Reservation) reservationModel {
	return reservationModel{
		ID:               b.ID,
		UserID:           b.UserID,
		VehicleID:        b.VehicleID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		ConfirmationCode: b.ConfirmationCode,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// mapConstraintError translates the PostgreSQL exclusion-constraint
// violation into ErrOverlapConstraint. Other errors pass through.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" || (pgErr.Code == "23505" && pgErr.ConstraintName == "excl_vehicle_date_overlap") {
			return ErrOverlapConstraint
		}
	}
	return err
}

func (r *ReservationRepository) Create(ctx context.Context, b *domain.Reservation) error {
	m := toReservationModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapConstraintError(tx.Error)
	}
	*b = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) Save(ctx context.Context, b *domain.Reservation) error {
	m := toReservationModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return mapConstraintError(tx.Error)
	}
	*b = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) GetByUserOrderByStartDateDesc(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ExistsOverlapping reports whether the vehicle has a reservation in one
// of the given statuses whose inclusive date range intersects
// [start, end]: existing.start <= end AND existing.end >= start.
func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, vehicleID int64, statuses []domain.ReservationStatus, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("vehicle_id = ?", vehicleID).
		Where("status IN ?", statusStrings(statuses)).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// FindBlockedVehicleIDs returns the distinct vehicle ids that have a
// reservation in one of the given statuses overlapping [start, end].
func (r *ReservationRepository) FindBlockedVehicleIDs(ctx context.Context, start, end time.Time, statuses []domain.ReservationStatus) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Distinct("vehicle_id").
		Where("status IN ?", statusStrings(statuses)).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Pluck("vehicle_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}
