package repository

import (
	"context"
	"time"

	"carrental/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Make        string    `gorm:"column:make"`
	Model       string    `gorm:"column:model"`
	Year        int       `gorm:"column:year"`
	Color       *string   `gorm:"column:color"`
	PricePerDay float64   `gorm:"column:price_per_day"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	var color string
	if m.Color != nil {
		color = *m.Color
	}

	return &domain.Vehicle{
		ID:          m.ID,
		Make:        m.Make,
		Model:       m.Model,
		Year:        m.Year,
		Color:       color,
		PricePerDay: m.PricePerDay,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	var color *string
	if v.Color != "" {
		c := v.Color
		color = &c
	}

	return vehicleModel{
		ID:          v.ID,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Color:       color,
		PricePerDay: v.PricePerDay,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	var rows []vehicleModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *VehicleRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&vehicleModel{}, id).Error
}
