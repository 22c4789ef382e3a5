package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
)

// City and Province snapshot the RajaOngkir region records the user picked,
// so shipping-cost lookups keep working even if the upstream catalog shifts.
type City struct {
	CityID     string `json:"city_id"`
	CityName   string `json:"city_name"`
	Type       string `json:"type"`
	PostalCode string `json:"postal_code"`
	ProvinceID string `json:"province_id"`
}

type Province struct {
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
}

type Address struct {
	ID            uint      `gorm:"primaryKey" json:"_id"`
	UserID        uint      `gorm:"index;not null" json:"user"`
	RecipientName string    `gorm:"not null" json:"namaPenerima"`
	PhoneNumber   string    `gorm:"not null" json:"nomorTelepon"`
	Street        string    `gorm:"not null" json:"jalan"`
	RTRW          string    `json:"rtrw"`
	Kelurahan     string    `gorm:"not null" json:"kelurahan"`
	Kecamatan     string    `gorm:"not null" json:"kecamatan"`
	City          City      `gorm:"serializer:json" json:"kota"`
	Province      Province  `gorm:"serializer:json" json:"provinsi"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeSave rejects addresses whose city does not belong to the selected
// province.
func (a *Address) BeforeSave(tx *gorm.DB) error {
	if a.City.ProvinceID != a.Province.ProvinceID {
		return apperrors.New(apperrors.Validation, "province_id pada kota tidak cocok dengan province_id pada provinsi.")
	}
	return nil
}
