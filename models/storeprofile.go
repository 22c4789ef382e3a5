package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/faukiofficial/Tokokita/apperrors"
)

type SocialMedia struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	WhatsApp  string `json:"whatsapp"`
	Twitter   string `json:"twitter"`
	TikTok    string `json:"tiktok"`
}

type StoreAddress struct {
	Street    string   `json:"jalan"`
	RTRW      string   `json:"rtrw"`
	Kelurahan string   `json:"kelurahan"`
	Kecamatan string   `json:"kecamatan"`
	City      City     `json:"kota"`
	Province  Province `json:"provinsi"`
}

// StoreProfile is a singleton: the shop's own identity and origin address for
// shipping-cost lookups.
type StoreProfile struct {
	ID          uint         `gorm:"primaryKey" json:"_id"`
	StoreName   string       `gorm:"not null" json:"namaToko"`
	PhoneNumber string       `gorm:"not null" json:"nomorTelepon"`
	Email       string       `gorm:"not null" json:"email"`
	Address     StoreAddress `gorm:"serializer:json" json:"alamat"`
	SocialMedia SocialMedia  `gorm:"serializer:json" json:"mediaSosial"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (p *StoreProfile) BeforeSave(tx *gorm.DB) error {
	if p.Address.City.ProvinceID != p.Address.Province.ProvinceID {
		return apperrors.New(apperrors.Validation, "province_id pada kota tidak cocok dengan province_id pada provinsi.")
	}
	return nil
}
