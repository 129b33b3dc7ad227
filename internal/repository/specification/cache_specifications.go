package specification

import "gorm.io/gorm"

type ByLocation struct {
	Location string
}

func (s ByLocation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("location = ?", s.Location)
}

type ByDistrict struct {
	District string
}

func (s ByDistrict) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("district = ?", s.District)
}

type ByCropName struct {
	CropName string
}

func (s ByCropName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("crop_name = ?", s.CropName)
}
