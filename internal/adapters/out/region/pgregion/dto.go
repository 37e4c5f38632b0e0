package pgregion

// RegionDTO records the byte size of one region.
type RegionDTO struct {
	Tag  string `gorm:"primaryKey"`
	Size int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (RegionDTO) TableName() string {
	return "regions"
}

// RegionBlockDTO is one fixed-size block of a region.
type RegionBlockDTO struct {
	Tag   string `gorm:"primaryKey"`
	Block int64  `gorm:"primaryKey;autoIncrement:false"`
	Data  []byte `gorm:"type:bytea;not null"`
}

func (RegionBlockDTO) TableName() string {
	return "region_blocks"
}
