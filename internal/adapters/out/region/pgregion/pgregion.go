// Package pgregion persists regions in PostgreSQL through GORM.
//
// Two tables back every region: regions(tag, size) and region_blocks(tag, block, data).
// A write upserts the touched blocks and the new size in one transaction.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	provider, err := pgregion.New(db)
package pgregion

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/adapters/out/region"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type store struct {
	db *gorm.DB
}

// Open connects to dsn and returns a provider over it.
func Open(dsn string) (*region.Provider, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return New(db)
}

// New migrates the region tables on db and returns a provider over it.
func New(db *gorm.DB) (*region.Provider, error) {
	if err := db.AutoMigrate(&RegionDTO{}, &RegionBlockDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate region tables: %w", err)
	}
	return region.NewProvider(&store{db: db}, region.DefaultBlockSize), nil
}

func (s *store) GetBlocks(ctx context.Context, tag string, first, last int64) (map[int64][]byte, error) {
	var dtos []RegionBlockDTO
	if err := s.db.WithContext(ctx).
		Where("tag = ? AND block BETWEEN ? AND ?", tag, first, last).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	blocks := make(map[int64][]byte, len(dtos))
	for _, dto := range dtos {
		blocks[dto.Block] = dto.Data
	}
	return blocks, nil
}

func (s *store) PutBlocks(ctx context.Context, tag string, blocks map[int64][]byte, size int64) error {
	dtos := make([]RegionBlockDTO, 0, len(blocks))
	for idx, data := range blocks {
		dtos = append(dtos, RegionBlockDTO{Tag: tag, Block: idx, Data: data})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}, {Name: "block"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).Create(&dtos).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoUpdates: clause.AssignmentColumns([]string{"size"}),
		}).Create(&RegionDTO{Tag: tag, Size: size}).Error
	})
}

func (s *store) Size(ctx context.Context, tag string) (int64, error) {
	var dto RegionDTO
	if err := s.db.WithContext(ctx).First(&dto, "tag = ?", tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return dto.Size, nil
}

func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
