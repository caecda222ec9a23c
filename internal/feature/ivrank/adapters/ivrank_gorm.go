// Package adapters provides the repository implementations for the
// ivrank feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orats_data/internal/feature/ivrank/domain/entity"
	"orats_data/internal/feature/ivrank/usecase"
)

type ivRankGorm struct {
	db *gorm.DB
}

var _ usecase.IvRankRepository = (*ivRankGorm)(nil)

// NewIvRankRepository creates a GORM-backed IvRankRepository.
func NewIvRankRepository(db *gorm.DB) *ivRankGorm {
	return &ivRankGorm{db: db}
}

// IvRankModel is the persistence model for IV rank snapshots.
type IvRankModel struct {
	ID        uint      `gorm:"primaryKey"`
	Ticker    string    `gorm:"size:32;not null;uniqueIndex:ivrank_ticker_date,priority:1"`
	TradeDate time.Time `gorm:"not null;uniqueIndex:ivrank_ticker_date,priority:2"`

	Iv       float64 `gorm:"not null"`
	IvRank1m float64 `gorm:"not null"`
	IvPct1m  float64 `gorm:"not null"`
	IvRank1y float64 `gorm:"not null"`
	IvPct1y  float64 `gorm:"not null"`
}

func (IvRankModel) TableName() string {
	return "ivrank_snapshots"
}

func toModel(e entity.IvRankSnapshot) IvRankModel {
	return IvRankModel{
		Ticker:    e.Ticker,
		TradeDate: e.TradeDate,
		Iv:        e.Iv,
		IvRank1m:  e.IvRank1m,
		IvPct1m:   e.IvPct1m,
		IvRank1y:  e.IvRank1y,
		IvPct1y:   e.IvPct1y,
	}
}

func (r *ivRankGorm) UpsertBatch(ctx context.Context, snaps []entity.IvRankSnapshot) error {
	if len(snaps) == 0 {
		return nil
	}
	ms := make([]IvRankModel, 0, len(snaps))
	for _, e := range snaps {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}, {Name: "trade_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"iv", "iv_rank1m", "iv_pct1m", "iv_rank1y", "iv_pct1y"}),
	}).Create(&ms).Error
}

func (r *ivRankGorm) Find(ctx context.Context, ticker string, outputsize int) ([]entity.IvRankSnapshot, error) {
	var rows []IvRankModel
	q := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("trade_date DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.IvRankSnapshot, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.IvRankSnapshot{
			Ticker:    m.Ticker,
			TradeDate: m.TradeDate,
			Iv:        m.Iv,
			IvRank1m:  m.IvRank1m,
			IvPct1m:   m.IvPct1m,
			IvRank1y:  m.IvRank1y,
			IvPct1y:   m.IvPct1y,
		})
	}
	return out, nil
}
