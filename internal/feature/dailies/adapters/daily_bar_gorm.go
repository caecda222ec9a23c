// Package adapters provides the repository implementations for the
// dailies feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orats_data/internal/feature/dailies/domain/entity"
	"orats_data/internal/feature/dailies/usecase"
)

type dailyBarGorm struct {
	db *gorm.DB
}

var _ usecase.DailyBarRepository = (*dailyBarGorm)(nil)

// NewDailyBarRepository creates a GORM-backed DailyBarRepository.
func NewDailyBarRepository(db *gorm.DB) *dailyBarGorm {
	return &dailyBarGorm{db: db}
}

// DailyBarModel is the persistence model for daily bars.
type DailyBarModel struct {
	ID        uint      `gorm:"primaryKey"`
	Ticker    string    `gorm:"size:32;not null;uniqueIndex:daily_bar_ticker_date,priority:1"`
	TradeDate time.Time `gorm:"not null;uniqueIndex:daily_bar_ticker_date,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (DailyBarModel) TableName() string {
	return "daily_bars"
}

func toModel(e entity.DailyBar) DailyBarModel {
	return DailyBarModel{
		Ticker:    e.Ticker,
		TradeDate: e.TradeDate,
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
	}
}

func (r *dailyBarGorm) UpsertBatch(ctx context.Context, bars []entity.DailyBar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]DailyBarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}, {Name: "trade_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

func (r *dailyBarGorm) Find(ctx context.Context, ticker string, outputsize int) ([]entity.DailyBar, error) {
	var rows []DailyBarModel
	q := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("trade_date DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.DailyBar, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.DailyBar{
			Ticker:    m.Ticker,
			TradeDate: m.TradeDate,
			Open:      m.Open,
			High:      m.High,
			Low:       m.Low,
			Close:     m.Close,
			Volume:    m.Volume,
		})
	}
	return out, nil
}
