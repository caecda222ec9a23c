package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orats_data/internal/feature/dailies/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&DailyBarModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedBar creates a test bar in the database for testing.
func seedBar(t *testing.T, db *gorm.DB, ticker string, tradeDate time.Time) *DailyBarModel {
	t.Helper()

	bar := &DailyBarModel{
		Ticker:    ticker,
		TradeDate: tradeDate,
		Open:      100.0,
		High:      110.0,
		Low:       90.0,
		Close:     105.0,
		Volume:    1000,
	}
	err := db.Create(bar).Error
	require.NoError(t, err, "failed to seed bar")

	return bar
}

func TestNewDailyBarRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewDailyBarRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestDailyBarGorm_UpsertBatch(t *testing.T) {
	t.Parallel()

	baseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		bars         []entity.DailyBar
		wantErr      bool
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, db *gorm.DB)
	}{
		{
			name: "success: insert single bar",
			bars: []entity.DailyBar{
				{
					Ticker:    "AAPL",
					TradeDate: baseDate,
					Open:      100.0,
					High:      110.0,
					Low:       90.0,
					Close:     105.0,
					Volume:    1000,
				},
			},
			wantErr: false,
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&DailyBarModel{}).Count(&count)
				assert.Equal(t, int64(1), count, "bar count does not match")
			},
		},
		{
			name: "success: insert multiple bars",
			bars: []entity.DailyBar{
				{
					Ticker:    "AAPL",
					TradeDate: baseDate,
					Open:      100.0,
					High:      110.0,
					Low:       90.0,
					Close:     105.0,
					Volume:    1000,
				},
				{
					Ticker:    "AAPL",
					TradeDate: baseDate.AddDate(0, 0, 1),
					Open:      105.0,
					High:      115.0,
					Low:       95.0,
					Close:     110.0,
					Volume:    1500,
				},
			},
			wantErr: false,
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&DailyBarModel{}).Count(&count)
				assert.Equal(t, int64(2), count, "bar count does not match")
			},
		},
		{
			name:    "success: empty slice",
			bars:    []entity.DailyBar{},
			wantErr: false,
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&DailyBarModel{}).Count(&count)
				assert.Equal(t, int64(0), count, "bar count should be 0")
			},
		},
		{
			name: "success: upsert updates existing bar",
			bars: []entity.DailyBar{
				{
					Ticker:    "AAPL",
					TradeDate: baseDate,
					Open:      200.0,
					High:      220.0,
					Low:       180.0,
					Close:     210.0,
					Volume:    2000,
				},
			},
			wantErr: false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedBar(t, db, "AAPL", baseDate)
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&DailyBarModel{}).Count(&count)
				assert.Equal(t, int64(1), count, "bar count should remain 1 after upsert")

				var bar DailyBarModel
				db.First(&bar)
				assert.Equal(t, 200.0, bar.Open, "Open should be updated")
				assert.Equal(t, 220.0, bar.High, "High should be updated")
				assert.Equal(t, 180.0, bar.Low, "Low should be updated")
				assert.Equal(t, 210.0, bar.Close, "Close should be updated")
				assert.Equal(t, int64(2000), bar.Volume, "Volume should be updated")
			},
		},
		{
			name: "success: upsert with mixed insert and update",
			bars: []entity.DailyBar{
				{
					Ticker:    "AAPL",
					TradeDate: baseDate,
					Open:      200.0,
					High:      220.0,
					Low:       180.0,
					Close:     210.0,
					Volume:    2000,
				},
				{
					Ticker:    "AAPL",
					TradeDate: baseDate.AddDate(0, 0, 1),
					Open:      210.0,
					High:      230.0,
					Low:       190.0,
					Close:     220.0,
					Volume:    2500,
				},
			},
			wantErr: false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedBar(t, db, "AAPL", baseDate)
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&DailyBarModel{}).Count(&count)
				assert.Equal(t, int64(2), count, "bar count should be 2")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewDailyBarRepository(db)

			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			err := repo.UpsertBatch(context.Background(), tt.bars)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.validateFunc != nil {
					tt.validateFunc(t, db)
				}
			}
		})
	}
}

func TestDailyBarGorm_Find(t *testing.T) {
	t.Parallel()

	baseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		ticker       string
		outputsize   int
		wantErr      bool
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, bars []entity.DailyBar)
	}{
		{
			name:       "success: find bars by ticker",
			ticker:     "AAPL",
			outputsize: 10,
			wantErr:    false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedBar(t, db, "AAPL", baseDate)
				seedBar(t, db, "AAPL", baseDate.AddDate(0, 0, 1))
			},
			validateFunc: func(t *testing.T, bars []entity.DailyBar) {
				assert.Len(t, bars, 2, "should return 2 bars")
			},
		},
		{
			name:       "success: empty result when no matching bars",
			ticker:     "NOTFOUND",
			outputsize: 10,
			wantErr:    false,
			validateFunc: func(t *testing.T, bars []entity.DailyBar) {
				assert.Empty(t, bars, "should return empty slice")
			},
		},
		{
			name:       "success: filter by ticker",
			ticker:     "AAPL",
			outputsize: 10,
			wantErr:    false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedBar(t, db, "AAPL", baseDate)
				seedBar(t, db, "GOOGL", baseDate)
			},
			validateFunc: func(t *testing.T, bars []entity.DailyBar) {
				assert.Len(t, bars, 1, "should return only AAPL bar")
				assert.Equal(t, "AAPL", bars[0].Ticker)
			},
		},
		{
			name:       "success: respect outputsize limit",
			ticker:     "AAPL",
			outputsize: 2,
			wantErr:    false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				for i := 0; i < 5; i++ {
					seedBar(t, db, "AAPL", baseDate.AddDate(0, 0, i))
				}
			},
			validateFunc: func(t *testing.T, bars []entity.DailyBar) {
				assert.Len(t, bars, 2, "should return only 2 bars")
			},
		},
		{
			name:       "success: outputsize 0 returns all",
			ticker:     "AAPL",
			outputsize: 0,
			wantErr:    false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				for i := 0; i < 5; i++ {
					seedBar(t, db, "AAPL", baseDate.AddDate(0, 0, i))
				}
			},
			validateFunc: func(t *testing.T, bars []entity.DailyBar) {
				assert.Len(t, bars, 5, "should return all bars")
			},
		},
		{
			name:       "success: results ordered by trade date descending",
			ticker:     "AAPL",
			outputsize: 10,
			wantErr:    false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedBar(t, db, "AAPL", baseDate)
				seedBar(t, db, "AAPL", baseDate.AddDate(0, 0, 2))
				seedBar(t, db, "AAPL", baseDate.AddDate(0, 0, 1))
			},
			validateFunc: func(t *testing.T, bars []entity.DailyBar) {
				assert.Len(t, bars, 3, "should return 3 bars")
				assert.True(t, bars[0].TradeDate.After(bars[1].TradeDate), "first should be newer than second")
				assert.True(t, bars[1].TradeDate.After(bars[2].TradeDate), "second should be newer than third")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewDailyBarRepository(db)

			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			bars, err := repo.Find(context.Background(), tt.ticker, tt.outputsize)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.validateFunc != nil {
					tt.validateFunc(t, bars)
				}
			}
		})
	}
}

func TestDailyBarGorm_Find_EntityMapping(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewDailyBarRepository(db)

	tradeDate := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	bar := &DailyBarModel{
		Ticker:    "AAPL",
		TradeDate: tradeDate,
		Open:      150.5,
		High:      155.75,
		Low:       149.25,
		Close:     154.0,
		Volume:    5000000,
	}
	err := db.Create(bar).Error
	require.NoError(t, err)

	result, err := repo.Find(context.Background(), "AAPL", 1)
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "AAPL", result[0].Ticker, "Ticker does not match")
	assert.Equal(t, tradeDate.Unix(), result[0].TradeDate.Unix(), "TradeDate does not match")
	assert.Equal(t, 150.5, result[0].Open, "Open does not match")
	assert.Equal(t, 155.75, result[0].High, "High does not match")
	assert.Equal(t, 149.25, result[0].Low, "Low does not match")
	assert.Equal(t, 154.0, result[0].Close, "Close does not match")
	assert.Equal(t, int64(5000000), result[0].Volume, "Volume does not match")
}
