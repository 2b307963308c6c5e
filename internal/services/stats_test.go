package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukkan/internal/models"
)

func orderAt(day time.Time, status string, total int) models.Order {
	return models.Order{
		ID:     "SIP-TEST",
		Status: status,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Ürün", Qty: 1, Price: total},
		},
		CreatedAt: day,
	}
}

func TestRevenueSeriesZeroFillsAndFiltersStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(now, models.OrderStatusPaid, 500),
		orderAt(now.AddDate(0, 0, -1), models.OrderStatusShipped, 300),
		orderAt(now.AddDate(0, 0, -1), models.OrderStatusDone, 200),
		// Bekleyen ve iptal ciroya girmez
		orderAt(now, models.OrderStatusPending, 9999),
		orderAt(now.AddDate(0, 0, -2), models.OrderStatusCanceled, 9999),
	}

	points := RevenueSeries(orders, 7, now)
	require.Len(t, points, 7)

	assert.Equal(t, "10/3", points[6].Label)
	assert.Equal(t, 500, points[6].Value)
	assert.Equal(t, 500, points[5].Value)
	for i := 0; i < 5; i++ {
		assert.Zero(t, points[i].Value, "satışsız gün sıfır olmalı: %s", points[i].Label)
	}
}

func TestRevenueSeriesOldOrdersOutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(now.AddDate(0, 0, -30), models.OrderStatusPaid, 1000),
	}

	points := RevenueSeries(orders, 14, now)
	for _, p := range points {
		assert.Zero(t, p.Value)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), models.OrderStatusPaid, 400),
		orderAt(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), models.OrderStatusDone, 600),
		orderAt(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), models.OrderStatusPaid, 5000),
		orderAt(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), models.OrderStatusPending, 5000),
	}

	assert.Equal(t, 1000, MonthlyRevenue(orders, now))
}

func TestOrderTotalSumsLines(t *testing.T) {
	o := models.Order{
		Items: []models.OrderItem{
			{Qty: 2, Price: 100},
			{Qty: 3, Price: 50},
		},
	}
	assert.Equal(t, 350, o.Total())
}

func TestCountByStatus(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusPaid},
		{Status: models.OrderStatusCanceled},
	}

	counts := CountByStatus(orders)
	assert.Equal(t, 2, counts[models.OrderStatusPending])
	assert.Equal(t, 1, counts[models.OrderStatusPaid])
	assert.Equal(t, 1, counts[models.OrderStatusCanceled])
	assert.Zero(t, counts[models.OrderStatusShipped])
}
