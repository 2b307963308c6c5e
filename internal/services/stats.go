package services

import (
	"fmt"
	"time"

	"dukkan/internal/models"
)

// Ciroya sayılan sipariş durumları: ödenmiş ve sonrası.
func countsTowardRevenue(status string) bool {
	switch status {
	case models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusDone:
		return true
	}
	return false
}

// RevenuePoint, trend grafiğinin bir gününü temsil eder.
type RevenuePoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RevenueSeries, son n günün günlük cirosunu döndürür; satışsız günler
// sıfırla doldurulur. Sadece paid/shipped/done siparişler sayılır.
func RevenueSeries(orders []models.Order, days int, now time.Time) []RevenuePoint {
	byDay := map[string]int{}
	for _, o := range orders {
		if !countsTowardRevenue(o.Status) {
			continue
		}
		byDay[dateKey(o.CreatedAt)] += o.Total()
	}

	points := make([]RevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		points = append(points, RevenuePoint{
			Label: fmt.Sprintf("%d/%d", d.Day(), int(d.Month())),
			Value: byDay[dateKey(d)],
		})
	}
	return points
}

// MonthlyRevenue, içinde bulunulan ayın cirosunu döndürür.
func MonthlyRevenue(orders []models.Order, now time.Time) int {
	total := 0
	for _, o := range orders {
		if !countsTowardRevenue(o.Status) {
			continue
		}
		if o.CreatedAt.Year() == now.Year() && o.CreatedAt.Month() == now.Month() {
			total += o.Total()
		}
	}
	return total
}

// CountByStatus, sipariş sayılarını duruma göre gruplar.
func CountByStatus(orders []models.Order) map[string]int {
	counts := map[string]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}
