package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Ondrysak/GastroTartarus/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists the alert and fans it out over websocket and push.
// Safe to call before InitAlertDeps; it just no-ops.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Pantry Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

// CheckExpiring emits an alert for every pantry entry expiring within
// daysAhead days. An entry alerts at most once per calendar day.
func CheckExpiring(db *gorm.DB, daysAhead int) error {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	future := now.AddDate(0, 0, daysAhead)

	var entries []models.PantryEntry
	err := db.
		Preload("Ingredient").
		Where("expiration_date IS NOT NULL AND expiration_date >= ? AND expiration_date <= ?", startOfDay, future).
		Find(&entries).Error
	if err != nil {
		return err
	}
	for _, e := range entries {
		msg := fmt.Sprintf("%s (entry #%d) expires on %s",
			e.Ingredient.Name, e.ID, e.ExpirationDate.Format("2006-01-02"))

		var count int64
		db.Model(&models.Alert{}).
			Where("user_id = ? AND type = ? AND message = ? AND created_at >= ?",
				e.UserID, "expiry", msg, startOfDay).
			Count(&count)
		if count > 0 {
			continue
		}

		EmitAlert(e.UserID, "expiry", msg)
	}
	return nil
}

// StartExpiryWorker scans on a fixed interval until the returned channel
// is closed.
func StartExpiryWorker(db *gorm.DB, interval time.Duration, daysAhead int) chan struct{} {
	stop := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := CheckExpiring(db, daysAhead); err != nil {
					log.Printf("expiry scan failed: %v", err)
				}
			case <-stop:
				return
			}
		}
	}()
	return stop
}
