package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers health, never below zero.
func (h *HealthData) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Restore sets health to value, capped at Max.
func (h *HealthData) Restore(value int) {
	h.Current = min(value, h.Max)
}

// Percent is health as 0-100 of Max.
func (h HealthData) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max) * 100
}

var Health = donburi.NewComponentType[HealthData]()
