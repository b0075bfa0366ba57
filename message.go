package ftracker

import (
	"fmt"
	"math"
)

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage summarizes a completed workout
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary as a single report line
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Finite reports whether every quantity is a finite number
func (m InfoMessage) Finite() bool {
	for _, v := range []float64{m.Duration, m.Distance, m.Speed, m.Calories} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// ShowTrainingInfo returns the summary of the workout
func ShowTrainingInfo(t Training) InfoMessage {
	// calories depend on the mean speed so keep this order
	distance := t.Distance()
	speed := t.MeanSpeed()
	calories := t.SpentCalories()
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// Report returns the report line for the workout
func Report(t Training) string {
	return ShowTrainingInfo(t).Message()
}
