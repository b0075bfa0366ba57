package ftracker

import "math"

const (
	lenStep     = 0.65 // meters
	swimLenStep = 1.38 // meters
	mInKm       = 1000
	minInH      = 60
)

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20

	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029

	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Training is a single workout read from sensor data
type Training interface {
	// Name is the canonical label of the workout type
	Name() string
	// Duration in hours
	Duration() float64
	// Distance in kilometers
	Distance() float64
	// MeanSpeed in kilometers per hour
	MeanSpeed() float64
	// SpentCalories in kilocalories
	SpentCalories() float64
}

// Workout holds the fields common to all workout types
type Workout struct {
	// Action is the number of steps or strokes
	Action int
	// Hours is the duration of the workout
	Hours float64
	// Weight of the athlete in kilograms
	Weight float64
}

func (w Workout) distance(step float64) float64 {
	return float64(w.Action) * step / mInKm
}

func (w Workout) Duration() float64 {
	return w.Hours
}

func (w Workout) Distance() float64 {
	return w.distance(lenStep)
}

func (w Workout) MeanSpeed() float64 {
	return w.Distance() / w.Hours
}

type Running struct {
	Workout
}

func NewRunning(action int, hours, weight float64) *Running {
	return &Running{Workout: Workout{Action: action, Hours: hours, Weight: weight}}
}

func (r *Running) Name() string {
	return "Running"
}

func (r *Running) SpentCalories() float64 {
	return (runCaloriesSpeedMultiplier*r.MeanSpeed() - runCaloriesSpeedShift) *
		r.Weight / mInKm * r.Hours * minInH
}

type SportsWalking struct {
	Workout
	// Height of the athlete in centimeters
	Height float64
}

func NewSportsWalking(action int, hours, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Workout: Workout{Action: action, Hours: hours, Weight: weight},
		Height:  height,
	}
}

func (s *SportsWalking) Name() string {
	return "SportsWalking"
}

// SpentCalories floors the speed-to-height ratio before applying the multiplier
func (s *SportsWalking) SpentCalories() float64 {
	speed := s.MeanSpeed()
	ratio := floorDiv(speed*speed, s.Height)
	return (walkCaloriesWeightMultiplier*s.Weight +
		ratio*walkCaloriesSpeedMultiplier*s.Weight) * s.Hours * minInH
}

// floorDiv floors the quotient from the remainder so that a quotient which
// rounds up to a whole number still floors below it (1.0 // 0.1 == 9)
func floorDiv(a, b float64) float64 {
	if b == 0 {
		return math.Floor(a / b)
	}
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}

type Swimming struct {
	Workout
	// LengthPool is the length of the pool in meters
	LengthPool float64
	// CountPool is the number of laps swum
	CountPool float64
}

func NewSwimming(action int, hours, weight, lengthPool, countPool float64) *Swimming {
	return &Swimming{
		Workout:    Workout{Action: action, Hours: hours, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s *Swimming) Name() string {
	return "Swimming"
}

func (s *Swimming) Distance() float64 {
	return s.distance(swimLenStep)
}

// MeanSpeed is derived from the pool geometry, not the stroke count
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / mInKm / s.Hours
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.Weight
}
