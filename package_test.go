package ftracker_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bzimmer/ftracker"
)

func TestReadPackage(t *testing.T) {
	a := assert.New(t)

	training, err := ftracker.ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	a.NoError(err)
	a.Equal(ftracker.NewSwimming(720, 1, 80, 25, 40), training)

	training, err = ftracker.ReadPackage("RUN", []float64{15000, 1, 75})
	a.NoError(err)
	a.Equal(ftracker.NewRunning(15000, 1, 75), training)

	training, err = ftracker.ReadPackage("WLK", []float64{9000, 1, 75, 180})
	a.NoError(err)
	a.Equal(ftracker.NewSportsWalking(9000, 1, 75, 180), training)

	training, err = ftracker.ReadPackage("RUN", []float64{15000.9, 1, 75})
	a.NoError(err)
	a.Equal(ftracker.NewRunning(15000, 1, 75), training)
}

func TestReadPackageUnknown(t *testing.T) {
	a := assert.New(t)
	for _, code := range []string{"XYZ", "", "run", "SWIM", " RUN"} {
		training, err := ftracker.ReadPackage(code, []float64{15000, 1, 75})
		a.Nil(training)
		var unknown *ftracker.UnknownWorkoutTypeError
		a.True(errors.As(err, &unknown))
		a.Equal(code, unknown.Code)
		a.Equal([]string{"SWM", "RUN", "WLK"}, unknown.Valid)
		a.Contains(err.Error(), "SWM, RUN, WLK")
	}
}

func TestReadPackageFieldCount(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		code string
		data []float64
		want int
	}{
		{code: "SWM", data: []float64{720, 1, 80, 25}, want: 5},
		{code: "RUN", data: []float64{15000, 1, 75, 180}, want: 3},
		{code: "WLK", data: []float64{9000, 1, 75}, want: 4},
		{code: "WLK", data: nil, want: 4},
	}
	for _, tt := range tests {
		training, err := ftracker.ReadPackage(tt.code, tt.data)
		a.Nil(training)
		var count *ftracker.FieldCountError
		a.True(errors.As(err, &count))
		a.Equal(tt.want, count.Want)
		a.Equal(len(tt.data), count.Got)
	}
}
