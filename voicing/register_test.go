package voicing

import (
	"testing"

	"github.com/jsphweid/voicelead/model"
	"github.com/stretchr/testify/assert"
)

func TestPenalty(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(0.25, Penalty(model.Notes{60, 64, 67}, model.Close), 1e-9)
	assert.InDelta(68.5, Penalty(model.Notes{30, 40}, model.Close), 1e-9)
	assert.Zero(Penalty(nil, model.Close))
}

func TestConstrainToRegister(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Notes{60, 64, 67}, ConstrainToRegister(model.Notes{24, 28, 31}, model.Close))
	assert.Equal(model.Notes{60, 64, 67}, ConstrainToRegister(model.Notes{96, 100, 103}, model.Close))
	assert.Equal(36, RegisterShift(model.Notes{24, 28, 31}, model.Close))
}

func TestConstrainToRegisterLeavesWideVoicings(t *testing.T) {
	wide := model.Notes{20, 100}
	assert.Equal(t, wide, ConstrainToRegister(wide, model.Close))
	assert.Equal(t, 0, RegisterShift(wide, model.Close))
}

func TestConstrainToRegisterKeepsEveryStyleInside(t *testing.T) {
	for _, style := range model.AllStyles() {
		r := RegisterFor(style)
		notes := ConstrainToRegister(Apply(style, cMaj7), style)
		assert.GreaterOrEqual(t, notes[0], r.Min, style.String())
		assert.LessOrEqual(t, notes[len(notes)-1], r.Max, style.String())
	}
}

func TestFitShift(t *testing.T) {
	assert := assert.New(t)
	// already inside, even though another octave sits nearer the center
	assert.Equal(0, FitShift(model.Notes{72, 76, 79, 83}, model.Close))
	assert.Equal(-12, FitShift(model.Notes{84, 88, 91, 95}, model.Close))
	assert.Equal(24, FitShift(model.Notes{24, 28, 31}, model.Close))
	assert.Equal(0, FitShift(nil, model.Close))

	wide := model.Notes{20, 100}
	assert.Equal(RegisterShift(wide, model.Close), FitShift(wide, model.Close))
}
