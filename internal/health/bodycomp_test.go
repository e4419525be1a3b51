package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	res, err := BMI(180, 80)
	require.NoError(t, err)
	assert.Equal(t, 24.69, res.Value)
	assert.Equal(t, BMINormal, res.Category)

	res, err = BMI(100, 80)
	require.NoError(t, err)
	assert.Equal(t, float64(80), res.Value)
	assert.Equal(t, BMIObese3, res.Category)
}

func TestBMI_Monotonic(t *testing.T) {
	// increasing weight at fixed height increases BMI
	prev := 0.0
	for weight := 50.0; weight <= 150; weight += 10 {
		res, err := BMI(175, weight)
		require.NoError(t, err)
		assert.Greater(t, res.Value, prev)
		prev = res.Value
	}

	// increasing height at fixed weight decreases BMI
	prev = 1000
	for height := 150.0; height <= 210; height += 10 {
		res, err := BMI(height, 80)
		require.NoError(t, err)
		assert.Less(t, res.Value, prev)
		prev = res.Value
	}
}

func TestBMI_InvalidInput(t *testing.T) {
	_, err := BMI(0, 80)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	_, err = BMI(180, 0)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	_, err = BMI(-180, 80)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestBMICategoryOf(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{15.99, BMISevereThinness},
		{16, BMIModerateThinness},
		{16.99, BMIModerateThinness},
		{17, BMIMildThinness},
		{18.49, BMIMildThinness},
		{18.5, BMINormal},
		{24.99, BMINormal},
		{25, BMIOverweight},
		{29.99, BMIOverweight},
		{30, BMIObese1},
		{34.99, BMIObese1},
		{35, BMIObese2},
		{39.99, BMIObese2},
		{40, BMIObese3},
		{80, BMIObese3},
	}
	for _, tt := range tests {
		got, err := BMICategoryOf(tt.bmi)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "bmi %f", tt.bmi)
	}
}

func TestBodyFat_Male(t *testing.T) {
	res, err := BodyFat(180, GenderMale, 80, 38, 85, 0)
	require.NoError(t, err)
	assert.Greater(t, res.Pct, 3.0)
	assert.Less(t, res.Pct, 60.0)
	assert.InDelta(t, res.FatMassKg+res.LeanMassKg, 80, 0.011)
	assert.Equal(t, round2(80*res.Pct/100), res.FatMassKg)
}

func TestBodyFat_Female(t *testing.T) {
	res, err := BodyFat(165, GenderFemale, 60, 33, 70, 95)
	require.NoError(t, err)
	assert.Greater(t, res.Pct, 3.0)
	assert.Less(t, res.Pct, 60.0)
	assert.InDelta(t, res.FatMassKg+res.LeanMassKg, 60, 0.011)
}

func TestBodyFat_FemaleWithoutHip(t *testing.T) {
	_, err := BodyFat(165, GenderFemale, 60, 33, 70, 0)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestBodyFat_WaistNotGreaterThanNeck(t *testing.T) {
	// waist == neck would put 0 into the logarithm
	_, err := BodyFat(180, GenderMale, 80, 85, 85, 0)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)

	_, err = BodyFat(180, GenderMale, 80, 90, 85, 0)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestBodyFat_Clamped(t *testing.T) {
	// an extremely lean input clamps to the 3% floor
	res, err := BodyFat(200, GenderMale, 60, 84.9, 85, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Pct)

	// an extremely obese input clamps to the 60% ceiling
	res, err = BodyFat(150, GenderMale, 200, 40, 250, 0)
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.Pct)
}

func TestPerfectWeight(t *testing.T) {
	// 180cm = 70.866 inches => 10.866 inches over 5 feet
	res, err := PerfectWeight(180, GenderMale, 90)
	require.NoError(t, err)
	assert.Equal(t, 72.65, res.WeightKg)
	assert.Equal(t, 17.35, res.DeltaKg)
	assert.Equal(t, 17.35, res.AbsDeltaKg)
	assert.True(t, res.ShouldLose)

	res, err = PerfectWeight(180, GenderFemale, 60)
	require.NoError(t, err)
	assert.Equal(t, 67.47, res.WeightKg)
	assert.Equal(t, -7.47, res.DeltaKg)
	assert.Equal(t, 7.47, res.AbsDeltaKg)
	assert.False(t, res.ShouldLose)
}
