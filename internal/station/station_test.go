package station

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(cells ...string) RawRow {
	return NewRawRow(5, cells)
}

func TestParseChainage(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2+350", 2350},
		{"1500", 1500},
		{" 0+000 ", 0},
		{"12.5", 12.5},
		{"1+2+3", 123},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChainage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChainageErrors(t *testing.T) {
	for _, in := range []string{"", "km2", "-100", "NaN", "+"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseChainage(in)
			var ce *InvalidChainageError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, in, ce.Value)
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "2+350", Label("2350"))
	assert.Equal(t, "0+050", Label("50"))
	assert.Equal(t, "1+500", Label("1500.7"))
	assert.Equal(t, "2+350", Label("2+350"))
	assert.Equal(t, "CH-A", Label("CH-A"))
	assert.Equal(t, "12+005", FormatChainage(12005))
}

func TestValidate(t *testing.T) {
	rec, err := Validate(row("1", "2+350", "10", "2", "6", "0.5", "60"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 5, rec.Row)
	assert.Equal(t, "1", rec.SequenceNumber)
	assert.Equal(t, "2+350", rec.ChainageText)
	assert.Equal(t, 2350.0, rec.Chainage)
	assert.Equal(t, 10.0, rec.FinishedWidth)
	assert.Equal(t, 2.0, rec.FinishedHeight)
	assert.Equal(t, 6.0, rec.OriginalWidth)
	assert.Equal(t, 0.5, rec.AreaCoefficient)
	assert.Equal(t, 60.0, rec.SlopeAngle)
	assert.False(t, rec.SlopeDefaulted)
}

func TestValidateIncompleteRow(t *testing.T) {
	_, err := Validate(row("1", "100", "10", "", "6", "0.5", "60"), DefaultOptions())

	var ie *IncompleteRowError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 5, ie.Row)
	assert.Equal(t, "Finished Vertical Height", ie.Field)
}

func TestValidateShortRowIsIncomplete(t *testing.T) {
	_, err := Validate(row("1", "100", "10"), DefaultOptions())

	var ie *IncompleteRowError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Finished Vertical Height", ie.Field)
}

func TestValidateInvalidField(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		field string
	}{
		{"text width", []string{"1", "0", "wide", "2", "6", "0.5", "60"}, "Finished Roadway Width"},
		{"negative height", []string{"1", "0", "10", "-2", "6", "0.5", "60"}, "Finished Vertical Height"},
		{"infinite original", []string{"1", "0", "10", "2", "Inf", "0.5", "60"}, "Original Roadway Width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(row(tt.cells...), DefaultOptions())
			var fe *InvalidFieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidateNegativeCoefficientAccepted(t *testing.T) {
	rec, err := Validate(row("1", "0", "10", "2", "6", "-0.2", "60"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, -0.2, rec.AreaCoefficient)
}

func TestValidateInvalidChainageCarriesRow(t *testing.T) {
	_, err := Validate(row("1", "A+100", "10", "2", "6", "0.5", "60"), DefaultOptions())

	var ce *InvalidChainageError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 5, ce.Row)
	assert.Equal(t, "A+100", ce.Value)
}

func TestValidateLenientSlope(t *testing.T) {
	opts := DefaultOptions()

	t.Run("blank defaults", func(t *testing.T) {
		rec, err := Validate(row("1", "0", "10", "2", "6", "0.5", ""), opts)
		require.NoError(t, err)
		assert.Equal(t, 75.0, rec.SlopeAngle)
		assert.True(t, rec.SlopeDefaulted)
	})

	t.Run("text defaults", func(t *testing.T) {
		rec, err := Validate(row("1", "0", "10", "2", "6", "0.5", "steep"), opts)
		require.NoError(t, err)
		assert.Equal(t, 75.0, rec.SlopeAngle)
	})

	t.Run("custom default", func(t *testing.T) {
		o := opts
		o.DefaultSlopeAngle = 45
		rec, err := Validate(row("1", "0", "10", "2", "6", "0.5", ""), o)
		require.NoError(t, err)
		assert.Equal(t, 45.0, rec.SlopeAngle)
	})

	t.Run("zero passes through", func(t *testing.T) {
		rec, err := Validate(row("1", "0", "10", "2", "6", "0.5", "0"), opts)
		require.NoError(t, err)
		assert.Equal(t, 0.0, rec.SlopeAngle)
		assert.False(t, rec.SlopeDefaulted)
	})
}

func TestValidateStrictSlope(t *testing.T) {
	opts := Options{Policy: Strict, DefaultSlopeAngle: 75}

	for _, cell := range []string{"", "0", "steep", "180", "-10"} {
		t.Run(cell, func(t *testing.T) {
			_, err := Validate(row("1", "0+100", "10", "2", "6", "0.5", cell), opts)
			var se *InvalidSlopeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, cell, se.Value)
			assert.Equal(t, "0+100", se.Chainage)
		})
	}

	rec, err := Validate(row("1", "0", "10", "2", "6", "0.5", "90"), opts)
	require.NoError(t, err)
	assert.Equal(t, 90.0, rec.SlopeAngle)
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	r := row(" 1 ", " 2+350 ", "10", "2", "6", "0.5", "")
	before := r
	_, err := Validate(r, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, before, r)
}

func TestErrorMessages(t *testing.T) {
	err := error(&IncompleteRowError{Row: 3, Field: "Area Coefficient"})
	assert.Equal(t, "row 3: missing Area Coefficient", err.Error())

	err = &InvalidChainageError{Row: 4, Value: "x", Err: errors.New("bad")}
	assert.Equal(t, `row 4: invalid chainage "x": bad`, err.Error())

	err = &InvalidSlopeError{Row: 2, Chainage: "0+100"}
	assert.Contains(t, err.Error(), "missing cutting slope")
}
