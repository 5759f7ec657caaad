package fechas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var laPaz = time.FixedZone("America/La_Paz", -4*3600)

func TestRangoFechaSimple(t *testing.T) {
	r, err := RangoDelDia("2024-01-15", time.Now(), laPaz)
	require.NoError(t, err)

	// 2024-01-15 00:00 UTC-4 == 2024-01-15 04:00 UTC
	assert.Equal(t, time.Date(2024, 1, 15, 4, 0, 0, 0, time.UTC), r.InicioUTC)
	assert.Equal(t, time.Date(2024, 1, 16, 4, 0, 0, 0, time.UTC), r.FinUTC)
	assert.Equal(t, "2024-01-15", r.Etiqueta)
}

func TestRangoSiempre24Horas(t *testing.T) {
	fechas := []string{
		"2024-01-31", // month rollover
		"2024-02-28",
		"2024-02-29", // leap day
		"2023-02-28", // non-leap February
		"2024-12-31", // year rollover
		"2024-04-30",
	}
	for _, f := range fechas {
		r, err := RangoDelDia(f, time.Now(), laPaz)
		require.NoError(t, err, f)
		assert.Equal(t, 24*time.Hour, r.FinUTC.Sub(r.InicioUTC), f)
	}
}

func TestRolloverExplicito(t *testing.T) {
	r, err := RangoDelDia("2024-12-31", time.Now(), laPaz)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 4, 0, 0, 0, time.UTC), r.FinUTC)

	r, err = RangoDelDia("2023-02-28", time.Now(), laPaz)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 1, 4, 0, 0, 0, time.UTC), r.FinUTC)

	r, err = RangoDelDia("2024-02-28", time.Now(), laPaz)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 4, 0, 0, 0, time.UTC), r.FinUTC)
}

func TestEtiquetaIdempotente(t *testing.T) {
	// resolver(etiqueta).Etiqueta == etiqueta
	r1, err := RangoDelDia("2024-07-09", time.Now(), laPaz)
	require.NoError(t, err)
	r2, err := RangoDelDia(r1.Etiqueta, time.Now(), laPaz)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestFechaVaciaUsaAhora(t *testing.T) {
	// 2024-03-01 02:30 UTC is still 2024-02-29 22:30 in La Paz
	ahora := time.Date(2024, 3, 1, 2, 30, 0, 0, time.UTC)
	r, err := RangoDelDia("", ahora, laPaz)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", r.Etiqueta)
}

func TestTimestampCompleto(t *testing.T) {
	r, err := RangoDelDia("2024-06-10T01:00:00Z", time.Now(), laPaz)
	require.NoError(t, err)
	// 01:00 UTC is 21:00 of the previous local day
	assert.Equal(t, "2024-06-09", r.Etiqueta)
}

func TestFechaInvalida(t *testing.T) {
	_, err := RangoDelDia("no-es-fecha", time.Now(), laPaz)
	assert.Error(t, err)

	_, err = RangoDelDia("2023-02-29", time.Now(), laPaz)
	assert.Error(t, err)

	_, err = RangoDelDia("2024-13-01", time.Now(), laPaz)
	assert.Error(t, err)
}
