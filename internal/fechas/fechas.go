// Package fechas resolves calendar days of the business timezone into
// half-open UTC ranges. Every aggregation over "a day" goes through here so
// that date boundaries are computed in exactly one place.
package fechas

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrFechaInvalida marks unparseable or out-of-range date inputs so callers
// can map them to a validation failure.
var ErrFechaInvalida = errors.New("fecha inválida")

// Rango covers exactly one local calendar day: [InicioUTC, FinUTC).
// Etiqueta is the local date as YYYY-MM-DD, usable as a display/grouping key
// even when no row falls inside the range.
type Rango struct {
	InicioUTC time.Time
	FinUTC    time.Time
	Etiqueta  string
}

var fechaSimple = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// RangoDelDia resolves fecha into the UTC range of one local calendar day.
//
// A bare YYYY-MM-DD string already designates a local day and is taken
// literally, without timezone conversion of the input. An empty fecha means
// "the day containing ahora"; anything else must be an RFC 3339 timestamp,
// which is projected into loc before extracting the day.
func RangoDelDia(fecha string, ahora time.Time, loc *time.Location) (Rango, error) {
	var anio, mes, dia int

	switch {
	case fecha == "":
		local := ahora.In(loc)
		anio, mes, dia = local.Year(), int(local.Month()), local.Day()
	case fechaSimple.MatchString(fecha):
		m := fechaSimple.FindStringSubmatch(fecha)
		fmt.Sscanf(m[1], "%d", &anio)
		fmt.Sscanf(m[2], "%d", &mes)
		fmt.Sscanf(m[3], "%d", &dia)
		if mes < 1 || mes > 12 || dia < 1 || dia > diasEnMes(anio, mes) {
			return Rango{}, fmt.Errorf("%w: fuera de rango %q", ErrFechaInvalida, fecha)
		}
	default:
		t, err := time.Parse(time.RFC3339, fecha)
		if err != nil {
			return Rango{}, fmt.Errorf("%w: %q", ErrFechaInvalida, fecha)
		}
		local := t.In(loc)
		anio, mes, dia = local.Year(), int(local.Month()), local.Day()
	}

	inicio := time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, loc)
	sigAnio, sigMes, sigDia := diaSiguiente(anio, mes, dia)
	fin := time.Date(sigAnio, time.Month(sigMes), sigDia, 0, 0, 0, 0, loc)

	return Rango{
		InicioUTC: inicio.UTC(),
		FinUTC:    fin.UTC(),
		Etiqueta:  fmt.Sprintf("%04d-%02d-%02d", anio, mes, dia),
	}, nil
}

// diaSiguiente advances one calendar day with explicit month/year rollover.
func diaSiguiente(anio, mes, dia int) (int, int, int) {
	if dia < diasEnMes(anio, mes) {
		return anio, mes, dia + 1
	}
	if mes < 12 {
		return anio, mes + 1, 1
	}
	return anio + 1, 1, 1
}

func diasEnMes(anio, mes int) int {
	switch mes {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if esBisiesto(anio) {
			return 29
		}
		return 28
	}
}

func esBisiesto(anio int) bool {
	return anio%4 == 0 && (anio%100 != 0 || anio%400 == 0)
}
