package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/fechas"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrConteoInvalido     = errors.New("conteo inválido: denominación desconocida o cantidad negativa")
	ErrArqueoNoEncontrado = errors.New("no hay arqueos registrados")
)

type ArqueoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearArqueoRequest) (*dto.CrearArqueoResponse, error)
	PorFecha(ctx context.Context, fecha string) ([]dto.ArqueoResponse, error)
	Ultimo(ctx context.Context) (*dto.ArqueoResponse, error)
}

type arqueoService struct {
	repo repository.ArqueoRepository
	caja CajaService
	loc  *time.Location
}

func NewArqueoService(repo repository.ArqueoRepository, caja CajaService, loc *time.Location) ArqueoService {
	return &arqueoService{repo: repo, caja: caja, loc: loc}
}

func (s *arqueoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearArqueoRequest) (*dto.CrearArqueoResponse, error) {
	conteo, err := parseConteo(req.Conteo)
	if err != nil {
		return nil, err
	}
	if req.CajaChica.IsNegative() {
		return nil, ErrConteoInvalido
	}

	// Derived figures are always recomputed here; the client's copies are
	// display-side conveniences, not trusted input.
	totalContado := decimal.Zero
	for _, d := range model.Denominaciones {
		totalContado = totalContado.Add(decimal.NewFromInt(int64(d * conteo[d])))
	}

	var totalSistema decimal.Decimal
	if req.TotalSistema != nil {
		totalSistema = *req.TotalSistema
	} else {
		if totalSistema, err = s.caja.TotalEfectivoDeHoy(ctx); err != nil {
			return nil, err
		}
	}

	diferencia := totalContado.Sub(req.CajaChica).Sub(totalSistema)
	estado := model.ArqueoCuadrado
	switch {
	case diferencia.IsPositive():
		estado = model.ArqueoSobrante
	case diferencia.IsNegative():
		estado = model.ArqueoFaltante
	}

	arqueo := &model.Arqueo{
		TotalContado:  totalContado,
		CajaChica:     req.CajaChica,
		TotalSistema:  totalSistema,
		Diferencia:    diferencia,
		Estado:        estado,
		Observaciones: req.Observaciones,
		UsuarioID:     usuarioID,
	}
	arqueo.SetConteo(conteo)

	if err := s.repo.Create(ctx, arqueo); err != nil {
		return nil, err
	}
	return &dto.CrearArqueoResponse{
		Message: "Arqueo registrado correctamente",
		ID:      arqueo.ID.String(),
	}, nil
}

func (s *arqueoService) PorFecha(ctx context.Context, fecha string) ([]dto.ArqueoResponse, error) {
	rango, err := fechas.RangoDelDia(fecha, time.Now(), s.loc)
	if err != nil {
		return nil, err
	}
	arqueos, err := s.repo.ListByRango(ctx, rango)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArqueoResponse, 0, len(arqueos))
	for i := range arqueos {
		out = append(out, arqueoToResponse(&arqueos[i]))
	}
	return out, nil
}

func (s *arqueoService) Ultimo(ctx context.Context) (*dto.ArqueoResponse, error) {
	a, err := s.repo.Ultimo(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArqueoNoEncontrado
		}
		return nil, err
	}
	resp := arqueoToResponse(a)
	return &resp, nil
}

// parseConteo validates the denomination keys against the fixed set and
// rejects negative counts. Missing denominations count as zero.
func parseConteo(raw map[string]int) (map[int]int, error) {
	conteo := make(map[int]int, len(model.Denominaciones))
	for key, qty := range raw {
		denom, err := strconv.Atoi(key)
		if err != nil || qty < 0 {
			return nil, ErrConteoInvalido
		}
		valido := false
		for _, d := range model.Denominaciones {
			if d == denom {
				valido = true
				break
			}
		}
		if !valido {
			return nil, ErrConteoInvalido
		}
		conteo[denom] = qty
	}
	return conteo, nil
}

func arqueoToResponse(a *model.Arqueo) dto.ArqueoResponse {
	conteo := make(map[string]int, len(model.Denominaciones))
	for denom, qty := range a.Conteo() {
		conteo[strconv.Itoa(denom)] = qty
	}
	var nombreUsuario *string
	if a.Usuario != nil {
		nombreUsuario = &a.Usuario.Nombre
	}
	return dto.ArqueoResponse{
		ID:            a.ID.String(),
		Conteo:        conteo,
		TotalContado:  a.TotalContado,
		CajaChica:     a.CajaChica,
		TotalSistema:  a.TotalSistema,
		Diferencia:    a.Diferencia,
		Estado:        a.Estado,
		Observaciones: a.Observaciones,
		NombreUsuario: nombreUsuario,
		Fecha:         a.Fecha.UTC().Format(time.RFC3339),
	}
}
