// Package fiscalcode orquesta el cálculo, la verificación y la tarjeta PDF del
// código fiscal a partir de las peticiones de la API.
package fiscalcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/codicefiscale-api/internal/application/dto"
	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/domain/fiscal"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
	"github.com/jhoicas/codicefiscale-api/pkg/logger"
)

// UseCase casos de uso del código fiscal.
type UseCase struct {
	generator *fiscal.CodeGenerator
	renderer  CardRenderer
	metrics   Recorder
	log       *logger.Logger
	now       func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*UseCase)

// WithRenderer habilita la tarjeta PDF.
func WithRenderer(r CardRenderer) Option {
	return func(uc *UseCase) { uc.renderer = r }
}

// WithMetrics registra métricas de generación y validación.
func WithMetrics(m Recorder) Option {
	return func(uc *UseCase) { uc.metrics = m }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el caso de uso. log nil equivale a logger.Nop().
func NewUseCase(generator *fiscal.CodeGenerator, log *logger.Logger, opts ...Option) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &UseCase{
		generator: generator,
		metrics:   nopRecorder{},
		log:       log.Component("fiscalcode"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate calcula el código base y, si Depth > 0, también el de omocodia.
//
// Errores (comparables con errors.Is):
//   - domain.ErrInvalidInput / codicefiscale.ErrMalformedInput: campos ausentes o sexo inválido.
//   - codicefiscale.ErrInvalidDate: fecha inexistente o con año fuera de 1000..9999.
//   - domain.ErrUnknownCity / domain.ErrUnknownNation: lugar ausente del catálogo.
//   - codicefiscale.ErrDepthExceeded: depth mayor que los dígitos disponibles.
func (uc *UseCase) Generate(ctx context.Context, in dto.GenerateFiscalCodeRequest) (*dto.FiscalCodeResponse, error) {
	start := uc.now()
	defer uc.metrics.ObserveGenerate(start)
	requestID := uuid.New().String()

	base, homo, err := uc.generate(in)
	if err != nil {
		uc.metrics.IncFailure(FailureReason(err))
		uc.log.Warn().Err(err).Str("request_id", requestID).Int("depth", in.Depth).Msg("generación rechazada")
		return nil, err
	}

	resp := &dto.FiscalCodeResponse{
		Code:      base.String(),
		Depth:     in.Depth,
		RequestID: requestID,
	}
	uc.metrics.IncGenerated("base")
	if in.Depth > 0 {
		resp.Homocode = homo.String()
		uc.metrics.IncGenerated("homocode")
	}
	uc.log.Debug().Str("request_id", requestID).Str("code", resp.Code).Str("homocode", resp.Homocode).Msg("código generado")
	return resp, nil
}

// generate devuelve el código base y, con depth > 0, la variante de omocodia.
func (uc *UseCase) generate(in dto.GenerateFiscalCodeRequest) (codicefiscale.Code, codicefiscale.Code, error) {
	person, err := PersonFromRequest(in)
	if err != nil {
		return "", "", err
	}
	if in.Depth < 0 {
		return "", "", fmt.Errorf("%w: depth negativo (%d)", codicefiscale.ErrMalformedInput, in.Depth)
	}
	base, err := uc.generator.Generate(person, 0)
	if err != nil {
		return "", "", err
	}
	if in.Depth == 0 {
		return base, "", nil
	}
	homo, err := codicefiscale.Homocode(base, in.Depth)
	if err != nil {
		return "", "", err
	}
	return base, homo, nil
}

// Validate verifica un código recibido. Un código inválido no es un error del
// caso de uso: se informa en la respuesta.
func (uc *UseCase) Validate(_ context.Context, in dto.ValidateFiscalCodeRequest) *dto.ValidationResponse {
	raw := strings.ToUpper(strings.TrimSpace(in.Code))
	resp := &dto.ValidationResponse{Code: raw}

	code, err := codicefiscale.Parse(raw)
	if err != nil {
		resp.Errors = splitJoined(err)
		uc.metrics.IncValidation(false)
		return resp
	}
	resp.Valid = true
	resp.IsHomocode = codicefiscale.IsHomocode(code)
	if base, err := codicefiscale.BaseCode(code); err == nil {
		resp.BaseCode = base.String()
	}
	uc.metrics.IncValidation(true)
	return resp
}

// Card genera la tarjeta PDF del código calculado. Devuelve bytes y nombre de archivo.
func (uc *UseCase) Card(ctx context.Context, in dto.GenerateFiscalCodeRequest) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", errors.New("fiscalcode: tarjeta PDF no configurada")
	}
	base, homo, err := uc.generate(in)
	if err != nil {
		uc.metrics.IncFailure(FailureReason(err))
		return nil, "", err
	}
	person, _ := PersonFromRequest(in)

	// Los códigos Belfiore de naciones extranjeras empiezan por Z.
	place := person.BirthCity()
	if strings.HasPrefix(base.Place(), "Z") {
		place = person.BirthNation()
	}
	data := CardData{
		Code:        base.String(),
		Homocode:    homo.String(),
		Surname:     person.Surname(),
		Name:        person.Name(),
		Sex:         string(person.Sex()),
		BirthDate:   person.BirthDate(),
		BirthPlace:  place,
		PlaceCode:   base.Place(),
		GeneratedAt: uc.now(),
	}
	pdf, err := uc.renderer.RenderCard(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("fiscalcode: generar tarjeta: %w", err)
	}
	uc.metrics.IncCard()
	return pdf, fmt.Sprintf("codice-fiscale-%s.pdf", base), nil
}

// PersonFromRequest valida todos los campos de la petición y construye la persona.
// Los errores de varios campos se combinan con errors.Join.
func PersonFromRequest(in dto.GenerateFiscalCodeRequest) (*entity.Person, error) {
	var errs []error
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"surname", in.Surname},
		{"birth_nation", in.BirthNation},
		{"birth_city", in.BirthCity},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, r.field))
		}
	}
	sex, err := codicefiscale.ParseSex(in.Sex)
	if err != nil {
		errs = append(errs, err)
	}
	birth, err := entity.ParseBirthDate(in.BirthDate)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return entity.NewPerson(in.Name, in.Surname, sex, in.BirthNation, in.BirthCity, birth)
}

// FailureReason etiqueta corta del error para métricas y respuestas HTTP.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownCity):
		return "unknown_city"
	case errors.Is(err, domain.ErrUnknownNation):
		return "unknown_nation"
	case errors.Is(err, codicefiscale.ErrDepthExceeded):
		return "depth_exceeded"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, codicefiscale.ErrMalformedInput):
		return "validation"
	case errors.Is(err, codicefiscale.ErrInvalidDate):
		return "invalid_date"
	default:
		return "internal"
	}
}

// splitJoined separa los mensajes de un error de errors.Join (uno por línea).
func splitJoined(err error) []string {
	return strings.Split(err.Error(), "\n")
}
