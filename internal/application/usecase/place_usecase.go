package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/codicefiscale-api/internal/application/dto"
	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/domain/repository"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// PlaceUseCase búsquedas por prefijo en los catálogos de municipios y naciones.
type PlaceUseCase struct {
	cities  repository.CityRepository
	nations repository.NationRepository
}

// NewPlaceUseCase construye el caso de uso.
func NewPlaceUseCase(cities repository.CityRepository, nations repository.NationRepository) *PlaceUseCase {
	return &PlaceUseCase{cities: cities, nations: nations}
}

// SearchCities lista municipios cuyo nombre normalizado empieza por Query.
func (uc *PlaceUseCase) SearchCities(ctx context.Context, in dto.SearchRequest) (*dto.CityListResponse, error) {
	key, err := searchKey(&in)
	if err != nil {
		return nil, err
	}
	list, err := uc.cities.Search(ctx, key, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("buscar municipios: %w", err)
	}
	items := make([]dto.CityResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCityResponse(c))
	}
	return &dto.CityListResponse{Items: items, Limit: in.Limit}, nil
}

// SearchNations lista naciones cuyo nombre normalizado empieza por Query.
func (uc *PlaceUseCase) SearchNations(ctx context.Context, in dto.SearchRequest) (*dto.NationListResponse, error) {
	key, err := searchKey(&in)
	if err != nil {
		return nil, err
	}
	list, err := uc.nations.Search(ctx, key, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("buscar naciones: %w", err)
	}
	items := make([]dto.NationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNationResponse(n))
	}
	return &dto.NationListResponse{Items: items, Limit: in.Limit}, nil
}

func searchKey(in *dto.SearchRequest) (string, error) {
	in.Normalize()
	key := codicefiscale.NormalizeKey(in.Query)
	if key == "" {
		return "", fmt.Errorf("%w: q es obligatorio", domain.ErrInvalidInput)
	}
	return key, nil
}

func toCityResponse(c *entity.City) dto.CityResponse {
	return dto.CityResponse{
		Name:             c.Name,
		Code:             c.Code,
		ProvinceInitials: c.ProvinceInitials,
		IstatCode:        c.IstatCode,
	}
}

func toNationResponse(n *entity.Nation) dto.NationResponse {
	return dto.NationResponse{Name: n.Name, Code: n.Code, Initials: n.Initials}
}
