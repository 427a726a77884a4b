package discoveryService

//go:generate mockgen -source=discoveryService.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/externalApi/capacitiesApi"
	"goodreads_capacities_import/internal/model"
	"goodreads_capacities_import/utils"
)

const bookStructureTitle = "Book"

type CapacitiesApi interface {
	GetSpaceInfo(ctx context.Context) (model.SpaceInfo, error)
}

type Printer interface {
	PrintSpaceInfo(info model.SpaceInfo)
	PrintBookMappings(structureID string, mappings []model.PropertyMapping)
	ApiError(status int, body string)
	ApiException(err error)
}

type DiscoveryService struct {
	api     CapacitiesApi
	printer Printer
}

func New(api CapacitiesApi, printer Printer) *DiscoveryService {
	return &DiscoveryService{api: api, printer: printer}
}

// NormalizePropertyName turns a property name such as "Date Read" into the
// property map key "date_read".
func NormalizePropertyName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// BookMappings lists the properties of a structure as property map entries.
func BookMappings(st model.Structure) []model.PropertyMapping {
	mappings := make([]model.PropertyMapping, 0, len(st.PropertyDefinitions))
	for _, prop := range st.PropertyDefinitions {
		key := NormalizePropertyName(prop.Name)
		mappings = append(mappings, model.PropertyMapping{
			Key:    key,
			ID:     prop.ID,
			EnvKey: config.PropertyEnvKeys[key],
		})
	}
	return mappings
}

// Discover prints the structures of the space and, when there is a Book
// structure, its property ids. Failures are printed and yield nil.
func (s *DiscoveryService) Discover(ctx context.Context) *model.SpaceInfo {
	op := "DiscoveryService.Discover"
	rqID := utils.GetRequestIDFromCtx(ctx)

	info, err := s.api.GetSpaceInfo(ctx)
	if err != nil {
		var statusErr *capacitiesApi.StatusError
		if errors.As(err, &statusErr) {
			s.printer.ApiError(statusErr.Code, statusErr.Body)
		} else {
			s.printer.ApiException(err)
		}
		slog.Error("Space info request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil
	}

	s.printer.PrintSpaceInfo(info)

	if book, ok := info.FindStructure(bookStructureTitle); ok {
		s.printer.PrintBookMappings(book.ID, BookMappings(book))
	}

	return &info
}
