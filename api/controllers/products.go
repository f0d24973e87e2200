package controllers

import (
	"net/http"

	"github.com/jerseyfront/jerseyfront/api/responses"
	"github.com/jerseyfront/jerseyfront/api/validators"
	"github.com/jerseyfront/jerseyfront/internal/catalog"
	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
)

const maxCriterionLen = 120

// StorefrontProducts lists the catalog filtered by the query criteria.
// An empty query returns the full catalog in upstream order.
func StorefrontProducts(snapshot *catalog.Snapshot, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if snapshot == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		criteria, err := criteriaFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := snapshot.Products()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalog.ApplyFilters(products, criteria))
	}
}

// StorefrontFilterOptions exposes the dropdown values and price ceiling
// derived from the current catalog.
func StorefrontFilterOptions(snapshot *catalog.Snapshot, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if snapshot == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products, err := snapshot.Products()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalog.BuildFilterOptions(products))
	}
}

func criteriaFromQuery(r *http.Request) (catalog.Criteria, error) {
	maxPrice, err := validators.ParseQueryDecimal(r, "max_price")
	if err != nil {
		return catalog.Criteria{}, err
	}

	query := r.URL.Query()
	return catalog.Criteria{
		Team:     validators.SanitizeString(query.Get("team"), maxCriterionLen),
		Season:   validators.SanitizeString(query.Get("season"), maxCriterionLen),
		State:    validators.SanitizeString(query.Get("state"), maxCriterionLen),
		Brand:    validators.SanitizeString(query.Get("brand"), maxCriterionLen),
		Size:     validators.SanitizeString(query.Get("size"), maxCriterionLen),
		MaxPrice: maxPrice,
	}, nil
}
