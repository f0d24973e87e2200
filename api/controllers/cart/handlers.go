package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jerseyfront/jerseyfront/api/responses"
	"github.com/jerseyfront/jerseyfront/api/validators"
	cartsvc "github.com/jerseyfront/jerseyfront/internal/cart"
	"github.com/jerseyfront/jerseyfront/internal/catalog"
	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
)

const tokenHeader = "X-Cart-Token"

// CartFetch returns the session cart, minting a session when the caller
// has no token yet.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		view, err := svc.Get(r.Context(), r.Header.Get(tokenHeader))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeView(w, view)
	}
}

// CartAddItem adds the requested product to the session cart.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := catalog.ParseProductID(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddItem(r.Context(), r.Header.Get(tokenHeader), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeView(w, view)
	}
}

// CartIncreaseItem bumps the quantity of an existing line item.
func CartIncreaseItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return itemMutation(svc, logg, func(svc cartsvc.Service, r *http.Request, token string, id catalog.ProductID) (*cartsvc.View, error) {
		return svc.IncreaseItem(r.Context(), token, id)
	})
}

// CartDecreaseItem lowers the quantity of an existing line item,
// removing it at quantity one.
func CartDecreaseItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return itemMutation(svc, logg, func(svc cartsvc.Service, r *http.Request, token string, id catalog.ProductID) (*cartsvc.View, error) {
		return svc.DecreaseItem(r.Context(), token, id)
	})
}

// CartRemoveItem deletes a line item unconditionally.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return itemMutation(svc, logg, func(svc cartsvc.Service, r *http.Request, token string, id catalog.ProductID) (*cartsvc.View, error) {
		return svc.RemoveItem(r.Context(), token, id)
	})
}

// CartCheckout clears the session cart and returns the receipt. An
// empty cart is rejected.
func CartCheckout(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		token := r.Header.Get(tokenHeader)
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty"))
			return
		}

		receipt, err := svc.Checkout(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set(tokenHeader, receipt.Token)
		responses.WriteSuccess(w, receipt)
	}
}

type mutationFunc func(svc cartsvc.Service, r *http.Request, token string, id catalog.ProductID) (*cartsvc.View, error)

func itemMutation(svc cartsvc.Service, logg *logger.Logger, mutate mutationFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id, err := catalog.ParseProductID(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := mutate(svc, r, r.Header.Get(tokenHeader), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		writeView(w, view)
	}
}

func writeView(w http.ResponseWriter, view *cartsvc.View) {
	w.Header().Set(tokenHeader, view.Token)
	responses.WriteSuccess(w, view)
}
