package handlers

import (
	"net/http"

	"profit_engine/calculator/internal/auth"

	"golang.org/x/time/rate"
)

func NewRouter(
	accounts AccountStore,
	products ProductRepository,
	sessions SessionStore,
) *http.ServeMux {

	mux := http.NewServeMux()

	// --- PUBLIC ROUTES (No Auth Needed) ---
	// The account endpoints sit behind a per-IP throttle.
	limiter := newIPLimiter(rate.Limit(5), 10)
	accountHandler := NewAccountHandler(accounts, products, sessions)
	mux.HandleFunc("POST /api/account/register", limiter.Wrap(accountHandler.Register))
	mux.HandleFunc("POST /api/account/login", limiter.Wrap(accountHandler.Login))
	mux.HandleFunc("POST /api/account/refresh", limiter.Wrap(accountHandler.Refresh))

	// Anonymous calculator: a transient product, nothing persisted.
	quoteHandler := NewQuoteHandler()
	mux.HandleFunc("POST /api/quote", quoteHandler.Quote)

	// --- PROTECTED ROUTES (Require Login) ---
	protected := func(handlerFunc http.HandlerFunc) http.HandlerFunc {
		return auth.Middleware(http.HandlerFunc(handlerFunc)).ServeHTTP
	}

	mux.HandleFunc("POST /api/account/logout", protected(accountHandler.Logout))

	productHandler := NewProductHandler(products)
	mux.HandleFunc("GET /api/products", protected(productHandler.List))
	mux.HandleFunc("POST /api/products", protected(productHandler.Create))
	mux.HandleFunc("GET /api/products/{id}", protected(productHandler.Get))
	mux.HandleFunc("PUT /api/products/{id}/field", protected(productHandler.EditField))
	mux.HandleFunc("PUT /api/products/{id}/name", protected(productHandler.Rename))
	mux.HandleFunc("POST /api/products/{id}/target", protected(productHandler.Target))
	mux.HandleFunc("GET /api/products/{id}/strategies", protected(productHandler.Strategies))
	mux.HandleFunc("DELETE /api/products/{id}", protected(productHandler.Delete))

	return mux
}
