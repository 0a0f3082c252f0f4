package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/productapi/productapi-go/internal/crypto"
	"github.com/productapi/productapi-go/internal/handler"
	"github.com/productapi/productapi-go/internal/middleware"
	"github.com/productapi/productapi-go/internal/repository"
	"github.com/productapi/productapi-go/internal/service"
)

// Deps is the process-wide state built once at startup and shared by every
// request: the connection pool, the token service and the logger.
type Deps struct {
	DB          *sql.DB
	Tokens      *crypto.TokenService
	Logger      *slog.Logger
	CORSOrigins []string
}

// New builds the HTTP handler for the whole API.
func New(d Deps) http.Handler {
	authService := service.NewAuthService(repository.NewUserRepository(d.DB), d.Tokens)
	authHandler := handler.NewAuthHandler(authService, d.Logger)

	productService := service.NewProductService(repository.NewProductRepository(d.DB))
	productHandler := handler.NewProductHandler(productService, d.Logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(chimw.Recoverer)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", handler.HandleDocs)
	r.Get("/health", handler.HandleHealth(d.DB, d.Logger))

	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(d.Tokens))

		r.Get("/products", productHandler.HandleList)
		r.Post("/products", productHandler.HandleCreate)
		r.Get("/products/{id}", productHandler.HandleGet)
		r.Put("/products/{id}", productHandler.HandleUpdate)
		r.Delete("/products/{id}", productHandler.HandleDelete)
	})

	if len(d.CORSOrigins) == 0 {
		return r
	}

	c := cors.New(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(r)
}
