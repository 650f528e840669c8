package routes

import (
	"net/http"

	"staffhub/handlers"
	"staffhub/middleware"
	"staffhub/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Options struct {
	UserHandler     *handlers.UserHandler
	EmployeeHandler *handlers.EmployeeHandler
	JWTSecret       string
	ClientOrigin    string
	// UploadDir, when set, is served statically under /uploads for the
	// local image store. Empty when images live in R2.
	UploadDir string
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(handlers.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{opts.ClientOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<h1>Staffhub API</h1>"))
	})

	// Signup and login are the only routes outside the auth gate.
	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", opts.UserHandler.Signup)
		r.Post("/login", opts.UserHandler.Login)
	})

	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth(opts.JWTSecret))
		r.Get("/", opts.EmployeeHandler.GetAll)
		r.Post("/", opts.EmployeeHandler.Create)
		r.Get("/search", opts.EmployeeHandler.Search)
		r.Get("/{id}", opts.EmployeeHandler.GetByID)
		r.Put("/{id}", opts.EmployeeHandler.Update)
		r.Delete("/{id}", opts.EmployeeHandler.Delete)
	})

	if opts.UploadDir != "" {
		fs := http.StripPrefix(storage.PublicPrefix+"/", http.FileServer(http.Dir(opts.UploadDir)))
		r.Get(storage.PublicPrefix+"/*", fs.ServeHTTP)
	}

	return r
}
