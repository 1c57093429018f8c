package main

import (
	"fmt"
	"net/http"
	"os"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/joho/godotenv"
	"github.com/murmur-social/murmur/internal/config"
	"github.com/murmur-social/murmur/internal/database"
	"github.com/murmur-social/murmur/internal/graph"
	postgresrepo "github.com/murmur-social/murmur/internal/repository/postgres"
	"github.com/murmur-social/murmur/internal/service"
	"github.com/murmur-social/murmur/internal/token"
	"github.com/murmur-social/murmur/internal/transport/http/handlers"
	"github.com/murmur-social/murmur/internal/transport/http/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	godotenv.Load()
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migrating database")
	}
	log.Info().Msg("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	thoughtRepo := postgresrepo.NewThoughtRepo(pool)

	// Services
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, thoughtRepo)
	thoughtService := service.NewThoughtService(thoughtRepo)

	// GraphQL schema
	resolver := graph.NewResolver(authService, userService, thoughtService)
	schema := graphql.MustParseSchema(graph.Schema, resolver)

	// Handlers
	graphqlHandler := handlers.NewGraphQLHandler(schema)
	spaHandler := handlers.NewSPAHandler(cfg.ClientDir)

	// Optional-identity middleware: requests without a valid token proceed
	// as anonymous; resolvers enforce auth where required.
	identity := middleware.Identity(tokens)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("POST /graphql", identity(http.HandlerFunc(graphqlHandler.Serve)))

	// Static client bundle with index.html fallback for client-side routes
	mux.Handle("/", spaHandler)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := http.ListenAndServe(addr, middleware.Logging(middleware.CORS(mux))); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
