package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formquiz-service/internal/ai"
	"formquiz-service/internal/app"
	"formquiz-service/internal/config"
	"formquiz-service/internal/domain"
	"formquiz-service/internal/infra/memory"
	pgstore "formquiz-service/internal/infra/postgres"
	redisstore "formquiz-service/internal/infra/redis"
	transport "formquiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the formquiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(sampleQuizzes())
	if pool != nil {
		loader = pgstore.NewQuizLoader(pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var quizRepo app.QuizRepository
	if redisClient != nil {
		quizRepo = redisstore.NewQuizRepository(redisClient, loader, quizTTL)
	} else {
		quizRepo = memory.NewQuizRepository(loader, quizTTL)
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisstore.NewSessionStore(redisClient, redisTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	var store app.Store
	switch {
	case pool != nil:
		store = pgstore.NewStore(pool)
	case redisClient != nil:
		store = redisstore.NewStore(redisClient, 0)
	default:
		log.Printf("no postgres or redis configured, records are kept in memory")
		store = memory.NewStore()
	}

	if cfg.AI.APIKey == "" {
		log.Printf("ai api key not configured, generation will return fallback content")
	}
	defaults := ai.DefaultConfig()
	pipeline := ai.NewPipeline(ai.NewGeminiProvider(cfg.AI.APIKey, cfg.AI.Model), ai.Config{
		Timeout:              config.TTLDuration(cfg.AI.Timeout, defaults.Timeout),
		FetchTimeout:         config.TTLDuration(cfg.AI.FetchTimeout, defaults.FetchTimeout),
		MaxFetchBytes:        cfg.AI.MaxFetchBytes,
		MaxImageDimension:    cfg.AI.MaxImageDimension,
		OptimizeConcurrency:  cfg.AI.OptimizeConcurrency,
		AllowPrivateNetworks: cfg.AI.AllowPrivateNetworks,
	})

	quizService := app.NewQuizService(sessions, quizRepo, app.NewAttemptLog(store))
	formService := app.NewFormService(pipeline, store)
	router := transport.NewRouter(
		transport.NewAPI(formService, quizService),
		transport.NewWSHandler(quizService),
		cfg.Server.CORSOrigins,
	)

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting formquiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleQuizzes is served when no postgres database is configured.
func sampleQuizzes() map[string]domain.QuizDefinition {
	return map[string]domain.QuizDefinition{
		"quiz-1": {
			ID:          "quiz-1",
			Title:       "Go basics",
			Description: "A short warm-up quiz.",
			Questions: []domain.QuizQuestion{
				{
					ID:            "q1",
					Type:          domain.QuestionMultipleChoice,
					Question:      "Which keyword starts a goroutine?",
					Options:       []string{"go", "async", "spawn", "thread"},
					CorrectAnswer: "go",
					Points:        1,
				},
				{
					ID:            "q2",
					Type:          domain.QuestionTrueFalse,
					Question:      "A nil map can be read from safely.",
					CorrectAnswer: "True",
					Points:        1,
					Explanation:   "Reads return the zero value; only writes panic.",
				},
				{
					ID:            "q3",
					Type:          domain.QuestionShortAnswer,
					Question:      "What does the built-in len return for a nil slice?",
					CorrectAnswer: "0",
					Points:        2,
				},
			},
			Settings: domain.QuizSettings{
				TimeLimitMinutes:       5,
				PassingScorePercent:    70,
				ShowResultsImmediately: true,
				AllowRetakes:           true,
				RandomizeOptions:       true,
				IsActive:               true,
				MaxAttempts:            3,
			},
		},
	}
}
