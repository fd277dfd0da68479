package router

import (
	"database/sql"
	"net/http"

	_ "vaccine-tracker/docs"
	mem "vaccine-tracker/internal/adapters/storage/memory"
	pg "vaccine-tracker/internal/adapters/storage/postgres"
	"vaccine-tracker/internal/domain/tracker"
	"vaccine-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene se usa tal cual (serve lo arma con logger, notifier y Load).
	// Si no, se arma uno sobre DB o in-memory.
	Service *tracker.Service

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

// NewRepositories elige la persistencia: Postgres si hay DB, in-memory si no.
func NewRepositories(db *sql.DB) tracker.Repositories {
	if db != nil {
		return tracker.Repositories{
			Subjects:  pg.NewSubjectsRepo(db),
			Doses:     pg.NewDosesRepo(db),
			Reminders: pg.NewRemindersRepo(db),
		}
	}
	return tracker.Repositories{
		Subjects:  mem.NewSubjectRepo(),
		Doses:     mem.NewDoseRepo(),
		Reminders: mem.NewReminderRepo(),
	}
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AccountContext())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := opts.Service
	if svc == nil {
		svc = tracker.NewService(NewRepositories(opts.DB))
	}

	tracker.RegisterRoutes(r, svc)

	return r
}
