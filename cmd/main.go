package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/jathow/careertrack/internal/clients/portal"
	"github.com/jathow/careertrack/internal/config"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/logger"
	"github.com/jathow/careertrack/internal/metrics"
	"github.com/jathow/careertrack/internal/notifications"
	"github.com/jathow/careertrack/internal/repositories"
	"github.com/jathow/careertrack/internal/services"
	"github.com/jathow/careertrack/internal/store"
)

type stores struct {
	applications *store.Applications
	projects     *store.Projects
	resumes      *store.Resumes
	interviews   *store.Interviews
}

func buildStores(client *portal.Client, bus EventBus.Bus) *stores {
	return &stores{
		applications: store.NewApplications(client, bus),
		projects:     store.NewProjects(client, bus),
		resumes:      store.NewResumes(client, bus),
		interviews:   store.NewInterviews(client, bus),
	}
}

// hydrateStores prefills the entity caches from the last saved snapshots, so
// the UI has data to render before the first fetch returns.
func hydrateStores(ctx context.Context, snapshots *repositories.Snapshots, s *stores) {

	var applications []entities.JobApplication
	if found, err := snapshots.Load(ctx, "applications", &applications); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSnapshot).
			Errorf("failed to load applications snapshot: %v", err)
	} else if found {
		s.applications.Hydrate(applications)
	}

	var projects []entities.Project
	if found, err := snapshots.Load(ctx, "projects", &projects); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSnapshot).
			Errorf("failed to load projects snapshot: %v", err)
	} else if found {
		s.projects.Hydrate(projects)
	}

	var resumes []entities.Resume
	if found, err := snapshots.Load(ctx, "resumes", &resumes); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSnapshot).
			Errorf("failed to load resumes snapshot: %v", err)
	} else if found {
		s.resumes.Hydrate(resumes)
	}
}

func saveSnapshots(ctx context.Context, snapshots *repositories.Snapshots, s *stores) {

	pairs := []struct {
		name  string
		items any
	}{
		{"applications", s.applications.Items()},
		{"projects", s.projects.Items()},
		{"resumes", s.resumes.Items()},
	}

	for _, pair := range pairs {
		if err := snapshots.Save(ctx, pair.name, pair.items); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeSnapshot).
				Errorf("failed to save %s snapshot: %v", pair.name, err)
		}
	}
}

func refreshStores(ctx context.Context, s *stores) {

	if err := s.applications.FetchAll(ctx, portal.ApplicationFilters{}); err != nil {
		log.Errorf("initial applications fetch failed: %v", err)
	}
	if err := s.projects.FetchAll(ctx); err != nil {
		log.Errorf("initial projects fetch failed: %v", err)
	}
	if err := s.resumes.FetchAll(ctx); err != nil {
		log.Errorf("initial resumes fetch failed: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	if cfg.Logger.LokiURL != "" {
		if err := logger.AddLokiHook(ctx, cfg.Logger, log.WarnLevel); err != nil {
			log.Errorf("can't add loki hook: %v", err)
		}
	}

	metrics.StartMetricsServer(cfg.API.MetricsAddress)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	tokens := repositories.NewTokensRepository(dbContext.DB)
	snapshots := repositories.NewSnapshotsRepository(dbContext.DB)
	dismissed := repositories.NewDismissedNotificationsRepository(dbContext.DB)

	navigator := portal.NewPathTracker("/dashboard")
	client := portal.NewClient(cfg.API.BaseURL, tokens, navigator)
	client.SetRateLimit(cfg.API.MaxRequestsPerSecond)

	bus := EventBus.New()
	allStores := buildStores(client, bus)
	hydrateStores(ctx, snapshots, allStores)

	queue := notifications.NewQueue()
	if _, err = notifications.NewNotifier(bus, queue); err != nil {
		log.Fatalf("can't create notifier: %v", err)
	}

	var sinks []notifications.Sink
	if cfg.Notifier.Enabled() {
		sink, err := notifications.NewTelegramSink(cfg.Notifier.TelegramToken, cfg.Notifier.TelegramChatID)
		if err != nil {
			log.Fatalf("can't create telegram sink: %v", err)
		}
		sinks = append(sinks, sink)
	}
	dispatcher := notifications.NewDispatcher(queue, sinks...)
	defer dispatcher.Stop()

	if cfg.Reminders.Enabled {
		reminders, err := services.NewReminderService(client, dismissed, bus, cfg.Reminders.Schedule)
		if err != nil {
			log.Fatalf("can't create reminder service: %v", err)
		}
		defer reminders.Stop()
	}

	refreshStores(ctx, allStores)

	<-ctx.Done()

	log.Info("Shutting down...")
	saveSnapshots(context.Background(), snapshots, allStores)
	log.Info("Shutdown complete.")
}
