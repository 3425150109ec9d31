package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"go-raceresult/cmd/rrbackup/config"
	"go-raceresult/pkg/logging"
	"go-raceresult/pkg/timeutils"
	"go-raceresult/webapi"
)

var retryDelays = []time.Duration{time.Second, 3 * time.Second, 10 * time.Second}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewZapLogger(zapcore.InfoLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	rootCtx, cancelCtx := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelCtx()

	if err := run(rootCtx, cfg, logger); err != nil {
		logger.ErrorCtx(rootCtx, "Backup failed", zap.Error(err))
		os.Exit(1)
	}
	logger.InfoCtx(rootCtx, "Backup finished", zap.String("outDir", cfg.OutDir))
}

func run(ctx context.Context, cfg *config.Config, logger *logging.ZapLogger) error {
	api := webapi.New(webapi.Config{
		Server:  cfg.Server,
		Timeout: cfg.Timeout,
	}, logger)

	if err := api.Login(ctx, cfg.Credentials()); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	defer func() {
		if err := api.Logout(context.Background()); err != nil {
			logger.DebugCtx(ctx, "Logout failed", zap.Error(err))
		}
	}()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	event := api.Event(cfg.EventID)
	g, ctx := errgroup.WithContext(ctx)

	for _, task := range backupTasks(event) {
		task := task
		g.Go(func() error {
			return runTask(ctx, cfg.OutDir, task, logger)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("backup task error: %w", err)
	}

	return nil
}

// backupTask fetches one resource of the event for export.
type backupTask struct {
	name  string
	fetch func(context.Context) (any, error)
}

func backupTasks(event *webapi.EventApi) []backupTask {
	return []backupTask{
		{"participants", func(ctx context.Context) (any, error) {
			return event.Data().List(ctx, webapi.ListQuery{
				Fields: []string{"Bib", "Lastname", "Firstname", "Sex", "DateOfBirth", "Club", "Contest.Name", "Status"},
				Sort:   []string{"Bib"},
			})
		}},
		{"contests", func(ctx context.Context) (any, error) {
			return event.Contests().Get(ctx)
		}},
		{"agegroups", func(ctx context.Context) (any, error) {
			return event.AgeGroups().Get(ctx, 0, 0, "")
		}},
		{"bibranges", func(ctx context.Context) (any, error) {
			return event.BibRanges().Get(ctx, 0, 0)
		}},
		{"customfields", func(ctx context.Context) (any, error) {
			return event.CustomFields().Get(ctx)
		}},
		{"entryfees", func(ctx context.Context) (any, error) {
			return event.EntryFees().Get(ctx, 0, 0)
		}},
		{"results", func(ctx context.Context) (any, error) {
			return event.Results().Get(ctx, "", false, false)
		}},
		{"timingpoints", func(ctx context.Context) (any, error) {
			return event.TimingPoints().Get(ctx)
		}},
		{"timingpointrules", func(ctx context.Context) (any, error) {
			return event.TimingPointRules().Get(ctx)
		}},
		{"vouchers", func(ctx context.Context) (any, error) {
			return event.Vouchers().Get(ctx, "")
		}},
		{"exporters", func(ctx context.Context) (any, error) {
			return event.Exporters().Get(ctx)
		}},
		{"chipfile", func(ctx context.Context) (any, error) {
			return event.ChipFile().Get(ctx)
		}},
	}
}

// runTask fetches one resource with retries and writes it as a JSON file.
func runTask(ctx context.Context, outDir string, task backupTask, logger *logging.ZapLogger) error {
	data, err := timeutils.Retry(
		ctx,
		retryDelays,
		task.fetch,
		func(_ any, err error) bool {
			if err != nil {
				logger.DebugCtx(ctx, "Fetch failed, retrying",
					zap.String("resource", task.name),
					zap.Error(err),
				)
			}
			return err != nil
		},
	)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", task.name, err)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", task.name, err)
	}

	path := filepath.Join(outDir, task.name+".json")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", task.name, err)
	}

	logger.InfoCtx(ctx, "Resource saved", zap.String("file", path))
	return nil
}
