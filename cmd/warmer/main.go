package main

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripdesk/internal/adapters/observability"
	"tripdesk/internal/adapters/redisstore"
	"tripdesk/internal/adapters/supplier"
	"tripdesk/internal/app"
	"tripdesk/internal/domain"
	"tripdesk/internal/search"
	"tripdesk/internal/shared"
)

// warmer pre-runs the popular searches so the result cache is hot before
// traffic lands. Run from cron; each run refreshes the full target list.
func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.SupplierBase).
		Int("workers", cfg.Workers).
		Int("targets", len(shared.WarmTargets)).
		Msg("warmer starting")

	rdb := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cache := redisstore.NewCache(rdb)

	sup, err := supplier.New(cfg.SupplierBase, cfg.SupplierKey, cfg.SupplierRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize supplier client")
	}
	registry := app.NewRegistry(sup, cache, cfg.CacheTTL)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	now := time.Now()
	for _, t := range shared.WarmTargets {
		v, ok := domain.ParseVertical(t.Vertical)
		if !ok {
			log.Warn().Str("vertical", t.Vertical).Msg("skipping unknown warm target")
			continue
		}

		q := url.Values{}
		if t.From != "" {
			q.Set("from", t.From)
		}
		if t.To != "" {
			q.Set("to", t.To)
		}
		if t.Location != "" {
			q.Set("location", t.Location)
		}
		criteria := search.ResolveCriteria(v, q, now)

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(v domain.Vertical, c domain.SearchCriteria) {
			defer wg.Done()
			defer sem.Release(1)

			if err := registry.Warm(ctx, v, c); err != nil {
				log.Warn().Str("vertical", string(v)).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("vertical", string(v)).Msg("warm ok")
		}(v, criteria)
	}

	wg.Wait()
	log.Info().Msg("warming completed")
}
