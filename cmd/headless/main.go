// cmd/headless/main.go
//
// Прогон симуляции без окна с фиксированным шагом. С одинаковым -seed
// результат повторяется.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"path-tower-defense/internal/app"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/logging"
	"path-tower-defense/internal/observability"
)

// parseTowers reads "x,y;x,y" into coordinate pairs.
func parseTowers(list string) ([][2]float64, error) {
	var out [][2]float64
	for _, item := range strings.Split(list, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("tower %q: want x,y", item)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("tower %q: %w", item, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("tower %q: %w", item, err)
		}
		out = append(out, [2]float64{x, y})
	}
	return out, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 1, "PRNG seed, 0 picks one from the clock")
	duration := flag.Duration("duration", time.Minute, "simulated time to run")
	step := flag.Float64("dt", 1.0/60, "fixed tick in seconds")
	report := flag.Duration("report", 10*time.Second, "simulated time between progress logs, 0 to disable")
	towers := flag.String("towers", "", "extra towers as \"x,y;x,y\"")
	metricsFile := flag.String("metrics-file", "", "write Prometheus text metrics here at the end")
	flag.Parse()

	logger := logging.NewFromEnv()
	ctx := context.Background()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Seed = *seed
	if *step <= 0 {
		log.Fatalf("-dt must be > 0, got %v", *step)
	}
	extra, err := parseTowers(*towers)
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewSimCollector(reg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(cfg, logger, metrics)
	for _, p := range extra {
		if _, err := game.PlaceTower(p[0], p[1]); err != nil {
			log.Fatalf("tower %v: %v", p, err)
		}
	}

	ticks := int(duration.Seconds() / *step)
	reportEvery := 0
	if *report > 0 {
		reportEvery = max(1, int(report.Seconds() / *step))
	}
	started := time.Now()
	for i := 1; i <= ticks; i++ {
		game.Update(*step)
		if reportEvery > 0 && i%reportEvery == 0 {
			s := game.Stats()
			logger.Info(ctx, "progress",
				logging.Float("game_time", s.GameTime),
				logging.Int("enemies", s.Enemies),
				logging.Int("killed", s.Killed),
				logging.Int("reached_goal", s.ReachedGoal),
			)
		}
	}
	game.Close()
	logger.Info(ctx, "run complete",
		logging.Int("ticks", ticks),
		logging.String("wall", time.Since(started).String()),
	)

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
			log.Fatal(err)
		}
	}
}
