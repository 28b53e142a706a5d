// Command meilirank is a small demo binary: it loads configuration, builds
// a meiliclient.Client, wires an engine.Engine, and serves a single
// /search HTTP endpoint (mirrors the teacher's plain net/http cmd/*
// binaries — no cobra/fiber here either).
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/fulmenhq/meilirank/cache"
	"github.com/fulmenhq/meilirank/config"
	"github.com/fulmenhq/meilirank/editdistance"
	"github.com/fulmenhq/meilirank/engine"
	"github.com/fulmenhq/meilirank/logging"
	"github.com/fulmenhq/meilirank/meiliclient"
	"github.com/fulmenhq/meilirank/model"
	"github.com/fulmenhq/meilirank/normalize"
)

func main() {
	configPath := flag.String("config", config.FindConfigFile(), "path to meilirank.yaml")
	meiliURL := flag.String("meili-url", "http://localhost:7700", "Meilisearch base URL")
	meiliIndex := flag.String("meili-index", "cities", "Meilisearch index uid")
	meiliKey := flag.String("meili-key", os.Getenv("MEILI_API_KEY"), "Meilisearch API key")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	logger, err := logging.New(logging.Config{
		Service:     "meilirank",
		Level:       cfg.Logging.Level,
		ConsoleSink: cfg.Logging.Console,
	})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	synonyms, err := config.LoadSynonymPacks(cfg.SynonymPacksDir)
	if err != nil {
		logger.Warn("failed to load synonym packs", zap.Error(err))
	}

	resultCache := cache.New(time.Duration(cfg.Cache.TTLSeconds)*time.Second, cfg.Cache.Capacity)
	client := meiliclient.New(*meiliURL, *meiliIndex, *meiliKey)
	distance := editdistance.Matcher{}
	normalizer := normalize.Adapter{}

	eng := engine.New(client, normalizer, distance, synonyms, resultCache)

	mux := http.NewServeMux()
	mux.HandleFunc("/search", searchHandler(eng, cfg, logger))

	logger.Info("listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func searchHandler(eng *engine.Engine, cfg config.Config, logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		q := r.URL.Query().Get("q")

		opts := model.Options{
			Limit:       cfg.Search.DefaultLimit,
			MaxDistance: cfg.Search.DefaultMaxDistance,
		}

		reply, err := eng.Search(r.Context(), q, opts)
		if err != nil {
			logger.Warn("search failed", zap.String("query", q), zap.Error(err))
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		logger.Info("search completed",
			zap.String("query", q),
			zap.Int("total", reply.Total),
			zap.Duration("elapsed", time.Since(start)),
		)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}
}
