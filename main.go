package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	miniocredentials "github.com/minio/minio-go/v7/pkg/credentials"
	flag "github.com/spf13/pflag"

	"pakjunctions-ingest/cities"
	"pakjunctions-ingest/export"
	"pakjunctions-ingest/junctions"
	"pakjunctions-ingest/overpass"
	"pakjunctions-ingest/repos"
)

const exportBucket = "osm-exports"

var cityFilter = flag.StringP("city", "c", "", "Prefix of city names to download")
var outPath = flag.StringP("out", "o", "pakistan_osm_junctions_named.json", "Output file path")

func main() {
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if os.Getenv("APP_ENV") == "development" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	err := godotenv.Load(".env", ".env.local")
	if err != nil {
		slog.Info("no dotenv", "err", err)
	}

	flag.Parse()

	runID := uuid.Must(uuid.NewV4())
	slog.Info("starting export", "run_id", runID)

	ov := overpass.New(os.Getenv("OVERPASS_ENDPOINT"))
	if os.Getenv("OVERPASS_SKIP_WAITS") != "" {
		ov.SkipWaits = true
	}

	cityList := cities.All
	if *cityFilter != "" {
		cityList = nil
		for _, c := range cities.All {
			if strings.HasPrefix(c.Name, *cityFilter) {
				cityList = append(cityList, c)
			}
		}
	}

	agg := junctions.NewAggregator(junctions.DefaultCleaner())
	if err := export.Run(ctx, ov, cityList, agg); err != nil {
		log.Fatal(err)
	}

	added := agg.MergeLandmarks(junctions.LahoreLandmarks)
	if added > 0 {
		slog.Info("merged static landmarks", "added", added)
	}

	list := agg.Finalize()
	generated := time.Now()
	doc := junctions.NewDocument(list, cities.Names(), generated)

	size, err := doc.WriteFile(*outPath)
	if err != nil {
		log.Fatal(fmt.Errorf("write %s: %w", *outPath, err))
	}

	if databaseURL := os.Getenv("JUNCTIONS_DB"); databaseURL != "" {
		saveToDB(ctx, databaseURL, runID, generated, list)
	}

	if os.Getenv("MINIO_ENDPOINT") != "" {
		uploadToStore(ctx, *outPath)
	}

	fmt.Printf("\nTotal named junctions: %d\n", len(list))
	fmt.Printf("Saved to: %s\n", *outPath)
	fmt.Printf("File size: %.2f KB\n", float64(size)/1024)
	fmt.Println("\nSample names:")
	for i, j := range list {
		if i == 10 {
			break
		}
		fmt.Printf("  %s (%s)\n", j.Name, j.City)
	}
}

func saveToDB(ctx context.Context, databaseURL string, runID uuid.UUID, generated time.Time, list []junctions.Junction) {
	repo, err := repos.Connect(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		log.Fatal(fmt.Errorf("migrate junctions table: %w", err))
	}
	if err := repo.SaveRun(ctx, runID, generated, list); err != nil {
		log.Fatal(fmt.Errorf("save run %s: %w", runID, err))
	}
	slog.Info("saved run to database", "run_id", runID, "junctions", len(list))
}

func uploadToStore(ctx context.Context, path string) {
	mc, err := minio.New(mustGetEnv("MINIO_ENDPOINT"), &minio.Options{
		Creds: miniocredentials.NewStaticV4(
			mustGetEnv("MINIO_ACCESS_KEY"), mustGetEnv("MINIO_SECRET_KEY"), ""),
		Secure: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	info, err := mc.FPutObject(ctx, exportBucket, path, path,
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		log.Fatal(fmt.Errorf("upload %s: %w", path, err))
	}
	slog.Info("uploaded export", "bucket", exportBucket, "key", info.Key, "size", info.Size)
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s not set", key)
	}
	return value
}
