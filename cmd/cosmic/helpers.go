package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/cosmic-tools/cosmic-ledger/internal/blob"
	"github.com/cosmic-tools/cosmic-ledger/internal/common"
	"github.com/cosmic-tools/cosmic-ledger/internal/config"
	"github.com/cosmic-tools/cosmic-ledger/internal/store"
)

// openStore builds the configured blob store backend and loads the
// ledger from it. The returned cleanup closes the backend.
func openStore(ctx context.Context) (*store.Store, func(), error) {
	blobs, err := openBlobStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	st := store.Open(ctx, blobs, store.Options{
		RejectNegativeBudget: viper.GetBool("budget.reject_negative"),
	})

	cleanup := func() {
		_ = blobs.Close()
	}
	return st, cleanup, nil
}

func openBlobStore(ctx context.Context) (blob.Store, error) {
	backend := viper.GetString("storage.backend")

	switch backend {
	case "sqlite":
		path := config.ExpandPath(viper.GetString("storage.path"))
		blobs, err := blob.NewSQLiteStore(path)
		if err != nil {
			return nil, common.NewUserError("failed to open ledger database", err)
		}
		return blobs, nil
	case "redis":
		blobs, err := blob.NewRedisStore(ctx,
			viper.GetString("storage.redis.addr"),
			viper.GetInt("storage.redis.db"))
		if err != nil {
			return nil, common.NewUserError("failed to connect to redis backend", err)
		}
		return blobs, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// parseAmount parses a currency amount argument.
func parseAmount(arg string) (float64, error) {
	amount, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", arg, err)
	}
	return amount, nil
}

// parseDate parses a YYYY-MM-DD date argument; empty means today.
func parseDate(arg string) (time.Time, error) {
	if arg == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", arg, err)
	}
	return date, nil
}
