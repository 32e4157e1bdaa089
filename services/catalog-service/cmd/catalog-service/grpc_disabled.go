//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/storage"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *storage.PropertyRepository) error {
	return nil
}
