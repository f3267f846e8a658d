package app

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/app/links"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Deps bundles the collaborators shared by the catalog services.
type Deps struct {
	Registry *links.Registry
	Products ports.ProductClient
	Exec     *saga.Executor
	// Workers bounds concurrent reads inside a step (product checks,
	// reorder snapshots). Values below 1 mean sequential.
	Workers int
	Logger  *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// normalizeIDs trims, de-duplicates and sorts product ids. An empty id is a
// validation failure.
func normalizeIDs(field string, ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, domain.NewValidationError(field, "must not contain empty ids")
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
