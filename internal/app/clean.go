package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Clean removes cached dependency reports from the report directory.
func (s Service) Clean(ctx context.Context, req CleanRequest) (CleanResult, error) {
	store := s.ReportStore(strings.TrimSpace(req.ReportDir))
	removed, err := store.Clean()
	if err != nil {
		return CleanResult{Removed: removed}, err
	}
	log.Ctx(ctx).Debug().Int("removed", removed).Msg("dependency reports cleaned")
	return CleanResult{Removed: removed}, nil
}
