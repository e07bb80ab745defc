package services

import (
	"context"
	"log/slog"
	"slices"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"
	"sharemyshows-live/errors"
)

var _ contract.ISiblingResolver = (*SiblingResolver)(nil)

// SiblingResolver maps a show record to every record of the same concert.
// Results are not cached: a sibling logged a second ago must already receive events.
type SiblingResolver struct {
	log   *slog.Logger
	shows contract.ShowStore
}

func NewSiblingResolver(log *slog.Logger, shows contract.ShowStore) *SiblingResolver {
	return &SiblingResolver{log: log, shows: shows}
}

// SiblingsOf always contains showID itself.
// It fails open to the singleton set so that a lookup problem never silently drops an event.
func (r *SiblingResolver) SiblingsOf(ctx context.Context, showID domain.ShowID) []domain.ShowID {
	single := []domain.ShowID{showID}

	show, err := r.shows.GetByID(ctx, showID)
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			r.log.Warn("Show lookup failed, resolving to itself", "show_id", showID, "error", err)
		}
		return single
	}

	ids, err := r.shows.FindSiblings(ctx, show.ArtistID, show.VenueID, show.Date)
	if err != nil {
		r.log.Warn("Sibling lookup failed, resolving to itself", "show_id", showID, "error", err)
		return single
	}
	if !slices.Contains(ids, showID) {
		ids = append(ids, showID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
