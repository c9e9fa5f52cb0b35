package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

type AdSelector struct {
	ads    AdvertisementStore
	logger zerolog.Logger
}

func NewAdSelector(ads AdvertisementStore, logger zerolog.Logger) *AdSelector {
	return &AdSelector{
		ads:    ads,
		logger: logger.With().Str("component", "ads").Logger(),
	}
}

// SelectAdForSlot returns the best eligible ad not in exclude, or nil.
func (s *AdSelector) SelectAdForSlot(ctx context.Context, exclude []int64) (*domain.Advertisement, error) {
	ad, err := s.ads.SelectEligible(ctx, exclude)
	if err != nil {
		return nil, fmt.Errorf("select ad: %w", err)
	}
	return ad, nil
}

// Interleave inserts one ad after every everyN-th organic item. Organic order is
// preserved, no ad repeats within the page, and a slot without an eligible ad is skipped.
func (s *AdSelector) Interleave(ctx context.Context, organic []domain.FeedItem, everyN int) ([]domain.FeedItem, error) {
	if everyN <= 0 || len(organic) < everyN {
		return organic, nil
	}

	out := make([]domain.FeedItem, 0, len(organic)+len(organic)/everyN)
	var used []int64
	exhausted := false

	for i, item := range organic {
		out = append(out, item)
		if (i+1)%everyN != 0 {
			continue
		}
		if exhausted {
			metrics.AdSlots.WithLabelValues("skipped").Inc()
			continue
		}

		ad, err := s.SelectAdForSlot(ctx, used)
		if err != nil {
			return nil, err
		}
		if ad == nil {
			exhausted = true
			metrics.AdSlots.WithLabelValues("skipped").Inc()
			continue
		}

		used = append(used, ad.ID)
		out = append(out, domain.AdItem(ad))
		metrics.AdSlots.WithLabelValues("filled").Inc()
	}

	return out, nil
}

// RecordImpression counts one view. An ad that is inactive or already at its
// cap is left unchanged.
func (s *AdSelector) RecordImpression(ctx context.Context, adID int64) error {
	counted, err := s.ads.RecordImpression(ctx, adID)
	if err != nil {
		return fmt.Errorf("record impression: %w", err)
	}
	if !counted {
		if _, err := s.ads.Get(ctx, adID); err != nil {
			return fmt.Errorf("record impression: %w", err)
		}
		s.logger.Debug().Int64("ad_id", adID).Msg("impression not counted, ad inactive or capped")
		return nil
	}

	metrics.AdEvents.WithLabelValues("impression").Inc()
	return nil
}

func (s *AdSelector) RecordClick(ctx context.Context, adID int64) error {
	if err := s.ads.RecordClick(ctx, adID); err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	metrics.AdEvents.WithLabelValues("click").Inc()
	return nil
}
