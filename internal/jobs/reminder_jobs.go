package jobs

import (
	"context"
	"fmt"
	"time"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/logger"
)

// NotifyClosingNominations notifies club members about nominations
// whose application window closes within 24 hours.
func (jr *JobRunner) NotifyClosingNominations() {
	jr.runWithRecovery("NotifyClosingNominations", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		now := time.Now()
		noms, err := jr.store.NominationRepository.ListEndingBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list closing nominations", "error", err)
			return
		}

		for _, nom := range noms {
			memberIDs, err := jr.store.ClubRepository.ListMemberIDs(ctx, nom.ClubID)
			if err != nil {
				logger.Error("Failed to list club members", "club_id", nom.ClubID, "error", err)
				continue
			}
			for _, userID := range memberIDs {
				note := &domain.Notification{
					UserID:  userID,
					Title:   "Nomination closing soon",
					Message: fmt.Sprintf("Applications for %s close at %s", nom.Position, nom.EndDate.Format(time.RFC3339)),
					Attributes: map[string]string{
						"type":          "NOMINATION_CLOSING",
						"nomination_id": fmt.Sprintf("%d", nom.ID),
					},
				}
				if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
					logger.Error("Failed to create notification", "user_id", userID, "error", err)
				}
			}
			logger.Info("Notified members about closing nomination",
				"nomination_id", nom.ID, "members", len(memberIDs))
		}
	})
}

// NotifyUpcomingEvents notifies club members about election events
// scheduled within the next 24 hours.
func (jr *JobRunner) NotifyUpcomingEvents() {
	jr.runWithRecovery("NotifyUpcomingEvents", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		now := time.Now()
		events, err := jr.store.EventRepository.ListScheduledBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list upcoming events", "error", err)
			return
		}

		for _, event := range events {
			memberIDs, err := jr.store.ClubRepository.ListMemberIDs(ctx, event.ClubID)
			if err != nil {
				logger.Error("Failed to list club members", "club_id", event.ClubID, "error", err)
				continue
			}
			for _, userID := range memberIDs {
				note := &domain.Notification{
					UserID:  userID,
					Title:   "Election coming up",
					Message: fmt.Sprintf("The election for %s is scheduled for %s", event.Position, event.EventDate.Format(time.RFC3339)),
					Attributes: map[string]string{
						"type":     "EVENT_UPCOMING",
						"event_id": fmt.Sprintf("%d", event.ID),
					},
				}
				if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
					logger.Error("Failed to create notification", "user_id", userID, "error", err)
				}
			}
			logger.Info("Notified members about upcoming event",
				"event_id", event.ID, "members", len(memberIDs))
		}
	})
}
