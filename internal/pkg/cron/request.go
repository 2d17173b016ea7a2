package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/notification"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
)

// RequestJobs contains request-related cron jobs
type RequestJobs struct {
	requestRepo     request.RequestRepository
	notificationSvc notification.Service
	interval        time.Duration
}

// NewRequestJobs creates request cron jobs
func NewRequestJobs(requestRepo request.RequestRepository, notificationSvc notification.Service, interval time.Duration) *RequestJobs {
	return &RequestJobs{
		requestRepo:     requestRepo,
		notificationSvc: notificationSvc,
		interval:        interval,
	}
}

// RegisterJobs registers all request-related cron jobs
func (j *RequestJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("pending_request_reminder", j.interval, j.SendPendingReminders)
}

// SendPendingReminders queues one reminder per manager with pending requests.
func (j *RequestJobs) SendPendingReminders(ctx context.Context) error {
	counts, err := j.requestRepo.CountPendingByManager(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending requests: %w", err)
	}
	if len(counts) == 0 {
		slog.Debug("Cron: No pending requests")
		return nil
	}

	managerIDs := make([]string, 0, len(counts))
	for id := range counts {
		managerIDs = append(managerIDs, id)
	}
	sort.Strings(managerIDs)

	reqs := make([]notification.CreateNotificationRequest, 0, len(managerIDs))
	for _, id := range managerIDs {
		n := counts[id]
		if n == 0 {
			continue
		}
		noun := "requests"
		if n == 1 {
			noun = "request"
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: id,
			Type:        notification.TypePendingReminder,
			Title:       "Pending Requests",
			Message:     fmt.Sprintf("You have %d pending %s waiting for review", n, noun),
			Data:        map[string]interface{}{"pending_count": n},
		})
	}

	if err := j.notificationSvc.QueueBulkNotification(ctx, reqs); err != nil {
		return fmt.Errorf("failed to queue reminders: %w", err)
	}

	slog.Info("Cron: Pending request reminders queued", "managers", len(reqs))
	return nil
}
