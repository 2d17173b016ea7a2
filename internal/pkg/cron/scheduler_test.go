package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/notification"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("tick", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})
	s.AddJob("ignored", 0, func(context.Context) error { return nil })
	assert.Equal(t, []string{"tick"}, s.JobNames())

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	s := NewScheduler()
	s.AddJob("ok", time.Hour, func(context.Context) error { return nil })
	s.AddJob("broken", time.Hour, func(context.Context) error { return errors.New("boom") })

	err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "broken: boom")
}

type pendingRepo struct {
	request.RequestRepository
	counts map[string]int64
	err    error
}

func (p *pendingRepo) CountPendingByManager(context.Context) (map[string]int64, error) {
	return p.counts, p.err
}

type bulkNotifier struct {
	notification.Service
	queued []notification.CreateNotificationRequest
}

func (b *bulkNotifier) QueueBulkNotification(_ context.Context, reqs []notification.CreateNotificationRequest) error {
	b.queued = append(b.queued, reqs...)
	return nil
}

func TestSendPendingReminders(t *testing.T) {
	notifier := &bulkNotifier{}
	jobs := NewRequestJobs(&pendingRepo{counts: map[string]int64{"m2": 3, "m1": 1, "m3": 0}}, notifier, time.Hour)

	require.NoError(t, jobs.SendPendingReminders(context.Background()))
	require.Len(t, notifier.queued, 2)
	assert.Equal(t, "m1", notifier.queued[0].RecipientID)
	assert.Equal(t, "You have 1 pending request waiting for review", notifier.queued[0].Message)
	assert.Equal(t, "You have 3 pending requests waiting for review", notifier.queued[1].Message)
	assert.Equal(t, notification.TypePendingReminder, notifier.queued[1].Type)
}

func TestSendPendingReminders_NothingPending(t *testing.T) {
	notifier := &bulkNotifier{}
	jobs := NewRequestJobs(&pendingRepo{}, notifier, time.Hour)

	require.NoError(t, jobs.SendPendingReminders(context.Background()))
	assert.Empty(t, notifier.queued)
}

func TestSendPendingReminders_RepoError(t *testing.T) {
	jobs := NewRequestJobs(&pendingRepo{err: errors.New("db down")}, &bulkNotifier{}, time.Hour)

	err := jobs.SendPendingReminders(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestRegisterJobs(t *testing.T) {
	s := NewScheduler()
	NewRequestJobs(&pendingRepo{}, &bulkNotifier{}, time.Minute).RegisterJobs(s)
	assert.Equal(t, []string{"pending_request_reminder"}, s.JobNames())
}
