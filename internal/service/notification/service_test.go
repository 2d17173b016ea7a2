package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/notification"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu       sync.Mutex
	inserted []*notification.Notification

	createBatchFn    func(ctx context.Context, ns []*notification.Notification) error
	getByUserIDFn    func(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error)
	getUnreadCountFn func(ctx context.Context, userID string) (int, error)
	markAsReadFn     func(ctx context.Context, ids []string, userID string) error
	getPreferencesFn func(ctx context.Context, userID string) ([]*notification.NotificationPreference, error)
	upsertFn         func(ctx context.Context, pref *notification.NotificationPreference) error
	emailEnabledFn   func(ctx context.Context, userID string, t notification.NotificationType) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, n *notification.Notification) error {
	return f.CreateBatch(ctx, []*notification.Notification{n})
}

func (f *fakeRepo) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if f.createBatchFn != nil {
		if err := f.createBatchFn(ctx, ns); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, ns...)
	return nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	return f.getByUserIDFn(ctx, userID, page, pageSize, unreadOnly)
}

func (f *fakeRepo) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return f.getUnreadCountFn(ctx, userID)
}

func (f *fakeRepo) MarkAsRead(ctx context.Context, ids []string, userID string) error {
	return f.markAsReadFn(ctx, ids, userID)
}

func (f *fakeRepo) MarkAllAsRead(ctx context.Context, userID string) error { return nil }

func (f *fakeRepo) Delete(ctx context.Context, id string, userID string) error { return nil }

func (f *fakeRepo) GetPreferences(ctx context.Context, userID string) ([]*notification.NotificationPreference, error) {
	return f.getPreferencesFn(ctx, userID)
}

func (f *fakeRepo) UpsertPreference(ctx context.Context, pref *notification.NotificationPreference) error {
	return f.upsertFn(ctx, pref)
}

func (f *fakeRepo) IsEmailEnabled(ctx context.Context, userID string, t notification.NotificationType) (bool, error) {
	if f.emailEnabledFn == nil {
		return true, nil
	}
	return f.emailEnabledFn(ctx, userID, t)
}

func (f *fakeRepo) insertedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) SendRequestStatus(to string, data email.RequestStatusData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+":"+data.Status)
	return nil
}

func TestQueueNotification_FlushesOnStop(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	svc := NewNotificationService(repo, mailer, Config{FlushInterval: time.Hour, WorkerCount: 2, BatchSize: 50})

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.QueueNotification(context.Background(), notification.CreateNotificationRequest{
			RecipientID: "employee-1",
			Type:        notification.TypeRequestApproved,
			Title:       "Request approved",
			Message:     "Your vacation request was approved",
		}))
	}
	svc.Stop()

	assert.Equal(t, 5, repo.insertedCount())
	for _, n := range repo.inserted {
		assert.NotEmpty(t, n.ID)
		assert.False(t, n.IsRead)
		assert.Equal(t, "employee-1", n.RecipientID)
	}
	assert.Empty(t, mailer.sent, "no email content attached")
}

func TestQueueNotification_SendsEmailWhenEnabled(t *testing.T) {
	repo := &fakeRepo{
		emailEnabledFn: func(_ context.Context, userID string, _ notification.NotificationType) (bool, error) {
			return userID == "employee-1", nil
		},
	}
	mailer := &fakeMailer{}
	svc := NewNotificationService(repo, mailer, Config{FlushInterval: 10 * time.Millisecond, WorkerCount: 1})

	for _, recipient := range []string{"employee-1", "employee-2"} {
		require.NoError(t, svc.QueueNotification(context.Background(), notification.CreateNotificationRequest{
			RecipientID: recipient,
			Type:        notification.TypeRequestRejected,
			Title:       "Request rejected",
			Email:       &notification.EmailContent{To: recipient + "@example.com", Status: "rejected"},
		}))
	}
	svc.Stop()

	assert.Equal(t, []string{"employee-1@example.com:rejected"}, mailer.sent)
}

func TestQueueNotification_BatchInsertFailureDropsEmail(t *testing.T) {
	repo := &fakeRepo{
		createBatchFn: func(context.Context, []*notification.Notification) error { return errors.New("db down") },
	}
	mailer := &fakeMailer{}
	svc := NewNotificationService(repo, mailer, Config{WorkerCount: 1})

	require.NoError(t, svc.QueueNotification(context.Background(), notification.CreateNotificationRequest{
		RecipientID: "employee-1",
		Type:        notification.TypeRequestApproved,
		Email:       &notification.EmailContent{To: "a@example.com", Status: "approved"},
	}))
	svc.Stop()
	svc.Stop()

	assert.Equal(t, 0, repo.insertedCount())
	assert.Empty(t, mailer.sent)
}

func TestGetNotifications(t *testing.T) {
	now := time.Now()
	repo := &fakeRepo{
		getByUserIDFn: func(_ context.Context, userID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 20, pageSize)
			assert.True(t, unreadOnly)
			return []*notification.Notification{{ID: "n1", RecipientID: userID, Type: notification.TypeRequestSubmitted, Title: "New request", CreatedAt: now}}, 1, nil
		},
		getUnreadCountFn: func(context.Context, string) (int, error) { return 3, nil },
	}
	svc := NewNotificationService(repo, nil, Config{WorkerCount: 1})
	defer svc.Stop()

	resp, err := svc.GetNotifications(context.Background(), "manager-1", 0, 500, true)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 3, resp.UnreadCount)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "n1", resp.Notifications[0].ID)
}

func TestMarkAsRead_RequiresIDs(t *testing.T) {
	called := false
	repo := &fakeRepo{markAsReadFn: func(context.Context, []string, string) error { called = true; return nil }}
	svc := NewNotificationService(repo, nil, Config{WorkerCount: 1})
	defer svc.Stop()

	assert.Error(t, svc.MarkAsRead(context.Background(), "u1", notification.MarkAsReadRequest{}))
	assert.False(t, called)

	require.NoError(t, svc.MarkAsRead(context.Background(), "u1", notification.MarkAsReadRequest{NotificationIDs: []string{"n1"}}))
	assert.True(t, called)
}

func TestPreferences(t *testing.T) {
	var saved *notification.NotificationPreference
	repo := &fakeRepo{
		getPreferencesFn: func(context.Context, string) ([]*notification.NotificationPreference, error) {
			return []*notification.NotificationPreference{{NotificationType: notification.TypePendingReminder, EmailEnabled: false}}, nil
		},
		upsertFn: func(_ context.Context, pref *notification.NotificationPreference) error {
			saved = pref
			return nil
		},
	}
	svc := NewNotificationService(repo, nil, Config{WorkerCount: 1})
	defer svc.Stop()

	prefs, err := svc.GetPreferences(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, prefs, len(notification.AllNotificationTypes()))
	for _, p := range prefs {
		assert.Equal(t, p.NotificationType != notification.TypePendingReminder, p.EmailEnabled, p.NotificationType)
	}

	assert.Error(t, svc.UpdatePreference(context.Background(), "u1", notification.UpdatePreferenceRequest{NotificationType: "payroll_generated"}))

	require.NoError(t, svc.UpdatePreference(context.Background(), "u1", notification.UpdatePreferenceRequest{
		NotificationType: notification.TypeRequestApproved,
		EmailEnabled:     false,
	}))
	require.NotNil(t, saved)
	assert.Equal(t, "u1", saved.UserID)
	assert.False(t, saved.EmailEnabled)
}
