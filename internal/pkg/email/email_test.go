package email

import (
	"net/smtp"
	"testing"

	"github.com/YossiBuhnik/WorkLog1/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequestStatus(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "no-reply@example.com", FromName: "WorkLog"})
	require.NoError(t, err)

	var gotAddr string
	var gotTo []string
	var gotMsg string
	impl := svc.(*emailServiceImpl)
	impl.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err = svc.SendRequestStatus("dana@example.com", RequestStatusData{
		Name:          "Dana",
		RequestType:   "vacation",
		Status:        "approved",
		StartDate:     "2025-06-01",
		EndDate:       "2025-06-05",
		DecidedByName: "Moshe",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"dana@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Your vacation request was approved")
	assert.Contains(t, gotMsg, "2025-06-01 to 2025-06-05")
	assert.Contains(t, gotMsg, "by Moshe")
}

func TestSendSkippedWithoutSMTP(t *testing.T) {
	svc, err := NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)

	called := false
	svc.(*emailServiceImpl).send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, svc.SendRequestStatus("dana@example.com", RequestStatusData{RequestType: "vacation", Status: "rejected"}))
	assert.False(t, called)
}
