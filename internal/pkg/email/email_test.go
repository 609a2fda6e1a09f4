package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(cfg config.SMTPConfig, failures int) (*emailServiceImpl, *[]sent) {
	var calls []sent
	svc := &emailServiceImpl{cfg: cfg}
	svc.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		calls = append(calls, sent{addr: addr, from: from, to: to, msg: string(msg)})
		if len(calls) <= failures {
			return errors.New("connection refused")
		}
		return nil
	}
	return svc, &calls
}

func TestSendMaintenanceReminder(t *testing.T) {
	svc, calls := newTestService(config.SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		From:       "facilities@example.com",
		FromName:   "Facilities",
		Recipients: []string{"ops@example.com", "it@example.com"},
	}, 0)

	err := svc.SendMaintenanceReminder("2024-02-28", 30, []string{"AST-002"}, []string{"AST-003", "AST-009"})
	require.NoError(t, err)
	require.Len(t, *calls, 1)

	call := (*calls)[0]
	assert.Equal(t, "smtp.example.com:587", call.addr)
	assert.Equal(t, []string{"ops@example.com", "it@example.com"}, call.to)
	assert.Contains(t, call.msg, "Subject: Maintenance due: 2 overdue, 1 upcoming")
	assert.Contains(t, call.msg, "<li>AST-003</li>")
	assert.Contains(t, call.msg, "Due within 30 days")
}

func TestSendMaintenanceReminder_RetriesThenFails(t *testing.T) {
	svc, calls := newTestService(config.SMTPConfig{
		Host:         "smtp.example.com",
		Port:         25,
		Recipients:   []string{"ops@example.com"},
		RetryBackoff: time.Millisecond,
	}, maxRetries)

	err := svc.SendMaintenanceReminder("2024-02-28", 30, nil, []string{"AST-003"})
	require.Error(t, err)
	assert.Len(t, *calls, maxRetries)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}

func TestSendMaintenanceReminder_SkipsWhenUnconfigured(t *testing.T) {
	svc, calls := newTestService(config.SMTPConfig{Recipients: []string{"ops@example.com"}}, 0)
	require.NoError(t, svc.SendMaintenanceReminder("2024-02-28", 30, []string{"AST-002"}, nil))
	assert.Empty(t, *calls)

	svc, calls = newTestService(config.SMTPConfig{Host: "smtp.example.com"}, 0)
	require.NoError(t, svc.SendMaintenanceReminder("2024-02-28", 30, []string{"AST-002"}, nil))
	assert.Empty(t, *calls)
}
