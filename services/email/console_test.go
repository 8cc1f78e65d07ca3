package emailsvc

import (
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-review/core"
)

type recordingLogger struct {
	core.NopLogger
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(msg string, _ ...interface{})  { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{}) { l.errors = append(l.errors, msg) }

func testConfig() *core.Config {
	return &core.Config{AppName: "Masomo Review"}
}

func TestConsoleService_SendMessages(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewConsoleService(testConfig(), logger)

	svc.SendMessages(
		&core.EmailMessage{
			To:      []mail.Address{{Name: "Alice", Address: "alice@test.cd"}, {Address: "carol@test.cd"}},
			Subject: "Hello",
			BodyStr: "plain body",
		},
		&core.EmailMessage{Subject: "no recipients", BodyStr: "dropped"},
		&core.EmailMessage{To: []mail.Address{{Address: "bob@test.cd"}}, TemplateName: "lol"},
	)

	require.Len(t, logger.infos, 1)
	body := logger.infos[0]
	assert.Contains(t, body, "Subject: [Masomo Review] Hello\r\n")
	assert.Contains(t, body, `To: "Alice" <alice@test.cd>, <carol@test.cd>`)
	assert.Contains(t, body, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, body, "plain body")
	assert.False(t, strings.Contains(body, "text/html"), "no html part without html content")

	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "unknown email template")
}

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	svc := NewConsoleServiceMock(testConfig())

	svc.SendMessages(
		&core.EmailMessage{To: []mail.Address{{Address: "alice@test.cd"}}, Subject: "one", BodyStr: "1"},
		&core.EmailMessage{Subject: "no recipients", BodyStr: "dropped"},
		&core.EmailMessage{To: []mail.Address{{Address: "bob@test.cd"}}, Subject: "empty"},
	)

	sent := svc.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "one", sent[0].Subject)
	assert.Equal(t, "1", sent[0].TextContent)

	sent[0].Subject = "tampered"
	assert.Equal(t, "one", svc.Sent()[0].Subject)
}
