package logsvc

import (
	"bytes"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo-review/core"
	"github.com/trezcool/masomo-review/core/review"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		lvl  string
		want log.Lvl
	}{
		{lvl: "debug", want: log.DEBUG},
		{lvl: " INFO ", want: log.INFO},
		{lvl: "warn", want: log.WARN},
		{lvl: "error", want: log.ERROR},
		{lvl: "off", want: log.OFF},
		{lvl: "lol", want: log.WARN},
	}
	for _, tt := range tests {
		t.Run(tt.lvl, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.lvl))
		})
	}
}

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	conf := &core.Config{Env: "TEST", LogLevel: "info"}
	logger := NewRollbarLogger(NewStdLogger("REVIEW", &buf, conf), conf)
	defer logger.Close()

	assert.False(t, logger.enabled, "disabled without a token")

	alice := review.NewStudent("s1", "Alice", "alice@test.cd")
	logger.Info("assignment submitted", alice, map[string]interface{}{"assignment": "HW1"})
	logger.Error("sending email", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "assignment submitted [student s1] - map[assignment:HW1]")
	assert.Contains(t, out, "sending email - boom")
	assert.Contains(t, out, "REVIEW")
	assert.NotContains(t, out, "hidden")
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := &RollbarLogger{}
	alice := review.NewStudent("s1", "Alice", "")
	bob := review.NewReviewer("r1", "Bob", "")
	err := errors.New("boom")

	got := logger.prepare("msg", []interface{}{alice, err, bob})
	assert.Equal(t, []interface{}{"msg", err}, got, "members are not forwarded as extras")
}
