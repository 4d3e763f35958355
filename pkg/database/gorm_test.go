package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Debug(string, string, map[string]interface{}) {}
func (r *recordingLogger) Info(string, string, map[string]interface{}) {}
func (r *recordingLogger) Warn(_ string, message string, _ map[string]interface{}) {
	r.warnings = append(r.warnings, message)
}
func (r *recordingLogger) Error(string, string, map[string]interface{}) {}
func (r *recordingLogger) Sync() error { return nil }

func TestGormConfig_DSN(t *testing.T) {
	cfg := GormConfig{Host: "db", Port: "5432", User: "bot", Password: "pw", DBName: "catalogo_db"}
	assert.Equal(t, "host=db user=bot password=pw dbname=catalogo_db port=5432 sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestLogWriter_ForwardsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	logWriter{log: rec}.Printf("slow query %dms", 750)
	assert.Equal(t, []string{"slow query 750ms"}, rec.warnings)
}
