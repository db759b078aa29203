package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupJSONFormatter(t *testing.T) {
	logger, err := Setup("debug", "json")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected JSON formatter, got %T", logger.Formatter)
	}
}

func TestSetupDefaultsToInfoText(t *testing.T) {
	logger, err := Setup("", "")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", logger.Formatter)
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if _, err := Setup("loud", "text"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
