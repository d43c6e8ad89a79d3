package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mekedron/cafe-menu/internal/config"
	"github.com/mekedron/cafe-menu/internal/domain"
	"github.com/mekedron/cafe-menu/internal/i18n"
	"github.com/mekedron/cafe-menu/internal/service/branch"
	"github.com/mekedron/cafe-menu/internal/sitedata"
)

type memoryPreferences struct {
	prefs *domain.Preferences
	saves int
}

func (m *memoryPreferences) Path() string {
	return "/tmp/cafe-test/preferences.json"
}

func (m *memoryPreferences) Load(context.Context) (domain.Preferences, error) {
	if m.prefs == nil {
		return domain.Preferences{}, config.ErrPreferencesNotFound
	}
	return *m.prefs, nil
}

func (m *memoryPreferences) Save(_ context.Context, prefs domain.Preferences) error {
	m.prefs = &prefs
	m.saves++
	return nil
}

func testDependencies(t *testing.T, prefs *memoryPreferences) Dependencies {
	t.Helper()
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded translations: %v", err)
	}
	source := sitedata.NewSource("", zerolog.Nop())
	if prefs == nil {
		prefs = &memoryPreferences{}
	}
	return Dependencies{
		Site:         source,
		Branches:     branch.NewResolver(source),
		Preferences:  prefs,
		Translations: bundle,
		Settings: config.Settings{
			PageSize:        12,
			CountryCode:     "+855",
			DefaultLanguage: "en",
		},
		Logger:  zerolog.Nop(),
		Version: "test",
	}
}

func runCLI(t *testing.T, deps Dependencies, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := Execute(context.Background(), args, deps, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

type testEnvelope struct {
	Meta     map[string]any  `json:"meta"`
	Data     json.RawMessage `json:"data"`
	Warnings []string        `json:"warnings"`
	Error    map[string]any  `json:"error"`
}

func decodeEnvelope(t *testing.T, raw string) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &env); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, raw)
	}
	return env
}

func decodeData(t *testing.T, env testEnvelope, target any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, target); err != nil {
		t.Fatalf("decode data: %v\n%s", err, string(env.Data))
	}
}

func findCommand(root *cobra.Command, path ...string) (*cobra.Command, bool) {
	current := root
	for _, segment := range path {
		found := false
		for _, cmd := range current.Commands() {
			if cmd.Name() == segment {
				current = cmd
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return current, true
}
