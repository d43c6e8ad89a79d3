package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mekedron/cafe-menu/internal/cli"
	"github.com/mekedron/cafe-menu/internal/config"
	"github.com/mekedron/cafe-menu/internal/i18n"
	"github.com/mekedron/cafe-menu/internal/service/branch"
	"github.com/mekedron/cafe-menu/internal/sitedata"
)

const quirkyCatalog = `[
  {"category": "Cold", "items": [{"id": 7, "name": "Iced Tea", "price": 1.25}]},
  null,
  {"category": "Hot Drinks", "items": [
    {"id": 1, "name": "Espresso", "price": 1.5},
    {"slug": "flat-white", "name": {"en": "Flat White", "zh": "馥芮白"}, "price": {"m": 2.5, "s": 2}},
    "bogus"
  ]},
  {"category": "Signature", "items": [{"id": 1, "name": {"en": "Espresso Tonic"}, "price": 3}]}
]`

const branchVariables = `name: Test Cafe
contact:
  phone: "+1 555 0100 / 0200 300"
  address: 1 Main Street
branches:
  - name: Harbour
    address: 2 Quay Road
    phone: "0200 300"
`

// setupEnv writes a data directory and .env file and loads settings from them.
func setupEnv(t *testing.T) config.Settings {
	t.Helper()
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dataDir, sitedata.CatalogFile), quirkyCatalog)
	writeFile(t, filepath.Join(dataDir, sitedata.VariablesYAMLFile), branchVariables)
	writeFile(t, filepath.Join(root, ".env"), "CAFE_COUNTRY_CODE=+44\n")

	for _, key := range []string{"CAFE_COUNTRY_CODE", "CAFE_DEFAULT_LANG"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Setenv("CAFE_DATA_DIR", dataDir)
	t.Setenv("CAFE_PAGE_SIZE", "2")
	t.Setenv("CAFE_PREFERENCES_PATH", filepath.Join(root, "prefs", "preferences.json"))

	settings, err := config.LoadSettings(filepath.Join(root, ".env"))
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	return settings
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func buildDeps(t *testing.T, settings config.Settings) cli.Dependencies {
	t.Helper()
	store, err := config.NewStore(settings.PreferencesPath)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("load translations: %v", err)
	}
	source := sitedata.NewSource(settings.DataDir, zerolog.Nop())
	return cli.Dependencies{
		Site:         source,
		Branches:     branch.NewResolver(source),
		Preferences:  store,
		Translations: bundle,
		Settings:     settings,
		Logger:       zerolog.Nop(),
		Version:      "1.0.0",
	}
}

func runCLIWithDeps(t *testing.T, deps cli.Dependencies, args ...string) (int, string) {
	t.Helper()
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	exitCode := cli.Execute(context.Background(), args, deps, &stdout, &stderr)
	return exitCode, stdout.String() + stderr.String()
}

func mustJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("failed to parse JSON output: %v\noutput: %s", err, raw)
	}
	return payload
}

func asMapPayload(t *testing.T, value any) map[string]any {
	t.Helper()
	payload, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", value)
	}
	return payload
}

func asSlicePayload(t *testing.T, value any) []any {
	t.Helper()
	payload, ok := value.([]any)
	if !ok {
		t.Fatalf("expected slice payload, got %T", value)
	}
	return payload
}

func TestMenuListUsesDataDirAndPageSize(t *testing.T) {
	deps := buildDeps(t, setupEnv(t))

	exitCode, out := runCLIWithDeps(t, deps, "menu", "list", "--page", "2", "--format", "json")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	payload := mustJSON(t, out)
	meta := asMapPayload(t, payload["meta"])
	if !strings.HasSuffix(meta["source"].(string), "data") {
		t.Fatalf("expected data directory source, got %v", meta["source"])
	}
	if !strings.HasPrefix(meta["request_id"].(string), "req_") {
		t.Fatalf("unexpected request id: %v", meta["request_id"])
	}
	data := asMapPayload(t, payload["data"])
	if data["total"] != float64(4) || data["page_count"] != float64(2) {
		t.Fatalf("unexpected totals: %v / %v", data["total"], data["page_count"])
	}
	items := asSlicePayload(t, data["items"])
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(items))
	}
	first := asMapPayload(t, items[0])
	if first["id"] != "flat-white" || first["price_label"] != "S $2.00 / M $2.50" {
		t.Fatalf("unexpected first item: %v", first)
	}
}

func TestMenuItemDuplicateIDLastWins(t *testing.T) {
	deps := buildDeps(t, setupEnv(t))

	exitCode, out := runCLIWithDeps(t, deps, "menu", "item", "1", "--format", "json")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	data := asMapPayload(t, mustJSON(t, out)["data"])
	if data["name"] != "Espresso Tonic" {
		t.Fatalf("expected the later duplicate to win, got %v", data["name"])
	}
}

func TestMenuCategoriesYAML(t *testing.T) {
	deps := buildDeps(t, setupEnv(t))

	exitCode, out := runCLIWithDeps(t, deps, "menu", "categories", "--format", "yaml")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	var payload struct {
		Data struct {
			Categories []struct {
				Category string `yaml:"category"`
				Label    string `yaml:"label"`
				Items    int    `yaml:"items"`
			} `yaml:"categories"`
		} `yaml:"data"`
	}
	if err := yaml.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse yaml: %v\n%s", err, out)
	}
	got := make([]string, 0, len(payload.Data.Categories))
	for _, row := range payload.Data.Categories {
		got = append(got, row.Category)
	}
	if strings.Join(got, ",") != "All,Hot Drinks,Signature,Cold" {
		t.Fatalf("unexpected category order: %v", got)
	}
	if payload.Data.Categories[1].Label != "Hot Drinks" || payload.Data.Categories[1].Items != 2 {
		t.Fatalf("unexpected hot drinks row: %+v", payload.Data.Categories[1])
	}
}

func TestLangSetPersistsAcrossInvocations(t *testing.T) {
	settings := setupEnv(t)

	exitCode, out := runCLIWithDeps(t, buildDeps(t, settings), "lang", "set", "zh-CN")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	raw, err := os.ReadFile(settings.PreferencesPath)
	if err != nil {
		t.Fatalf("expected preferences file: %v", err)
	}
	if !strings.Contains(string(raw), `"language": "zh"`) {
		t.Fatalf("unexpected preferences file: %s", raw)
	}

	exitCode, out = runCLIWithDeps(t, buildDeps(t, settings), "menu", "item", "flat-white")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	if !strings.Contains(out, "馥芮白") {
		t.Fatalf("expected saved language to apply:\n%s", out)
	}
}

func TestContactUsesConfiguredCountryCode(t *testing.T) {
	deps := buildDeps(t, setupEnv(t))

	exitCode, out := runCLIWithDeps(t, deps, "contact", "branch", "--name", "HARBOUR", "--format", "json")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	data := asMapPayload(t, mustJSON(t, out)["data"])
	phones := asSlicePayload(t, data["phones"])
	if len(phones) != 1 || asMapPayload(t, phones[0])["href"] != "tel:+44200300" {
		t.Fatalf("unexpected phones: %v", phones)
	}
	if data["map_url"] != "https://www.google.com/maps/search/?api=1&query=2%20Quay%20Road" {
		t.Fatalf("unexpected map url: %v", data["map_url"])
	}

	exitCode, out = runCLIWithDeps(t, deps, "contact", "show", "--format", "json")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	contact := asMapPayload(t, mustJSON(t, out)["data"])
	phones = asSlicePayload(t, contact["phones"])
	if len(phones) != 2 || asMapPayload(t, phones[0])["href"] != "tel:+15550100" {
		t.Fatalf("unexpected contact phones: %v", phones)
	}
}

func TestGalleryFallsBackToEmbeddedData(t *testing.T) {
	deps := buildDeps(t, setupEnv(t))

	exitCode, out := runCLIWithDeps(t, deps, "gallery", "list", "--format", "json")
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", exitCode, out)
	}
	data := asMapPayload(t, mustJSON(t, out)["data"])
	if data["count"] != float64(4) {
		t.Fatalf("expected embedded gallery, got %v", data["count"])
	}
}
