package i18n

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedBundle(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded bundle: %v", err)
	}
	if got := bundle.Languages(); !reflect.DeepEqual(got, []string{"en", "km", "zh"}) {
		t.Fatalf("unexpected languages: %v", got)
	}
	if got := bundle.Translator("zh").T("menu.title", ""); got != "菜单" {
		t.Fatalf("expected chinese menu title, got %q", got)
	}
}

func TestTranslatorFallsBackToEnglishThenFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("menu:\n  title: Menu\n  empty: Nothing here\n")},
		"locales/km.yaml": {Data: []byte("menu:\n  title: ម៉ឺនុយ\n")},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	tr := bundle.Translator("km")
	if got := tr.T("menu.title", "x"); got != "ម៉ឺនុយ" {
		t.Fatalf("expected khmer title, got %q", got)
	}
	if got := tr.T("menu.empty", "x"); got != "Nothing here" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := tr.T("menu.missing", "Fallback"); got != "Fallback" {
		t.Fatalf("expected supplied fallback, got %q", got)
	}
	if got := tr.T("menu.missing", ""); got != "menu.missing" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestLoadFromFSRequiresFallbackLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/zh.yaml": {Data: []byte("menu:\n  title: 菜单\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected error without english resources")
	}
}

func TestLabelForCategoryWithEmbeddedBundle(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded bundle: %v", err)
	}
	if got := LabelForCategory(bundle.Translator("zh"), "FRAPPE/SMOOTHIES"); got != "星冰乐与冰沙" {
		t.Fatalf("unexpected zh label %q", got)
	}
	if got := LabelForCategory(bundle.Translator("km"), "Frappe/Smothies"); got != "Frappe & Smoothies" {
		t.Fatalf("expected english fallback for km, got %q", got)
	}
	if got := LabelForCategory(bundle.Translator("en"), "Seasonal"); got != "Seasonal" {
		t.Fatalf("expected literal fallback, got %q", got)
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "en", want: "en", wantOK: true},
		{in: "en-US", want: "en", wantOK: true},
		{in: "zh_CN", want: "zh", wantOK: true},
		{in: "cn", want: "zh", wantOK: true},
		{in: "KH", want: "km", wantOK: true},
		{in: "km-KH", want: "km", wantOK: true},
		{in: "", want: "en", wantOK: false},
		{in: "not a tag", want: "en", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ResolveLanguage(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ResolveLanguage(%q) = %q/%v, want %q/%v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestInterpolate(t *testing.T) {
	got := Interpolate("Page {page} of {pages}", map[string]string{"page": "2", "pages": "5"})
	if got != "Page 2 of 5" {
		t.Fatalf("unexpected interpolation %q", got)
	}
}
