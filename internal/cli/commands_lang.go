package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mekedron/cafe-menu/internal/config"
	"github.com/mekedron/cafe-menu/internal/domain"
	"github.com/mekedron/cafe-menu/internal/i18n"
	"github.com/mekedron/cafe-menu/internal/service/output"
)

type languagePayload struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Current bool   `json:"current" yaml:"current"`
}

func newLangCommand(deps Dependencies) *cobra.Command {
	langCmd := &cobra.Command{
		Use:   "lang",
		Short: "Show or change the saved display language.",
	}
	langCmd.AddCommand(newLangShowCommand(deps))
	langCmd.AddCommand(newLangSetCommand(deps))
	return langCmd
}

func newLangShowCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active language and the supported languages.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			languages := lo.Map(i18n.SupportedLanguages(), func(code string, _ int) languagePayload {
				return languagePayload{Code: code, Name: i18n.LanguageName(code), Current: code == cc.language}
			})

			table := func() string {
				rows := lo.Map(languages, func(lang languagePayload, _ int) []string {
					marker := ""
					if lang.Current {
						marker = "*"
					}
					return []string{marker, lang.Code, lang.Name}
				})
				title := cc.translator.T("lang.current", "Language") + ": " + i18n.LanguageName(cc.language)
				return output.RenderTable(title, []string{"", "Code", "Name"}, rows)
			}
			return render(cmd, deps, cc, table, map[string]any{
				"current":   cc.language,
				"languages": languages,
			})
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newLangSetCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "set <language>",
		Short: "Save the display language used when --lang is not given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, ok := i18n.ResolveLanguage(args[0])
			if flags.Lang == "" {
				flags.Lang = lang
			}
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			if !ok {
				return emitError(cmd, deps, cc, "CAFE_INVALID_ARGUMENT", fmt.Sprintf(
					"unsupported language %q; choose one of %s",
					strings.TrimSpace(args[0]),
					strings.Join(i18n.SupportedLanguages(), ", "),
				))
			}

			prefs, err := deps.Preferences.Load(cmd.Context())
			if err != nil && !errors.Is(err, config.ErrPreferencesNotFound) {
				deps.Logger.Warn().Err(err).Str("path", deps.Preferences.Path()).Msg("replacing unreadable preferences")
				prefs = domain.Preferences{}
			}
			prefs.Language = lang
			if err := deps.Preferences.Save(cmd.Context(), prefs); err != nil {
				return err
			}

			table := func() string {
				return cc.translator.T("lang.current", "Language") + ": " + i18n.LanguageName(lang) + " (" + lang + ")"
			}
			return render(cmd, deps, cc, table, map[string]any{
				"language": lang,
				"path":     deps.Preferences.Path(),
			})
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}
