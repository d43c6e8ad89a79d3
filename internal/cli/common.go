package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mekedron/cafe-menu/internal/config"
	"github.com/mekedron/cafe-menu/internal/i18n"
	"github.com/mekedron/cafe-menu/internal/service/output"
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return ""
}

type globalFlags struct {
	Format  string
	Lang    string
	Output  string
	Verbose bool
}

const sharedGlobalFlagAnnotation = "cafe_cli_shared_global"

func addGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	addSharedGlobalFlag(cmd, "format", func() {
		cmd.Flags().StringVar(&flags.Format, "format", "table", "Output format: table, json, or yaml.")
	})
	addSharedGlobalFlag(cmd, "lang", func() {
		cmd.Flags().StringVar(&flags.Lang, "lang", "", "Display language: en, zh, or km (defaults to the saved language).")
	})
	addSharedGlobalFlag(cmd, "output", func() {
		cmd.Flags().StringVar(&flags.Output, "output", "", "Also write the rendered output to this file.")
	})
	addSharedGlobalFlag(cmd, "verbose", func() {
		cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Enable debug logging on stderr.")
	})
}

func addSharedGlobalFlag(cmd *cobra.Command, name string, register func()) {
	if cmd.Flags().Lookup(name) != nil {
		return
	}
	register()
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return
	}
	if flag.Annotations == nil {
		flag.Annotations = map[string][]string{}
	}
	flag.Annotations[sharedGlobalFlagAnnotation] = []string{"true"}
}

// commandContext carries the resolved per-invocation settings.
type commandContext struct {
	format     output.Format
	language   string
	translator i18n.Translator
	outputPath string
	warnings   []string
}

func newCommandContext(ctx context.Context, cmd *cobra.Command, deps Dependencies, flags globalFlags) (*commandContext, error) {
	format, err := output.ParseFormat(flags.Format)
	if err != nil {
		return nil, err
	}
	language, warnings := resolveLanguage(ctx, deps, flags.Lang)
	deps.Logger.Debug().Str("command", cmd.CommandPath()).Str("language", language).Str("format", string(format)).Msg("command started")
	return &commandContext{
		format:     format,
		language:   language,
		translator: translatorFor(deps, language),
		outputPath: flags.Output,
		warnings:   warnings,
	}, nil
}

// resolveLanguage picks the --lang flag, then the saved preference, then the
// configured default.
func resolveLanguage(ctx context.Context, deps Dependencies, flagValue string) (string, []string) {
	warnings := []string{}
	if strings.TrimSpace(flagValue) != "" {
		lang, ok := i18n.ResolveLanguage(flagValue)
		if !ok {
			warnings = append(warnings, "unsupported language "+strings.TrimSpace(flagValue)+"; using "+lang)
		}
		return lang, warnings
	}
	if deps.Preferences != nil {
		prefs, err := deps.Preferences.Load(ctx)
		switch {
		case err == nil:
			if lang, ok := i18n.ResolveLanguage(prefs.Language); ok {
				return lang, warnings
			}
			warnings = append(warnings, "saved language "+prefs.Language+" is not supported")
		case errors.Is(err, config.ErrPreferencesNotFound):
		default:
			deps.Logger.Warn().Err(err).Str("path", deps.Preferences.Path()).Msg("ignoring unreadable preferences")
			warnings = append(warnings, "preferences could not be read")
		}
	}
	lang, _ := i18n.ResolveLanguage(deps.Settings.DefaultLanguage)
	return lang, warnings
}

func translatorFor(deps Dependencies, language string) i18n.Translator {
	if deps.Translations == nil {
		return i18n.TranslatorFunc(func(key string, fallback string) string {
			if fallback != "" {
				return fallback
			}
			return key
		})
	}
	return deps.Translations.Translator(language)
}

func configureLogging(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func sourceName(deps Dependencies) string {
	if deps.Site == nil {
		return ""
	}
	return deps.Site.Name()
}

func writeTable(cmd *cobra.Command, text string, outputPath string) error {
	if err := output.WriteOutput(cmd.OutOrStdout(), text, outputPath); err != nil {
		return err
	}
	return nil
}

func writeMachinePayload(cmd *cobra.Command, env output.Envelope, format output.Format, outputPath string) error {
	rendered, err := output.RenderPayload(env, format)
	if err != nil {
		return err
	}
	if err := output.WriteOutput(cmd.OutOrStdout(), rendered, outputPath); err != nil {
		return err
	}
	return nil
}

// render writes a table or a machine envelope depending on the format.
func render(cmd *cobra.Command, deps Dependencies, cc *commandContext, table func() string, data any) error {
	if cc.format == output.FormatTable {
		text := table()
		if len(cc.warnings) > 0 {
			text += "\n\nwarnings:\n  - " + strings.Join(cc.warnings, "\n  - ")
		}
		return writeTable(cmd, text, cc.outputPath)
	}
	env := output.BuildEnvelope(cc.language, sourceName(deps), data, cc.warnings, nil)
	return writeMachinePayload(cmd, env, cc.format, cc.outputPath)
}

func emitError(
	cmd *cobra.Command,
	deps Dependencies,
	cc *commandContext,
	code string,
	message string,
) error {
	if cc.format == output.FormatTable {
		if err := output.WriteOutput(cmd.OutOrStdout(), message, cc.outputPath); err != nil {
			return err
		}
		return &exitError{code: 1}
	}
	env := output.BuildEnvelope(cc.language, sourceName(deps), nil, cc.warnings, map[string]any{
		"code":    code,
		"message": message,
	})
	if err := writeMachinePayload(cmd, env, cc.format, cc.outputPath); err != nil {
		return err
	}
	return &exitError{code: 1}
}

func emitDataError(cmd *cobra.Command, deps Dependencies, cc *commandContext, err error) error {
	deps.Logger.Error().Err(err).Str("source", sourceName(deps)).Msg("site data unavailable")
	return emitError(cmd, deps, cc, "CAFE_DATA_ERROR", err.Error())
}

func fallbackString(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
