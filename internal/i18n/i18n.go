package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes embebidos por defecto y
// carga los overrides de localesPath si existen.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "AI-assisted pull request reviews for your CI"

	[app_description]
	other = "Collects the diff of a pull request, asks an AI provider for review findings and posts them back as inline comments"

	[review_command_usage]
	other = "Review a pull request and post the findings"

	[pr_number_flag_usage]
	other = "Pull request number (defaults to the CI event payload)"

	[debug_flag_usage]
	other = "Enable debug logging"

	[factory_already_registered]
	other = "the factory '{{.FactoryName}}' is already registered"

	[doctor_command_usage]
	other = "Check that the environment is ready to run a review"

	[doctor_ok]
	other = "Everything looks good, mate! Provider: {{.Provider}}, model: {{.Model}}"

	[doctor_failed]
	other = "The environment is not ready yet"

	[review_started]
	other = "Reviewing PR #{{.PRNumber}}..."

	[review_finished]
	one = "Done! Posted {{.Count}} inline comment on PR #{{.PRNumber}}"
	other = "Done! Posted {{.Count}} inline comments on PR #{{.PRNumber}}"

	[error.event_payload]
	other = "Could not resolve the PR number: pass --pr-number or run inside a pull_request workflow"

	[error.list_files]
	other = "Could not list the changed files of PR #{{.PRNumber}}"

	[error.get_pr]
	other = "Could not fetch PR #{{.PRNumber}}"

	[error.create_review]
	other = "Could not post the review on PR #{{.PRNumber}}"

	[error.insufficient_permissions]
	other = "Could not post the review on PR #{{.PRNumber}}: the token needs the pull-requests: write permission"

	[summary.header]
	other = "🤖 Code Review Summary:"

	[summary.reviewed_files]
	one = "Reviewed {{.Count}} file:"
	other = "Reviewed {{.Count}} files:"

	[summary.skipped_files]
	one = "Skipped {{.Count}} file based on filter configuration:"
	other = "Skipped {{.Count}} files based on filter configuration:"

	[summary.failed_files]
	one = "Could not fetch {{.Count}} file:"
	other = "Could not fetch {{.Count}} files:"

	[summary.suggestions_found]
	one = "Found {{.Count}} suggestion for improvement."
	other = "Found {{.Count}} suggestions for improvement."

	[summary.clean]
	other = "✨ Great job! The code looks clean and well-written."

	[summary.general_comments]
	other = "Additional Comments:"
	`
