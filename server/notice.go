package server

import (
	"errors"
	"net/http"

	"golang.org/x/text/message"

	"eco_upcycle_generator/generator"
	"eco_upcycle_generator/i18n"
	"eco_upcycle_generator/render"
)

// credentialNotice maps the configurator's outcome to the sidebar notice.
func credentialNotice(p *message.Printer, err error) render.Notice {
	var cfgErr *generator.ConfigurationError
	switch {
	case err == nil:
		return render.Notice{Level: render.LevelSuccess, Text: p.Sprintf(i18n.NoticeKeySet)}
	case errors.Is(err, generator.ErrEmptyCredential):
		return render.Notice{Level: render.LevelWarning, Text: p.Sprintf(i18n.NoticeKeyEmpty)}
	case errors.As(err, &cfgErr):
		return render.Notice{Level: render.LevelError, Text: p.Sprintf(i18n.NoticeKeyFailed, cfgErr.Err.Error())}
	default:
		return render.Notice{Level: render.LevelError, Text: p.Sprintf(i18n.NoticeKeyFailed, err.Error())}
	}
}

// generateNotice maps a generation failure to the notice shown instead of ideas.
func generateNotice(p *message.Printer, err error) render.Notice {
	var genErr *generator.GenerationError
	switch {
	case errors.Is(err, generator.ErrNotConfigured):
		return render.Notice{Level: render.LevelWarning, Text: p.Sprintf(i18n.NoticeNotConfigured)}
	case errors.Is(err, generator.ErrEmptyItem):
		return render.Notice{Level: render.LevelWarning, Text: p.Sprintf(i18n.NoticeItemEmpty)}
	case errors.As(err, &genErr):
		return render.Notice{Level: render.LevelError, Text: p.Sprintf(i18n.NoticeGenerateFailed, genErr.Err.Error())}
	default:
		return render.Notice{Level: render.LevelError, Text: p.Sprintf(i18n.NoticeGenerateFailed, err.Error())}
	}
}

// errorKind names the error for API clients and picks the status code.
func errorKind(err error) (string, int) {
	var (
		cfgErr *generator.ConfigurationError
		genErr *generator.GenerationError
	)
	switch {
	case errors.Is(err, generator.ErrEmptyCredential):
		return "empty_credential", http.StatusBadRequest
	case errors.Is(err, generator.ErrEmptyItem):
		return "empty_item", http.StatusBadRequest
	case errors.Is(err, generator.ErrNotConfigured):
		return "not_configured", http.StatusConflict
	case errors.As(err, &cfgErr):
		return "configuration", http.StatusBadGateway
	case errors.As(err, &genErr):
		return "generation", http.StatusBadGateway
	default:
		return "internal", http.StatusInternalServerError
	}
}
