// Package tui implements the fieldkit demo program: a single text field
// composed from the base renderer, a decorator, a store binder, and an
// optional fetch-on-mount wrapper, driven by a bubbletea event loop.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldkit/fieldkit/internal/config"
	"github.com/fieldkit/fieldkit/internal/fetch"
	"github.com/fieldkit/fieldkit/internal/field"
	"github.com/fieldkit/fieldkit/internal/logging"
	"github.com/fieldkit/fieldkit/internal/store"
	"github.com/fieldkit/fieldkit/internal/tui/styles"
)

// AttachRemote places a fetch-on-mount wrapper at the top of the rendered
// chain. Must be called before the program starts.
func (m *Model) AttachRemote(remote *field.Remote) {
	m.remote = remote
	m.renderer = remote
}

// themedBaseStyles maps the shared palette onto the base renderer.
func themedBaseStyles() field.BaseStyles {
	return field.BaseStyles{
		Label:   styles.FieldLabel,
		Prefix:  styles.FieldDecoration,
		Input:   styles.FieldInput,
		Cursor:  styles.FieldCursor,
		Postfix: styles.FieldDecoration,
	}
}

// Compose builds the renderer stack described by the configuration and the
// store it is bound to. Returned pieces are wired but not yet running.
func Compose(cfg *config.Config, logger *logging.Logger) (*store.Store, *field.Binder, field.Renderer, error) {
	st := store.New(logger)
	err := st.RegisterFeature(store.FeatureTextField,
		store.NewTextFieldState(cfg.Field.InitialValue), store.TextFieldReducer)
	if err != nil {
		return nil, nil, nil, err
	}

	var renderer field.Renderer = &field.Base{
		Width:  cfg.TUI.InputWidth,
		Styles: themedBaseStyles(),
	}
	if cfg.Field.Prefix != "" || cfg.Field.Postfix != "" {
		renderer = field.Decorate(renderer, cfg.Field.Prefix, cfg.Field.Postfix)
	}

	binder, err := field.Bind(st, renderer, store.SelectTextFieldValue, field.TextFieldDispatchers)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}
	return st, binder, binder, nil
}

// Run composes the field from config and runs the demo program until the
// user quits.
func Run(cfg *config.Config, logger *logging.Logger) error {
	st, binder, renderer, err := Compose(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	model := NewModel(st, binder, renderer, nil, cfg)

	if cfg.Remote.URL != "" {
		client, err := fetch.New(cfg.Remote.URL, cfg.Remote.Timeout(), logger)
		if err != nil {
			return err
		}
		remote, err := field.NewRemote(renderer, client.Value, st.Dispatch, logger,
			field.WithResultHook(model.FetchResult))
		if err != nil {
			return err
		}
		model.AttachRemote(remote)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
