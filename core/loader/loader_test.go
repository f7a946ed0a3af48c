package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("LoadsEnabledOnly", func(t *testing.T) {
		enabled := &stubFeature{name: "importer", enabled: true}
		disabled := &stubFeature{name: "disabled", enabled: false}

		mgr := NewManager()
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("FailsFast", func(t *testing.T) {
		broken := &stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}

		mgr := NewManager()
		mgr.Register(broken)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `"broken"`)
		assert.False(t, after.loaded)
	})
}
