package loader_test

import (
	"errors"
	"testing"

	"raildiff/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &fakeFeature{name: "a", enabled: true}
	disabled := &fakeFeature{name: "b", enabled: false}

	m := loader.NewManager(zap.NewNop())
	m.Register(enabled)
	m.Register(disabled)

	err := m.LoadAll(app)
	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestManager_LoadAll_Error(t *testing.T) {
	app := fiber.New()

	failing := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}

	m := loader.NewManager(zap.NewNop())
	m.Register(failing)

	err := m.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
