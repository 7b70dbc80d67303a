package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaMs      float64
}

// Update records that Update was called and stores the delta.
func (m *MockScene) Update(deltaMs float64) {
	m.updateCalled = true
	m.deltaMs = deltaMs
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// mockSaveableScene 实现 Saveable 的测试场景
type mockSaveableScene struct {
	MockScene
	saved  bool
	result bool
}

func (m *mockSaveableScene) SaveOnExit() bool {
	m.saved = true
	return m.result
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaMs := 1000.0 / 60.0
	sm.Update(deltaMs)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaMs != deltaMs {
		t.Errorf("Expected deltaMs %.3f, got %.3f", deltaMs, mockScene.deltaMs)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(16) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(10, 10)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerSaveOnExit 验证退出保存只对实现 Saveable 的场景生效
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()

	// 没有场景时视为无需保存
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should succeed")
	}

	sm.SwitchTo(&MockScene{})
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit with non-saveable scene should succeed")
	}

	saveable := &mockSaveableScene{result: false}
	sm.SwitchTo(saveable)
	if sm.SaveOnExit() {
		t.Error("SaveOnExit should report failure from the scene")
	}
	if !saveable.saved {
		t.Error("Saveable scene was not asked to save")
	}
}

// TestSceneName 测试日志中的场景名
func TestSceneName(t *testing.T) {
	if got := sceneName(nil); got != "<nil>" {
		t.Errorf("sceneName(nil) = %q", got)
	}
	if got := sceneName(&MockScene{}); got != "*game.MockScene" {
		t.Errorf("sceneName(&MockScene{}) = %q", got)
	}
}
