package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadDisplay(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, "MoonBunny", cfg.Title)
	assert.Equal(t, 960, cfg.ScreenWidth)
	assert.Equal(t, 540, cfg.ScreenHeight)
	assert.Equal(t, 60, cfg.TPS)
}

func TestLoader_LoadCharacter(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadCharacter()
	require.NoError(t, err)

	assert.Equal(t, 480.0, cfg.Spawn.X)
	assert.Equal(t, 270.0, cfg.Spawn.Y)
	assert.Equal(t, "left", cfg.Direction)
	assert.Equal(t, 1.0, cfg.Physics.Gravity)
	assert.Equal(t, 20.0, cfg.Physics.JumpPower)
	assert.Equal(t, 3.0, cfg.Physics.WalkSpeed)
	assert.Equal(t, 1.0, cfg.Physics.Epsilon())
	assert.Equal(t, 0.25, cfg.Visuals.Jumping.Speed)
	assert.False(t, cfg.Visuals.Jumping.Loop)
	assert.True(t, cfg.Visuals.Stand.Loop)
	assert.Equal(t, []string{"ArrowUp", "W"}, cfg.Keys.Jump)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Nil(t, cfg.Spawn)
	require.Len(t, cfg.Grounds, 3)
	assert.Equal(t, 370.0, cfg.Grounds[0].Y)
	assert.Nil(t, cfg.Grounds[0].Motion)
	require.NotNil(t, cfg.Grounds[2].Motion)
	assert.Equal(t, 80.0, cfg.Grounds[2].Motion.Range)

	empty, err := loader.LoadStage("void")
	require.NoError(t, err)
	assert.Empty(t, empty.Grounds)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Display)
	assert.NotNil(t, cfg.Character)
}

func TestLoader_Errors(t *testing.T) {
	validCharacter := `
physics: {gravity: 1, jumpPower: 20, walkSpeed: 3}
visuals:
  stand: {width: 40, height: 48}
  walking: {width: 40, height: 48}
  jumping: {width: 40, height: 48}
`
	tests := []struct {
		name    string
		files   fstest.MapFS
		load    func(l *Loader) error
		wantErr string
	}{
		{
			name:  "missing file",
			files: fstest.MapFS{},
			load: func(l *Loader) error {
				_, err := l.LoadDisplay()
				return err
			},
			wantErr: "failed to read display.yaml",
		},
		{
			name: "unknown field",
			files: fstest.MapFS{
				"display.yaml": {Data: []byte("screenWidth: 10\nscreenHeight: 10\nscale: 1\ntps: 60\nfullscreen: true\n")},
			},
			load: func(l *Loader) error {
				_, err := l.LoadDisplay()
				return err
			},
			wantErr: "failed to parse display.yaml",
		},
		{
			name: "invalid display",
			files: fstest.MapFS{
				"display.yaml": {Data: []byte("screenWidth: 10\nscreenHeight: 10\nscale: 1\ntps: 0\n")},
			},
			load: func(l *Loader) error {
				_, err := l.LoadDisplay()
				return err
			},
			wantErr: "tps must be positive",
		},
		{
			name: "minimal character",
			files: fstest.MapFS{
				"character.yaml": {Data: []byte(validCharacter + "direction: left\n")},
			},
			load: func(l *Loader) error {
				_, err := l.LoadCharacter()
				return err
			},
		},
		{
			name: "bad direction",
			files: fstest.MapFS{
				"character.yaml": {Data: []byte(validCharacter + "direction: up\n")},
			},
			load: func(l *Loader) error {
				_, err := l.LoadCharacter()
				return err
			},
			wantErr: "direction must be left or right",
		},
		{
			name: "bad ground",
			files: fstest.MapFS{
				"stages/broken.yaml": {Data: []byte("grounds:\n  - {x: 0, y: 0, width: 0, height: 10}\n")},
			},
			load: func(l *Loader) error {
				_, err := l.LoadStage("broken")
				return err
			},
			wantErr: "stage broken: grounds[0] size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(NewFSLoader(tt.files, "test"))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCharacterConfig_Validate(t *testing.T) {
	cfg := CharacterConfig{
		Physics: PhysicsConfig{Gravity: 0, JumpPower: -1},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physics.gravity must be > 0")
	assert.Contains(t, err.Error(), "physics.jumpPower must be >= 0")
	assert.Contains(t, err.Error(), "visuals.stand footprint must be positive")
}

func TestPhysicsConfig_Epsilon(t *testing.T) {
	assert.Equal(t, 1.0, PhysicsConfig{}.Epsilon())

	zero := 0.0
	assert.Equal(t, 0.0, PhysicsConfig{GroundEpsilon: &zero}.Epsilon())
}
