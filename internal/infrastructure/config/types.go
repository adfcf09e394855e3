package config

// DisplayConfig is the root config for display.yaml
type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"` // ticks per second; delta is 60/TPS
}

// CharacterConfig is the root config for character.yaml
type CharacterConfig struct {
	Spawn     PositionConfig `yaml:"spawn"`
	Direction string         `yaml:"direction"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Visuals   VisualsConfig  `yaml:"visuals"`
	Keys      KeysConfig     `yaml:"keys"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PhysicsConfig holds per-character constants, in nominal 60Hz frames
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpPower float64 `yaml:"jumpPower"`
	WalkSpeed float64 `yaml:"walkSpeed"`
	// GroundEpsilon defaults to 1 when omitted
	GroundEpsilon *float64 `yaml:"groundEpsilon"`
}

type VisualsConfig struct {
	Stand   AnimationConfig `yaml:"stand"`
	Walking AnimationConfig `yaml:"walking"`
	Jumping AnimationConfig `yaml:"jumping"`
}

type AnimationConfig struct {
	Sheet  string  `yaml:"sheet"`
	Speed  float64 `yaml:"speed"`
	Loop   bool    `yaml:"loop"`
	Frames int     `yaml:"frames"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// KeysConfig lists ebiten key names per control
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`
}

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID      string          `yaml:"id"`
	Name    string          `yaml:"name"`
	Spawn   *PositionConfig `yaml:"spawn"` // overrides the character spawn
	Grounds []GroundConfig  `yaml:"grounds"`
}

type GroundConfig struct {
	X      float64       `yaml:"x"`
	Y      float64       `yaml:"y"`
	Width  float64       `yaml:"width"`
	Height float64       `yaml:"height"`
	Motion *MotionConfig `yaml:"motion"`
}

// MotionConfig makes a ground oscillate horizontally
type MotionConfig struct {
	Range float64 `yaml:"range"` // units either side of x
	Speed float64 `yaml:"speed"` // radians per frame
}

// Epsilon returns the configured ground epsilon or the default of 1
func (p PhysicsConfig) Epsilon() float64 {
	if p.GroundEpsilon == nil {
		return 1
	}
	return *p.GroundEpsilon
}
