// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Rider      RiderConfig      `yaml:"rider"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Particles  ParticleConfig   `yaml:"particles"`
	Stars      StarConfig       `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds the play field dimensions and boundary behavior.
type ArenaConfig struct {
	Size      float64 `yaml:"size"`       // Side length of the square arena
	WrapInset float64 `yaml:"wrap_inset"` // Reflection scale on boundary wrap (keeps the head inside)
	WallBurst int     `yaml:"wall_burst"` // Particles emitted per boundary wrap
}

// RiderConfig holds the player chain parameters.
type RiderConfig struct {
	InitialSegments int     `yaml:"initial_segments"`
	MaxSegments     int     `yaml:"max_segments"`
	SegmentSize     float64 `yaml:"segment_size"`
	SegmentSpacing  float64 `yaml:"segment_spacing"`
	SegmentHeight   float64 `yaml:"segment_height"`
	RideHeight      float64 `yaml:"ride_height"` // Y level the chain travels at
	Speed           float64 `yaml:"speed"`       // Units per second before difficulty scaling
	TurnSpeed       float64 `yaml:"turn_speed"`  // Radians per second, left only
	FollowLerp      float64 `yaml:"follow_lerp"` // Smoothing factor for trailing segments
	MaxEnergy       float64 `yaml:"max_energy"`
	EnergyDrain     float64 `yaml:"energy_drain"`   // Energy lost per second
	PassiveScore    float64 `yaml:"passive_score"`  // Score gained per second survived
	LapBonus        float64 `yaml:"lap_bonus"`      // Score per completed lap, times the lap count
	BoostFactor     float64 `yaml:"boost_factor"`   // Speed multiplier while boosted
	BoostDuration   float64 `yaml:"boost_duration"` // Seconds of boost per pickup
	ShieldDuration  float64 `yaml:"shield_duration"`
	CollisionSkip   int     `yaml:"collision_skip"` // Head-adjacent segments exempt from self-collision
	GlowScale       float64 `yaml:"glow_scale"`     // Wireframe glow shell size multiplier
	DeathBurst      int     `yaml:"death_burst"`    // Particles per segment on energy death
	CollisionBurst  int     `yaml:"collision_burst"`
	LapBurst        int     `yaml:"lap_burst"`
}

// PowerupConfig holds pickup pool, spawn, and effect parameters.
type PowerupConfig struct {
	PoolSize        int     `yaml:"pool_size"`
	Size            float64 `yaml:"size"`
	Lifetime        float64 `yaml:"lifetime"`
	EnergyRefill    float64 `yaml:"energy_refill"`
	EnergyWeightPct int     `yaml:"energy_weight_pct"` // Chance of re-rolling any kind into Energy
	SpawnRadiusMin  float64 `yaml:"spawn_radius_min"`
	SpawnRadiusFrac float64 `yaml:"spawn_radius_frac"` // Random span as a fraction of arena size
	SpawnBase       float64 `yaml:"spawn_base"`        // Base seconds between spawns
	SpawnJitter     float64 `yaml:"spawn_jitter"`      // Random extra seconds between spawns
	InitialSpawns   int     `yaml:"initial_spawns"`
	InitialDelay    float64 `yaml:"initial_delay"` // First spawn countdown at session start
	BaseHeight      float64 `yaml:"base_height"`
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	BobRate         float64 `yaml:"bob_rate"`
	SpinRate        float64 `yaml:"spin_rate"`
	ShrinkCount     int     `yaml:"shrink_count"`
	BonusScore      float64 `yaml:"bonus_score"`
	CollectScore    float64 `yaml:"collect_score"` // Flat score for any collection
	CollectBurst    int     `yaml:"collect_burst"`
	ShakeImpulse    float64 `yaml:"shake_impulse"`
	SlowTimeFactor  float64 `yaml:"slow_time_factor"`
	SlowTimeRegen   float64 `yaml:"slow_time_regen"` // Recovery toward 1.0 per second
}

// ParticleConfig holds the effect particle pool parameters.
type ParticleConfig struct {
	PoolSize int     `yaml:"pool_size"`
	Gravity  float64 `yaml:"gravity"` // Downward acceleration on particle velocity
}

// StarConfig holds the backdrop star field parameters.
type StarConfig struct {
	Count int `yaml:"count"`
}

// DifficultyConfig holds the difficulty scaling parameters.
type DifficultyConfig struct {
	HardcoreMultiplier float64 `yaml:"hardcore_multiplier"`
}

// CameraConfig holds the chase camera rig parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	Yaw         float64 `yaml:"yaw"`   // Initial horizontal orbit angle (radians)
	Pitch       float64 `yaml:"pitch"` // Initial vertical orbit angle (radians)
	FollowLerp  float64 `yaml:"follow_lerp"`
	LookAhead   float64 `yaml:"look_ahead"` // Units ahead of the head the camera aims at
	ShakeDecay  float64 `yaml:"shake_decay"`
	Fovy        float64 `yaml:"fovy"`
	Sensitivity float64 `yaml:"sensitivity"` // Radians per pixel of mouse drag
	ZoomStep    float64 `yaml:"zoom_step"`   // Distance scale per wheel notch
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// AudioConfig holds the procedural sound parameters.
type AudioConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
	TurnCooldown float64 `yaml:"turn_cooldown"` // Min game-time seconds between turn beeps
}

// TelemetryConfig holds score persistence and run logging parameters.
type TelemetryConfig struct {
	ScoresFile string `yaml:"scores_file"` // Empty disables persistence
	RunLogFile string `yaml:"run_log_file"`
}

// DerivedConfig holds computed values derived from the loaded config.
// Hot-path simulation constants are mirrored here as float32.
type DerivedConfig struct {
	HalfArena      float32 // Arena.Size / 2
	SegmentSize    float32
	SegmentSpacing float32
	RideHeight     float32
	TurnSpeed      float32
	FollowLerp     float32
	MaxEnergy      float32
	EnergyDrain    float32
	EnergyRefill   float32
	PassiveScore   float32
	LapBonus       float32
	BoostFactor    float32
	WrapInset      float32
	CollectRadius  float32 // SegmentSize + Powerups.Size
	ScreenW32      float32
	ScreenH32      float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.HalfArena = float32(c.Arena.Size / 2)
	c.Derived.SegmentSize = float32(c.Rider.SegmentSize)
	c.Derived.SegmentSpacing = float32(c.Rider.SegmentSpacing)
	c.Derived.RideHeight = float32(c.Rider.RideHeight)
	c.Derived.TurnSpeed = float32(c.Rider.TurnSpeed)
	c.Derived.FollowLerp = float32(c.Rider.FollowLerp)
	c.Derived.MaxEnergy = float32(c.Rider.MaxEnergy)
	c.Derived.EnergyDrain = float32(c.Rider.EnergyDrain)
	c.Derived.EnergyRefill = float32(c.Powerups.EnergyRefill)
	c.Derived.PassiveScore = float32(c.Rider.PassiveScore)
	c.Derived.LapBonus = float32(c.Rider.LapBonus)
	c.Derived.BoostFactor = float32(c.Rider.BoostFactor)
	c.Derived.WrapInset = float32(c.Arena.WrapInset)
	c.Derived.CollectRadius = float32(c.Rider.SegmentSize + c.Powerups.Size)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
