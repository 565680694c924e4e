// Package config loads runtime settings with viper. Every key has a default,
// so a missing config file still yields a playable setup.
package config

import (
	"errors"
	"fmt"

	"area51/internal/components"

	"github.com/spf13/viper"
)

// FileName is looked up in the directory passed to Load.
const FileName = "area51.cfg.json"

type Window struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int    `mapstructure:"targetFPS"`
}

type Physics struct {
	Gravity float32 `mapstructure:"gravity"`
}

type Config struct {
	LogLevel   string                `mapstructure:"logLevel"`
	Scene      string                `mapstructure:"scene"`
	Bindings   string                `mapstructure:"bindings"`
	Window     Window                `mapstructure:"window"`
	Physics    Physics               `mapstructure:"physics"`
	Controller components.FPSettings `mapstructure:"controller"`
	Player     PlayerSpawn           `mapstructure:"player"`
}

// PlayerSpawn places the player body and its camera rig.
type PlayerSpawn struct {
	Position     [3]float32 `mapstructure:"position"`
	EyeHeight    float32    `mapstructure:"eyeHeight"`
	HoldDistance float32    `mapstructure:"holdDistance"`
	FOV          float32    `mapstructure:"fov"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("scene", "assets/scenes/range.yaml")
	v.SetDefault("bindings", "")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Area 51")
	v.SetDefault("window.targetFPS", 120)

	v.SetDefault("physics.gravity", -9.81)

	v.SetDefault("player.position", []float32{0, 0, -6})
	v.SetDefault("player.eyeHeight", 0.7)
	v.SetDefault("player.holdDistance", 2.0)
	v.SetDefault("player.fov", 60.0)

	d := components.DefaultFPSettings()
	v.SetDefault("controller.walkSpeed", d.WalkSpeed)
	v.SetDefault("controller.runSpeed", d.RunSpeed)
	v.SetDefault("controller.crouchSpeed", d.CrouchSpeed)
	v.SetDefault("controller.crouchHeight", d.CrouchHeight)
	v.SetDefault("controller.standHeight", d.StandHeight)
	v.SetDefault("controller.gravity", d.Gravity)
	v.SetDefault("controller.groundedVelocity", d.GroundedVelocity)
	v.SetDefault("controller.jumpHeight", d.JumpHeight)
	v.SetDefault("controller.jumpBoost", d.JumpBoost)
	v.SetDefault("controller.lookSensitivity", d.LookSensitivity)
	v.SetDefault("controller.verticalLookLimit", d.VerticalLookLimit)
	v.SetDefault("controller.zoomedInFOV", d.ZoomedInFOV)
	v.SetDefault("controller.zoomedOutFOV", d.ZoomedOutFOV)
	v.SetDefault("controller.zoomStep", d.ZoomStep)
	v.SetDefault("controller.zoomEaseRate", d.ZoomEaseRate)
	v.SetDefault("controller.runFOVBoost", d.RunFOVBoost)
	v.SetDefault("controller.pickupRange", d.PickupRange)
	v.SetDefault("controller.pickupTag", d.PickupTag)
	v.SetDefault("controller.throwForce", d.ThrowForce)
	v.SetDefault("controller.throwUpwardBoost", d.ThrowUpwardBoost)
	v.SetDefault("controller.cameraName", d.CameraName)
	v.SetDefault("controller.holdPointName", d.HoldPointName)
}

// Load reads FileName from configDir on top of the defaults. A missing file
// is not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Controller.ZoomedInFOV > cfg.Controller.ZoomedOutFOV {
		return nil, fmt.Errorf("controller.zoomedInFOV (%v) exceeds zoomedOutFOV (%v)",
			cfg.Controller.ZoomedInFOV, cfg.Controller.ZoomedOutFOV)
	}
	return &cfg, nil
}
