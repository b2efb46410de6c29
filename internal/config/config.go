package config

// Config holds all application configuration.
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// GameConfig controls how the snapshot is dealt.
type GameConfig struct {
	BoardSize int `mapstructure:"board_size" validate:"gte=0,lte=81"`
	// Seed is nil unless one was given; the game then seeds from the clock.
	Seed *uint64 `mapstructure:"seed"`
}

// OutputConfig controls presentation only.
type OutputConfig struct {
	Columns int    `mapstructure:"columns" validate:"gte=1,lte=81"`
	Color   string `mapstructure:"color" validate:"required,oneof=auto always never"`
	Format  string `mapstructure:"format" validate:"required,oneof=text json"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
