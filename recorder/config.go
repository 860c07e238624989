package recorder

const defaultChannel string = "testlogger"

// Config is used to parse the recorder configuration
type Config struct {
	// InterpolateOnLog replaces {key} placeholders in the message with the
	// matching context values before the record is stored. The original
	// context is stored unmodified. Defaults to false.
	InterpolateOnLog bool `mapstructure:"interpolate_on_log" yaml:"interpolate_on_log"`

	// Channel is the name of records logged through the native contract and
	// the default name of the zap, slog and smithy adapters.
	Channel string `mapstructure:"channel" yaml:"channel"`
}

func (c *Config) InitDefault() {
	if c.Channel == "" {
		c.Channel = defaultChannel
	}
}
