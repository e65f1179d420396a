package audio

import "github.com/lixenwraith/trophy-snake/parameter"

// Config controls the sound output
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.DefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// clamp bounds volume and fills a missing sample rate
func (c Config) clamp() Config {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	return c
}
