package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		DeviceA: DeviceConfig{
			Filter: "Shure MV7 Analog Stereo",
			Label:  "Shure MV7",
			Icon:   "audio-headset",
		},
		DeviceB: DeviceConfig{
			Filter: "PCM2704",
			Label:  "DAC (PCM2704)",
			Icon:   "audio-card",
		},
		Toggle: ToggleConfig{
			Fallback:    "a",
			MoveStreams: true,
		},
		Notify: NotifyConfig{
			Enable:  true,
			AppName: "sinkswitch",
		},
	}
}
