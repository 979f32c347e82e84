// Package settings holds the app's shared tunables, mirrored from the
// remote store and fanned out to in-process subscribers.
package settings

// Settings are the numeric tunables every screen reads.
type Settings struct {
	NumberOfStars        int  `json:"numberOfStars"`
	LongPressDuration    int  `json:"longPressDuration"` // milliseconds
	NumberOfMediaItems   int  `json:"numberOfMediaItems"`
	UseDynamicBackground bool `json:"useDynamicBackground"`
}

// Defaults are written to the remote store the first time the settings
// path is observed empty.
func Defaults() Settings {
	return Settings{
		NumberOfStars:        100,
		LongPressDuration:    1000,
		NumberOfMediaItems:   10,
		UseDynamicBackground: true,
	}
}
