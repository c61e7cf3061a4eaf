package toml

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int           `toml:"version"`
	Tracks      []trackSchema `toml:"tracks"`
	Unscheduled []talkSchema  `toml:"unscheduled,omitempty"`
}

type trackSchema struct {
	Name     string          `toml:"name"`
	Sessions []sessionSchema `toml:"sessions"`
}

type sessionSchema struct {
	Time    string `toml:"time"`
	Talk    string `toml:"talk"`
	Fixture bool   `toml:"fixture,omitempty"`
}

type talkSchema struct {
	Name     string `toml:"name"`
	Duration int    `toml:"duration"`
}
