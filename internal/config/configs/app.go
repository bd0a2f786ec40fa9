package configs

import "time"

// App holds engine-level settings that do not belong to a single
// collaborator.
type App struct {
	// Timezone is the fixed civil calendar timezone campaigns are sold
	// in. "Today" on the public endpoint is resolved in it regardless of
	// caller locale.
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Berlin"`

	// Namespace is the deployment environment prefix this instance writes
	// its assets under.
	Namespace string `env:"NAMESPACE" envDefault:"prod"`
}

// Location loads the configured timezone. Unknown names fail rather than
// silently fall back, since a wrong calendar day sells the wrong slots.
func (c App) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
