package interfaces

import "time"

// Profile is one stored API credential.
type Profile struct {
	Name      string
	APIKey    string
	CreatedAt time.Time
}

// CachedServer is one row of the local server cache.
type CachedServer struct {
	ID        string
	Name      string
	Address   string
	Status    string
	MOTD      string
	FetchedAt time.Time
}

// StateStore handles persistent CLI state: credential profiles, the server
// cache and the console command history.
type StateStore interface {
	Initialize(dbPath string) error

	SaveProfile(name, apiKey string) error
	GetProfile(name string) (*Profile, error)
	DeleteProfile(name string) error
	ListProfiles() ([]Profile, error)

	CacheServers(servers []CachedServer) error
	CachedServers(maxAge time.Duration) ([]CachedServer, error)

	RecordCommand(serverID, command string) error
	CommandHistory(serverID string, limit int) ([]string, error)

	Close() error
}
