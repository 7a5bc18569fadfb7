package exaroton

// Account is the account the API token belongs to.
type Account struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Verified bool    `json:"verified"`
	Credits  float64 `json:"credits"`
}

// ServerStatus is the numeric server state reported by the API.
type ServerStatus int

const (
	StatusOffline      ServerStatus = 0
	StatusOnline       ServerStatus = 1
	StatusStarting     ServerStatus = 2
	StatusStopping     ServerStatus = 3
	StatusRestarting   ServerStatus = 4
	StatusSaving       ServerStatus = 5
	StatusLoading      ServerStatus = 6
	StatusCrashed      ServerStatus = 7
	StatusPending      ServerStatus = 8
	StatusTransferring ServerStatus = 9
	StatusPreparing    ServerStatus = 10
)

var statusNames = map[ServerStatus]string{
	StatusOffline:      "offline",
	StatusOnline:       "online",
	StatusStarting:     "starting",
	StatusStopping:     "stopping",
	StatusRestarting:   "restarting",
	StatusSaving:       "saving",
	StatusLoading:      "loading",
	StatusCrashed:      "crashed",
	StatusPending:      "pending",
	StatusTransferring: "transferring",
	StatusPreparing:    "preparing",
}

func (s ServerStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Server is one Minecraft server of the account.
type Server struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	MOTD     string          `json:"motd"`
	Status   ServerStatus    `json:"status"`
	Host     string          `json:"host,omitempty"`
	Port     int             `json:"port,omitempty"`
	Players  ServerPlayers   `json:"players"`
	Software *ServerSoftware `json:"software"`
	Shared   bool            `json:"shared"`

	client *Client
}

// ServerPlayers holds the player slots and the currently online players.
type ServerPlayers struct {
	Max   int      `json:"max"`
	Count int      `json:"count"`
	List  []string `json:"list"`
}

// ServerSoftware describes the installed server software.
type ServerSoftware struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HasStatus reports whether the server is in any of the given states.
func (s *Server) HasStatus(statuses ...ServerStatus) bool {
	for _, status := range statuses {
		if s.Status == status {
			return true
		}
	}
	return false
}

// IsOnline reports whether the server is reachable by players.
func (s *Server) IsOnline() bool {
	return s.Status == StatusOnline
}

// Logs is the current content of the server log.
type Logs struct {
	Content string `json:"content"`
}

// LogShare is a server log uploaded to the mclo.gs paste service.
type LogShare struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Raw string `json:"raw"`
}

// RAM is the server memory option in gigabytes.
type RAM struct {
	RAM int `json:"ram"`
}

// MOTD is the server list message option.
type MOTD struct {
	MOTD string `json:"motd"`
}

// FileInfo describes a file or directory on a server.
type FileInfo struct {
	Path         string     `json:"path"`
	Name         string     `json:"name"`
	IsTextFile   bool       `json:"isTextFile"`
	IsConfigFile bool       `json:"isConfigFile"`
	IsDirectory  bool       `json:"isDirectory"`
	IsLog        bool       `json:"isLog"`
	IsReadable   bool       `json:"isReadable"`
	IsWritable   bool       `json:"isWritable"`
	Size         int64      `json:"size"`
	Children     []FileInfo `json:"children,omitempty"`
}

// ConfigOption is one entry of a parsed server config file.
type ConfigOption struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Value   any      `json:"value"`
	Options []string `json:"options,omitempty"`
}

// CreditPool is a shared pool of credits paying for one or more servers.
type CreditPool struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Credits    float64 `json:"credits"`
	Servers    int     `json:"servers"`
	Members    int     `json:"members"`
	OwnShare   float64 `json:"ownShare"`
	OwnCredits float64 `json:"ownCredits"`

	client *Client
}

// CreditPoolMember is one account participating in a credit pool.
type CreditPoolMember struct {
	Account string  `json:"account"`
	Name    string  `json:"name"`
	Share   float64 `json:"share"`
	Credits float64 `json:"credits"`
	IsOwner bool    `json:"isOwner"`
}
