package exaroton

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoint path templates, relative to the client base URL. Identifiers are
// escaped before substitution.
const (
	accountEndpoint = "account/"

	serversEndpoint        = "servers/"
	serverEndpoint         = "servers/%s/"
	serverLogsEndpoint     = "servers/%s/logs/"
	serverLogShareEndpoint = "servers/%s/logs/share/"
	serverRAMEndpoint      = "servers/%s/options/ram/"
	serverMOTDEndpoint     = "servers/%s/options/motd/"
	serverStartEndpoint    = "servers/%s/start/"
	serverStopEndpoint     = "servers/%s/stop/"
	serverRestartEndpoint  = "servers/%s/restart/"
	serverCommandEndpoint  = "servers/%s/command/"

	playerListsEndpoint = "servers/%s/playerlists/"
	playerListEndpoint  = "servers/%s/playerlists/%s/"

	fileInfoEndpoint   = "servers/%s/files/info/%s"
	fileDataEndpoint   = "servers/%s/files/data/%s"
	fileConfigEndpoint = "servers/%s/files/config/%s"

	poolsEndpoint       = "billing/pools/"
	poolEndpoint        = "billing/pools/%s/"
	poolMembersEndpoint = "billing/pools/%s/members/"
	poolServersEndpoint = "billing/pools/%s/servers/"
)

func serverPath(template, serverID string) string {
	return fmt.Sprintf(template, url.PathEscape(serverID))
}

func playerListPath(serverID, list string) string {
	return fmt.Sprintf(playerListEndpoint, url.PathEscape(serverID), url.PathEscape(list))
}

func filePath(template, serverID, path string) string {
	return fmt.Sprintf(template, url.PathEscape(serverID), escapeFilePath(path))
}

func poolPath(template, poolID string) string {
	return fmt.Sprintf(template, url.PathEscape(poolID))
}

// escapeFilePath escapes a server-side file path segment by segment, keeping
// the slashes that separate directories. A leading slash is tolerated.
func escapeFilePath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
