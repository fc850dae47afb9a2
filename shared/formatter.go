package shared

import (
	"fmt"
	"net/url"
	"strings"
)

func GetHostName(userUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

func MakeFullMoniker(hostName, handle string) string {
	return "@" + handle + "@" + hostName
}

// IsActorType is true for the ActivityStreams types an actor document may
// declare.
func IsActorType(objType string) bool {
	switch objType {
	case "Person", "Service", "Application", "Group", "Organization":
		return true
	}
	return false
}

// ParseMoniker splits a handle like "@alice@example.com" or "alice@example.com"
// into user and host. Returns false if the input is not a handle.
func ParseMoniker(moniker string) (user, host string, ok bool) {
	moniker = strings.TrimPrefix(moniker, "@")
	parts := strings.Split(moniker, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.ToLower(parts[1]), true
}
