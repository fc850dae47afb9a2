package dto

// First hop: the well-known discovery document listing nodeinfo endpoints.
type NodeInfoWellKnown struct {
	Links []NodeInfoLink `json:"links"`
}

type NodeInfoLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

const (
	NodeInfoRel20 = "http://nodeinfo.diaspora.software/ns/schema/2.0"
	NodeInfoRel21 = "http://nodeinfo.diaspora.software/ns/schema/2.1"
)

// Second hop: the nodeinfo document proper.
type NodeInfo struct {
	Version  string           `json:"version"`
	Software NodeInfoSoftware `json:"software"`
	Usage    NodeInfoUsage    `json:"usage"`
	OpenRegs bool             `json:"openRegistrations"`
}

type NodeInfoSoftware struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type NodeInfoUsage struct {
	Users      NodeInfoUsers `json:"users"`
	LocalPosts int64         `json:"localPosts"`
}

type NodeInfoUsers struct {
	Total int64 `json:"total"`
}
