package dal

import (
	"time"
)

type Account struct {
	Id               int
	CreatedAt        time.Time
	UserUrl          string // https://plume.example.com/u/alice
	Handle           string // alice
	Name             string
	Summary          string
	ManuallyApproves bool
	PubKey           string
}

// RemoteActor is the cached record of a federated identity on another
// server, including the health fields the resolver's state machine lives in.
// FetchedAt is zero until the first successful fetch; GoneDetectedAt is set
// once, when repeated failures end in a permanent-absence response.
type RemoteActor struct {
	Id                 int
	UserUrl            string // https://genart.social/users/twilliability
	Handle             string // twilliability
	Host               string // genart.social
	Name               string
	Inbox              string
	SharedInbox        string
	MovedTo            string
	AlsoKnownAs        string // space-separated URIs from the actor document
	PubKey             string
	FetchedAt          time.Time
	FetchFailureCount  int
	LastFetchAttemptAt time.Time
	LastFetchError     string
	GoneDetectedAt     *time.Time
}

type FollowerInfo struct {
	RequestId     string // ID of the follow request activity; needed for approve reply
	ApproveStatus int    // 0: unapproved, 1: approved, negative: banned
	UserUrl       string
	Handle        string
	Host          string
	UserInbox     string
	SharedInbox   string
}

// FollowingInfo is a follow edge from a local account to a remote actor.
// RequestId is the id of the Follow activity we sent; Accept and Reject
// reference it as their object.
type FollowingInfo struct {
	Id            int
	UserHandle    string
	TargetUserUrl string
	RequestId     string
	Status        int // 0: pending, 1: accepted, -1: rejected
}

type Note struct {
	Id           int
	UriHash      int64
	Uri          string
	AuthorUrl    string
	InReplyTo    string
	QuoteUrl     string
	Content      string
	Published    time.Time
	UpdatedAt    *time.Time
	TombstonedAt *time.Time
	IsLocal      bool
}

type Reaction struct {
	NoteUriHash int64
	NoteUri     string
	ActorUrl    string
	ActivityId  string // the Like activity's id; Undo references it
	CreatedAt   time.Time
}

type Announce struct {
	NoteUriHash int64
	NoteUri     string
	ActorUrl    string
	ActivityId  string
	CreatedAt   time.Time
}

type Notification struct {
	Id         int
	UserHandle string
	Kind       string // follow, like, announce, mention
	ActorUrl   string
	NoteUri    string
	CreatedAt  time.Time
}

// RemoteInstance caches server-level metadata per host. FetchErrorCount
// only moves up on failure and resets to 0 on success; at the ceiling,
// automatic refreshes stop until an operator forces one.
type RemoteInstance struct {
	Host            string
	Software        string
	Version         string
	OpenRegs        bool
	UserCount       int64
	PostCount       int64
	LastFetchedAt   time.Time
	FetchErrorCount int
	LastFetchError  string
}

type InstanceBlock struct {
	Host      string // normalized to lowercase
	Reason    string
	AddedBy   string
	CreatedAt time.Time
}

type DeliveryQueueItem struct {
	Id            int
	SendingUser   string
	ToInbox       string
	ActivityJson  string
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}
