package logic

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"plume/dal"
	"plume/dto"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_directory.go -package mocks plume/logic IUserDirectory

// IUserDirectory serves the public documents of local accounts and performs
// the follow-related sends done on their behalf. All sends go through the
// delivery queue, so they share its retry and failure handling.
type IUserDirectory interface {
	GetWebfinger(user string) (*dto.WebfingerResp, error)
	GetUserInfo(user string) (*dto.UserInfo, error)
	GetOutboxSummary(user string) (*dto.OrderedListSummary, error)
	GetFollowersSummary(user string) (*dto.OrderedListSummary, error)
	GetFollowingSummary(user string) (*dto.OrderedListSummary, error)
	AcceptFollower(followActId, followerUserUrl, followerInbox, followedUser string) error
	RejectFollower(followActId, followerUserUrl, followerInbox, followedUser string) error
	SendFollow(user string, target *dal.RemoteActor) (requestId string, err error)
	SendUnfollow(user string, target *dal.RemoteActor) error
}

type userDirectory struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	idb    shared.IdBuilder
	queue  IDeliveryQueue
}

func NewUserDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	queue IDeliveryQueue,
) IUserDirectory {
	return &userDirectory{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		idb:    shared.IdBuilder{Host: cfg.Host},
		queue:  queue,
	}
}

func (udir *userDirectory) GetWebfinger(user string) (*dto.WebfingerResp, error) {

	user = strings.ToLower(user)
	acct, err := udir.repo.GetAccount(user)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, nil
	}

	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, udir.cfg.Host),
		Aliases: []string{
			udir.idb.UserUrl(user),
		},
		Links: []dto.WebfingerLink{
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: udir.idb.UserUrl(user),
			},
		},
	}
	return &resp, nil
}

func (udir *userDirectory) GetUserInfo(user string) (*dto.UserInfo, error) {

	user = strings.ToLower(user)
	acct, err := udir.repo.GetAccount(user)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, nil
	}

	userUrl := udir.idb.UserUrl(user)
	resp := dto.UserInfo{
		Context: []string{
			"https://www.w3.org/ns/activitystreams",
			"https://w3id.org/security/v1",
		},
		Id:                userUrl,
		Type:              "Person",
		PreferredUserName: user,
		Name:              acct.Name,
		Summary:           acct.Summary,
		ManuallyApproves:  acct.ManuallyApproves,
		Published:         acct.CreatedAt.Format(time.RFC3339),
		Inbox:             udir.idb.UserInbox(user),
		Outbox:            udir.idb.UserOutbox(user),
		Followers:         udir.idb.UserFollowers(user),
		Following:         udir.idb.UserFollowing(user),
		Endpoints:         dto.UserEndpoints{SharedInbox: udir.idb.SharedInbox()},
		PublicKey: dto.PublicKey{
			Id:           udir.idb.UserKeyId(user),
			Owner:        userUrl,
			PublicKeyPem: acct.PubKey,
		},
	}
	return &resp, nil
}

func (udir *userDirectory) GetOutboxSummary(user string) (*dto.OrderedListSummary, error) {

	user = strings.ToLower(user)
	exists, err := udir.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	postCount, err := udir.repo.GetLocalNoteCount(udir.idb.UserUrl(user))
	if err != nil {
		return nil, err
	}
	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserOutbox(user),
		Type:       "OrderedCollection",
		TotalItems: postCount,
	}
	return &resp, nil
}

func (udir *userDirectory) GetFollowersSummary(user string) (*dto.OrderedListSummary, error) {

	user = strings.ToLower(user)
	exists, err := udir.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	followerCount, err := udir.repo.GetApprovedFollowerCount(user)
	if err != nil {
		return nil, err
	}
	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowers(user),
		Type:       "OrderedCollection",
		TotalItems: followerCount,
	}
	return &resp, nil
}

func (udir *userDirectory) GetFollowingSummary(user string) (*dto.OrderedListSummary, error) {

	user = strings.ToLower(user)
	exists, err := udir.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	followingCount, err := udir.repo.GetFollowingCount(user)
	if err != nil {
		return nil, err
	}
	resp := dto.OrderedListSummary{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         udir.idb.UserFollowing(user),
		Type:       "OrderedCollection",
		TotalItems: followingCount,
	}
	return &resp, nil
}

func (udir *userDirectory) AcceptFollower(followActId, followerUserUrl, followerInbox, followedUser string) error {

	udir.logger.Infof("Accepting follow by %s", followerUserUrl)

	if err := udir.sendFollowResponse("Accept", followActId, followerUserUrl, followerInbox, followedUser); err != nil {
		return err
	}
	if err := udir.repo.SetFollowerApproveStatus(followedUser, followerUserUrl, 1); err != nil {
		return fmt.Errorf("failed to set follower approve status: %v", err)
	}
	return nil
}

func (udir *userDirectory) RejectFollower(followActId, followerUserUrl, followerInbox, followedUser string) error {

	udir.logger.Infof("Rejecting follow by %s", followerUserUrl)

	if err := udir.sendFollowResponse("Reject", followActId, followerUserUrl, followerInbox, followedUser); err != nil {
		return err
	}
	if err := udir.repo.RemoveFollower(followedUser, followerUserUrl); err != nil {
		return fmt.Errorf("failed to remove rejected follower: %v", err)
	}
	return nil
}

func (udir *userDirectory) sendFollowResponse(verb, followActId, followerUserUrl, followerInbox, followedUser string) error {

	act := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      udir.idb.ActivityUrl(uuid.NewString()),
		Type:    verb,
		Actor:   udir.idb.UserUrl(followedUser),
		Object: dto.ActivityOut{
			Id:     followActId,
			Type:   "Follow",
			Actor:  followerUserUrl,
			Object: udir.idb.UserUrl(followedUser),
		},
	}
	addressees := []*Addressee{{UserUrl: followerUserUrl, Inbox: followerInbox}}
	if err := udir.queue.Deliver(followedUser, &act, addressees); err != nil {
		return fmt.Errorf("failed to enqueue '%s' activity: %v", verb, err)
	}
	return nil
}

// SendFollow issues a Follow to the target actor on behalf of a local
// account and records the pending edge; Accept or Reject settles it later
// through the request id.
func (udir *userDirectory) SendFollow(user string, target *dal.RemoteActor) (requestId string, err error) {

	udir.logger.Infof("Sending Follow of %s on behalf of '%s'", target.UserUrl, user)

	requestId = udir.idb.ActivityUrl(uuid.NewString())
	actFollow := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      requestId,
		Type:    "Follow",
		Actor:   udir.idb.UserUrl(user),
		Object:  target.UserUrl,
	}
	addressees := []*Addressee{{UserUrl: target.UserUrl, Inbox: target.Inbox}}
	if err = udir.queue.Deliver(user, &actFollow, addressees); err != nil {
		return "", fmt.Errorf("failed to enqueue 'Follow' activity: %v", err)
	}

	err = udir.repo.AddFollowing(&dal.FollowingInfo{
		UserHandle:    user,
		TargetUserUrl: target.UserUrl,
		RequestId:     requestId,
		Status:        0,
	})
	if err != nil {
		return "", err
	}
	return requestId, nil
}

func (udir *userDirectory) SendUnfollow(user string, target *dal.RemoteActor) error {

	udir.logger.Infof("Sending Undo Follow of %s on behalf of '%s'", target.UserUrl, user)

	// Find the original request id; the Undo wraps the Follow it revokes
	following, err := udir.repo.GetFollowingOfTarget(target.UserUrl)
	if err != nil {
		return err
	}
	requestId := ""
	for _, fl := range following {
		if fl.UserHandle == user {
			requestId = fl.RequestId
		}
	}
	if requestId == "" {
		return fmt.Errorf("'%s' is not following %s", user, target.UserUrl)
	}

	actUndo := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      udir.idb.ActivityUrl(uuid.NewString()),
		Type:    "Undo",
		Actor:   udir.idb.UserUrl(user),
		Object: dto.ActivityOut{
			Id:     requestId,
			Type:   "Follow",
			Actor:  udir.idb.UserUrl(user),
			Object: target.UserUrl,
		},
	}
	addressees := []*Addressee{{UserUrl: target.UserUrl, Inbox: target.Inbox}}
	if err = udir.queue.Deliver(user, &actUndo, addressees); err != nil {
		return fmt.Errorf("failed to enqueue 'Undo' activity: %v", err)
	}
	return udir.repo.RemoveFollowing(user, target.UserUrl)
}
