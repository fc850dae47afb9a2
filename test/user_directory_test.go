package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/dal"
	"plume/dto"
	"plume/logic"
	"plume/shared"
	"plume/test/mocks"
)

type udirHarness struct {
	cfg        *shared.Config
	mockLogger *mocks.MockILogger
	mockRepo   *mocks.MockIRepo
	mockQueue  *mocks.MockIDeliveryQueue
	aliceUrl   string
}

func setupUdirTest(t *testing.T) (*gomock.Controller, *udirHarness, logic.IUserDirectory) {

	ctrl := gomock.NewController(t)

	h := &udirHarness{
		cfg:        makeTestConfig(),
		mockLogger: mocks.NewMockILogger(ctrl),
		mockRepo:   mocks.NewMockIRepo(ctrl),
		mockQueue:  mocks.NewMockIDeliveryQueue(ctrl),
		aliceUrl:   fmt.Sprintf("https://%s/u/%s", localHost, localName),
	}
	stubLogger(h.mockLogger)

	udir := logic.NewUserDirectory(h.cfg, h.mockLogger, h.mockRepo, h.mockQueue)

	return ctrl, h, udir
}

// expectEnqueuedFollowResponse matches an Accept or Reject wrapping the
// original Follow, enqueued for the follower's inbox.
func expectEnqueuedFollowResponse(h *udirHarness, verb, followActId string, follower *dal.RemoteActor) {
	h.mockQueue.EXPECT().Deliver(localName, gomock.Cond(func(x any) bool {
		act, ok := x.(*dto.ActivityOut)
		if !ok || act.Type != verb || act.Actor != h.aliceUrl {
			return false
		}
		inner, ok := act.Object.(dto.ActivityOut)
		return ok && inner.Type == "Follow" && inner.Id == followActId &&
			inner.Actor == follower.UserUrl
	}), gomock.Cond(func(x any) bool {
		addressees, ok := x.([]*logic.Addressee)
		return ok && len(addressees) == 1 && addressees[0].Inbox == follower.Inbox
	})).Return(nil)
}

func Test_Udir_AcceptFollower_EnqueuesAndApproves(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	follower := makeCallerActor(callerHost, callerName, callerPubKey1)
	followActId := newActivityId()

	expectEnqueuedFollowResponse(h, "Accept", followActId, follower)
	h.mockRepo.EXPECT().SetFollowerApproveStatus(localName, follower.UserUrl, 1).Return(nil)

	err := udir.AcceptFollower(followActId, follower.UserUrl, follower.Inbox, localName)
	assert.Nil(t, err)
}

func Test_Udir_RejectFollower_EnqueuesAndRemoves(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	follower := makeCallerActor(callerHost, callerName, callerPubKey1)
	followActId := newActivityId()

	expectEnqueuedFollowResponse(h, "Reject", followActId, follower)
	h.mockRepo.EXPECT().RemoveFollower(localName, follower.UserUrl).Return(nil)

	err := udir.RejectFollower(followActId, follower.UserUrl, follower.Inbox, localName)
	assert.Nil(t, err)
}

func Test_Udir_SendFollow_EnqueuesAndRecords(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	target := makeCallerActor(callerHost, callerName, callerPubKey1)

	var enqueuedId string
	h.mockQueue.EXPECT().Deliver(localName, gomock.Cond(func(x any) bool {
		act, ok := x.(*dto.ActivityOut)
		if !ok || act.Type != "Follow" || act.Object != target.UserUrl {
			return false
		}
		enqueuedId = act.Id
		return true
	}), gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().AddFollowing(gomock.Cond(func(x any) bool {
		fl, ok := x.(*dal.FollowingInfo)
		return ok && fl.UserHandle == localName && fl.TargetUserUrl == target.UserUrl &&
			fl.Status == 0
	})).Return(nil)

	requestId, err := udir.SendFollow(localName, target)
	assert.Nil(t, err)
	assert.Equal(t, enqueuedId, requestId)
}

func Test_Udir_SendUnfollow_EnqueuesUndoOfOriginalRequest(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	target := makeCallerActor(callerHost, callerName, callerPubKey1)
	requestId := newActivityId()

	h.mockRepo.EXPECT().GetFollowingOfTarget(target.UserUrl).Return([]*dal.FollowingInfo{
		{UserHandle: localName, TargetUserUrl: target.UserUrl, RequestId: requestId, Status: 1},
	}, nil)
	h.mockQueue.EXPECT().Deliver(localName, gomock.Cond(func(x any) bool {
		act, ok := x.(*dto.ActivityOut)
		if !ok || act.Type != "Undo" {
			return false
		}
		inner, ok := act.Object.(dto.ActivityOut)
		return ok && inner.Type == "Follow" && inner.Id == requestId
	}), gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().RemoveFollowing(localName, target.UserUrl).Return(nil)

	err := udir.SendUnfollow(localName, target)
	assert.Nil(t, err)
}

func Test_Udir_SendUnfollow_NotFollowing_Errors(t *testing.T) {

	ctrl, h, udir := setupUdirTest(t)
	defer ctrl.Finish()

	target := makeCallerActor(callerHost, callerName, callerPubKey1)
	h.mockRepo.EXPECT().GetFollowingOfTarget(target.UserUrl).Return(nil, nil)

	err := udir.SendUnfollow(localName, target)
	assert.NotNil(t, err)
}
