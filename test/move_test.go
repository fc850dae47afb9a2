package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/dal"
)

func makeMoveActivity(oldUrl, newUrl string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"type":"Move","actor":%q,"object":%q,"target":%q}`,
		newActivityId(), oldUrl, oldUrl, newUrl))
}

func Test_Inbox_Move_RepointsFollows(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	oldUrl := h.sender.UserUrl
	newUrl := fmt.Sprintf("https://new-home.example/users/%s", callerName)
	newActor := &dal.RemoteActor{
		UserUrl:     newUrl,
		Handle:      callerName,
		Host:        "new-home.example",
		Inbox:       newUrl + "/inbox",
		AlsoKnownAs: oldUrl,
	}
	requestId := fmt.Sprintf("https://%s/a/%d", localHost, getNextId())

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockResolver.EXPECT().ResolveUri(oldUrl, true).
		Return(&dal.RemoteActor{UserUrl: oldUrl, MovedTo: newUrl}, nil)
	h.mockResolver.EXPECT().ResolveUri(newUrl, true).Return(newActor, nil)
	h.mockRepo.EXPECT().GetFollowingOfTarget(oldUrl).
		Return([]*dal.FollowingInfo{{UserHandle: localName, TargetUserUrl: oldUrl, Status: 1}}, nil)
	h.mockUDir.EXPECT().SendFollow(localName, newActor).Return(requestId, nil)
	h.mockRepo.EXPECT().UpdateFollowingTarget(localName, oldUrl, newUrl, requestId).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Move")

	reqProblem, err := inbox.HandleActivity("", h.sender, makeMoveActivity(oldUrl, newUrl))
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Move_OldActorNotVouching_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	oldUrl := h.sender.UserUrl
	newUrl := fmt.Sprintf("https://new-home.example/users/%s", callerName)

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	// Fresh actor document has no movedTo; somebody is fabricating the move
	h.mockResolver.EXPECT().ResolveUri(oldUrl, true).
		Return(&dal.RemoteActor{UserUrl: oldUrl}, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, makeMoveActivity(oldUrl, newUrl))
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Move_TargetNotAliasedBack_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	oldUrl := h.sender.UserUrl
	newUrl := fmt.Sprintf("https://new-home.example/users/%s", callerName)

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockResolver.EXPECT().ResolveUri(oldUrl, true).
		Return(&dal.RemoteActor{UserUrl: oldUrl, MovedTo: newUrl}, nil)
	h.mockResolver.EXPECT().ResolveUri(newUrl, true).
		Return(&dal.RemoteActor{UserUrl: newUrl, AlsoKnownAs: "https://elsewhere.example/users/someone"}, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, makeMoveActivity(oldUrl, newUrl))
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Move_NoTarget_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	oldUrl := h.sender.UserUrl
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Move","actor":%q,"object":%q}`,
		newActivityId(), oldUrl, oldUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}
