package test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/dal"
)

func Test_Inbox_CreateNote_Mention_StoredAndNotified(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	content := "<p>Hey @alice, long time no see!</p>"
	body := makeCreateNote(callerHost, callerName, content,
		[]string{h.aliceUrl}, []string{publicStream}, nil, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().AddNoteIfNew(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Note)
		return ok && n.AuthorUrl == h.sender.UserUrl && !n.IsLocal &&
			strings.Contains(n.Content, "long time no see")
	})).Return(true, nil)
	h.mockRepo.EXPECT().AddNotification(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Notification)
		return ok && n.Kind == "mention" && n.UserHandle == localName &&
			n.ActorUrl == h.sender.UserUrl
	})).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Create")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_CreateNote_Irrelevant_Dropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	// Addressed to the fediverse at large; nobody here follows the sender
	followersUrl := fmt.Sprintf("https://%s/users/%s/followers", callerHost, callerName)
	body := makeCreateNote(callerHost, callerName, "<p>Just thinking out loud.</p>",
		[]string{publicStream}, []string{followersUrl}, nil, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetFollowingOfTarget(h.sender.UserUrl).Return(nil, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Create")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_CreateNote_ReplyToHeldNote_Stored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	parentUri := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	followersUrl := fmt.Sprintf("https://%s/users/%s/followers", callerHost, callerName)
	body := makeCreateNote(callerHost, callerName, "<p>Couldn't agree more.</p>",
		[]string{publicStream}, []string{followersUrl}, &parentUri, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(parentUri).
		Return(&dal.Note{Uri: parentUri, AuthorUrl: h.aliceUrl, IsLocal: true}, nil)
	h.mockRepo.EXPECT().AddNoteIfNew(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Note)
		return ok && n.InReplyTo == parentUri && n.AuthorUrl == h.sender.UserUrl
	})).Return(true, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Create")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_CreateNote_FromFollowedActor_Stored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	followersUrl := fmt.Sprintf("https://%s/users/%s/followers", callerHost, callerName)
	body := makeCreateNote(callerHost, callerName, "<p>New release is out.</p>",
		[]string{publicStream}, []string{followersUrl}, nil, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetFollowingOfTarget(h.sender.UserUrl).
		Return([]*dal.FollowingInfo{{UserHandle: localName, TargetUserUrl: h.sender.UserUrl, Status: 1}}, nil)
	h.mockRepo.EXPECT().AddNoteIfNew(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Note)
		return ok && n.AuthorUrl == h.sender.UserUrl
	})).Return(true, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Create")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_CreateNote_ContentSanitized(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	content := "<p>Check this</p><script>alert(1)</script><b>out</b>"
	body := makeCreateNote(callerHost, callerName, content,
		[]string{h.aliceUrl}, []string{publicStream}, nil, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().AddNoteIfNew(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Note)
		return ok && !strings.Contains(n.Content, "script") &&
			strings.Contains(n.Content, "<b>out</b>")
	})).Return(true, nil)
	h.mockRepo.EXPECT().AddNotification(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Create")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_CreateNote_WrongAttribution_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	// Note claims to be by pixie but arrives signed by ziggy
	impostor := makeCallerActor(callerHost, "ziggy", callerPubKey1)
	body := makeCreateNote(callerHost, callerName, "<p>Trust me.</p>",
		[]string{h.aliceUrl}, []string{publicStream}, nil, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", impostor, body)
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_CreateNote_AlreadyStored_NoNotification(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := makeCreateNote(callerHost, callerName, "<p>Hello again</p>",
		[]string{h.aliceUrl}, []string{publicStream}, nil, "[]")

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().AddNoteIfNew(gomock.Any()).Return(false, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Create")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}
