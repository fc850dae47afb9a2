package test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/dal"
	"plume/logic"
	"plume/shared"
	"plume/test/mocks"
)

const localHost = "notes.example.com"
const localName = "alice"
const callerHost = "stardust.community"
const callerName = "pixie"
const publicStream = "https://www.w3.org/ns/activitystreams#Public"

func makeTestConfig() *shared.Config {
	return &shared.Config{
		Host: localHost,
		Federation: shared.Federation{
			ActorCacheHours:      24,
			InstanceCacheHours:   24,
			FetchFailureCeiling:  5,
			RefreshBatchSize:     5,
			RequestTimeoutSec:    2,
			DeliveryMaxAttempts:  10,
			PermanentStatusCodes: []int{404, 410},
		},
	}
}

type inboxHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockMetrics  *mocks.MockIMetrics
	mockResolver *mocks.MockIActorResolver
	mockUDir     *mocks.MockIUserDirectory
	sender       *dal.RemoteActor
	aliceUrl     string
}

func setupInboxTest(t *testing.T) (*gomock.Controller, *inboxHarness, logic.IInbox) {

	ctrl := gomock.NewController(t)

	h := &inboxHarness{
		cfg:          makeTestConfig(),
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
		mockUDir:     mocks.NewMockIUserDirectory(ctrl),
		sender:       makeCallerActor(callerHost, callerName, callerPubKey1),
	}
	h.aliceUrl = fmt.Sprintf("https://%s/u/%s", localHost, localName)

	stubLogger(h.mockLogger)

	inbox := logic.NewInbox(h.cfg, h.mockLogger, h.mockRepo, h.mockMetrics,
		h.mockResolver, h.mockUDir)

	return ctrl, h, inbox
}

func newActivityId() string {
	return fmt.Sprintf("https://%s/activities/%d", callerHost, getNextId())
}

func Test_Inbox_DuplicateDelivery_Dropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Follow","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, h.aliceUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(true, nil)
	h.mockMetrics.EXPECT().DuplicateActivity()

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_MissingFields_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{"id":"https://stardust.community/activities/1","type":"Follow"}`)
	h.mockMetrics.EXPECT().ActivityRejected("missing-fields")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_UnsupportedVerb_ClaimStays(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"EmojiReact","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, h.aliceUrl))

	// The claim is kept: no UnmarkActivityHandled expectation
	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockMetrics.EXPECT().ActivityRejected("unsupported-verb")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Like_MissingNote_ReleasesClaim(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/users/%s/statuses/%d", callerHost, callerName, getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Like","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).Return(nil, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(actId).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Contains(t, reqProblem, noteUri)
	assert.Nil(t, err)
}

func Test_Inbox_Like_RepoError_ReleasesClaim(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/users/%s/statuses/%d", callerHost, callerName, getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Like","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).Return(nil, errors.New("db gone away"))
	h.mockRepo.EXPECT().UnmarkActivityHandled(actId).Return(nil)

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.NotNil(t, err)
}

func Test_Inbox_Like_StoresReaction_NotifiesAuthor(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Like","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).
		Return(&dal.Note{Uri: noteUri, AuthorUrl: h.aliceUrl, IsLocal: true}, nil)
	h.mockRepo.EXPECT().AddReactionIfNew(gomock.Cond(func(x any) bool {
		r, ok := x.(*dal.Reaction)
		return ok && r.NoteUri == noteUri && r.ActorUrl == h.sender.UserUrl && r.ActivityId == actId
	})).Return(true, nil)
	h.mockRepo.EXPECT().AddNotification(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Notification)
		return ok && n.Kind == "like" && n.UserHandle == localName && n.NoteUri == noteUri
	})).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Like")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Announce_StoredWithoutNote(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	// A boost of a note on a third server we know nothing about
	noteUri := fmt.Sprintf("https://far-away.example/notes/%d", getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Announce","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().AddAnnounceIfNew(gomock.Cond(func(x any) bool {
		a, ok := x.(*dal.Announce)
		return ok && a.NoteUri == noteUri && a.ActorUrl == h.sender.UserUrl
	})).Return(true, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).Return(nil, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Announce")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Follow_AutoAccepts(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Follow","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, h.aliceUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetAccount(localName).
		Return(&dal.Account{Handle: localName, UserUrl: h.aliceUrl, PubKey: localPubKey}, nil)
	h.mockRepo.EXPECT().AddFollower(localName, gomock.Cond(func(x any) bool {
		f, ok := x.(*dal.FollowerInfo)
		return ok && f.RequestId == actId && f.UserUrl == h.sender.UserUrl &&
			f.UserInbox == h.sender.Inbox && f.ApproveStatus == 0
	})).Return(nil)
	h.mockRepo.EXPECT().AddNotification(gomock.Cond(func(x any) bool {
		n, ok := x.(*dal.Notification)
		return ok && n.Kind == "follow" && n.UserHandle == localName
	})).Return(nil)

	// The accept is enqueued before we answer; delivery retries are the
	// queue's business
	h.mockUDir.EXPECT().AcceptFollower(actId, h.sender.UserUrl, h.sender.Inbox, localName).
		Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Follow")

	reqProblem, err := inbox.HandleActivity(localName, h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Follow_AcceptEnqueueFails_ErrorPropagates(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Follow","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, h.aliceUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetAccount(localName).
		Return(&dal.Account{Handle: localName, UserUrl: h.aliceUrl, PubKey: localPubKey}, nil)
	h.mockRepo.EXPECT().AddFollower(localName, gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().AddNotification(gomock.Any()).Return(nil)
	h.mockUDir.EXPECT().AcceptFollower(actId, h.sender.UserUrl, h.sender.Inbox, localName).
		Return(errors.New("enqueue failed"))
	h.mockRepo.EXPECT().UnmarkActivityHandled(actId).Return(nil)

	_, err := inbox.HandleActivity(localName, h.sender, body)
	assert.NotNil(t, err)
}

func Test_Inbox_Follow_ManualApproval_NoAutoAccept(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Follow","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, h.aliceUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetAccount(localName).
		Return(&dal.Account{Handle: localName, UserUrl: h.aliceUrl, ManuallyApproves: true}, nil)
	h.mockRepo.EXPECT().AddFollower(localName, gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().AddNotification(gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Follow")

	reqProblem, err := inbox.HandleActivity(localName, h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Follow_UnknownUser_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	zoeUrl := fmt.Sprintf("https://%s/u/zoe", localHost)
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Follow","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, zoeUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetAccount("zoe").Return(nil, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(actId).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_UndoFollow_RemovesFollower(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	followId := newActivityId()
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Undo","actor":%q,"object":{"id":%q,"type":"Follow","actor":%q,"object":%q}}`,
		actId, h.sender.UserUrl, followId, h.sender.UserUrl, h.aliceUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().RemoveFollower(localName, h.sender.UserUrl).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Undo")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_UndoLike_RemovesReaction(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	likeId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Undo","actor":%q,"object":{"id":%q,"type":"Like","actor":%q,"object":%q}}`,
		actId, h.sender.UserUrl, likeId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().RemoveReaction(noteUri, h.sender.UserUrl).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Undo")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Undo_ForeignActivity_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	otherActor := "https://stardust.community/users/ziggy"
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Undo","actor":%q,"object":{"id":%q,"type":"Follow","actor":%q,"object":%q}}`,
		actId, h.sender.UserUrl, newActivityId(), otherActor, h.aliceUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(actId).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Accept_SettlesFollowRequest(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	requestId := fmt.Sprintf("https://%s/a/%d", localHost, getNextId())
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Accept","actor":%q,"object":{"id":%q,"type":"Follow"}}`,
		actId, h.sender.UserUrl, requestId))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SetFollowingStatusByRequestId(requestId, 1).Return(true, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Accept")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Reject_SettlesFollowRequest(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	requestId := fmt.Sprintf("https://%s/a/%d", localHost, getNextId())
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Reject","actor":%q,"object":{"id":%q,"type":"Follow"}}`,
		actId, h.sender.UserUrl, requestId))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SetFollowingStatusByRequestId(requestId, -1).Return(true, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Reject")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Accept_UnknownRequest_Ignored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	requestId := fmt.Sprintf("https://%s/a/%d", localHost, getNextId())
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Accept","actor":%q,"object":{"id":%q,"type":"Follow"}}`,
		actId, h.sender.UserUrl, requestId))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SetFollowingStatusByRequestId(requestId, 1).Return(false, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Accept")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Delete_SelfDelete(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Delete","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, h.sender.UserUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().SetRemoteActorGone(h.sender.UserUrl, gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().RemoveFollowersByActor(h.sender.UserUrl).Return(nil)
	h.mockRepo.EXPECT().TombstoneNotesByAuthor(h.sender.UserUrl, gomock.Any()).Return(nil)
	h.mockMetrics.EXPECT().ActivityHandled("Delete")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Delete_UnknownNote_NoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/users/%s/statuses/%d", callerHost, callerName, getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Delete","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).Return(nil, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Delete")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Delete_WrongAuthor_Rejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/users/ziggy/statuses/%d", callerHost, getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Delete","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).
		Return(&dal.Note{Uri: noteUri, AuthorUrl: "https://stardust.community/users/ziggy"}, nil)
	h.mockRepo.EXPECT().UnmarkActivityHandled(actId).Return(nil)
	h.mockMetrics.EXPECT().ActivityRejected("validation")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.NotEmpty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_Delete_TombstonesNote(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	noteUri := fmt.Sprintf("https://%s/users/%s/statuses/%d", callerHost, callerName, getNextId())
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Delete","actor":%q,"object":%q}`,
		actId, h.sender.UserUrl, noteUri))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockRepo.EXPECT().GetNoteByUri(noteUri).
		Return(&dal.Note{Uri: noteUri, AuthorUrl: h.sender.UserUrl}, nil)
	h.mockRepo.EXPECT().TombstoneNoteByUri(noteUri, gomock.Any()).Return(true, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Delete")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}

func Test_Inbox_UpdateActor_RefreshesCache(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	actId := newActivityId()
	body := []byte(fmt.Sprintf(
		`{"id":%q,"type":"Update","actor":%q,"object":{"id":%q,"type":"Person"}}`,
		actId, h.sender.UserUrl, h.sender.UserUrl))

	h.mockRepo.EXPECT().MarkActivityHandled(actId, gomock.Any()).Return(false, nil)
	h.mockResolver.EXPECT().ResolveUri(h.sender.UserUrl, true).Return(h.sender, nil)
	h.mockMetrics.EXPECT().ActivityHandled("Update")

	reqProblem, err := inbox.HandleActivity("", h.sender, body)
	assert.Empty(t, reqProblem)
	assert.Nil(t, err)
}
