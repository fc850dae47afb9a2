package test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/dal"
	"plume/dto"
	"plume/logic"
	"plume/shared"
	"plume/test/mocks"
)

type queueHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockKeyStore *mocks.MockIKeyStore
	mockSender   *mocks.MockIActivitySender
	mockResolver *mocks.MockIActorResolver
	mockBlocks   *mocks.MockIBlockList
	mockMetrics  *mocks.MockIMetrics
}

func setupQueueTest(t *testing.T) (*gomock.Controller, *queueHarness, logic.IDeliveryQueue) {

	ctrl := gomock.NewController(t)

	h := &queueHarness{
		cfg:          makeTestConfig(),
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
		mockBlocks:   mocks.NewMockIBlockList(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}

	stubLogger(h.mockLogger)
	h.mockMetrics.EXPECT().DeliveryQueueLength(gomock.Any()).AnyTimes()

	queue := logic.NewDeliveryQueue(h.cfg, h.mockLogger, h.mockRepo, h.mockKeyStore,
		h.mockSender, h.mockResolver, h.mockBlocks, h.mockMetrics)

	return ctrl, h, queue
}

func makeQueueActivity(noteId string) *dto.ActivityOut {
	return &dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      noteId + "/activity",
		Type:    "Create",
		Actor:   fmt.Sprintf("https://%s/u/%s", localHost, localName),
		To:      &[]string{publicStream},
		Object:  noteId,
	}
}

// expectDrainedQueue makes the delivery loop a no-op when a test only cares
// about enqueueing.
func expectDrainedQueue(h *queueHarness) {
	h.mockRepo.EXPECT().GetDueDeliveryQueueItems(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil).AnyTimes()
}

func Test_DeliveryQueue_CollapsesSharedInboxes(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()
	expectDrainedQueue(h)

	sharedInbox := fmt.Sprintf("https://%s/inbox", callerHost)
	personalInbox := "https://quiet.example/users/bob/inbox"
	addressees := []*logic.Addressee{
		{UserUrl: fmt.Sprintf("https://%s/users/pixie", callerHost),
			Inbox: fmt.Sprintf("https://%s/users/pixie/inbox", callerHost), SharedInbox: sharedInbox},
		{UserUrl: fmt.Sprintf("https://%s/users/ziggy", callerHost),
			Inbox: fmt.Sprintf("https://%s/users/ziggy/inbox", callerHost), SharedInbox: sharedInbox},
		{UserUrl: "https://quiet.example/users/bob", Inbox: personalInbox},
	}

	h.mockBlocks.EXPECT().IsAllowed(callerHost).Return(true, nil)
	h.mockBlocks.EXPECT().IsAllowed("quiet.example").Return(true, nil)
	h.mockRepo.EXPECT().AddDeliveryQueueItem(gomock.Cond(func(x any) bool {
		item, ok := x.(*dal.DeliveryQueueItem)
		return ok && item.ToInbox == sharedInbox && item.SendingUser == localName
	})).Return(nil)
	h.mockRepo.EXPECT().AddDeliveryQueueItem(gomock.Cond(func(x any) bool {
		item, ok := x.(*dal.DeliveryQueueItem)
		return ok && item.ToInbox == personalInbox
	})).Return(nil)

	noteId := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	err := queue.Deliver(localName, makeQueueActivity(noteId), addressees)
	assert.Nil(t, err)

	// Give the wake goroutine a beat before the controller checks expectations
	time.Sleep(50 * time.Millisecond)
}

func Test_DeliveryQueue_SkipsBlockedInstance(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()

	sharedInbox := fmt.Sprintf("https://%s/inbox", callerHost)
	addressees := []*logic.Addressee{
		{UserUrl: fmt.Sprintf("https://%s/users/pixie", callerHost), SharedInbox: sharedInbox},
	}

	h.mockBlocks.EXPECT().IsAllowed(callerHost).Return(false, nil)
	h.mockMetrics.EXPECT().Delivery("blocked")

	noteId := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	err := queue.Deliver(localName, makeQueueActivity(noteId), addressees)
	assert.Nil(t, err)
}

func Test_DeliveryQueue_NoUsableInbox_NoOp(t *testing.T) {

	ctrl, _, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()

	noteId := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	err := queue.Deliver(localName, makeQueueActivity(noteId), []*logic.Addressee{{UserUrl: "https://x.example/users/y"}})
	assert.Nil(t, err)
}

// runQueueItem feeds one due item into the loop via a Deliver wake-up and
// returns once settleFn has signaled completion.
func runQueueItem(t *testing.T, h *queueHarness, queue logic.IDeliveryQueue,
	item *dal.DeliveryQueueItem, settled chan struct{}) {

	first := true
	h.mockRepo.EXPECT().GetDueDeliveryQueueItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(time.Time, int) ([]*dal.DeliveryQueueItem, int, error) {
			if first {
				first = false
				return []*dal.DeliveryQueueItem{item}, 1, nil
			}
			return nil, 0, nil
		}).AnyTimes()

	h.mockBlocks.EXPECT().IsAllowed(gomock.Any()).Return(true, nil)
	h.mockRepo.EXPECT().AddDeliveryQueueItem(gomock.Any()).Return(nil)

	var act dto.ActivityOut
	err := json.Unmarshal([]byte(item.ActivityJson), &act)
	assert.Nil(t, err)
	err = queue.Deliver(item.SendingUser, &act,
		[]*logic.Addressee{{UserUrl: "https://x.example/users/y", Inbox: item.ToInbox}})
	assert.Nil(t, err)

	select {
	case <-settled:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery item was not settled in time")
	}
	// Let the loop finish the settle before expectations are checked
	time.Sleep(50 * time.Millisecond)
}

func makeDueItem(t *testing.T, inbox string) (*dal.DeliveryQueueItem, *rsa.PrivateKey) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)
	noteId := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	actJson, err := json.Marshal(makeQueueActivity(noteId))
	assert.Nil(t, err)
	return &dal.DeliveryQueueItem{
		Id:            int(getNextId() % 100000),
		SendingUser:   localName,
		ToInbox:       inbox,
		ActivityJson:  string(actJson),
		Attempts:      0,
		NextAttemptAt: time.Now().UTC(),
		CreatedAt:     time.Now().UTC(),
	}, privKey
}

func Test_DeliveryQueue_SuccessfulSend_RemovesItem(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()

	inbox := fmt.Sprintf("https://%s/users/pixie/inbox", callerHost)
	item, privKey := makeDueItem(t, inbox)

	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(privKey, nil)
	h.mockSender.EXPECT().Send(privKey, localName, inbox, gomock.Cond(func(x any) bool {
		act, ok := x.(*dto.ActivityOut)
		return ok && act.Type == "Create"
	})).Return(nil)
	h.mockMetrics.EXPECT().Delivery("ok")
	settled := make(chan struct{})
	h.mockRepo.EXPECT().DeleteDeliveryQueueItem(item.Id).
		DoAndReturn(func(int) error {
			close(settled)
			return nil
		})

	runQueueItem(t, h, queue, item, settled)
}

func Test_DeliveryQueue_PermanentFailure_RecordsActorFailure(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()

	inbox := fmt.Sprintf("https://%s/users/pixie/inbox", callerHost)
	item, privKey := makeDueItem(t, inbox)
	sendErr := &logic.SendStatusError{Status: 410, Body: "gone"}
	actor := makeCallerActor(callerHost, callerName, callerPubKey1)

	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(privKey, nil)
	h.mockSender.EXPECT().Send(privKey, localName, inbox, gomock.Any()).Return(sendErr)
	h.mockMetrics.EXPECT().Delivery("permanent")
	h.mockRepo.EXPECT().DeleteDeliveryQueueItem(item.Id).Return(nil)
	h.mockRepo.EXPECT().GetRemoteActorsByInbox(inbox).Return([]*dal.RemoteActor{actor}, nil)
	settled := make(chan struct{})
	h.mockResolver.EXPECT().RecordDeliveryFailure(actor.UserUrl, true, sendErr).
		Do(func(string, bool, error) {
			close(settled)
		})

	runQueueItem(t, h, queue, item, settled)
}

func Test_DeliveryQueue_TransientFailure_Reschedules(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()

	inbox := fmt.Sprintf("https://%s/users/pixie/inbox", callerHost)
	item, privKey := makeDueItem(t, inbox)
	sendErr := errors.New("dial tcp: i/o timeout")

	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(privKey, nil)
	h.mockSender.EXPECT().Send(privKey, localName, inbox, gomock.Any()).Return(sendErr)
	h.mockMetrics.EXPECT().Delivery("retry")
	settled := make(chan struct{})
	h.mockRepo.EXPECT().UpdateDeliveryQueueItem(item.Id, 1, gomock.Any(), sendErr.Error()).
		DoAndReturn(func(int, int, time.Time, string) error {
			close(settled)
			return nil
		})

	runQueueItem(t, h, queue, item, settled)
}

func Test_DeliveryQueue_AttemptsExhausted_GivesUp(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()

	inbox := fmt.Sprintf("https://%s/users/pixie/inbox", callerHost)
	item, privKey := makeDueItem(t, inbox)
	item.Attempts = h.cfg.Federation.DeliveryMaxAttempts - 1

	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(privKey, nil)
	h.mockSender.EXPECT().Send(privKey, localName, inbox, gomock.Any()).
		Return(errors.New("connection reset"))
	h.mockMetrics.EXPECT().Delivery("gave-up")
	settled := make(chan struct{})
	h.mockRepo.EXPECT().DeleteDeliveryQueueItem(item.Id).
		DoAndReturn(func(int) error {
			close(settled)
			return nil
		})

	runQueueItem(t, h, queue, item, settled)
}

func Test_DeliveryQueue_BroadcastToFollowers(t *testing.T) {

	ctrl, h, queue := setupQueueTest(t)
	defer ctrl.Finish()
	defer queue.Shutdown()
	expectDrainedQueue(h)

	sharedInbox := fmt.Sprintf("https://%s/inbox", callerHost)
	followers := []*dal.FollowerInfo{
		{UserUrl: fmt.Sprintf("https://%s/users/pixie", callerHost),
			UserInbox: fmt.Sprintf("https://%s/users/pixie/inbox", callerHost), SharedInbox: sharedInbox},
		{UserUrl: fmt.Sprintf("https://%s/users/ziggy", callerHost),
			UserInbox: fmt.Sprintf("https://%s/users/ziggy/inbox", callerHost), SharedInbox: sharedInbox},
	}

	h.mockRepo.EXPECT().GetFollowersByUser(localName, true).Return(followers, nil)
	h.mockBlocks.EXPECT().IsAllowed(callerHost).Return(true, nil)
	h.mockRepo.EXPECT().AddDeliveryQueueItem(gomock.Cond(func(x any) bool {
		item, ok := x.(*dal.DeliveryQueueItem)
		return ok && item.ToInbox == sharedInbox
	})).Return(nil)

	noteId := fmt.Sprintf("https://%s/u/%s/status/%d", localHost, localName, getNextId())
	err := queue.BroadcastToFollowers(localName, makeQueueActivity(noteId))
	assert.Nil(t, err)

	time.Sleep(50 * time.Millisecond)
}
