package test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/server"
	"plume/shared"
	"plume/test/mocks"
)

type apubHandlerHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockMetrics    *mocks.MockIMetrics
	mockSigChecker *mocks.MockIHttpSigChecker
	mockBlockList  *mocks.MockIBlockList
	mockUDir       *mocks.MockIUserDirectory
	mockInbox      *mocks.MockIInbox
	mockRepo       *mocks.MockIRepo
}

func setupApubHandlerTest(t *testing.T) (*gomock.Controller, *apubHandlerHarness, http.Handler) {

	ctrl := gomock.NewController(t)

	h := &apubHandlerHarness{
		cfg:            makeTestConfig(),
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockSigChecker: mocks.NewMockIHttpSigChecker(ctrl),
		mockBlockList:  mocks.NewMockIBlockList(ctrl),
		mockUDir:       mocks.NewMockIUserDirectory(ctrl),
		mockInbox:      mocks.NewMockIInbox(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
	}

	stubLogger(h.mockLogger)
	h.mockMetrics.EXPECT().StartApubRequestIn(gomock.Any()).
		Return(newFinishedObserver(ctrl)).AnyTimes()

	hg := server.NewApubHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics,
		h.mockSigChecker, h.mockBlockList, h.mockUDir, h.mockInbox, h.mockRepo)
	router := server.NewMux([]server.IHandlerGroup{hg})

	return ctrl, h, router
}

func Test_PostInbox_BlockedInstance_Forbidden(t *testing.T) {

	// Sig checker and dispatcher get no expectations: a blocked instance's
	// activity must never reach them, and nothing of it may be recorded
	ctrl, h, router := setupApubHandlerTest(t)
	defer ctrl.Finish()

	actorUrl := fmt.Sprintf("https://%s/users/%s", callerHost, callerName)
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Create","actor":%q}`, newActivityId(), actorUrl))

	h.mockBlockList.EXPECT().IsAllowed(callerHost).Return(false, nil)
	h.mockMetrics.EXPECT().ActivityRejected("blocked-instance")

	req := httptest.NewRequest("POST", "/u/"+localName+"/inbox", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_PostInbox_AllowedInstance_Dispatched(t *testing.T) {

	ctrl, h, router := setupApubHandlerTest(t)
	defer ctrl.Finish()

	sender := makeCallerActor(callerHost, callerName, callerPubKey1)
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Create","actor":%q}`, newActivityId(), sender.UserUrl))

	h.mockBlockList.EXPECT().IsAllowed(callerHost).Return(true, nil)
	h.mockSigChecker.EXPECT().Check(sender.UserUrl, gomock.Any(), gomock.Any()).
		Return(sender, "", nil)
	h.mockInbox.EXPECT().HandleActivity(localName, sender, body).Return("", nil)

	req := httptest.NewRequest("POST", "/u/"+localName+"/inbox", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_PostInbox_BadSignature_Unauthorized(t *testing.T) {

	ctrl, h, router := setupApubHandlerTest(t)
	defer ctrl.Finish()

	sender := makeCallerActor(callerHost, callerName, callerPubKey1)
	body := []byte(fmt.Sprintf(`{"id":%q,"type":"Create","actor":%q}`, newActivityId(), sender.UserUrl))

	h.mockBlockList.EXPECT().IsAllowed(callerHost).Return(true, nil)
	h.mockSigChecker.EXPECT().Check(sender.UserUrl, gomock.Any(), gomock.Any()).
		Return(nil, "Incorrect signature", nil)

	req := httptest.NewRequest("POST", "/inbox", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
