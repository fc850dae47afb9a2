package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plume/dal"
	"plume/logic"
	"plume/shared"
	"plume/test/mocks"
)

type resolverHarness struct {
	cfg           *shared.Config
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockUserAgent *mocks.MockIUserAgent
	mockMetrics   *mocks.MockIMetrics
}

func setupResolverTest(t *testing.T) (*gomock.Controller, *resolverHarness, logic.IActorResolver) {

	ctrl := gomock.NewController(t)

	h := &resolverHarness{
		cfg:           makeTestConfig(),
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockUserAgent: mocks.NewMockIUserAgent(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
	}

	stubLogger(h.mockLogger)
	h.mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()

	resolver := logic.NewActorResolver(h.cfg, h.mockLogger, h.mockRepo,
		h.mockUserAgent, h.mockMetrics)

	return ctrl, h, resolver
}

// serveActorDoc returns a test server that answers every GET with an actor
// document whose id is the requested URL.
func serveActorDoc(handle string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUrl := "http://" + r.Host + r.URL.Path
		w.Header().Set("Content-Type", "application/activity+json")
		fmt.Fprintf(w, `{
			"id": %q,
			"type": "Person",
			"preferredUsername": %q,
			"inbox": %q,
			"endpoints": {"sharedInbox": %q},
			"publicKey": {"id": %q, "owner": %q, "publicKeyPem": %q}
		}`, userUrl, handle, userUrl+"/inbox", "http://"+r.Host+"/inbox",
			userUrl+"#main-key", userUrl, callerPubKey1)
	}))
}

func Test_Resolver_FreshActor_ServedFromCache(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	actor := makeCallerActor(callerHost, callerName, callerPubKey1)
	h.mockRepo.EXPECT().GetRemoteActor(actor.UserUrl).Return(actor, nil)

	res, err := resolver.ResolveUri(actor.UserUrl, false)
	assert.Nil(t, err)
	assert.Equal(t, actor, res)
}

func Test_Resolver_GoneActor_ServedFromCache(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	goneAt := time.Now().UTC().Add(-72 * time.Hour)
	actor := makeCallerActor(callerHost, callerName, callerPubKey1)
	actor.FetchedAt = time.Now().UTC().Add(-30 * 24 * time.Hour)
	actor.GoneDetectedAt = &goneAt

	// Even requireFresh doesn't reach out for a gone actor
	h.mockRepo.EXPECT().GetRemoteActor(actor.UserUrl).Return(actor, nil)

	res, err := resolver.ResolveUri(actor.UserUrl, true)
	assert.Nil(t, err)
	assert.Equal(t, actor, res)
}

func Test_Resolver_KnownHandle_SkipsWebfinger(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	actor := makeCallerActor(callerHost, callerName, callerPubKey1)
	h.mockRepo.EXPECT().GetRemoteActorByHandle(callerName, callerHost).Return(actor, nil)
	h.mockRepo.EXPECT().GetRemoteActor(actor.UserUrl).Return(actor, nil)

	res, err := resolver.Resolve("@"+callerName+"@"+callerHost, false)
	assert.Nil(t, err)
	assert.Equal(t, actor, res)
}

func Test_Resolver_StaleActor_ServedNow_RefreshedBehind(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()
	stubOutboundObservers(ctrl, h.mockMetrics)

	ts := serveActorDoc(callerName)
	defer ts.Close()
	userUrl := ts.URL + "/users/" + callerName

	stale := makeCallerActor(callerHost, callerName, callerPubKey1)
	stale.UserUrl = userUrl
	stale.FetchedAt = time.Now().UTC().Add(-48 * time.Hour)

	// Once for the resolve, once inside the background fetch
	h.mockRepo.EXPECT().GetRemoteActor(userUrl).Return(stale, nil).Times(2)
	refreshed := make(chan struct{})
	h.mockRepo.EXPECT().UpsertRemoteActor(gomock.Cond(func(x any) bool {
		a, ok := x.(*dal.RemoteActor)
		return ok && a.UserUrl == userUrl && a.Handle == callerName
	})).DoAndReturn(func(*dal.RemoteActor) error {
		close(refreshed)
		return nil
	})
	h.mockMetrics.EXPECT().ActorFetch("ok")

	res, err := resolver.ResolveUri(userUrl, false)
	assert.Nil(t, err)
	assert.Equal(t, stale, res)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a background refresh of the stale actor")
	}
}

func Test_Resolver_UnknownActor_FetchedAndStored(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()
	stubOutboundObservers(ctrl, h.mockMetrics)

	ts := serveActorDoc(callerName)
	defer ts.Close()
	userUrl := ts.URL + "/users/" + callerName

	h.mockRepo.EXPECT().GetRemoteActor(userUrl).Return(nil, nil).Times(2)
	h.mockRepo.EXPECT().UpsertRemoteActor(gomock.Cond(func(x any) bool {
		a, ok := x.(*dal.RemoteActor)
		return ok && a.UserUrl == userUrl && a.Handle == callerName &&
			a.Inbox == userUrl+"/inbox" && a.SharedInbox != "" && a.PubKey == callerPubKey1
	})).Return(nil)
	h.mockMetrics.EXPECT().ActorFetch("ok")

	res, err := resolver.ResolveUri(userUrl, false)
	assert.Nil(t, err)
	assert.Equal(t, callerName, res.Handle)
	assert.False(t, res.FetchedAt.IsZero())
}

func Test_Resolver_RequireFresh_BypassesFreshCache(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()
	stubOutboundObservers(ctrl, h.mockMetrics)

	ts := serveActorDoc(callerName)
	defer ts.Close()
	userUrl := ts.URL + "/users/" + callerName

	// Cached an hour ago: well within the TTL, but the caller insists
	cached := makeCallerActor(callerHost, callerName, callerPubKey1)
	cached.UserUrl = userUrl
	cached.Name = "old-display-name"
	cached.FetchedAt = time.Now().UTC().Add(-time.Hour)

	// Once for the resolve, once inside the fetch
	h.mockRepo.EXPECT().GetRemoteActor(userUrl).Return(cached, nil).Times(2)
	h.mockRepo.EXPECT().UpsertRemoteActor(gomock.Cond(func(x any) bool {
		a, ok := x.(*dal.RemoteActor)
		return ok && a.UserUrl == userUrl && a.Handle == callerName
	})).Return(nil)
	h.mockMetrics.EXPECT().ActorFetch("ok")

	res, err := resolver.ResolveUri(userUrl, true)
	assert.Nil(t, err)
	assert.NotEqual(t, cached.Name, res.Name)
	assert.Less(t, time.Since(res.FetchedAt), time.Minute)
}

func Test_Resolver_PermanentFailureAtCeiling_MarksGone(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()
	stubOutboundObservers(ctrl, h.mockMetrics)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer ts.Close()
	userUrl := ts.URL + "/users/" + callerName

	failing := makeCallerActor(callerHost, callerName, callerPubKey1)
	failing.UserUrl = userUrl
	failing.FetchedAt = time.Now().UTC().Add(-48 * time.Hour)
	failing.FetchFailureCount = h.cfg.Federation.FetchFailureCeiling - 1

	h.mockRepo.EXPECT().GetRemoteActor(userUrl).Return(failing, nil).Times(2)
	h.mockMetrics.EXPECT().ActorFetch("error")
	h.mockRepo.EXPECT().UpdateRemoteActorFetchFailure(userUrl,
		h.cfg.Federation.FetchFailureCeiling, gomock.Any(), gomock.Any(),
		gomock.Cond(func(x any) bool {
			goneAt, ok := x.(*time.Time)
			return ok && goneAt != nil
		})).Return(nil)

	res, err := resolver.ResolveUri(userUrl, true)
	assert.Nil(t, res)
	assert.NotNil(t, err)
}

func Test_Resolver_TransientFailure_CountedNotGone(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()
	stubOutboundObservers(ctrl, h.mockMetrics)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	userUrl := ts.URL + "/users/" + callerName

	h.mockRepo.EXPECT().GetRemoteActor(userUrl).Return(nil, nil).Times(2)
	h.mockMetrics.EXPECT().ActorFetch("error")
	h.mockRepo.EXPECT().UpdateRemoteActorFetchFailure(userUrl, 1, gomock.Any(),
		gomock.Any(), gomock.Nil()).Return(nil)

	res, err := resolver.ResolveUri(userUrl, false)
	assert.Nil(t, res)
	assert.NotNil(t, err)
}

func Test_Resolver_RecordDeliveryFailure_BelowCeiling(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	actor := makeCallerActor(callerHost, callerName, callerPubKey1)
	actor.FetchFailureCount = 1

	h.mockRepo.EXPECT().GetRemoteActor(actor.UserUrl).Return(actor, nil)
	h.mockRepo.EXPECT().UpdateRemoteActorFetchFailure(actor.UserUrl, 2, gomock.Any(),
		gomock.Any(), gomock.Nil()).Return(nil)

	resolver.RecordDeliveryFailure(actor.UserUrl, true,
		&logic.SendStatusError{Status: 410, Body: "gone"})
}

func Test_Resolver_RecordDeliveryFailure_AtCeiling_MarksGone(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	actor := makeCallerActor(callerHost, callerName, callerPubKey1)
	actor.FetchFailureCount = h.cfg.Federation.FetchFailureCeiling - 1

	h.mockRepo.EXPECT().GetRemoteActor(actor.UserUrl).Return(actor, nil)
	h.mockRepo.EXPECT().UpdateRemoteActorFetchFailure(actor.UserUrl,
		h.cfg.Federation.FetchFailureCeiling, gomock.Any(), gomock.Any(),
		gomock.Cond(func(x any) bool {
			goneAt, ok := x.(*time.Time)
			return ok && goneAt != nil
		})).Return(nil)

	resolver.RecordDeliveryFailure(actor.UserUrl, true,
		&logic.SendStatusError{Status: 410, Body: "gone"})
}

func Test_Resolver_RecordDeliveryFailure_UnknownActor_NoOp(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	userUrl := fmt.Sprintf("https://%s/users/nobody", callerHost)
	h.mockRepo.EXPECT().GetRemoteActor(userUrl).Return(nil, nil)

	resolver.RecordDeliveryFailure(userUrl, true, nil)
}

func Test_Resolver_ClearFetchStatus(t *testing.T) {

	ctrl, h, resolver := setupResolverTest(t)
	defer ctrl.Finish()

	actor := makeCallerActor(callerHost, callerName, callerPubKey1)
	h.mockRepo.EXPECT().ClearRemoteActorFetchStatus(actor.UserUrl).Return(nil)

	err := resolver.ClearFetchStatus(actor.UserUrl)
	assert.Nil(t, err)
}
