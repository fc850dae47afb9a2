package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/semaphore"
	"plume/dal"
	"plume/dto"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_resolver.go -package mocks plume/logic IActorResolver

// IActorResolver turns handles and actor URIs into cached remote actor
// records, fetching and verifying remotely when the cache is stale. Each
// actor moves through an explicit lifecycle: never fetched, fresh, stale,
// soft-failing, and finally gone once repeated failures end in a permanent
// absence signal. Gone actors are only revived by ClearFetchStatus.
type IActorResolver interface {
	Resolve(handleOrUri string, requireFresh bool) (*dal.RemoteActor, error)
	ResolveUri(userUrl string, requireFresh bool) (*dal.RemoteActor, error)
	ClearFetchStatus(userUrl string) error
	RecordDeliveryFailure(userUrl string, permanent bool, cause error)
}

const webfingerCacheMinutes = 60

type actorResolver struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	userAgent  shared.IUserAgent
	metrics    IMetrics
	wfCache    *cache.Cache  // handle -> actor URI
	muFetch    sync.Mutex    // guards perActor
	perActor   map[string]*sync.Mutex
	refreshSem *semaphore.Weighted
	refreshing sync.Map // userUrl -> struct{}; dedupes background refreshes
}

func NewActorResolver(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IActorResolver {
	return &actorResolver{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		userAgent:  userAgent,
		metrics:    metrics,
		wfCache:    cache.New(webfingerCacheMinutes*time.Minute, 2*webfingerCacheMinutes*time.Minute),
		perActor:   make(map[string]*sync.Mutex),
		refreshSem: semaphore.NewWeighted(int64(cfg.Federation.RefreshBatchSize)),
	}
}

func (r *actorResolver) Resolve(handleOrUri string, requireFresh bool) (*dal.RemoteActor, error) {

	if strings.HasPrefix(handleOrUri, "https://") || strings.HasPrefix(handleOrUri, "http://") {
		return r.ResolveUri(handleOrUri, requireFresh)
	}

	user, host, ok := shared.ParseMoniker(handleOrUri)
	if !ok {
		return nil, fmt.Errorf("not a handle or actor URI: %s", handleOrUri)
	}

	// A known actor under this handle saves us the account discovery hop
	if actor, err := r.repo.GetRemoteActorByHandle(user, host); err != nil {
		return nil, err
	} else if actor != nil {
		return r.ResolveUri(actor.UserUrl, requireFresh)
	}

	actorUri, err := r.webfingerLookup(user, host)
	if err != nil {
		return nil, err
	}
	return r.ResolveUri(actorUri, requireFresh)
}

func (r *actorResolver) ResolveUri(userUrl string, requireFresh bool) (*dal.RemoteActor, error) {

	actor, err := r.repo.GetRemoteActor(userUrl)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(r.cfg.Federation.ActorCacheHours) * time.Hour
	if actor != nil {
		// Gone actors are served from cache until an operator intervenes
		if actor.GoneDetectedAt != nil {
			return actor, nil
		}
		everFetched := !actor.FetchedAt.IsZero()
		if everFetched && !requireFresh {
			if time.Since(actor.FetchedAt) < ttl {
				return actor, nil
			}
			// Stale: serve the cached value now, refresh in the background
			r.scheduleRefresh(userUrl)
			return actor, nil
		}
	}

	// A requireFresh caller only accepts a fetch younger than this call
	freshSince := time.Now().Add(-ttl)
	if requireFresh {
		freshSince = time.Now()
	}
	return r.fetchActor(userUrl, freshSince)
}

func (r *actorResolver) ClearFetchStatus(userUrl string) error {
	r.logger.Infof("Clearing fetch status of actor %s", userUrl)
	return r.repo.ClearRemoteActorFetchStatus(userUrl)
}

// RecordDeliveryFailure lets the delivery engine feed an actor's health the
// same way fetch failures do, so an inbox that answers "gone" pushes the
// actor toward the gone state without a resolve cycle.
func (r *actorResolver) RecordDeliveryFailure(userUrl string, permanent bool, cause error) {

	actor, err := r.repo.GetRemoteActor(userUrl)
	if err != nil || actor == nil {
		return
	}
	failCount := actor.FetchFailureCount + 1
	now := time.Now().UTC()
	var goneAt *time.Time
	if permanent && failCount >= r.cfg.Federation.FetchFailureCeiling {
		goneAt = &now
	}
	errText := ""
	if cause != nil {
		errText = cause.Error()
	}
	if err = r.repo.UpdateRemoteActorFetchFailure(userUrl, failCount, now, errText, goneAt); err != nil {
		r.logger.Errorf("Failed to record delivery failure for %s: %v", userUrl, err)
	}
}

func (r *actorResolver) actorMutex(userUrl string) *sync.Mutex {
	r.muFetch.Lock()
	defer r.muFetch.Unlock()
	mu, ok := r.perActor[userUrl]
	if !ok {
		mu = &sync.Mutex{}
		r.perActor[userUrl] = mu
	}
	return mu
}

func (r *actorResolver) scheduleRefresh(userUrl string) {
	if _, loaded := r.refreshing.LoadOrStore(userUrl, struct{}{}); loaded {
		return
	}
	go func() {
		defer r.refreshing.Delete(userUrl)
		if err := r.refreshSem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer r.refreshSem.Release(1)
		ttl := time.Duration(r.cfg.Federation.ActorCacheHours) * time.Hour
		if _, err := r.fetchActor(userUrl, time.Now().Add(-ttl)); err != nil {
			r.logger.Infof("Background refresh of actor %s failed: %v", userUrl, err)
		}
	}()
}

// fetchActor performs one network fetch of the actor document, updating the
// health fields either way. The per-actor mutex keeps concurrent resolves of
// one actor down to a single request. freshSince bounds what cached record
// can still satisfy the caller: a fetch that completed while we waited for
// the lock counts, an older one doesn't.
func (r *actorResolver) fetchActor(userUrl string, freshSince time.Time) (*dal.RemoteActor, error) {

	mu := r.actorMutex(userUrl)
	mu.Lock()
	defer mu.Unlock()

	// Someone else may have fetched while we waited for the lock
	actor, err := r.repo.GetRemoteActor(userUrl)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		if actor.GoneDetectedAt != nil {
			return actor, nil
		}
		if !actor.FetchedAt.IsZero() && actor.FetchedAt.After(freshSince) {
			return actor, nil
		}
	}

	obs := r.metrics.StartApubRequestOut("actor")
	defer obs.Finish()

	info, status, fetchErr := r.getActorDoc(userUrl)
	now := time.Now().UTC()

	if fetchErr != nil {
		failCount := 1
		if actor != nil {
			failCount = actor.FetchFailureCount + 1
		}
		var goneAt *time.Time
		if failCount >= r.cfg.Federation.FetchFailureCeiling &&
			isPermanentStatus(r.cfg.Federation.PermanentStatusCodes, status) {
			goneAt = &now
			r.logger.Infof("Actor detected as gone: %s", userUrl)
		}
		r.metrics.ActorFetch("error")
		if err = r.repo.UpdateRemoteActorFetchFailure(userUrl, failCount, now, fetchErr.Error(), goneAt); err != nil {
			return nil, err
		}
		return nil, fetchErr
	}

	host, err := shared.GetHostName(info.Id)
	if err != nil {
		return nil, err
	}
	res := &dal.RemoteActor{
		UserUrl:            info.Id,
		Handle:             info.PreferredUserName,
		Host:               host,
		Name:               info.Name,
		Inbox:              info.Inbox,
		SharedInbox:        info.Endpoints.SharedInbox,
		MovedTo:            info.MovedTo,
		AlsoKnownAs:        strings.Join(info.AlsoKnownAs, " "),
		PubKey:             info.PublicKey.PublicKeyPem,
		FetchedAt:          now,
		LastFetchAttemptAt: now,
	}
	if err = r.repo.UpsertRemoteActor(res); err != nil {
		return nil, err
	}
	r.metrics.ActorFetch("ok")
	return res, nil
}

// getActorDoc is the raw HTTP GET of the actor document. The returned status
// is 0 when no response was received at all.
func (r *actorResolver) getActorDoc(userUrl string) (*dto.UserInfo, int, error) {

	client := http.Client{}
	client.Timeout = time.Second * time.Duration(r.cfg.Federation.RequestTimeoutSec)

	req, err := http.NewRequest("GET", userUrl, nil)
	if err != nil {
		return nil, 0, err
	}
	r.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/activity+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("failed to get actor document; got status %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	var info dto.UserInfo
	if err = json.Unmarshal(bodyBytes, &info); err != nil {
		return nil, resp.StatusCode, err
	}
	if info.Id == "" || info.Inbox == "" || info.PublicKey.PublicKeyPem == "" {
		return nil, resp.StatusCode, fmt.Errorf("actor document is missing required fields: %s", userUrl)
	}
	return &info, resp.StatusCode, nil
}

// webfingerLookup is the account discovery hop: handle -> canonical actor
// URI. Results are memoized for an hour; the actor document itself carries
// the long-lived state.
func (r *actorResolver) webfingerLookup(user, host string) (string, error) {

	cacheKey := user + "@" + host
	if uri, found := r.wfCache.Get(cacheKey); found {
		return uri.(string), nil
	}

	obs := r.metrics.StartApubRequestOut("webfinger")
	defer obs.Finish()

	wfUrl := fmt.Sprintf("https://%s/.well-known/webfinger?resource=acct:%s",
		host, url.QueryEscape(user+"@"+host))

	client := http.Client{}
	client.Timeout = time.Second * time.Duration(r.cfg.Federation.RequestTimeoutSec)

	req, err := http.NewRequest("GET", wfUrl, nil)
	if err != nil {
		return "", err
	}
	r.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/jrd+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("webfinger lookup for %s failed; got status %d", cacheKey, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var wf dto.WebfingerResp
	if err = json.Unmarshal(bodyBytes, &wf); err != nil {
		return "", err
	}
	selfLink := wf.SelfLink()
	if selfLink == "" {
		return "", fmt.Errorf("webfinger response for %s has no self link", cacheKey)
	}

	r.wfCache.Set(cacheKey, selfLink, cache.DefaultExpiration)
	return selfLink, nil
}
