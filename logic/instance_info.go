package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"plume/dal"
	"plume/dto"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_instance_info.go -package mocks plume/logic IInstanceInfo

// IInstanceInfo resolves server-level metadata per host through nodeinfo
// discovery, with TTL caching and a circuit breaker: once a host has failed
// five times in a row, no automatic fetch happens again until ForceRefresh.
type IInstanceInfo interface {
	GetInfo(host string) (*dal.RemoteInstance, error)
	GetInfoBatch(hosts []string) (map[string]*dal.RemoteInstance, error)
	ForceRefresh(host string) (*dal.RemoteInstance, error)
}

type instanceInfo struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	userAgent shared.IUserAgent
	metrics   IMetrics
	muFetch   sync.Mutex
	perHost   map[string]*sync.Mutex
}

func NewInstanceInfo(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IInstanceInfo {
	return &instanceInfo{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		userAgent: userAgent,
		metrics:   metrics,
		perHost:   make(map[string]*sync.Mutex),
	}
}

func (ii *instanceInfo) GetInfo(host string) (*dal.RemoteInstance, error) {

	host = strings.ToLower(host)
	ri, err := ii.repo.GetRemoteInstance(host)
	if err != nil {
		return nil, err
	}
	if ri != nil {
		// Circuit breaker: serve whatever we have, no more automatic fetches
		if ri.FetchErrorCount >= ii.cfg.Federation.FetchFailureCeiling {
			return ri, nil
		}
		ttl := time.Duration(ii.cfg.Federation.InstanceCacheHours) * time.Hour
		if !ri.LastFetchedAt.IsZero() && time.Since(ri.LastFetchedAt) < ttl {
			return ri, nil
		}
	}
	return ii.fetchInstance(host)
}

// GetInfoBatch returns all cached entries right away and refreshes the
// stale or missing ones in the background, at most RefreshBatchSize fetches
// in flight, so a single fan-out cannot exhaust outbound connections.
func (ii *instanceInfo) GetInfoBatch(hosts []string) (map[string]*dal.RemoteInstance, error) {

	res := make(map[string]*dal.RemoteInstance)
	var toRefresh []string

	ttl := time.Duration(ii.cfg.Federation.InstanceCacheHours) * time.Hour
	for _, host := range hosts {
		host = strings.ToLower(host)
		ri, err := ii.repo.GetRemoteInstance(host)
		if err != nil {
			return nil, err
		}
		res[host] = ri
		if ri != nil && ri.FetchErrorCount >= ii.cfg.Federation.FetchFailureCeiling {
			continue
		}
		if ri == nil || ri.LastFetchedAt.IsZero() || time.Since(ri.LastFetchedAt) >= ttl {
			toRefresh = append(toRefresh, host)
		}
	}

	if len(toRefresh) != 0 {
		go func() {
			var eg errgroup.Group
			eg.SetLimit(ii.cfg.Federation.RefreshBatchSize)
			for _, host := range toRefresh {
				host := host
				eg.Go(func() error {
					if _, err := ii.fetchInstance(host); err != nil {
						ii.logger.Infof("Background refresh of instance %s failed: %v", host, err)
					}
					return nil
				})
			}
			_ = eg.Wait()
		}()
	}

	return res, nil
}

// ForceRefresh is the operator override: it resets the error counter first,
// so a tripped breaker fetches again.
func (ii *instanceInfo) ForceRefresh(host string) (*dal.RemoteInstance, error) {

	host = strings.ToLower(host)
	ii.logger.Infof("Forcing instance info refresh for %s", host)
	if err := ii.repo.ResetRemoteInstanceErrors(host); err != nil {
		return nil, err
	}
	return ii.fetchInstance(host)
}

func (ii *instanceInfo) hostMutex(host string) *sync.Mutex {
	ii.muFetch.Lock()
	defer ii.muFetch.Unlock()
	mu, ok := ii.perHost[host]
	if !ok {
		mu = &sync.Mutex{}
		ii.perHost[host] = mu
	}
	return mu
}

func (ii *instanceInfo) fetchInstance(host string) (*dal.RemoteInstance, error) {

	mu := ii.hostMutex(host)
	mu.Lock()
	defer mu.Unlock()

	// Re-check after taking the lock; another caller may have just fetched
	ri, err := ii.repo.GetRemoteInstance(host)
	if err != nil {
		return nil, err
	}
	if ri != nil {
		if ri.FetchErrorCount >= ii.cfg.Federation.FetchFailureCeiling {
			return ri, nil
		}
		ttl := time.Duration(ii.cfg.Federation.InstanceCacheHours) * time.Hour
		if !ri.LastFetchedAt.IsZero() && time.Since(ri.LastFetchedAt) < ttl {
			return ri, nil
		}
	}

	obs := ii.metrics.StartApubRequestOut("nodeinfo")
	defer obs.Finish()

	ni, fetchErr := ii.getNodeInfo(host)
	if fetchErr != nil {
		errCount := 1
		if ri != nil {
			errCount = ri.FetchErrorCount + 1
		}
		ii.metrics.InstanceFetch("error")
		if err = ii.repo.UpdateRemoteInstanceFetchFailure(host, errCount, fetchErr.Error()); err != nil {
			return nil, err
		}
		ii.logger.Infof("Instance info fetch failed for %s (%d consecutive): %v", host, errCount, fetchErr)
		return ri, fetchErr
	}

	res := &dal.RemoteInstance{
		Host:          host,
		Software:      ni.Software.Name,
		Version:       ni.Software.Version,
		OpenRegs:      ni.OpenRegs,
		UserCount:     ni.Usage.Users.Total,
		PostCount:     ni.Usage.LocalPosts,
		LastFetchedAt: time.Now().UTC(),
	}
	if err = ii.repo.UpsertRemoteInstance(res); err != nil {
		return nil, err
	}
	ii.metrics.InstanceFetch("ok")
	return res, nil
}

// getNodeInfo runs the two discovery hops: the well-known document first,
// then the schema 2.x endpoint it points at.
func (ii *instanceInfo) getNodeInfo(host string) (*dto.NodeInfo, error) {

	wellKnownUrl := fmt.Sprintf("https://%s/.well-known/nodeinfo", host)
	var wk dto.NodeInfoWellKnown
	if err := ii.getJson(wellKnownUrl, &wk); err != nil {
		return nil, err
	}

	endpoint := ""
	for _, link := range wk.Links {
		if link.Rel == dto.NodeInfoRel20 || link.Rel == dto.NodeInfoRel21 {
			endpoint = link.Href
		}
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no nodeinfo 2.x link advertised by %s", host)
	}

	var ni dto.NodeInfo
	if err := ii.getJson(endpoint, &ni); err != nil {
		return nil, err
	}
	return &ni, nil
}

func (ii *instanceInfo) getJson(docUrl string, obj any) error {

	client := http.Client{}
	client.Timeout = time.Second * time.Duration(ii.cfg.Federation.RequestTimeoutSec)

	req, err := http.NewRequest("GET", docUrl, nil)
	if err != nil {
		return err
	}
	ii.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", docUrl, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(bodyBytes, obj)
}
