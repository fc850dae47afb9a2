package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"plume/dal"
	"plume/logic"
	"plume/shared"
)

// apiHandlerGroup is the operator's surface: account management, follows on
// behalf of local users, instance blocks, and cache maintenance.
type apiHandlerGroup struct {
	cfg          *shared.Config
	logger       shared.ILogger
	repo         dal.IRepo
	keyStore     logic.IKeyStore
	resolver     logic.IActorResolver
	instanceInfo logic.IInstanceInfo
	blockList    logic.IBlockList
	udir         logic.IUserDirectory
	broadcaster  logic.IBroadcaster
	idb          shared.IdBuilder
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore logic.IKeyStore,
	resolver logic.IActorResolver,
	instanceInfo logic.IInstanceInfo,
	blockList logic.IBlockList,
	udir logic.IUserDirectory,
	broadcaster logic.IBroadcaster,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:          cfg,
		logger:       logger,
		repo:         repo,
		keyStore:     keyStore,
		resolver:     resolver,
		instanceInfo: instanceInfo,
		blockList:    blockList,
		udir:         udir,
		broadcaster:  broadcaster,
		idb:          shared.IdBuilder{Host: cfg.Host},
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/blocks", func(w http.ResponseWriter, r *http.Request) { hg.getBlocks(w, r) }},
		{"POST", "/blocks", func(w http.ResponseWriter, r *http.Request) { hg.postBlocks(w, r) }},
		{"DELETE", "/blocks/{host}", func(w http.ResponseWriter, r *http.Request) { hg.deleteBlock(w, r) }},
		{"GET", "/actors", func(w http.ResponseWriter, r *http.Request) { hg.getActor(w, r) }},
		{"POST", "/actors/clear-status", func(w http.ResponseWriter, r *http.Request) { hg.postActorClearStatus(w, r) }},
		{"GET", "/instances/{host}", func(w http.ResponseWriter, r *http.Request) { hg.getInstance(w, r) }},
		{"POST", "/instances/{host}/refresh", func(w http.ResponseWriter, r *http.Request) { hg.postInstanceRefresh(w, r) }},
		{"POST", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.postAccounts(w, r) }},
		{"POST", "/follows", func(w http.ResponseWriter, r *http.Request) { hg.postFollows(w, r) }},
		{"DELETE", "/follows", func(w http.ResponseWriter, r *http.Request) { hg.deleteFollows(w, r) }},
		{"POST", "/followers/accept", func(w http.ResponseWriter, r *http.Request) { hg.postFollowerDecision(w, r, true) }},
		{"POST", "/followers/reject", func(w http.ResponseWriter, r *http.Request) { hg.postFollowerDecision(w, r, false) }},
		{"POST", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.postNotes(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseJsonBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request, obj any) bool {
	bodyBytes := readBody(logger, w, r)
	if bodyBytes == nil {
		return false
	}
	if err := json.Unmarshal(bodyBytes, obj); err != nil {
		logger.Infof("Invalid JSON in API request body: %v", err)
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func (hg *apiHandlerGroup) getBlocks(w http.ResponseWriter, r *http.Request) {

	blocks, err := hg.blockList.List()
	if err != nil {
		hg.logger.Errorf("Failed to list instance blocks: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, blocks)
}

func (hg *apiHandlerGroup) postBlocks(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/blocks: Request received")

	var req struct {
		Host   string `json:"host"`
		Reason string `json:"reason"`
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}
	if req.Host == "" {
		writeErrorResponse(w, "Missing 'host'", http.StatusBadRequest)
		return
	}
	if err := hg.blockList.Block(req.Host, req.Reason, "api"); err != nil {
		hg.logger.Errorf("Failed to block instance %s: %v", req.Host, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) deleteBlock(w http.ResponseWriter, r *http.Request) {

	host := mux.Vars(r)["host"]
	hg.logger.Infof("DELETE /api/blocks/%s: Request received", host)

	if err := hg.blockList.Unblock(host); err != nil {
		hg.logger.Errorf("Failed to unblock instance %s: %v", host, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) getActor(w http.ResponseWriter, r *http.Request) {

	actorUrl := r.URL.Query().Get("url")
	if actorUrl == "" {
		writeErrorResponse(w, "Missing 'url' param", http.StatusBadRequest)
		return
	}
	actor, err := hg.repo.GetRemoteActor(actorUrl)
	if err != nil {
		hg.logger.Errorf("Failed to get remote actor %s: %v", actorUrl, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if actor == nil {
		writeErrorResponse(w, "No such actor", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, actor)
}

func (hg *apiHandlerGroup) postActorClearStatus(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/actors/clear-status: Request received")

	var req struct {
		UserUrl string `json:"userUrl"`
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}
	if req.UserUrl == "" {
		writeErrorResponse(w, "Missing 'userUrl'", http.StatusBadRequest)
		return
	}
	if err := hg.resolver.ClearFetchStatus(req.UserUrl); err != nil {
		hg.logger.Errorf("Failed to clear fetch status of %s: %v", req.UserUrl, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) getInstance(w http.ResponseWriter, r *http.Request) {

	host := mux.Vars(r)["host"]
	ri, err := hg.instanceInfo.GetInfo(host)
	if err != nil {
		hg.logger.Infof("Failed to get instance info for %s: %v", host, err)
		writeErrorResponse(w, "Instance info not available", http.StatusBadGateway)
		return
	}
	if ri == nil {
		writeErrorResponse(w, "No such instance", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, ri)
}

func (hg *apiHandlerGroup) postInstanceRefresh(w http.ResponseWriter, r *http.Request) {

	host := mux.Vars(r)["host"]
	hg.logger.Infof("POST /api/instances/%s/refresh: Request received", host)

	ri, err := hg.instanceInfo.ForceRefresh(host)
	if err != nil {
		hg.logger.Infof("Forced refresh of %s failed: %v", host, err)
		writeErrorResponse(w, "Refresh failed", http.StatusBadGateway)
		return
	}
	writeJsonResponse(hg.logger, w, ri)
}

func (hg *apiHandlerGroup) postAccounts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/accounts: Request received")

	var req struct {
		Handle  string `json:"handle"`
		Name    string `json:"name"`
		Summary string `json:"summary"`
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}
	req.Handle = strings.ToLower(strings.TrimSpace(req.Handle))
	if req.Handle == "" {
		writeErrorResponse(w, "Missing 'handle'", http.StatusBadRequest)
		return
	}

	pubKey, privKey, err := hg.keyStore.MakeKeyPair()
	if err != nil {
		hg.logger.Errorf("Failed to generate key pair: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	isNew, err := hg.repo.AddAccountIfNotExist(&dal.Account{
		CreatedAt: time.Now().UTC(),
		UserUrl:   hg.idb.UserUrl(req.Handle),
		Handle:    req.Handle,
		Name:      req.Name,
		Summary:   req.Summary,
		PubKey:    pubKey,
	}, privKey)
	if err != nil {
		hg.logger.Errorf("Failed to create account '%s': %v", req.Handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !isNew {
		writeErrorResponse(w, "Account already exists", http.StatusConflict)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) postFollows(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/follows: Request received")

	var req struct {
		User   string `json:"user"`
		Target string `json:"target"` // handle or actor URI
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}
	if req.User == "" || req.Target == "" {
		writeErrorResponse(w, "Missing 'user' or 'target'", http.StatusBadRequest)
		return
	}

	target, err := hg.resolver.Resolve(req.Target, false)
	if err != nil {
		hg.logger.Infof("Failed to resolve follow target %s: %v", req.Target, err)
		writeErrorResponse(w, "Cannot resolve target", http.StatusBadGateway)
		return
	}
	if target.GoneDetectedAt != nil {
		writeErrorResponse(w, "Target actor is gone", http.StatusGone)
		return
	}
	requestId, err := hg.udir.SendFollow(req.User, target)
	if err != nil {
		hg.logger.Errorf("Failed to send follow: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]string{"requestId": requestId})
}

func (hg *apiHandlerGroup) deleteFollows(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("DELETE /api/follows: Request received")

	var req struct {
		User   string `json:"user"`
		Target string `json:"target"`
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}
	target, err := hg.resolver.Resolve(req.Target, false)
	if err != nil {
		hg.logger.Infof("Failed to resolve unfollow target %s: %v", req.Target, err)
		writeErrorResponse(w, "Cannot resolve target", http.StatusBadGateway)
		return
	}
	if err = hg.udir.SendUnfollow(req.User, target); err != nil {
		hg.logger.Errorf("Failed to send unfollow: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) postFollowerDecision(w http.ResponseWriter, r *http.Request, accept bool) {

	var req struct {
		User            string `json:"user"`
		FollowerUserUrl string `json:"followerUserUrl"`
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}

	followers, err := hg.repo.GetFollowersByUser(req.User, false)
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	var flwr *dal.FollowerInfo
	for _, f := range followers {
		if f.UserUrl == req.FollowerUserUrl {
			flwr = f
		}
	}
	if flwr == nil {
		writeErrorResponse(w, "No such follower", http.StatusNotFound)
		return
	}

	if accept {
		err = hg.udir.AcceptFollower(flwr.RequestId, flwr.UserUrl, flwr.UserInbox, req.User)
	} else {
		err = hg.udir.RejectFollower(flwr.RequestId, flwr.UserUrl, flwr.UserInbox, req.User)
	}
	if err != nil {
		hg.logger.Errorf("Failed to settle follower: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) postNotes(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/notes: Request received")

	var req struct {
		User    string `json:"user"`
		Content string `json:"content"`
	}
	if !parseJsonBody(hg.logger, w, r, &req) {
		return
	}
	if req.User == "" || req.Content == "" {
		writeErrorResponse(w, "Missing 'user' or 'content'", http.StatusBadRequest)
		return
	}
	noteUri, err := hg.broadcaster.SendNoteToFollowers(req.User, req.Content)
	if err != nil {
		hg.logger.Errorf("Failed to broadcast note: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]string{"noteUri": noteUri})
}
