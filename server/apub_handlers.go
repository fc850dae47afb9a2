package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"plume/dal"
	"plume/dto"
	"plume/logic"
	"plume/shared"
)

// Groups together the handlers needed to implement an ActivityPub server.
type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	sigChecker logic.IHttpSigChecker
	blockList  logic.IBlockList
	udir       logic.IUserDirectory
	inbox      logic.IInbox
	repo       dal.IRepo
	idb        shared.IdBuilder
	reResource *regexp.Regexp
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	sigChecker logic.IHttpSigChecker,
	blockList logic.IBlockList,
	udir logic.IUserDirectory,
	ibox logic.IInbox,
	repo dal.IRepo,
) IHandlerGroup {
	res := apubHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		sigChecker: sigChecker,
		blockList:  blockList,
		udir:       udir,
		inbox:      ibox,
		repo:       repo,
		idb:        shared.IdBuilder{Host: cfg.Host},
	}
	res.reResource = regexp.MustCompile("^acct:([^@]+)@([^@]+)$")
	return &res
}

func (hg *apubHandlerGroup) Prefix() string {
	return ""
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/.well-known/nodeinfo", func(w http.ResponseWriter, r *http.Request) { hg.getNodeInfoWellKnown(w, r) }},
		{"GET", "/nodeinfo/2.0", func(w http.ResponseWriter, r *http.Request) { hg.getNodeInfo(w, r) }},
		{"GET", "/u/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/u/{user}/outbox", func(w http.ResponseWriter, r *http.Request) { hg.getUserOutbox(w, r) }},
		{"GET", "/u/{user}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowers(w, r) }},
		{"GET", "/u/{user}/following", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowing(w, r) }},
		{"GET", "/u/{user}/status/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getUserStatus(w, r) }},
		{"POST", "/u/{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webfinger GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resourceParam := r.URL.Query().Get("resource")
	groups := hg.reResource.FindStringSubmatch(resourceParam)
	if groups == nil {
		hg.logger.Infof("Webfinger: Invalid request; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "Missing or invalid 'resource' param", http.StatusBadRequest)
		return
	}
	user, host := groups[1], groups[2]
	if !strings.EqualFold(host, hg.cfg.Host) {
		hg.logger.Infof("Webfinger: Request for foreign host '%s'", host)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	resp, err := hg.udir.GetWebfinger(user)
	if err != nil {
		hg.logger.Errorf("Webfinger: Error retrieving user '%s': %v", user, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if resp == nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getNodeInfoWellKnown(w http.ResponseWriter, r *http.Request) {

	resp := dto.NodeInfoWellKnown{
		Links: []dto.NodeInfoLink{
			{Rel: dto.NodeInfoRel20, Href: hg.idb.SiteUrl() + "/nodeinfo/2.0"},
		},
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getNodeInfo(w http.ResponseWriter, r *http.Request) {

	userCount, err := hg.repo.GetAccountCount()
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	postCount, err := hg.repo.GetTotalLocalNoteCount()
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := dto.NodeInfo{
		Version: "2.0",
		Software: dto.NodeInfoSoftware{
			Name:    "plume",
			Version: shared.GetVersion(),
		},
		Usage: dto.NodeInfoUsage{
			Users:      dto.NodeInfoUsers{Total: userCount},
			LocalPosts: postCount,
		},
		OpenRegs: false,
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	userInfo, err := hg.udir.GetUserInfo(userName)
	if err != nil {
		hg.logger.Errorf("Error retrieving user '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if userInfo == nil {
		hg.logger.Infof("Info requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/activity+json")
	respJson, _ := json.Marshal(userInfo)
	_, _ = w.Write(respJson)
}

func (hg *apubHandlerGroup) getUserStatus(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user status GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/status")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	statusId := mux.Vars(r)["id"]

	idVal, err := strconv.ParseUint(statusId, 10, 64)
	if err != nil {
		writeErrorResponse(w, "Invalid status id", http.StatusBadRequest)
		return
	}
	noteUri := hg.idb.UserStatus(userName, idVal)
	note, err := hg.repo.GetNoteByUri(noteUri)
	if err != nil {
		hg.logger.Errorf("Error retrieving status %s/%s: %v", userName, statusId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if note == nil || !note.IsLocal {
		hg.logger.Infof("User status not found: %s/%s", userName, statusId)
		writeErrorResponse(w, "User or status not found", http.StatusNotFound)
		return
	}
	if note.TombstonedAt != nil {
		writeJsonResponse(hg.logger, w, dto.Tombstone{
			Id:         note.Uri,
			Type:       "Tombstone",
			FormerType: "Note",
		})
		return
	}

	resp := dto.Note{
		Id:           note.Uri,
		Type:         "Note",
		Published:    note.Published.Format(time.RFC3339),
		AttributedTo: note.AuthorUrl,
		Content:      note.Content,
		To:           []string{shared.ActivityPublic},
		Cc:           []string{hg.idb.UserFollowers(userName)},
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apubHandlerGroup) getUserOutbox(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user outbox GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/outbox")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary, err := hg.udir.GetOutboxSummary(userName)
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if summary == nil {
		hg.logger.Infof("Outbox requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) getUserFollowers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user followers GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/followers")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary, err := hg.udir.GetFollowersSummary(userName)
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if summary == nil {
		hg.logger.Infof("Followers requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, summary)
}

func (hg *apubHandlerGroup) getUserFollowing(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user following GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/following")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary, err := hg.udir.GetFollowingSummary(userName)
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if summary == nil {
		hg.logger.Infof("Following requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, summary)
}

// postInbox is the single entry point of inbound federation: both the shared
// inbox and per-user inboxes land here. The request must carry a valid HTTP
// signature by the activity's actor, and the actor's instance must not be
// blocked; then the dispatcher takes over.
func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	var err error
	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	userName := mux.Vars(r)["user"]

	if userName == "" {
		obs := hg.metrics.StartApubRequestIn("inbox")
		defer obs.Finish()
	} else {
		obs := hg.metrics.StartApubRequestIn("user/inbox")
		defer obs.Finish()
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	if len(bodyBytes) == 0 {
		hg.logger.Info("Empty request body")
		writeErrorResponse(w, "Request body must not be empty", http.StatusBadRequest)
		return
	}

	// Shallow parse: we need the actor and the verb before anything else
	var act dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &act); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}

	// Blocked instances are dropped before any signature work, so we never
	// fetch actors from servers the operator has cut off
	actorHost, hostErr := shared.GetHostName(act.Actor)
	if hostErr != nil {
		writeErrorResponse(w, "Cannot parse actor URL", http.StatusBadRequest)
		return
	}
	allowed, err := hg.blockList.IsAllowed(actorHost)
	if err != nil {
		hg.logger.Errorf("Failed to check block list for %s: %v", actorHost, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !allowed {
		hg.logger.Infof("Rejecting activity from blocked instance %s", actorHost)
		hg.metrics.ActivityRejected("blocked-instance")
		writeErrorResponse(w, "Activity from blocked instance", http.StatusForbidden)
		return
	}

	senderActor, sigProblem, err := hg.sigChecker.Check(act.Actor, r, bodyBytes)
	if err != nil {
		hg.logger.Errorf("Unexpected error trying to verify signature: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if sigProblem != "" {
		if act.Type == "Delete" {
			// Self-deletes arrive after the actor is gone; the signature can
			// no longer be verified, and there is nothing to do anyway
			hg.logger.Infof("Ignoring Delete request with unverifiable actor signature")
			writeJsonResponse(hg.logger, w, "OK")
		} else {
			hg.logger.Warnf("Incorrectly signed inbox POST request: %s", sigProblem)
			msg := fmt.Sprintf("Invalid HTTP signature: %s", sigProblem)
			writeErrorResponse(w, msg, http.StatusUnauthorized)
		}
		return
	}

	// Does signer match actor?
	if senderActor.UserUrl != act.Actor {
		hg.logger.Warnf("Activity signed by %s, but actor is %s", senderActor.UserUrl, act.Actor)
		writeErrorResponse(w, "Signer does not match actor", http.StatusUnauthorized)
		return
	}

	reqProblem, err := hg.inbox.HandleActivity(userName, senderActor, bodyBytes)
	if err != nil {
		hg.logger.Errorf("Error handling inbox activity: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if reqProblem != "" {
		hg.logger.Infof("Invalid '%s' request: %s", act.Type, reqProblem)
		msg := fmt.Sprintf("Bad request: %s", reqProblem)
		writeErrorResponse(w, msg, http.StatusBadRequest)
		return
	}

	writeJsonResponse(hg.logger, w, "OK")
}
