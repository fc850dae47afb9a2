package logic

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"plume/dal"
	"plume/dto"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks plume/logic IInbox

// IInbox dispatches a signature-checked, block-checked inbound activity to
// the handler for its verb. receivingUser is empty for the shared inbox.
type IInbox interface {
	HandleActivity(receivingUser string, senderActor *dal.RemoteActor, bodyBytes []byte) (reqProblem string, err error)
}

type activityHandlerFn func(receivingUser string, senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase, bodyBytes []byte) error

type inbox struct {
	cfg             *shared.Config
	logger          shared.ILogger
	idb             shared.IdBuilder
	repo            dal.IRepo
	metrics         IMetrics
	resolver        IActorResolver
	udir            IUserDirectory
	handlers        map[string]activityHandlerFn
	sanitizer       *bluemonday.Policy
	reUserUrlParser *regexp.Regexp
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
	resolver IActorResolver,
	udir IUserDirectory,
) IInbox {
	reUserUrlParser := regexp.MustCompile("https://" + cfg.Host + "/u/([^/]+)/?$")
	res := &inbox{
		cfg:             cfg,
		logger:          logger,
		idb:             shared.IdBuilder{Host: cfg.Host},
		repo:            repo,
		metrics:         metrics,
		resolver:        resolver,
		udir:            udir,
		sanitizer:       bluemonday.UGCPolicy(),
		reUserUrlParser: reUserUrlParser,
	}
	res.handlers = map[string]activityHandlerFn{
		"Follow":   res.handleFollow,
		"Accept":   res.handleAccept,
		"Reject":   res.handleReject,
		"Undo":     res.handleUndo,
		"Create":   res.handleCreate,
		"Update":   res.handleUpdate,
		"Delete":   res.handleDelete,
		"Like":     res.handleLike,
		"Announce": res.handleAnnounce,
		"Move":     res.handleMove,
	}
	return res
}

func (ib *inbox) HandleActivity(
	receivingUser string,
	senderActor *dal.RemoteActor,
	bodyBytes []byte) (reqProblem string, err error) {

	reqProblem = ""
	err = nil

	var actBase dto.ActivityInBase
	if jsonErr := json.Unmarshal(bodyBytes, &actBase); jsonErr != nil {
		ib.logger.Info("Invalid JSON in activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		ib.metrics.ActivityRejected("bad-json")
		return
	}
	if actBase.Id == "" || actBase.Type == "" || actBase.Actor == "" {
		reqProblem = "Activity is missing id, type or actor"
		ib.metrics.ActivityRejected("missing-fields")
		return
	}

	// Claim the activity id up front. The insert is the only concurrency
	// guard: of two simultaneous deliveries exactly one gets to run.
	var alreadyHandled bool
	alreadyHandled, err = ib.repo.MarkActivityHandled(actBase.Id, time.Now())
	if err != nil {
		return
	}
	if alreadyHandled {
		ib.logger.Infof("Activity has already been handled: %s", actBase.Id)
		ib.metrics.DuplicateActivity()
		return
	}

	handler, ok := ib.handlers[actBase.Type]
	if !ok {
		// Unknown verbs are accepted and dropped; the claim stays so
		// redeliveries don't keep coming back.
		ib.logger.Infof("Ignoring activity of unsupported type '%s': %s", actBase.Type, actBase.Id)
		ib.metrics.ActivityRejected("unsupported-verb")
		return
	}

	handlerErr := handler(receivingUser, senderActor, &actBase, bodyBytes)
	if handlerErr != nil {
		// Release the claim so a redelivery can try again
		if unmarkErr := ib.repo.UnmarkActivityHandled(actBase.Id); unmarkErr != nil {
			ib.logger.Errorf("Failed to unmark failed activity %s: %v", actBase.Id, unmarkErr)
		}
		if IsValidationError(handlerErr) {
			ib.logger.Infof("Rejecting %s activity %s: %v", actBase.Type, actBase.Id, handlerErr)
			ib.metrics.ActivityRejected("validation")
			reqProblem = handlerErr.Error()
			return
		}
		err = handlerErr
		return
	}

	ib.metrics.ActivityHandled(actBase.Type)
	return
}

// localUserFromUrl returns the handle if userUrl addresses an account on
// this server, or empty string.
func (ib *inbox) localUserFromUrl(userUrl string) string {
	groups := ib.reUserUrlParser.FindStringSubmatch(userUrl)
	if groups == nil {
		return ""
	}
	return groups[1]
}
