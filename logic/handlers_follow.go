package logic

import (
	"encoding/json"
	"time"

	"plume/dal"
	"plume/dto"
)

func (ib *inbox) handleFollow(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	var actFollow dto.ActivityIn[string]
	if jsonErr := json.Unmarshal(bodyBytes, &actFollow); jsonErr != nil {
		return Validationf("invalid Follow activity: %v", jsonErr)
	}

	// Object must be one of our accounts
	objectUser := ib.localUserFromUrl(actFollow.Object)
	if objectUser == "" {
		return Validationf("Follow object is not a user on this server: %s", actFollow.Object)
	}
	if receivingUser != "" && receivingUser != objectUser {
		return Validationf("Follow sent to inbox of %s but object is %s", receivingUser, actFollow.Object)
	}
	account, err := ib.repo.GetAccount(objectUser)
	if err != nil {
		return err
	}
	if account == nil {
		return Validationf("user does not exist: %s", objectUser)
	}

	ib.logger.Infof("Handling Follow of '%s' by %s", objectUser, actFollow.Actor)

	flwr := dal.FollowerInfo{
		RequestId:     actFollow.Id,
		ApproveStatus: 0,
		UserUrl:       senderActor.UserUrl,
		Handle:        senderActor.Handle,
		Host:          senderActor.Host,
		UserInbox:     senderActor.Inbox,
		SharedInbox:   senderActor.SharedInbox,
	}
	if err = ib.repo.AddFollower(objectUser, &flwr); err != nil {
		return err
	}
	err = ib.repo.AddNotification(&dal.Notification{
		UserHandle: objectUser,
		Kind:       "follow",
		ActorUrl:   senderActor.UserUrl,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if !account.ManuallyApproves {
		// Enqueues the Accept; the delivery engine owns retries from here
		if err = ib.udir.AcceptFollower(flwr.RequestId, flwr.UserUrl, flwr.UserInbox, objectUser); err != nil {
			return err
		}
	}

	return nil
}

// handleAccept resolves a Follow we sent earlier: the embedded object's id
// is the request id we generated.
func (ib *inbox) handleAccept(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	return ib.settleFollowRequest(senderActor, actBase, 1)
}

func (ib *inbox) handleReject(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	return ib.settleFollowRequest(senderActor, actBase, -1)
}

func (ib *inbox) settleFollowRequest(
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	status int) error {

	if actBase.ObjectType() != "Follow" {
		ib.logger.Infof("Ignoring %s of non-Follow object: %s", actBase.Type, actBase.Id)
		return nil
	}
	requestId := actBase.ObjectId()
	if requestId == "" {
		return Validationf("%s has no object id", actBase.Type)
	}

	found, err := ib.repo.SetFollowingStatusByRequestId(requestId, status)
	if err != nil {
		return err
	}
	if !found {
		// Not necessarily ours; some servers echo these around
		ib.logger.Infof("%s references unknown follow request %s; ignoring", actBase.Type, requestId)
		return nil
	}
	ib.logger.Infof("Follow request %s settled by %s with status %d", requestId, senderActor.UserUrl, status)
	return nil
}

func (ib *inbox) handleUndo(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	var actUndo dto.ActivityIn[dto.ActivityInBase]
	if jsonErr := json.Unmarshal(bodyBytes, &actUndo); jsonErr != nil {
		return Validationf("invalid Undo activity: %v", jsonErr)
	}

	// Only the original actor may undo their own activity
	if actUndo.Object.Actor != "" && actUndo.Object.Actor != senderActor.UserUrl {
		return Validationf("Undo actor %s does not match object actor %s",
			senderActor.UserUrl, actUndo.Object.Actor)
	}

	switch actUndo.Object.Type {
	case "Follow":
		return ib.handleUnfollow(senderActor, &actUndo.Object)
	case "Like":
		ib.logger.Infof("Handling Undo Like by %s", senderActor.UserUrl)
		return ib.repo.RemoveReaction(actUndo.Object.ObjectId(), senderActor.UserUrl)
	case "Announce":
		ib.logger.Infof("Handling Undo Announce by %s", senderActor.UserUrl)
		return ib.repo.RemoveAnnounce(actUndo.Object.ObjectId(), senderActor.UserUrl)
	default:
		ib.logger.Infof("Ignoring Undo of unsupported object type '%s': %s", actUndo.Object.Type, actUndo.Id)
		return nil
	}
}

func (ib *inbox) handleUnfollow(senderActor *dal.RemoteActor, objFollow *dto.ActivityInBase) error {

	objectUser := ib.localUserFromUrl(objFollow.ObjectId())
	if objectUser == "" {
		return Validationf("cannot parse Undo Follow object as a local user URL: %s", objFollow.ObjectId())
	}
	ib.logger.Infof("Handling Undo Follow of '%s' by %s", objectUser, senderActor.UserUrl)
	return ib.repo.RemoveFollower(objectUser, senderActor.UserUrl)
}
