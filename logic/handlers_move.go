package logic

import (
	"strings"

	"plume/dal"
	"plume/dto"
)

// handleMove migrates local follow edges when a remote actor moves to a new
// account. The move is only honored if both sides vouch for it: the old
// actor document names the target in movedTo, and the target document names
// the old account in alsoKnownAs.
func (ib *inbox) handleMove(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	oldUrl := senderActor.UserUrl
	newUrl := actBase.Target
	if newUrl == "" {
		newUrl = actBase.ObjectId()
	}
	if newUrl == "" || newUrl == oldUrl {
		return Validationf("Move has no usable target")
	}
	if objId := actBase.ObjectId(); objId != "" && objId != oldUrl && objId != newUrl {
		return Validationf("Move object %s matches neither actor nor target", objId)
	}

	ib.logger.Infof("Handling Move of %s to %s", oldUrl, newUrl)

	// Both actor documents must confirm the move; fetch fresh copies
	oldActor, err := ib.resolver.ResolveUri(oldUrl, true)
	if err != nil {
		return err
	}
	if oldActor.MovedTo != newUrl {
		return Validationf("actor %s does not declare movedTo %s", oldUrl, newUrl)
	}
	newActor, err := ib.resolver.ResolveUri(newUrl, true)
	if err != nil {
		return err
	}
	aliasedBack := false
	for _, alias := range strings.Fields(newActor.AlsoKnownAs) {
		if alias == oldUrl {
			aliasedBack = true
		}
	}
	if !aliasedBack {
		return Validationf("target %s does not list %s in alsoKnownAs", newUrl, oldUrl)
	}

	// Re-point every local follow of the old account at the new one
	following, err := ib.repo.GetFollowingOfTarget(oldUrl)
	if err != nil {
		return err
	}
	for _, fl := range following {
		requestId, err := ib.udir.SendFollow(fl.UserHandle, newActor)
		if err != nil {
			return err
		}
		if err = ib.repo.UpdateFollowingTarget(fl.UserHandle, oldUrl, newUrl, requestId); err != nil {
			return err
		}
		ib.logger.Infof("Re-followed %s as %s on behalf of '%s'", oldUrl, newUrl, fl.UserHandle)
	}
	return nil
}
