package logic

import (
	"encoding/json"
	"time"

	"plume/dal"
	"plume/dto"
	"plume/shared"
)

func (ib *inbox) handleCreate(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	if actBase.ObjectType() != "Note" {
		ib.logger.Infof("Ignoring Create of unsupported object type '%s': %s", actBase.ObjectType(), actBase.Id)
		return nil
	}

	var act dto.ActivityIn[dto.Note]
	if jsonErr := json.Unmarshal(bodyBytes, &act); jsonErr != nil {
		return Validationf("invalid Create Note activity: %v", jsonErr)
	}
	note := &act.Object
	if note.Id == "" {
		return Validationf("Create Note has no object id")
	}
	if note.AttributedTo != senderActor.UserUrl {
		return Validationf("note attributed to %s but sent by %s", note.AttributedTo, senderActor.UserUrl)
	}

	// Who on this server is addressed?
	var localUsers []string
	checkAddressee := func(str string) {
		if user := ib.localUserFromUrl(str); user != "" {
			localUsers = append(localUsers, user)
		}
	}
	for _, str := range act.To {
		checkAddressee(str)
	}
	for _, str := range act.Cc {
		checkAddressee(str)
	}

	// Relevant if addressed to a local user, replying to a note we hold,
	// or coming from an actor someone here follows. Otherwise drop.
	relevant := len(localUsers) != 0
	if !relevant && note.InReplyTo != nil && *note.InReplyTo != "" {
		parent, err := ib.repo.GetNoteByUri(*note.InReplyTo)
		if err != nil {
			return err
		}
		relevant = parent != nil
	}
	if !relevant {
		fls, err := ib.repo.GetFollowingOfTarget(senderActor.UserUrl)
		if err != nil {
			return err
		}
		relevant = len(fls) != 0
	}
	if !relevant {
		ib.logger.Infof("Ignoring note not relevant to this server: %s", note.Id)
		return nil
	}

	ib.logger.Infof("Handling Create Note %s by %s", note.Id, senderActor.UserUrl)

	published, timeErr := time.Parse(time.RFC3339, note.Published)
	if timeErr != nil {
		published = time.Now().UTC()
	}
	inReplyTo := ""
	if note.InReplyTo != nil {
		inReplyTo = *note.InReplyTo
	}
	dbNote := dal.Note{
		UriHash:   dal.UriHash(note.Id),
		Uri:       note.Id,
		AuthorUrl: senderActor.UserUrl,
		InReplyTo: inReplyTo,
		QuoteUrl:  note.QuoteUrl,
		Content:   ib.sanitizer.Sanitize(note.Content),
		Published: published,
		IsLocal:   false,
	}
	isNew, err := ib.repo.AddNoteIfNew(&dbNote)
	if err != nil {
		return err
	}
	if !isNew {
		ib.logger.Infof("Note already stored: %s", note.Id)
		return nil
	}

	for _, user := range localUsers {
		err = ib.repo.AddNotification(&dal.Notification{
			UserHandle: user,
			Kind:       "mention",
			ActorUrl:   senderActor.UserUrl,
			NoteUri:    note.Id,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (ib *inbox) handleUpdate(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	objType := actBase.ObjectType()

	if objType == "Note" {
		var act dto.ActivityIn[dto.Note]
		if jsonErr := json.Unmarshal(bodyBytes, &act); jsonErr != nil {
			return Validationf("invalid Update Note activity: %v", jsonErr)
		}
		note := &act.Object
		if note.AttributedTo != senderActor.UserUrl {
			return Validationf("updated note attributed to %s but sent by %s",
				note.AttributedTo, senderActor.UserUrl)
		}
		updatedAt := time.Now().UTC()
		if note.Updated != "" {
			if t, timeErr := time.Parse(time.RFC3339, note.Updated); timeErr == nil {
				updatedAt = t
			}
		}
		found, err := ib.repo.UpdateNoteContent(note.Id, ib.sanitizer.Sanitize(note.Content), updatedAt)
		if err != nil {
			return err
		}
		if !found {
			ib.logger.Infof("Update for note we don't hold: %s", note.Id)
		}
		return nil
	}

	if shared.IsActorType(objType) {
		// Profile change: re-fetch the actor document so the cache catches up
		if actBase.ObjectId() != senderActor.UserUrl {
			return Validationf("actor Update object %s does not match sender %s",
				actBase.ObjectId(), senderActor.UserUrl)
		}
		ib.logger.Infof("Handling actor Update for %s", senderActor.UserUrl)
		_, err := ib.resolver.ResolveUri(senderActor.UserUrl, true)
		return err
	}

	ib.logger.Infof("Ignoring Update of unsupported object type '%s': %s", objType, actBase.Id)
	return nil
}

func (ib *inbox) handleDelete(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	objectId := actBase.ObjectId()
	if objectId == "" {
		return Validationf("Delete has no object id")
	}

	// Self-delete: the actor is removing their whole account
	if objectId == senderActor.UserUrl {
		ib.logger.Infof("Handling actor self-delete: %s", senderActor.UserUrl)
		now := time.Now().UTC()
		if err := ib.repo.SetRemoteActorGone(senderActor.UserUrl, now); err != nil {
			return err
		}
		if err := ib.repo.RemoveFollowersByActor(senderActor.UserUrl); err != nil {
			return err
		}
		return ib.repo.TombstoneNotesByAuthor(senderActor.UserUrl, now)
	}

	note, err := ib.repo.GetNoteByUri(objectId)
	if err != nil {
		return err
	}
	if note == nil {
		// Deletes commonly arrive for notes we never stored
		return nil
	}
	if note.AuthorUrl != senderActor.UserUrl {
		return Validationf("Delete by %s for note authored by %s", senderActor.UserUrl, note.AuthorUrl)
	}
	ib.logger.Infof("Tombstoning note %s", objectId)
	_, err = ib.repo.TombstoneNoteByUri(objectId, time.Now().UTC())
	return err
}
