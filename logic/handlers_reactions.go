package logic

import (
	"time"

	"plume/dal"
	"plume/dto"
)

func (ib *inbox) handleLike(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	noteUri := actBase.ObjectId()
	if noteUri == "" {
		return Validationf("Like has no object id")
	}
	note, err := ib.repo.GetNoteByUri(noteUri)
	if err != nil {
		return err
	}
	if note == nil {
		return Validationf("Like references note we don't hold: %s", noteUri)
	}

	ib.logger.Infof("Handling Like of %s by %s", noteUri, senderActor.UserUrl)

	isNew, err := ib.repo.AddReactionIfNew(&dal.Reaction{
		NoteUriHash: dal.UriHash(noteUri),
		NoteUri:     noteUri,
		ActorUrl:    senderActor.UserUrl,
		ActivityId:  actBase.Id,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil || !isNew {
		return err
	}

	if note.IsLocal {
		if author := ib.localUserFromUrl(note.AuthorUrl); author != "" {
			return ib.repo.AddNotification(&dal.Notification{
				UserHandle: author,
				Kind:       "like",
				ActorUrl:   senderActor.UserUrl,
				NoteUri:    noteUri,
				CreatedAt:  time.Now().UTC(),
			})
		}
	}
	return nil
}

// handleAnnounce records a boost. Unlike Like, the boosted note may live on
// a third server and be unknown to us; the announce is stored regardless.
func (ib *inbox) handleAnnounce(
	receivingUser string,
	senderActor *dal.RemoteActor,
	actBase *dto.ActivityInBase,
	bodyBytes []byte) error {

	noteUri := actBase.ObjectId()
	if noteUri == "" {
		return Validationf("Announce has no object id")
	}

	ib.logger.Infof("Handling Announce of %s by %s", noteUri, senderActor.UserUrl)

	isNew, err := ib.repo.AddAnnounceIfNew(&dal.Announce{
		NoteUriHash: dal.UriHash(noteUri),
		NoteUri:     noteUri,
		ActorUrl:    senderActor.UserUrl,
		ActivityId:  actBase.Id,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil || !isNew {
		return err
	}

	note, err := ib.repo.GetNoteByUri(noteUri)
	if err != nil {
		return err
	}
	if note != nil && note.IsLocal {
		if author := ib.localUserFromUrl(note.AuthorUrl); author != "" {
			return ib.repo.AddNotification(&dal.Notification{
				UserHandle: author,
				Kind:       "announce",
				ActorUrl:   senderActor.UserUrl,
				NoteUri:    noteUri,
				CreatedAt:  time.Now().UTC(),
			})
		}
	}
	return nil
}
