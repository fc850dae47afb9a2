package logic

import (
	"time"

	"github.com/google/uuid"
	"plume/dal"
	"plume/dto"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_broadcaster.go -package mocks plume/logic IBroadcaster

// IBroadcaster publishes notes authored by local accounts to their
// followers.
type IBroadcaster interface {
	SendNoteToFollowers(user, content string) (noteUri string, err error)
	SendTombstoneToFollowers(user, noteUri string) error
}

type broadcaster struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	queue   IDeliveryQueue
	metrics IMetrics
	idb     shared.IdBuilder
}

func NewBroadcaster(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	queue IDeliveryQueue,
	metrics IMetrics,
) IBroadcaster {
	return &broadcaster{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		queue:   queue,
		metrics: metrics,
		idb:     shared.IdBuilder{Host: cfg.Host},
	}
}

func (b *broadcaster) SendNoteToFollowers(user, content string) (noteUri string, err error) {

	idVal := b.repo.GetNextId()
	noteUri = b.idb.UserStatus(user, idVal)
	userUrl := b.idb.UserUrl(user)
	published := time.Now().UTC()

	_, err = b.repo.AddNoteIfNew(&dal.Note{
		UriHash:   dal.UriHash(noteUri),
		Uri:       noteUri,
		AuthorUrl: userUrl,
		Content:   content,
		Published: published,
		IsLocal:   true,
	})
	if err != nil {
		return "", err
	}

	to := []string{shared.ActivityPublic}
	cc := []string{b.idb.UserFollowers(user)}
	note := &dto.Note{
		Id:           noteUri,
		Type:         "Note",
		Published:    published.Format(time.RFC3339),
		AttributedTo: userUrl,
		Content:      content,
		To:           to,
		Cc:           cc,
	}
	act := &dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      b.idb.UserStatusActivity(user, idVal),
		Type:    "Create",
		Actor:   userUrl,
		To:      &to,
		Cc:      &cc,
		Object:  note,
	}

	b.logger.Infof("Broadcasting note %s by '%s'", noteUri, user)
	if err = b.queue.BroadcastToFollowers(user, act); err != nil {
		return "", err
	}
	return noteUri, nil
}

func (b *broadcaster) SendTombstoneToFollowers(user, noteUri string) error {

	found, err := b.repo.TombstoneNoteByUri(noteUri, time.Now().UTC())
	if err != nil {
		return err
	}
	if !found {
		b.logger.Infof("No note to tombstone: %s", noteUri)
		return nil
	}

	userUrl := b.idb.UserUrl(user)
	to := []string{shared.ActivityPublic}
	act := &dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      b.idb.ActivityUrl(uuid.NewString()),
		Type:    "Delete",
		Actor:   userUrl,
		To:      &to,
		Object: dto.Tombstone{
			Id:         noteUri,
			Type:       "Tombstone",
			FormerType: "Note",
		},
	}
	b.logger.Infof("Broadcasting tombstone for %s by '%s'", noteUri, user)
	return b.queue.BroadcastToFollowers(user, act)
}
