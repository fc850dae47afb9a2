package logic

import (
	"encoding/json"
	"time"

	"plume/dal"
	"plume/dto"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_delivery_queue.go -package mocks plume/logic IDeliveryQueue

// IDeliveryQueue is the outbound engine: it collapses addressees to distinct
// inboxes, persists one item per inbox, and works the queue off with retries
// until an item succeeds, fails permanently, or runs out of attempts.
type IDeliveryQueue interface {
	Deliver(sendingUser string, activity *dto.ActivityOut, addressees []*Addressee) error
	BroadcastToFollowers(sendingUser string, activity *dto.ActivityOut) error
	Shutdown()
}

// Addressee is one intended recipient before inbox collapse.
type Addressee struct {
	UserUrl     string
	Inbox       string
	SharedInbox string
}

const maxParallelSends = 5
const deliveryLoopIdleWakeSec = 5

// Retry schedule in minutes; attempts past the end reuse the last entry.
var retryBackoffMinutes = []int{1, 5, 15, 60, 240, 1440}

type deliveryResult struct {
	item *dal.DeliveryQueueItem
	err  error
}

type deliveryQueue struct {
	cfg             *shared.Config
	logger          shared.ILogger
	repo            dal.IRepo
	keyStore        IKeyStore
	sender          IActivitySender
	resolver        IActorResolver
	blockList       IBlockList
	metrics         IMetrics
	idb             shared.IdBuilder
	newItemsInQueue chan struct{}
	quit            chan struct{}
	dqProgress      map[int]string // item id -> inbox in flight
}

func NewDeliveryQueue(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	sender IActivitySender,
	resolver IActorResolver,
	blockList IBlockList,
	metrics IMetrics,
) IDeliveryQueue {

	dq := deliveryQueue{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		keyStore:  keyStore,
		sender:    sender,
		resolver:  resolver,
		blockList: blockList,
		metrics:   metrics,
		idb:       shared.IdBuilder{Host: cfg.Host},
	}

	dq.newItemsInQueue = make(chan struct{})
	dq.quit = make(chan struct{})
	dq.dqProgress = make(map[int]string)
	go dq.deliveryLoop()

	return &dq
}

func (dq *deliveryQueue) Deliver(
	sendingUser string,
	activity *dto.ActivityOut,
	addressees []*Addressee) error {

	// Collect distinct inboxes, preferring the shared inbox: followers on
	// the same server collapse into a single delivery.
	inboxes := make(map[string]struct{})
	for _, a := range addressees {
		inboxName := a.SharedInbox
		if inboxName == "" {
			inboxName = a.Inbox
		}
		if inboxName == "" {
			continue
		}
		inboxes[inboxName] = struct{}{}
	}
	if len(inboxes) == 0 {
		return nil
	}

	activityJson, err := json.Marshal(activity)
	if err != nil {
		return err
	}

	enqueued := 0
	for inboxUrl := range inboxes {
		host, hostErr := shared.GetHostName(inboxUrl)
		if hostErr != nil {
			dq.logger.Warnf("Skipping delivery to unparseable inbox %s", inboxUrl)
			continue
		}
		allowed, err := dq.blockList.IsAllowed(host)
		if err != nil {
			return err
		}
		if !allowed {
			dq.logger.Infof("Not delivering to blocked instance %s", host)
			dq.metrics.Delivery("blocked")
			continue
		}
		err = dq.repo.AddDeliveryQueueItem(&dal.DeliveryQueueItem{
			SendingUser:   sendingUser,
			ToInbox:       inboxUrl,
			ActivityJson:  string(activityJson),
			Attempts:      0,
			NextAttemptAt: time.Now().UTC(),
			CreatedAt:     time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		enqueued += 1
	}

	if enqueued != 0 {
		go func() {
			select {
			case dq.newItemsInQueue <- struct{}{}:
			case <-dq.quit:
			}
		}()
	}
	return nil
}

// Shutdown stops the delivery loop. Queued items stay in the DB and are
// picked up again on the next start.
func (dq *deliveryQueue) Shutdown() {
	close(dq.quit)
}

func (dq *deliveryQueue) BroadcastToFollowers(sendingUser string, activity *dto.ActivityOut) error {

	followers, err := dq.repo.GetFollowersByUser(sendingUser, true)
	if err != nil {
		return err
	}
	addressees := make([]*Addressee, 0, len(followers))
	for _, f := range followers {
		addressees = append(addressees, &Addressee{
			UserUrl:     f.UserUrl,
			Inbox:       f.UserInbox,
			SharedInbox: f.SharedInbox,
		})
	}
	return dq.Deliver(sendingUser, activity, addressees)
}

func (dq *deliveryQueue) deliveryLoop() {

	itemDone := make(chan deliveryResult, maxParallelSends)

	inboxBusy := func(inbox string) bool {
		for _, ib := range dq.dqProgress {
			if ib == inbox {
				return true
			}
		}
		return false
	}

	sendItems := func() {
		if len(dq.dqProgress) >= maxParallelSends {
			return
		}
		items, qlen, err := dq.repo.GetDueDeliveryQueueItems(time.Now(), maxParallelSends)
		if err != nil {
			dq.logger.Errorf("Failed to get delivery queue items: %v", err)
			return
		}
		dq.metrics.DeliveryQueueLength(qlen)
		for _, item := range items {
			if len(dq.dqProgress) >= maxParallelSends {
				break
			}
			if _, inFlight := dq.dqProgress[item.Id]; inFlight {
				continue
			}
			// One send per inbox at a time keeps deliveries ordered
			if inboxBusy(item.ToInbox) {
				continue
			}
			dq.dqProgress[item.Id] = item.ToInbox
			go dq.sendQueuedItem(item, itemDone)
		}
	}

	for {
		select {
		case <-dq.quit:
			return
		case <-dq.newItemsInQueue:
			dq.logger.Debug("New items in delivery queue")
			sendItems()
		case <-time.After(deliveryLoopIdleWakeSec * time.Second):
			sendItems()
		case res := <-itemDone:
			delete(dq.dqProgress, res.item.Id)
			dq.settleItem(res)
			sendItems()
		}
	}
}

func (dq *deliveryQueue) sendQueuedItem(item *dal.DeliveryQueueItem, itemDone chan deliveryResult) {

	err := dq.sendOnce(item)
	itemDone <- deliveryResult{item: item, err: err}
}

func (dq *deliveryQueue) sendOnce(item *dal.DeliveryQueueItem) error {

	privKey, err := dq.keyStore.GetPrivKey(item.SendingUser)
	if err != nil {
		return err
	}
	var act dto.ActivityOut
	if err = json.Unmarshal([]byte(item.ActivityJson), &act); err != nil {
		return err
	}
	return dq.sender.Send(privKey, item.SendingUser, item.ToInbox, &act)
}

// settleItem decides an attempt's outcome: success and permanent failures
// leave the queue; transient failures are rescheduled with backoff until the
// attempt limit.
func (dq *deliveryQueue) settleItem(res deliveryResult) {

	item := res.item

	if res.err == nil {
		dq.metrics.Delivery("ok")
		if err := dq.repo.DeleteDeliveryQueueItem(item.Id); err != nil {
			dq.logger.Errorf("Failed to remove delivered item from queue: %d: %v", item.Id, err)
		}
		return
	}

	if isPermanentSendError(dq.cfg.Federation.PermanentStatusCodes, res.err) {
		dq.logger.Infof("Permanent delivery failure to %s: %v", item.ToInbox, res.err)
		dq.metrics.Delivery("permanent")
		if err := dq.repo.DeleteDeliveryQueueItem(item.Id); err != nil {
			dq.logger.Errorf("Failed to remove failed item from queue: %d: %v", item.Id, err)
		}
		// Feed the actor health tracker; only a personal inbox names an actor
		actors, err := dq.repo.GetRemoteActorsByInbox(item.ToInbox)
		if err != nil {
			dq.logger.Errorf("Failed to look up actors for inbox %s: %v", item.ToInbox, err)
			return
		}
		for _, actor := range actors {
			dq.resolver.RecordDeliveryFailure(actor.UserUrl, true, res.err)
		}
		return
	}

	attempts := item.Attempts + 1
	if attempts >= dq.cfg.Federation.DeliveryMaxAttempts {
		dq.logger.Warnf("Giving up on delivery to %s after %d attempts: %v", item.ToInbox, attempts, res.err)
		dq.metrics.Delivery("gave-up")
		if err := dq.repo.DeleteDeliveryQueueItem(item.Id); err != nil {
			dq.logger.Errorf("Failed to remove abandoned item from queue: %d: %v", item.Id, err)
		}
		return
	}

	backoffIx := attempts - 1
	if backoffIx >= len(retryBackoffMinutes) {
		backoffIx = len(retryBackoffMinutes) - 1
	}
	nextAttemptAt := time.Now().UTC().Add(time.Duration(retryBackoffMinutes[backoffIx]) * time.Minute)
	dq.logger.Infof("Delivery to %s failed (attempt %d), retrying at %v: %v",
		item.ToInbox, attempts, nextAttemptAt, res.err)
	dq.metrics.Delivery("retry")
	if err := dq.repo.UpdateDeliveryQueueItem(item.Id, attempts, nextAttemptAt, res.err.Error()); err != nil {
		dq.logger.Errorf("Failed to reschedule delivery item: %d: %v", item.Id, err)
	}
}
