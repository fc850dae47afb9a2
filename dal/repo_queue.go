package dal

import (
	"time"
)

func (repo *Repo) AddDeliveryQueueItem(item *DeliveryQueueItem) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO delivery_queue
		(sending_user, to_inbox, activity_json, attempts, next_attempt_at, last_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.SendingUser, item.ToInbox, item.ActivityJson, item.Attempts, item.NextAttemptAt,
		item.LastError, item.CreatedAt)
	return err
}

// GetDueDeliveryQueueItems returns up to maxCount items whose next attempt
// time has passed, oldest first, plus the total queue length for metrics.
func (repo *Repo) GetDueDeliveryQueueItems(due time.Time, maxCount int) ([]*DeliveryQueueItem, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var qlen int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM delivery_queue`)
	if err := row.Scan(&qlen); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT id, sending_user, to_inbox, activity_json, attempts,
		next_attempt_at, last_error, created_at
		FROM delivery_queue WHERE next_attempt_at<=? ORDER BY id ASC LIMIT ?`, due, maxCount)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]*DeliveryQueueItem, 0, maxCount)
	for rows.Next() {
		item := DeliveryQueueItem{}
		err = rows.Scan(&item.Id, &item.SendingUser, &item.ToInbox, &item.ActivityJson,
			&item.Attempts, &item.NextAttemptAt, &item.LastError, &item.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, qlen, nil
}

func (repo *Repo) UpdateDeliveryQueueItem(id, attempts int, nextAttemptAt time.Time, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE delivery_queue SET attempts=?, next_attempt_at=?, last_error=?
		WHERE id=?`, attempts, nextAttemptAt, lastError, id)
	return err
}

func (repo *Repo) DeleteDeliveryQueueItem(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM delivery_queue WHERE id=?`, id)
	return err
}
