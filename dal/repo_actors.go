package dal

import (
	"database/sql"
	"errors"
	"time"
)

const remoteActorCols = `id, user_url, handle, host, name, inbox, shared_inbox, moved_to, also_known_as,
	pubkey, fetched_at, fetch_failure_count, last_fetch_attempt_at, last_fetch_error, gone_detected_at`

func scanRemoteActor(row interface{ Scan(...any) error }) (*RemoteActor, error) {
	var res RemoteActor
	var goneAt sql.NullTime
	err := row.Scan(&res.Id, &res.UserUrl, &res.Handle, &res.Host, &res.Name, &res.Inbox,
		&res.SharedInbox, &res.MovedTo, &res.AlsoKnownAs, &res.PubKey, &res.FetchedAt,
		&res.FetchFailureCount, &res.LastFetchAttemptAt, &res.LastFetchError, &goneAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if goneAt.Valid {
		res.GoneDetectedAt = &goneAt.Time
	}
	return &res, nil
}

func (repo *Repo) GetRemoteActor(userUrl string) (*RemoteActor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+remoteActorCols+` FROM remote_actors WHERE user_url=?`, userUrl)
	return scanRemoteActor(row)
}

func (repo *Repo) GetRemoteActorByHandle(handle, host string) (*RemoteActor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+remoteActorCols+` FROM remote_actors WHERE handle=? AND host=?`,
		handle, host)
	return scanRemoteActor(row)
}

// GetRemoteActorsByInbox matches on the personal inbox only; a shared inbox
// says nothing about any one actor on that server.
func (repo *Repo) GetRemoteActorsByInbox(inbox string) ([]*RemoteActor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+remoteActorCols+` FROM remote_actors WHERE inbox=?`, inbox)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*RemoteActor, 0)
	for rows.Next() {
		actor, err := scanRemoteActor(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, actor)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// UpsertRemoteActor writes the result of a successful fetch: profile fields
// are replaced, failure counters reset and the gone marker cleared.
func (repo *Repo) UpsertRemoteActor(actor *RemoteActor) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO remote_actors
		(user_url, handle, host, name, inbox, shared_inbox, moved_to, also_known_as, pubkey,
		 fetched_at, fetch_failure_count, last_fetch_attempt_at, last_fetch_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, '')
		ON CONFLICT (user_url) DO UPDATE SET
		 handle=excluded.handle, host=excluded.host, name=excluded.name, inbox=excluded.inbox,
		 shared_inbox=excluded.shared_inbox, moved_to=excluded.moved_to,
		 also_known_as=excluded.also_known_as, pubkey=excluded.pubkey, fetched_at=excluded.fetched_at,
		 fetch_failure_count=0, last_fetch_attempt_at=excluded.last_fetch_attempt_at,
		 last_fetch_error='', gone_detected_at=NULL`,
		actor.UserUrl, actor.Handle, actor.Host, actor.Name, actor.Inbox, actor.SharedInbox,
		actor.MovedTo, actor.AlsoKnownAs, actor.PubKey, actor.FetchedAt, actor.LastFetchAttemptAt)
	return err
}

// UpdateRemoteActorFetchFailure records one failed fetch attempt. A nil
// goneAt leaves the gone marker untouched; a non-nil one sets it only if it
// is not already set.
func (repo *Repo) UpdateRemoteActorFetchFailure(
	userUrl string, failureCount int, attemptAt time.Time, lastError string, goneAt *time.Time,
) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO remote_actors
		(user_url, fetch_failure_count, last_fetch_attempt_at, last_fetch_error)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_url) DO UPDATE SET
		 fetch_failure_count=excluded.fetch_failure_count,
		 last_fetch_attempt_at=excluded.last_fetch_attempt_at,
		 last_fetch_error=excluded.last_fetch_error`,
		userUrl, failureCount, attemptAt, lastError)
	if err != nil {
		return err
	}
	if goneAt != nil {
		_, err = repo.db.Exec(`UPDATE remote_actors SET gone_detected_at=?
			WHERE user_url=? AND gone_detected_at IS NULL`, *goneAt, userUrl)
	}
	return err
}

// ClearRemoteActorFetchStatus is the operator reset: the actor reverts to
// never-fetched and the next resolve will go to the network again.
func (repo *Repo) ClearRemoteActorFetchStatus(userUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE remote_actors SET
		fetched_at='0001-01-01 00:00:00+00:00', fetch_failure_count=0,
		last_fetch_error='', gone_detected_at=NULL
		WHERE user_url=?`, userUrl)
	return err
}

func (repo *Repo) SetRemoteActorGone(userUrl string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE remote_actors SET gone_detected_at=?
		WHERE user_url=? AND gone_detected_at IS NULL`, when, userUrl)
	return err
}
