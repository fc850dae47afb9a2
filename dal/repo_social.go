package dal

import (
	"database/sql"
	"errors"
	"time"
)

func (repo *Repo) AddFollower(user string, flwr *FollowerInfo) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	row := repo.db.QueryRow(`SELECT id FROM accounts WHERE handle=?`, user)
	var err error
	var accountId int
	if err = row.Scan(&accountId); err != nil {
		return err
	}
	_, err = repo.db.Exec(`INSERT INTO followers VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO UPDATE SET request_id=excluded.request_id, approve_status=excluded.approve_status`,
		accountId, flwr.RequestId, flwr.ApproveStatus, flwr.UserUrl, flwr.Handle, flwr.Host,
		flwr.UserInbox, flwr.SharedInbox)
	return err
}

func (repo *Repo) RemoveFollower(user, followerUserUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	row := repo.db.QueryRow(`SELECT id FROM accounts WHERE handle=?`, user)
	var err error
	var accountId int
	if err = row.Scan(&accountId); err != nil {
		return err
	}
	_, err = repo.db.Exec(`DELETE FROM followers WHERE account_id=? AND user_url=?`,
		accountId, followerUserUrl)
	return err
}

func (repo *Repo) RemoveFollowersByActor(actorUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM followers WHERE user_url=?`, actorUrl)
	return err
}

func (repo *Repo) GetFollowersByUser(user string, onlyApproved bool) ([]*FollowerInfo, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT followers.request_id, followers.approve_status, followers.user_url,
		followers.handle, host, user_inbox, shared_inbox
		FROM followers JOIN accounts ON followers.account_id=accounts.id AND accounts.handle=?`
	if onlyApproved {
		query += ` WHERE followers.approve_status=1`
	}
	rows, err := repo.db.Query(query, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*FollowerInfo, 0)
	for rows.Next() {
		fi := FollowerInfo{}
		err = rows.Scan(&fi.RequestId, &fi.ApproveStatus, &fi.UserUrl, &fi.Handle, &fi.Host,
			&fi.UserInbox, &fi.SharedInbox)
		if err != nil {
			return nil, err
		}
		res = append(res, &fi)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetFollowerApproveStatus(user, followerUserUrl string, status int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	acct, err := repo.getAccount(user)
	if err != nil {
		return err
	}
	if acct == nil {
		return errors.New("no such account: " + user)
	}
	_, err = repo.db.Exec(`UPDATE followers SET approve_status=? WHERE account_id=? AND user_url=?`,
		status, acct.Id, followerUserUrl)
	return err
}

func (repo *Repo) GetApprovedFollowerCount(user string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM followers JOIN accounts
		ON followers.account_id=accounts.id AND accounts.handle=?
		WHERE followers.approve_status=1`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddFollowing(fw *FollowingInfo) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO following (user_handle, target_user_url, request_id, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_handle, target_user_url) DO UPDATE SET
		 request_id=excluded.request_id, status=excluded.status`,
		fw.UserHandle, fw.TargetUserUrl, fw.RequestId, fw.Status)
	return err
}

func (repo *Repo) SetFollowingStatusByRequestId(requestId string, status int) (found bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE following SET status=? WHERE request_id=?`, status, requestId)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *Repo) GetFollowingOfTarget(targetUserUrl string) ([]*FollowingInfo, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, user_handle, target_user_url, request_id, status
		FROM following WHERE target_user_url=?`, targetUserUrl)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*FollowingInfo, 0)
	for rows.Next() {
		fw := FollowingInfo{}
		err = rows.Scan(&fw.Id, &fw.UserHandle, &fw.TargetUserUrl, &fw.RequestId, &fw.Status)
		if err != nil {
			return nil, err
		}
		res = append(res, &fw)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) UpdateFollowingTarget(userHandle, oldTarget, newTarget, newRequestId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE following SET target_user_url=?, request_id=?, status=0
		WHERE user_handle=? AND target_user_url=?`,
		newTarget, newRequestId, userHandle, oldTarget)
	return err
}

func (repo *Repo) RemoveFollowing(userHandle, targetUserUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM following WHERE user_handle=? AND target_user_url=?`,
		userHandle, targetUserUrl)
	return err
}

func (repo *Repo) GetFollowingCount(userHandle string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM following WHERE user_handle=? AND status=1`, userHandle)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddNoteIfNew(note *Note) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err = repo.db.Exec(`INSERT INTO notes
		(uri_hash, uri, author_url, in_reply_to, quote_url, content, published, is_local)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		UriHash(note.Uri), note.Uri, note.AuthorUrl, note.InReplyTo, note.QuoteUrl,
		note.Content, note.Published, note.IsLocal)

	if err == nil {
		isNew = true
		return
	}

	// Duplicate key: note with this URI already stored
	if isDupErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) GetLocalNoteCount(authorUrl string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM notes
		WHERE author_url=? AND is_local=1 AND tombstoned_at IS NULL`, authorUrl)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetNoteByUri(uri string) (*Note, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, uri_hash, uri, author_url, in_reply_to, quote_url, content,
		published, updated_at, tombstoned_at, is_local
		FROM notes WHERE uri_hash=? AND uri=?`, UriHash(uri), uri)
	var res Note
	var updatedAt, tombstonedAt sql.NullTime
	err := row.Scan(&res.Id, &res.UriHash, &res.Uri, &res.AuthorUrl, &res.InReplyTo, &res.QuoteUrl,
		&res.Content, &res.Published, &updatedAt, &tombstonedAt, &res.IsLocal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if updatedAt.Valid {
		res.UpdatedAt = &updatedAt.Time
	}
	if tombstonedAt.Valid {
		res.TombstonedAt = &tombstonedAt.Time
	}
	return &res, nil
}

func (repo *Repo) UpdateNoteContent(uri, content string, updatedAt time.Time) (found bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE notes SET content=?, updated_at=? WHERE uri_hash=? AND uri=?`,
		content, updatedAt, UriHash(uri), uri)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *Repo) TombstoneNoteByUri(uri string, when time.Time) (found bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE notes SET tombstoned_at=? WHERE uri_hash=? AND uri=? AND tombstoned_at IS NULL`,
		when, UriHash(uri), uri)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *Repo) TombstoneNotesByAuthor(authorUrl string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE notes SET tombstoned_at=? WHERE author_url=? AND tombstoned_at IS NULL`,
		when, authorUrl)
	return err
}

func (repo *Repo) AddReactionIfNew(r *Reaction) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err = repo.db.Exec(`INSERT INTO reactions (note_uri_hash, note_uri, actor_url, activity_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		UriHash(r.NoteUri), r.NoteUri, r.ActorUrl, r.ActivityId, r.CreatedAt)

	if err == nil {
		isNew = true
		return
	}
	if isDupErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) RemoveReaction(noteUri, actorUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM reactions WHERE note_uri_hash=? AND actor_url=?`,
		UriHash(noteUri), actorUrl)
	return err
}

func (repo *Repo) AddAnnounceIfNew(a *Announce) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err = repo.db.Exec(`INSERT INTO announces (note_uri_hash, note_uri, actor_url, activity_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		UriHash(a.NoteUri), a.NoteUri, a.ActorUrl, a.ActivityId, a.CreatedAt)

	if err == nil {
		isNew = true
		return
	}
	if isDupErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) RemoveAnnounce(noteUri, actorUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM announces WHERE note_uri_hash=? AND actor_url=?`,
		UriHash(noteUri), actorUrl)
	return err
}

func (repo *Repo) AddNotification(n *Notification) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO notifications (user_handle, kind, actor_url, note_uri, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		n.UserHandle, n.Kind, n.ActorUrl, n.NoteUri, n.CreatedAt)
	return err
}
