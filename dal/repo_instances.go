package dal

import (
	"database/sql"
	"errors"
	"strings"
)

func (repo *Repo) GetRemoteInstance(host string) (*RemoteInstance, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT host, software, version, open_regs, user_count, post_count,
		last_fetched_at, fetch_error_count, last_fetch_error
		FROM remote_instances WHERE host=?`, strings.ToLower(host))
	var res RemoteInstance
	err := row.Scan(&res.Host, &res.Software, &res.Version, &res.OpenRegs, &res.UserCount,
		&res.PostCount, &res.LastFetchedAt, &res.FetchErrorCount, &res.LastFetchError)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) UpsertRemoteInstance(ri *RemoteInstance) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO remote_instances
		(host, software, version, open_regs, user_count, post_count, last_fetched_at,
		 fetch_error_count, last_fetch_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, '')
		ON CONFLICT (host) DO UPDATE SET
		 software=excluded.software, version=excluded.version, open_regs=excluded.open_regs,
		 user_count=excluded.user_count, post_count=excluded.post_count,
		 last_fetched_at=excluded.last_fetched_at, fetch_error_count=0, last_fetch_error=''`,
		strings.ToLower(ri.Host), ri.Software, ri.Version, ri.OpenRegs, ri.UserCount,
		ri.PostCount, ri.LastFetchedAt)
	return err
}

func (repo *Repo) UpdateRemoteInstanceFetchFailure(host string, errorCount int, lastError string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO remote_instances (host, fetch_error_count, last_fetch_error)
		VALUES (?, ?, ?)
		ON CONFLICT (host) DO UPDATE SET
		 fetch_error_count=excluded.fetch_error_count, last_fetch_error=excluded.last_fetch_error`,
		strings.ToLower(host), errorCount, lastError)
	return err
}

func (repo *Repo) ResetRemoteInstanceErrors(host string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE remote_instances SET fetch_error_count=0, last_fetch_error=''
		WHERE host=?`, strings.ToLower(host))
	return err
}

func (repo *Repo) IsHostBlocked(host string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM instance_blocks WHERE host=?`, strings.ToLower(host))
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) AddInstanceBlock(b *InstanceBlock) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO instance_blocks (host, reason, added_by, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (host) DO UPDATE SET reason=excluded.reason, added_by=excluded.added_by`,
		strings.ToLower(b.Host), b.Reason, b.AddedBy, b.CreatedAt)
	return err
}

func (repo *Repo) RemoveInstanceBlock(host string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM instance_blocks WHERE host=?`, strings.ToLower(host))
	return err
}

func (repo *Repo) GetInstanceBlocks() ([]*InstanceBlock, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT host, reason, added_by, created_at FROM instance_blocks ORDER BY host`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*InstanceBlock, 0)
	for rows.Next() {
		b := InstanceBlock{}
		if err = rows.Scan(&b.Host, &b.Reason, &b.AddedBy, &b.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
