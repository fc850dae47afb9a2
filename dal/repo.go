package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/spaolacci/murmur3"
	"plume/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks plume/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64

	AddAccountIfNotExist(account *Account, privKey string) (isNew bool, err error)
	DoesAccountExist(user string) (bool, error)
	GetAccount(user string) (*Account, error)
	GetPrivKey(user string) (string, error)
	GetAccountCount() (int64, error)
	GetTotalLocalNoteCount() (int64, error)

	MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error)
	UnmarkActivityHandled(id string) error
	IsActivityHandled(id string) (bool, error)

	GetRemoteActor(userUrl string) (*RemoteActor, error)
	GetRemoteActorByHandle(handle, host string) (*RemoteActor, error)
	GetRemoteActorsByInbox(inbox string) ([]*RemoteActor, error)
	UpsertRemoteActor(actor *RemoteActor) error
	UpdateRemoteActorFetchFailure(userUrl string, failureCount int, attemptAt time.Time, lastError string, goneAt *time.Time) error
	ClearRemoteActorFetchStatus(userUrl string) error
	SetRemoteActorGone(userUrl string, when time.Time) error

	AddFollower(user string, follower *FollowerInfo) error
	RemoveFollower(user, followerUserUrl string) error
	RemoveFollowersByActor(actorUrl string) error
	GetFollowersByUser(user string, onlyApproved bool) ([]*FollowerInfo, error)
	SetFollowerApproveStatus(user, followerUserUrl string, status int) error
	GetApprovedFollowerCount(user string) (uint, error)

	AddFollowing(fw *FollowingInfo) error
	SetFollowingStatusByRequestId(requestId string, status int) (found bool, err error)
	GetFollowingOfTarget(targetUserUrl string) ([]*FollowingInfo, error)
	UpdateFollowingTarget(userHandle, oldTarget, newTarget, newRequestId string) error
	RemoveFollowing(userHandle, targetUserUrl string) error

	GetFollowingCount(userHandle string) (uint, error)

	AddNoteIfNew(note *Note) (isNew bool, err error)
	GetLocalNoteCount(authorUrl string) (uint, error)
	GetNoteByUri(uri string) (*Note, error)
	UpdateNoteContent(uri, content string, updatedAt time.Time) (found bool, err error)
	TombstoneNoteByUri(uri string, when time.Time) (found bool, err error)
	TombstoneNotesByAuthor(authorUrl string, when time.Time) error

	AddReactionIfNew(r *Reaction) (isNew bool, err error)
	RemoveReaction(noteUri, actorUrl string) error
	AddAnnounceIfNew(a *Announce) (isNew bool, err error)
	RemoveAnnounce(noteUri, actorUrl string) error

	AddNotification(n *Notification) error

	GetRemoteInstance(host string) (*RemoteInstance, error)
	UpsertRemoteInstance(ri *RemoteInstance) error
	UpdateRemoteInstanceFetchFailure(host string, errorCount int, lastError string) error
	ResetRemoteInstanceErrors(host string) error

	IsHostBlocked(host string) (bool, error)
	AddInstanceBlock(b *InstanceBlock) error
	RemoveInstanceBlock(host string) error
	GetInstanceBlocks() ([]*InstanceBlock, error)

	AddDeliveryQueueItem(item *DeliveryQueueItem) error
	GetDueDeliveryQueueItems(due time.Time, maxCount int) (items []*DeliveryQueueItem, qlen int, err error)
	UpdateDeliveryQueueItem(id, attempts int, nextAttemptAt time.Time, lastError string) error
	DeleteDeliveryQueueItem(id int) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

// UriHash maps an object URI to the 64-bit key used for idempotent inserts
// on notes, reactions and announces.
func UriHash(uri string) int64 {
	return int64(murmur3.Sum64([]byte(uri)))
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}

	if dbVer == 0 {
		repo.mustAddBuiltInUsers()
	}
}

func (repo *Repo) mustAddBuiltInUsers() {

	idb := shared.IdBuilder{Host: repo.cfg.Host}
	ia := repo.cfg.InstanceActor

	_, err := repo.db.Exec(`INSERT INTO accounts
    	(created_at, user_url, handle, manually_approves, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?, ?)`,
		ia.Published, idb.UserUrl(ia.User),
		ia.User, ia.ManuallyApprovesFollows, ia.PubKey, ia.PrivKey)

	if err != nil {
		repo.logger.Errorf("Failed to add built-in user '%s': %v", ia.User, err)
		panic(err)
	}
}

// isDupErr is true for sqlite's unique-constraint violation, which the repo
// uses for all insert-if-absent semantics.
func isDupErr(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			return true
		}
	}
	return false
}

func (repo *Repo) AddAccountIfNotExist(acct *Account, privKey string) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO accounts
    	(created_at, user_url, handle, name, summary, manually_approves, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		acct.CreatedAt, acct.UserUrl, acct.Handle, acct.Name, acct.Summary,
		acct.ManuallyApproves, acct.PubKey, privKey)
	if err == nil {
		return
	}
	if isDupErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) DoesAccountExist(user string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE handle=?`, user)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) GetAccount(user string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(user)
}

func (repo *Repo) getAccount(user string) (*Account, error) {

	row := repo.db.QueryRow(
		`SELECT id, created_at, user_url, handle, name, summary, manually_approves, pubkey
		FROM accounts WHERE handle=?`, user)
	var err error
	var res Account
	err = row.Scan(&res.Id, &res.CreatedAt, &res.UserUrl, &res.Handle, &res.Name, &res.Summary,
		&res.ManuallyApproves, &res.PubKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) GetPrivKey(user string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM accounts WHERE handle=?`, user)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) GetAccountCount() (int64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) GetTotalLocalNoteCount() (int64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM notes WHERE is_local=1 AND tombstoned_at IS NULL`)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	alreadyHandled = false
	err = nil

	_, err = repo.db.Exec(`INSERT INTO handled_activities VALUES (?, ?)`, id, when)

	if err == nil {
		return
	}

	// Duplicate key: activity was handled before
	if isDupErr(err) {
		alreadyHandled = true
		err = nil
	}

	return
}

func (repo *Repo) UnmarkActivityHandled(id string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM handled_activities WHERE id=?`, id)
	return err
}

func (repo *Repo) IsActivityHandled(id string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM handled_activities WHERE id=?`, id)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}
