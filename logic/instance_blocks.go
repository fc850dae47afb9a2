package logic

import (
	"strings"
	"time"

	"plume/dal"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_block_list.go -package mocks plume/logic IBlockList

// IBlockList answers whether federation with a host is allowed. The list
// itself is maintained by moderators through the API; the engine only reads.
type IBlockList interface {
	IsAllowed(host string) (bool, error)
	Block(host, reason, addedBy string) error
	Unblock(host string) error
	List() ([]*dal.InstanceBlock, error)
}

type blockList struct {
	logger shared.ILogger
	repo   dal.IRepo
}

func NewBlockList(logger shared.ILogger, repo dal.IRepo) IBlockList {
	return &blockList{logger, repo}
}

func (bl *blockList) IsAllowed(host string) (bool, error) {
	blocked, err := bl.repo.IsHostBlocked(strings.ToLower(host))
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

func (bl *blockList) Block(host, reason, addedBy string) error {
	bl.logger.Infof("Blocking instance %s (by %s)", host, addedBy)
	return bl.repo.AddInstanceBlock(&dal.InstanceBlock{
		Host:      strings.ToLower(host),
		Reason:    reason,
		AddedBy:   addedBy,
		CreatedAt: time.Now().UTC(),
	})
}

func (bl *blockList) Unblock(host string) error {
	bl.logger.Infof("Unblocking instance %s", host)
	return bl.repo.RemoveInstanceBlock(strings.ToLower(host))
}

func (bl *blockList) List() ([]*dal.InstanceBlock, error) {
	return bl.repo.GetInstanceBlocks()
}
